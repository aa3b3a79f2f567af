// Package main hosts the rtpkit CLI entrypoint and command graph.
//
// The Cobra command tree decodes RTP treatment plan exports into tables or
// JSON, prints the record layouts the decoder understands, and manages the
// optional SQLite plan archive. Configuration resolution and logger setup
// live in commandContext so subcommands only deal with presentation.
//
// Decoding belongs in internal/rtp and internal/rtpfile; keep this package
// to flag parsing and rendering.
package main
