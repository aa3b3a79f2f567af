// Package rtp decodes RTP treatment plan exchange files into typed records.
//
// An RTP file is a sequence of quoted, comma separated lines. The first field
// of every line is a keyword naming the record layout (PLAN_DEF, FIELD_DEF,
// CONTROL_PT_DEF, ...) and the remaining fields are positional. Each layout is
// declared once as a schema table: the declared field count, the keyword, the
// typed slot at every position, and for a few layouts the reserved regions
// whose used length is given by an earlier count slot.
//
// Decoding is strict about structure and lenient about content. A line whose
// field count or keyword does not match its schema, or whose trailing
// checksum is not an integer, aborts the whole decode. Blank or unparseable
// optional numbers simply decode to nil.
//
// Reading files, charset handling and persistence live in rtpfile and
// planstore; this package only sees lines.
package rtp
