// Package rtpfile reads RTP exports from disk or any io.Reader and feeds them
// line by line into an rtp.Decoder.
//
// It handles the byte-level concerns the decoder leaves out: character set
// conversion, CR/LF/CRLF line endings, a leading UTF-8 byte order mark, a
// maximum line length, and cancellation between lines. Every read returns an
// Info describing the source (content hash, size, per-keyword counts) which the
// CLI prints and the plan store uses to detect re-imports.
package rtpfile
