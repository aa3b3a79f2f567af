package rtpfile

import (
	"bufio"
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"rtpkit/internal/config"
	"rtpkit/internal/logging"
	"rtpkit/internal/rtp"
)

// ErrLineTooLong is returned when a physical line exceeds Options.MaxLineBytes.
var ErrLineTooLong = errors.New("rtpfile: line too long")

const utf8BOM = "\ufeff"

// Options controls how a source is read and decoded.
type Options struct {
	Encoding     string
	Strict       bool
	MaxLineBytes int
	Logger       *slog.Logger
}

// OptionsFromConfig maps the [decode] section onto reader options.
func OptionsFromConfig(cfg *config.Config, logger *slog.Logger) Options {
	opts := Options{Logger: logger}
	if cfg != nil {
		opts.Encoding = cfg.Decode.Encoding
		opts.Strict = cfg.Decode.Strict
		opts.MaxLineBytes = cfg.Decode.MaxLineBytes
	}
	return opts
}

// Info describes one decoded source.
type Info struct {
	Path      string         `json:"path,omitempty"`
	SHA256    string         `json:"sha256"`
	Bytes     int64          `json:"bytes"`
	Encoding  string         `json:"encoding"`
	Lines     int            `json:"lines"`
	Records   map[string]int `json:"records"`
	Skipped   int            `json:"skipped"`
	Unknown   map[string]int `json:"unknown,omitempty"`
	Duration  time.Duration  `json:"duration"`
	DecodedAt time.Time      `json:"decoded_at"`
}

// RecordCount returns the total number of decoded records.
func (i Info) RecordCount() int {
	total := 0
	for _, n := range i.Records {
		total += n
	}
	return total
}

// Open reads and decodes the RTP file at path.
func Open(ctx context.Context, path string, opts Options) (*rtp.TreatmentPlan, Info, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, Info{}, fmt.Errorf("resolve path: %w", err)
	}
	file, err := os.Open(abs)
	if err != nil {
		return nil, Info{Path: abs}, fmt.Errorf("open rtp file: %w", err)
	}
	defer file.Close()

	ctx = logging.WithSourcePath(ctx, abs)
	plan, info, err := Read(ctx, file, opts)
	info.Path = abs
	if err != nil {
		return nil, info, fmt.Errorf("%s: %w", filepath.Base(abs), err)
	}
	return plan, info, nil
}

// Read decodes an RTP stream. On failure the returned Info still reports how
// far decoding got.
func Read(ctx context.Context, r io.Reader, opts Options) (*rtp.TreatmentPlan, Info, error) {
	start := time.Now()
	logger := logging.WithContext(ctx, opts.Logger)
	info := Info{Encoding: config.NormalizeEncoding(opts.Encoding)}

	hasher := sha256.New()
	counter := &countingWriter{}
	raw := io.TeeReader(r, io.MultiWriter(hasher, counter))
	text, err := decodingReader(raw, info.Encoding)
	if err != nil {
		return nil, info, err
	}

	maxLine := opts.MaxLineBytes
	if maxLine <= 0 {
		maxLine = config.Default().Decode.MaxLineBytes
	}
	scanner := bufio.NewScanner(text)
	scanner.Buffer(make([]byte, 0, min(64*1024, maxLine)), maxLine)
	scanner.Split(scanLines)

	decoder := rtp.NewDecoder(rtp.Options{Strict: opts.Strict, Logger: logger})
	finish := func(err error) (*rtp.TreatmentPlan, Info, error) {
		stats := decoder.Stats()
		info.Lines = stats.Lines
		info.Records = stats.Records
		info.Skipped = stats.Skipped
		info.Unknown = stats.Unknown
		info.Bytes = counter.n
		info.SHA256 = hex.EncodeToString(hasher.Sum(nil))
		info.Duration = time.Since(start)
		info.DecodedAt = start.UTC()
		if err != nil {
			return nil, info, err
		}
		plan, err := decoder.Finish()
		return plan, info, err
	}

	first := true
	for scanner.Scan() {
		if err := ctx.Err(); err != nil {
			return finish(err)
		}
		line := scanner.Text()
		if first {
			line = strings.TrimPrefix(line, utf8BOM)
			first = false
		}
		if err := decoder.DecodeLine(line); err != nil {
			var lineErr *rtp.LineError
			if errors.As(err, &lineErr) {
				logger.Debug("decode failed",
					logging.Int(logging.FieldLine, lineErr.Line),
					logging.String(logging.FieldKeyword, lineErr.Keyword),
					logging.String("error_kind", rtp.ErrorKind(err)),
				)
			}
			return finish(err)
		}
	}
	if err := scanner.Err(); err != nil {
		if errors.Is(err, bufio.ErrTooLong) {
			return finish(fmt.Errorf("%w: line %d exceeds %d bytes", ErrLineTooLong, decoder.Stats().Lines+1, maxLine))
		}
		return finish(fmt.Errorf("read rtp stream: %w", err))
	}
	// Drain so the hash covers the whole stream.
	if _, err := io.Copy(io.Discard, raw); err != nil {
		return finish(fmt.Errorf("read rtp stream: %w", err))
	}
	return finish(nil)
}

type countingWriter struct{ n int64 }

func (w *countingWriter) Write(p []byte) (int, error) {
	w.n += int64(len(p))
	return len(p), nil
}
