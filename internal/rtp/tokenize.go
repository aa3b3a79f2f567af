package rtp

import "strings"

const (
	quote     = `"`
	delimiter = `","`
)

// SplitLine splits one RTP line of the form "a","b","c" into its unquoted
// fields. Lines that do not both start and end with a quote, including empty
// lines and the bare pair "", yield nil. Fields are returned verbatim; the format has no escaping,
// so a field can never contain the "," delimiter.
func SplitLine(line string) []string {
	if len(line) <= 2 || !strings.HasPrefix(line, quote) || !strings.HasSuffix(line, quote) {
		return nil
	}
	inner := line[1 : len(line)-1]
	return strings.Split(inner, delimiter)
}
