package rtpfile

import (
	"bufio"
	"slices"
	"strings"
	"testing"
)

func TestScanLines(t *testing.T) {
	tests := []struct {
		input string
		want  []string
	}{
		{"a\nb\n", []string{"a", "b"}},
		{"a\r\nb\r\n", []string{"a", "b"}},
		{"a\rb\r", []string{"a", "b"}},
		{"a\r\n\r\nb", []string{"a", "", "b"}},
		{"a\rb\nc\r\nd", []string{"a", "b", "c", "d"}},
		{"", nil},
	}
	for _, tt := range tests {
		scanner := bufio.NewScanner(strings.NewReader(tt.input))
		scanner.Split(scanLines)
		var got []string
		for scanner.Scan() {
			got = append(got, scanner.Text())
		}
		if !slices.Equal(got, tt.want) {
			t.Errorf("scanLines(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}
