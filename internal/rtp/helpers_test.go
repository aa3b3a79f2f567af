package rtp

import (
	"strconv"
	"strings"
)

// blankRecord returns n fields with the keyword at position 0, a zero
// checksum at the end and empty text everywhere else.
func blankRecord(keyword string, n int) []string {
	fields := make([]string, n)
	fields[0] = keyword
	fields[n-1] = "0"
	return fields
}

// validRecord fills every count slot of the named schema with "0" so the
// record decodes.
func validRecord(info SchemaInfo) []string {
	fields := blankRecord(info.Keyword, info.Length)
	for _, sl := range info.Slots {
		if sl.Kind == KindCount.String() {
			fields[sl.Position] = "0"
		}
	}
	return fields
}

func joinLine(fields []string) string {
	return `"` + strings.Join(fields, `","`) + `"`
}

func itoa(i int) string { return strconv.Itoa(i) }

func ptrFloat(v float64) *float64 { return &v }

func ptrUint(v uint32) *uint32 { return &v }
