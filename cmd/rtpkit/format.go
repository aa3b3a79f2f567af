package main

import (
	"strconv"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"rtpkit/internal/rtp"
)

const missing = "-"

var titleCaser = cases.Title(language.Und)

func formatFloat(v *float64) string {
	if v == nil {
		return missing
	}
	return strconv.FormatFloat(*v, 'f', -1, 64)
}

func formatUint(v *uint32) string {
	if v == nil {
		return missing
	}
	return strconv.FormatUint(uint64(*v), 10)
}

func formatRotation(r *rtp.Rotation) string {
	if r == nil {
		return missing
	}
	return r.String()
}

func formatText(s string) string {
	if strings.TrimSpace(s) == "" {
		return missing
	}
	return s
}

// patientDisplayName renders "LAST, First" exports as "Last, First".
func patientDisplayName(p rtp.Plan) string {
	var parts []string
	for _, part := range []string{p.PatientLastName, p.PatientFirstName} {
		if part = strings.TrimSpace(part); part != "" {
			parts = append(parts, titleCaser.String(strings.ToLower(part)))
		}
	}
	if len(parts) == 0 {
		return missing
	}
	return strings.Join(parts, ", ")
}

// leafRange summarizes a leaf bank as "min..max (n)".
func leafRange(values []float64) string {
	if len(values) == 0 {
		return missing
	}
	lo, hi := values[0], values[0]
	for _, v := range values[1:] {
		lo = min(lo, v)
		hi = max(hi, v)
	}
	return strconv.FormatFloat(lo, 'f', -1, 64) + ".." + strconv.FormatFloat(hi, 'f', -1, 64) + " (" + strconv.Itoa(len(values)) + ")"
}
