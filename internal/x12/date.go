package x12

import (
	"strings"
	"time"
)

func parseCCYYMMDD(s string) *time.Time {
	t, err := time.Parse("20060102", strings.TrimSpace(s))
	if err != nil {
		return nil
	}
	return &t
}

// parseDTPDate interprets a DTP segment's date-format qualifier (DTP02)
// and value (DTP03): "D8" is a single CCYYMMDD date, "RD8" is a
// CCYYMMDD-CCYYMMDD range.
func parseDTPDate(formatQualifier, value string) (from, to *time.Time) {
	if formatQualifier == "RD8" {
		parts := strings.SplitN(value, "-", 2)
		from = parseCCYYMMDD(parts[0])
		if len(parts) > 1 {
			to = parseCCYYMMDD(parts[1])
		} else {
			to = from
		}
		return from, to
	}
	d := parseCCYYMMDD(value)
	return d, d
}
