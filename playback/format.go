package playback

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// FormatDuration renders seconds as M:SS, or H:MM:SS from one hour up.
// Negative and non-finite input renders as 0:00.
func FormatDuration(seconds float64) string {
	if math.IsNaN(seconds) || math.IsInf(seconds, 0) || seconds < 0 {
		seconds = 0
	}

	total := int64(seconds)
	s := total % 60
	m := (total / 60) % 60
	h := total / 3600

	if h == 0 {
		return fmt.Sprintf("%d:%02d", m, s)
	}
	return fmt.Sprintf("%d:%02d:%02d", h, m, s)
}

// ParseTimestamp reads S, M:SS or H:MM:SS back into seconds.
// Fields after the first must be below 60.
func ParseTimestamp(s string) (float64, error) {
	parts := strings.Split(strings.TrimSpace(s), ":")
	if len(parts) > 3 || parts[0] == "" {
		return 0, fmt.Errorf("invalid timestamp %q", s)
	}

	var total float64
	for i, part := range parts {
		v, err := strconv.ParseFloat(part, 64)
		if err != nil || v < 0 || math.IsInf(v, 0) || math.IsNaN(v) {
			return 0, fmt.Errorf("invalid timestamp %q", s)
		}
		if i > 0 && v >= 60 {
			return 0, fmt.Errorf("invalid timestamp %q: field %q out of range", s, part)
		}
		total = total*60 + v
	}
	return total, nil
}
