package domain

import (
	"regexp"
	"strconv"
	"strings"
)

// WorkdayHours is the number of hours counted for one estimated day.
const WorkdayHours = 8

// estimatePattern accepts "1 day, 4 hours", "2 days 3 hours", "1d 4h", "1d4h",
// "3d" and "4h". Days always come before hours.
var estimatePattern = regexp.MustCompile(`^(?:(\d+)(?: days?|d))?(?:,? )?(?:(\d+)(?: hours?|h))?`)

// ParseEstimate converts a board estimate into whole hours. It returns nil
// when the text holds neither a day nor an hour component; a parsed zero
// ("0d") is returned as a non-nil 0. Unit words are matched
// case-insensitively and surrounding whitespace is ignored.
func ParseEstimate(text string) *int {
	normalized := strings.ToLower(strings.TrimSpace(text))
	m := estimatePattern.FindStringSubmatch(normalized)
	if m == nil || (m[1] == "" && m[2] == "") {
		return nil
	}

	days, ok := atoiOrZero(m[1])
	if !ok {
		return nil
	}
	hours, ok := atoiOrZero(m[2])
	if !ok {
		return nil
	}

	const maxInt = int(^uint(0) >> 1)
	if days > (maxInt-hours)/WorkdayHours {
		return nil
	}
	total := days*WorkdayHours + hours
	return &total
}

// FormatEstimate renders hours back into the abbreviated board notation,
// e.g. 12 -> "1d 4h". Nil renders as "-".
func FormatEstimate(hours *int) string {
	if hours == nil {
		return "-"
	}
	d, h := *hours/WorkdayHours, *hours%WorkdayHours
	switch {
	case d > 0 && h > 0:
		return strconv.Itoa(d) + "d " + strconv.Itoa(h) + "h"
	case d > 0:
		return strconv.Itoa(d) + "d"
	default:
		return strconv.Itoa(h) + "h"
	}
}

func atoiOrZero(s string) (int, bool) {
	if s == "" {
		return 0, true
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, false
	}
	return n, true
}
