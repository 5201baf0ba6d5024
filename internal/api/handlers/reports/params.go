package reports

import (
	"errors"
	"strconv"
	"strings"
	"time"
)

var errInvalidMonth = errors.New("month must be 1-12 or an English month name")

// parseMonth принимает номер месяца или его английское название ("3", "March", "mar")
func parseMonth(raw string) (time.Month, error) {
	if n, err := strconv.Atoi(raw); err == nil {
		if n < 1 || n > 12 {
			return 0, errInvalidMonth
		}
		return time.Month(n), nil
	}

	name := strings.ToLower(strings.TrimSpace(raw))
	if len(name) < 3 {
		return 0, errInvalidMonth
	}
	for m := time.January; m <= time.December; m++ {
		if strings.HasPrefix(strings.ToLower(m.String()), name) {
			return m, nil
		}
	}
	return 0, errInvalidMonth
}
