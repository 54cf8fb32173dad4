package services

import "time"

// validISODate reports whether s is a real calendar date in YYYY-MM-DD form.
func validISODate(s string) bool {
	_, err := time.Parse("2006-01-02", s)
	return err == nil
}

// todayUTC returns the current UTC date in YYYY-MM-DD form.
func todayUTC(now func() time.Time) string {
	if now == nil {
		now = time.Now
	}
	return now().UTC().Format("2006-01-02")
}
