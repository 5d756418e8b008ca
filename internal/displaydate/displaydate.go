// Package displaydate formats the display timestamps carried on quiz and
// encouragement records ("8/31/2026 4:05:09 PM"). The format is part of the
// stored data, so parsing must accept exactly what Format produces.
package displaydate

import "time"

const Layout = "1/2/2006 3:04:05 PM"

func Format(t time.Time) string {
	return t.Format(Layout)
}

// Parse returns the zero time on malformed input so callers sorting by date
// can push unparseable records to the end instead of failing.
func Parse(s string) time.Time {
	t, err := time.Parse(Layout, s)
	if err != nil {
		return time.Time{}
	}
	return t
}
