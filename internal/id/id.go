package id

import (
	"fmt"
	"time"
)

// GenerateID creates a time-derived record ID: a UTC timestamp down to
// microseconds, e.g. "20260901153004123456". Microsecond resolution keeps
// IDs unique at normal request cadence; two appends landing in the same
// microsecond would collide.
func GenerateID() string {
	now := time.Now().UTC()
	return now.Format("20060102150405") + fmt.Sprintf("%06d", now.Nanosecond()/1000)
}
