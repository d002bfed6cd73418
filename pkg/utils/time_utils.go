package utils

import "time"

// Cambodia time location (ICT, +07:00)
var khLoc = func() *time.Location {
	if loc, err := time.LoadLocation("Asia/Phnom_Penh"); err == nil {
		return loc
	}
	return time.FixedZone("ICT", 7*3600)
}()

func NowUnixSeconds() int64 { return time.Now().Unix() }

// FromUnixSecondsKH converts an epoch value in seconds to Cambodia time.
// Returns zero time if t<=0 to let callers decide how to render.
func FromUnixSecondsKH(t int64) time.Time {
	if t <= 0 {
		return time.Time{}
	}
	return time.Unix(t, 0).In(khLoc)
}

func FormatRFC3339KH(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.In(khLoc).Format(time.RFC3339)
}
