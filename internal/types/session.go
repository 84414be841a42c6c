package types

import "time"

// StatusRecord is one observation of one user, as appended to a status
// log by the tracking loop.
type StatusRecord struct {
	UID        int64
	FirstName  string
	LastName   string
	ScreenName string
	Online     bool
	LastSeen   LastSeen
	ObservedAt time.Time
}

// Session is a contiguous online streak reconstructed from a status log.
type Session struct {
	UID   int64
	Start time.Time
	End   time.Time
}

func (s Session) Duration() time.Duration {
	return s.End.Sub(s.Start)
}

// DurationRow is one line of a sessions report: a label (user, date,
// weekday or hour bucket) with the total online time attributed to it.
type DurationRow struct {
	UID        int64
	FirstName  string
	LastName   string
	ScreenName string
	Bucket     string
	Duration   time.Duration
}
