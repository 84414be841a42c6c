package core

import (
	"context"
	"fmt"
	"sort"
	"time"

	assert "github.com/ZanzyTHEbar/assert-lib"
	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/rs/zerolog/log"

	"vkstatus/internal/types"
)

// weekdayOrder fixes Monday-first report ordering.
var weekdayOrder = []time.Weekday{
	time.Monday,
	time.Tuesday,
	time.Wednesday,
	time.Thursday,
	time.Friday,
	time.Saturday,
	time.Sunday,
}

type userIdentity struct {
	firstName  string
	lastName   string
	screenName string
}

// EnumerateSessions reconstructs online streaks from a status log. A
// streak opens at the first online observation of a user and closes at
// the next offline one; a streak still open at end of input has an
// unknown end and is discarded. Per-user timestamps must be
// non-decreasing.
func EnumerateSessions(ctx context.Context, records []types.StatusRecord) ([]types.Session, map[int64]types.StatusRecord, error) {
	identities := map[int64]types.StatusRecord{}
	open := map[int64]time.Time{}
	last := map[int64]time.Time{}
	var sessions []types.Session

	for _, record := range records {
		assert.NotEmpty(ctx, record.ScreenName, "status record must carry a screen name")
		if prev, ok := last[record.UID]; ok && record.ObservedAt.Before(prev) {
			return nil, nil, errbuilder.New().
				WithCode(errbuilder.CodeInvalidArgument).
				WithMsg(fmt.Sprintf("status log not chronological for %s", record.ScreenName))
		}
		last[record.UID] = record.ObservedAt
		identities[record.UID] = record

		start, streaking := open[record.UID]
		switch {
		case record.Online && !streaking:
			open[record.UID] = record.ObservedAt
		case !record.Online && streaking:
			sessions = append(sessions, types.Session{
				UID:   record.UID,
				Start: start,
				End:   record.ObservedAt,
			})
			delete(open, record.UID)
		}
	}
	log.Ctx(ctx).Debug().
		Int("records", len(records)).
		Int("sessions", len(sessions)).
		Int("discarded_open", len(open)).
		Msg("sessions enumerated")
	return sessions, identities, nil
}

// GroupDurations aggregates session durations into report rows. user
// grouping totals per user; date, weekday and hour groupings total per
// calendar bucket across all users, splitting sessions that cross a
// bucket boundary.
func GroupDurations(sessions []types.Session, identities map[int64]types.StatusRecord, groupBy types.GroupBy) ([]types.DurationRow, error) {
	switch groupBy {
	case types.GroupByUser, "":
		return groupByUser(sessions, identities), nil
	case types.GroupByDate:
		return groupByBucket(sessions, dateBucket), nil
	case types.GroupByWeekday:
		rows := groupByBucket(sessions, weekdayBucket)
		sortWeekdays(rows)
		return rows, nil
	case types.GroupByHour:
		return groupByBucket(sessions, hourBucket), nil
	default:
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg(fmt.Sprintf("unsupported grouping: %s", groupBy))
	}
}

func groupByUser(sessions []types.Session, identities map[int64]types.StatusRecord) []types.DurationRow {
	totals := map[int64]time.Duration{}
	for _, session := range sessions {
		totals[session.UID] += session.Duration()
	}
	rows := make([]types.DurationRow, 0, len(totals))
	for uid, total := range totals {
		identity := identities[uid]
		rows = append(rows, types.DurationRow{
			UID:        uid,
			FirstName:  identity.FirstName,
			LastName:   identity.LastName,
			ScreenName: identity.ScreenName,
			Duration:   total,
		})
	}
	sort.Slice(rows, func(i, j int) bool { return rows[i].UID < rows[j].UID })
	return rows
}

// bucketFunc maps an instant to its bucket label and the start of the
// following bucket, so sessions can be split at bucket boundaries.
type bucketFunc func(t time.Time) (string, time.Time)

func groupByBucket(sessions []types.Session, bucket bucketFunc) []types.DurationRow {
	totals := map[string]time.Duration{}
	for _, session := range sessions {
		cursor := session.Start.UTC()
		end := session.End.UTC()
		for cursor.Before(end) {
			label, next := bucket(cursor)
			edge := next
			if end.Before(edge) {
				edge = end
			}
			totals[label] += edge.Sub(cursor)
			cursor = edge
		}
	}
	labels := make([]string, 0, len(totals))
	for label := range totals {
		labels = append(labels, label)
	}
	sort.Strings(labels)
	rows := make([]types.DurationRow, 0, len(labels))
	for _, label := range labels {
		rows = append(rows, types.DurationRow{Bucket: label, Duration: totals[label]})
	}
	return rows
}

func dateBucket(t time.Time) (string, time.Time) {
	day := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
	return day.Format("2006-01-02"), day.AddDate(0, 0, 1)
}

func weekdayBucket(t time.Time) (string, time.Time) {
	day := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
	return day.Weekday().String(), day.AddDate(0, 0, 1)
}

func hourBucket(t time.Time) (string, time.Time) {
	hour := time.Date(t.Year(), t.Month(), t.Day(), t.Hour(), 0, 0, 0, time.UTC)
	return fmt.Sprintf("%02d", t.Hour()), hour.Add(time.Hour)
}

func sortWeekdays(rows []types.DurationRow) {
	rank := map[string]int{}
	for i, day := range weekdayOrder {
		rank[day.String()] = i
	}
	sort.Slice(rows, func(i, j int) bool {
		return rank[rows[i].Bucket] < rank[rows[j].Bucket]
	})
}
