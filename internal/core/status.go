package core

import (
	"fmt"
	"time"

	"vkstatus/internal/types"
)

const lastSeenLayout = "2006-01-02 15:04:05"

// FormatStatus renders the current status line for a user:
// "Tensin Egor is ONLINE".
func FormatStatus(user types.User) string {
	if user.Online {
		return fmt.Sprintf("%s is ONLINE", user.DisplayName())
	}
	return fmt.Sprintf("%s is OFFLINE", user.DisplayName())
}

// FormatLastSeen renders the last-seen line for an offline user. The
// platform is appended when the API reported one.
func FormatLastSeen(user types.User) string {
	when := user.LastSeen.Time.UTC().Format(lastSeenLayout)
	if user.LastSeen.Platform == types.PlatformUnknown {
		return fmt.Sprintf("%s was last seen at %s", user.DisplayName(), when)
	}
	return fmt.Sprintf("%s was last seen at %s on %s", user.DisplayName(), when, user.LastSeen.Platform)
}

// FormatTransition renders a status-change line:
// "Tensin Egor went ONLINE".
func FormatTransition(user types.User) string {
	if user.Online {
		return fmt.Sprintf("%s went ONLINE", user.DisplayName())
	}
	return fmt.Sprintf("%s went OFFLINE", user.DisplayName())
}

// DiffOnline returns the users from next whose online flag differs from
// the previous snapshot. Users absent from the previous snapshot are not
// reported; the first sighting is a status, not a transition.
func DiffOnline(prev []types.User, next []types.User) []types.User {
	before := make(map[int64]bool, len(prev))
	for _, user := range prev {
		before[user.UID] = user.Online
	}
	var changed []types.User
	for _, user := range next {
		if online, seen := before[user.UID]; seen && online != user.Online {
			changed = append(changed, user)
		}
	}
	return changed
}

// RecordsFromUsers converts a users.get snapshot into status records
// stamped with the observation time.
func RecordsFromUsers(users []types.User, observedAt time.Time) []types.StatusRecord {
	records := make([]types.StatusRecord, 0, len(users))
	for _, user := range users {
		records = append(records, types.StatusRecord{
			UID:        user.UID,
			FirstName:  user.FirstName,
			LastName:   user.LastName,
			ScreenName: user.EffectiveScreenName(),
			Online:     user.Online,
			LastSeen:   user.LastSeen,
			ObservedAt: observedAt.UTC(),
		})
	}
	return records
}
