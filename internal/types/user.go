package types

import (
	"fmt"
	"time"
)

// Platform identifies the VK client a user was last seen on.
// Values mirror the numeric platform codes of the users.get API.
type Platform int

const (
	PlatformUnknown Platform = 0
	PlatformMobile  Platform = 1
	PlatformIPhone  Platform = 2
	PlatformIPad    Platform = 3
	PlatformAndroid Platform = 4
	PlatformWPhone  Platform = 5
	PlatformWindows Platform = 6
	PlatformWeb     Platform = 7
)

func (p Platform) String() string {
	switch p {
	case PlatformMobile:
		return "mobile"
	case PlatformIPhone:
		return "iphone"
	case PlatformIPad:
		return "ipad"
	case PlatformAndroid:
		return "android"
	case PlatformWPhone:
		return "wphone"
	case PlatformWindows:
		return "windows"
	case PlatformWeb:
		return "web"
	default:
		return "unknown"
	}
}

// LastSeen is the moment and client platform of a user's last activity.
type LastSeen struct {
	Time     time.Time
	Platform Platform
}

func (l LastSeen) IsZero() bool {
	return l.Time.IsZero()
}

// User is a single users.get record. Identity is the UID; the remaining
// fields are whatever the API returned for the requested field set.
type User struct {
	UID        int64
	FirstName  string
	LastName   string
	ScreenName string
	Online     bool
	LastSeen   LastSeen
}

// DisplayName renders "Last First", falling back to the first name alone
// when the last name is absent.
func (u User) DisplayName() string {
	if u.LastName != "" {
		return fmt.Sprintf("%s %s", u.LastName, u.FirstName)
	}
	return u.FirstName
}

// EffectiveScreenName returns the screen name, defaulting to the
// canonical "id<uid>" form when none was set.
func (u User) EffectiveScreenName() string {
	if u.ScreenName != "" {
		return u.ScreenName
	}
	return fmt.Sprintf("id%d", u.UID)
}
