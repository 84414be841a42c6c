package core

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vkstatus/internal/types"
)

func TestFormatStatus(t *testing.T) {
	online := types.User{UID: 1, FirstName: "Egor", LastName: "Tensin", Online: true}
	offline := types.User{UID: 2, FirstName: "Ivan", Online: false}

	assert.Equal(t, "Tensin Egor is ONLINE", FormatStatus(online))
	assert.Equal(t, "Ivan is OFFLINE", FormatStatus(offline))
}

func TestFormatLastSeen(t *testing.T) {
	user := types.User{
		UID:       1,
		FirstName: "Egor",
		LastName:  "Tensin",
		LastSeen: types.LastSeen{
			Time:     time.Date(2016, 5, 2, 10, 30, 0, 0, time.UTC),
			Platform: types.PlatformWeb,
		},
	}
	assert.Equal(t, "Tensin Egor was last seen at 2016-05-02 10:30:00 on web", FormatLastSeen(user))

	user.LastSeen.Platform = types.PlatformUnknown
	assert.Equal(t, "Tensin Egor was last seen at 2016-05-02 10:30:00", FormatLastSeen(user))
}

func TestFormatTransition(t *testing.T) {
	user := types.User{UID: 1, FirstName: "Egor", LastName: "Tensin", Online: true}
	assert.Equal(t, "Tensin Egor went ONLINE", FormatTransition(user))
	user.Online = false
	assert.Equal(t, "Tensin Egor went OFFLINE", FormatTransition(user))
}

func TestDiffOnline(t *testing.T) {
	prev := []types.User{
		{UID: 1, Online: true},
		{UID: 2, Online: false},
		{UID: 3, Online: true},
	}
	next := []types.User{
		{UID: 1, Online: false},
		{UID: 2, Online: false},
		{UID: 3, Online: true},
		{UID: 4, Online: true},
	}
	changed := DiffOnline(prev, next)
	require.Len(t, changed, 1)
	assert.Equal(t, int64(1), changed[0].UID)
}

func TestRecordsFromUsers(t *testing.T) {
	observedAt := time.Date(2016, 5, 2, 10, 0, 0, 0, time.UTC)
	users := []types.User{{UID: 7, FirstName: "Egor", Online: true}}
	records := RecordsFromUsers(users, observedAt)
	require.Len(t, records, 1)
	assert.Equal(t, int64(7), records[0].UID)
	assert.Equal(t, "id7", records[0].ScreenName)
	assert.Equal(t, observedAt, records[0].ObservedAt)
}
