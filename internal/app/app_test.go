package app

import (
	"context"
	"time"

	"vkstatus/internal/adapters"
	"vkstatus/internal/ports"
	"vkstatus/internal/types"
)

// fakeAPI serves one snapshot per poll, failing once the script runs out.
type fakeAPI struct {
	snapshots [][]types.User
	err       error
	calls     int
	gotIDs    []string
	gotFields []string
}

func (f *fakeAPI) UsersGet(_ context.Context, ids []string, fields []string) ([]types.User, error) {
	f.gotIDs = ids
	f.gotFields = fields
	if f.err != nil {
		return nil, f.err
	}
	index := f.calls
	f.calls++
	if index >= len(f.snapshots) {
		index = len(f.snapshots) - 1
	}
	return f.snapshots[index], nil
}

type fakeSink struct {
	records []types.StatusRecord
	closed  bool
}

func (f *fakeSink) Append(records []types.StatusRecord) error {
	f.records = append(f.records, records...)
	return nil
}

func (f *fakeSink) Close() error {
	f.closed = true
	return nil
}

func testService(api ports.UserAPIPort) Service {
	service := NewService(adapters.VKAPIConfig{})
	service.API = api
	service.Clock = func() time.Time {
		return time.Date(2016, 5, 2, 10, 0, 0, 0, time.UTC)
	}
	return service
}
