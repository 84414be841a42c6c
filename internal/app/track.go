package app

import (
	"context"
	"errors"
	"time"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/rs/zerolog/log"

	"vkstatus/internal/core"
	"vkstatus/internal/ports"
	"vkstatus/internal/types"
)

const DefaultTrackInterval = 5 * time.Second

// Track polls users.get at a fixed interval, logging every status
// transition until the context is cancelled. Cancellation is a clean
// stop; any poll error ends the loop immediately.
func (s Service) Track(ctx context.Context, req TrackRequest) error {
	ids := req.UserIDs
	interval := req.Interval
	if req.WatchFile != "" {
		list, err := s.WatchFiles.LoadWatchList(req.WatchFile)
		if err != nil {
			return err
		}
		if len(ids) == 0 {
			ids = list.Users
		}
		if interval == 0 && list.IntervalSeconds > 0 {
			interval = time.Duration(list.IntervalSeconds) * time.Second
		}
	}
	if interval == 0 {
		interval = DefaultTrackInterval
	}
	if len(ids) == 0 {
		return errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("at least one user id is required")
	}
	if interval < time.Second {
		return errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("refresh interval must be at least one second")
	}

	var sink ports.StatusLogWriterPort
	if req.LogPath != "" {
		format := req.LogFormat
		if format == "" {
			format = types.LogFormatCSV
		}
		opened, err := s.OpenStatusLog(req.LogPath, format)
		if err != nil {
			return err
		}
		sink = opened
		defer sink.Close()
	}

	users, err := s.poll(ctx, ids, sink)
	if err != nil {
		return err
	}
	for _, user := range users {
		logStatus(ctx, user)
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			log.Ctx(ctx).Debug().Msg("tracking stopped")
			return nil
		case <-ticker.C:
			updated, err := s.poll(ctx, ids, sink)
			if err != nil {
				// cancellation surfaces as a request error mid-poll
				if errors.Is(err, context.Canceled) || ctx.Err() != nil {
					return nil
				}
				return err
			}
			for _, user := range core.DiffOnline(users, updated) {
				log.Ctx(ctx).Info().Msg(core.FormatTransition(user))
			}
			users = updated
		}
	}
}

func (s Service) poll(ctx context.Context, ids []string, sink ports.StatusLogWriterPort) ([]types.User, error) {
	users, err := s.API.UsersGet(ctx, ids, statusFields)
	if err != nil {
		return nil, err
	}
	if sink != nil {
		if err := sink.Append(core.RecordsFromUsers(users, s.Clock())); err != nil {
			return nil, err
		}
	}
	return users, nil
}
