package app

import (
	"context"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/rs/zerolog/log"

	"vkstatus/internal/core"
	"vkstatus/internal/types"
)

// ShowStatus fetches the current status of the requested users and logs
// one status line per user, plus a last-seen line for offline users.
func (s Service) ShowStatus(ctx context.Context, req StatusRequest) ([]types.User, error) {
	if len(req.UserIDs) == 0 {
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("at least one user id is required")
	}
	users, err := s.API.UsersGet(ctx, req.UserIDs, statusFields)
	if err != nil {
		return nil, err
	}
	for _, user := range users {
		logStatus(ctx, user)
	}
	return users, nil
}

func logStatus(ctx context.Context, user types.User) {
	log.Ctx(ctx).Info().Msg(core.FormatStatus(user))
	if !user.Online && !user.LastSeen.IsZero() {
		log.Ctx(ctx).Info().Msg(core.FormatLastSeen(user))
	}
}
