package app

import (
	"context"

	"github.com/rs/zerolog/log"
)

// selfTestUser is the canonical account the self-test checks against.
const selfTestUser = "egor.tensin"

// SelfTest runs the status operation once for the canonical account.
// Extra user ids replace the canonical one; the result of the single
// invocation is the result of the self-test, nothing is retried.
func (s Service) SelfTest(ctx context.Context, userIDs []string) error {
	ids := userIDs
	if len(ids) == 0 {
		ids = []string{selfTestUser}
	}
	if _, err := s.ShowStatus(ctx, StatusRequest{UserIDs: ids}); err != nil {
		return err
	}
	log.Ctx(ctx).Info().Strs("users", ids).Msg("self-test passed")
	return nil
}
