package ports

import (
	"context"

	"vkstatus/internal/types"
)

type UserAPIPort interface {
	UsersGet(ctx context.Context, ids []string, fields []string) ([]types.User, error)
}
