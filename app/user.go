package app

import (
	"context"

	"github.com/CrestNiraj12/terminalfeed/domain"
)

// UserService loads the author directory.
// Implemented by infrastructure (e.g. a local JSON file reader).
type UserService interface {
	FetchUsers(ctx context.Context) ([]domain.User, error)
}
