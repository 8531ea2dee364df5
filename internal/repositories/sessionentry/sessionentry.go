package sessionentry

import (
	"context"
	"errors"
)

var ErrNotFound = errors.New("session entry not found")
var ErrCannotSave = errors.New("error save session entry")

//go:generate go run go.uber.org/mock/mockgen -source=sessionentry.go -destination=mocks/mock.go

// Repository persists the client's local key-value state (token,
// identity fields, device preferences, per-entity ephemeral flags).
type Repository interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key string, value string) error
	Delete(ctx context.Context, key string) error
	DeleteAllExcept(ctx context.Context, keep []string) error
}
