package session

import (
	"context"
	"fmt"

	"github.com/kervan-app/kervan-mobile/internal/domain"
)

// Keys of the persisted local state. These mirror what the app stores on
// the device between launches.
const (
	KeyToken           = "token"
	KeyUserID          = "userId"
	KeyUserName        = "userName"
	KeyUserAvatar      = "userAvatar"
	KeyUserEmail       = "userEmail"
	KeyUsername        = "username"
	KeyDarkMode        = "darkMode"
	KeyAppLanguage     = "app_language"
	KeyHasSeenWelcome  = "hasSeenWelcome"
	KeyFcmToken        = "fcmToken"
	KeyJustPostedShort = "just_posted_short"
)

// PreservedOnLogout lists the device preferences that survive a logout.
// Everything else is identity-bound and must go.
var PreservedOnLogout = []string{KeyDarkMode, KeyAppLanguage}

// FollowStatusKey is the per-user ephemeral follow flag key.
func FollowStatusKey(userID string) string {
	return fmt.Sprintf("follow_status_%s", userID)
}

//go:generate go run go.uber.org/mock/mockgen -source=session.go -destination=mocks/mock.go

// Store is the typed view over the persisted key-value state.
type Store interface {
	Token(ctx context.Context) (string, error)
	SetToken(ctx context.Context, token string) error
	CurrentUser(ctx context.Context) (domain.User, error)
	SetCurrentUser(ctx context.Context, user domain.User) error
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key string, value string) error
	Delete(ctx context.Context, key string) error
	ClearExcept(ctx context.Context, keep ...string) error
}
