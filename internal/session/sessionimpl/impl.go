package sessionimpl

import (
	"context"
	"errors"

	"github.com/kervan-app/kervan-mobile/internal/domain"
	"github.com/kervan-app/kervan-mobile/internal/repositories/sessionentry"
	"github.com/kervan-app/kervan-mobile/internal/session"
	"github.com/kervan-app/kervan-mobile/pkg/logger"
	"go.uber.org/fx"
)

type Opts struct {
	fx.In

	Repo   sessionentry.Repository
	Logger logger.Logger
}

type SessionImpl struct {
	Repo   sessionentry.Repository
	Logger logger.Logger
}

func New(opts Opts) *SessionImpl {
	return &SessionImpl{
		Repo:   opts.Repo,
		Logger: opts.Logger,
	}
}

var _ session.Store = (*SessionImpl)(nil)

// Token returns the stored bearer token, or "" when signed out.
func (s *SessionImpl) Token(ctx context.Context) (string, error) {
	token, err := s.Repo.Get(ctx, session.KeyToken)
	if err != nil {
		if errors.Is(err, sessionentry.ErrNotFound) {
			return "", nil
		}
		return "", err
	}
	return token, nil
}

func (s *SessionImpl) SetToken(ctx context.Context, token string) error {
	return s.Repo.Set(ctx, session.KeyToken, token)
}

// CurrentUser reassembles the cached identity used for optimistic cards.
// Missing fields come back empty rather than failing the publish.
func (s *SessionImpl) CurrentUser(ctx context.Context) (domain.User, error) {
	user := domain.User{}

	fields := map[string]*string{
		session.KeyUserID:     &user.ID,
		session.KeyUserName:   &user.Name,
		session.KeyUsername:   &user.Username,
		session.KeyUserAvatar: &user.Avatar,
		session.KeyUserEmail:  &user.Email,
	}

	for key, dst := range fields {
		value, err := s.Repo.Get(ctx, key)
		if err != nil {
			if errors.Is(err, sessionentry.ErrNotFound) {
				continue
			}
			return user, err
		}
		*dst = value
	}

	return user, nil
}

func (s *SessionImpl) SetCurrentUser(ctx context.Context, user domain.User) error {
	fields := map[string]string{
		session.KeyUserID:     user.ID,
		session.KeyUserName:   user.Name,
		session.KeyUsername:   user.Username,
		session.KeyUserAvatar: user.Avatar,
		session.KeyUserEmail:  user.Email,
	}

	for key, value := range fields {
		if err := s.Repo.Set(ctx, key, value); err != nil {
			return err
		}
	}
	return nil
}

func (s *SessionImpl) Get(ctx context.Context, key string) (string, error) {
	return s.Repo.Get(ctx, key)
}

func (s *SessionImpl) Set(ctx context.Context, key string, value string) error {
	return s.Repo.Set(ctx, key, value)
}

func (s *SessionImpl) Delete(ctx context.Context, key string) error {
	return s.Repo.Delete(ctx, key)
}

func (s *SessionImpl) ClearExcept(ctx context.Context, keep ...string) error {
	return s.Repo.DeleteAllExcept(ctx, keep)
}
