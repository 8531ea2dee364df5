package api

import (
	"context"

	"github.com/kervan-app/kervan-mobile/internal/domain"
)

//go:generate go run go.uber.org/mock/mockgen -source=api.go -destination=mocks/mock.go -package=mocks

// TokenProvider hands out the bearer token for outgoing requests. An
// empty token means signed out; requests then go unauthenticated.
type TokenProvider interface {
	Token(ctx context.Context) (string, error)
}

// Client is the REST surface of the backend. All flows talk to the
// backend exclusively through it; none of the methods retry.
type Client interface {
	UploadFiles(ctx context.Context, files []domain.FileUpload) ([]domain.UploadedFile, error)
	CreatePost(ctx context.Context, req domain.CreatePostRequest) (*domain.Post, error)
	PromotePost(ctx context.Context, postID string, promotionType string) error
	CreateStory(ctx context.Context, draft domain.StoryDraft) error
	SubmitReport(ctx context.Context, report domain.Report) error
	GetUnreadNotificationCount(ctx context.Context) (int, error)
	GetPosts(ctx context.Context, filter domain.FeedFilter) ([]domain.Post, error)
	GetUsers(ctx context.Context, filter domain.FeedFilter) ([]domain.User, error)
}
