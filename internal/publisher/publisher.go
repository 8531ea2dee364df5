package publisher

import (
	"context"

	"github.com/kervan-app/kervan-mobile/internal/domain"
)

// Client drives the three optimistic publish flows. Each call mutates
// UI state synchronously, kicks off one detached background task and
// returns; an error only means the submission was rejected up front
// (incomplete draft or another submission in flight). Background
// outcomes surface exclusively through controller state.
type Client interface {
	PublishPost(ctx context.Context, draft domain.PostDraft) error
	PublishShort(ctx context.Context, draft domain.ShortDraft) error
	PublishStory(ctx context.Context, draft domain.StoryDraft) error
}
