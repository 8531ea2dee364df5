package publisherimpl

import (
	"context"
	"runtime/debug"
	"strings"

	"github.com/kervan-app/kervan-mobile/internal/controller"
	"github.com/kervan-app/kervan-mobile/internal/domain"
	"github.com/kervan-app/kervan-mobile/internal/media"
	"github.com/kervan-app/kervan-mobile/pkg/errors"
)

// PublishStory closes the composer, drops an optimistic bubble into the
// stories strip and uploads in the background. The outcome is a
// one-shot alert rather than a persistent indicator.
func (p *PublisherImpl) PublishStory(ctx context.Context, draft domain.StoryDraft) error {
	if draft.MediaFile == nil && strings.TrimSpace(draft.TextContent) == "" {
		return errors.Wrap(errors.ErrInvalidInput, "story needs text or media")
	}
	if !p.Guard.Allow(flowStory) {
		return errors.ErrInFlight
	}

	p.Controller.CloseModal(controller.ModalStoryComposer)
	p.Controller.SetStoryUploading(true)
	p.Controller.SetPendingStory(pendingStoryFrom(draft))
	p.Controller.BumpStoriesRefresh()

	go p.runStoryPublish(context.WithoutCancel(ctx), draft)
	return nil
}

func (p *PublisherImpl) runStoryPublish(ctx context.Context, draft domain.StoryDraft) {
	defer func() {
		if r := recover(); r != nil {
			p.Logger.Error("Panic in story publish task", "panic", r, "stack", string(debug.Stack()))
		}
		// The authoritative server story replaces the bubble either
		// way; the strip refetches on the bumped key.
		p.Controller.SetStoryUploading(false)
		p.Controller.ClearPendingStory()
		p.Controller.BumpStoriesRefresh()
	}()

	sim := startProgress(p.StoryTickInterval, p.Controller.SetStoryProgress)
	err := p.Api.CreateStory(ctx, draft)
	sim.Stop()

	if err != nil {
		p.Logger.Error("Story publish failed", "error", err)
		p.Controller.ShowAlert(errors.UserMessage(err))
		p.Controller.SetStoryProgress(0)
		return
	}

	p.Logger.Info("Story published", "type", string(draft.Type()))
}

func pendingStoryFrom(draft domain.StoryDraft) *domain.PendingStory {
	storyType := draft.Type()

	pending := &domain.PendingStory{
		Type: storyType,
	}

	if storyType == domain.StoryTypeText {
		pending.Content = draft.TextContent
		pending.Color = draft.BackgroundColor
		return pending
	}

	pending.Content = draft.MediaFile.Name
	if storyType == domain.StoryTypeImage {
		pending.Preview = media.Thumbnail(*draft.MediaFile)
	}
	return pending
}
