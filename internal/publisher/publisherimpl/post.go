package publisherimpl

import (
	"context"
	"runtime/debug"
	"time"

	"github.com/google/uuid"
	"github.com/kervan-app/kervan-mobile/internal/controller"
	"github.com/kervan-app/kervan-mobile/internal/domain"
	"github.com/kervan-app/kervan-mobile/internal/media"
	"github.com/kervan-app/kervan-mobile/pkg/errors"
)

// PublishPost renders the optimistic pending card, returns control to
// the UI and finishes the upload + creation in the background.
func (p *PublisherImpl) PublishPost(ctx context.Context, draft domain.PostDraft) error {
	// Shorts never take the post path; routing happens before any state
	// mutation so a failed short leaves no pending post behind.
	if draft.IsShort && draft.VideoFile != nil {
		return p.PublishShort(ctx, shortDraftFromPost(draft))
	}

	if err := p.validate.Struct(draft); err != nil {
		return errors.Wrap(err, "post draft is incomplete")
	}
	if p.Controller.Snapshot().PendingPost != nil || !p.Guard.Allow(flowPost) {
		return errors.ErrInFlight
	}

	user, err := p.Session.CurrentUser(ctx)
	if err != nil {
		// Publish anyway; the server fills in the author on fetch.
		p.Logger.Warn("Failed to read cached identity for pending card", "error", err)
	}

	p.Controller.SetPendingPost(&domain.PendingPost{
		ID:      domain.PendingPostID,
		User:    user,
		TimeAgo: "Just now",
		Content: draft.Content,
		Media:   previewMedia(draft),
		Status:  domain.PendingPostPublishing,
	})
	p.Controller.CloseModal(controller.ModalCompose)
	p.Controller.SetActiveTab(controller.TabHome)

	go p.runPostPublish(context.WithoutCancel(ctx), draft)
	return nil
}

func (p *PublisherImpl) runPostPublish(ctx context.Context, draft domain.PostDraft) {
	defer func() {
		if r := recover(); r != nil {
			p.Logger.Error("Panic in post publish task", "panic", r, "stack", string(debug.Stack()))
			p.failPost(errors.New("publishing failed unexpectedly"))
		}
	}()

	payload := domain.CreatePostRequest{
		Content:      draft.Content,
		Category:     draft.Category,
		Scope:        draft.Scope,
		ContactPhone: draft.ContactPhone,
		ContactEmail: draft.ContactEmail,
		Media:        draft.MediaURLs,
	}

	if len(draft.MediaFiles) > 0 {
		files := media.PreprocessImages(
			draft.MediaFiles,
			p.Config.Upload.MaxImageDimension,
			p.Config.Upload.PreprocessWorkers,
			p.Logger,
		)

		uploaded, err := p.Api.UploadFiles(ctx, files)
		if err != nil {
			p.failPost(err)
			return
		}
		payload.Media = mediaFromDescriptors(uploaded)
	}

	created, err := p.Api.CreatePost(ctx, payload)
	if err != nil {
		p.failPost(err)
		return
	}

	if draft.PromotionType != "" {
		postID := ""
		if created != nil {
			postID = created.ID
		}
		if err := p.Api.PromotePost(ctx, postID, draft.PromotionType); err != nil {
			// Best-effort: the post itself went through, the user is
			// not told about a failed boost.
			p.Logger.Warn("Promotion activation failed", "post_id", postID, "error", err)
		}
	}

	p.Logger.Info("Post published", "category", draft.Category)
	p.Controller.UpdatePendingPostStatus(domain.PendingPostSuccess, "")
	time.AfterFunc(p.PostSuccessDismiss, p.Controller.ClearPendingPost)
}

func (p *PublisherImpl) failPost(err error) {
	p.Logger.Error("Post publish failed", "error", err)
	p.Controller.UpdatePendingPostStatus(domain.PendingPostError, errors.UserMessage(err))
	time.AfterFunc(p.PostErrorDismiss, p.Controller.ClearPendingPost)
}

// previewMedia builds the pending card's media from whatever is at
// hand: pre-existing URLs as-is, raw files as local placeholders.
func previewMedia(draft domain.PostDraft) []domain.Media {
	if len(draft.MediaURLs) > 0 {
		return draft.MediaURLs
	}

	previews := make([]domain.Media, 0, len(draft.MediaFiles))
	for _, f := range draft.MediaFiles {
		previews = append(previews, domain.Media{
			URL:  "local://" + uuid.NewString(),
			Type: localMediaType(f.Name),
		})
	}
	return previews
}

func localMediaType(name string) string {
	if media.IsVideoFile(name) {
		return domain.FileTypeVideo
	}
	return domain.FileTypeImage
}

// mediaFromDescriptors rewrites the payload's media field from the
// uploaded descriptors.
func mediaFromDescriptors(uploaded []domain.UploadedFile) []domain.Media {
	out := make([]domain.Media, 0, len(uploaded))
	for _, f := range uploaded {
		mediaType := f.FileType
		if mediaType == "" {
			mediaType = localMediaType(f.FilePath)
		}
		out = append(out, domain.Media{
			URL:  f.FilePath,
			Type: mediaType,
		})
	}
	return out
}

func shortDraftFromPost(draft domain.PostDraft) domain.ShortDraft {
	return domain.ShortDraft{
		Content:       draft.Content,
		VideoFile:     draft.VideoFile,
		Scope:         draft.Scope,
		PromotionType: draft.PromotionType,
	}
}
