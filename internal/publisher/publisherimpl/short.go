package publisherimpl

import (
	"context"
	"runtime/debug"
	"time"

	"github.com/kervan-app/kervan-mobile/internal/controller"
	"github.com/kervan-app/kervan-mobile/internal/domain"
	"github.com/kervan-app/kervan-mobile/internal/media"
	"github.com/kervan-app/kervan-mobile/internal/session"
	"github.com/kervan-app/kervan-mobile/pkg/errors"
)

// PublishShort closes the wizard immediately and reports the whole
// compress/upload/create sequence through the global video indicator.
func (p *PublisherImpl) PublishShort(ctx context.Context, draft domain.ShortDraft) error {
	if err := p.validate.Struct(draft); err != nil {
		return errors.Wrap(err, "short draft is incomplete")
	}
	if p.Controller.Snapshot().VideoUpload.IsActive || !p.Guard.Allow(flowShort) {
		return errors.ErrInFlight
	}

	var thumbnail []byte
	if draft.CoverFile != nil {
		thumbnail = media.Thumbnail(*draft.CoverFile)
	}

	p.Controller.CloseModal(controller.ModalShortWizard)
	p.Controller.SetActiveTab(controller.TabHome)
	p.Controller.SetVideoUpload(domain.VideoUploadState{
		IsActive:  true,
		Status:    domain.VideoUploadCompressing,
		Thumbnail: thumbnail,
	})

	go p.runShortPublish(context.WithoutCancel(ctx), draft)
	return nil
}

func (p *PublisherImpl) runShortPublish(ctx context.Context, draft domain.ShortDraft) {
	defer func() {
		if r := recover(); r != nil {
			p.Logger.Error("Panic in short publish task", "panic", r, "stack", string(debug.Stack()))
			p.failShort(errors.New("publishing failed unexpectedly"))
		}
	}()

	// Stand-in for client-side compression.
	time.Sleep(p.CompressDelay)

	p.Controller.SetVideoStatus(domain.VideoUploadUploading, "")
	sim := startProgress(p.ShortTickInterval, p.Controller.SetVideoProgress)

	files := []domain.FileUpload{*draft.VideoFile}
	if draft.CoverFile != nil {
		files = append(files, *draft.CoverFile)
	}
	if draft.VoiceoverFile != nil {
		files = append(files, *draft.VoiceoverFile)
	}

	uploaded, err := p.Api.UploadFiles(ctx, files)

	// The simulation must be dead before assembly starts, or a stale
	// tick would keep mutating progress under the final states.
	sim.Stop()

	if err != nil {
		p.failShort(err)
		return
	}

	set, err := media.Classify(uploaded, draft.CoverFile != nil)
	if err != nil {
		p.failShort(err)
		return
	}

	payload := assembleShortPayload(draft, set)
	if _, err := p.Api.CreatePost(ctx, payload); err != nil {
		p.failShort(err)
		return
	}

	if err := p.Session.Set(ctx, session.KeyJustPostedShort, "true"); err != nil {
		p.Logger.Warn("Failed to persist just-posted flag", "error", err)
	}

	p.Logger.Info("Short published")
	p.Controller.SetVideoProgress(100)
	p.Controller.SetVideoStatus(domain.VideoUploadSuccess, "")
	time.AfterFunc(p.ShortSuccessDismiss, p.Controller.DismissVideoUpload)
}

func (p *PublisherImpl) failShort(err error) {
	p.Logger.Error("Short publish failed", "error", err)
	p.Controller.SetVideoStatus(domain.VideoUploadError, errors.UserMessage(err))
	time.AfterFunc(p.ShortErrorDismiss, p.Controller.DismissVideoUpload)
}
