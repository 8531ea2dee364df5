package publisherimpl

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/kervan-app/kervan-mobile/internal/controller"
	"github.com/kervan-app/kervan-mobile/internal/domain"
	apperrors "github.com/kervan-app/kervan-mobile/pkg/errors"
	"go.uber.org/mock/gomock"
)

func TestPublishShortLifecycle(t *testing.T) {
	h := newHarness(t)

	video := domain.FileUpload{Name: "clip.mp4", Data: []byte("video")}
	cover := domain.FileUpload{Name: "cover.jpg", Data: []byte("not decodable")}
	voice := domain.FileUpload{Name: "voice.m4a", Data: []byte("audio")}

	h.api.EXPECT().
		UploadFiles(gomock.Any(), gomock.Len(3)).
		DoAndReturn(func(context.Context, []domain.FileUpload) ([]domain.UploadedFile, error) {
			// Holds the flow in its uploading phase long enough for the
			// progress assertions below.
			time.Sleep(60 * time.Millisecond)
			return []domain.UploadedFile{
				{FilePath: "/u/clip.mp4", FileType: domain.FileTypeVideo},
				{FilePath: "/u/cover.jpg", FileType: domain.FileTypeImage},
				{FilePath: "/u/voice.m4a", FileType: domain.FileTypeAudio},
			}, nil
		})

	var mu sync.Mutex
	var captured domain.CreatePostRequest
	h.api.EXPECT().
		CreatePost(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, req domain.CreatePostRequest) (*domain.Post, error) {
			mu.Lock()
			captured = req
			mu.Unlock()
			return &domain.Post{ID: "s1"}, nil
		})
	h.store.EXPECT().Set(gomock.Any(), "just_posted_short", "true").Return(nil)

	h.ctrl.OpenModal(controller.ModalShortWizard)

	draft := domain.ShortDraft{
		Content:       "new short",
		VideoFile:     &video,
		CoverFile:     &cover,
		VoiceoverFile: &voice,
		Audio:         domain.AudioSettings{OriginalVolume: 0.5},
	}
	if err := h.pub.PublishShort(context.Background(), draft); err != nil {
		t.Fatalf("PublishShort returned error: %v", err)
	}

	snap := h.ctrl.Snapshot()
	if snap.OpenModals[controller.ModalShortWizard] {
		t.Fatal("expected wizard closed on submit")
	}
	if !snap.VideoUpload.IsActive {
		t.Fatal("expected indicator active on submit")
	}
	if snap.VideoUpload.Status != domain.VideoUploadCompressing {
		t.Fatalf("expected compressing first, got %s", snap.VideoUpload.Status)
	}

	// During upload the simulated progress moves but stays clamped.
	waitFor(t, func() bool {
		s := h.ctrl.Snapshot()
		return s.VideoUpload.Status == domain.VideoUploadUploading && s.VideoUpload.Progress > 0
	}, "progress never started")
	if p := h.ctrl.Snapshot().VideoUpload.Progress; p > 90 {
		t.Fatalf("expected progress clamped at 90 while uploading, got %d", p)
	}

	waitFor(t, func() bool {
		s := h.ctrl.Snapshot()
		return s.VideoUpload.IsActive && s.VideoUpload.Status == domain.VideoUploadSuccess
	}, "short never reached success")
	if p := h.ctrl.Snapshot().VideoUpload.Progress; p != 100 {
		t.Fatalf("expected progress 100 on success, got %d", p)
	}

	waitFor(t, func() bool {
		return !h.ctrl.Snapshot().VideoUpload.IsActive
	}, "indicator was not dismissed after success")

	mu.Lock()
	defer mu.Unlock()
	if !captured.IsShort {
		t.Fatal("expected isShort on payload")
	}
	if len(captured.Media) != 1 {
		t.Fatalf("expected a single media entry, got %d", len(captured.Media))
	}
	if captured.Media[0].URL != "/u/clip.mp4" || captured.Media[0].Thumbnail != "/u/cover.jpg" {
		t.Fatalf("unexpected media entry: %+v", captured.Media[0])
	}
	if captured.Voiceover != "/u/voice.m4a" {
		t.Fatalf("expected voiceover path, got %q", captured.Voiceover)
	}
	if captured.Audio == nil || captured.Audio.OriginalVolume != 0.5 {
		t.Fatalf("expected audio settings carried over, got %+v", captured.Audio)
	}
}

func TestPublishShortSingleFileFallback(t *testing.T) {
	h := newHarness(t)

	video := domain.FileUpload{Name: "raw", Data: []byte("video")}
	h.api.EXPECT().
		UploadFiles(gomock.Any(), gomock.Len(1)).
		Return([]domain.UploadedFile{{FilePath: "/u/af29c1"}}, nil)

	var mu sync.Mutex
	var captured domain.CreatePostRequest
	h.api.EXPECT().
		CreatePost(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, req domain.CreatePostRequest) (*domain.Post, error) {
			mu.Lock()
			captured = req
			mu.Unlock()
			return &domain.Post{ID: "s2"}, nil
		})
	h.store.EXPECT().Set(gomock.Any(), "just_posted_short", "true").Return(nil)

	if err := h.pub.PublishShort(context.Background(), domain.ShortDraft{VideoFile: &video}); err != nil {
		t.Fatalf("PublishShort returned error: %v", err)
	}

	waitFor(t, func() bool {
		s := h.ctrl.Snapshot()
		return s.VideoUpload.IsActive && s.VideoUpload.Status == domain.VideoUploadSuccess
	}, "short never reached success")

	// Without a cover the sole descriptor is the video, even with no
	// type and no recognizable extension.
	mu.Lock()
	defer mu.Unlock()
	if captured.Media[0].URL != "/u/af29c1" {
		t.Fatalf("unexpected video url: %q", captured.Media[0].URL)
	}
	if captured.Media[0].Thumbnail != "" {
		t.Fatalf("expected no thumbnail, got %q", captured.Media[0].Thumbnail)
	}
}

func TestPublishShortVideoNotFound(t *testing.T) {
	h := newHarness(t)

	video := domain.FileUpload{Name: "clip.mp4", Data: []byte("video")}
	cover := domain.FileUpload{Name: "cover.jpg", Data: []byte("img")}

	// The server answers with image descriptors only; with a cover in
	// the batch no positional fallback may claim one as the video.
	h.api.EXPECT().
		UploadFiles(gomock.Any(), gomock.Any()).
		Return([]domain.UploadedFile{
			{FilePath: "/u/one.jpg", FileType: domain.FileTypeImage},
			{FilePath: "/u/two.jpg", FileType: domain.FileTypeImage},
		}, nil)

	draft := domain.ShortDraft{VideoFile: &video, CoverFile: &cover}
	if err := h.pub.PublishShort(context.Background(), draft); err != nil {
		t.Fatalf("PublishShort returned error: %v", err)
	}

	waitFor(t, func() bool {
		s := h.ctrl.Snapshot()
		return s.VideoUpload.IsActive && s.VideoUpload.Status == domain.VideoUploadError
	}, "short never reached error status")

	if msg := h.ctrl.Snapshot().VideoUpload.ErrorMsg; msg != "video link not found" {
		t.Fatalf("unexpected error message: %q", msg)
	}

	waitFor(t, func() bool {
		return !h.ctrl.Snapshot().VideoUpload.IsActive
	}, "failed indicator was not dismissed")
}

func TestPublishShortRejectsWhileActive(t *testing.T) {
	h := newHarness(t)

	h.ctrl.SetVideoUpload(domain.VideoUploadState{IsActive: true, Status: domain.VideoUploadUploading})

	video := domain.FileUpload{Name: "clip.mp4", Data: []byte("video")}
	err := h.pub.PublishShort(context.Background(), domain.ShortDraft{VideoFile: &video})
	if !apperrors.Is(err, apperrors.ErrInFlight) {
		t.Fatalf("expected ErrInFlight, got %v", err)
	}
}

func TestPublishShortValidation(t *testing.T) {
	h := newHarness(t)

	if err := h.pub.PublishShort(context.Background(), domain.ShortDraft{}); err == nil {
		t.Fatal("expected validation error without a video file")
	}
	if h.ctrl.Snapshot().VideoUpload.IsActive {
		t.Fatal("rejected draft must not activate the indicator")
	}
}
