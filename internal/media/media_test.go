package media

import (
	"errors"
	"testing"

	"github.com/kervan-app/kervan-mobile/internal/domain"
)

func TestClassifyByFileType(t *testing.T) {
	files := []domain.UploadedFile{
		{FilePath: "/uploads/a", FileType: domain.FileTypeImage},
		{FilePath: "/uploads/b", FileType: domain.FileTypeVideo},
		{FilePath: "/uploads/c", FileType: domain.FileTypeAudio},
	}

	set, err := Classify(files, true)
	if err != nil {
		t.Fatalf("Classify returned error: %v", err)
	}
	if set.Video == nil || set.Video.FilePath != "/uploads/b" {
		t.Fatalf("expected /uploads/b as video, got %+v", set.Video)
	}
	if set.Cover == nil || set.Cover.FilePath != "/uploads/a" {
		t.Fatalf("expected /uploads/a as cover, got %+v", set.Cover)
	}
	if set.Voiceover == nil || set.Voiceover.FilePath != "/uploads/c" {
		t.Fatalf("expected /uploads/c as voiceover, got %+v", set.Voiceover)
	}
}

func TestClassifyByExtensionWhenTypeMissing(t *testing.T) {
	files := []domain.UploadedFile{
		{FilePath: "/uploads/cover.jpg"},
		{FilePath: "/uploads/clip.MP4"},
	}

	set, err := Classify(files, true)
	if err != nil {
		t.Fatalf("Classify returned error: %v", err)
	}
	if set.Video == nil || set.Video.FilePath != "/uploads/clip.MP4" {
		t.Fatalf("expected clip.MP4 as video, got %+v", set.Video)
	}
	if set.Cover == nil || set.Cover.FilePath != "/uploads/cover.jpg" {
		t.Fatalf("expected cover.jpg as cover, got %+v", set.Cover)
	}
}

func TestClassifyByOriginalName(t *testing.T) {
	files := []domain.UploadedFile{
		{FilePath: "/uploads/af29c1", OriginalName: "holiday.mov"},
	}

	set, err := Classify(files, false)
	if err != nil {
		t.Fatalf("Classify returned error: %v", err)
	}
	if set.Video == nil || set.Video.FilePath != "/uploads/af29c1" {
		t.Fatalf("expected extension match on original name, got %+v", set.Video)
	}
}

func TestClassifyPositionalWithCover(t *testing.T) {
	// No type hints and no recognizable extensions: with a cover in the
	// batch the remaining non-image file must be treated as the video.
	files := []domain.UploadedFile{
		{FilePath: "/uploads/one.png"},
		{FilePath: "/uploads/two"},
	}

	set, err := Classify(files, true)
	if err != nil {
		t.Fatalf("Classify returned error: %v", err)
	}
	if set.Video == nil || set.Video.FilePath != "/uploads/two" {
		t.Fatalf("expected /uploads/two as video, got %+v", set.Video)
	}
	if set.Cover == nil || set.Cover.FilePath != "/uploads/one.png" {
		t.Fatalf("expected /uploads/one.png as cover, got %+v", set.Cover)
	}
}

func TestClassifyPositionalWithoutCover(t *testing.T) {
	files := []domain.UploadedFile{
		{FilePath: "/uploads/opaque"},
	}

	set, err := Classify(files, false)
	if err != nil {
		t.Fatalf("Classify returned error: %v", err)
	}
	if set.Video == nil || set.Video.FilePath != "/uploads/opaque" {
		t.Fatalf("expected first file as video, got %+v", set.Video)
	}
}

func TestClassifyNoVideoFound(t *testing.T) {
	files := []domain.UploadedFile{
		{FilePath: "/uploads/a.jpg", FileType: domain.FileTypeImage},
		{FilePath: "/uploads/b.png", FileType: domain.FileTypeImage},
	}

	_, err := Classify(files, true)
	if !errors.Is(err, ErrVideoNotFound) {
		t.Fatalf("expected ErrVideoNotFound, got %v", err)
	}

	if _, err := Classify(nil, false); !errors.Is(err, ErrVideoNotFound) {
		t.Fatalf("expected ErrVideoNotFound for empty batch, got %v", err)
	}
}

func TestClassifyVoiceoverFallback(t *testing.T) {
	files := []domain.UploadedFile{
		{FilePath: "/uploads/clip.mp4"},
		{FilePath: "/uploads/track", OriginalName: "voice.m4a"},
	}

	set, err := Classify(files, false)
	if err != nil {
		t.Fatalf("Classify returned error: %v", err)
	}
	if set.Voiceover == nil || set.Voiceover.FilePath != "/uploads/track" {
		t.Fatalf("expected voiceover by audio extension, got %+v", set.Voiceover)
	}
}

func TestFileKindHelpers(t *testing.T) {
	cases := []struct {
		path  string
		video bool
		image bool
		audio bool
	}{
		{"a.mp4", true, false, false},
		{"A.MOV", true, false, false},
		{"b.webm", true, false, false},
		{"c.jpeg", false, true, false},
		{"d.webp", false, true, false},
		{"e.ogg", false, false, true},
		{"f.txt", false, false, false},
		{"mp4", false, false, false},
	}

	for _, tc := range cases {
		if got := IsVideoFile(tc.path); got != tc.video {
			t.Errorf("IsVideoFile(%q) = %v, want %v", tc.path, got, tc.video)
		}
		if got := IsImageFile(tc.path); got != tc.image {
			t.Errorf("IsImageFile(%q) = %v, want %v", tc.path, got, tc.image)
		}
		if got := IsAudioFile(tc.path); got != tc.audio {
			t.Errorf("IsAudioFile(%q) = %v, want %v", tc.path, got, tc.audio)
		}
	}
}
