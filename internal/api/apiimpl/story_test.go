package apiimpl

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/kervan-app/kervan-mobile/internal/domain"
)

func TestBuildStoryFormText(t *testing.T) {
	fields := buildStoryForm(domain.StoryDraft{TextContent: "hello", BackgroundColor: "#112233"})

	if fields["type"] != "text" {
		t.Fatalf("unexpected type: %q", fields["type"])
	}
	if fields["text"] != "hello" {
		t.Fatalf("unexpected text: %q", fields["text"])
	}
	if fields["backgroundColor"] != "#112233" {
		t.Fatalf("unexpected backgroundColor: %q", fields["backgroundColor"])
	}
}

func TestBuildStoryFormTextOmitsEmptyBackground(t *testing.T) {
	fields := buildStoryForm(domain.StoryDraft{TextContent: "hello"})

	// Text always goes out, even empty color is dropped entirely.
	if _, ok := fields["text"]; !ok {
		t.Fatal("expected text field present")
	}
	if _, ok := fields["backgroundColor"]; ok {
		t.Fatal("expected backgroundColor omitted when unset")
	}
}

func TestBuildStoryFormMedia(t *testing.T) {
	start, end := 1.5, 9.25
	media := domain.FileUpload{Name: "clip.mp4", ContentType: "video/mp4"}

	fields := buildStoryForm(domain.StoryDraft{
		MediaFile:  &media,
		Caption:    "weekend",
		TrimStart:  &start,
		TrimEnd:    &end,
		Overlays:   []domain.OverlayText{{Text: "hi", X: 0.5, Y: 0.25}},
		Filter:     "vivid",
		MediaScale: 1.2,
		ObjectFit:  "cover",
	})

	if fields["type"] != "video" {
		t.Fatalf("unexpected type: %q", fields["type"])
	}
	if _, ok := fields["text"]; ok {
		t.Fatal("media stories carry no text field")
	}
	if fields["caption"] != "weekend" {
		t.Fatalf("unexpected caption: %q", fields["caption"])
	}
	if fields["trimStart"] != "1.5" || fields["trimEnd"] != "9.25" {
		t.Fatalf("unexpected trim fields: %q %q", fields["trimStart"], fields["trimEnd"])
	}
	if fields["overlays"] == "" {
		t.Fatal("expected overlays encoded")
	}
	if fields["mediaScale"] != "1.2" || fields["objectFit"] != "cover" {
		t.Fatalf("unexpected layout fields: %q %q", fields["mediaScale"], fields["objectFit"])
	}
}

func TestBuildStoryFormMediaOmitsUnsetFields(t *testing.T) {
	media := domain.FileUpload{Name: "photo.jpg"}

	fields := buildStoryForm(domain.StoryDraft{MediaFile: &media})

	if fields["type"] != "image" {
		t.Fatalf("unexpected type: %q", fields["type"])
	}
	for _, key := range []string{"caption", "trimStart", "trimEnd", "overlays", "filter", "mediaScale", "objectFit"} {
		if _, ok := fields[key]; ok {
			t.Fatalf("expected %s omitted when unset", key)
		}
	}
}

func TestCreateStorySendsMediaPart(t *testing.T) {
	var gotType string
	var gotMediaName string

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseMultipartForm(1 << 20); err != nil {
			t.Errorf("failed to parse multipart: %v", err)
		}
		gotType = r.FormValue("type")
		if files := r.MultipartForm.File["media"]; len(files) == 1 {
			gotMediaName = files[0].Filename
		}
		w.WriteHeader(http.StatusCreated)
	}))
	defer srv.Close()

	api := newTestApi(t, srv.URL)
	media := domain.FileUpload{Name: "frame.jpg", Data: []byte("bytes")}
	if err := api.CreateStory(context.Background(), domain.StoryDraft{MediaFile: &media}); err != nil {
		t.Fatalf("CreateStory returned error: %v", err)
	}

	if gotType != "image" {
		t.Fatalf("unexpected type field: %q", gotType)
	}
	if gotMediaName != "frame.jpg" {
		t.Fatalf("unexpected media part: %q", gotMediaName)
	}
}
