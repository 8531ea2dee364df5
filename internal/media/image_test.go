package media

import (
	"bytes"
	"image"
	"image/jpeg"
	"testing"

	"github.com/disintegration/imaging"
	"github.com/kervan-app/kervan-mobile/internal/domain"
	"github.com/kervan-app/kervan-mobile/pkg/logger"
)

func jpegFixture(t *testing.T, name string, w, h int) domain.FileUpload {
	t.Helper()

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, image.NewRGBA(image.Rect(0, 0, w, h)), nil); err != nil {
		t.Fatalf("failed to encode fixture: %v", err)
	}
	return domain.FileUpload{Name: name, ContentType: "image/jpeg", Data: buf.Bytes()}
}

func decodedBounds(t *testing.T, data []byte) image.Rectangle {
	t.Helper()

	img, err := imaging.Decode(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("failed to decode result: %v", err)
	}
	return img.Bounds()
}

func TestDownscaleOversizedImage(t *testing.T) {
	f := jpegFixture(t, "big.jpg", 200, 100)

	out, err := Downscale(f, 50)
	if err != nil {
		t.Fatalf("Downscale returned error: %v", err)
	}

	bounds := decodedBounds(t, out.Data)
	if bounds.Dx() > 50 || bounds.Dy() > 50 {
		t.Fatalf("expected long edge <= 50, got %dx%d", bounds.Dx(), bounds.Dy())
	}
	if out.ContentType != "image/jpeg" {
		t.Fatalf("expected image/jpeg, got %s", out.ContentType)
	}
}

func TestDownscaleSkipsSmallImage(t *testing.T) {
	f := jpegFixture(t, "small.jpg", 40, 30)

	out, err := Downscale(f, 50)
	if err != nil {
		t.Fatalf("Downscale returned error: %v", err)
	}
	if !bytes.Equal(out.Data, f.Data) {
		t.Fatal("expected small image to pass through untouched")
	}
}

func TestDownscaleNonImage(t *testing.T) {
	f := domain.FileUpload{Name: "notes.jpg", Data: []byte("not an image")}

	out, err := Downscale(f, 50)
	if err == nil {
		t.Fatal("expected decode error for non-image bytes")
	}
	if !bytes.Equal(out.Data, f.Data) {
		t.Fatal("expected original bytes back on decode failure")
	}
}

func TestThumbnail(t *testing.T) {
	f := jpegFixture(t, "cover.jpg", 640, 480)

	preview := Thumbnail(f)
	if len(preview) == 0 {
		t.Fatal("expected preview bytes for a decodable image")
	}
	bounds := decodedBounds(t, preview)
	if bounds.Dx() > 320 || bounds.Dy() > 320 {
		t.Fatalf("expected preview within 320px, got %dx%d", bounds.Dx(), bounds.Dy())
	}

	if got := Thumbnail(domain.FileUpload{Name: "clip.mp4", Data: []byte{0, 1, 2}}); got != nil {
		t.Fatal("expected nil preview for non-image bytes")
	}
}

func TestPreprocessImagesPreservesOrder(t *testing.T) {
	log := logger.New(logger.Opts{})

	files := []domain.FileUpload{
		jpegFixture(t, "first.jpg", 200, 200),
		{Name: "clip.mp4", Data: []byte("video bytes")},
		jpegFixture(t, "broken.jpg", 10, 10),
	}
	files[2].Data = []byte("corrupt") // fails decode, passes through

	out := PreprocessImages(files, 50, 2, log)
	if len(out) != 3 {
		t.Fatalf("expected 3 files, got %d", len(out))
	}
	if out[0].Name != "first.jpg" || out[1].Name != "clip.mp4" || out[2].Name != "broken.jpg" {
		t.Fatalf("expected input order preserved, got %s %s %s", out[0].Name, out[1].Name, out[2].Name)
	}

	bounds := decodedBounds(t, out[0].Data)
	if bounds.Dx() > 50 || bounds.Dy() > 50 {
		t.Fatalf("expected first.jpg downscaled, got %dx%d", bounds.Dx(), bounds.Dy())
	}
	if !bytes.Equal(out[1].Data, files[1].Data) {
		t.Fatal("expected non-image file untouched")
	}
	if !bytes.Equal(out[2].Data, files[2].Data) {
		t.Fatal("expected undecodable file untouched")
	}
}
