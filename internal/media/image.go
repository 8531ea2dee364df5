package media

import (
	"bytes"
	"fmt"
	"image/jpeg"
	"sync"

	"github.com/disintegration/imaging"
	"github.com/kervan-app/kervan-mobile/internal/domain"
	"github.com/kervan-app/kervan-mobile/pkg/logger"
	"github.com/panjf2000/ants/v2"
)

const thumbnailEdge = 320

// Downscale re-encodes an image so its long edge does not exceed maxDim.
// Files that do not decode as images come back untouched.
func Downscale(f domain.FileUpload, maxDim int) (domain.FileUpload, error) {
	img, err := imaging.Decode(bytes.NewReader(f.Data), imaging.AutoOrientation(true))
	if err != nil {
		return f, fmt.Errorf("failed to decode image %s: %w", f.Name, err)
	}

	bounds := img.Bounds()
	if bounds.Dx() <= maxDim && bounds.Dy() <= maxDim {
		return f, nil
	}

	resized := imaging.Fit(img, maxDim, maxDim, imaging.Lanczos)

	var buf bytes.Buffer
	if err := imaging.Encode(&buf, resized, imaging.JPEG, imaging.JPEGQuality(85)); err != nil {
		return f, fmt.Errorf("failed to encode image %s: %w", f.Name, err)
	}

	return domain.FileUpload{
		Name:        f.Name,
		ContentType: "image/jpeg",
		Data:        buf.Bytes(),
	}, nil
}

// Thumbnail renders small JPEG preview bytes for an indicator from a
// cover or image file. Returns nil when the file is not a decodable
// image.
func Thumbnail(f domain.FileUpload) []byte {
	img, err := imaging.Decode(bytes.NewReader(f.Data), imaging.AutoOrientation(true))
	if err != nil {
		return nil
	}

	preview := imaging.Fit(img, thumbnailEdge, thumbnailEdge, imaging.Lanczos)

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, preview, &jpeg.Options{Quality: 70}); err != nil {
		return nil
	}
	return buf.Bytes()
}

// PreprocessImages downscales the image members of a media batch on a
// worker pool, preserving order. Non-image files and files that fail to
// process pass through unchanged.
func PreprocessImages(files []domain.FileUpload, maxDim, workers int, log logger.Logger) []domain.FileUpload {
	if len(files) == 0 {
		return files
	}
	if workers <= 0 {
		workers = 1
	}

	result := make([]domain.FileUpload, len(files))
	copy(result, files)

	pool, err := ants.NewPool(workers, ants.WithPreAlloc(true))
	if err != nil {
		log.Warn("Failed to create preprocess pool, uploading originals", "error", err)
		return result
	}
	defer pool.Release()

	var wg sync.WaitGroup
	for i := range result {
		if !IsImageFile(result[i].Name) {
			continue
		}
		wg.Add(1)
		idx := i

		if err := pool.Submit(func() {
			defer wg.Done()
			processed, err := Downscale(result[idx], maxDim)
			if err != nil {
				log.Warn("Image preprocess failed, uploading original", "file", result[idx].Name, "error", err)
				return
			}
			result[idx] = processed
		}); err != nil {
			wg.Done()
			log.Warn("Failed to submit preprocess job", "file", result[idx].Name, "error", err)
		}
	}
	wg.Wait()

	return result
}
