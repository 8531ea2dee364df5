package media

import (
	"errors"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/kervan-app/kervan-mobile/internal/domain"
)

// ErrVideoNotFound is raised when no uploaded descriptor can be
// identified as the video of a short. It terminates the publish attempt.
var ErrVideoNotFound = errors.New("video link not found")

var videoExtRe = regexp.MustCompile(`(?i)\.(mp4|mov|avi|mkv|webm)$`)

func IsVideoFile(path string) bool {
	return videoExtRe.MatchString(path)
}

func IsImageFile(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	for _, imgExt := range []string{".png", ".jpg", ".jpeg", ".gif", ".webp"} {
		if ext == imgExt {
			return true
		}
	}
	return false
}

func IsAudioFile(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	for _, audioExt := range []string{".mp3", ".m4a", ".aac", ".wav", ".ogg"} {
		if ext == audioExt {
			return true
		}
	}
	return false
}

// ClassifiedSet is the outcome of sorting a short's uploaded descriptors
// into their roles.
type ClassifiedSet struct {
	Video     *domain.UploadedFile
	Cover     *domain.UploadedFile
	Voiceover *domain.UploadedFile
}

// Classify identifies which uploaded descriptor is the video, cover and
// voiceover of a short. The fallback order is load-bearing: explicit
// fileType first, then the video filename extension, then position
// (with a cover supplied the remaining non-image file is the video,
// without one the first file is assumed to be the video). Changing logic here
// silently picks a different file as "the video" and corrupts the
// published short.
func Classify(files []domain.UploadedFile, hadCover bool) (ClassifiedSet, error) {
	var set ClassifiedSet

	for i := range files {
		f := &files[i]
		switch f.FileType {
		case domain.FileTypeVideo:
			if set.Video == nil {
				set.Video = f
			}
		case domain.FileTypeImage:
			if set.Cover == nil {
				set.Cover = f
			}
		case domain.FileTypeAudio:
			if set.Voiceover == nil {
				set.Voiceover = f
			}
		}
	}

	if set.Video == nil {
		for i := range files {
			f := &files[i]
			if f == set.Cover || f == set.Voiceover {
				continue
			}
			if IsVideoFile(f.FilePath) || IsVideoFile(f.OriginalName) {
				set.Video = f
				break
			}
		}
	}

	if set.Video == nil {
		if hadCover {
			for i := range files {
				f := &files[i]
				if f == set.Cover || f == set.Voiceover {
					continue
				}
				if f.FileType == domain.FileTypeImage || IsImageFile(f.FilePath) {
					continue
				}
				set.Video = f
				break
			}
		} else if len(files) > 0 {
			set.Video = &files[0]
		}
	}

	if set.Video == nil {
		return set, ErrVideoNotFound
	}

	if set.Cover == nil && hadCover {
		for i := range files {
			f := &files[i]
			if f == set.Video || f == set.Voiceover {
				continue
			}
			if IsImageFile(f.FilePath) || IsImageFile(f.OriginalName) {
				set.Cover = f
				break
			}
		}
	}

	if set.Voiceover == nil {
		for i := range files {
			f := &files[i]
			if f == set.Video || f == set.Cover {
				continue
			}
			if IsAudioFile(f.FilePath) || IsAudioFile(f.OriginalName) {
				set.Voiceover = f
				break
			}
		}
	}

	return set, nil
}
