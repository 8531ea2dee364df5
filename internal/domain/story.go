package domain

type StoryType string

const (
	StoryTypeText  StoryType = "text"
	StoryTypeImage StoryType = "image"
	StoryTypeVideo StoryType = "video"
)

// PendingStory is the optimistic bubble shown in the stories strip while
// an upload is in flight. It is cleared when the upload settles, always
// together with a refresh-key bump.
type PendingStory struct {
	Type    StoryType
	Content string
	Color   string
	Preview []byte
}

// StoryDraft is a composed story. Text stories carry TextContent and an
// optional background color; media stories carry the file plus edit
// fields.
type StoryDraft struct {
	TextContent     string
	BackgroundColor string
	MediaFile       *FileUpload
	Caption         string
	TrimStart       *float64
	TrimEnd         *float64
	Overlays        []OverlayText
	Filter          string
	MediaScale      float64
	ObjectFit       string
}

// Type derives the story kind from what the draft carries.
func (d StoryDraft) Type() StoryType {
	if d.MediaFile == nil {
		return StoryTypeText
	}
	if d.MediaFile.ContentType == "video/mp4" || hasVideoName(d.MediaFile.Name) {
		return StoryTypeVideo
	}
	return StoryTypeImage
}

func hasVideoName(name string) bool {
	for _, ext := range []string{".mp4", ".mov", ".avi", ".mkv", ".webm"} {
		if len(name) >= len(ext) && name[len(name)-len(ext):] == ext {
			return true
		}
	}
	return false
}
