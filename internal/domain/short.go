package domain

type VideoUploadStatus string

const (
	VideoUploadCompressing VideoUploadStatus = "compressing"
	VideoUploadUploading   VideoUploadStatus = "uploading"
	VideoUploadSuccess     VideoUploadStatus = "success"
	VideoUploadError       VideoUploadStatus = "error"
)

// VideoUploadState backs the global upload indicator for shorts.
// Progress is a client-side approximation: it never exceeds 90 until the
// real upload settles, then snaps to 100 on success.
type VideoUploadState struct {
	IsActive  bool
	Status    VideoUploadStatus
	Progress  int
	Thumbnail []byte
	ErrorMsg  string
}

// OverlayText is a text layer placed on a short or story.
type OverlayText struct {
	Text     string  `json:"text"`
	X        float64 `json:"x"`
	Y        float64 `json:"y"`
	Color    string  `json:"color,omitempty"`
	Font     string  `json:"font,omitempty"`
	Scale    float64 `json:"scale,omitempty"`
	Rotation float64 `json:"rotation,omitempty"`
}

// Sticker is a sticker layer placed on a short.
type Sticker struct {
	ID       string  `json:"id"`
	X        float64 `json:"x"`
	Y        float64 `json:"y"`
	Scale    float64 `json:"scale,omitempty"`
	Rotation float64 `json:"rotation,omitempty"`
}

// AudioSettings carries the mix chosen in the short editor.
type AudioSettings struct {
	OriginalVolume  float64 `json:"originalVolume"`
	VoiceoverVolume float64 `json:"voiceoverVolume,omitempty"`
	Muted           bool    `json:"muted,omitempty"`
}

// ShortDraft is the raw file set and edit state produced by the short
// publish wizard. Cover and voiceover are optional.
type ShortDraft struct {
	Content       string
	VideoFile     *FileUpload `validate:"required"`
	CoverFile     *FileUpload
	VoiceoverFile *FileUpload
	Texts         []OverlayText
	Stickers      []Sticker
	Filter        string
	Audio         AudioSettings
	Hashtags      []string
	Mentions      []string
	WebsiteLink   string
	Scope         string
	PromotionType string
}
