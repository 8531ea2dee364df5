package domain

// FileUpload is a raw local binary handle headed for the upload endpoint.
type FileUpload struct {
	Name        string
	ContentType string
	Data        []byte
}

// UploadedFile is the server-returned descriptor for one uploaded file.
// FileType may be empty when the backend could not infer it, in which
// case callers fall back to the file name or position.
type UploadedFile struct {
	FilePath     string `json:"filePath"`
	FileType     string `json:"fileType"`
	OriginalName string `json:"originalName"`
}

const (
	FileTypeImage = "image"
	FileTypeVideo = "video"
	FileTypeAudio = "audio"
)
