package apiimpl

import (
	"bytes"
	"context"

	"github.com/kervan-app/kervan-mobile/internal/domain"
	"github.com/kervan-app/kervan-mobile/pkg/errors"
)

type uploadResponse struct {
	Files []domain.UploadedFile `json:"files"`
}

// UploadFiles posts a multipart batch to the upload endpoint and returns
// the uploaded-file descriptors in server order. No client-side size or
// type validation happens here.
func (a *ApiImpl) UploadFiles(ctx context.Context, files []domain.FileUpload) ([]domain.UploadedFile, error) {
	if len(files) == 0 {
		return nil, errors.Wrap(errors.ErrInvalidInput, "at least one file is required")
	}

	req := a.client.R().SetContext(ctx)
	for _, f := range files {
		req.SetFileReader("files", f.Name, bytes.NewReader(f.Data))
	}

	var result uploadResponse
	resp, err := req.SetResult(&result).Post(uploadPath)
	if err != nil {
		return nil, errors.Wrap(err, "upload request failed")
	}
	if err := checkResponse(resp); err != nil {
		return nil, err
	}

	a.Logger.Info("Uploaded files", "count", len(result.Files))
	return result.Files, nil
}
