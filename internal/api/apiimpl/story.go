package apiimpl

import (
	"bytes"
	"context"
	"strconv"

	gojson "github.com/goccy/go-json"
	"github.com/kervan-app/kervan-mobile/internal/domain"
	"github.com/kervan-app/kervan-mobile/pkg/errors"
)

// CreateStory posts the story as one multipart form. The content type is
// left to the client so the multipart boundary gets set for us.
func (a *ApiImpl) CreateStory(ctx context.Context, draft domain.StoryDraft) error {
	req := a.client.R().
		SetContext(ctx).
		SetMultipartFormData(buildStoryForm(draft))

	if draft.MediaFile != nil {
		req.SetFileReader("media", draft.MediaFile.Name, bytes.NewReader(draft.MediaFile.Data))
	}

	resp, err := req.Post(storiesPath)
	if err != nil {
		return errors.Wrap(err, "create story request failed")
	}
	return checkResponse(resp)
}

// buildStoryForm maps a draft to the form fields of POST /api/v1/stories.
// Optional fields are omitted entirely rather than sent empty.
func buildStoryForm(draft domain.StoryDraft) map[string]string {
	fields := map[string]string{
		"type": string(draft.Type()),
	}

	if draft.MediaFile == nil {
		fields["text"] = draft.TextContent
		if draft.BackgroundColor != "" {
			fields["backgroundColor"] = draft.BackgroundColor
		}
		return fields
	}

	if draft.Caption != "" {
		fields["caption"] = draft.Caption
	}
	if draft.TrimStart != nil {
		fields["trimStart"] = strconv.FormatFloat(*draft.TrimStart, 'f', -1, 64)
	}
	if draft.TrimEnd != nil {
		fields["trimEnd"] = strconv.FormatFloat(*draft.TrimEnd, 'f', -1, 64)
	}
	if len(draft.Overlays) > 0 {
		if encoded, err := gojson.Marshal(draft.Overlays); err == nil {
			fields["overlays"] = string(encoded)
		}
	}
	if draft.Filter != "" {
		fields["filter"] = draft.Filter
	}
	if draft.MediaScale > 0 {
		fields["mediaScale"] = strconv.FormatFloat(draft.MediaScale, 'f', -1, 64)
	}
	if draft.ObjectFit != "" {
		fields["objectFit"] = draft.ObjectFit
	}

	return fields
}
