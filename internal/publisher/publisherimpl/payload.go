package publisherimpl

import (
	"github.com/kervan-app/kervan-mobile/internal/domain"
	"github.com/kervan-app/kervan-mobile/internal/media"
)

// assembleShortPayload merges the edit state and the classified upload
// descriptors into the creation body. Raw file handles never leave the
// client; only server paths go into the payload.
func assembleShortPayload(draft domain.ShortDraft, set media.ClassifiedSet) domain.CreatePostRequest {
	entry := domain.Media{
		URL:  set.Video.FilePath,
		Type: domain.FileTypeVideo,
	}
	if set.Cover != nil {
		entry.Thumbnail = set.Cover.FilePath
	}

	payload := domain.CreatePostRequest{
		Content:     draft.Content,
		Scope:       draft.Scope,
		IsShort:     true,
		Media:       []domain.Media{entry},
		Texts:       draft.Texts,
		Stickers:    draft.Stickers,
		Filter:      draft.Filter,
		Hashtags:    draft.Hashtags,
		Mentions:    draft.Mentions,
		WebsiteLink: draft.WebsiteLink,
	}

	if draft.Audio != (domain.AudioSettings{}) {
		audio := draft.Audio
		payload.Audio = &audio
	}
	if set.Voiceover != nil {
		payload.Voiceover = set.Voiceover.FilePath
	}
	if draft.PromotionType != "" {
		payload.Promotion = &domain.Promotion{Type: draft.PromotionType}
	}

	return payload
}
