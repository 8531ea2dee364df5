package controllerimpl

import (
	"github.com/kervan-app/kervan-mobile/internal/controller"
	"github.com/kervan-app/kervan-mobile/internal/domain"
)

func (c *ControllerImpl) SetPendingPost(p *domain.PendingPost) {
	c.mutate(controller.EventStateChanged, func(s *controller.State) {
		s.PendingPost = p
	})
}

func (c *ControllerImpl) UpdatePendingPostStatus(status domain.PendingPostStatus, errorMsg string) {
	c.mutate(controller.EventStateChanged, func(s *controller.State) {
		if s.PendingPost == nil {
			return
		}
		s.PendingPost.Status = status
		s.PendingPost.ErrorMsg = errorMsg
	})
}

func (c *ControllerImpl) ClearPendingPost() {
	c.mutate(controller.EventStateChanged, func(s *controller.State) {
		s.PendingPost = nil
	})
}

func (c *ControllerImpl) SetVideoUpload(state domain.VideoUploadState) {
	c.mutate(controller.EventStateChanged, func(s *controller.State) {
		s.VideoUpload = state
	})
}

// SetVideoProgress keeps the indicator's progress monotonically
// non-decreasing; stale ticks from the simulation never move it back.
func (c *ControllerImpl) SetVideoProgress(progress int) {
	c.mutate(controller.EventStateChanged, func(s *controller.State) {
		if !s.VideoUpload.IsActive {
			return
		}
		if progress > 100 {
			progress = 100
		}
		if progress > s.VideoUpload.Progress {
			s.VideoUpload.Progress = progress
		}
	})
}

func (c *ControllerImpl) SetVideoStatus(status domain.VideoUploadStatus, errorMsg string) {
	c.mutate(controller.EventStateChanged, func(s *controller.State) {
		if !s.VideoUpload.IsActive {
			return
		}
		s.VideoUpload.Status = status
		s.VideoUpload.ErrorMsg = errorMsg
	})
}

func (c *ControllerImpl) DismissVideoUpload() {
	c.mutate(controller.EventStateChanged, func(s *controller.State) {
		s.VideoUpload = domain.VideoUploadState{}
	})
}

func (c *ControllerImpl) SetPendingStory(story *domain.PendingStory) {
	c.mutate(controller.EventStateChanged, func(s *controller.State) {
		s.PendingStory = story
	})
}

func (c *ControllerImpl) ClearPendingStory() {
	c.mutate(controller.EventStateChanged, func(s *controller.State) {
		s.PendingStory = nil
	})
}

func (c *ControllerImpl) SetStoryUploading(uploading bool) {
	c.mutate(controller.EventStateChanged, func(s *controller.State) {
		s.StoryUploading = uploading
	})
}

func (c *ControllerImpl) SetStoryProgress(progress int) {
	c.mutate(controller.EventStateChanged, func(s *controller.State) {
		if progress < 0 {
			progress = 0
		}
		if progress > 100 {
			progress = 100
		}
		s.StoryProgress = progress
	})
}

// BumpStoriesRefresh forces the stories strip to refetch from the
// backend on its next render.
func (c *ControllerImpl) BumpStoriesRefresh() {
	c.mutate(controller.EventStateChanged, func(s *controller.State) {
		s.StoriesRefreshKey++
	})
}
