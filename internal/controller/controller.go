package controller

import (
	"context"

	"github.com/kervan-app/kervan-mobile/internal/domain"
)

type Tab string

const (
	TabHome          Tab = "home"
	TabShorts        Tab = "shorts"
	TabJobs          Tab = "jobs"
	TabNotifications Tab = "notifications"
	TabProfile       Tab = "profile"
)

type Modal string

const (
	ModalCompose       Modal = "compose"
	ModalShortWizard   Modal = "short_wizard"
	ModalStoryComposer Modal = "story_composer"
	ModalMenuDrawer    Modal = "menu_drawer"
)

// State is a point-in-time snapshot of everything the rendering surface
// needs. Slices and maps in it are copies; mutating them has no effect.
type State struct {
	ActiveTab         Tab
	OpenModals        map[Modal]bool
	Loading           bool
	Feed              []domain.Post
	Suggestions       []domain.User
	UnreadCount       int
	PendingPost       *domain.PendingPost
	VideoUpload       domain.VideoUploadState
	PendingStory      *domain.PendingStory
	StoryUploading    bool
	StoryProgress     int
	StoriesRefreshKey int
	Alert             string
}

type EventKind string

const (
	EventStateChanged EventKind = "state_changed"
	EventAlert        EventKind = "alert"
	EventLoggedOut    EventKind = "logged_out"
)

// Event is a change notification for subscribers of the controller
// state. Consumers re-read Snapshot on receipt.
type Event struct {
	Kind EventKind
}

// Client owns every transient state slot of the app. Orchestrators and
// the logout routine mutate state exclusively through it; everything
// below receives read-only snapshots.
type Client interface {
	Snapshot() State
	Events() <-chan Event

	SetActiveTab(tab Tab)
	OpenModal(m Modal)
	CloseModal(m Modal)
	CloseAllModals()
	SetLoading(loading bool)
	SetUnreadCount(count int)

	SetPendingPost(p *domain.PendingPost)
	UpdatePendingPostStatus(status domain.PendingPostStatus, errorMsg string)
	ClearPendingPost()

	SetVideoUpload(state domain.VideoUploadState)
	SetVideoProgress(progress int)
	SetVideoStatus(status domain.VideoUploadStatus, errorMsg string)
	DismissVideoUpload()

	SetPendingStory(s *domain.PendingStory)
	ClearPendingStory()
	SetStoryUploading(uploading bool)
	SetStoryProgress(progress int)
	BumpStoriesRefresh()

	ShowAlert(msg string)
	ConsumeAlert() string

	RefreshFeed(ctx context.Context, filter domain.FeedFilter) error
	RefreshSuggestions(ctx context.Context, filter domain.FeedFilter) error
	SubmitReport(ctx context.Context, report domain.Report) error

	Logout(ctx context.Context) error
}
