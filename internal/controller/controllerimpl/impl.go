package controllerimpl

import (
	"sync"

	"github.com/kervan-app/kervan-mobile/internal/api"
	"github.com/kervan-app/kervan-mobile/internal/cache"
	"github.com/kervan-app/kervan-mobile/internal/controller"
	"github.com/kervan-app/kervan-mobile/internal/domain"
	"github.com/kervan-app/kervan-mobile/internal/session"
	"github.com/kervan-app/kervan-mobile/pkg/logger"
	"go.uber.org/fx"
)

type Opts struct {
	fx.In

	Api     api.Client
	Session session.Store
	Caches  *cache.Caches
	Logger  logger.Logger
}

type ControllerImpl struct {
	Api     api.Client
	Session session.Store
	Caches  *cache.Caches
	Logger  logger.Logger

	mu     sync.RWMutex
	state  controller.State
	events chan controller.Event
}

func New(opts Opts) *ControllerImpl {
	return &ControllerImpl{
		Api:     opts.Api,
		Session: opts.Session,
		Caches:  opts.Caches,
		Logger:  opts.Logger,
		state:   baselineState(),
		events:  make(chan controller.Event, 64),
	}
}

var _ controller.Client = (*ControllerImpl)(nil)

// baselineState is the unauthenticated default every fresh launch and
// every logout land on.
func baselineState() controller.State {
	return controller.State{
		ActiveTab:  controller.TabHome,
		OpenModals: map[controller.Modal]bool{},
		Loading:    true,
	}
}

func (c *ControllerImpl) Snapshot() controller.State {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return copyState(c.state)
}

func (c *ControllerImpl) Events() <-chan controller.Event {
	return c.events
}

// mutate applies fn under the write lock and notifies subscribers.
func (c *ControllerImpl) mutate(kind controller.EventKind, fn func(s *controller.State)) {
	c.mu.Lock()
	fn(&c.state)
	c.mu.Unlock()

	select {
	case c.events <- controller.Event{Kind: kind}:
	default:
		// A slow subscriber loses change notifications, never state.
	}
}

func copyState(s controller.State) controller.State {
	out := s

	out.OpenModals = make(map[controller.Modal]bool, len(s.OpenModals))
	for m, open := range s.OpenModals {
		out.OpenModals[m] = open
	}

	if s.Feed != nil {
		out.Feed = make([]domain.Post, len(s.Feed))
		copy(out.Feed, s.Feed)
	}
	if s.Suggestions != nil {
		out.Suggestions = make([]domain.User, len(s.Suggestions))
		copy(out.Suggestions, s.Suggestions)
	}
	if s.PendingPost != nil {
		pending := *s.PendingPost
		out.PendingPost = &pending
	}
	if s.PendingStory != nil {
		pending := *s.PendingStory
		out.PendingStory = &pending
	}

	return out
}

func (c *ControllerImpl) SetActiveTab(tab controller.Tab) {
	c.mutate(controller.EventStateChanged, func(s *controller.State) {
		s.ActiveTab = tab
	})
}

func (c *ControllerImpl) OpenModal(m controller.Modal) {
	c.mutate(controller.EventStateChanged, func(s *controller.State) {
		s.OpenModals[m] = true
	})
}

func (c *ControllerImpl) CloseModal(m controller.Modal) {
	c.mutate(controller.EventStateChanged, func(s *controller.State) {
		delete(s.OpenModals, m)
	})
}

func (c *ControllerImpl) CloseAllModals() {
	c.mutate(controller.EventStateChanged, func(s *controller.State) {
		s.OpenModals = map[controller.Modal]bool{}
	})
}

func (c *ControllerImpl) SetLoading(loading bool) {
	c.mutate(controller.EventStateChanged, func(s *controller.State) {
		s.Loading = loading
	})
}

func (c *ControllerImpl) SetUnreadCount(count int) {
	c.mutate(controller.EventStateChanged, func(s *controller.State) {
		s.UnreadCount = count
	})
}

func (c *ControllerImpl) ShowAlert(msg string) {
	c.mutate(controller.EventAlert, func(s *controller.State) {
		s.Alert = msg
	})
}

// ConsumeAlert returns the pending one-shot alert text and clears it.
func (c *ControllerImpl) ConsumeAlert() string {
	var msg string
	c.mutate(controller.EventStateChanged, func(s *controller.State) {
		msg = s.Alert
		s.Alert = ""
	})
	return msg
}
