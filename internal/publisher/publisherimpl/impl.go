package publisherimpl

import (
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/kervan-app/kervan-mobile/internal/api"
	"github.com/kervan-app/kervan-mobile/internal/controller"
	"github.com/kervan-app/kervan-mobile/internal/publisher"
	"github.com/kervan-app/kervan-mobile/internal/ratelimit"
	"github.com/kervan-app/kervan-mobile/internal/session"
	"github.com/kervan-app/kervan-mobile/pkg/config"
	"github.com/kervan-app/kervan-mobile/pkg/logger"
	"go.uber.org/fx"
)

const (
	flowPost  = "post"
	flowShort = "short"
	flowStory = "story"
)

type Opts struct {
	fx.In

	Api        api.Client
	Controller controller.Client
	Session    session.Store
	Guard      ratelimit.Limiter
	Logger     logger.Logger
	Config     *config.Config
}

type PublisherImpl struct {
	Api        api.Client
	Controller controller.Client
	Session    session.Store
	Guard      ratelimit.Limiter
	Logger     logger.Logger
	Config     *config.Config

	validate *validator.Validate

	// Flow timing. The dismissal delays are part of the UX contract:
	// success clears fast, errors stay long enough to be read.
	CompressDelay       time.Duration
	PostSuccessDismiss  time.Duration
	PostErrorDismiss    time.Duration
	ShortSuccessDismiss time.Duration
	ShortErrorDismiss   time.Duration
	ShortTickInterval   time.Duration
	StoryTickInterval   time.Duration
}

func New(opts Opts) *PublisherImpl {
	return &PublisherImpl{
		Api:        opts.Api,
		Controller: opts.Controller,
		Session:    opts.Session,
		Guard:      opts.Guard,
		Logger:     opts.Logger,
		Config:     opts.Config,

		validate: validator.New(validator.WithRequiredStructEnabled()),

		CompressDelay:       1500 * time.Millisecond,
		PostSuccessDismiss:  3 * time.Second,
		PostErrorDismiss:    10 * time.Second,
		ShortSuccessDismiss: 4 * time.Second,
		ShortErrorDismiss:   10 * time.Second,
		ShortTickInterval:   400 * time.Millisecond,
		StoryTickInterval:   300 * time.Millisecond,
	}
}

var _ publisher.Client = (*PublisherImpl)(nil)
