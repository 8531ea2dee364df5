package publisherimpl

import (
	"testing"
	"time"

	"github.com/kervan-app/kervan-mobile/internal/api/mocks"
	"github.com/kervan-app/kervan-mobile/internal/cache"
	"github.com/kervan-app/kervan-mobile/internal/controller"
	"github.com/kervan-app/kervan-mobile/internal/controller/controllerimpl"
	mock_session "github.com/kervan-app/kervan-mobile/internal/session/mocks"
	"github.com/kervan-app/kervan-mobile/pkg/config"
	"github.com/kervan-app/kervan-mobile/pkg/logger"
	"go.uber.org/mock/gomock"
)

type allowAll struct{}

func (allowAll) Allow(string) bool { return true }

type harness struct {
	pub   *PublisherImpl
	api   *mocks.MockClient
	store *mock_session.MockStore
	ctrl  controller.Client
}

// newHarness wires a publisher against the real controller so tests
// observe actual state transitions, with short flow timings.
func newHarness(t *testing.T) *harness {
	t.Helper()

	mockCtrl := gomock.NewController(t)
	apiMock := mocks.NewMockClient(mockCtrl)
	storeMock := mock_session.NewMockStore(mockCtrl)
	log := logger.New(logger.Opts{})

	uiCtrl := controllerimpl.New(controllerimpl.Opts{
		Api:     apiMock,
		Session: storeMock,
		Caches:  cache.NewCaches(),
		Logger:  log,
	})

	cfg := &config.Config{}
	cfg.Upload.MaxImageDimension = 1920
	cfg.Upload.PreprocessWorkers = 2

	pub := New(Opts{
		Api:        apiMock,
		Controller: uiCtrl,
		Session:    storeMock,
		Guard:      allowAll{},
		Logger:     log,
		Config:     cfg,
	})
	pub.CompressDelay = time.Millisecond
	pub.PostSuccessDismiss = 25 * time.Millisecond
	pub.PostErrorDismiss = 25 * time.Millisecond
	pub.ShortSuccessDismiss = 25 * time.Millisecond
	pub.ShortErrorDismiss = 25 * time.Millisecond
	pub.ShortTickInterval = 5 * time.Millisecond
	pub.StoryTickInterval = 5 * time.Millisecond

	return &harness{pub: pub, api: apiMock, store: storeMock, ctrl: uiCtrl}
}

func waitFor(t *testing.T, cond func() bool, msg string) {
	t.Helper()

	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if cond() {
			return
		}
		time.Sleep(2 * time.Millisecond)
	}
	t.Fatal(msg)
}
