package fx

import (
	"github.com/kervan-app/kervan-mobile/internal/repositories/sessionentry"
	"go.uber.org/fx"
)

var Module = fx.Options(
	sessionentry.Module,
)
