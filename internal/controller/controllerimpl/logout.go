package controllerimpl

import (
	"context"

	"github.com/kervan-app/kervan-mobile/internal/controller"
	"github.com/kervan-app/kervan-mobile/internal/session"
)

// Logout tears down every trace of the authenticated session: the three
// screen caches, the persisted identity (device preferences survive) and
// all transient UI state. Whatever the prior state was, the result is
// the same unauthenticated baseline, so calling it twice is harmless.
// Missing a field here leaks one account's data into the next one on a
// shared device.
func (c *ControllerImpl) Logout(ctx context.Context) error {
	c.Caches.InvalidateAll()

	c.mutate(controller.EventLoggedOut, func(s *controller.State) {
		*s = baselineState()
	})

	if err := c.Session.ClearExcept(ctx, session.PreservedOnLogout...); err != nil {
		c.Logger.Error("Failed to clear persisted session on logout", "error", err)
		return err
	}

	c.Logger.Info("Logged out, state reset to baseline")
	return nil
}
