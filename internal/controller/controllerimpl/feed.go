package controllerimpl

import (
	"context"
	"fmt"

	"github.com/kervan-app/kervan-mobile/internal/controller"
	"github.com/kervan-app/kervan-mobile/internal/domain"
)

func (c *ControllerImpl) RefreshFeed(ctx context.Context, filter domain.FeedFilter) error {
	posts, err := c.Api.GetPosts(ctx, filter)
	if err != nil {
		c.Logger.Error("Failed to refresh feed", "error", err)
		return fmt.Errorf("failed to refresh feed: %w", err)
	}

	c.mutate(controller.EventStateChanged, func(s *controller.State) {
		s.Feed = posts
		s.Loading = false
	})
	return nil
}

func (c *ControllerImpl) RefreshSuggestions(ctx context.Context, filter domain.FeedFilter) error {
	users, err := c.Api.GetUsers(ctx, filter)
	if err != nil {
		c.Logger.Error("Failed to refresh suggestions", "error", err)
		return fmt.Errorf("failed to refresh suggestions: %w", err)
	}

	c.mutate(controller.EventStateChanged, func(s *controller.State) {
		s.Suggestions = users
	})
	return nil
}

func (c *ControllerImpl) SubmitReport(ctx context.Context, report domain.Report) error {
	if err := c.Api.SubmitReport(ctx, report); err != nil {
		c.Logger.Error("Failed to submit report", "target_id", report.TargetID, "error", err)
		return err
	}

	c.Logger.Info("Report submitted", "report_type", report.ReportType, "target_id", report.TargetID)
	return nil
}
