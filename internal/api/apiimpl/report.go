package apiimpl

import (
	"context"

	"github.com/kervan-app/kervan-mobile/internal/domain"
	"github.com/kervan-app/kervan-mobile/pkg/errors"
)

func (a *ApiImpl) SubmitReport(ctx context.Context, report domain.Report) error {
	resp, err := a.client.R().
		SetContext(ctx).
		SetBody(report).
		Post(reportsPath)
	if err != nil {
		return errors.Wrap(err, "submit report request failed")
	}
	return checkResponse(resp)
}

type unreadCountResponse struct {
	Count int `json:"count"`
}

func (a *ApiImpl) GetUnreadNotificationCount(ctx context.Context) (int, error) {
	var result unreadCountResponse
	resp, err := a.client.R().
		SetContext(ctx).
		SetResult(&result).
		Get(unreadCountPath)
	if err != nil {
		return 0, errors.Wrap(err, "unread count request failed")
	}
	if err := checkResponse(resp); err != nil {
		return 0, err
	}
	return result.Count, nil
}
