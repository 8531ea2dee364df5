package apiimpl

import (
	"github.com/go-resty/resty/v2"
	gojson "github.com/goccy/go-json"
	"github.com/google/uuid"
	"github.com/kervan-app/kervan-mobile/internal/api"
	"github.com/kervan-app/kervan-mobile/pkg/config"
	"github.com/kervan-app/kervan-mobile/pkg/errors"
	"github.com/kervan-app/kervan-mobile/pkg/logger"
	"go.uber.org/fx"
)

const (
	uploadPath        = "/api/v1/upload/multiple"
	postsPath         = "/api/v1/posts"
	promotePath       = "/api/payment/promote/{postId}"
	storiesPath       = "/api/v1/stories"
	reportsPath       = "/api/v1/reports"
	unreadCountPath   = "/api/v1/notifications/unread-count"
	usersPath         = "/api/v1/users"
)

type Opts struct {
	fx.In

	Config *config.Config
	Logger logger.Logger
	Tokens api.TokenProvider
}

type ApiImpl struct {
	client *resty.Client
	Logger logger.Logger
}

func New(opts Opts) *ApiImpl {
	client := resty.New().
		SetBaseURL(opts.Config.Api.BaseURL).
		SetHeader("Accept", "application/json")

	if opts.Config.Api.Timeout > 0 {
		client.SetTimeout(opts.Config.Api.Timeout)
	}

	client.JSONMarshal = gojson.Marshal
	client.JSONUnmarshal = gojson.Unmarshal

	client.OnBeforeRequest(func(_ *resty.Client, r *resty.Request) error {
		r.SetHeader("X-Request-ID", uuid.NewString())
		token, err := opts.Tokens.Token(r.Context())
		if err != nil {
			opts.Logger.Warn("Failed to read token, sending unauthenticated request", "error", err)
			return nil
		}
		if token != "" {
			r.SetHeader("Authorization", "Bearer "+token)
		}
		return nil
	})

	return &ApiImpl{
		client: client,
		Logger: opts.Logger,
	}
}

var _ api.Client = (*ApiImpl)(nil)

type errorBody struct {
	Message string `json:"message"`
	Msg     string `json:"msg"`
}

// checkResponse maps a non-OK response to an APIError carrying the
// server-provided message field.
func checkResponse(resp *resty.Response) error {
	if !resp.IsError() {
		return nil
	}

	var body errorBody
	_ = gojson.Unmarshal(resp.Body(), &body)

	message := body.Message
	if message == "" {
		message = body.Msg
	}

	return errors.NewAPIError(resp.StatusCode(), message)
}
