package apiimpl

import (
	"context"
	"strconv"
	"time"

	"github.com/jinzhu/copier"
	"github.com/kervan-app/kervan-mobile/internal/domain"
	"github.com/kervan-app/kervan-mobile/pkg/errors"
	"github.com/kervan-app/kervan-mobile/pkg/formatter"
)

// apiPost is the wire shape of a post as the backend returns it.
type apiPost struct {
	ID        string         `json:"id"`
	User      domain.User    `json:"user"`
	Content   string         `json:"content"`
	Category  string         `json:"category"`
	IsShort   bool           `json:"isShort"`
	Media     []domain.Media `json:"media"`
	Likes     int            `json:"likes"`
	Comments  int            `json:"comments"`
	Shares    int            `json:"shares"`
	CreatedAt time.Time      `json:"createdAt"`
}

// mapPost projects a wire post into the shape feed rendering consumes.
func mapPost(p apiPost, now time.Time) domain.Post {
	var out domain.Post
	_ = copier.Copy(&out, &p)
	out.TimeAgo = formatter.TimeAgo(p.CreatedAt, now)
	return out
}

type createPostResponse struct {
	Data *apiPost `json:"data"`
}

func (a *ApiImpl) CreatePost(ctx context.Context, req domain.CreatePostRequest) (*domain.Post, error) {
	var result createPostResponse
	resp, err := a.client.R().
		SetContext(ctx).
		SetBody(req).
		SetResult(&result).
		Post(postsPath)
	if err != nil {
		return nil, errors.Wrap(err, "create post request failed")
	}
	if err := checkResponse(resp); err != nil {
		return nil, err
	}

	if result.Data == nil {
		return nil, nil
	}
	created := mapPost(*result.Data, time.Now())
	return &created, nil
}

// PromotePost activates paid promotion for a created post. Callers treat
// it as best-effort.
func (a *ApiImpl) PromotePost(ctx context.Context, postID string, promotionType string) error {
	resp, err := a.client.R().
		SetContext(ctx).
		SetPathParam("postId", postID).
		SetBody(domain.Promotion{Type: promotionType}).
		Post(promotePath)
	if err != nil {
		return errors.Wrap(err, "promote request failed")
	}
	return checkResponse(resp)
}

type postsResponse struct {
	Posts []apiPost `json:"posts"`
}

type usersResponse struct {
	Users []domain.User `json:"users"`
}

func (a *ApiImpl) GetPosts(ctx context.Context, filter domain.FeedFilter) ([]domain.Post, error) {
	var result postsResponse
	resp, err := a.client.R().
		SetContext(ctx).
		SetQueryParams(feedQuery(filter)).
		SetResult(&result).
		Get(postsPath)
	if err != nil {
		return nil, errors.Wrap(err, "fetch posts request failed")
	}
	if err := checkResponse(resp); err != nil {
		return nil, err
	}

	now := time.Now()
	posts := make([]domain.Post, 0, len(result.Posts))
	for _, p := range result.Posts {
		posts = append(posts, mapPost(p, now))
	}
	return posts, nil
}

func (a *ApiImpl) GetUsers(ctx context.Context, filter domain.FeedFilter) ([]domain.User, error) {
	var result usersResponse
	resp, err := a.client.R().
		SetContext(ctx).
		SetQueryParams(feedQuery(filter)).
		SetResult(&result).
		Get(usersPath)
	if err != nil {
		return nil, errors.Wrap(err, "fetch users request failed")
	}
	if err := checkResponse(resp); err != nil {
		return nil, err
	}
	return result.Users, nil
}

func feedQuery(filter domain.FeedFilter) map[string]string {
	query := map[string]string{}
	if filter.Country != "" {
		query["country"] = filter.Country
	}
	if filter.City != "" {
		query["city"] = filter.City
	}
	if filter.Page > 0 {
		query["page"] = strconv.Itoa(filter.Page)
	}
	if filter.Limit > 0 {
		query["limit"] = strconv.Itoa(filter.Limit)
	}
	return query
}
