package domain

// Media is one media entry of a post as the backend stores it.
type Media struct {
	URL       string `json:"url"`
	Type      string `json:"type"`
	Thumbnail string `json:"thumbnail,omitempty"`
}

// Post is the UI projection of a backend post consumed by feed rendering.
type Post struct {
	ID       string  `json:"id"`
	User     User    `json:"user"`
	TimeAgo  string  `json:"timeAgo"`
	Content  string  `json:"content"`
	Media    []Media `json:"media"`
	Category string  `json:"category,omitempty"`
	IsShort  bool    `json:"isShort,omitempty"`
	Likes    int     `json:"likes"`
	Comments int     `json:"comments"`
	Shares   int     `json:"shares"`
}

type PendingPostStatus string

const (
	PendingPostPublishing PendingPostStatus = "publishing"
	PendingPostSuccess    PendingPostStatus = "success"
	PendingPostError      PendingPostStatus = "error"
)

// PendingPostID is the fixed id of the optimistic card. At most one
// pending post exists at a time.
const PendingPostID = "temp-pending"

// PendingPost is the optimistic card shown at the top of the feed while
// a submission is in flight. It is destroyed a fixed delay after the
// flow settles.
type PendingPost struct {
	ID       string
	User     User
	TimeAgo  string
	Content  string
	Media    []Media
	Likes    int
	Comments int
	Shares   int
	Status   PendingPostStatus
	ErrorMsg string
}

// PostDraft is the composed post as it leaves the compose screen.
// Either MediaFiles (raw, still to be uploaded) or MediaURLs
// (pre-existing) may be set.
type PostDraft struct {
	Content       string `validate:"required_without=MediaFiles"`
	Category      string `validate:"required"`
	Scope         string
	ContactPhone  string
	ContactEmail  string
	MediaFiles    []FileUpload
	MediaURLs     []Media
	IsShort       bool
	VideoFile     *FileUpload
	PromotionType string
}

// CreatePostRequest is the JSON body of POST /api/v1/posts. Shorts reuse
// the same endpoint with IsShort set and a single video media entry.
type CreatePostRequest struct {
	Content      string         `json:"content"`
	Category     string         `json:"category,omitempty"`
	Scope        string         `json:"scope,omitempty"`
	ContactPhone string         `json:"contactPhone,omitempty"`
	ContactEmail string         `json:"contactEmail,omitempty"`
	Media        []Media        `json:"media"`
	IsShort      bool           `json:"isShort,omitempty"`
	Texts        []OverlayText  `json:"texts,omitempty"`
	Stickers     []Sticker      `json:"stickers,omitempty"`
	Filter       string         `json:"filter,omitempty"`
	Audio        *AudioSettings `json:"audioSettings,omitempty"`
	Voiceover    string         `json:"voiceover,omitempty"`
	Hashtags     []string       `json:"hashtags,omitempty"`
	Mentions     []string       `json:"mentions,omitempty"`
	WebsiteLink  string         `json:"websiteLink,omitempty"`
	Promotion    *Promotion     `json:"promotion,omitempty"`
}

// Promotion is the paid-boost selection attached to a publish.
type Promotion struct {
	Type string `json:"promotionType"`
}

// FeedFilter parameterizes feed and user listing fetches.
type FeedFilter struct {
	Country string
	City    string
	Page    int
	Limit   int
}
