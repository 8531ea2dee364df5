package domain

// User is the cached local identity used to render optimistic cards
// before the server echoes the real author back.
type User struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Username string `json:"username"`
	Avatar   string `json:"avatar"`
	Email    string `json:"email"`
}
