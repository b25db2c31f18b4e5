package entity

// Account is a dashboard login account. A single account is seeded at startup
// and is immutable afterwards.
type Account struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	Password string `json:"-"`
}
