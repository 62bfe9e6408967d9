package models

// Principal is the authenticated caller as held in the session. Nothing else from the
// identity provider's profile is trusted downstream.
type Principal struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
}
