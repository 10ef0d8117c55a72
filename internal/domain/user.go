package domain

// Preferences holds per-user display settings.
type Preferences struct {
	Language string `json:"language"`
	Currency string `json:"currency"`
}

// User is the current account. Authentication is a stub: a User record is
// created at login, mutated by profile edits, and removed from the
// persistent store at logout.
type User struct {
	ID          string      `json:"id"`
	Name        string      `json:"name"`
	Email       string      `json:"email"`
	Photo       string      `json:"photo,omitempty"`
	Preferences Preferences `json:"preferences"`
}
