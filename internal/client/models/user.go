// Package models contains the client-side domain types: the authenticated
// user and the product catalog entities returned by the remote API.
package models

// User is the normalized record of the authenticated account. It is
// extracted from the login response and persisted alongside the access
// token; both are written and cleared as a unit.
type User struct {
	ID        int    `json:"id"`
	Username  string `json:"username"`
	Email     string `json:"email,omitempty"`
	FirstName string `json:"firstName,omitempty"`
	LastName  string `json:"lastName,omitempty"`
	Image     string `json:"image,omitempty"`
}

// DisplayName returns the user's full name, falling back to the username
// when no name parts are present.
func (u *User) DisplayName() string {
	switch {
	case u.FirstName != "" && u.LastName != "":
		return u.FirstName + " " + u.LastName
	case u.FirstName != "":
		return u.FirstName
	default:
		return u.Username
	}
}
