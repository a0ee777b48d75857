package models

import "time"

// Identity is the currently authenticated user as reported by the identity
// provider.
type Identity struct {
	UID   string `json:"uid"`
	Email string `json:"email"`
}

// AuthState is the snapshot of the signed-in identity persisted on the device
// so it survives restarts without a live session.
type AuthState struct {
	UID       string `json:"uid"`
	Email     string `json:"email"`
	LastLogin string `json:"lastLogin"`
}

// NewAuthState builds an [AuthState] for identity with LastLogin set to at,
// formatted as RFC 3339 in UTC.
func NewAuthState(identity Identity, at time.Time) AuthState {
	return AuthState{
		UID:       identity.UID,
		Email:     identity.Email,
		LastLogin: at.UTC().Format(time.RFC3339Nano),
	}
}

// Identity converts the persisted state back to an [Identity].
func (a AuthState) Identity() Identity {
	return Identity{UID: a.UID, Email: a.Email}
}

// AdminAuth is the cached admin verdict for a single user.
type AdminAuth struct {
	UID     string `json:"uid"`
	IsAdmin bool   `json:"isAdmin"`
}
