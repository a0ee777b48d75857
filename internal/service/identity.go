package service

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/MKhiriev/calm-journal/internal/utils"
	"github.com/MKhiriev/calm-journal/models"
)

// TokenReceiver accepts the ID token of a newly signed-in user. The HTTP
// remote store implements it to authorise its requests.
type TokenReceiver interface {
	SetToken(token string)
}

// SessionIdentity is the in-process [IdentityProvider] holding the user of
// the current session.
type SessionIdentity struct {
	mu       sync.RWMutex
	identity models.Identity
	signedIn bool

	tokens TokenReceiver
}

// NewSessionIdentity returns a signed-out session. tokens may be nil.
func NewSessionIdentity(tokens TokenReceiver) *SessionIdentity {
	return &SessionIdentity{tokens: tokens}
}

// Current implements [IdentityProvider].
func (s *SessionIdentity) Current(context.Context) (models.Identity, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.identity, s.signedIn
}

// SignIn makes identity the current user. An identity without UID signs the
// session out.
func (s *SessionIdentity) SignIn(identity models.Identity) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.identity = identity
	s.signedIn = identity.UID != ""
}

// SignInWithToken extracts the identity from an ID token, signs it in and
// hands the token to the remote store.
func (s *SessionIdentity) SignInWithToken(idToken string) (models.Identity, error) {
	identity, err := utils.ParseIdentityFromJWT(idToken)
	if err != nil {
		return models.Identity{}, fmt.Errorf("sign in with token: %w", err)
	}

	s.SignIn(identity)
	if s.tokens != nil {
		s.tokens.SetToken(strings.TrimSpace(idToken))
	}

	return identity, nil
}

// SignOut clears the current user and the remote token.
func (s *SessionIdentity) SignOut() {
	s.mu.Lock()
	s.identity = models.Identity{}
	s.signedIn = false
	s.mu.Unlock()

	if s.tokens != nil {
		s.tokens.SetToken("")
	}
}
