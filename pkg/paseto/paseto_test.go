package pasetotoken

import (
	"testing"
	"time"

	"github.com/google/uuid"
)

func newTestManager(t *testing.T, mode Mode) *Manager {
	t.Helper()

	keys := NewLocalKeys()
	if mode == ModePublic {
		keys = NewPublicKeys()
	}

	m, err := New(Config{
		Mode:       mode,
		Issuer:     "bookora",
		Audience:   "bookora-api",
		AccessTTL:  15 * time.Minute,
		RefreshTTL: 30 * 24 * time.Hour,
	}, keys)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	return m
}

func TestIssueAndVerifyRoundTrip(t *testing.T) {
	for _, mode := range []Mode{ModeLocal, ModePublic} {
		t.Run(string(mode), func(t *testing.T) {
			m := newTestManager(t, mode)

			userID := uuid.Must(uuid.NewV7())
			sessionID := uuid.Must(uuid.NewV7())

			access, err := m.IssueAccess(userID, &sessionID)
			if err != nil {
				t.Fatalf("IssueAccess() error = %v", err)
			}

			claims, err := m.Verify(access)
			if err != nil {
				t.Fatalf("Verify() error = %v", err)
			}
			if claims.Type != TokenTypeAccess {
				t.Errorf("claims.Type = %q, want %q", claims.Type, TokenTypeAccess)
			}
			if claims.UserID != userID {
				t.Errorf("claims.UserID = %v, want %v", claims.UserID, userID)
			}
			if claims.SessionID == nil || *claims.SessionID != sessionID {
				t.Errorf("claims.SessionID = %v, want %v", claims.SessionID, sessionID)
			}

			refresh, err := m.IssueRefresh(userID, &sessionID)
			if err != nil {
				t.Fatalf("IssueRefresh() error = %v", err)
			}
			claims, err = m.Verify(refresh)
			if err != nil {
				t.Fatalf("Verify(refresh) error = %v", err)
			}
			if claims.Type != TokenTypeRefresh {
				t.Errorf("claims.Type = %q, want %q", claims.Type, TokenTypeRefresh)
			}
		})
	}
}

func TestVerifyRejectsForeignToken(t *testing.T) {
	issuer := newTestManager(t, ModeLocal)
	verifier := newTestManager(t, ModeLocal) // different symmetric key

	userID := uuid.Must(uuid.NewV7())
	tok, err := issuer.IssueAccess(userID, nil)
	if err != nil {
		t.Fatalf("IssueAccess() error = %v", err)
	}

	if _, err := verifier.Verify(tok); err == nil {
		t.Error("Verify() accepted a token encrypted with a different key")
	}
}

func TestVerifyRejectsGarbage(t *testing.T) {
	m := newTestManager(t, ModeLocal)

	for _, tok := range []string{"", "not-a-token", "v4.local.zzzz"} {
		if _, err := m.Verify(tok); err == nil {
			t.Errorf("Verify(%q) accepted an invalid token", tok)
		}
	}
}

func TestSessionlessTokenHasNilSessionID(t *testing.T) {
	m := newTestManager(t, ModeLocal)

	userID := uuid.Must(uuid.NewV7())
	tok, err := m.IssueAccess(userID, nil)
	if err != nil {
		t.Fatalf("IssueAccess() error = %v", err)
	}

	claims, err := m.Verify(tok)
	if err != nil {
		t.Fatalf("Verify() error = %v", err)
	}
	if claims.SessionID != nil {
		t.Errorf("claims.SessionID = %v, want nil", claims.SessionID)
	}
}
