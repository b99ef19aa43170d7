package local

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nithishkannan87/AIM-FOOTWEAR/internal/identity"
)

func newTestProvider(t *testing.T) *Provider {
	t.Helper()
	logger := slog.New(slog.DiscardHandler)
	p := NewProvider("test-secret", time.Hour, logger)
	// Consume the initial restore event so tests see only their own changes.
	assert.Nil(t, <-p.Changes())
	return p
}

func drainChanges(t *testing.T, p *Provider) *identity.Account {
	t.Helper()
	select {
	case acct := <-p.Changes():
		return acct
	case <-time.After(time.Second):
		t.Fatal("expected an auth change")
		return nil
	}
}

func TestSignUpCreatesAndSignsIn(t *testing.T) {
	p := newTestProvider(t)

	acct, err := p.SignUp(context.Background(), "Maya@Example.com", "correct-horse")
	require.NoError(t, err)
	assert.NotEmpty(t, acct.UID)
	assert.Equal(t, "maya@example.com", acct.Email)
	assert.Empty(t, acct.DisplayName)

	current := p.Current()
	require.NotNil(t, current)
	assert.Equal(t, acct.UID, current.UID)

	change := drainChanges(t, p)
	require.NotNil(t, change)
	assert.Equal(t, acct.UID, change.UID)
}

func TestSignUpRejectsWeakPassword(t *testing.T) {
	p := newTestProvider(t)

	_, err := p.SignUp(context.Background(), "maya@example.com", "short")
	assert.ErrorIs(t, err, identity.ErrWeakPassword)
	assert.Nil(t, p.Current())
}

func TestSignUpRejectsDuplicateEmail(t *testing.T) {
	p := newTestProvider(t)
	ctx := context.Background()

	_, err := p.SignUp(ctx, "maya@example.com", "correct-horse")
	require.NoError(t, err)

	_, err = p.SignUp(ctx, "MAYA@example.com", "battery-staple")
	assert.ErrorIs(t, err, identity.ErrEmailInUse)
}

func TestSignInVerifiesPassword(t *testing.T) {
	p := newTestProvider(t)
	ctx := context.Background()

	created, err := p.SignUp(ctx, "maya@example.com", "correct-horse")
	require.NoError(t, err)
	require.NoError(t, p.SignOut(ctx))

	acct, err := p.SignIn(ctx, "maya@example.com", "correct-horse")
	require.NoError(t, err)
	assert.Equal(t, created.UID, acct.UID)

	_, err = p.SignIn(ctx, "maya@example.com", "wrong-password")
	assert.ErrorIs(t, err, identity.ErrInvalidCredentials)

	_, err = p.SignIn(ctx, "nobody@example.com", "correct-horse")
	assert.ErrorIs(t, err, identity.ErrInvalidCredentials)
}

func TestSignOutEmitsNil(t *testing.T) {
	p := newTestProvider(t)
	ctx := context.Background()

	_, err := p.SignUp(ctx, "maya@example.com", "correct-horse")
	require.NoError(t, err)
	drainChanges(t, p)

	require.NoError(t, p.SignOut(ctx))
	assert.Nil(t, drainChanges(t, p))
	assert.Nil(t, p.Current())
}

func TestSignOutWhileSignedOutIsNoop(t *testing.T) {
	p := newTestProvider(t)

	require.NoError(t, p.SignOut(context.Background()))

	select {
	case <-p.Changes():
		t.Fatal("unexpected auth change")
	default:
	}
}

func TestUpdateDisplayNameReemitsCurrentAccount(t *testing.T) {
	p := newTestProvider(t)
	ctx := context.Background()

	acct, err := p.SignUp(ctx, "maya@example.com", "correct-horse")
	require.NoError(t, err)
	drainChanges(t, p)

	require.NoError(t, p.UpdateDisplayName(ctx, acct.UID, "Maya"))

	change := drainChanges(t, p)
	require.NotNil(t, change)
	assert.Equal(t, "Maya", change.DisplayName)
	assert.Equal(t, "Maya", p.Current().DisplayName)
}

func TestUpdateDisplayNameUnknownUID(t *testing.T) {
	p := newTestProvider(t)

	err := p.UpdateDisplayName(context.Background(), "no-such-uid", "Maya")
	assert.ErrorIs(t, err, identity.ErrAccountNotFound)
}

func TestTokenRoundTrip(t *testing.T) {
	p := newTestProvider(t)
	ctx := context.Background()

	acct, err := p.SignUp(ctx, "maya@example.com", "correct-horse")
	require.NoError(t, err)
	require.NoError(t, p.UpdateDisplayName(ctx, acct.UID, "Maya"))

	token, err := p.IssueToken(p.Current())
	require.NoError(t, err)

	parsed, err := p.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, acct.UID, parsed.UID)
	assert.Equal(t, "maya@example.com", parsed.Email)
	assert.Equal(t, "Maya", parsed.DisplayName)
}

func TestValidateTokenRejectsExpired(t *testing.T) {
	logger := slog.New(slog.DiscardHandler)
	p := NewProvider("test-secret", -time.Minute, logger)

	acct, err := p.SignUp(context.Background(), "maya@example.com", "correct-horse")
	require.NoError(t, err)

	token, err := p.IssueToken(acct)
	require.NoError(t, err)

	_, err = p.ValidateToken(token)
	assert.Error(t, err)
}

func TestValidateTokenRejectsWrongSecret(t *testing.T) {
	p := newTestProvider(t)
	other := NewProvider("other-secret", time.Hour, slog.New(slog.DiscardHandler))

	acct, err := p.SignUp(context.Background(), "maya@example.com", "correct-horse")
	require.NoError(t, err)

	token, err := p.IssueToken(acct)
	require.NoError(t, err)

	_, err = other.ValidateToken(token)
	assert.Error(t, err)
}
