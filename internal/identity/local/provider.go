// Package local is an in-process identity provider backed by bcrypt password
// hashes and HS256 ID tokens. It exists so the storefront runs without an
// external auth service.
package local

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/nithishkannan87/AIM-FOOTWEAR/internal/identity"
)

const (
	bcryptCost        = 12
	minPasswordLength = 8
	changeBufferSize  = 16
	tokenIssuer       = "aim-footwear"
)

type account struct {
	uid          string
	email        string
	displayName  string
	passwordHash []byte
}

// Provider stores accounts in memory and tracks the current signed-in
// account. Every authentication state transition is published on the
// Changes stream.
type Provider struct {
	mu       sync.RWMutex
	byEmail  map[string]*account
	byUID    map[string]*account
	current  string // UID of the signed-in account, empty when signed out
	changes  chan *identity.Account
	secret   []byte
	tokenTTL time.Duration
	logger   *slog.Logger
}

// NewProvider creates an empty provider. The secret signs ID tokens and the
// TTL bounds their validity. The change stream carries one initial nil event,
// the restore result: a fresh provider has no persisted session.
func NewProvider(secret string, tokenTTL time.Duration, logger *slog.Logger) *Provider {
	p := &Provider{
		byEmail:  make(map[string]*account),
		byUID:    make(map[string]*account),
		changes:  make(chan *identity.Account, changeBufferSize),
		secret:   []byte(secret),
		tokenTTL: tokenTTL,
		logger:   logger,
	}
	p.changes <- nil
	return p
}

// SignUp registers a new account and signs it in. The email is normalized to
// lower case; the display name starts empty and is filled in later via
// UpdateDisplayName.
func (p *Provider) SignUp(ctx context.Context, email, password string) (*identity.Account, error) {
	email = normalizeEmail(email)
	if len(password) < minPasswordLength {
		return nil, identity.ErrWeakPassword
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	p.mu.Lock()
	if _, exists := p.byEmail[email]; exists {
		p.mu.Unlock()
		return nil, identity.ErrEmailInUse
	}

	acct := &account{
		uid:          uuid.New().String(),
		email:        email,
		passwordHash: hash,
	}
	p.byEmail[email] = acct
	p.byUID[acct.uid] = acct
	p.current = acct.uid
	snapshot := acct.snapshot()
	p.mu.Unlock()

	p.emit(snapshot)
	p.logger.InfoContext(ctx, "account created", "uid", snapshot.UID)
	return snapshot, nil
}

// SignIn verifies the credentials and makes the account current. Unknown
// emails and wrong passwords are indistinguishable to the caller.
func (p *Provider) SignIn(ctx context.Context, email, password string) (*identity.Account, error) {
	email = normalizeEmail(email)

	p.mu.RLock()
	acct, ok := p.byEmail[email]
	p.mu.RUnlock()
	if !ok {
		return nil, identity.ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword(acct.passwordHash, []byte(password)); err != nil {
		return nil, identity.ErrInvalidCredentials
	}

	p.mu.Lock()
	p.current = acct.uid
	snapshot := acct.snapshot()
	p.mu.Unlock()

	p.emit(snapshot)
	p.logger.InfoContext(ctx, "signed in", "uid", snapshot.UID)
	return snapshot, nil
}

// SignOut clears the current account and emits nil on the change stream.
// Signing out while already signed out is a no-op.
func (p *Provider) SignOut(ctx context.Context) error {
	p.mu.Lock()
	wasSignedIn := p.current != ""
	p.current = ""
	p.mu.Unlock()

	if wasSignedIn {
		p.emit(nil)
		p.logger.InfoContext(ctx, "signed out")
	}
	return nil
}

// UpdateDisplayName sets the account's display name. If the account is the
// current one, the updated account is re-emitted so observers pick up the
// new name.
func (p *Provider) UpdateDisplayName(ctx context.Context, uid, name string) error {
	p.mu.Lock()
	acct, ok := p.byUID[uid]
	if !ok {
		p.mu.Unlock()
		return identity.ErrAccountNotFound
	}
	acct.displayName = name
	isCurrent := p.current == uid
	snapshot := acct.snapshot()
	p.mu.Unlock()

	if isCurrent {
		p.emit(snapshot)
	}
	return nil
}

// Changes returns the authentication state stream. The provider never closes
// it; slow consumers drop events rather than block sign-in.
func (p *Provider) Changes() <-chan *identity.Account {
	return p.changes
}

// Current returns the signed-in account, or nil.
func (p *Provider) Current() *identity.Account {
	p.mu.RLock()
	defer p.mu.RUnlock()
	if p.current == "" {
		return nil
	}
	return p.byUID[p.current].snapshot()
}

func (p *Provider) emit(acct *identity.Account) {
	select {
	case p.changes <- acct:
	default:
		p.logger.Warn("auth change dropped, subscriber not keeping up")
	}
}

func (a *account) snapshot() *identity.Account {
	return &identity.Account{
		UID:         a.uid,
		Email:       a.email,
		DisplayName: a.displayName,
	}
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
