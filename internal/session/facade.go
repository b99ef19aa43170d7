// Package session maintains the storefront's view of the signed-in user. It
// reconciles the identity provider's change stream with stored profile
// documents and exposes the result as a single observable session value.
package session

import (
	"context"
	"log/slog"
	"strings"
	"sync"

	"github.com/nithishkannan87/AIM-FOOTWEAR/internal/domain"
	"github.com/nithishkannan87/AIM-FOOTWEAR/internal/identity"
	"github.com/nithishkannan87/AIM-FOOTWEAR/internal/profile"
)

// fallbackName is used when no profile document, display name, or usable
// email is available.
const fallbackName = "User"

// Facade is the single source of truth for the current session. Consumers
// call Subscribe and re-read Current on every tick.
type Facade struct {
	provider identity.Provider
	profiles profile.Store
	logger   *slog.Logger

	mu          sync.RWMutex
	current     *domain.Session
	loading     bool
	subscribers []chan struct{}

	done chan struct{}
}

// NewFacade creates the facade and starts reconciling the provider's change
// stream. Loading reports true until the first event has been processed.
func NewFacade(provider identity.Provider, profiles profile.Store, logger *slog.Logger) *Facade {
	f := &Facade{
		provider: provider,
		profiles: profiles,
		logger:   logger,
		loading:  true,
		done:     make(chan struct{}),
	}
	go f.watch()
	return f
}

// Close stops the reconciliation loop. The facade keeps its last state.
func (f *Facade) Close() {
	close(f.done)
}

// Current returns the session, or nil when signed out.
func (f *Facade) Current() *domain.Session {
	f.mu.RLock()
	defer f.mu.RUnlock()
	if f.current == nil {
		return nil
	}
	copied := *f.current
	return &copied
}

// Loading reports whether the initial session restore is still pending.
func (f *Facade) Loading() bool {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return f.loading
}

// Subscribe returns a channel that receives a tick after every session
// change. The channel is buffered; a pending tick is never duplicated.
func (f *Facade) Subscribe() <-chan struct{} {
	ch := make(chan struct{}, 1)
	f.mu.Lock()
	f.subscribers = append(f.subscribers, ch)
	f.mu.Unlock()
	return ch
}

// Login authenticates with the provider and sets the session. Provider
// errors propagate unchanged. The session is reconciled synchronously so the
// caller sees it immediately; the provider's own change event converges on
// the same state.
func (f *Facade) Login(ctx context.Context, email, password string) (*domain.Session, error) {
	acct, err := f.provider.SignIn(ctx, email, password)
	if err != nil {
		return nil, err
	}

	f.reconcile(ctx, acct)
	return f.Current(), nil
}

// SignUp creates the account, records the chosen name on both the provider
// and the profile store, and sets the local session synchronously so the
// name is visible before the provider's change event arrives.
func (f *Facade) SignUp(ctx context.Context, email, password, name string) (*domain.Session, error) {
	acct, err := f.provider.SignUp(ctx, email, password)
	if err != nil {
		return nil, err
	}

	if err := f.provider.UpdateDisplayName(ctx, acct.UID, name); err != nil {
		return nil, err
	}

	doc := &profile.Document{UID: acct.UID, Name: name, Email: acct.Email}
	if err := f.profiles.Upsert(ctx, doc); err != nil {
		return nil, err
	}

	f.set(&domain.Session{Name: name, Email: acct.Email, UID: acct.UID})
	return f.Current(), nil
}

// Logout signs out of the provider and clears the session. Provider errors
// propagate unchanged.
func (f *Facade) Logout(ctx context.Context) error {
	if err := f.provider.SignOut(ctx); err != nil {
		return err
	}
	f.set(nil)
	return nil
}

func (f *Facade) watch() {
	for {
		select {
		case acct := <-f.provider.Changes():
			f.reconcile(context.Background(), acct)
		case <-f.done:
			return
		}
	}
}

// reconcile turns a provider account event into the session value. A nil
// account clears the session. Profile lookup failures are never fatal; the
// name falls through to the account's display name, the email local part,
// and finally a generic placeholder.
func (f *Facade) reconcile(ctx context.Context, acct *identity.Account) {
	if acct == nil {
		f.set(nil)
		return
	}

	var docName string
	doc, err := f.profiles.Get(ctx, acct.UID)
	if err != nil {
		f.logger.WarnContext(ctx, "profile lookup failed, falling back", "uid", acct.UID, "error", err)
	} else {
		docName = doc.Name
	}

	f.set(&domain.Session{
		Name:  resolveName(docName, acct),
		Email: acct.Email,
		UID:   acct.UID,
	})
}

func (f *Facade) set(s *domain.Session) {
	f.mu.Lock()
	f.current = s
	f.loading = false
	subscribers := f.subscribers
	f.mu.Unlock()

	for _, ch := range subscribers {
		select {
		case ch <- struct{}{}:
		default:
		}
	}
}

func resolveName(docName string, acct *identity.Account) string {
	if docName != "" {
		return docName
	}
	if acct.DisplayName != "" {
		return acct.DisplayName
	}
	if local, _, found := strings.Cut(acct.Email, "@"); found && local != "" {
		return local
	}
	return fallbackName
}
