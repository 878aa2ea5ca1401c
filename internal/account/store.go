// Package account keeps the account map and the active session.
//
// The account map (email -> credential and profile) is the only copy of a
// profile; the session record merely names the signed-in email and holds its
// token. Every mutation is one kv.Store.Update, so a profile change is a
// single read-modify-write of the map.
package account

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"net/http"
	"slices"
	"strings"
	"sync"

	"github.com/dmitrijs2005/launchpad/internal/auth"
	"github.com/dmitrijs2005/launchpad/internal/cryptox"
	"github.com/dmitrijs2005/launchpad/internal/filex"
	"github.com/dmitrijs2005/launchpad/internal/logging"
	"github.com/dmitrijs2005/launchpad/internal/models"
	"github.com/dmitrijs2005/launchpad/internal/records"
	"github.com/dmitrijs2005/launchpad/internal/repositories/accounts"
	"github.com/dmitrijs2005/launchpad/internal/repositories/kv"
	"github.com/dmitrijs2005/launchpad/internal/repositories/sessions"
)

// MaxAvatarBytes caps SetAvatar input.
const MaxAvatarBytes = 1 << 20

type Store struct {
	mu      sync.Mutex
	kv      kv.Store
	sealer  cryptox.Sealer
	tokens  auth.TokenCodec
	log     logging.Logger
	user    *models.Profile
	loading bool
}

func NewStore(store kv.Store, sealer cryptox.Sealer, tokens auth.TokenCodec, log logging.Logger) *Store {
	return &Store{
		kv:      store,
		sealer:  sealer,
		tokens:  tokens,
		log:     log.With("component", "account"),
		loading: true,
	}
}

// CurrentUser returns a copy of the signed-in profile, or nil.
func (s *Store) CurrentUser() *models.Profile {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.user == nil {
		return nil
	}
	p := s.user.Clone()
	return &p
}

func (s *Store) IsAuthenticated() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.user != nil
}

// IsLoading is true until Bootstrap has run.
func (s *Store) IsLoading() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loading
}

// Bootstrap restores a previous session. A missing, expired or unreadable
// session is purged and the store starts signed out; errors are only logged.
func (s *Store) Bootstrap(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	defer func() { s.loading = false }()

	sess, err := sessions.New(s.kv).Get(ctx)
	if err != nil {
		s.log.Warn(ctx, "session record unreadable", "error", err)
		if errors.Is(err, records.ErrMalformed) {
			s.purgeSession(ctx)
		}
		return
	}
	if sess == nil {
		return
	}

	email, err := s.tokens.Subject(sess.Token)
	if err != nil {
		s.log.Info(ctx, "session token rejected", "error", err)
		s.purgeSession(ctx)
		return
	}
	if email != sess.Email {
		s.log.Warn(ctx, "session token does not match session email")
		s.purgeSession(ctx)
		return
	}

	acct, err := accounts.New(s.kv).Get(ctx, email)
	if err != nil || acct == nil {
		s.log.Warn(ctx, "session account unavailable", "email", email, "error", err)
		s.purgeSession(ctx)
		return
	}

	s.adopt(acct.Profile)
	s.log.Debug(ctx, "session restored", "email", email)
}

// Login signs in with an existing account. On any failure the current
// session is left untouched.
func (s *Store) Login(ctx context.Context, email, password string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	acct, err := accounts.New(s.kv).Get(ctx, email)
	if err != nil {
		if errors.Is(err, records.ErrMalformed) {
			s.log.Warn(ctx, "account map unreadable", "error", err)
			return ErrInvalidCredentials
		}
		return fmt.Errorf("load account: %w", err)
	}
	if acct == nil {
		return ErrInvalidCredentials
	}
	if err := s.sealer.Verify(acct.Credential, password); err != nil {
		s.log.Debug(ctx, "credential check failed", "email", email, "error", err)
		return ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(email)
	if err != nil {
		return err
	}
	if err := sessions.New(s.kv).Put(ctx, models.Session{Token: token, Email: email}); err != nil {
		return fmt.Errorf("save session: %w", err)
	}

	s.adopt(acct.Profile)
	s.log.Info(ctx, "signed in", "email", email)
	return nil
}

// Signup creates an account and signs into it. An existing email is never
// overwritten.
func (s *Store) Signup(ctx context.Context, email, password, name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	sealed, err := s.sealer.Seal(password)
	if err != nil {
		return fmt.Errorf("seal password: %w", err)
	}
	token, err := s.tokens.Issue(email)
	if err != nil {
		return err
	}

	profile := models.NewProfile(email, name)
	err = s.kv.Update(ctx, func(ctx context.Context, r kv.Repository) error {
		repo := accounts.New(r)
		existing, err := repo.Get(ctx, email)
		if err != nil && !errors.Is(err, records.ErrMalformed) {
			return err
		}
		if existing != nil {
			return ErrAccountExists
		}
		if err := repo.Put(ctx, email, models.Account{Credential: sealed, Profile: profile}); err != nil {
			return err
		}
		return sessions.New(r).Put(ctx, models.Session{Token: token, Email: email})
	})
	if err != nil {
		return err
	}

	s.adopt(profile)
	s.log.Info(ctx, "account created", "email", email)
	return nil
}

// Logout drops the session; the account stays.
func (s *Store) Logout(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.user = nil
	if err := sessions.New(s.kv).Delete(ctx); err != nil {
		return fmt.Errorf("delete session: %w", err)
	}
	return nil
}

// UpdateProfile merges patch into the signed-in profile.
func (s *Store) UpdateProfile(ctx context.Context, patch models.ProfilePatch) error {
	return s.mutate(ctx, func(p *models.Profile) (bool, error) {
		patch.Apply(p)
		return true, nil
	})
}

// RecordActivity adds one to the counter for kind.
func (s *Store) RecordActivity(ctx context.Context, kind models.ActivityKind) error {
	var probe models.Activities
	if !probe.Increment(kind) {
		return fmt.Errorf("%w: %q", ErrUnknownActivity, kind)
	}
	return s.mutate(ctx, func(p *models.Profile) (bool, error) {
		p.Activities.Increment(kind)
		return true, nil
	})
}

// AddAchievement appends label unless it is already there.
func (s *Store) AddAchievement(ctx context.Context, label string) error {
	return s.mutate(ctx, func(p *models.Profile) (bool, error) {
		if p.HasAchievement(label) {
			return false, nil
		}
		p.Achievements = append(p.Achievements, label)
		return true, nil
	})
}

func (s *Store) AddSkill(ctx context.Context, skill string) error {
	skill = strings.TrimSpace(skill)
	if skill == "" {
		return nil
	}
	return s.mutate(ctx, func(p *models.Profile) (bool, error) {
		if p.HasSkill(skill) {
			return false, ErrSkillExists
		}
		p.Skills = append(p.Skills, skill)
		return true, nil
	})
}

func (s *Store) RemoveSkill(ctx context.Context, skill string) error {
	skill = strings.TrimSpace(skill)
	return s.mutate(ctx, func(p *models.Profile) (bool, error) {
		i := slices.Index(p.Skills, skill)
		if i < 0 {
			return false, nil
		}
		p.Skills = slices.Delete(p.Skills, i, i+1)
		return true, nil
	})
}

// SetAvatar stores the image at path as a data URI.
func (s *Store) SetAvatar(ctx context.Context, path string) error {
	if !s.IsAuthenticated() {
		return nil
	}

	data, err := filex.ReadLimited(path, MaxAvatarBytes)
	if err != nil {
		if errors.Is(err, filex.ErrTooLarge) {
			return ErrAvatarTooLarge
		}
		return err
	}
	uri := "data:" + http.DetectContentType(data) + ";base64," + base64.StdEncoding.EncodeToString(data)

	return s.UpdateProfile(ctx, models.ProfilePatch{ProfilePicture: &uri})
}

// mutate applies fn to the signed-in profile inside one Update. fn reports
// whether anything changed; unchanged profiles are not written. It is a
// no-op when nobody is signed in.
func (s *Store) mutate(ctx context.Context, fn func(p *models.Profile) (bool, error)) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.user == nil {
		return nil
	}
	email := s.user.Email

	var updated models.Profile
	changed := false
	err := s.kv.Update(ctx, func(ctx context.Context, r kv.Repository) error {
		repo := accounts.New(r)
		acct, err := repo.Get(ctx, email)
		if err != nil && !errors.Is(err, records.ErrMalformed) {
			return err
		}

		base := *s.user
		if acct != nil {
			base = acct.Profile
		}
		updated = base.Clone()

		changed, err = fn(&updated)
		if err != nil || !changed {
			return err
		}

		if acct == nil {
			s.log.Warn(ctx, "signed-in account missing from account map, change kept in memory only", "email", email)
			return nil
		}
		acct.Profile = updated
		return repo.Put(ctx, email, *acct)
	})
	if err != nil {
		return err
	}

	if changed {
		s.adopt(updated)
	}
	return nil
}

func (s *Store) adopt(p models.Profile) {
	c := p.Clone()
	s.user = &c
}

func (s *Store) purgeSession(ctx context.Context) {
	s.user = nil
	if err := sessions.New(s.kv).Delete(ctx); err != nil {
		s.log.Error(ctx, "failed to purge session", "error", err)
	}
}
