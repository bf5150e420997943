// Package session keeps the server side state of each client: the logged in user and the view state.
package session

import (
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"

	"github.com/trezcool/edulearn/core/view"
)

var (
	// errors
	ErrNotFound = errors.New("session not found")

	NowFunc = time.Now // mockable
)

type (
	Session struct {
		ID        string     `json:"id"`
		State     view.State `json:"state"`
		CreatedAt time.Time  `json:"created_at"` // UTC
		UpdatedAt time.Time  `json:"updated_at"` // UTC
		ExpiresAt time.Time  `json:"expires_at"` // UTC
	}

	Repository interface {
		CreateSession(sess Session) error
		GetSession(id string) (Session, error)
		UpdateSession(sess Session) error
		DeleteSession(id string) error
		// DeleteExpiredSessions removes every session expired at now and returns how many were removed.
		DeleteExpiredSessions(now time.Time) (int, error)
	}

	Service struct {
		repo Repository
		ttl  time.Duration
	}
)

// NewService returns a session Service. Sessions expire ttl after their last save.
func NewService(repo Repository, ttl time.Duration) *Service {
	return &Service{repo: repo, ttl: ttl}
}

func (sess Session) IsExpired(now time.Time) bool {
	return !now.Before(sess.ExpiresAt)
}

// Open starts a session for a visitor: logged out, on the home page.
// Expired sessions are swept first.
func (svc *Service) Open() (Session, error) {
	now := NowFunc().UTC()
	if _, err := svc.repo.DeleteExpiredSessions(now); err != nil {
		return Session{}, errors.Wrap(err, "deleting expired sessions")
	}

	sess := Session{
		ID:        uuid.New().String(),
		State:     view.NewState(),
		CreatedAt: now,
		UpdatedAt: now,
		ExpiresAt: now.Add(svc.ttl),
	}
	if err := svc.repo.CreateSession(sess); err != nil {
		return Session{}, errors.Wrap(err, "creating session")
	}
	return sess, nil
}

// Get returns a live session. An expired one is deleted and reported as ErrNotFound.
func (svc *Service) Get(id string) (Session, error) {
	sess, err := svc.repo.GetSession(id)
	if err != nil {
		return Session{}, err
	}
	if sess.IsExpired(NowFunc().UTC()) {
		if err = svc.repo.DeleteSession(id); err != nil && errors.Cause(err) != ErrNotFound {
			return Session{}, errors.Wrap(err, "deleting expired session")
		}
		return Session{}, ErrNotFound
	}
	return sess, nil
}

// Save stores the new state of sess and pushes its expiry back.
func (svc *Service) Save(sess Session) (Session, error) {
	now := NowFunc().UTC()
	sess.UpdatedAt = now
	sess.ExpiresAt = now.Add(svc.ttl)
	if err := svc.repo.UpdateSession(sess); err != nil {
		return Session{}, errors.Wrap(err, "updating session")
	}
	return sess, nil
}

// Close drops the session: its token stops working.
func (svc *Service) Close(id string) error {
	return svc.repo.DeleteSession(id)
}

// Logout closes sess and returns a new anonymous session carrying the logged out state.
func (svc *Service) Logout(sess Session) (Session, error) {
	if err := svc.Close(sess.ID); err != nil {
		return Session{}, errors.Wrap(err, "closing session")
	}
	anon, err := svc.Open()
	if err != nil {
		return Session{}, err
	}
	anon.State = sess.State.Logout()
	return svc.Save(anon)
}
