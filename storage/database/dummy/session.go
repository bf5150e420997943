package dummydb

import (
	"time"

	"github.com/trezcool/edulearn/core/session"
)

type sessionRepository struct {
	db *sessionTable
}

var _ session.Repository = (*sessionRepository)(nil) // interface compliance check

func NewSessionRepository(db *DB) session.Repository {
	return &sessionRepository{db: db.session}
}

func (repo *sessionRepository) CreateSession(sess session.Session) error {
	repo.db.Lock()
	defer repo.db.Unlock()

	sess.State = sess.State.Copy()
	repo.db.table[sess.ID] = &sess
	return nil
}

func (repo *sessionRepository) GetSession(id string) (session.Session, error) {
	repo.db.RLock()
	defer repo.db.RUnlock()

	if sess, ok := repo.db.table[id]; ok {
		s := *sess
		s.State = s.State.Copy()
		return s, nil
	}
	return session.Session{}, session.ErrNotFound
}

func (repo *sessionRepository) UpdateSession(sess session.Session) error {
	repo.db.Lock()
	defer repo.db.Unlock()

	if _, ok := repo.db.table[sess.ID]; !ok {
		return session.ErrNotFound
	}
	sess.State = sess.State.Copy()
	repo.db.table[sess.ID] = &sess
	return nil
}

func (repo *sessionRepository) DeleteSession(id string) error {
	repo.db.Lock()
	defer repo.db.Unlock()

	if _, ok := repo.db.table[id]; !ok {
		return session.ErrNotFound
	}
	delete(repo.db.table, id)
	return nil
}

func (repo *sessionRepository) DeleteExpiredSessions(now time.Time) (int, error) {
	repo.db.Lock()
	defer repo.db.Unlock()

	var n int
	for id, sess := range repo.db.table {
		if sess.IsExpired(now) {
			delete(repo.db.table, id)
			n++
		}
	}
	return n, nil
}
