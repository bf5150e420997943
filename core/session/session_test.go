package session_test

import (
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trezcool/edulearn/core/catalog"
	"github.com/trezcool/edulearn/core/session"
	"github.com/trezcool/edulearn/core/user"
	"github.com/trezcool/edulearn/core/view"
	dummydb "github.com/trezcool/edulearn/storage/database/dummy"
)

func TestService(t *testing.T) {
	now := time.Date(2024, 1, 15, 10, 30, 0, 0, time.UTC)
	session.NowFunc = func() time.Time { return now }
	defer func() { session.NowFunc = time.Now }()

	svc := session.NewService(dummydb.NewSessionRepository(dummydb.Open()), time.Hour)

	s1, err := svc.Open()
	require.NoError(t, err)
	s2, err := svc.Open()
	require.NoError(t, err)
	assert.NotEqual(t, s1.ID, s2.ID)
	assert.Equal(t, view.NewState(), s1.State)
	assert.Equal(t, now, s1.CreatedAt)
	assert.Equal(t, now.Add(time.Hour), s1.ExpiresAt)

	got, err := svc.Get(s1.ID)
	require.NoError(t, err)
	assert.Equal(t, s1, got)

	now = now.Add(time.Minute)
	usr := user.User{ID: "1", Name: "John Doe", Email: "student@example.com", Role: user.RoleStudent}
	got.State = got.State.Login(usr)
	saved, err := svc.Save(got)
	require.NoError(t, err)
	assert.Equal(t, now, saved.UpdatedAt)
	assert.Equal(t, now.Add(time.Hour), saved.ExpiresAt)

	got, err = svc.Get(s1.ID)
	require.NoError(t, err)
	assert.Equal(t, saved, got)
	assert.Equal(t, view.PageStudentDashboard, got.State.Page)

	// other sessions are untouched
	got, err = svc.Get(s2.ID)
	require.NoError(t, err)
	assert.Nil(t, got.State.User)

	require.NoError(t, svc.Close(s1.ID))
	_, err = svc.Get(s1.ID)
	assert.Equal(t, session.ErrNotFound, err)

	_, err = svc.Save(saved)
	assert.Equal(t, session.ErrNotFound, errors.Cause(err))
}

func setupClock(t *testing.T) *time.Time {
	now := time.Date(2024, 1, 15, 10, 30, 0, 0, time.UTC)
	session.NowFunc = func() time.Time { return now }
	t.Cleanup(func() { session.NowFunc = time.Now })
	return &now
}

func TestService_expiry(t *testing.T) {
	now := setupClock(t)
	repo := dummydb.NewSessionRepository(dummydb.Open())
	svc := session.NewService(repo, time.Hour)

	stale, err := svc.Open()
	require.NoError(t, err)
	kept, err := svc.Open()
	require.NoError(t, err)

	*now = now.Add(30 * time.Minute)
	kept, err = svc.Save(kept)
	require.NoError(t, err)

	t.Run("expired session is gone", func(t *testing.T) {
		*now = now.Add(30 * time.Minute) // stale expires now
		_, err := svc.Get(stale.ID)
		assert.Equal(t, session.ErrNotFound, err)
		_, err = repo.GetSession(stale.ID)
		assert.Equal(t, session.ErrNotFound, err)

		_, err = svc.Get(kept.ID)
		assert.NoError(t, err)
	})

	t.Run("opening sweeps expired sessions", func(t *testing.T) {
		*now = now.Add(time.Hour)
		_, err := svc.Open()
		require.NoError(t, err)

		_, err = repo.GetSession(kept.ID)
		assert.Equal(t, session.ErrNotFound, err)
	})
}

func TestService_Logout(t *testing.T) {
	setupClock(t)
	svc := session.NewService(dummydb.NewSessionRepository(dummydb.Open()), time.Hour)

	sess, err := svc.Open()
	require.NoError(t, err)
	course := catalog.Course{ID: "1", Title: "Web Development"}
	sess.State = sess.State.SelectCourse(course).Login(user.User{ID: "2", Name: "Admin User", Role: user.RoleAdmin})
	sess, err = svc.Save(sess)
	require.NoError(t, err)

	anon, err := svc.Logout(sess)
	require.NoError(t, err)
	assert.NotEqual(t, sess.ID, anon.ID)
	assert.Nil(t, anon.State.User)
	assert.Equal(t, view.PageHome, anon.State.Page)
	require.NotNil(t, anon.State.Course)
	assert.Equal(t, "1", anon.State.Course.ID)

	_, err = svc.Get(sess.ID)
	assert.Equal(t, session.ErrNotFound, err)
	got, err := svc.Get(anon.ID)
	require.NoError(t, err)
	assert.Equal(t, anon, got)

	_, err = svc.Logout(sess)
	assert.Equal(t, session.ErrNotFound, errors.Cause(err))
}
