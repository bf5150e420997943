package view

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestState_transitions(t *testing.T) {
	s := NewState()
	assert.Equal(t, State{Page: PageHome}, s)

	s = s.Navigate(PageCourses)
	assert.Equal(t, PageCourses, s.Page)

	t.Run("login lands on the role dashboard", func(t *testing.T) {
		assert.Equal(t, PageStudentDashboard, s.Login(student).Page)
		assert.Equal(t, PageAdminDashboard, s.Login(admin).Page)
		assert.Equal(t, &admin, s.Login(admin).User)
	})

	t.Run("logout drops the user", func(t *testing.T) {
		out := s.Login(admin).Navigate(PageAddCourse).Logout()
		assert.Equal(t, State{Page: PageHome}, out)
	})

	t.Run("selected course is a value", func(t *testing.T) {
		course := webDev.Copy()
		sel := s.SelectCourse(course)
		assert.Equal(t, PageCourseDetail, sel.Page)
		course.Title = "changed"
		course.Topics[0].Title = "changed"
		require.NotNil(t, sel.Course)
		assert.Equal(t, webDev, *sel.Course)
	})

	t.Run("select topic", func(t *testing.T) {
		sel := s.SelectCourse(webDev).SelectTopic(webDev.Topics[1])
		require.NotNil(t, sel.Topic)
		assert.Equal(t, "1-2", sel.Topic.ID)
		assert.Equal(t, PageCourseDetail, sel.Page)

		// same course keeps the topic, another one drops it
		assert.NotNil(t, sel.SelectCourse(webDev).Topic)
		assert.Nil(t, sel.SelectCourse(dsa).Topic)
	})

	t.Run("transitions do not touch the receiver", func(t *testing.T) {
		orig := s.Login(student).SelectCourse(webDev)
		cp := orig.Copy()
		_ = orig.Logout()
		_ = orig.Navigate(PageHome)
		_ = orig.SelectTopic(webDev.Topics[2])
		assert.Equal(t, cp, orig)
	})
}
