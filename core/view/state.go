package view

import (
	"github.com/trezcool/edulearn/core/catalog"
	"github.com/trezcool/edulearn/core/user"
)

// Page is the name of the page a session is on.
type Page string

// Pages
const (
	PageHome             Page = "home"
	PageCourses          Page = "courses"
	PageCourseDetail     Page = "course-detail"
	PageStudentDashboard Page = "student-dashboard"
	PageAdminDashboard   Page = "admin-dashboard"
	PageAddCourse        Page = "add-course"
	PageLogin            Page = "login"
	PageSignup           Page = "signup"
)

// State is everything the router needs to pick a view.
// Course and Topic are values selected earlier: catalog changes do not reach them.
type State struct {
	Page   Page            `json:"page"`
	Course *catalog.Course `json:"course,omitempty"`
	Topic  *catalog.Topic  `json:"topic,omitempty"`
	User   *user.User      `json:"user,omitempty"`
}

// NewState returns the state of a new visitor: on the home page, logged out.
func NewState() State {
	return State{Page: PageHome}
}

// Copy returns a deep copy of the state.
func (s State) Copy() State {
	if s.Course != nil {
		c := s.Course.Copy()
		s.Course = &c
	}
	if s.Topic != nil {
		t := *s.Topic
		s.Topic = &t
	}
	if s.User != nil {
		u := *s.User
		s.User = &u
	}
	return s
}

func (s State) Navigate(page Page) State {
	s = s.Copy()
	s.Page = page
	return s
}

// Login sets the user and lands on their dashboard.
func (s State) Login(usr user.User) State {
	s = s.Copy()
	s.User = &usr
	if usr.IsAdmin() {
		s.Page = PageAdminDashboard
	} else {
		s.Page = PageStudentDashboard
	}
	return s
}

func (s State) Logout() State {
	s = s.Copy()
	s.User = nil
	s.Page = PageHome
	return s
}

// SelectCourse keeps a copy of course and opens its detail page.
// A selected topic that does not belong to course is dropped.
func (s State) SelectCourse(course catalog.Course) State {
	s = s.Copy()
	c := course.Copy()
	s.Course = &c
	if s.Topic != nil {
		if _, ok := c.Topic(s.Topic.ID); !ok {
			s.Topic = nil
		}
	}
	s.Page = PageCourseDetail
	return s
}

func (s State) SelectTopic(topic catalog.Topic) State {
	s = s.Copy()
	s.Topic = &topic
	return s
}
