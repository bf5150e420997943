package view

import (
	"github.com/trezcool/edulearn/core/catalog"
	"github.com/trezcool/edulearn/core/user"
)

// Kind is the variant of a resolved View.
type Kind string

// Kinds
const (
	KindHome             Kind = "home"
	KindCourses          Kind = "courses"
	KindCourseDetail     Kind = "course-detail"
	KindStudentDashboard Kind = "student-dashboard"
	KindAdminDashboard   Kind = "admin-dashboard"
	KindAddCourse        Kind = "add-course"
	KindLogin            Kind = "login"
	KindSignup           Kind = "signup"
	KindNone             Kind = "none" // nothing to render
)

const videoEmbedBaseURL = "https://www.youtube.com/embed/"

type (
	// View is what the client renders. Only the payload of Kind is set.
	View struct {
		Kind     Kind              `json:"kind"`
		User     *user.User        `json:"user,omitempty"`
		Featured []catalog.Course  `json:"featured,omitempty"`
		Courses  []catalog.Course  `json:"courses,omitempty"`
		Stats    *catalog.Stats    `json:"stats,omitempty"`
		Detail   *CourseDetail     `json:"detail,omitempty"`
		Student  *StudentDashboard `json:"student,omitempty"`
		Admin    *AdminDashboard   `json:"admin,omitempty"`
		Levels   []string          `json:"levels,omitempty"`
	}

	CourseDetail struct {
		Course          catalog.Course `json:"course"`
		DescriptionHTML string         `json:"description_html"`
		Topic           *TopicPlayer   `json:"topic,omitempty"`
		Progress        float64        `json:"progress"`
		CompletedTopics int            `json:"completed_topics"`
	}

	TopicPlayer struct {
		catalog.Topic
		DescriptionHTML string `json:"description_html"`
		EmbedURL        string `json:"embed_url"`
	}
)

// Resolve maps a state to the view to render. It never fails: a page whose
// requirements are not met (no selected course, no user, not an admin for add-course) resolves to KindNone,
// an unknown page resolves to KindHome.
func Resolve(state State, courses []catalog.Course) View {
	v := View{User: state.User}

	switch state.Page {
	case PageHome:
		v.Kind = KindHome
		v.Featured = courses
	case PageCourses:
		stats := catalog.ComputeStats(courses)
		v.Kind = KindCourses
		v.Courses = courses
		v.Stats = &stats
		v.Levels = catalog.Levels
	case PageCourseDetail:
		if state.Course == nil {
			return View{Kind: KindNone}
		}
		v.Kind = KindCourseDetail
		v.Detail = newCourseDetail(*state.Course, state.Topic)
	case PageStudentDashboard:
		if state.User == nil {
			return View{Kind: KindNone}
		}
		v.Kind = KindStudentDashboard
		v.Student = newStudentDashboard(courses)
	case PageAdminDashboard:
		if state.User == nil {
			return View{Kind: KindNone}
		}
		v.Kind = KindAdminDashboard
		v.Admin = newAdminDashboard(courses)
	case PageAddCourse:
		if state.User == nil || !state.User.IsAdmin() {
			return View{Kind: KindNone}
		}
		v.Kind = KindAddCourse
		v.Levels = catalog.Levels
	case PageLogin:
		v.Kind = KindLogin
	case PageSignup:
		v.Kind = KindSignup
	default:
		v.Kind = KindHome
		v.Featured = courses
	}
	return v
}

func newCourseDetail(course catalog.Course, topic *catalog.Topic) *CourseDetail {
	d := &CourseDetail{
		Course:          course.Copy(),
		DescriptionHTML: catalog.RenderDescription(course.Description),
		Progress:        catalog.Progress(course),
	}
	for _, t := range course.Topics {
		if t.Completed {
			d.CompletedTopics++
		}
	}
	if topic != nil {
		d.Topic = &TopicPlayer{
			Topic:           *topic,
			DescriptionHTML: catalog.RenderDescription(topic.Description),
			EmbedURL:        videoEmbedBaseURL + topic.VideoURL,
		}
	}
	return d
}
