package view

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trezcool/edulearn/core/catalog"
	"github.com/trezcool/edulearn/core/user"
)

var (
	webDev = catalog.Course{ID: "1", Title: "Web Development", Description: "Learn **modern** web development", Enrolled: 1250, Rating: 4.8,
		Topics: []catalog.Topic{
			{ID: "1-1", Title: "HTML Fundamentals", VideoURL: "IA8JWGP13dI", Completed: true},
			{ID: "1-2", Title: "CSS Styling"},
			{ID: "1-3", Title: "JavaScript Basics"},
			{ID: "1-4", Title: "React Framework"},
		},
	}
	dsa = catalog.Course{ID: "2", Title: "Data Structure & Algorithm", Enrolled: 850, Rating: 4.9,
		Topics: []catalog.Topic{{ID: "2-1", Title: "Arrays & Strings"}, {ID: "2-2", Title: "Linked Lists"}},
	}
	intro   = catalog.Course{ID: "3", Title: "Intro", Enrolled: 10, Topics: []catalog.Topic{{ID: "3-1", Title: "Welcome"}}}
	go101   = catalog.Course{ID: "4", Title: "Go 101", Enrolled: 900}
	courses = []catalog.Course{webDev, dsa, intro, go101}

	student = user.User{ID: "1", Name: "John Doe", Email: "student@example.com", Role: user.RoleStudent}
	admin   = user.User{ID: "2", Name: "Admin User", Email: "admin@example.com", Role: user.RoleAdmin}
)

func TestResolve_kinds(t *testing.T) {
	tests := []struct {
		name  string
		state State
		want  Kind
	}{
		{name: "home", state: State{Page: PageHome}, want: KindHome},
		{name: "courses", state: State{Page: PageCourses}, want: KindCourses},
		{name: "login", state: State{Page: PageLogin}, want: KindLogin},
		{name: "signup", state: State{Page: PageSignup}, want: KindSignup},
		{name: "unknown page", state: State{Page: "lol"}, want: KindHome},
		{name: "empty page", state: State{}, want: KindHome},
		{name: "course-detail without course", state: State{Page: PageCourseDetail}, want: KindNone},
		{name: "course-detail", state: State{Page: PageCourseDetail, Course: &webDev}, want: KindCourseDetail},
		{name: "student-dashboard anonymous", state: State{Page: PageStudentDashboard}, want: KindNone},
		{name: "student-dashboard", state: State{Page: PageStudentDashboard, User: &student}, want: KindStudentDashboard},
		{name: "student-dashboard admin", state: State{Page: PageStudentDashboard, User: &admin}, want: KindStudentDashboard},
		{name: "admin-dashboard anonymous", state: State{Page: PageAdminDashboard}, want: KindNone},
		{name: "admin-dashboard student", state: State{Page: PageAdminDashboard, User: &student}, want: KindAdminDashboard},
		{name: "admin-dashboard", state: State{Page: PageAdminDashboard, User: &admin}, want: KindAdminDashboard},
		{name: "add-course anonymous", state: State{Page: PageAddCourse}, want: KindNone},
		{name: "add-course student", state: State{Page: PageAddCourse, User: &student}, want: KindNone},
		{name: "add-course", state: State{Page: PageAddCourse, User: &admin}, want: KindAddCourse},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Resolve(tt.state, courses).Kind)
		})
	}
}

func TestResolve_none(t *testing.T) {
	assert.Equal(t, View{Kind: KindNone}, Resolve(State{Page: PageAddCourse, User: &student}, courses))
}

func TestResolve_home(t *testing.T) {
	v := Resolve(State{Page: "lol", User: &student}, courses)
	assert.Equal(t, courses, v.Featured)
	assert.Equal(t, &student, v.User)
}

func TestResolve_courses(t *testing.T) {
	v := Resolve(State{Page: PageCourses}, courses)
	assert.Equal(t, courses, v.Courses)
	require.NotNil(t, v.Stats)
	assert.Equal(t, catalog.Stats{TotalCourses: 4, TotalEnrolled: 3010, AverageRating: 2.4, TotalTopics: 7}, *v.Stats)
	assert.Equal(t, catalog.Levels, v.Levels)
}

func TestResolve_courseDetail(t *testing.T) {
	topic := webDev.Topics[0]
	v := Resolve(State{Page: PageCourseDetail, Course: &webDev, Topic: &topic}, courses)
	require.NotNil(t, v.Detail)
	assert.Equal(t, webDev, v.Detail.Course)
	assert.Equal(t, "<p>Learn <strong>modern</strong> web development</p>\n", v.Detail.DescriptionHTML)
	assert.Equal(t, 25.0, v.Detail.Progress)
	assert.Equal(t, 1, v.Detail.CompletedTopics)
	require.NotNil(t, v.Detail.Topic)
	assert.Equal(t, "HTML Fundamentals", v.Detail.Topic.Title)
	assert.Equal(t, "https://www.youtube.com/embed/IA8JWGP13dI", v.Detail.Topic.EmbedURL)

	v = Resolve(State{Page: PageCourseDetail, Course: &go101}, courses)
	require.NotNil(t, v.Detail)
	assert.Nil(t, v.Detail.Topic)
	assert.Equal(t, 0.0, v.Detail.Progress)
}

func TestResolve_studentDashboard(t *testing.T) {
	v := Resolve(State{Page: PageStudentDashboard, User: &student}, courses)
	require.NotNil(t, v.Student)
	d := v.Student

	assert.Equal(t, StudentStats{CoursesEnrolled: 4, HoursLearned: 28, Certificates: 0, StreakDays: 7}, d.Stats)
	require.Len(t, d.Enrolled, 4)

	tests := []struct {
		idx         int
		progress    int
		lastWatched string
		nextLesson  string
	}{
		{idx: 0, progress: 65, lastWatched: "2 days ago", nextLesson: "1-3"},
		{idx: 1, progress: 30, lastWatched: "1 week ago", nextLesson: "2-2"},
		{idx: 2, progress: 30, lastWatched: "1 week ago", nextLesson: "3-1"}, // clamped
		{idx: 3, progress: 30, lastWatched: "1 week ago"},                    // no topics
	}
	for _, tt := range tests {
		ec := d.Enrolled[tt.idx]
		assert.Equal(t, tt.progress, ec.Progress, ec.Course.ID)
		assert.Equal(t, tt.lastWatched, ec.LastWatched, ec.Course.ID)
		if tt.nextLesson == "" {
			assert.Nil(t, ec.NextLesson, ec.Course.ID)
			continue
		}
		require.NotNil(t, ec.NextLesson, ec.Course.ID)
		assert.Equal(t, tt.nextLesson, ec.NextLesson.ID)
	}
	assert.Len(t, d.RecentActivity, 3)
}

func TestResolve_adminDashboard(t *testing.T) {
	v := Resolve(State{Page: PageAdminDashboard, User: &admin}, courses)
	require.NotNil(t, v.Admin)
	d := v.Admin

	assert.Equal(t, AdminStats{TotalStudents: 2105, ActiveCourses: 4, CourseCompletion: "87%"}, d.Stats)
	assert.Equal(t, []catalog.Course{webDev, go101, dsa}, d.PopularCourses)
	assert.Equal(t, courses, d.Courses)
	require.Len(t, d.RecentStudents, 4)
	assert.Equal(t, Student{ID: "3", Name: "Carol Davis", Email: "carol@example.com", JoinDate: "2024-01-08", Courses: 3, Status: "inactive"}, d.RecentStudents[2])

	// the dashboard only reads the catalog: any logged in user sees it
	v = Resolve(NewState().Login(student).Navigate(PageAdminDashboard), nil)
	require.Equal(t, KindAdminDashboard, v.Kind)
	assert.Equal(t, 0, v.Admin.Stats.ActiveCourses)
	assert.Empty(t, v.Admin.PopularCourses)
}
