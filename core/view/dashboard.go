package view

import (
	"sort"

	"github.com/trezcool/edulearn/core/catalog"
)

const popularCoursesCount = 3

type (
	StudentDashboard struct {
		Enrolled       []EnrolledCourse `json:"enrolled"`
		Stats          StudentStats     `json:"stats"`
		RecentActivity []Activity       `json:"recent_activity"`
	}

	EnrolledCourse struct {
		Course      catalog.Course `json:"course"`
		Progress    int            `json:"progress"`
		LastWatched string         `json:"last_watched"`
		NextLesson  *catalog.Topic `json:"next_lesson,omitempty"`
	}

	StudentStats struct {
		CoursesEnrolled int `json:"courses_enrolled"`
		HoursLearned    int `json:"hours_learned"`
		Certificates    int `json:"certificates"`
		StreakDays      int `json:"streak_days"`
	}

	Activity struct {
		Action string `json:"action"`
		Course string `json:"course,omitempty"`
		Lesson string `json:"lesson,omitempty"`
		Detail string `json:"detail,omitempty"`
		Time   string `json:"time"`
	}

	AdminDashboard struct {
		Stats          AdminStats       `json:"stats"`
		PopularCourses []catalog.Course `json:"popular_courses"`
		Courses        []catalog.Course `json:"courses"`
		RecentStudents []Student        `json:"recent_students"`
		RecentActivity []Activity       `json:"recent_activity"`
	}

	AdminStats struct {
		TotalStudents    int    `json:"total_students"`
		ActiveCourses    int    `json:"active_courses"`
		CourseCompletion string `json:"course_completion"`
	}

	Student struct {
		ID       string `json:"id"`
		Name     string `json:"name"`
		Email    string `json:"email"`
		JoinDate string `json:"join_date"`
		Courses  int    `json:"courses"`
		Status   string `json:"status"`
	}
)

// demo figures until enrollments are tracked
var (
	studentRecentActivity = []Activity{
		{Action: "Completed lesson", Course: "Web Development", Lesson: "CSS Styling", Time: "2 hours ago"},
		{Action: "Started watching", Course: "Web Development", Lesson: "JavaScript Basics", Time: "2 days ago"},
		{Action: "Enrolled in", Course: "Data Structure & Algorithm", Time: "1 week ago"},
	}

	adminRecentActivity = []Activity{
		{Action: "New student enrolled", Detail: "Alice Johnson joined Web Development", Time: "2 hours ago"},
		{Action: "Course completed", Detail: "Bob Smith finished HTML Fundamentals", Time: "4 hours ago"},
		{Action: "New course created", Detail: "React Advanced was published", Time: "1 day ago"},
		{Action: "Student feedback", Detail: "5-star rating for Data Structures", Time: "2 days ago"},
	}

	recentStudents = []Student{
		{ID: "1", Name: "Alice Johnson", Email: "alice@example.com", JoinDate: "2024-01-15", Courses: 2, Status: "active"},
		{ID: "2", Name: "Bob Smith", Email: "bob@example.com", JoinDate: "2024-01-10", Courses: 1, Status: "active"},
		{ID: "3", Name: "Carol Davis", Email: "carol@example.com", JoinDate: "2024-01-08", Courses: 3, Status: "inactive"},
		{ID: "4", Name: "David Wilson", Email: "david@example.com", JoinDate: "2024-01-05", Courses: 1, Status: "active"},
	}
)

const (
	totalStudents    = 2105
	courseCompletion = "87%"
	hoursLearned     = 28
	streakDays       = 7
)

func newStudentDashboard(courses []catalog.Course) *StudentDashboard {
	enrolled := make([]EnrolledCourse, 0, len(courses))
	for _, c := range courses {
		ec := EnrolledCourse{Course: c.Copy(), Progress: 30, LastWatched: "1 week ago"}
		next := 1
		if c.ID == "1" {
			ec.Progress = 65
			ec.LastWatched = "2 days ago"
			next = 2
		}
		if next >= len(c.Topics) {
			next = len(c.Topics) - 1
		}
		if next >= 0 {
			t := c.Topics[next]
			ec.NextLesson = &t
		}
		enrolled = append(enrolled, ec)
	}

	return &StudentDashboard{
		Enrolled: enrolled,
		Stats: StudentStats{
			CoursesEnrolled: len(enrolled),
			HoursLearned:    hoursLearned,
			Certificates:    0,
			StreakDays:      streakDays,
		},
		RecentActivity: append([]Activity(nil), studentRecentActivity...),
	}
}

func newAdminDashboard(courses []catalog.Course) *AdminDashboard {
	popular := make([]catalog.Course, len(courses))
	copy(popular, courses)
	sort.SliceStable(popular, func(i, j int) bool { return popular[i].Enrolled > popular[j].Enrolled })
	if len(popular) > popularCoursesCount {
		popular = popular[:popularCoursesCount]
	}

	all := courses
	if all == nil {
		all = []catalog.Course{}
	}
	return &AdminDashboard{
		Stats: AdminStats{
			TotalStudents:    totalStudents,
			ActiveCourses:    len(courses),
			CourseCompletion: courseCompletion,
		},
		PopularCourses: popular,
		Courses:        all,
		RecentStudents: append([]Student(nil), recentStudents...),
		RecentActivity: append([]Activity(nil), adminRecentActivity...),
	}
}
