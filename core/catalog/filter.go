package catalog

import (
	"math"
	"sort"
	"strings"

	"github.com/trezcool/edulearn/core"
)

// LevelAll disables the level filter.
const LevelAll = "all"

var orderingFields = map[string]func(a, b Course) int{
	"id":         func(a, b Course) int { return strings.Compare(a.ID, b.ID) },
	"title":      func(a, b Course) int { return strings.Compare(strings.ToLower(a.Title), strings.ToLower(b.Title)) },
	"instructor": func(a, b Course) int { return strings.Compare(strings.ToLower(a.Instructor), strings.ToLower(b.Instructor)) },
	"level":      func(a, b Course) int { return levelRank(a.Level) - levelRank(b.Level) },
	"enrolled":   func(a, b Course) int { return a.Enrolled - b.Enrolled },
	"rating": func(a, b Course) int {
		switch {
		case a.Rating < b.Rating:
			return -1
		case a.Rating > b.Rating:
			return 1
		}
		return 0
	},
}

func levelRank(lvl string) int {
	for i, l := range Levels {
		if l == lvl {
			return i + 1
		}
	}
	return 0
}

// Filter keeps the courses matching every QueryFilter field.
// Search does a case-insensitive match on Course.Title or Course.Description.
func Filter(courses []Course, filter QueryFilter) []Course {
	if filter.IsEmpty() {
		return courses
	}
	search := strings.ToLower(filter.Search)
	level := filter.Level
	if strings.EqualFold(level, LevelAll) {
		level = ""
	}

	filtered := make([]Course, 0, len(courses))
	for _, c := range courses {
		if search != "" &&
			!strings.Contains(strings.ToLower(c.Title), search) &&
			!strings.Contains(strings.ToLower(c.Description), search) {
			continue
		}
		if level != "" && !strings.EqualFold(c.Level, level) {
			continue
		}
		filtered = append(filtered, c)
	}
	return filtered
}

// Sort orders courses in place. Courses equal on every ordering keep their catalog order.
func Sort(courses []Course, orderings []core.Ordering) error {
	if len(orderings) == 0 {
		return nil
	}
	for _, ord := range orderings {
		if _, ok := orderingFields[ord.Field]; !ok {
			return core.NewValidationError(nil, core.FieldError{Field: "ordering", Error: "unknown field: " + ord.Field})
		}
	}

	sort.SliceStable(courses, func(i, j int) bool {
		for _, ord := range orderings {
			cmp := orderingFields[ord.Field](courses[i], courses[j])
			if cmp == 0 {
				continue
			}
			if ord.Ascending {
				return cmp < 0
			}
			return cmp > 0
		}
		return false
	})
	return nil
}

func ComputeStats(courses []Course) Stats {
	stats := Stats{TotalCourses: len(courses)}
	var ratings float64
	for _, c := range courses {
		stats.TotalEnrolled += c.Enrolled
		stats.TotalTopics += len(c.Topics)
		ratings += c.Rating
	}
	if len(courses) > 0 {
		stats.AverageRating = math.Round(ratings/float64(len(courses))*10) / 10
	}
	return stats
}

// Progress returns the percentage of completed topics, 0 for a course without topics.
func Progress(course Course) float64 {
	if len(course.Topics) == 0 {
		return 0
	}
	var completed int
	for _, t := range course.Topics {
		if t.Completed {
			completed++
		}
	}
	return float64(completed) / float64(len(course.Topics)) * 100
}
