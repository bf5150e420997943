package catalog

import (
	"github.com/go-playground/validator/v10"

	"github.com/trezcool/edulearn/core"
)

// Levels
const (
	LevelBeginner     = "Beginner"
	LevelIntermediate = "Intermediate"
	LevelAdvanced     = "Advanced"
)

// DefaultImage is used for courses created without an image.
const DefaultImage = "https://images.unsplash.com/photo-1516321318423-f06f85e504b3?w=400"

var Levels = []string{LevelBeginner, LevelIntermediate, LevelAdvanced}

type Topic struct {
	ID          string `json:"id" yaml:"id"`
	Title       string `json:"title" yaml:"title"`
	Description string `json:"description" yaml:"description"`
	VideoURL    string `json:"video_url" yaml:"video_url"`
	Duration    string `json:"duration" yaml:"duration"`
	Completed   bool   `json:"completed,omitempty" yaml:"completed,omitempty"`
}

type Course struct {
	ID          string  `json:"id" yaml:"id"`
	Title       string  `json:"title" yaml:"title"`
	Description string  `json:"description" yaml:"description"`
	Instructor  string  `json:"instructor" yaml:"instructor"`
	Duration    string  `json:"duration" yaml:"duration"`
	Level       string  `json:"level" yaml:"level"`
	Enrolled    int     `json:"enrolled" yaml:"enrolled"`
	Rating      float64 `json:"rating" yaml:"rating"`
	Image       string  `json:"image" yaml:"image"`
	Topics      []Topic `json:"topics" yaml:"topics"`
}

// Copy returns a deep copy of the course: its topics are not shared with c.
func (c Course) Copy() Course {
	if c.Topics != nil {
		topics := make([]Topic, len(c.Topics))
		copy(topics, c.Topics)
		c.Topics = topics
	}
	return c
}

// Topic returns the topic with the given id.
func (c Course) Topic(id string) (Topic, bool) {
	for _, t := range c.Topics {
		if t.ID == id {
			return t, true
		}
	}
	return Topic{}, false
}

// NewTopic is a topic row of the course form. ID is kept on update and ignored on create.
type NewTopic struct {
	ID          string `json:"id,omitempty"`
	Title       string `json:"title" validate:"required,notblank"`
	Description string `json:"description" validate:"required,notblank"`
	VideoURL    string `json:"video_url" validate:"required,notblank"`
	Duration    string `json:"duration" validate:"required,notblank"`
}

func (nt *NewTopic) clean() {
	nt.ID = core.CleanString(nt.ID)
	nt.Title = core.CleanString(nt.Title)
	nt.Description = core.CleanString(nt.Description)
	nt.VideoURL = core.CleanString(nt.VideoURL)
	nt.Duration = core.CleanString(nt.Duration)
}

// NewCourse contains information needed to create a new Course.
type NewCourse struct {
	Title       string     `json:"title" validate:"required,notblank"`
	Description string     `json:"description" validate:"required,notblank"`
	Instructor  string     `json:"instructor" validate:"required,notblank"`
	Duration    string     `json:"duration"`
	Level       string     `json:"level" validate:"omitempty,level"`
	Image       string     `json:"image" validate:"omitempty,url"`
	Topics      []NewTopic `json:"topics" validate:"required,min=1,dive"`
}

func (nc *NewCourse) clean() {
	nc.Title = core.CleanString(nc.Title)
	nc.Description = core.CleanString(nc.Description)
	nc.Instructor = core.CleanString(nc.Instructor)
	nc.Duration = core.CleanString(nc.Duration)
	nc.Level = core.CleanString(nc.Level)
	nc.Image = core.CleanString(nc.Image)
	for i := range nc.Topics {
		nc.Topics[i].clean()
	}
}

func (nc *NewCourse) Validate(validate *validator.Validate) error {
	nc.clean()
	return validate.Struct(nc)
}

// UpdateCourse replaces every field of an existing Course.
// Enrolled and Rating are kept when not provided.
type UpdateCourse struct {
	Title       string     `json:"title" validate:"required,notblank"`
	Description string     `json:"description" validate:"required,notblank"`
	Instructor  string     `json:"instructor" validate:"required,notblank"`
	Duration    string     `json:"duration"`
	Level       string     `json:"level" validate:"omitempty,level"`
	Image       string     `json:"image" validate:"omitempty,url"`
	Topics      []NewTopic `json:"topics" validate:"required,min=1,dive"`
	Enrolled    *int       `json:"enrolled" validate:"omitempty,min=0"`
	Rating      *float64   `json:"rating" validate:"omitempty,min=0,max=5"`
}

func (uc *UpdateCourse) Validate(validate *validator.Validate) error {
	uc.Title = core.CleanString(uc.Title)
	uc.Description = core.CleanString(uc.Description)
	uc.Instructor = core.CleanString(uc.Instructor)
	uc.Duration = core.CleanString(uc.Duration)
	uc.Level = core.CleanString(uc.Level)
	uc.Image = core.CleanString(uc.Image)
	for i := range uc.Topics {
		uc.Topics[i].clean()
	}
	return validate.Struct(uc)
}

type QueryFilter struct {
	Search string `query:"search"`
	Level  string `query:"level"`
}

func (qf *QueryFilter) IsEmpty() bool {
	return qf.Search == "" && (qf.Level == "" || qf.Level == LevelAll)
}

func (qf *QueryFilter) Clean() {
	qf.Search = core.CleanString(qf.Search)
	qf.Level = core.CleanString(qf.Level)
}

// Stats aggregates the whole catalog.
type Stats struct {
	TotalCourses  int     `json:"total_courses"`
	TotalEnrolled int     `json:"total_enrolled"`
	AverageRating float64 `json:"average_rating"`
	TotalTopics   int     `json:"total_topics"`
}
