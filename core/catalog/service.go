package catalog

import (
	"net/mail"
	"strconv"
	"time"

	"github.com/pkg/errors"

	"github.com/trezcool/edulearn/core"
)

const announcementTemplate = "course_announcement"

var (
	// errors
	ErrNotFound      = errors.New("course not found")
	ErrTopicNotFound = errors.New("topic not found")

	NowFunc = time.Now // mockable
)

type (
	// Repository is the catalog store. Mutations never fail and never validate:
	// AddCourse appends, UpdateCourse replaces every course with the same id and
	// DeleteCourse removes every course with the id. Unknown ids leave the store unchanged.
	Repository interface {
		AddCourse(course Course)
		UpdateCourse(course Course)
		DeleteCourse(id string)
		// GetCourse returns a copy sharing no memory with the store.
		GetCourse(id string) (Course, error)
		// QueryCourses returns copies of all courses in insertion order.
		QueryCourses() []Course
	}

	// Audience lists who gets told about new courses.
	Audience interface {
		StudentAddresses() ([]mail.Address, error)
	}

	Service struct {
		repo     Repository
		audience Audience
		mailSvc  core.EmailService
		logger   core.Logger
	}

	// Announcement is the data of the course announcement e-mail.
	Announcement struct {
		Name   string
		Course Course
	}
)

// NewService returns a catalog Service. audience & mailSvc are optional: no announcement is sent without them.
func NewService(repo Repository, audience Audience, mailSvc core.EmailService, logger core.Logger) *Service {
	return &Service{
		repo:     repo,
		audience: audience,
		mailSvc:  mailSvc,
		logger:   logger,
	}
}

func newID(now time.Time) string {
	return strconv.FormatInt(now.UnixMilli(), 10)
}

// newTopics converts form rows to topics with "<millis>-<position>" ids.
// A row keeps its id, and the completed flag, only when it names a topic of existing not claimed by an earlier row.
func newTopics(rows []NewTopic, now time.Time, existing []Topic) []Topic {
	stamp := newID(now)
	claimed := make(map[string]bool, len(rows))
	topics := make([]Topic, 0, len(rows))
	for i, row := range rows {
		topic := Topic{
			ID:          stamp + "-" + strconv.Itoa(i+1),
			Title:       row.Title,
			Description: row.Description,
			VideoURL:    row.VideoURL,
			Duration:    row.Duration,
		}
		if row.ID != "" && !claimed[row.ID] {
			for _, t := range existing {
				if t.ID == row.ID {
					topic.ID = t.ID
					topic.Completed = t.Completed
					claimed[t.ID] = true
					break
				}
			}
		}
		topics = append(topics, topic)
	}
	return topics
}

func (svc *Service) Create(nc NewCourse) (Course, error) {
	now := NowFunc()
	course := Course{
		ID:          newID(now),
		Title:       nc.Title,
		Description: nc.Description,
		Instructor:  nc.Instructor,
		Duration:    nc.Duration,
		Level:       nc.Level,
		Enrolled:    0,
		Rating:      0,
		Image:       nc.Image,
		Topics:      newTopics(nc.Topics, now, nil),
	}
	if course.Image == "" {
		course.Image = DefaultImage
	}

	svc.repo.AddCourse(course)
	svc.announce(course)
	return course.Copy(), nil
}

func (svc *Service) announce(course Course) {
	if svc.audience == nil || svc.mailSvc == nil {
		return
	}
	addrs, err := svc.audience.StudentAddresses()
	if err != nil {
		if svc.logger != nil {
			svc.logger.Error("catalog.announce: listing students", errors.Wrap(err, "listing students"))
		}
		return
	}

	messages := make([]*core.EmailMessage, 0, len(addrs))
	for _, addr := range addrs {
		messages = append(messages, &core.EmailMessage{
			To:           []mail.Address{addr},
			Subject:      "New course: " + course.Title,
			TemplateName: announcementTemplate,
			TemplateData: Announcement{Name: addr.Name, Course: course.Copy()},
		})
	}
	if len(messages) > 0 {
		svc.mailSvc.SendMessages(messages...)
	}
}

func (svc *Service) Update(id string, uc UpdateCourse) (Course, error) {
	orig, err := svc.repo.GetCourse(id)
	if err != nil {
		return Course{}, err
	}

	course := Course{
		ID:          orig.ID,
		Title:       uc.Title,
		Description: uc.Description,
		Instructor:  uc.Instructor,
		Duration:    uc.Duration,
		Level:       uc.Level,
		Enrolled:    orig.Enrolled,
		Rating:      orig.Rating,
		Image:       uc.Image,
		Topics:      newTopics(uc.Topics, NowFunc(), orig.Topics),
	}
	if uc.Enrolled != nil {
		course.Enrolled = *uc.Enrolled
	}
	if uc.Rating != nil {
		course.Rating = *uc.Rating
	}
	if course.Image == "" {
		course.Image = orig.Image
	}
	if course.Image == "" {
		course.Image = DefaultImage
	}

	svc.repo.UpdateCourse(course)
	return course.Copy(), nil
}

func (svc *Service) Delete(id string) error {
	if _, err := svc.repo.GetCourse(id); err != nil {
		return err
	}
	svc.repo.DeleteCourse(id)
	return nil
}

// Select returns the course by value: later catalog changes do not reach it.
func (svc *Service) Select(id string) (Course, error) {
	return svc.repo.GetCourse(id)
}

func (svc *Service) SelectTopic(course Course, topicID string) (Topic, error) {
	if topic, ok := course.Topic(topicID); ok {
		return topic, nil
	}
	return Topic{}, ErrTopicNotFound
}

func (svc *Service) QueryAll() []Course {
	return svc.repo.QueryCourses()
}

func (svc *Service) Query(filter QueryFilter, orderings []core.Ordering) ([]Course, error) {
	courses := Filter(svc.repo.QueryCourses(), filter)
	if err := Sort(courses, orderings); err != nil {
		return nil, err
	}
	return courses, nil
}

func (svc *Service) Stats() Stats {
	return ComputeStats(svc.repo.QueryCourses())
}
