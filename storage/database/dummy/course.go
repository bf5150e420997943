package dummydb

import (
	"github.com/trezcool/edulearn/core/catalog"
)

type courseRepository struct {
	db *courseTable
}

var _ catalog.Repository = (*courseRepository)(nil) // interface compliance check

func NewCourseRepository(db *DB) catalog.Repository {
	return &courseRepository{db: db.course}
}

func (repo *courseRepository) AddCourse(course catalog.Course) {
	repo.db.Lock()
	defer repo.db.Unlock()

	rows := make([]catalog.Course, 0, len(repo.db.rows)+1)
	rows = append(rows, repo.db.rows...)
	rows = append(rows, course.Copy())
	repo.db.rows = rows
}

func (repo *courseRepository) UpdateCourse(course catalog.Course) {
	repo.db.Lock()
	defer repo.db.Unlock()

	rows := make([]catalog.Course, len(repo.db.rows))
	for i, c := range repo.db.rows {
		if c.ID == course.ID {
			rows[i] = course.Copy()
		} else {
			rows[i] = c
		}
	}
	repo.db.rows = rows
}

func (repo *courseRepository) DeleteCourse(id string) {
	repo.db.Lock()
	defer repo.db.Unlock()

	rows := make([]catalog.Course, 0, len(repo.db.rows))
	for _, c := range repo.db.rows {
		if c.ID != id {
			rows = append(rows, c)
		}
	}
	repo.db.rows = rows
}

func (repo *courseRepository) GetCourse(id string) (catalog.Course, error) {
	repo.db.RLock()
	defer repo.db.RUnlock()

	for _, c := range repo.db.rows {
		if c.ID == id {
			return c.Copy(), nil
		}
	}
	return catalog.Course{}, catalog.ErrNotFound
}

func (repo *courseRepository) QueryCourses() []catalog.Course {
	repo.db.RLock()
	defer repo.db.RUnlock()

	courses := make([]catalog.Course, 0, len(repo.db.rows))
	for _, c := range repo.db.rows {
		courses = append(courses, c.Copy())
	}
	return courses
}
