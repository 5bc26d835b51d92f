package repositories

import (
	"github.com/yigit/unicrud/internal/app/models"
)

// CourseRepository owns the in-memory course collection
type CourseRepository struct {
	courses *collection[models.Course]
}

// NewCourseRepository creates a CourseRepository holding the given courses in order
func NewCourseRepository(seed ...models.Course) *CourseRepository {
	return &CourseRepository{
		courses: newCollection("course_repository", seed),
	}
}

// ListAll returns every course in insertion order
func (r *CourseRepository) ListAll() []models.Course {
	return r.courses.list()
}

// GetByCode returns the first course with the given code. ok is false when none matches.
func (r *CourseRepository) GetByCode(code string) (course models.Course, ok bool) {
	return r.courses.get(code)
}

// Add appends the course unconditionally and returns it. Duplicate codes are accepted.
func (r *CourseRepository) Add(course models.Course) models.Course {
	return r.courses.add(course)
}

// Update overwrites name, credits and instructor of the first course with the given code.
// ok is false when no course matches.
func (r *CourseRepository) Update(code string, patch models.CoursePatch) (course models.Course, ok bool) {
	return r.courses.update(code, patch.Apply)
}

// Remove deletes every course with the given code and reports whether any was deleted
func (r *CourseRepository) Remove(code string) bool {
	return r.courses.remove(code)
}

// Count returns the number of stored courses
func (r *CourseRepository) Count() int {
	return r.courses.count()
}
