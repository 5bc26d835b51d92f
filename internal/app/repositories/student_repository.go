package repositories

import (
	"github.com/yigit/unicrud/internal/app/models"
)

// StudentRepository owns the in-memory student collection
type StudentRepository struct {
	students *collection[models.Student]
}

// NewStudentRepository creates a StudentRepository holding the given students in order
func NewStudentRepository(seed ...models.Student) *StudentRepository {
	return &StudentRepository{
		students: newCollection("student_repository", seed),
	}
}

// ListAll returns every student in insertion order
func (r *StudentRepository) ListAll() []models.Student {
	return r.students.list()
}

// GetByID returns the first student with the given ID. ok is false when none matches.
func (r *StudentRepository) GetByID(id string) (student models.Student, ok bool) {
	return r.students.get(id)
}

// Add appends the student unconditionally and returns it
func (r *StudentRepository) Add(student models.Student) models.Student {
	return r.students.add(student)
}

// Update overwrites name, email and cgpa of the first student with the given ID
func (r *StudentRepository) Update(id string, patch models.StudentPatch) (student models.Student, ok bool) {
	return r.students.update(id, patch.Apply)
}

// Remove deletes every student with the given ID and reports whether any was deleted
func (r *StudentRepository) Remove(id string) bool {
	return r.students.remove(id)
}

// Count returns the number of stored students
func (r *StudentRepository) Count() int {
	return r.students.count()
}
