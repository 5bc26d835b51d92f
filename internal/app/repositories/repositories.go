package repositories

import (
	"github.com/yigit/unicrud/internal/app/models"
)

// Repositories holds all the repository instances
type Repositories struct {
	CourseRepository  *CourseRepository
	StudentRepository *StudentRepository
}

// NewRepositories initializes all repositories with their initial records
func NewRepositories(courses []models.Course, students []models.Student) *Repositories {
	return &Repositories{
		CourseRepository:  NewCourseRepository(courses...),
		StudentRepository: NewStudentRepository(students...),
	}
}
