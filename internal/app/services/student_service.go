package services

import (
	"context"

	"github.com/rs/zerolog"
	"github.com/yigit/unicrud/internal/app/models"
	"github.com/yigit/unicrud/internal/app/repositories"
	"github.com/yigit/unicrud/internal/pkg/apperrors"
)

// StudentService defines the interface for student-related operations
type StudentService interface {
	GetAllStudents(ctx context.Context) []models.Student
	GetStudentByID(ctx context.Context, id string) (*models.Student, error)
	CreateStudent(ctx context.Context, student models.Student) *models.Student
	UpdateStudent(ctx context.Context, id string, patch models.StudentPatch) (*models.Student, error)
	DeleteStudent(ctx context.Context, id string) error
	CountStudents(ctx context.Context) int
}

type studentServiceImpl struct {
	studentRepo *repositories.StudentRepository
}

// NewStudentService creates a new student service instance
func NewStudentService(studentRepo *repositories.StudentRepository) StudentService {
	return &studentServiceImpl{
		studentRepo: studentRepo,
	}
}

func (s *studentServiceImpl) GetAllStudents(ctx context.Context) []models.Student {
	return s.studentRepo.ListAll()
}

func (s *studentServiceImpl) GetStudentByID(ctx context.Context, id string) (*models.Student, error) {
	student, ok := s.studentRepo.GetByID(id)
	if !ok {
		zerolog.Ctx(ctx).Debug().Str("studentID", id).Msg("Student not found")
		return nil, apperrors.ErrStudentNotFound
	}
	return &student, nil
}

func (s *studentServiceImpl) CreateStudent(ctx context.Context, student models.Student) *models.Student {
	stored := s.studentRepo.Add(student)
	zerolog.Ctx(ctx).Info().Str("studentID", stored.ID).Msg("Student created")
	return &stored
}

func (s *studentServiceImpl) UpdateStudent(ctx context.Context, id string, patch models.StudentPatch) (*models.Student, error) {
	student, ok := s.studentRepo.Update(id, patch)
	if !ok {
		zerolog.Ctx(ctx).Debug().Str("studentID", id).Msg("Student to update not found")
		return nil, apperrors.ErrStudentNotFound
	}
	zerolog.Ctx(ctx).Info().Str("studentID", id).Msg("Student updated")
	return &student, nil
}

// DeleteStudent removes every student with the given ID
func (s *studentServiceImpl) DeleteStudent(ctx context.Context, id string) error {
	if !s.studentRepo.Remove(id) {
		zerolog.Ctx(ctx).Debug().Str("studentID", id).Msg("Student to delete not found")
		return apperrors.ErrStudentNotFound
	}
	zerolog.Ctx(ctx).Info().Str("studentID", id).Msg("Student deleted")
	return nil
}

func (s *studentServiceImpl) CountStudents(ctx context.Context) int {
	return s.studentRepo.Count()
}
