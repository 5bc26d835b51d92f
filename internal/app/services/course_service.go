package services

import (
	"context"

	"github.com/rs/zerolog"
	"github.com/yigit/unicrud/internal/app/models"
	"github.com/yigit/unicrud/internal/app/repositories"
	"github.com/yigit/unicrud/internal/pkg/apperrors"
)

// CourseService defines the interface for course-related operations
type CourseService interface {
	GetAllCourses(ctx context.Context) []models.Course
	GetCourseByCode(ctx context.Context, code string) (*models.Course, error)
	CreateCourse(ctx context.Context, course models.Course) *models.Course
	UpdateCourse(ctx context.Context, code string, patch models.CoursePatch) (*models.Course, error)
	DeleteCourse(ctx context.Context, code string) error
	CountCourses(ctx context.Context) int
}

// courseServiceImpl implements the CourseService interface
type courseServiceImpl struct {
	courseRepo *repositories.CourseRepository
}

// NewCourseService creates a new course service instance
func NewCourseService(courseRepo *repositories.CourseRepository) CourseService {
	return &courseServiceImpl{
		courseRepo: courseRepo,
	}
}

// GetAllCourses retrieves all courses in insertion order
func (s *courseServiceImpl) GetAllCourses(ctx context.Context) []models.Course {
	return s.courseRepo.ListAll()
}

// GetCourseByCode retrieves the first course with the given code
func (s *courseServiceImpl) GetCourseByCode(ctx context.Context, code string) (*models.Course, error) {
	course, ok := s.courseRepo.GetByCode(code)
	if !ok {
		zerolog.Ctx(ctx).Debug().Str("code", code).Msg("Course not found")
		return nil, apperrors.ErrCourseNotFound
	}
	return &course, nil
}

// CreateCourse stores a new course. Codes are not checked for uniqueness.
func (s *courseServiceImpl) CreateCourse(ctx context.Context, course models.Course) *models.Course {
	stored := s.courseRepo.Add(course)
	zerolog.Ctx(ctx).Info().Str("code", stored.Code).Msg("Course created")
	return &stored
}

// UpdateCourse overwrites the non-key fields of an existing course
func (s *courseServiceImpl) UpdateCourse(ctx context.Context, code string, patch models.CoursePatch) (*models.Course, error) {
	course, ok := s.courseRepo.Update(code, patch)
	if !ok {
		zerolog.Ctx(ctx).Debug().Str("code", code).Msg("Course to update not found")
		return nil, apperrors.ErrCourseNotFound
	}
	zerolog.Ctx(ctx).Info().Str("code", code).Msg("Course updated")
	return &course, nil
}

// DeleteCourse removes every course with the given code
func (s *courseServiceImpl) DeleteCourse(ctx context.Context, code string) error {
	if !s.courseRepo.Remove(code) {
		zerolog.Ctx(ctx).Debug().Str("code", code).Msg("Course to delete not found")
		return apperrors.ErrCourseNotFound
	}
	zerolog.Ctx(ctx).Info().Str("code", code).Msg("Course deleted")
	return nil
}

// CountCourses returns the number of stored courses
func (s *courseServiceImpl) CountCourses(ctx context.Context) int {
	return s.courseRepo.Count()
}
