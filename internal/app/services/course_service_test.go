package services

import (
	"bytes"
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yigit/unicrud/internal/app/models"
	"github.com/yigit/unicrud/internal/app/repositories"
	"github.com/yigit/unicrud/internal/pkg/apperrors"
	"github.com/yigit/unicrud/internal/seed"
)

func newCourseService() CourseService {
	return NewCourseService(repositories.NewCourseRepository(seed.DefaultCourses()...))
}

func TestCourseService_GetAllCourses(t *testing.T) {
	svc := newCourseService()

	assert.Equal(t, seed.DefaultCourses(), svc.GetAllCourses(context.Background()))
	assert.Equal(t, 4, svc.CountCourses(context.Background()))
}

func TestCourseService_GetCourseByCode(t *testing.T) {
	svc := newCourseService()

	course, err := svc.GetCourseByCode(context.Background(), "CSE2111")
	require.NoError(t, err)
	assert.Equal(t, "Data Structures", course.Name)

	course, err = svc.GetCourseByCode(context.Background(), "CSE0000")
	assert.Nil(t, course)
	assert.ErrorIs(t, err, apperrors.ErrCourseNotFound)
	assert.ErrorIs(t, err, apperrors.ErrResourceNotFound)
}

func TestCourseService_CreateCourse(t *testing.T) {
	svc := newCourseService()
	in := models.Course{Code: "CSE9999", Name: "Test", Credits: 1, Instructor: "X"}

	out := svc.CreateCourse(context.Background(), in)

	assert.Equal(t, in, *out)
	assert.Equal(t, 5, svc.CountCourses(context.Background()))
}

func TestCourseService_UpdateCourse(t *testing.T) {
	svc := newCourseService()

	out, err := svc.UpdateCourse(context.Background(), "CSE2113", models.CoursePatch{Name: "DBMS", Credits: 3, Instructor: "Dr. Ali"})
	require.NoError(t, err)
	assert.Equal(t, models.Course{Code: "CSE2113", Name: "DBMS", Credits: 3, Instructor: "Dr. Ali"}, *out)

	_, err = svc.UpdateCourse(context.Background(), "CSE0000", models.CoursePatch{})
	assert.ErrorIs(t, err, apperrors.ErrCourseNotFound)
}

func TestCourseService_DeleteCourse(t *testing.T) {
	svc := newCourseService()

	require.NoError(t, svc.DeleteCourse(context.Background(), "CSE2118"))
	assert.ErrorIs(t, svc.DeleteCourse(context.Background(), "CSE2118"), apperrors.ErrCourseNotFound)
	assert.Equal(t, 3, svc.CountCourses(context.Background()))
}

func TestCourseService_LogsThroughContextLogger(t *testing.T) {
	var buf bytes.Buffer
	lgr := zerolog.New(&buf).With().Str("request_id", "req-1").Logger()
	ctx := lgr.WithContext(context.Background())
	svc := newCourseService()

	svc.CreateCourse(ctx, models.Course{Code: "CSE9999"})

	assert.Contains(t, buf.String(), `"request_id":"req-1"`)
	assert.Contains(t, buf.String(), `"code":"CSE9999"`)
	assert.Contains(t, buf.String(), "Course created")
}
