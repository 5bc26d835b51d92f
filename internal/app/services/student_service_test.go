package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yigit/unicrud/internal/app/models"
	"github.com/yigit/unicrud/internal/app/repositories"
	"github.com/yigit/unicrud/internal/pkg/apperrors"
	"github.com/yigit/unicrud/internal/seed"
)

func newStudentService() StudentService {
	return NewStudentService(repositories.NewStudentRepository(seed.DefaultStudents()...))
}

func TestStudentService_CRUD(t *testing.T) {
	ctx := context.Background()
	svc := newStudentService()

	created := svc.CreateStudent(ctx, models.Student{ID: "S005", Name: "Eve Adams", Email: "eve@uiu.edu.bd", CGPA: 3.5})
	assert.Equal(t, "S005", created.ID)
	assert.Len(t, svc.GetAllStudents(ctx), 5)

	got, err := svc.GetStudentByID(ctx, "S005")
	require.NoError(t, err)
	assert.Equal(t, *created, *got)

	updated, err := svc.UpdateStudent(ctx, "S005", models.StudentPatch{Name: "Eve A.", Email: "eve.a@uiu.edu.bd", CGPA: 3.6})
	require.NoError(t, err)
	assert.Equal(t, models.Student{ID: "S005", Name: "Eve A.", Email: "eve.a@uiu.edu.bd", CGPA: 3.6}, *updated)

	require.NoError(t, svc.DeleteStudent(ctx, "S005"))
	assert.Equal(t, seed.DefaultStudents(), svc.GetAllStudents(ctx))
}

func TestStudentService_NotFound(t *testing.T) {
	ctx := context.Background()
	svc := newStudentService()

	_, err := svc.GetStudentByID(ctx, "S999")
	assert.ErrorIs(t, err, apperrors.ErrStudentNotFound)

	_, err = svc.UpdateStudent(ctx, "S999", models.StudentPatch{Name: "Ghost"})
	assert.ErrorIs(t, err, apperrors.ErrStudentNotFound)

	assert.ErrorIs(t, svc.DeleteStudent(ctx, "S999"), apperrors.ErrStudentNotFound)
	assert.Equal(t, 4, svc.CountStudents(ctx))
}
