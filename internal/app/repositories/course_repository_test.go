package repositories

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yigit/unicrud/internal/app/models"
)

func seedCourses() []models.Course {
	return []models.Course{
		{Code: "CSE2118", Name: "Advanced Object-Oriented Programming", Credits: 3, Instructor: "Sayef Reyadh"},
		{Code: "CSE2111", Name: "Data Structures", Credits: 3, Instructor: "Dr. Ahmed Hassan"},
		{Code: "CSE2112", Name: "Algorithms", Credits: 3, Instructor: "Dr. Fatima Khan"},
		{Code: "CSE2113", Name: "Database Management Systems", Credits: 4, Instructor: "Dr. Mohammad Ali"},
	}
}

func TestNewCourseRepository_CopiesSeed(t *testing.T) {
	seed := seedCourses()
	repo := NewCourseRepository(seed...)

	seed[0].Name = "changed"

	got, ok := repo.GetByCode("CSE2118")
	require.True(t, ok)
	assert.Equal(t, "Advanced Object-Oriented Programming", got.Name)
	assert.Equal(t, 4, repo.Count())
}

func TestCourseRepository_ListAll_PreservesOrder(t *testing.T) {
	repo := NewCourseRepository(seedCourses()...)

	assert.Equal(t, seedCourses(), repo.ListAll())
}

func TestCourseRepository_ListAll_ReturnsSnapshot(t *testing.T) {
	repo := NewCourseRepository(seedCourses()...)

	list := repo.ListAll()
	list[0].Name = "mutated by caller"

	got, _ := repo.GetByCode("CSE2118")
	assert.Equal(t, "Advanced Object-Oriented Programming", got.Name)
}

func TestCourseRepository_ListAll_Empty(t *testing.T) {
	repo := NewCourseRepository()

	list := repo.ListAll()
	assert.NotNil(t, list)
	assert.Empty(t, list)
}

func TestCourseRepository_GetByCode(t *testing.T) {
	repo := NewCourseRepository(seedCourses()...)

	for _, want := range seedCourses() {
		got, ok := repo.GetByCode(want.Code)
		require.True(t, ok, want.Code)
		assert.Equal(t, want, got)
	}
}

func TestCourseRepository_GetByCode_Absent(t *testing.T) {
	repo := NewCourseRepository(seedCourses()...)

	got, ok := repo.GetByCode("CSE0000")
	assert.False(t, ok)
	assert.Equal(t, models.Course{}, got)

	_, ok = repo.GetByCode("cse2118")
	assert.False(t, ok, "codes are compared exactly")
}

func TestCourseRepository_Add(t *testing.T) {
	repo := NewCourseRepository(seedCourses()...)
	course := models.Course{Code: "CSE9999", Name: "Test", Credits: 1, Instructor: "X"}

	stored := repo.Add(course)

	assert.Equal(t, course, stored)
	list := repo.ListAll()
	require.Len(t, list, 5)
	assert.Equal(t, course, list[4])
	got, ok := repo.GetByCode("CSE9999")
	require.True(t, ok)
	assert.Equal(t, course, got)
}

func TestCourseRepository_Add_DuplicateCodeKeepsFirstMatch(t *testing.T) {
	repo := NewCourseRepository(seedCourses()...)

	repo.Add(models.Course{Code: "CSE2111", Name: "Shadow", Credits: 1, Instructor: "Y"})

	assert.Equal(t, 5, repo.Count())
	got, ok := repo.GetByCode("CSE2111")
	require.True(t, ok)
	assert.Equal(t, "Data Structures", got.Name)
}

func TestCourseRepository_Update(t *testing.T) {
	repo := NewCourseRepository(seedCourses()...)

	updated, ok := repo.Update("CSE2112", models.CoursePatch{Name: "Advanced Algorithms", Credits: 4, Instructor: "Dr. New"})

	require.True(t, ok)
	want := models.Course{Code: "CSE2112", Name: "Advanced Algorithms", Credits: 4, Instructor: "Dr. New"}
	assert.Equal(t, want, updated)
	got, _ := repo.GetByCode("CSE2112")
	assert.Equal(t, want, got)
	assert.Equal(t, want, repo.ListAll()[2], "position is preserved")
}

func TestCourseRepository_Update_OverwritesWithZeroValues(t *testing.T) {
	repo := NewCourseRepository(seedCourses()...)

	updated, ok := repo.Update("CSE2113", models.CoursePatch{})

	require.True(t, ok)
	assert.Equal(t, models.Course{Code: "CSE2113"}, updated)
}

func TestCourseRepository_Update_Absent(t *testing.T) {
	repo := NewCourseRepository(seedCourses()...)

	_, ok := repo.Update("CSE0000", models.CoursePatch{Name: "Nope"})

	assert.False(t, ok)
	assert.Equal(t, seedCourses(), repo.ListAll())
}

func TestCourseRepository_Update_OnlyFirstDuplicate(t *testing.T) {
	repo := NewCourseRepository(seedCourses()...)
	repo.Add(models.Course{Code: "CSE2118", Name: "Second", Credits: 1, Instructor: "Y"})

	_, ok := repo.Update("CSE2118", models.CoursePatch{Name: "First updated", Credits: 2, Instructor: "Z"})

	require.True(t, ok)
	list := repo.ListAll()
	assert.Equal(t, "First updated", list[0].Name)
	assert.Equal(t, "Second", list[4].Name)
}

func TestCourseRepository_Remove(t *testing.T) {
	repo := NewCourseRepository(seedCourses()...)

	assert.True(t, repo.Remove("CSE2111"))

	_, ok := repo.GetByCode("CSE2111")
	assert.False(t, ok)
	seed := seedCourses()
	assert.Equal(t, []models.Course{seed[0], seed[2], seed[3]}, repo.ListAll())
}

func TestCourseRepository_Remove_Absent(t *testing.T) {
	repo := NewCourseRepository(seedCourses()...)

	assert.False(t, repo.Remove("CSE0000"))
	assert.Equal(t, seedCourses(), repo.ListAll())
}

// Remove drops every duplicate while GetByCode and Update only see the first one.
func TestCourseRepository_Remove_AllDuplicates(t *testing.T) {
	repo := NewCourseRepository(seedCourses()...)
	repo.Add(models.Course{Code: "CSE2112", Name: "Dup 1"})
	repo.Add(models.Course{Code: "CSE2112", Name: "Dup 2"})
	require.Equal(t, 6, repo.Count())

	assert.True(t, repo.Remove("CSE2112"))

	assert.Equal(t, 3, repo.Count())
	for _, c := range repo.ListAll() {
		assert.NotEqual(t, "CSE2112", c.Code)
	}
	assert.False(t, repo.Remove("CSE2112"))
}

func TestCourseRepository_Scenario(t *testing.T) {
	repo := NewCourseRepository(seedCourses()...)

	repo.Add(models.Course{Code: "CSE9999", Name: "Test", Credits: 1, Instructor: "X"})
	require.Len(t, repo.ListAll(), 5)

	_, ok := repo.Update("CSE9999", models.CoursePatch{Name: "Test2", Credits: 2, Instructor: "Y"})
	require.True(t, ok)

	got, ok := repo.GetByCode("CSE9999")
	require.True(t, ok)
	assert.Equal(t, models.Course{Code: "CSE9999", Name: "Test2", Credits: 2, Instructor: "Y"}, got)

	assert.True(t, repo.Remove("CSE9999"))
	assert.Equal(t, seedCourses(), repo.ListAll())
}
