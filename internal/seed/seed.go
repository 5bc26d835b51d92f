package seed

import (
	"github.com/rs/zerolog"
	appModels "github.com/yigit/unicrud/internal/app/models"
	appRepos "github.com/yigit/unicrud/internal/app/repositories"
)

// DefaultCourses returns the sample course catalogue loaded at startup.
func DefaultCourses() []appModels.Course {
	return []appModels.Course{
		{Code: "CSE2118", Name: "Advanced Object-Oriented Programming", Credits: 3, Instructor: "Sayef Reyadh"},
		{Code: "CSE2111", Name: "Data Structures", Credits: 3, Instructor: "Dr. Ahmed Hassan"},
		{Code: "CSE2112", Name: "Algorithms", Credits: 3, Instructor: "Dr. Fatima Khan"},
		{Code: "CSE2113", Name: "Database Management Systems", Credits: 4, Instructor: "Dr. Mohammad Ali"},
	}
}

// DefaultStudents returns the sample student roster loaded at startup.
func DefaultStudents() []appModels.Student {
	return []appModels.Student{
		{ID: "S001", Name: "Alice Johnson", Email: "alice@uiu.edu.bd", CGPA: 3.85},
		{ID: "S002", Name: "Bob Smith", Email: "bob@uiu.edu.bd", CGPA: 3.72},
		{ID: "S003", Name: "Carol White", Email: "carol@uiu.edu.bd", CGPA: 3.90},
		{ID: "S004", Name: "David Brown", Email: "david@uiu.edu.bd", CGPA: 3.65},
	}
}

// CreateDefaultData builds the repositories, loading the sample data when enabled.
func CreateDefaultData(enabled bool, lgr zerolog.Logger) *appRepos.Repositories {
	if !enabled {
		lgr.Info().Msg("Default data disabled, starting with empty collections")
		return appRepos.NewRepositories(nil, nil)
	}

	courses := DefaultCourses()
	students := DefaultStudents()
	repos := appRepos.NewRepositories(courses, students)
	lgr.Info().
		Int("courses", len(courses)).
		Int("students", len(students)).
		Msg("Default data loaded")
	return repos
}
