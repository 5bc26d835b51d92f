package dto

import "github.com/yigit/unicrud/internal/app/models"

// CreateCourseRequest represents course creation data. No field is required:
// the record is stored as received.
type CreateCourseRequest struct {
	Code       string `json:"code" example:"CSE9999"`
	Name       string `json:"name" example:"Compiler Design"`
	Credits    int    `json:"credits" example:"3"`
	Instructor string `json:"instructor" example:"Dr. Jane Doe"`
}

// UpdateCourseRequest represents course update data. A code in the body is ignored,
// the path parameter identifies the course.
type UpdateCourseRequest struct {
	Code       string `json:"code,omitempty" swaggerignore:"true"`
	Name       string `json:"name" example:"Compiler Design"`
	Credits    int    `json:"credits" example:"4"`
	Instructor string `json:"instructor" example:"Dr. Jane Doe"`
}

// ToModel converts the request to a Course
func (r CreateCourseRequest) ToModel() models.Course {
	return models.Course{
		Code:       r.Code,
		Name:       r.Name,
		Credits:    r.Credits,
		Instructor: r.Instructor,
	}
}

// ToPatch converts the request to the fields an update overwrites
func (r UpdateCourseRequest) ToPatch() models.CoursePatch {
	return models.CoursePatch{
		Name:       r.Name,
		Credits:    r.Credits,
		Instructor: r.Instructor,
	}
}
