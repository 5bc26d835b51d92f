package dto

import "github.com/yigit/unicrud/internal/app/models"

// CreateStudentRequest represents student creation data
type CreateStudentRequest struct {
	ID    string  `json:"id" example:"S005"`
	Name  string  `json:"name" example:"Eve Adams"`
	Email string  `json:"email" example:"eve@uiu.edu.bd"`
	CGPA  float64 `json:"cgpa" example:"3.5"`
}

// UpdateStudentRequest represents student update data
type UpdateStudentRequest struct {
	ID    string  `json:"id,omitempty" swaggerignore:"true"`
	Name  string  `json:"name" example:"Eve Adams"`
	Email string  `json:"email" example:"eve@uiu.edu.bd"`
	CGPA  float64 `json:"cgpa" example:"3.6"`
}

// ToModel converts the request to a Student
func (r CreateStudentRequest) ToModel() models.Student {
	return models.Student{
		ID:    r.ID,
		Name:  r.Name,
		Email: r.Email,
		CGPA:  r.CGPA,
	}
}

// ToPatch converts the request to the fields an update overwrites
func (r UpdateStudentRequest) ToPatch() models.StudentPatch {
	return models.StudentPatch{
		Name:  r.Name,
		Email: r.Email,
		CGPA:  r.CGPA,
	}
}
