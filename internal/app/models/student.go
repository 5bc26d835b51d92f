package models

// Student defines a student record keyed by its student ID
type Student struct {
	ID    string  `json:"id" example:"S001"`                // Student number, the natural key
	Name  string  `json:"name" example:"Alice Johnson"`     // Full name
	Email string  `json:"email" example:"alice@uiu.edu.bd"` // Free-form, not validated
	CGPA  float64 `json:"cgpa" example:"3.85"`              // No range check
}

// Key returns the student ID.
func (s Student) Key() string {
	return s.ID
}

// StudentPatch carries the fields overwritten by an update
type StudentPatch struct {
	Name  string
	Email string
	CGPA  float64
}

// Apply overwrites name, email and cgpa of s.
func (p StudentPatch) Apply(s *Student) {
	s.Name = p.Name
	s.Email = p.Email
	s.CGPA = p.CGPA
}
