package models

// Course represents a course in the catalogue. Code is the natural key; it is
// caller-supplied and not enforced unique.
type Course struct {
	Code       string `json:"code" example:"CSE2118"`
	Name       string `json:"name" example:"Advanced Object-Oriented Programming"`
	Credits    int    `json:"credits" example:"3"`
	Instructor string `json:"instructor" example:"Sayef Reyadh"`
}

// Key returns the course code.
func (c Course) Key() string {
	return c.Code
}

// CoursePatch carries the fields overwritten by an update. The code is never changed.
type CoursePatch struct {
	Name       string
	Credits    int
	Instructor string
}

// Apply overwrites every non-key field of c with the patch values.
func (p CoursePatch) Apply(c *Course) {
	c.Name = p.Name
	c.Credits = p.Credits
	c.Instructor = p.Instructor
}
