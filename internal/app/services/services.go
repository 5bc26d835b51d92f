package services

// Services defined in this package:
// - CourseService: CRUD over the in-memory course catalogue
// - StudentService: CRUD over the in-memory student roster
//
// Repositories report a missing key as an absence value; services turn it into
// apperrors.ErrCourseNotFound / apperrors.ErrStudentNotFound for the controllers.
