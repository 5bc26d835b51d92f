package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yigit/unicrud/internal/app/models/dto"
	"github.com/yigit/unicrud/internal/app/services"
	"github.com/yigit/unicrud/internal/middleware"
	"github.com/yigit/unicrud/internal/pkg/spreadsheet"
)

// CourseController handles course-related operations
type CourseController struct {
	courseService services.CourseService
}

// NewCourseController creates a new CourseController
func NewCourseController(courseService services.CourseService) *CourseController {
	return &CourseController{
		courseService: courseService,
	}
}

// GetAllCourses retrieves all courses
// @Summary Get all courses
// @Description Retrieves every course in insertion order
// @Tags courses
// @Produce json
// @Success 200 {object} dto.APIResponse{data=[]models.Course} "Courses retrieved successfully"
// @Router /courses [get]
func (c *CourseController) GetAllCourses(ctx *gin.Context) {
	courses := c.courseService.GetAllCourses(ctx.Request.Context())
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(courses))
}

// GetCourseByCode retrieves a course by code
// @Summary Get course details
// @Description Retrieves the first course whose code matches
// @Tags courses
// @Produce json
// @Param code path string true "Course code"
// @Success 200 {object} dto.APIResponse{data=models.Course} "Course retrieved successfully"
// @Failure 404 {object} dto.ErrorResponse "Course not found"
// @Router /courses/{code} [get]
func (c *CourseController) GetCourseByCode(ctx *gin.Context) {
	course, err := c.courseService.GetCourseByCode(ctx.Request.Context(), ctx.Param("code"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(course))
}

// CreateCourse handles course creation
// @Summary Create a new course
// @Description Appends a course to the catalogue. Duplicate codes are accepted.
// @Tags courses
// @Accept json
// @Produce json
// @Param request body dto.CreateCourseRequest true "Course information"
// @Success 201 {object} dto.APIResponse{data=models.Course} "Course created successfully"
// @Failure 400 {object} dto.ErrorResponse "Malformed request body"
// @Router /courses [post]
func (c *CourseController) CreateCourse(ctx *gin.Context) {
	var req dto.CreateCourseRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		badBody(ctx, "Invalid course data", err)
		return
	}

	course := c.courseService.CreateCourse(ctx.Request.Context(), req.ToModel())
	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(course))
}

// UpdateCourse updates an existing course
// @Summary Update a course
// @Description Overwrites name, credits and instructor of the first course with the code. The code itself never changes.
// @Tags courses
// @Accept json
// @Produce json
// @Param code path string true "Course code"
// @Param request body dto.UpdateCourseRequest true "Updated course information"
// @Success 200 {object} dto.APIResponse{data=models.Course} "Course updated successfully"
// @Failure 400 {object} dto.ErrorResponse "Malformed request body"
// @Failure 404 {object} dto.ErrorResponse "Course not found"
// @Router /courses/{code} [put]
func (c *CourseController) UpdateCourse(ctx *gin.Context) {
	var req dto.UpdateCourseRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		badBody(ctx, "Invalid course data", err)
		return
	}

	course, err := c.courseService.UpdateCourse(ctx.Request.Context(), ctx.Param("code"), req.ToPatch())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(course))
}

// DeleteCourse deletes a course
// @Summary Delete a course
// @Description Removes every course with the code
// @Tags courses
// @Produce json
// @Param code path string true "Course code"
// @Success 200 {object} dto.APIResponse{data=dto.DeleteResponse} "Course deleted successfully"
// @Failure 404 {object} dto.ErrorResponse "Course not found"
// @Router /courses/{code} [delete]
func (c *CourseController) DeleteCourse(ctx *gin.Context) {
	if err := c.courseService.DeleteCourse(ctx.Request.Context(), ctx.Param("code")); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(dto.DeleteResponse{Deleted: true}))
}

// ExportCourses streams the catalogue as a spreadsheet
// @Summary Export courses
// @Description Downloads the current catalogue as an .xlsx workbook
// @Tags courses
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Success 200 {file} file "Course workbook"
// @Failure 500 {object} dto.ErrorResponse "Export failed"
// @Router /exports/courses [get]
func (c *CourseController) ExportCourses(ctx *gin.Context) {
	courses := c.courseService.GetAllCourses(ctx.Request.Context())

	sheet := spreadsheet.Sheet{
		Name:    "Courses",
		Headers: []string{"Code", "Name", "Credits", "Instructor"},
		Rows:    make([][]interface{}, 0, len(courses)),
	}
	for _, course := range courses {
		sheet.Rows = append(sheet.Rows, []interface{}{course.Code, course.Name, course.Credits, course.Instructor})
	}

	writeWorkbook(ctx, "courses.xlsx", sheet)
}
