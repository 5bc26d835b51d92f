package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yigit/unicrud/internal/app/controllers"
	"github.com/yigit/unicrud/internal/app/models/dto"
	"github.com/yigit/unicrud/internal/app/services"
)

// SetupRouter configures all application routes
func SetupRouter(
	router *gin.Engine,
	courseController *controllers.CourseController,
	studentController *controllers.StudentController,
	courseService services.CourseService,
	studentService services.StudentService,
) {
	api := router.Group("/api")

	// Course routes
	courses := api.Group("/courses")
	{
		courses.GET("", courseController.GetAllCourses)
		courses.GET("/:code", courseController.GetCourseByCode)
		courses.POST("", courseController.CreateCourse)
		courses.PUT("/:code", courseController.UpdateCourse)
		courses.DELETE("/:code", courseController.DeleteCourse)
	}

	// Student routes
	students := api.Group("/students")
	{
		students.GET("", studentController.GetAllStudents)
		students.GET("/:id", studentController.GetStudentByID)
		students.POST("", studentController.CreateStudent)
		students.PUT("/:id", studentController.UpdateStudent)
		students.DELETE("/:id", studentController.DeleteStudent)
	}

	// Spreadsheet exports
	exports := api.Group("/exports")
	{
		exports.GET("/courses", courseController.ExportCourses)
		exports.GET("/students", studentController.ExportStudents)
	}

	// Health check endpoint
	api.GET("/health", func(c *gin.Context) {
		ctx := c.Request.Context()
		c.JSON(http.StatusOK, dto.NewSuccessResponse(dto.HealthResponse{
			Status:   "ok",
			Courses:  courseService.CountCourses(ctx),
			Students: studentService.CountStudents(ctx),
		}))
	})
}
