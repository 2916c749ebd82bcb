package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/mattwebdev/devcamper/internal/app/models/dto"
	"github.com/mattwebdev/devcamper/internal/app/services"
	"github.com/mattwebdev/devcamper/internal/middleware"
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

// GetCourses retrieves a filtered page of courses
// @Summary List courses
// @Description Retrieves courses across all bootcamps, or under one bootcamp when nested
// @Tags courses
// @Accept json
// @Produce json
// @Param select query string false "Comma separated list of fields to include"
// @Param sort query string false "Comma separated sort fields, prefix with - for descending"
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Results per page" default(25)
// @Success 200 {object} dto.APIResponse{data=[]models.Course} "Courses retrieved successfully"
// @Failure 400 {object} dto.APIResponse "Unknown filter field or malformed query"
// @Failure 404 {object} dto.APIResponse "Bootcamp not found"
// @Failure 500 {object} dto.APIResponse "Internal server error"
// @Router /courses [get]
func (c *CourseController) GetCourses(ctx *gin.Context) {
	q := middleware.GetListQuery(ctx)

	if bootcampParam := ctx.Param("bootcampId"); bootcampParam != "" {
		bootcampID, ok := parseID(ctx, "bootcampId")
		if !ok {
			return
		}

		courses, total, err := c.courseService.GetCoursesByBootcamp(ctx, q, bootcampID)
		if err != nil {
			middleware.HandleAPIError(ctx, err)
			return
		}

		ctx.JSON(http.StatusOK, dto.NewListResponse(q.Project(courses), len(courses), q.Paginate(total)))
		return
	}

	courses, total, err := c.courseService.GetCourses(ctx, q)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewListResponse(q.Project(courses), len(courses), q.Paginate(total)))
}

// GetCourse retrieves a single course
// @Summary Get course details
// @Description Retrieves a single course by its ID, with its bootcamp reference
// @Tags courses
// @Accept json
// @Produce json
// @Param id path int true "Course ID" Format(int64) minimum(1)
// @Success 200 {object} dto.APIResponse{data=models.Course} "Course retrieved successfully"
// @Failure 404 {object} dto.APIResponse "Course not found"
// @Failure 500 {object} dto.APIResponse "Internal server error"
// @Router /courses/{id} [get]
func (c *CourseController) GetCourse(ctx *gin.Context) {
	id, ok := parseID(ctx, "id")
	if !ok {
		return
	}

	course, err := c.courseService.GetCourseByID(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewDataResponse(course))
}

// CreateCourse creates a course under a bootcamp the caller owns
// @Summary Create a course
// @Description Adds a course to a bootcamp owned by the caller
// @Tags courses
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param bootcampId path int true "Bootcamp ID" Format(int64) minimum(1)
// @Param request body dto.CreateCourseRequest true "Course information"
// @Success 201 {object} dto.APIResponse{data=models.Course} "Course created successfully"
// @Failure 400 {object} dto.APIResponse "Invalid request data"
// @Failure 401 {object} dto.APIResponse "Unauthorized"
// @Failure 403 {object} dto.APIResponse "Caller does not own this bootcamp"
// @Failure 404 {object} dto.APIResponse "Bootcamp not found"
// @Failure 500 {object} dto.APIResponse "Internal server error"
// @Router /bootcamps/{bootcampId}/courses [post]
func (c *CourseController) CreateCourse(ctx *gin.Context) {
	actor, _ := middleware.GetActor(ctx)

	bootcampID, ok := parseID(ctx, "bootcampId")
	if !ok {
		return
	}

	var req dto.CreateCourseRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleBindingError(ctx, err)
		return
	}

	course, err := c.courseService.CreateCourse(ctx, actor, bootcampID, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewDataResponse(course))
}

// UpdateCourse updates a course under a bootcamp the caller owns
// @Summary Update a course
// @Description Updates a course when the caller owns its bootcamp
// @Tags courses
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Course ID" Format(int64) minimum(1)
// @Param request body dto.UpdateCourseRequest true "Fields to update"
// @Success 200 {object} dto.APIResponse{data=models.Course} "Course updated successfully"
// @Failure 400 {object} dto.APIResponse "Invalid request data"
// @Failure 401 {object} dto.APIResponse "Unauthorized"
// @Failure 403 {object} dto.APIResponse "Caller does not own this course's bootcamp"
// @Failure 404 {object} dto.APIResponse "Course not found"
// @Failure 500 {object} dto.APIResponse "Internal server error"
// @Router /courses/{id} [put]
func (c *CourseController) UpdateCourse(ctx *gin.Context) {
	actor, _ := middleware.GetActor(ctx)

	id, ok := parseID(ctx, "id")
	if !ok {
		return
	}

	var req dto.UpdateCourseRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleBindingError(ctx, err)
		return
	}

	course, err := c.courseService.UpdateCourse(ctx, actor, id, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewDataResponse(course))
}

// DeleteCourse deletes a course under a bootcamp the caller owns
// @Summary Delete a course
// @Description Deletes a course when the caller owns its bootcamp
// @Tags courses
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Course ID" Format(int64) minimum(1)
// @Success 200 {object} dto.APIResponse "Course deleted successfully"
// @Failure 401 {object} dto.APIResponse "Unauthorized"
// @Failure 403 {object} dto.APIResponse "Caller does not own this course's bootcamp"
// @Failure 404 {object} dto.APIResponse "Course not found"
// @Failure 500 {object} dto.APIResponse "Internal server error"
// @Router /courses/{id} [delete]
func (c *CourseController) DeleteCourse(ctx *gin.Context) {
	actor, _ := middleware.GetActor(ctx)

	id, ok := parseID(ctx, "id")
	if !ok {
		return
	}

	if err := c.courseService.DeleteCourse(ctx, actor, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewDataResponse(gin.H{}))
}
