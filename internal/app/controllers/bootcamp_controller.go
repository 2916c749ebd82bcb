package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/mattwebdev/devcamper/internal/app/models/dto"
	"github.com/mattwebdev/devcamper/internal/app/services"
	"github.com/mattwebdev/devcamper/internal/middleware"
	"github.com/mattwebdev/devcamper/internal/pkg/apperrors"
)

// BootcampController handles bootcamp-related operations
type BootcampController struct {
	bootcampService services.BootcampService
}

// NewBootcampController creates a new BootcampController
func NewBootcampController(bootcampService services.BootcampService) *BootcampController {
	return &BootcampController{
		bootcampService: bootcampService,
	}
}

// parseID parses a numeric path parameter. A malformed value renders as a
// 404 so that /bootcamps/abc behaves like a missing resource, not a server
// error.
func parseID(ctx *gin.Context, param string) (int64, bool) {
	id, err := strconv.ParseInt(ctx.Param(param), 10, 64)
	if err != nil || id < 1 {
		middleware.HandleAPIError(ctx, apperrors.NewNotFoundError("Resource not found with id of "+ctx.Param(param)))
		return 0, false
	}
	return id, true
}

// GetBootcamps retrieves a filtered page of bootcamps
// @Summary List bootcamps
// @Description Retrieves bootcamps with filtering, field selection, sorting and pagination
// @Tags bootcamps
// @Accept json
// @Produce json
// @Param select query string false "Comma separated list of fields to include"
// @Param sort query string false "Comma separated sort fields, prefix with - for descending"
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Results per page" default(25)
// @Success 200 {object} dto.APIResponse{data=[]models.Bootcamp} "Bootcamps retrieved successfully"
// @Failure 400 {object} dto.APIResponse "Unknown filter field or malformed query"
// @Failure 500 {object} dto.APIResponse "Internal server error"
// @Router /bootcamps [get]
func (c *BootcampController) GetBootcamps(ctx *gin.Context) {
	q := middleware.GetListQuery(ctx)

	bootcamps, total, err := c.bootcampService.GetBootcamps(ctx, q)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	data := q.Project(bootcamps)
	ctx.JSON(http.StatusOK, dto.NewListResponse(data, len(bootcamps), q.Paginate(total)))
}

// GetBootcamp retrieves a single bootcamp
// @Summary Get bootcamp details
// @Description Retrieves a single bootcamp by its ID
// @Tags bootcamps
// @Accept json
// @Produce json
// @Param id path int true "Bootcamp ID" Format(int64) minimum(1)
// @Success 200 {object} dto.APIResponse{data=models.Bootcamp} "Bootcamp retrieved successfully"
// @Failure 404 {object} dto.APIResponse "Bootcamp not found"
// @Failure 500 {object} dto.APIResponse "Internal server error"
// @Router /bootcamps/{id} [get]
func (c *BootcampController) GetBootcamp(ctx *gin.Context) {
	id, ok := parseID(ctx, "id")
	if !ok {
		return
	}

	bootcamp, err := c.bootcampService.GetBootcampByID(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewDataResponse(bootcamp))
}

// CreateBootcamp creates a new bootcamp owned by the caller
// @Summary Create a bootcamp
// @Description Creates a bootcamp owned by the authenticated publisher or admin
// @Tags bootcamps
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateBootcampRequest true "Bootcamp information"
// @Success 201 {object} dto.APIResponse{data=models.Bootcamp} "Bootcamp created successfully"
// @Failure 400 {object} dto.APIResponse "Invalid request data or bootcamp already published"
// @Failure 401 {object} dto.APIResponse "Unauthorized"
// @Failure 403 {object} dto.APIResponse "Forbidden"
// @Failure 500 {object} dto.APIResponse "Internal server error"
// @Router /bootcamps [post]
func (c *BootcampController) CreateBootcamp(ctx *gin.Context) {
	actor, _ := middleware.GetActor(ctx)

	var req dto.CreateBootcampRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleBindingError(ctx, err)
		return
	}

	bootcamp, err := c.bootcampService.CreateBootcamp(ctx, actor, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewDataResponse(bootcamp))
}

// UpdateBootcamp updates a bootcamp the caller owns
// @Summary Update a bootcamp
// @Description Updates a bootcamp owned by the caller. Admins may update any bootcamp
// @Tags bootcamps
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Bootcamp ID" Format(int64) minimum(1)
// @Param request body dto.UpdateBootcampRequest true "Fields to update"
// @Success 200 {object} dto.APIResponse{data=models.Bootcamp} "Bootcamp updated successfully"
// @Failure 400 {object} dto.APIResponse "Invalid request data"
// @Failure 401 {object} dto.APIResponse "Unauthorized"
// @Failure 403 {object} dto.APIResponse "Caller does not own this bootcamp"
// @Failure 404 {object} dto.APIResponse "Bootcamp not found"
// @Failure 500 {object} dto.APIResponse "Internal server error"
// @Router /bootcamps/{id} [put]
func (c *BootcampController) UpdateBootcamp(ctx *gin.Context) {
	actor, _ := middleware.GetActor(ctx)

	id, ok := parseID(ctx, "id")
	if !ok {
		return
	}

	var req dto.UpdateBootcampRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleBindingError(ctx, err)
		return
	}

	bootcamp, err := c.bootcampService.UpdateBootcamp(ctx, actor, id, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewDataResponse(bootcamp))
}

// DeleteBootcamp deletes a bootcamp the caller owns
// @Summary Delete a bootcamp
// @Description Deletes a bootcamp and its courses. Admins may delete any bootcamp
// @Tags bootcamps
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Bootcamp ID" Format(int64) minimum(1)
// @Success 200 {object} dto.APIResponse "Bootcamp deleted successfully"
// @Failure 401 {object} dto.APIResponse "Unauthorized"
// @Failure 403 {object} dto.APIResponse "Caller does not own this bootcamp"
// @Failure 404 {object} dto.APIResponse "Bootcamp not found"
// @Failure 500 {object} dto.APIResponse "Internal server error"
// @Router /bootcamps/{id} [delete]
func (c *BootcampController) DeleteBootcamp(ctx *gin.Context) {
	actor, _ := middleware.GetActor(ctx)

	id, ok := parseID(ctx, "id")
	if !ok {
		return
	}

	if err := c.bootcampService.DeleteBootcamp(ctx, actor, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewDataResponse(gin.H{}))
}

// UploadBootcampPhoto uploads a photo for a bootcamp the caller owns
// @Summary Upload bootcamp photo
// @Description Stores an image for the bootcamp and records the filename
// @Tags bootcamps
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param id path int true "Bootcamp ID" Format(int64) minimum(1)
// @Param file formData file true "Image file"
// @Success 200 {object} dto.APIResponse{data=string} "Photo uploaded successfully"
// @Failure 400 {object} dto.APIResponse "Missing file, not an image, or too large"
// @Failure 401 {object} dto.APIResponse "Unauthorized"
// @Failure 403 {object} dto.APIResponse "Caller does not own this bootcamp"
// @Failure 404 {object} dto.APIResponse "Bootcamp not found"
// @Failure 500 {object} dto.APIResponse "Internal server error"
// @Router /bootcamps/{id}/photo [put]
func (c *BootcampController) UploadBootcampPhoto(ctx *gin.Context) {
	actor, _ := middleware.GetActor(ctx)

	id, ok := parseID(ctx, "id")
	if !ok {
		return
	}

	fileHeader, err := ctx.FormFile("file")
	if err != nil {
		middleware.HandleAPIError(ctx, apperrors.NewBadRequestError("Please upload a file"))
		return
	}

	filename, err := c.bootcampService.UploadPhoto(ctx, actor, id, fileHeader)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewDataResponse(filename))
}

// GetBootcampsInRadius retrieves bootcamps near a zipcode
// @Summary List bootcamps within a radius
// @Description Retrieves bootcamps within the given distance in miles of a zipcode
// @Tags bootcamps
// @Accept json
// @Produce json
// @Param zipcode path string true "Zipcode to search around"
// @Param distance path number true "Radius in miles"
// @Success 200 {object} dto.APIResponse{data=[]models.Bootcamp} "Bootcamps retrieved successfully"
// @Failure 400 {object} dto.APIResponse "Zipcode could not be geocoded or distance malformed"
// @Failure 500 {object} dto.APIResponse "Internal server error"
// @Router /bootcamps/radius/{zipcode}/{distance} [get]
func (c *BootcampController) GetBootcampsInRadius(ctx *gin.Context) {
	zipcode := ctx.Param("zipcode")

	miles, err := strconv.ParseFloat(ctx.Param("distance"), 64)
	if err != nil || miles <= 0 {
		middleware.HandleAPIError(ctx, apperrors.NewBadRequestError("Distance must be a positive number of miles"))
		return
	}

	bootcamps, err := c.bootcampService.GetBootcampsInRadius(ctx, zipcode, miles)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	count := len(bootcamps)
	ctx.JSON(http.StatusOK, dto.APIResponse{Success: true, Count: &count, Data: bootcamps})
}
