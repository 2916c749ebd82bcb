package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/mattwebdev/devcamper/internal/app/controllers"
	"github.com/mattwebdev/devcamper/internal/app/models"
	"github.com/mattwebdev/devcamper/internal/app/repositories"
	"github.com/mattwebdev/devcamper/internal/middleware"
)

// SetupRouter configures all application routes
func SetupRouter(
	router *gin.Engine,
	authController *controllers.AuthController,
	bootcampController *controllers.BootcampController,
	courseController *controllers.CourseController,
	authMiddleware *middleware.AuthMiddleware,
) {
	v1 := router.Group("/api/v1")

	publisherOrAdmin := authMiddleware.RequireRoles(models.RolePublisher, models.RoleAdmin)

	// Auth routes
	auth := v1.Group("/auth")
	{
		auth.POST("/register", authController.Register)
		auth.POST("/login", authController.Login)
		auth.GET("/me", authMiddleware.RequireAuth(), authController.GetMe)
	}

	// Bootcamp routes
	bootcamps := v1.Group("/bootcamps")
	{
		bootcamps.GET("", middleware.ParseListQuery(repositories.BootcampResource), bootcampController.GetBootcamps)
		bootcamps.GET("/:id", bootcampController.GetBootcamp)
		bootcamps.GET("/radius/:zipcode/:distance", bootcampController.GetBootcampsInRadius)

		protected := bootcamps.Group("", authMiddleware.RequireAuth(), publisherOrAdmin)
		{
			protected.POST("", bootcampController.CreateBootcamp)
			protected.PUT("/:id", bootcampController.UpdateBootcamp)
			protected.DELETE("/:id", bootcampController.DeleteBootcamp)
			protected.PUT("/:id/photo", bootcampController.UploadBootcampPhoto)
		}

		// Nested course routes
		bootcamps.GET("/:id/courses", middleware.ParseListQuery(repositories.CourseResource), func(c *gin.Context) {
			c.Params = append(c.Params, gin.Param{Key: "bootcampId", Value: c.Param("id")})
			courseController.GetCourses(c)
		})
		bootcamps.POST("/:id/courses", authMiddleware.RequireAuth(), publisherOrAdmin, func(c *gin.Context) {
			c.Params = append(c.Params, gin.Param{Key: "bootcampId", Value: c.Param("id")})
			courseController.CreateCourse(c)
		})
	}

	// Course routes
	courses := v1.Group("/courses")
	{
		courses.GET("", middleware.ParseListQuery(repositories.CourseResource), courseController.GetCourses)
		courses.GET("/:id", courseController.GetCourse)

		protected := courses.Group("", authMiddleware.RequireAuth(), publisherOrAdmin)
		{
			protected.PUT("/:id", courseController.UpdateCourse)
			protected.DELETE("/:id", courseController.DeleteCourse)
		}
	}

	// Health check
	v1.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
}
