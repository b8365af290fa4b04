package routes

import (
	"fmt"

	"hostel-directory-backend/internal/api/handlers"
	"hostel-directory-backend/internal/api/middleware"
	"hostel-directory-backend/internal/auth"
	"hostel-directory-backend/internal/config"
	"hostel-directory-backend/internal/database"
	"hostel-directory-backend/internal/logger"
	"hostel-directory-backend/internal/repository"
	"hostel-directory-backend/internal/service"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"
)

// SetupRoutes configures all the routes for the application
func SetupRoutes(db *gorm.DB, cfg *config.Config) (*gin.Engine, error) {
	// Create router
	router := gin.New()

	// Add middleware
	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())
	router.Use(middleware.RequestID())
	// no configured origins means no cross-origin access at all
	if len(cfg.AllowedOrigins) > 0 {
		corsHandler, err := middleware.CORS(cfg)
		if err != nil {
			return nil, err
		}
		router.Use(corsHandler)
	}

	validator := service.NewValidator()

	// Read side shares the gorm pool
	sqlxDB, err := database.NewSQLX(db)
	if err != nil {
		return nil, fmt.Errorf("failed to set up tag queries: %w", err)
	}

	// Initialize repositories
	tagQueryRepo := repository.NewTagQueryRepository(sqlxDB)
	hostelRepo := repository.NewHostelRepository(db)
	ratingRepo := repository.NewRatingRepository(db)
	commentRepo := repository.NewCommentRepository(db)
	userRepo := repository.NewUserRepository(db)

	// Initialize services
	categoryService := service.NewCategoryService(db, validator)
	tagService := service.NewTagService(db, tagQueryRepo, validator)
	hostelService := service.NewHostelService(db, tagQueryRepo, validator, cfg.RecentCommentsInList, cfg.RecentCommentsInDetail)
	projectService := service.NewProjectService(db, tagQueryRepo, validator)
	ratingService := service.NewRatingService(hostelRepo, ratingRepo, userRepo, validator)
	commentService := service.NewCommentService(hostelRepo, commentRepo, validator)
	imageService := service.NewImageService(db, validator)
	userService := service.NewUserService(userRepo, validator)

	// Admin gate, only when auth is switched on
	var adminOnly []gin.HandlerFunc
	if cfg.AuthEnabled {
		authService, err := auth.NewAuthService(cfg.JWTSecret, 0)
		if err != nil {
			return nil, err
		}
		adminOnly = auth.NewAuthMiddleware(authService).RequireAdmin()
	} else {
		logger.New().Warnf("AUTH_ENABLED is false: admin routes are open")
	}

	// Initialize handlers
	healthHandler := handlers.NewHealthHandler(db)
	categoryHandler := handlers.NewCategoryHandler(categoryService)
	hostelHandler := handlers.NewHostelHandler(hostelService, tagService)
	projectHandler := handlers.NewProjectHandler(projectService, tagService)
	ratingHandler := handlers.NewRatingHandler(ratingService)
	commentHandler := handlers.NewCommentHandler(commentService)
	imageHandler := handlers.NewImageHandler(imageService)
	userHandler := handlers.NewUserHandler(userService)

	// Health check routes
	router.GET("/health", healthHandler.Health)
	router.GET("/health/ready", healthHandler.Ready)
	router.GET("/health/live", healthHandler.Live)

	// Swagger documentation route
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	v1 := router.Group("/api/v1")
	admin := v1.Group("", adminOnly...)
	{
		// Category registry
		v1.GET("/categories", categoryHandler.ListCategories)
		v1.GET("/categories/:id/options", categoryHandler.ListOptions)
		v1.GET("/category-options", categoryHandler.ListOptionsByCategoryName)
		admin.POST("/categories", categoryHandler.CreateCategory)
		admin.PUT("/categories/:id", categoryHandler.UpdateCategory)
		admin.DELETE("/categories/:id", categoryHandler.DeleteCategory)
		admin.POST("/categories/:id/options", categoryHandler.AddOption)
		admin.PUT("/categories/:id/options/:optionId", categoryHandler.RenameOption)
		admin.DELETE("/categories/:id/options/:optionId", categoryHandler.DeleteOption)

		// Hostel routes
		v1.GET("/hostels", hostelHandler.ListHostels)
		v1.GET("/hostels/:id", hostelHandler.GetHostel)
		v1.GET("/hostels/:id/ratings", ratingHandler.ListHostelRatings)
		v1.GET("/hostels/:id/comments", commentHandler.ListHostelComments)
		v1.GET("/hostels/:id/images", imageHandler.ListHostelImages)
		admin.POST("/hostels", hostelHandler.CreateHostel)
		admin.PUT("/hostels/:id", hostelHandler.UpdateHostel)
		admin.DELETE("/hostels/:id", hostelHandler.DeleteHostel)
		admin.PUT("/hostels/:id/tags", hostelHandler.SetHostelTags)
		admin.POST("/hostels/:id/tag-links", hostelHandler.LinkHostelTag)
		admin.POST("/hostels/:id/images", imageHandler.AddHostelImage)

		// Project routes
		v1.GET("/projects", projectHandler.ListProjects)
		v1.GET("/projects/:id", projectHandler.GetProject)
		admin.POST("/projects", projectHandler.CreateProject)
		admin.PUT("/projects/:id", projectHandler.UpdateProject)
		admin.DELETE("/projects/:id", projectHandler.DeleteProject)
		admin.PUT("/projects/:id/tags", projectHandler.SetProjectTags)
		admin.POST("/projects/:id/tag-links", projectHandler.LinkProjectTag)

		// Ratings and comments are open to visitors, edits are moderation
		v1.POST("/ratings", ratingHandler.CreateRating)
		admin.PUT("/ratings/:id", ratingHandler.UpdateRating)
		admin.DELETE("/ratings/:id", ratingHandler.DeleteRating)

		v1.POST("/comments", commentHandler.CreateComment)
		admin.GET("/comments", commentHandler.ListComments)
		admin.PUT("/comments/:id", commentHandler.UpdateComment)
		admin.DELETE("/comments/:id", commentHandler.DeleteComment)

		admin.PUT("/images/:id", imageHandler.UpdateImage)
		admin.DELETE("/images/:id", imageHandler.DeleteImage)

		// User routes
		v1.POST("/users/lookup", userHandler.LookupUser)
		v1.GET("/users/:id", userHandler.GetUser)
	}

	// Catch-all route for undefined endpoints
	router.NoRoute(func(c *gin.Context) {
		c.JSON(404, gin.H{
			"error":      "Endpoint not found",
			"path":       c.Request.URL.Path,
			"method":     c.Request.Method,
			"request_id": c.GetString("request_id"),
		})
	})

	return router, nil
}

// SetupHealthRoutes sets up only health check routes (useful for testing)
func SetupHealthRoutes(db *gorm.DB) *gin.Engine {
	router := gin.New()
	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())

	healthHandler := handlers.NewHealthHandler(db)
	router.GET("/health", healthHandler.Health)
	router.GET("/health/ready", healthHandler.Ready)
	router.GET("/health/live", healthHandler.Live)

	return router
}
