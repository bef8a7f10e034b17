package router

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"

	"jobsite/internal/handler"
)

// Register wires routes and middleware.
func Register(
	e *echo.Echo,
	uploadDir string,
	jobHandler *handler.JobHandler,
	userHandler *handler.UserHandler,
) {
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.CORS())

	// Add validator
	e.Validator = &CustomValidator{validator: validator.New()}

	e.GET("/healthz", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})

	e.GET("/swagger/*", echoSwagger.WrapHandler)

	// Stored profile pictures
	e.Static("/uploads", uploadDir)

	api := e.Group("/api")

	// Account routes
	api.POST("/signup", userHandler.Signup)
	api.POST("/login", userHandler.Login)
	api.GET("/profile", userHandler.Profile)
	api.POST("/profile/pic", userHandler.UploadProfilePic)

	// Job routes; /jobs/search must not be shadowed by /jobs/:id
	api.POST("/jobs", jobHandler.PostJob)
	api.GET("/jobs", jobHandler.ListJobs)
	api.GET("/jobs/search", jobHandler.SearchJobs)
	api.GET("/jobs/:id", jobHandler.GetJob)
}

// CustomValidator wraps validator for Echo.
type CustomValidator struct {
	validator *validator.Validate
}

// Validate implements echo.Validator interface.
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}
