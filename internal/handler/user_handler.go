package handler

import (
	"encoding/json"
	"net/http"

	"github.com/labstack/echo/v4"

	"jobsite/internal/errors"
	"jobsite/internal/service"
	"jobsite/internal/storage"
)

// UserHandler handles account endpoints.
type UserHandler struct {
	svc     service.UserService
	uploads *storage.UploadStore
}

// NewUserHandler creates a handler layer.
func NewUserHandler(svc service.UserService, uploads *storage.UploadStore) *UserHandler {
	return &UserHandler{svc: svc, uploads: uploads}
}

// SignupRequest represents a signup request.
type SignupRequest struct {
	FirstName string `json:"firstName" validate:"required"`
	LastName  string `json:"lastName" validate:"required"`
	Email     string `json:"email" validate:"required,email"`
	Phone     string `json:"phone"`
	Password  string `json:"password" validate:"required"`
}

// LoginRequest represents a login request.
type LoginRequest struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// Signup godoc
// @Summary Create an account
// @Tags users
// @Accept json
// @Produce json
// @Param request body SignupRequest true "Signup fields"
// @Success 201 {object} map[string]string
// @Failure 400 {object} errors.ErrorResponse
// @Failure 409 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /signup [post]
func (h *UserHandler) Signup(c echo.Context) error {
	var req SignupRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errors.ErrorResponse{Error: "Invalid request body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errors.ErrorResponse{Error: "Missing required fields"})
	}
	if err := h.svc.Signup(c.Request().Context(), req.FirstName, req.LastName, req.Email, req.Phone, req.Password); err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusCreated, echo.Map{"message": "Account created successfully"})
}

// Login godoc
// @Summary Log in with email and password
// @Tags users
// @Accept json
// @Produce json
// @Param request body LoginRequest true "Credentials"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /login [post]
func (h *UserHandler) Login(c echo.Context) error {
	var req LoginRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errors.ErrorResponse{Error: "Invalid request body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errors.ErrorResponse{Error: "Email and password required"})
	}
	user, err := h.svc.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{
		"message": "Login successful",
		"user":    user,
	})
}

// Profile godoc
// @Summary Fetch an account's public profile
// @Tags users
// @Produce json
// @Param email query string true "Account email"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /profile [get]
func (h *UserHandler) Profile(c echo.Context) error {
	email := c.QueryParam("email")
	if email == "" {
		return c.JSON(http.StatusBadRequest, errors.ErrorResponse{Error: "Email is required"})
	}
	user, err := h.svc.Profile(c.Request().Context(), email)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"user": user})
}

// UploadProfilePic godoc
// @Summary Upload a profile picture
// @Tags users
// @Accept multipart/form-data
// @Produce json
// @Param profilePic formData file true "Picture file"
// @Param user formData string true "User JSON with the account email"
// @Success 200 {object} map[string]string
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /profile/pic [post]
func (h *UserHandler) UploadProfilePic(c echo.Context) error {
	var meta struct {
		Email string `json:"email"`
	}
	if err := json.Unmarshal([]byte(c.FormValue("user")), &meta); err != nil || meta.Email == "" {
		return c.JSON(http.StatusBadRequest, errors.ErrorResponse{Error: "User not found"})
	}

	fileHeader, err := c.FormFile("profilePic")
	if err != nil {
		return c.JSON(http.StatusBadRequest, errors.ErrorResponse{Error: "No file uploaded"})
	}
	src, err := fileHeader.Open()
	if err != nil {
		return respondError(c, err)
	}
	defer src.Close()

	// The file is written before the row update; a crash in between leaves an
	// orphaned file, which is acceptable and not retried.
	path, err := h.uploads.Store(src, fileHeader.Filename)
	if err != nil {
		return respondError(c, err)
	}
	newPath, err := h.svc.SetProfilePic(c.Request().Context(), meta.Email, path)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{
		"message":    "Profile picture updated",
		"profilePic": newPath,
	})
}
