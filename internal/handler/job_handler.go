package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"jobsite/internal/errors"
	"jobsite/internal/normalizer"
	"jobsite/internal/service"
)

// JobHandler bundles job endpoints.
type JobHandler struct {
	svc service.JobService
}

// NewJobHandler creates a handler layer.
func NewJobHandler(svc service.JobService) *JobHandler {
	return &JobHandler{svc: svc}
}

// PostJob godoc
// @Summary Post a new job
// @Tags jobs
// @Accept json
// @Produce json
// @Param job body normalizer.JobPayload true "Job fields"
// @Success 201 {object} map[string]interface{}
// @Failure 400 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /jobs [post]
func (h *JobHandler) PostJob(c echo.Context) error {
	var payload normalizer.JobPayload
	if err := c.Bind(&payload); err != nil {
		return c.JSON(http.StatusBadRequest, errors.ErrorResponse{Error: "Invalid request body"})
	}
	job, err := h.svc.Post(c.Request().Context(), &payload)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusCreated, echo.Map{
		"message": "Job posted successfully",
		"job":     job,
	})
}

// ListJobs godoc
// @Summary List all jobs, newest first
// @Tags jobs
// @Produce json
// @Success 200 {array} model.Job
// @Failure 500 {object} errors.ErrorResponse
// @Router /jobs [get]
func (h *JobHandler) ListJobs(c echo.Context) error {
	jobs, err := h.svc.List(c.Request().Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, jobs)
}

// GetJob godoc
// @Summary Get a job by id
// @Tags jobs
// @Produce json
// @Param id path int true "Job ID"
// @Success 200 {object} model.Job
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /jobs/{id} [get]
func (h *JobHandler) GetJob(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id < 0 {
		return c.JSON(http.StatusBadRequest, errors.ErrorResponse{Error: "Invalid job id"})
	}
	job, err := h.svc.Get(c.Request().Context(), uint(id))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, job)
}

// SearchJobs godoc
// @Summary Search jobs by substring
// @Tags jobs
// @Produce json
// @Param q query string false "Search text, matched against title, description, and category"
// @Success 200 {array} model.Job
// @Failure 500 {object} errors.ErrorResponse
// @Router /jobs/search [get]
func (h *JobHandler) SearchJobs(c echo.Context) error {
	jobs, err := h.svc.Search(c.Request().Context(), c.QueryParam("q"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, jobs)
}
