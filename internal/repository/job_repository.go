package repository

import (
	"context"
	"strings"

	"gorm.io/gorm"

	"jobsite/internal/model"
)

// JobRepository defines job persistence operations.
type JobRepository interface {
	Create(ctx context.Context, job *model.Job) error
	List(ctx context.Context) ([]model.Job, error)
	FindByID(ctx context.Context, id uint) (*model.Job, error)
	Search(ctx context.Context, query string) ([]model.Job, error)
}

type jobRepository struct {
	db *gorm.DB
}

// NewJobRepository builds a GORM-backed repository.
func NewJobRepository(db *gorm.DB) JobRepository {
	return &jobRepository{db: db}
}

// Create persists one new job; the driver assigns id and created_at.
func (r *jobRepository) Create(ctx context.Context, job *model.Job) error {
	return r.db.WithContext(ctx).Create(job).Error
}

// List returns every job in insertion order, newest first.
func (r *jobRepository) List(ctx context.Context) ([]model.Job, error) {
	var jobs []model.Job
	if err := r.db.WithContext(ctx).Order("id DESC").Find(&jobs).Error; err != nil {
		return nil, err
	}
	return jobs, nil
}

// FindByID finds a job by id.
func (r *jobRepository) FindByID(ctx context.Context, id uint) (*model.Job, error) {
	var job model.Job
	if err := r.db.WithContext(ctx).First(&job, id).Error; err != nil {
		return nil, err
	}
	return &job, nil
}

// Search matches a substring case-insensitively against title, description,
// and category, newest match first by creation time. LOWER/LIKE rather than
// ILIKE keeps the query portable to the sqlite used in tests.
func (r *jobRepository) Search(ctx context.Context, query string) ([]model.Job, error) {
	pattern := "%" + strings.ToLower(query) + "%"
	var jobs []model.Job
	err := r.db.WithContext(ctx).
		Where("LOWER(title) LIKE ? OR LOWER(description) LIKE ? OR LOWER(category) LIKE ?", pattern, pattern, pattern).
		Order("created_at DESC").
		Find(&jobs).Error
	if err != nil {
		return nil, err
	}
	return jobs, nil
}
