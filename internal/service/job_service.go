package service

import (
	"context"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"jobsite/internal/errors"
	"jobsite/internal/model"
	"jobsite/internal/normalizer"
	"jobsite/internal/repository"
)

// JobService exposes the job board's posting and browsing operations.
type JobService interface {
	Post(ctx context.Context, payload *normalizer.JobPayload) (*model.Job, error)
	List(ctx context.Context) ([]model.Job, error)
	Get(ctx context.Context, id uint) (*model.Job, error)
	Search(ctx context.Context, query string) ([]model.Job, error)
}

type jobService struct {
	jobs repository.JobRepository
}

// NewJobService creates a new job service.
func NewJobService(jobs repository.JobRepository) JobService {
	return &jobService{jobs: jobs}
}

// Post normalizes the payload and persists one new job. Nothing is written
// when normalization fails.
func (s *jobService) Post(ctx context.Context, payload *normalizer.JobPayload) (*model.Job, error) {
	job, err := normalizer.Job(payload)
	if err != nil {
		return nil, err
	}
	if err := s.jobs.Create(ctx, job); err != nil {
		return nil, fmt.Errorf("create job: %w", err)
	}
	return job, nil
}

// List returns all jobs, most recently posted first.
func (s *jobService) List(ctx context.Context) ([]model.Job, error) {
	jobs, err := s.jobs.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list jobs: %w", err)
	}
	if jobs == nil {
		jobs = []model.Job{}
	}
	return jobs, nil
}

// Get returns one job by id.
func (s *jobService) Get(ctx context.Context, id uint) (*model.Job, error) {
	job, err := s.jobs.FindByID(ctx, id)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.ErrJobNotFound
		}
		return nil, fmt.Errorf("find job: %w", err)
	}
	return job, nil
}

// Search returns substring matches across title, description, and category.
// A blank query and a query with no matches both yield an empty slice, never
// an error.
func (s *jobService) Search(ctx context.Context, query string) ([]model.Job, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return []model.Job{}, nil
	}
	jobs, err := s.jobs.Search(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("search jobs: %w", err)
	}
	if jobs == nil {
		jobs = []model.Job{}
	}
	return jobs, nil
}
