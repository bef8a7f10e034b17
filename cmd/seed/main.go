// Seed inserts a set of sample job listings for local development.
package main

import (
	"context"
	"encoding/json"
	"log"

	"github.com/joho/godotenv"

	"jobsite/internal/config"
	"jobsite/internal/db"
	"jobsite/internal/model"
	"jobsite/internal/normalizer"
	"jobsite/internal/repository"
	"jobsite/internal/service"
)

var sampleJobs = []normalizer.JobPayload{
	{
		Title:        "Logo Design",
		Description:  "Need a logo for a coffee subscription startup",
		Category:     "Creative & Design",
		Skills:       []string{"Illustrator", "Branding"},
		JobType:      "remote",
		PaymentType:  "fixed",
		ContactEmail: "founder@brewbox.example",
		MinBudget:    json.RawMessage(`50`),
		MaxBudget:    json.RawMessage(`200`),
		Currency:     "USD",
	},
	{
		Title:              "Backend Developer",
		Description:        "REST API work on an existing Go service",
		Category:           "Web Development",
		Skills:             []string{"Go", "PostgreSQL"},
		JobType:            "remote",
		Duration:           "3 months",
		PaymentType:        "hourly",
		ContactEmail:       "cto@acme.example",
		MinBudget:          json.RawMessage(`"30"`),
		MaxBudget:          json.RawMessage(`"60"`),
		Currency:           "USD",
		ScreeningQuestions: []string{"Years of Go experience?", "Have you worked with GORM?"},
		TermsAccepted:      json.RawMessage(`true`),
	},
	{
		Title:        "Content Writer",
		Description:  "Weekly blog posts about personal finance",
		Category:     "Writing & Translation",
		JobType:      "remote",
		PaymentType:  "fixed",
		ContactEmail: "editor@pennywise.example",
		Location:     "Anywhere",
	},
}

func main() {
	log.Println("Starting seed script...")

	if err := godotenv.Load(); err != nil {
		log.Println("no .env file, relying on process environment")
	}
	cfg := config.Load()

	gormDB, err := db.NewPostgres(cfg.PostgresDSN)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	log.Println("Connected to database")

	if err := gormDB.AutoMigrate(&model.User{}, &model.Job{}); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}
	log.Println("Database migrations completed")

	jobService := service.NewJobService(repository.NewJobRepository(gormDB))

	ctx := context.Background()
	seeded := 0
	for i := range sampleJobs {
		job, err := jobService.Post(ctx, &sampleJobs[i])
		if err != nil {
			log.Fatalf("Failed to seed job %q: %v", sampleJobs[i].Title, err)
		}
		log.Printf("Seeded job %q (id=%d)", job.Title, job.ID)
		seeded++
	}

	log.Printf("Seed completed successfully! %d jobs created", seeded)
}
