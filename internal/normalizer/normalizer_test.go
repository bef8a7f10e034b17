package normalizer

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"jobsite/internal/errors"
	"jobsite/internal/model"
)

func validPayload() *JobPayload {
	return &JobPayload{
		Title:        "Logo Design",
		Description:  "Need a logo",
		Category:     "Creative & Design",
		JobType:      "remote",
		PaymentType:  "fixed",
		ContactEmail: "a@b.com",
	}
}

func TestJob_RequiredFields(t *testing.T) {
	tests := []struct {
		field string
		mutf  func(*JobPayload)
	}{
		{"title", func(p *JobPayload) { p.Title = "" }},
		{"description", func(p *JobPayload) { p.Description = "   " }},
		{"category", func(p *JobPayload) { p.Category = "" }},
		{"jobType", func(p *JobPayload) { p.JobType = "" }},
		{"paymentType", func(p *JobPayload) { p.PaymentType = "" }},
		{"contact_email", func(p *JobPayload) { p.ContactEmail = "" }},
	}

	for _, tt := range tests {
		t.Run(tt.field, func(t *testing.T) {
			p := validPayload()
			tt.mutf(p)

			job, err := Job(p)
			assert.Nil(t, job)

			var ve *errors.ValidationError
			assert.ErrorAs(t, err, &ve)
			assert.Equal(t, tt.field, ve.Field)
		})
	}
}

func TestJob_Defaults(t *testing.T) {
	job, err := Job(validPayload())
	assert.NoError(t, err)

	assert.Equal(t, model.StringList{}, job.Skills)
	assert.Equal(t, model.StringList{}, job.ScreeningQuestions)
	assert.Nil(t, job.Location)
	assert.Nil(t, job.Duration)
	assert.Nil(t, job.Currency)
	assert.Nil(t, job.StartDate)
	assert.Nil(t, job.Deadline)
	assert.Nil(t, job.MinBudget)
	assert.Nil(t, job.MaxBudget)
	assert.False(t, job.TermsAccepted)
}

func TestJob_SequencesPreserveOrder(t *testing.T) {
	p := validPayload()
	p.Skills = []string{"Illustrator", "Branding", "Figma"}
	p.ScreeningQuestions = []string{"Portfolio?", "Availability?"}

	job, err := Job(p)
	assert.NoError(t, err)
	assert.Equal(t, model.StringList{"Illustrator", "Branding", "Figma"}, job.Skills)
	assert.Equal(t, model.StringList{"Portfolio?", "Availability?"}, job.ScreeningQuestions)
}

func TestOptionalAmount(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		want    string
		wantErr bool
	}{
		{name: "absent", raw: ""},
		{name: "null", raw: "null"},
		{name: "empty string", raw: `""`},
		{name: "json number", raw: `50`, want: "50"},
		{name: "json decimal", raw: `199.99`, want: "199.99"},
		{name: "numeric string", raw: `"200"`, want: "200"},
		{name: "zero allowed", raw: `0`, want: "0"},
		{name: "negative rejected", raw: `-5`, wantErr: true},
		{name: "garbage string", raw: `"a lot"`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := OptionalAmount("minBudget", json.RawMessage(tt.raw))
			if tt.wantErr {
				var ve *errors.ValidationError
				assert.ErrorAs(t, err, &ve)
				assert.Nil(t, got)
				return
			}
			assert.NoError(t, err)
			if tt.want == "" {
				assert.Nil(t, got)
				return
			}
			want, _ := decimal.NewFromString(tt.want)
			assert.True(t, got.Equal(want), "got %s want %s", got, want)
		})
	}
}

func TestOptionalDate(t *testing.T) {
	got, err := OptionalDate("startDate", "2026-03-15")
	assert.NoError(t, err)
	assert.Equal(t, time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC), *got)

	got, err = OptionalDate("startDate", "2026-03-15T09:30:00Z")
	assert.NoError(t, err)
	assert.Equal(t, 9, got.Hour())

	got, err = OptionalDate("deadline", "")
	assert.NoError(t, err)
	assert.Nil(t, got)

	_, err = OptionalDate("deadline", "next tuesday")
	var ve *errors.ValidationError
	assert.ErrorAs(t, err, &ve)
	assert.Equal(t, "deadline", ve.Field)
}

func TestBoolean(t *testing.T) {
	assert.False(t, Boolean(nil))
	assert.False(t, Boolean(json.RawMessage(`null`)))
	assert.False(t, Boolean(json.RawMessage(`false`)))
	assert.False(t, Boolean(json.RawMessage(`"nope"`)))
	assert.True(t, Boolean(json.RawMessage(`true`)))
	assert.True(t, Boolean(json.RawMessage(`"true"`)))
	assert.True(t, Boolean(json.RawMessage(`1`)))
}

func TestOptionalText(t *testing.T) {
	assert.Nil(t, OptionalText(""))
	assert.Nil(t, OptionalText("  "))
	got := OptionalText(" Berlin ")
	assert.Equal(t, "Berlin", *got)
}

// The posting scenario from the frontend: budgets arrive as strings and must
// come out numeric.
func TestJob_BudgetStringsCoerced(t *testing.T) {
	p := validPayload()
	p.MinBudget = json.RawMessage(`"50"`)
	p.MaxBudget = json.RawMessage(`"200"`)

	job, err := Job(p)
	assert.NoError(t, err)
	assert.True(t, job.MinBudget.Equal(decimal.NewFromInt(50)))
	assert.True(t, job.MaxBudget.Equal(decimal.NewFromInt(200)))
}
