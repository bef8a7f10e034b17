// Package normalizer coerces wire payloads into storage-ready values.
package normalizer

import (
	"encoding/json"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"jobsite/internal/errors"
	"jobsite/internal/model"
)

// JobPayload is the wire shape of a job posting. Budget and terms fields are
// kept as raw JSON because the frontend sends them as numbers or strings
// depending on form state.
type JobPayload struct {
	Title              string          `json:"title"`
	Description        string          `json:"description"`
	Category           string          `json:"category"`
	Skills             []string        `json:"skills"`
	JobType            string          `json:"jobType"`
	Location           string          `json:"location"`
	Duration           string          `json:"duration"`
	StartDate          string          `json:"startDate"`
	PaymentType        string          `json:"paymentType"`
	MinBudget          json.RawMessage `json:"minBudget" swaggertype:"number"`
	MaxBudget          json.RawMessage `json:"maxBudget" swaggertype:"number"`
	Currency           string          `json:"currency"`
	ContactEmail       string          `json:"contact_email"`
	Deadline           string          `json:"deadline"`
	ScreeningQuestions []string        `json:"screeningQuestions"`
	TermsAccepted      json.RawMessage `json:"termsAccepted" swaggertype:"boolean"`
}

var dateLayouts = []string{"2006-01-02", time.RFC3339}

// Job coerces a payload into a storage-ready record, failing on the first
// invalid field.
func Job(p *JobPayload) (*model.Job, error) {
	job := &model.Job{
		Skills:             Sequence(p.Skills),
		ScreeningQuestions: Sequence(p.ScreeningQuestions),
		Location:           OptionalText(p.Location),
		Duration:           OptionalText(p.Duration),
		Currency:           OptionalText(p.Currency),
		TermsAccepted:      Boolean(p.TermsAccepted),
	}

	var err error
	if job.Title, err = RequiredText("title", p.Title); err != nil {
		return nil, err
	}
	if job.Description, err = RequiredText("description", p.Description); err != nil {
		return nil, err
	}
	if job.Category, err = RequiredText("category", p.Category); err != nil {
		return nil, err
	}
	if job.JobType, err = RequiredText("jobType", p.JobType); err != nil {
		return nil, err
	}
	if job.PaymentType, err = RequiredText("paymentType", p.PaymentType); err != nil {
		return nil, err
	}
	if job.ContactEmail, err = RequiredText("contact_email", p.ContactEmail); err != nil {
		return nil, err
	}
	if job.StartDate, err = OptionalDate("startDate", p.StartDate); err != nil {
		return nil, err
	}
	if job.Deadline, err = OptionalDate("deadline", p.Deadline); err != nil {
		return nil, err
	}
	if job.MinBudget, err = OptionalAmount("minBudget", p.MinBudget); err != nil {
		return nil, err
	}
	if job.MaxBudget, err = OptionalAmount("maxBudget", p.MaxBudget); err != nil {
		return nil, err
	}
	return job, nil
}

// RequiredText rejects absent or blank values.
func RequiredText(field, v string) (string, error) {
	v = strings.TrimSpace(v)
	if v == "" {
		return "", errors.NewValidationError(field, "is required")
	}
	return v, nil
}

// OptionalText stores blank as absent, never as the empty string.
func OptionalText(v string) *string {
	v = strings.TrimSpace(v)
	if v == "" {
		return nil
	}
	return &v
}

// Sequence treats an absent sequence as empty, preserving element order.
func Sequence(v []string) model.StringList {
	if v == nil {
		return model.StringList{}
	}
	return model.StringList(v)
}

// OptionalDate parses a calendar date, treating blank as absent.
func OptionalDate(field, v string) (*time.Time, error) {
	v = strings.TrimSpace(v)
	if v == "" {
		return nil, nil
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, v); err == nil {
			return &t, nil
		}
	}
	return nil, errors.NewValidationError(field, "is not a valid date")
}

// OptionalAmount parses a non-negative amount from a JSON number or a numeric
// string, treating blank and null as absent.
func OptionalAmount(field string, raw json.RawMessage) (*decimal.Decimal, error) {
	s := rawText(raw)
	if s == "" {
		return nil, nil
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return nil, errors.NewValidationError(field, "is not a valid number")
	}
	if d.IsNegative() {
		return nil, errors.NewValidationError(field, "must not be negative")
	}
	return &d, nil
}

// Boolean treats absent and null as false and otherwise coerces JSON booleans
// and their common textual spellings.
func Boolean(raw json.RawMessage) bool {
	b, err := strconv.ParseBool(rawText(raw))
	return err == nil && b
}

// rawText unwraps a raw JSON scalar to its text content; absent and null both
// come back empty.
func rawText(raw json.RawMessage) string {
	s := strings.TrimSpace(string(raw))
	if s == "" || s == "null" {
		return ""
	}
	if strings.HasPrefix(s, `"`) {
		var out string
		if err := json.Unmarshal(raw, &out); err != nil {
			return ""
		}
		return strings.TrimSpace(out)
	}
	return s
}
