package model

import (
	"time"

	"github.com/shopspring/decimal"
)

func init() {
	// Budgets go over the wire as JSON numbers, not quoted strings.
	decimal.MarshalJSONWithoutQuotes = true
}

// Job represents a posted listing. Records are immutable after creation:
// there is no update or delete path, only create, list, get, and search.
type Job struct {
	ID                 uint             `json:"id" gorm:"primaryKey"`
	Title              string           `json:"title" gorm:"size:255;not null"`
	Description        string           `json:"description" gorm:"type:text;not null"`
	Category           string           `json:"category" gorm:"size:255;not null"`
	Skills             StringList       `json:"skills" gorm:"type:text"`
	JobType            string           `json:"job_type" gorm:"size:100;not null"`
	Location           *string          `json:"location" gorm:"size:255"`
	Duration           *string          `json:"duration" gorm:"size:100"`
	StartDate          *time.Time       `json:"start_date"`
	PaymentType        string           `json:"payment_type" gorm:"size:100;not null"`
	MinBudget          *decimal.Decimal `json:"min_budget" gorm:"type:decimal(12,2)"`
	MaxBudget          *decimal.Decimal `json:"max_budget" gorm:"type:decimal(12,2)"`
	Currency           *string          `json:"currency" gorm:"size:10"`
	ContactEmail       string           `json:"contact_email" gorm:"size:255;not null"`
	Deadline           *time.Time       `json:"deadline"`
	ScreeningQuestions StringList       `json:"screening_questions" gorm:"type:text"`
	TermsAccepted      bool             `json:"terms_accepted" gorm:"not null;default:false"`
	CreatedAt          time.Time        `json:"created_at"`
}
