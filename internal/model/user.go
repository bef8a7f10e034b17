package model

import "time"

// User represents a job-board account.
type User struct {
	ID           uint      `json:"id" gorm:"primaryKey"`
	FirstName    string    `json:"first_name" gorm:"size:255;not null"`
	LastName     string    `json:"last_name" gorm:"size:255;not null"`
	Email        string    `json:"email" gorm:"uniqueIndex;size:255;not null"`
	Phone        *string   `json:"phone" gorm:"size:50"`
	PasswordHash string    `json:"-" gorm:"size:255;not null"` // Never expose in JSON
	ProfilePic   *string   `json:"profile_pic" gorm:"size:512"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// PublicUser is the wire shape returned by login and profile lookups. Field
// names follow the frontend's camelCase convention.
type PublicUser struct {
	ID         uint    `json:"id"`
	FirstName  string  `json:"firstName"`
	LastName   string  `json:"lastName"`
	Email      string  `json:"email"`
	Phone      *string `json:"phone"`
	ProfilePic *string `json:"profilePic"`
}

// Public strips the credential fields.
func (u *User) Public() *PublicUser {
	return &PublicUser{
		ID:         u.ID,
		FirstName:  u.FirstName,
		LastName:   u.LastName,
		Email:      u.Email,
		Phone:      u.Phone,
		ProfilePic: u.ProfilePic,
	}
}
