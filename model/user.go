package model

import (
	"time"

	"gorm.io/gorm"
)

// User is a staff account (admin or doctor). Patients are not users;
// they reach their questionnaire through the record's form link token.
type User struct {
	gorm.Model
	Name     string `json:"name" gorm:"not null" example:"Dr. Rivas"`
	Email    string `json:"email" gorm:"uniqueIndex;size:191;not null" example:"rivas@clinic.com"`
	Password string `json:"-" gorm:"not null"`
}

// Session is one authenticated login. The session token doubles as the
// JWT handed to the client; the row lets the server revoke it.
type Session struct {
	gorm.Model
	UserID       uint      `json:"user_id" gorm:"index;not null"`
	SessionToken string    `json:"session_token" gorm:"uniqueIndex;size:512;not null"`
	ExpiresAt    time.Time `json:"expires_at"`
	ClientIP     string    `json:"client_ip" gorm:"size:45"`
	Browser      string    `json:"browser" gorm:"size:512"`
}
