package model

import "gorm.io/gorm"

// Patient represents a patient identity record
// @Description Patient identity information
type Patient struct {
	gorm.Model
	IdentificationNumber string `json:"identification_number" gorm:"uniqueIndex;size:64;not null" example:"V-12345678"`
	FirstName            string `json:"first_name" gorm:"not null" example:"Maria"`
	LastName             string `json:"last_name" gorm:"not null" example:"Gonzalez"`
	Email                string `json:"email" example:"maria@example.com"`
	Phone                string `json:"phone" example:"+584121234567"`
	DateOfBirth          string `json:"date_of_birth" example:"1985-04-23"`
}

// UpdatePatientRequest represents a partial patient update
// @Description Patient update information, only provided fields change
type UpdatePatientRequest struct {
	IdentificationNumber string  `json:"identification_number,omitempty"`
	FirstName            string  `json:"first_name,omitempty"`
	LastName             string  `json:"last_name,omitempty"`
	Email                *string `json:"email,omitempty"`
	Phone                *string `json:"phone,omitempty"`
	DateOfBirth          *string `json:"date_of_birth,omitempty"`
}

// FullName returns the patient's display name used in emails and reports.
func (p Patient) FullName() string {
	return p.FirstName + " " + p.LastName
}
