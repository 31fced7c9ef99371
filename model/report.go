package model

import "gorm.io/gorm"

// MedicalReport is the doctor's freeform write-up for a record. One per
// record, upsert semantics.
type MedicalReport struct {
	gorm.Model
	RecordID uint   `json:"record_id" gorm:"uniqueIndex;not null"`
	Content  string `json:"content" gorm:"type:text;not null"`
}

// Recipe is the prescription text for a record. One per record, upsert
// semantics (historically "recipe", the Spanish récipe).
type Recipe struct {
	gorm.Model
	RecordID uint   `json:"record_id" gorm:"uniqueIndex;not null"`
	Content  string `json:"content" gorm:"type:text;not null"`
}
