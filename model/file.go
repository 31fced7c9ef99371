package model

import "gorm.io/gorm"

// File types accepted for patient document uploads.
const (
	FileTypePrescription  = "prescription"
	FileTypeLabResult     = "lab_result"
	FileTypeImaging       = "imaging"
	FileTypeECG           = "ecg"
	FileTypeMedicalReport = "medical_report"
	FileTypeOther         = "other"
)

var fileTypes = []string{
	FileTypePrescription,
	FileTypeLabResult,
	FileTypeImaging,
	FileTypeECG,
	FileTypeMedicalReport,
	FileTypeOther,
}

// ValidFileType reports whether t is a known file type.
func ValidFileType(t string) bool {
	for _, v := range fileTypes {
		if v == t {
			return true
		}
	}
	return false
}

// PatientFile is the metadata row for an uploaded patient document.
// Files belong to the patient and optionally reference the record whose
// workflow produced the upload; they outlive record deletion. Removal is
// a soft delete (gorm DeletedAt), so listings only ever return live rows.
type PatientFile struct {
	gorm.Model
	PatientID   uint   `json:"patient_id" gorm:"index;not null"`
	RecordID    *uint  `json:"record_id" gorm:"index"`
	FileType    string `json:"file_type" gorm:"size:32;not null"`
	FileName    string `json:"file_name" gorm:"not null"`
	FileSize    int64  `json:"file_size" gorm:"not null"`
	MimeType    string `json:"mime_type" gorm:"size:128;not null"`
	StoragePath string `json:"storage_path" gorm:"not null"`
	StorageURL  string `json:"storage_url"`
	Description string `json:"description"`
	UploadedBy  *uint  `json:"uploaded_by"`
}
