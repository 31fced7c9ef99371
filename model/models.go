package model

// AllModels returns every model migrated at startup and in tests, in
// dependency order.
func AllModels() []interface{} {
	return []interface{}{
		&User{},
		&Session{},
		&UserRole{},
		&Patient{},
		&Record{},
		&RecordCounter{},
		&PatientRecordForm{},
		&DoctorEvaluation{},
		&Consent{},
		&MedicalReport{},
		&Recipe{},
		&PatientFile{},
		&EmailLog{},
		&ActivityLog{},
	}
}
