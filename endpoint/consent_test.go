package endpoint

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dandrevielma/visoria-anesthesic-backend/model"
)

func consentPath(recordID uint) string {
	return fmt.Sprintf("/api/records/%d/consent", recordID)
}

func TestAcceptConsent(t *testing.T) {
	db := setupEndpointTest(t)
	router := newTestRouter(db)
	patient := createTestPatient(t, db)
	record := createTestRecord(t, db, patient.ID, model.RecordTypeSedation)

	w := performRequest(t, router, http.MethodPost, consentPath(record.ID), "", model.AcceptConsentRequest{
		ConsentText:     "Acepto el procedimiento descrito.",
		PatientName:     patient.FullName(),
		PatientIDNumber: patient.IdentificationNumber,
		SignatureData:   "data:image/png;base64,iVBOR",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	body := decodeBody(t, w)
	assert.Equal(t, true, body["is_accepted"])
	assert.NotNil(t, body["signed_at"])

	var reloaded model.Record
	require.NoError(t, db.First(&reloaded, record.ID).Error)
	assert.True(t, reloaded.ConsentAccepted)

	var activity model.ActivityLog
	require.NoError(t, db.Where("record_id = ? AND action = ?", record.ID, model.ActivityConsentAccepted).First(&activity).Error)
}

func TestAcceptConsent_SecondAcceptanceConflicts(t *testing.T) {
	db := setupEndpointTest(t)
	router := newTestRouter(db)
	patient := createTestPatient(t, db)
	record := createTestRecord(t, db, patient.ID, model.RecordTypeSedation)

	w := performRequest(t, router, http.MethodPost, consentPath(record.ID), "", model.AcceptConsentRequest{
		PatientName: patient.FullName(),
	})
	require.Equal(t, http.StatusCreated, w.Code)

	w = performRequest(t, router, http.MethodPost, consentPath(record.ID), "", model.AcceptConsentRequest{
		PatientName: patient.FullName(),
	})
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Contains(t, w.Body.String(), "Consent already accepted")

	var count int64
	require.NoError(t, db.Model(&model.Consent{}).Where("record_id = ?", record.ID).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestAcceptConsent_RecordNotFound(t *testing.T) {
	db := setupEndpointTest(t)
	router := newTestRouter(db)

	w := performRequest(t, router, http.MethodPost, consentPath(9999), "", model.AcceptConsentRequest{})
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "Record not found")
}

func TestGetConsent(t *testing.T) {
	db := setupEndpointTest(t)
	router := newTestRouter(db)
	patient := createTestPatient(t, db)
	record := createTestRecord(t, db, patient.ID, model.RecordTypeSurgical)

	w := performRequest(t, router, http.MethodGet, consentPath(record.ID), "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	body := decodeBody(t, w)
	assert.Equal(t, false, body["consent_accepted"])
	assert.Nil(t, body["consent"])

	performRequest(t, router, http.MethodPost, consentPath(record.ID), "", model.AcceptConsentRequest{})

	w = performRequest(t, router, http.MethodGet, consentPath(record.ID), "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	body = decodeBody(t, w)
	assert.Equal(t, true, body["consent_accepted"])
	assert.NotNil(t, body["consent"])
}
