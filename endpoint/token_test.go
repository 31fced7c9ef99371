package endpoint

import (
	"encoding/json"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dandrevielma/visoria-anesthesic-backend/model"
)

func TestResolveFormToken(t *testing.T) {
	db := setupEndpointTest(t)
	router := newTestRouter(db)
	patient := createTestPatient(t, db)
	record := createTestRecord(t, db, patient.ID, model.RecordTypeSedation)

	w := performRequest(t, router, http.MethodGet, "/api/forms/token/"+record.FormLinkToken, "", nil)
	require.Equal(t, http.StatusOK, w.Code)

	body := decodeBody(t, w)
	got, ok := body["record"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, record.RecordNumber, got["record_number"])
	gotPatient, ok := body["patient"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, patient.IdentificationNumber, gotPatient["identification_number"])
}

func TestResolveFormToken_Unknown(t *testing.T) {
	db := setupEndpointTest(t)
	router := newTestRouter(db)

	w := performRequest(t, router, http.MethodGet, "/api/forms/token/0000000000000000000000000000000000000000000000000000000000000000", "", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "Record not found")
}

func TestGetRecordActivity(t *testing.T) {
	db := setupEndpointTest(t)
	router := newTestRouter(db)
	user := createTestUser(t, db, "Front Desk")
	token := openTestSession(t, db, user)
	patient := createTestPatient(t, db)

	w := performRequest(t, router, http.MethodPost, "/api/records", token, model.CreateRecordRequest{
		PatientID: patient.ID,
		Type:      model.RecordTypeSedation,
	})
	require.Equal(t, http.StatusCreated, w.Code)

	var record model.Record
	require.NoError(t, db.Where("patient_id = ?", patient.ID).First(&record).Error)

	notes := "Preparar ayuno"
	w = performRequest(t, router, http.MethodPut, fmt.Sprintf("/api/records/%d", record.ID), token,
		model.UpdateRecordRequest{Notes: &notes})
	require.Equal(t, http.StatusOK, w.Code)

	w = performRequest(t, router, http.MethodGet, fmt.Sprintf("/api/records/%d/activity", record.ID), token, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var entries []model.ActivityLog
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &entries))
	require.Len(t, entries, 2)
	actions := []string{entries[0].Action, entries[1].Action}
	assert.Contains(t, actions, model.ActivityRecordCreated)
	assert.Contains(t, actions, model.ActivityRecordUpdated)
	for _, entry := range entries {
		require.NotNil(t, entry.UserID)
		assert.Equal(t, user.ID, *entry.UserID)
	}
}

func TestGetRecordActivity_RecordNotFound(t *testing.T) {
	db := setupEndpointTest(t)
	router := newTestRouter(db)
	token := openTestSession(t, db, createTestUser(t, db, "Front Desk"))

	w := performRequest(t, router, http.MethodGet, "/api/records/9999/activity", token, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}
