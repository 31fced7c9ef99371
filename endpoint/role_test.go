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

func TestAssignRole(t *testing.T) {
	db := setupEndpointTest(t)
	router := newTestRouter(db)
	token := openTestSession(t, db, createTestUser(t, db, "Admin", model.RoleAdmin))
	target := createTestUser(t, db, "Nuevo Doctor")

	w := performRequest(t, router, http.MethodPost, "/api/roles", token, model.AssignRoleRequest{
		UserID: target.ID,
		Role:   model.RoleDoctor,
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	has, err := model.UserHasRole(db, target.ID, model.RoleDoctor)
	require.NoError(t, err)
	assert.True(t, has)
}

func TestAssignRole_Duplicate(t *testing.T) {
	db := setupEndpointTest(t)
	router := newTestRouter(db)
	token := openTestSession(t, db, createTestUser(t, db, "Admin", model.RoleAdmin))
	target := createTestUser(t, db, "Dr. Rivas", model.RoleDoctor)

	w := performRequest(t, router, http.MethodPost, "/api/roles", token, model.AssignRoleRequest{
		UserID: target.ID,
		Role:   model.RoleDoctor,
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Role already assigned")
}

func TestAssignRole_InvalidRole(t *testing.T) {
	db := setupEndpointTest(t)
	router := newTestRouter(db)
	token := openTestSession(t, db, createTestUser(t, db, "Admin", model.RoleAdmin))
	target := createTestUser(t, db, "Alguien")

	w := performRequest(t, router, http.MethodPost, "/api/roles", token, model.AssignRoleRequest{
		UserID: target.ID,
		Role:   "superuser",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Invalid role")
}

func TestAssignRole_UnknownUser(t *testing.T) {
	db := setupEndpointTest(t)
	router := newTestRouter(db)
	token := openTestSession(t, db, createTestUser(t, db, "Admin", model.RoleAdmin))

	w := performRequest(t, router, http.MethodPost, "/api/roles", token, model.AssignRoleRequest{
		UserID: 9999,
		Role:   model.RoleDoctor,
	})
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "User not found")
}

func TestGetUserRoles(t *testing.T) {
	db := setupEndpointTest(t)
	router := newTestRouter(db)
	token := openTestSession(t, db, createTestUser(t, db, "Admin", model.RoleAdmin))
	target := createTestUser(t, db, "Dr. Admin", model.RoleAdmin, model.RoleDoctor)

	w := performRequest(t, router, http.MethodGet, fmt.Sprintf("/api/roles/%d", target.ID), token, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var roles []model.UserRole
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &roles))
	require.Len(t, roles, 2)

	// Unknown user: empty list, not an error.
	w = performRequest(t, router, http.MethodGet, "/api/roles/9999", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	roles = nil
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &roles))
	assert.Empty(t, roles)
}

func TestCheckUserRole(t *testing.T) {
	db := setupEndpointTest(t)
	router := newTestRouter(db)
	token := openTestSession(t, db, createTestUser(t, db, "Admin", model.RoleAdmin))
	target := createTestUser(t, db, "Dr. Rivas", model.RoleDoctor)

	w := performRequest(t, router, http.MethodGet,
		fmt.Sprintf("/api/roles/user/%d/check?role=doctor", target.ID), token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	body := decodeBody(t, w)
	assert.Equal(t, true, body["has_role"])

	w = performRequest(t, router, http.MethodGet,
		fmt.Sprintf("/api/roles/user/%d/check?role=admin", target.ID), token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	body = decodeBody(t, w)
	assert.Equal(t, false, body["has_role"])

	w = performRequest(t, router, http.MethodGet,
		fmt.Sprintf("/api/roles/user/%d/check?role=superuser", target.ID), token, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestRemoveRole(t *testing.T) {
	db := setupEndpointTest(t)
	router := newTestRouter(db)
	token := openTestSession(t, db, createTestUser(t, db, "Admin", model.RoleAdmin))
	target := createTestUser(t, db, "Dr. Rivas", model.RoleDoctor)

	var assignment model.UserRole
	require.NoError(t, db.Where("user_id = ?", target.ID).First(&assignment).Error)

	w := performRequest(t, router, http.MethodDelete, fmt.Sprintf("/api/roles/%d", assignment.ID), token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Role removed")

	has, err := model.UserHasRole(db, target.ID, model.RoleDoctor)
	require.NoError(t, err)
	assert.False(t, has)

	w = performRequest(t, router, http.MethodDelete, fmt.Sprintf("/api/roles/%d", assignment.ID), token, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "Role assignment not found")
}
