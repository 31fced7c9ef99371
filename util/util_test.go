package util

import (
	"context"
	"fmt"
	"regexp"
	"testing"
	"time"

	"github.com/go-redis/redismock/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/dandrevielma/visoria-anesthesic-backend/config"
	"github.com/dandrevielma/visoria-anesthesic-backend/model"
)

func newUtilTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:testdb_util_%d?mode=memory&cache=shared", time.Now().UnixNano())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&model.EmailLog{}, &model.ActivityLog{}))
	return db
}

func TestHashPassword_DeterministicPerSecret(t *testing.T) {
	SetJWTSecret("secret-a")
	first := HashPassword("password123")
	second := HashPassword("password123")
	assert.Equal(t, first, second)
	assert.NotEqual(t, first, HashPassword("password124"))

	SetJWTSecret("secret-b")
	assert.NotEqual(t, first, HashPassword("password123"))
	SetJWTSecret("secret-a")
	assert.Equal(t, first, HashPassword("password123"))
}

func TestGetJWTSecretByte_ReturnsCopy(t *testing.T) {
	SetJWTSecret("immutable")
	raw := GetJWTSecretByte()
	raw[0] = 'X'
	assert.Equal(t, []byte("immutable"), GetJWTSecretByte())
}

func TestNewFormLinkToken(t *testing.T) {
	hexPattern := regexp.MustCompile(`^[0-9a-f]{64}$`)
	seen := map[string]bool{}
	for i := 0; i < 20; i++ {
		token, err := NewFormLinkToken()
		require.NoError(t, err)
		assert.Regexp(t, hexPattern, token)
		assert.False(t, seen[token], "tokens must not repeat")
		seen[token] = true
	}
}

func TestBuildFormLink(t *testing.T) {
	cfg := &config.Config{WebsiteURL: "https://app.visoria.medical"}
	link := BuildFormLink(cfg, "abc123")
	assert.Equal(t, "https://app.visoria.medical/patient-form/abc123", link)
}

func TestTemplatesCarryRecipientData(t *testing.T) {
	completed := QuestionnaireCompletedTemplate("maria@example.test", "Maria Gonzalez")
	assert.Contains(t, completed, "Maria Gonzalez")
	assert.Contains(t, completed, "maria@example.test")

	link := FormLinkTemplate("Maria Gonzalez", "https://app.visoria.medical/patient-form/abc")
	assert.Contains(t, link, "Maria Gonzalez")
	assert.Contains(t, link, "https://app.visoria.medical/patient-form/abc")
}

type stubSender struct {
	sent []string
	err  error
}

func (s *stubSender) SendEmail(_ context.Context, to, _, _ string) error {
	if s.err != nil {
		return s.err
	}
	s.sent = append(s.sent, to)
	return nil
}

func TestSendQuestionnaireCompletedEmail(t *testing.T) {
	db := newUtilTestDB(t)
	sender := &stubSender{}
	SetEmailSender(sender)
	t.Cleanup(func() { SetEmailSender(nil) })

	record := model.Record{PatientID: 1}
	record.ID = 7
	patient := model.Patient{FirstName: "Maria", LastName: "Gonzalez", Email: "maria@example.test"}

	SendQuestionnaireCompletedEmail(db, CompletionEmailParams{Record: record, Patient: patient})
	require.Equal(t, []string{"maria@example.test"}, sender.sent)

	var entry model.EmailLog
	require.NoError(t, db.Where("record_id = ?", record.ID).First(&entry).Error)
	assert.Equal(t, model.EmailTypeCompletion, entry.Type)
	assert.NotNil(t, entry.SentAt)
	assert.NotEmpty(t, entry.MessageID)
}

func TestSendQuestionnaireCompletedEmail_NoRecipient(t *testing.T) {
	db := newUtilTestDB(t)
	sender := &stubSender{}
	SetEmailSender(sender)
	t.Cleanup(func() { SetEmailSender(nil) })

	SendQuestionnaireCompletedEmail(db, CompletionEmailParams{
		Record:  model.Record{},
		Patient: model.Patient{FirstName: "Sin", LastName: "Correo"},
	})
	assert.Empty(t, sender.sent)

	var count int64
	require.NoError(t, db.Model(&model.EmailLog{}).Count(&count).Error)
	assert.Equal(t, int64(0), count)
}

func TestSendFormLinkEmail_DisabledDeliveryStillLogged(t *testing.T) {
	db := newUtilTestDB(t)
	SetEmailSender(nil)

	record := model.Record{PatientID: 1}
	record.ID = 9
	SendFormLinkEmail(db, FormLinkEmailParams{
		Record:   record,
		Patient:  model.Patient{FirstName: "Maria", LastName: "Gonzalez", Email: "maria@example.test"},
		FormLink: "https://app.visoria.medical/patient-form/abc",
	})

	var entry model.EmailLog
	require.NoError(t, db.Where("record_id = ?", record.ID).First(&entry).Error)
	assert.Equal(t, model.EmailTypeFormLink, entry.Type)
	assert.Nil(t, entry.SentAt)
	assert.Equal(t, "email delivery disabled", entry.ErrorMessage)
}

func TestLogActivity_PersistsEntry(t *testing.T) {
	db := newUtilTestDB(t)
	SetActivityLoggerDB(db)
	t.Cleanup(func() { SetActivityLoggerDB(nil) })

	recordID := uint(4)
	LogActivity(ActivityEvent{
		RecordID:  &recordID,
		Action:    model.ActivityRecordCreated,
		NewValue:  map[string]interface{}{"record_number": "REC-2026-0001"},
		IP:        "192.168.1.1\ninjected",
		UserAgent: "test-agent",
	})

	var entry model.ActivityLog
	require.NoError(t, db.Where("record_id = ?", recordID).First(&entry).Error)
	assert.Equal(t, model.ActivityRecordCreated, entry.Action)
	assert.NotContains(t, entry.IPAddress, "\n")
	assert.Contains(t, string(entry.NewValue), "REC-2026-0001")
}

func TestLogActivity_WithoutDBDoesNotPanic(t *testing.T) {
	SetActivityLoggerDB(nil)
	LogActivity(ActivityEvent{Action: model.ActivityRecordDeleted})
}

func TestAddAndRemoveSessionFromUserSet(t *testing.T) {
	client, mock := redismock.NewClientMock()
	config.SetRedisClientForTest(client)
	t.Cleanup(config.ResetRedisClientForTest)

	key := "user_sessions:3"
	mock.ExpectSAdd(key, "tok").SetVal(1)
	mock.ExpectPersist(key).SetVal(true)
	require.NoError(t, AddSessionToUserSet(3, "tok"))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestSessionHelpers_NoRedisAreNoOps(t *testing.T) {
	config.ResetRedisClientForTest()

	assert.NoError(t, AddSessionToUserSet(1, "tok"))
	assert.NoError(t, RemoveSessionTokenFromUserSet(1, "tok"))
	assert.NoError(t, InvalidateUserSessions(1))
}

func TestInvalidateUserSessions(t *testing.T) {
	client, mock := redismock.NewClientMock()
	config.SetRedisClientForTest(client)
	t.Cleanup(config.ResetRedisClientForTest)

	key := "user_sessions:5"
	mock.ExpectSMembers(key).SetVal([]string{"tok1", "tok2"})
	mock.ExpectDel("session:tok1").SetVal(1)
	mock.ExpectDel("session:tok2").SetVal(1)
	mock.ExpectDel(key).SetVal(1)
	require.NoError(t, InvalidateUserSessions(5))
	require.NoError(t, mock.ExpectationsWereMet())
}
