package util

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/dandrevielma/visoria-anesthesic-backend/config"
	"github.com/dandrevielma/visoria-anesthesic-backend/model"
	"github.com/google/uuid"
	"gopkg.in/gomail.v2"
	"gorm.io/gorm"
)

// EmailSender is the interface for sending email messages.
type EmailSender interface {
	SendEmail(ctx context.Context, to, subject, htmlBody string) error
}

// SMTPSender delivers mail through the configured SMTP relay.
type SMTPSender struct {
	Host string
	Port int
	User string
	Pass string
	From string
}

// SendEmail sends a single HTML message.
func (s *SMTPSender) SendEmail(_ context.Context, to, subject, htmlBody string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", s.From)
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/html", htmlBody)

	d := gomail.NewDialer(s.Host, s.Port, s.User, s.Pass)
	return d.DialAndSend(m)
}

var emailSender EmailSender

// SetEmailSender installs the sender used for outbound mail. Passing nil
// disables delivery; sends are then logged and recorded as failed.
func SetEmailSender(sender EmailSender) {
	emailSender = sender
}

// InitEmailSenderFromConfig wires the SMTP sender from the loaded
// configuration. Leaves delivery disabled when no SMTP host is set.
func InitEmailSenderFromConfig(cfg *config.Config) {
	if cfg.SMTPHost == "" {
		log.Printf("SMTP not configured, email delivery disabled")
		return
	}
	from := cfg.EmailFrom
	if from == "" {
		from = "Visoria Medical <noreply@visoria.medical>"
	}
	emailSender = &SMTPSender{
		Host: cfg.SMTPHost,
		Port: int(cfg.SMTPPort),
		User: cfg.SMTPUser,
		Pass: cfg.SMTPPass,
		From: from,
	}
}

const emailSubjectPrefix = "Visoria Medical - "

// CompletionEmailParams groups the data for a questionnaire completion
// notification.
type CompletionEmailParams struct {
	Record  model.Record
	Patient model.Patient
}

// SendQuestionnaireCompletedEmail notifies the patient that their
// questionnaire was received. Best-effort: the outcome (including
// missing recipient or disabled delivery) is written to the email log
// and never surfaces as a request failure.
func SendQuestionnaireCompletedEmail(db *gorm.DB, params CompletionEmailParams) {
	if params.Patient.Email == "" {
		return
	}

	subject := emailSubjectPrefix + "Cuestionario completado"
	entry := model.EmailLog{
		RecordID:       params.Record.ID,
		Type:           model.EmailTypeCompletion,
		RecipientEmail: params.Patient.Email,
		Subject:        subject,
	}

	if emailSender == nil {
		entry.ErrorMessage = "email delivery disabled"
		persistEmailLog(db, &entry)
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	body := QuestionnaireCompletedTemplate(params.Patient.Email, params.Patient.FullName())
	if err := emailSender.SendEmail(ctx, params.Patient.Email, subject, body); err != nil {
		log.Printf("Failed to send completion email for record %d: %v", params.Record.ID, err)
		entry.ErrorMessage = err.Error()
		persistEmailLog(db, &entry)
		return
	}

	now := time.Now()
	entry.SentAt = &now
	entry.MessageID = uuid.NewString()
	persistEmailLog(db, &entry)
}

// FormLinkEmailParams groups the data for a questionnaire invitation.
type FormLinkEmailParams struct {
	Record   model.Record
	Patient  model.Patient
	FormLink string
	SentBy   *uint
}

// SendFormLinkEmail mails the patient their questionnaire link when a
// record is opened. Best-effort, same contract as the completion email.
func SendFormLinkEmail(db *gorm.DB, params FormLinkEmailParams) {
	if params.Patient.Email == "" {
		return
	}

	subject := emailSubjectPrefix + "Cuestionario preanestésico"
	entry := model.EmailLog{
		RecordID:       params.Record.ID,
		Type:           model.EmailTypeFormLink,
		RecipientEmail: params.Patient.Email,
		Subject:        subject,
		SentBy:         params.SentBy,
	}

	if emailSender == nil {
		entry.ErrorMessage = "email delivery disabled"
		persistEmailLog(db, &entry)
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	body := FormLinkTemplate(params.Patient.FullName(), params.FormLink)
	if err := emailSender.SendEmail(ctx, params.Patient.Email, subject, body); err != nil {
		log.Printf("Failed to send form link email for record %d: %v", params.Record.ID, err)
		entry.ErrorMessage = err.Error()
		persistEmailLog(db, &entry)
		return
	}

	now := time.Now()
	entry.SentAt = &now
	entry.MessageID = uuid.NewString()
	persistEmailLog(db, &entry)
}

func persistEmailLog(db *gorm.DB, entry *model.EmailLog) {
	if db == nil {
		return
	}
	if err := db.Create(entry).Error; err != nil {
		log.Printf("Failed to persist email log: %v", err)
	}
}

// BuildFormLink constructs the shareable patient form URL for a record's token.
func BuildFormLink(cfg *config.Config, token string) string {
	return fmt.Sprintf("%s/patient-form/%s", cfg.WebsiteURL, token)
}
