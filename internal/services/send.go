package services

import (
	"fmt"

	"DT-EDIT/internal"
	"DT-EDIT/internal/models"
)

// Mailer delivers one message to one recipient. Delivery transport is
// deployment-specific; the default just logs.
type Mailer interface {
	Send(email, subject, message string) error
}

type LogMailer struct{}

func (LogMailer) Send(email, subject, message string) error {
	fmt.Printf("Sending %q to %s (%d bytes)\n", subject, email, len(message))
	return nil
}

// Recipient is one send/remind target.
type Recipient struct {
	Email   string `json:"email"`
	Message string `json:"message"`
}

// SendReport aggregates per-recipient outcomes. Success means every
// recipient succeeded; otherwise the failed addresses are listed.
type SendReport struct {
	Sent   []string          `json:"sent"`
	Failed map[string]string `json:"failed,omitempty"`
}

func (r SendReport) AllSucceeded() bool {
	return len(r.Failed) == 0
}

type SendService struct {
	mailer Mailer
}

func NewSendService(mailer Mailer) *SendService {
	if mailer == nil {
		mailer = LogMailer{}
	}
	return &SendService{mailer: mailer}
}

// SendDocument delivers the document to every recipient, collecting partial
// failures instead of stopping at the first one.
func (s *SendService) SendDocument(doc *models.Document, recipients []Recipient) (SendReport, error) {
	return s.deliver(doc, recipients, fmt.Sprintf("Document for signature: %s", doc.Name), "sent")
}

// RemindDocument re-notifies recipients of a pending document.
func (s *SendService) RemindDocument(doc *models.Document, recipients []Recipient) (SendReport, error) {
	return s.deliver(doc, recipients, fmt.Sprintf("Reminder: %s is awaiting your signature", doc.Name), "")
}

func (s *SendService) deliver(doc *models.Document, recipients []Recipient, subject, newStatus string) (SendReport, error) {
	if len(recipients) == 0 {
		return SendReport{}, fmt.Errorf("no recipients given")
	}

	report := SendReport{Failed: make(map[string]string)}
	for i, recipient := range recipients {
		if recipient.Email == "" {
			// Keyed by position so several blank entries each report.
			report.Failed[fmt.Sprintf("recipient %d", i+1)] = "missing email address"
			continue
		}
		if err := s.mailer.Send(recipient.Email, subject, recipient.Message); err != nil {
			report.Failed[recipient.Email] = err.Error()
			continue
		}
		report.Sent = append(report.Sent, recipient.Email)
	}
	if len(report.Failed) == 0 {
		report.Failed = nil
	}

	if newStatus != "" && len(report.Sent) > 0 {
		if err := internal.DB.Model(doc).Update("status", newStatus).Error; err != nil {
			fmt.Printf("Warning: failed to update document status: %v\n", err)
		}
	}

	return report, nil
}
