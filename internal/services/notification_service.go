package services

import (
	"encoding/json"
	"fmt"
	"log"

	"github.com/eluxe/eluxe-backend/internal/rabbitmq"
)

// CodeDelivery is the payload handed to the delivery queue for one issued
// verification code.
type CodeDelivery struct {
	Identity string `json:"identity"`
	Code     string `json:"code"`
	Anomaly  bool   `json:"anomaly"`
}

// Notifier delivers an issued code out-of-band. Delivery failure must never
// fail the login request itself; callers log the returned error and move on.
type Notifier interface {
	DeliverCode(identity, code string, anomaly bool) error
}

// NotificationService prefers handing deliveries to RabbitMQ so the HTTP
// request never waits on SMTP. When the broker is not configured or the
// publish fails, it falls back to sending the email directly.
type NotificationService struct {
	emailService *EmailService
}

func NewNotificationService(emailService *EmailService) *NotificationService {
	return &NotificationService{
		emailService: emailService,
	}
}

func (s *NotificationService) DeliverCode(identity, code string, anomaly bool) error {
	payload, err := json.Marshal(CodeDelivery{
		Identity: identity,
		Code:     code,
		Anomaly:  anomaly,
	})
	if err != nil {
		return fmt.Errorf("failed to encode code delivery: %w", err)
	}

	if err := rabbitmq.PublishCodeDelivery(payload); err != nil {
		log.Printf("Code delivery publish failed, sending directly: %v", err)
		return s.emailService.SendVerificationCode(identity, code, anomaly)
	}
	return nil
}
