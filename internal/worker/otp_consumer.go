package worker

import (
	"context"
	"encoding/json"
	"fmt"
	"log"

	"github.com/eluxe/eluxe-backend/internal/rabbitmq"
	"github.com/eluxe/eluxe-backend/internal/services"
	amqp "github.com/rabbitmq/amqp091-go"
)

const consumerTag = "otp-worker-1"

// OTPWorker drains the delivery queue and sends verification-code emails so
// the login endpoint never blocks on SMTP.
type OTPWorker struct {
	emailService *services.EmailService
}

func NewOTPWorker(emailService *services.EmailService) *OTPWorker {
	return &OTPWorker{
		emailService: emailService,
	}
}

// StartWorker starts the consumer loop; ctx cancellation triggers a graceful
// shutdown.
func (w *OTPWorker) StartWorker(ctx context.Context) error {
	if rabbitmq.Client == nil {
		return fmt.Errorf("RabbitMQ client not initialized")
	}

	ch := rabbitmq.Client.Channel

	msgs, err := ch.Consume(
		rabbitmq.DeliverQueueName, // queue
		consumerTag,               // consumer tag
		false,                     // auto-ack (manual ack after the send)
		false,                     // exclusive
		false,                     // no-local
		false,                     // no-wait
		nil,                       // args
	)
	if err != nil {
		return fmt.Errorf("failed to register consumer: %w", err)
	}

	log.Printf("OTP worker started, waiting for messages in %s", rabbitmq.DeliverQueueName)

	go func() {
		for d := range msgs {
			w.processMessage(d)
		}
	}()

	<-ctx.Done()
	log.Println("OTP worker: shutdown signal received, canceling consumer")

	if err := ch.Cancel(consumerTag, false); err != nil {
		log.Printf("Error canceling consumer: %v", err)
	}
	return nil
}

func (w *OTPWorker) processMessage(d amqp.Delivery) {
	var delivery services.CodeDelivery
	if err := json.Unmarshal(d.Body, &delivery); err != nil {
		log.Printf("OTP worker: malformed payload, discarding: %v", err)
		d.Reject(false)
		return
	}

	if err := w.emailService.SendVerificationCode(delivery.Identity, delivery.Code, delivery.Anomaly); err != nil {
		// Retrying is pointless: by the time a redelivery lands, the code
		// is likely superseded by a newer login attempt. Log and drop.
		log.Printf("OTP worker: failed to email code to %s: %v", delivery.Identity, err)
		d.Ack(false)
		return
	}

	log.Printf("OTP worker: delivered verification code to %s (anomaly=%t)", delivery.Identity, delivery.Anomaly)
	d.Ack(false)
}
