package service

import (
	"context"
	"encoding/json"
	"log"

	"returnhub-be/internal/dto"
	"returnhub-be/internal/entity"
	"returnhub-be/internal/pkg/mailer"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
)

// INotifierService drains the status-change topic and mails the consumer.
// It runs as a background goroutine owned by main.
type INotifierService interface {
	Consume(ctx context.Context) error
}

type notifierService struct {
	pubSub       *gochannel.GoChannel
	topicName    string
	emailService mailer.IEmailService
}

func NewNotifierService(
	pubSub *gochannel.GoChannel,
	topicName string,
	emailService mailer.IEmailService,
) INotifierService {
	return &notifierService{
		pubSub:       pubSub,
		topicName:    topicName,
		emailService: emailService,
	}
}

func (ns *notifierService) Consume(ctx context.Context) error {
	messages, err := ns.pubSub.Subscribe(ctx, ns.topicName)
	if err != nil {
		return err
	}

	go func() {
		for msg := range messages {
			ns.processMessage(msg)
		}
	}()

	return nil
}

func (ns *notifierService) processMessage(msg *message.Message) {
	var payload dto.ReturnStatusChangedMessage
	if err := json.Unmarshal(msg.Payload, &payload); err != nil {
		log.Printf("[ERROR] Failed to unmarshal notification message: %v", err)
		msg.Ack() // Ack invalid messages to prevent infinite retry
		return
	}

	var err error
	if payload.Status == string(entity.StatusInitiated) {
		err = ns.emailService.SendReturnCreated(
			payload.ConsumerEmail,
			payload.ConsumerName,
			payload.AuthorizationCode,
		)
	} else {
		err = ns.emailService.SendStatusUpdate(
			payload.ConsumerEmail,
			payload.ConsumerName,
			payload.AuthorizationCode,
			payload.Status,
		)
	}
	if err != nil {
		log.Printf("[ERROR] Failed to send notification for return %s: %v", payload.ReturnId, err)
		msg.Nack() // Nack for retriable errors
		return
	}

	log.Printf("[INFO] Notification sent for return %s (%s)", payload.ReturnId, payload.Status)
	msg.Ack()
}
