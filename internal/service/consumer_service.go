package service

import (
	"context"
	"encoding/json"

	"algo-notes-be/internal/dto"
	"algo-notes-be/internal/pkg/logger"
	"algo-notes-be/pkg/events"

	"github.com/ThreeDotsLabs/watermill/message"
)

type IConsumerService interface {
	Consume(ctx context.Context) error
}

// EventForwarder ships events off-process. *nats.Publisher implements it.
type EventForwarder interface {
	Publish(ctx context.Context, event events.Event) error
}

type consumerService struct {
	subscriber     message.Subscriber
	topicName      string
	activityLogger logger.ILogger
	forwarder      EventForwarder
}

// NewConsumerService wires the question activity consumer. forwarder may be nil.
func NewConsumerService(
	subscriber message.Subscriber,
	topicName string,
	activityLogger logger.ILogger,
	forwarder EventForwarder,
) IConsumerService {
	return &consumerService{
		subscriber:     subscriber,
		topicName:      topicName,
		activityLogger: activityLogger,
		forwarder:      forwarder,
	}
}

func (cs *consumerService) Consume(ctx context.Context) error {
	messages, err := cs.subscriber.Subscribe(ctx, cs.topicName)
	if err != nil {
		return err
	}

	go func() {
		for msg := range messages {
			cs.processMessage(ctx, msg)
		}
	}()

	return nil
}

func (cs *consumerService) processMessage(ctx context.Context, msg *message.Message) {
	var payload dto.QuestionAddedMessage
	if err := json.Unmarshal(msg.Payload, &payload); err != nil {
		cs.activityLogger.Error("NoteActivity", "Dropping malformed event", map[string]interface{}{
			"error":      err.Error(),
			"message_id": msg.UUID,
		})
		msg.Ack() // Ack invalid messages to prevent infinite retry
		return
	}

	details := map[string]interface{}{
		"note_id":     payload.NoteId,
		"topic":       payload.Topic,
		"sub_topic":   payload.SubTopic,
		"question_id": payload.QuestionId,
		"title":       payload.Title,
	}
	cs.activityLogger.Info("NoteActivity", "Question added", details)

	if cs.forwarder != nil {
		evt := events.BaseEvent{
			Type:       events.TypeQuestionAdded,
			Data:       details,
			OccurredAt: payload.OccurredAt,
		}
		// Forwarding is auxiliary; a broker outage must not block the local log.
		if err := cs.forwarder.Publish(ctx, evt); err != nil {
			cs.activityLogger.Warn("NoteActivity", "Failed to forward event", map[string]interface{}{
				"error":       err.Error(),
				"question_id": payload.QuestionId,
			})
		}
	}

	msg.Ack()
}
