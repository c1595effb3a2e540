package pubsub

import (
	"context"
	"encoding/json"

	"cloud.google.com/go/pubsub"
	"github.com/lukasz-zimnoch/chartist"
)

type EventService struct {
	client *Client
	logger chartist.Logger
}

func NewEventService(client *Client, logger chartist.Logger) *EventService {
	return &EventService{client, logger}
}

func (es *EventService) Publish(event *chartist.Event) {
	es.publishOnSignalsTopic(context.TODO(), event)
}

func (es *EventService) publishOnSignalsTopic(
	ctx context.Context,
	event *chartist.Event,
) {
	topicLogger := es.logger.WithField("topic", "signals")

	messageData, err := json.Marshal(&signalEvent{
		Pair:    event.Pair,
		Payload: event.Payload,
	})
	if err != nil {
		topicLogger.Errorf("could not marshal analysis event: [%v]", err)
		return
	}

	es.publishOnTopic(
		ctx,
		es.client.signalsTopic,
		messageData,
		topicLogger,
	)
}

func (es *EventService) publishOnTopic(
	ctx context.Context,
	topic *pubsub.Topic,
	messageData []byte,
	topicLogger chartist.Logger,
) {
	result := topic.Publish(ctx, &pubsub.Message{
		Data: messageData,
	})

	go func() {
		id, err := result.Get(ctx)
		if err != nil {
			topicLogger.Errorf(
				"could not publish analysis event: [%v]",
				err,
			)
			return
		}

		topicLogger.Infof("published analysis event with ID: [%v]", id)
	}()
}

type signalEvent struct {
	Pair    string
	Payload string
}
