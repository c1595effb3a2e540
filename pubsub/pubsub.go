// Package pubsub publishes analysis events to a Cloud Pub/Sub topic
// consumed by the rendering and notification services.
package pubsub

import (
	"context"

	"cloud.google.com/go/pubsub"
)

type Client struct {
	signalsTopic *pubsub.Topic
}

func NewClient(
	ctx context.Context,
	projectID,
	signalsTopicID string,
) (*Client, error) {
	client, err := pubsub.NewClient(ctx, projectID)
	if err != nil {
		return nil, err
	}

	return &Client{
		signalsTopic: client.Topic(signalsTopicID),
	}, nil
}
