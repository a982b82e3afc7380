// Package pubsub provides topic-based event publishing for the web
// layer, delivered to browsers over Server-Sent Events.
package pubsub

import (
	"context"
	"encoding/json"
)

// Topics published by the analysis service
const (
	TopicAnalysisStatus = "analysis_status"
	TopicAnalysisResult = "analysis_result"
)

// Event represents a pub/sub event
type Event struct {
	Topic   string          `json:"topic"`
	Type    string          `json:"type"` // e.g. "analyzing", "ready", "watch_triggered"
	Data    json.RawMessage `json:"data"`
	Version int             `json:"version"` // per-topic ordering
}

// Subscription represents a client subscription to a topic
type Subscription interface {
	// Topic returns the subscription topic
	Topic() string

	// Events returns a channel for receiving events
	Events() <-chan Event

	// Close closes the subscription
	Close() error
}

// Publisher manages pub/sub subscriptions and event publishing
type Publisher interface {
	// Subscribe creates a new subscription to a topic.
	// Context cancellation will close the subscription.
	Subscribe(ctx context.Context, topic string) (Subscription, error)

	// Publish sends an event to all subscribers of a topic
	Publish(topic string, eventType string, data interface{}) error

	// Close shuts down the publisher and all subscriptions
	Close() error
}

// AnalysisStatus reports analysis progress to the dashboard
type AnalysisStatus struct {
	State   string `json:"state"` // analyzing, ready, failed
	Message string `json:"message"`
}

// ResultUpdate announces a fresh analysis result
type ResultUpdate struct {
	ResultID    string  `json:"resultId"`
	Skills      int     `json:"skills"`
	Edges       int     `json:"edges"`
	HealthScore float64 `json:"healthScore"`
}
