// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package author

import (
	"context"
	"encoding/json"
	"time"
)

// Routing keys of the author change events.
const (
	EventCreated = "author.created"
	EventUpdated = "author.updated"
	EventDeleted = "author.deleted"
)

// Publisher delivers an encoded event under a routing key.
type Publisher interface {
	Publish(ctx context.Context, routingKey string, body []byte) error
}

// Event is the message body published after a successful write.
type Event struct {
	Event      string    `json:"event"`
	OccurredAt time.Time `json:"occurred_at"`
	Data       Author    `json:"data"`
}

func encodeEvent(name string, a Author, now time.Time) ([]byte, error) {
	return json.Marshal(Event{Event: name, OccurredAt: now.UTC(), Data: a})
}
