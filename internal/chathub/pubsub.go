package chathub

import (
	"context"
	"encoding/json"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"workbench/backend/internal/logging"
	"workbench/backend/internal/models"
)

// broadcastChannel is the Redis channel all nodes share.
const broadcastChannel = "chat:broadcast"

// envelope wraps a payload with the publishing node's identity so a node
// can ignore its own publishes; local sessions already got them straight
// from the hub.
type envelope struct {
	Origin  string                    `json:"origin"`
	Payload models.ChatMessagePayload `json:"payload"`
}

// Bridge replicates committed chat messages between nodes over Redis
// Pub/Sub. Delivery is best effort, same as the in-process hub: no
// persistence, no replay.
type Bridge struct {
	rdb    *redis.Client
	hub    *Hub
	origin string
}

func NewBridge(rdb *redis.Client, hub *Hub) *Bridge {
	return &Bridge{
		rdb:    rdb,
		hub:    hub,
		origin: uuid.New().String(),
	}
}

// Publish sends a committed message to the shared channel.
func (b *Bridge) Publish(payload models.ChatMessagePayload) error {
	data, err := json.Marshal(envelope{Origin: b.origin, Payload: payload})
	if err != nil {
		return err
	}
	return b.rdb.Publish(context.Background(), broadcastChannel, data).Err()
}

// Run subscribes to the shared channel and feeds publishes from other
// nodes into the local hub. It blocks until ctx is cancelled.
func (b *Bridge) Run(ctx context.Context) {
	pubsub := b.rdb.Subscribe(ctx, broadcastChannel)
	defer pubsub.Close()

	ch := pubsub.Channel()
	for {
		select {
		case <-ctx.Done():
			return
		case msg, ok := <-ch:
			if !ok {
				return
			}
			var env envelope
			if err := json.Unmarshal([]byte(msg.Payload), &env); err != nil {
				logging.Logger.Error("failed to decode bridge message", zap.Error(err))
				continue
			}
			if env.Origin == b.origin {
				continue
			}
			b.hub.Broadcast(ChatTopic, env.Payload)
		}
	}
}
