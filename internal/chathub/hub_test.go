package chathub_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"workbench/backend/internal/chathub"
	"workbench/backend/internal/models"
)

func payloadWith(id uint, message string) models.ChatMessagePayload {
	return models.ChatMessagePayload{ID: id, UserName: "alice", Message: message, CreatedAt: "12:34"}
}

func TestHub_SubscribeAndBroadcast(t *testing.T) {
	// Arrange
	hub := chathub.NewHub()
	go hub.Run()

	clientA := newMockClient("session_A")
	clientB := newMockClient("session_B")
	hub.Subscribe(chathub.ChatTopic, clientA)
	hub.Subscribe(chathub.ChatTopic, clientB)
	time.Sleep(50 * time.Millisecond)

	// Act
	hub.Broadcast(chathub.ChatTopic, payloadWith(1, "hello"))
	time.Sleep(50 * time.Millisecond)

	// Assert - both subscribers got the same payload
	for _, c := range []*MockClient{clientA, clientB} {
		select {
		case got := <-c.RecvChannel:
			assert.Equal(t, uint(1), got.ID)
			assert.Equal(t, "hello", got.Message)
		default:
			t.Errorf("%s did not receive the broadcast", c.GetSessionID())
		}
	}
}

func TestHub_LateSubscriberGetsNoReplay(t *testing.T) {
	hub := chathub.NewHub()
	go hub.Run()

	// Broadcast before anyone subscribes.
	hub.Broadcast(chathub.ChatTopic, payloadWith(1, "early"))
	time.Sleep(50 * time.Millisecond)

	late := newMockClient("late_session")
	hub.Subscribe(chathub.ChatTopic, late)
	time.Sleep(50 * time.Millisecond)

	select {
	case msg := <-late.RecvChannel:
		t.Errorf("late subscriber unexpectedly received %q", msg.Message)
	default:
	}
}

func TestHub_Unsubscribe(t *testing.T) {
	hub := chathub.NewHub()
	go hub.Run()

	client := newMockClient("session_A")
	hub.Subscribe(chathub.ChatTopic, client)
	time.Sleep(50 * time.Millisecond)

	hub.Unsubscribe(chathub.ChatTopic, client)
	time.Sleep(50 * time.Millisecond)

	hub.Broadcast(chathub.ChatTopic, payloadWith(1, "after"))
	time.Sleep(50 * time.Millisecond)

	assert.True(t, client.Closed(), "unsubscribed client should be closed")
	select {
	case msg := <-client.RecvChannel:
		t.Errorf("unsubscribed client received %q", msg.Message)
	default:
	}
}

func TestHub_BroadcastOrderPerSubscriber(t *testing.T) {
	hub := chathub.NewHub()
	go hub.Run()

	client := newMockClient("session_A")
	hub.Subscribe(chathub.ChatTopic, client)
	time.Sleep(50 * time.Millisecond)

	hub.Broadcast(chathub.ChatTopic, payloadWith(1, "first"))
	hub.Broadcast(chathub.ChatTopic, payloadWith(2, "second"))
	hub.Broadcast(chathub.ChatTopic, payloadWith(3, "third"))
	time.Sleep(50 * time.Millisecond)

	var got []string
	for i := 0; i < 3; i++ {
		select {
		case msg := <-client.RecvChannel:
			got = append(got, msg.Message)
		default:
			t.Fatalf("expected 3 deliveries, got %d", i)
		}
	}
	assert.Equal(t, []string{"first", "second", "third"}, got)
}

func TestHub_DropsSlowSubscriber(t *testing.T) {
	hub := chathub.NewHub()
	go hub.Run()

	slow := newSlowMockClient("slow_session")
	healthy := newMockClient("healthy_session")
	hub.Subscribe(chathub.ChatTopic, slow)
	hub.Subscribe(chathub.ChatTopic, healthy)
	time.Sleep(50 * time.Millisecond)

	hub.Broadcast(chathub.ChatTopic, payloadWith(1, "one"))
	hub.Broadcast(chathub.ChatTopic, payloadWith(2, "two"))
	time.Sleep(50 * time.Millisecond)

	// The stalled client is gone, the healthy one saw everything.
	assert.True(t, slow.Closed(), "slow subscriber should be dropped and closed")
	var got []string
	for i := 0; i < 2; i++ {
		select {
		case msg := <-healthy.RecvChannel:
			got = append(got, msg.Message)
		default:
			t.Fatalf("healthy client expected 2 deliveries, got %d", i)
		}
	}
	assert.Equal(t, []string{"one", "two"}, got)
}

func TestHub_DuplicateSubscribeReplacesClient(t *testing.T) {
	hub := chathub.NewHub()
	go hub.Run()

	first := newMockClient("session_A")
	second := newMockClient("session_A")
	hub.Subscribe(chathub.ChatTopic, first)
	hub.Subscribe(chathub.ChatTopic, second)
	time.Sleep(50 * time.Millisecond)

	hub.Broadcast(chathub.ChatTopic, payloadWith(1, "hello"))
	time.Sleep(50 * time.Millisecond)

	assert.True(t, first.Closed(), "replaced client should be closed")
	select {
	case msg := <-second.RecvChannel:
		assert.Equal(t, "hello", msg.Message)
	default:
		t.Error("replacement client did not receive the broadcast")
	}
	select {
	case <-first.RecvChannel:
		t.Error("replaced client should not receive broadcasts")
	default:
	}
}

func TestHub_StaleUnsubscribeKeepsReplacement(t *testing.T) {
	hub := chathub.NewHub()
	go hub.Run()

	first := newMockClient("session_A")
	second := newMockClient("session_A")
	hub.Subscribe(chathub.ChatTopic, first)
	hub.Subscribe(chathub.ChatTopic, second)

	// The replaced client tears down late; its unsubscribe must not
	// evict the replacement.
	hub.Unsubscribe(chathub.ChatTopic, first)
	time.Sleep(50 * time.Millisecond)

	hub.Broadcast(chathub.ChatTopic, payloadWith(1, "still here"))
	time.Sleep(50 * time.Millisecond)

	select {
	case msg := <-second.RecvChannel:
		assert.Equal(t, "still here", msg.Message)
	default:
		t.Error("replacement client was evicted by a stale unsubscribe")
	}
}
