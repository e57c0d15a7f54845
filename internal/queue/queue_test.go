package queue

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSerializeRoundTrip(t *testing.T) {
	msg := Message{Type: "attendance.submission", Body: []byte(`[{"lecture_id":"l1"}]`)}

	got, err := deserialize(serialize(msg))
	require.NoError(t, err)
	assert.Equal(t, msg.Type, got.Type)
	assert.Equal(t, msg.Body, got.Body)
}

func TestDeserializeWithoutSeparator(t *testing.T) {
	got, err := deserialize("raw-payload")
	require.NoError(t, err)
	assert.Empty(t, got.Type)
	assert.Equal(t, []byte("raw-payload"), got.Body)
}

func TestInMemoryPublishConsume(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	q := NewInMemory(2)
	require.NoError(t, q.Publish(ctx, Message{Type: "a", Body: []byte("1")}))
	require.NoError(t, q.Publish(ctx, Message{Type: "b", Body: []byte("2")}))

	messages, err := q.Consume(ctx)
	require.NoError(t, err)

	for _, want := range []string{"a", "b"} {
		select {
		case msg := <-messages:
			assert.Equal(t, want, msg.Type)
		case <-time.After(time.Second):
			t.Fatalf("timed out waiting for %q", want)
		}
	}
}

func TestInMemoryPublishHonorsCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	q := NewInMemory(1)
	require.NoError(t, q.Publish(ctx, Message{Type: "fill"}))

	cancel()
	err := q.Publish(ctx, Message{Type: "blocked"})
	assert.ErrorIs(t, err, context.Canceled)
}
