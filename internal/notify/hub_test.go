package notify

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestHub_BroadcastReachesAllClients(t *testing.T) {
	t.Parallel()

	hub := NewHub(zap.NewNop())

	id1, ch1 := hub.Register()
	id2, ch2 := hub.Register()
	require.NotEqual(t, id1, id2)
	assert.Equal(t, 2, hub.ClientCount())

	hub.Broadcast("studentCreated", map[string]string{"id": "sam@school.edu"})

	for _, ch := range []<-chan []byte{ch1, ch2} {
		payload := <-ch
		var event Event
		require.NoError(t, json.Unmarshal(payload, &event))
		assert.Equal(t, "studentCreated", event.Event)
	}
}

func TestHub_UnregisterClosesChannel(t *testing.T) {
	t.Parallel()

	hub := NewHub(zap.NewNop())
	id, ch := hub.Register()

	hub.Unregister(id)
	_, open := <-ch
	assert.False(t, open)
	assert.Equal(t, 0, hub.ClientCount())

	// Unregister is idempotent.
	hub.Unregister(id)

	// Broadcasting with no clients is a no-op.
	hub.Broadcast("courseDeleted", nil)
}

func TestHub_SlowClientDoesNotBlockBroadcast(t *testing.T) {
	t.Parallel()

	hub := NewHub(zap.NewNop())
	_, ch := hub.Register()

	// Overfill the client buffer; extra events are dropped, not blocking.
	for i := 0; i < 100; i++ {
		hub.Broadcast("tick", i)
	}

	received := 0
	for {
		select {
		case <-ch:
			received++
			continue
		default:
		}
		break
	}
	assert.Equal(t, 64, received)
}
