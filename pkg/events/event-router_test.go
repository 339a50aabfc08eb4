package events

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Events published just before shutdown must still reach handlers when the
// router is closed, not cancelled out from under them.
func TestRouterCloseDeliversPendingEvents(t *testing.T) {
	router, err := NewEventRouter()
	require.NoError(t, err)

	var mu sync.Mutex
	var received []Event
	router.AddHandler("record", "chat", func(msg *message.Message) error {
		defer msg.Ack()
		e, err := NewEventFromJson(msg.Payload)
		if err != nil {
			return err
		}
		mu.Lock()
		received = append(received, e)
		mu.Unlock()
		return nil
	})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	runDone := make(chan error, 1)
	go func() {
		runDone <- router.Run(ctx)
	}()

	select {
	case <-router.Running():
	case <-time.After(5 * time.Second):
		t.Fatal("router did not start")
	}

	sink := NewWatermillSink(router.Publisher, "chat")
	meta := testMetadata()
	require.NoError(t, sink.PublishEvent(NewStartEvent(meta)))
	require.NoError(t, sink.PublishEvent(NewFinalEvent(meta, "Hi there")))

	require.NoError(t, router.Close())
	cancel()

	select {
	case err := <-runDone:
		require.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("router did not shut down")
	}

	mu.Lock()
	defer mu.Unlock()
	require.Len(t, received, 2)
	assert.Equal(t, EventTypeStart, received[0].Type())
	assert.Equal(t, EventTypeFinal, received[1].Type())
}
