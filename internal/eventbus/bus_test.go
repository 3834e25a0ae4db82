package eventbus

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBusPublishSubscribe(t *testing.T) {
	bus := New()
	id, ch := bus.Subscribe(4)
	defer bus.Unsubscribe(id)

	bus.PublishNew(TypeTaskSaved, "t1", "", map[string]string{"assignee_id": "u4"})

	event := <-ch
	assert.Equal(t, TypeTaskSaved, event.Type)
	assert.Equal(t, "t1", event.ResourceID)
	assert.Equal(t, "u4", event.Metadata["assignee_id"])
	assert.NotEmpty(t, event.ID)
	assert.False(t, event.CreatedAt.IsZero())
}

func TestBusMultipleSubscribers(t *testing.T) {
	bus := New()
	id1, ch1 := bus.Subscribe(4)
	id2, ch2 := bus.Subscribe(4)
	defer bus.Unsubscribe(id1)
	defer bus.Unsubscribe(id2)

	bus.PublishNew(TypeTaskDeleted, "t1", "", nil)

	assert.Equal(t, TypeTaskDeleted, (<-ch1).Type)
	assert.Equal(t, TypeTaskDeleted, (<-ch2).Type)
}

func TestBusDropsWhenBufferFull(t *testing.T) {
	bus := New()
	id, ch := bus.Subscribe(1)
	defer bus.Unsubscribe(id)

	bus.PublishNew(TypeTaskSaved, "t1", "", nil)
	bus.PublishNew(TypeTaskSaved, "t2", "", nil)

	require.Len(t, ch, 1)
	assert.Equal(t, "t1", (<-ch).ResourceID)
}

func TestBusUnsubscribeClosesChannel(t *testing.T) {
	bus := New()
	id, ch := bus.Subscribe(1)
	bus.Unsubscribe(id)

	_, ok := <-ch
	assert.False(t, ok)

	// Publishing after unsubscribe must not panic.
	bus.PublishNew(TypeTaskSaved, "t1", "", nil)
}
