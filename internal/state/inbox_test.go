package state

import (
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInbox_PushAndDrain(t *testing.T) {
	var in Inbox

	before := time.Now()
	in.Push([]string{"a", "b"}, false)
	in.Push([]string{"c"}, false)

	b := in.Drain()
	assert.Equal(t, []string{"a", "b", "c"}, b.Lines)
	assert.False(t, b.Reset)
	assert.False(t, b.LastUpdated.Before(before))
	assert.NoError(t, b.LastError)

	b = in.Drain()
	assert.Empty(t, b.Lines, "drain clears pending lines")
}

func TestInbox_ResetDiscardsPending(t *testing.T) {
	var in Inbox
	in.Push([]string{"stale"}, false)
	in.Push([]string{"fresh"}, true)

	b := in.Drain()
	assert.True(t, b.Reset)
	assert.Equal(t, []string{"fresh"}, b.Lines)
	assert.False(t, in.Drain().Reset)
}

func TestInbox_LimitDropsOldest(t *testing.T) {
	in := Inbox{Limit: 2}
	in.Push([]string{"1", "2", "3"}, false)
	in.Push([]string{"4"}, false)

	b := in.Drain()
	assert.Equal(t, []string{"3", "4"}, b.Lines)
	assert.Equal(t, 2, b.Dropped)
}

func TestInbox_ConsecutiveFailures(t *testing.T) {
	var in Inbox
	in.Push([]string{"kept"}, false)

	in.Fail(errors.New("fail 1"))
	b := in.Drain()
	require.Error(t, b.LastError)
	assert.Equal(t, 1, b.ConsecutiveFailures)
	assert.False(t, b.IsOffline())
	assert.Equal(t, []string{"kept"}, b.Lines, "failure keeps pending lines")

	in.Fail(errors.New("fail 2"))
	b = in.Drain()
	assert.Equal(t, 2, b.ConsecutiveFailures)
	assert.True(t, b.IsOffline())
	assert.EqualError(t, b.LastError, "fail 2")

	in.Push(nil, false)
	b = in.Drain()
	assert.Zero(t, b.ConsecutiveFailures)
	assert.NoError(t, b.LastError)
}

func TestInbox_ConcurrentPush(t *testing.T) {
	var in Inbox
	var wg sync.WaitGroup
	for w := 0; w < 4; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for n := 0; n < 100; n++ {
				in.Push([]string{"x"}, false)
			}
		}()
	}
	wg.Wait()
	assert.Len(t, in.Drain().Lines, 400)
}
