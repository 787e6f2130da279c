package app

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQueueFIFO(t *testing.T) {
	q := NewQueue()
	require.NoError(t, q.Send(Request{Provider: ProviderCensys, IP: "1.1.1.1"}))
	require.NoError(t, q.Send(Request{Provider: ProviderShodan, IP: "1.1.1.1"}))
	require.NoError(t, q.Send(Request{Provider: ProviderVirusTotal, IP: "1.1.1.1"}))
	assert.Equal(t, 3, q.Len())

	for _, want := range Providers {
		req, ok := q.Receive()
		require.True(t, ok)
		assert.Equal(t, want, req.Provider)
	}
	assert.Equal(t, 0, q.Len())
}

func TestQueueSendAfterCloseFails(t *testing.T) {
	q := NewQueue()
	q.Close()
	assert.ErrorIs(t, q.Send(Request{}), ErrQueueClosed)
}

func TestQueueCloseDrainsThenStops(t *testing.T) {
	q := NewQueue()
	require.NoError(t, q.Send(Request{IP: "9.9.9.9"}))
	q.Close()

	req, ok := q.Receive()
	require.True(t, ok)
	assert.Equal(t, "9.9.9.9", req.IP)

	_, ok = q.Receive()
	assert.False(t, ok)
}

func TestQueueReceiveBlocksUntilSend(t *testing.T) {
	q := NewQueue()
	got := make(chan Request, 1)
	go func() {
		req, ok := q.Receive()
		if ok {
			got <- req
		}
	}()

	select {
	case <-got:
		t.Fatal("receive returned before send")
	case <-time.After(20 * time.Millisecond):
	}

	require.NoError(t, q.Send(Request{Provider: ProviderShodan, IP: "8.8.8.8"}))
	select {
	case req := <-got:
		assert.Equal(t, ProviderShodan, req.Provider)
	case <-time.After(time.Second):
		t.Fatal("receive did not wake up")
	}
}

func TestQueueCloseWakesReceiver(t *testing.T) {
	q := NewQueue()
	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		_, ok := q.Receive()
		assert.False(t, ok)
	}()

	time.Sleep(10 * time.Millisecond)
	q.Close()

	done := make(chan struct{})
	go func() {
		wg.Wait()
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("close did not release receiver")
	}
}
