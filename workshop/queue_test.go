package workshop

import (
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testInterval = 5 * time.Millisecond

// fakeFetcher records calls and can block mid-fetch to simulate an in-flight
// request.
type fakeFetcher struct {
	mu      sync.Mutex
	calls   []string
	data    []byte
	err     error
	started chan string
	release chan struct{}
}

func (f *fakeFetcher) FetchThumbnail(id string) ([]byte, error) {
	f.mu.Lock()
	f.calls = append(f.calls, id)
	f.mu.Unlock()
	if f.started != nil {
		f.started <- id
	}
	if f.release != nil {
		<-f.release
	}
	return f.data, f.err
}

func (f *fakeFetcher) callCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.calls)
}

func startQueue(t *testing.T, fetcher Fetcher) (*Queue, Cache) {
	t.Helper()
	cache := NewCache(t.TempDir())
	q := NewQueue(fetcher, cache, testInterval)
	q.Start()
	t.Cleanup(q.Shutdown)
	return q, cache
}

func waitResult(t *testing.T, q *Queue) Result {
	t.Helper()
	select {
	case res := <-q.Results():
		return res
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for a queue result")
		return Result{}
	}
}

func TestFetchSuccess(t *testing.T) {
	fetcher := &fakeFetcher{data: testImageBytes(t, 128, 128)}
	q, cache := startQueue(t, fetcher)

	require.True(t, q.Enqueue("111"))
	res := waitResult(t, q)

	assert.True(t, res.OK)
	assert.Equal(t, "111", res.ID)
	assert.Equal(t, cache.Path("111"), res.Path)
	assert.True(t, cache.Has("111"))
	assert.Equal(t, StateCached, q.State("111"))
}

func TestCacheHitSkipsNetwork(t *testing.T) {
	fetcher := &fakeFetcher{}
	q, cache := startQueue(t, fetcher)

	_, err := cache.Store("222", testImageBytes(t, 32, 32))
	require.NoError(t, err)

	require.True(t, q.Enqueue("222"))
	res := waitResult(t, q)

	assert.True(t, res.OK)
	assert.Equal(t, cache.Path("222"), res.Path)
	assert.Zero(t, fetcher.callCount(), "a cached identifier must never hit the network")
}

func TestFetchFailureIsRetriable(t *testing.T) {
	fetcher := &fakeFetcher{err: errors.New("connection reset")}
	q, _ := startQueue(t, fetcher)

	require.True(t, q.Enqueue("333"))
	res := waitResult(t, q)

	assert.False(t, res.OK)
	assert.Equal(t, StateFetchFailed, q.State("333"))

	// A failed identifier can be queued again.
	assert.True(t, q.Enqueue("333"))
}

func TestEnqueueIsIdempotent(t *testing.T) {
	fetcher := &fakeFetcher{
		started: make(chan string, 1),
		release: make(chan struct{}),
	}
	q, _ := startQueue(t, fetcher)
	q.Pause()

	assert.True(t, q.Enqueue("444"))
	assert.False(t, q.Enqueue("444"), "re-queuing a queued identifier must not duplicate work")
	assert.Equal(t, 1, q.Len())
	close(fetcher.release)
}

func TestClearDropsQueuedButNotInFlight(t *testing.T) {
	fetcher := &fakeFetcher{
		data:    testImageBytes(t, 32, 32),
		started: make(chan string, 1),
		release: make(chan struct{}),
	}
	q, _ := startQueue(t, fetcher)

	require.True(t, q.Enqueue("a"))
	require.True(t, q.Enqueue("b"))
	require.True(t, q.Enqueue("c"))

	// Wait until "a" is past the dequeue point.
	<-fetcher.started
	assert.Equal(t, StateFetching, q.State("a"))

	dropped := q.Clear()
	assert.Equal(t, 2, dropped)
	assert.Equal(t, StateIdle, q.State("b"))
	assert.Equal(t, StateIdle, q.State("c"))

	// The in-flight fetch still completes.
	close(fetcher.release)
	res := waitResult(t, q)
	assert.Equal(t, "a", res.ID)
	assert.True(t, res.OK)

	assert.Equal(t, 1, fetcher.callCount(), "cleared identifiers must never be fetched")
}

func TestPauseSkipsProcessingAndKeepsOrder(t *testing.T) {
	fetcher := &fakeFetcher{data: testImageBytes(t, 32, 32)}
	q, _ := startQueue(t, fetcher)

	q.Pause()
	require.True(t, q.Enqueue("p1"))
	require.True(t, q.Enqueue("p2"))

	time.Sleep(5 * testInterval)
	assert.Zero(t, fetcher.callCount())
	assert.Equal(t, 2, q.Len())

	q.Resume()
	first := waitResult(t, q)
	second := waitResult(t, q)
	assert.Equal(t, "p1", first.ID, "FIFO order survives a pause")
	assert.Equal(t, "p2", second.ID)
}

func TestShutdownStopsWorker(t *testing.T) {
	fetcher := &fakeFetcher{data: testImageBytes(t, 32, 32)}
	cache := NewCache(t.TempDir())
	q := NewQueue(fetcher, cache, testInterval)
	q.Start()

	q.Shutdown()
	// Safe to call twice.
	q.Shutdown()

	q.Enqueue("after")
	time.Sleep(5 * testInterval)
	assert.Zero(t, fetcher.callCount(), "a stopped worker serves nothing")
}
