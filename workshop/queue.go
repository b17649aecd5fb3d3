package workshop

import (
	"slices"
	"sync"
	"time"

	"isaac-mod-manager/logger"
)

// State is the authoritative per-identifier thumbnail state.
type State int

const (
	StateIdle State = iota
	StateQueued
	StateFetching
	StateCached
	StateFetchFailed
)

func (s State) String() string {
	switch s {
	case StateQueued:
		return "queued"
	case StateFetching:
		return "fetching"
	case StateCached:
		return "cached"
	case StateFetchFailed:
		return "failed"
	default:
		return "idle"
	}
}

// Result is the immutable completion event the worker emits for each
// processed identifier. OK false marks a retriable failure; Path is only
// meaningful when OK is true.
type Result struct {
	ID   string
	Path string
	OK   bool
}

// Fetcher resolves a workshop identifier to raw preview image bytes.
// *Client is the real implementation.
type Fetcher interface {
	FetchThumbnail(id string) ([]byte, error)
}

// DefaultPollInterval paces the worker so the remote service is hit at most
// roughly once per second.
const DefaultPollInterval = time.Second

// Queue is the asynchronous thumbnail fetch queue. A single worker
// goroutine polls on a fixed interval and serves requests strictly FIFO, one
// at a time, checking the disk cache before any network call. All blocking
// work happens on the worker; callers only enqueue and read completion
// events from Results.
type Queue struct {
	fetcher  Fetcher
	cache    Cache
	interval time.Duration

	mu      sync.Mutex
	pending []string
	states  map[string]State
	paused  bool

	results chan Result
	stop    chan struct{}
	done    chan struct{}
}

func NewQueue(fetcher Fetcher, cache Cache, interval time.Duration) *Queue {
	if interval <= 0 {
		interval = DefaultPollInterval
	}
	return &Queue{
		fetcher:  fetcher,
		cache:    cache,
		interval: interval,
		states:   make(map[string]State),
		results:  make(chan Result, 64),
		stop:     make(chan struct{}),
		done:     make(chan struct{}),
	}
}

// Start launches the worker goroutine. Call Shutdown to stop it.
func (q *Queue) Start() {
	go q.run()
}

// Results delivers one completion event per processed identifier.
func (q *Queue) Results() <-chan Result {
	return q.results
}

// Enqueue requests a fetch for an identifier. Enqueuing is idempotent: an
// identifier that is already queued or mid-fetch is not added again.
// Returns true if the identifier was newly queued.
func (q *Queue) Enqueue(id string) bool {
	q.mu.Lock()
	defer q.mu.Unlock()

	switch q.states[id] {
	case StateQueued, StateFetching:
		return false
	}
	q.states[id] = StateQueued
	q.pending = append(q.pending, id)
	return true
}

// Len reports the number of identifiers waiting to be fetched.
func (q *Queue) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.pending)
}

// State reports the authoritative state for an identifier.
func (q *Queue) State(id string) State {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.states[id]
}

// Clear drops all pending work without affecting an in-flight fetch already
// past the dequeue point. Returns the number of dropped identifiers.
func (q *Queue) Clear() int {
	q.mu.Lock()
	defer q.mu.Unlock()

	dropped := len(q.pending)
	for _, id := range q.pending {
		q.states[id] = StateIdle
	}
	q.pending = nil
	return dropped
}

// Pause makes the worker skip processing while keeping queue order; Resume
// undoes it.
func (q *Queue) Pause() {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.paused = true
}

func (q *Queue) Resume() {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.paused = false
}

// Shutdown stops the worker and its polling timer. An in-flight fetch is
// allowed to finish; pending identifiers stay queued but will never be
// served.
func (q *Queue) Shutdown() {
	select {
	case <-q.stop:
		return
	default:
	}
	close(q.stop)
	<-q.done
}

func (q *Queue) run() {
	defer close(q.done)

	ticker := time.NewTicker(q.interval)
	defer ticker.Stop()

	for {
		select {
		case <-q.stop:
			return
		case <-ticker.C:
			q.step()
		}
	}
}

// step serves at most one identifier per poll tick.
func (q *Queue) step() {
	id, ok := q.dequeue()
	if !ok {
		return
	}

	if q.cache.Has(id) {
		q.finish(id, Result{ID: id, Path: q.cache.Path(id), OK: true})
		return
	}

	raw, err := q.fetcher.FetchThumbnail(id)
	if err != nil {
		logger.Log.Warnf("thumbnail fetch failed for %s: %v", id, err)
		q.finish(id, Result{ID: id})
		return
	}

	path, err := q.cache.Store(id, raw)
	if err != nil {
		logger.Log.Warnf("thumbnail cache write failed for %s: %v", id, err)
		q.finish(id, Result{ID: id})
		return
	}

	q.finish(id, Result{ID: id, Path: path, OK: true})
}

func (q *Queue) dequeue() (string, bool) {
	q.mu.Lock()
	defer q.mu.Unlock()

	if q.paused || len(q.pending) == 0 {
		return "", false
	}
	id := q.pending[0]
	q.pending = slices.Delete(q.pending, 0, 1)
	q.states[id] = StateFetching
	return id, true
}

func (q *Queue) finish(id string, res Result) {
	q.mu.Lock()
	if res.OK {
		q.states[id] = StateCached
	} else {
		q.states[id] = StateFetchFailed
	}
	q.mu.Unlock()

	select {
	case q.results <- res:
	case <-q.stop:
	}
}
