package output

import (
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/frondlog/frond/core"
)

// Async wraps a sink with a bounded queue drained by a background
// goroutine, so slow destinations don't stall the logging call site.
//
// When the queue is full, the per-level OverflowPolicy decides what
// happens: low-priority records are dropped while errors block briefly
// and fall back to a synchronous write, so critical records are never
// silently lost.
type Async struct {
	inner          Sink
	queue          chan asyncItem
	wg             sync.WaitGroup
	closed         chan struct{}
	mu             sync.Mutex
	overflowPolicy map[core.Level]OverflowPolicy
	blockTimeout   time.Duration
	drainTimeout   time.Duration
	stats          *Stats
	blockTimer     *time.Timer
}

// asyncItem owns copies of everything the worker needs; the original
// record may be recycled the moment Write returns.
type asyncItem struct {
	rec     core.Record
	payload []byte
}

// AsyncConfig holds configuration for the async wrapper
type AsyncConfig struct {
	// BufferSize is the size of the queue (default: 1000)
	BufferSize int
	// OverflowPolicy defines per-level overflow behavior (default: DefaultLevelPolicy)
	OverflowPolicy map[core.Level]OverflowPolicy
	// BlockTimeout is the timeout for the blocking overflow policy (default: 100ms)
	BlockTimeout time.Duration
	// DrainTimeout is the timeout for draining the queue on Close (default: 5s)
	DrainTimeout time.Duration
}

// NewAsync wraps inner with an async queue.
func NewAsync(inner Sink, cfg AsyncConfig) *Async {
	if cfg.BufferSize <= 0 {
		cfg.BufferSize = 1000
	}
	if cfg.OverflowPolicy == nil {
		cfg.OverflowPolicy = DefaultLevelPolicy()
	}
	if cfg.BlockTimeout == 0 {
		cfg.BlockTimeout = 100 * time.Millisecond
	}
	if cfg.DrainTimeout == 0 {
		cfg.DrainTimeout = 5 * time.Second
	}

	a := &Async{
		inner:          inner,
		queue:          make(chan asyncItem, cfg.BufferSize),
		closed:         make(chan struct{}),
		overflowPolicy: cfg.OverflowPolicy,
		blockTimeout:   cfg.BlockTimeout,
		drainTimeout:   cfg.DrainTimeout,
		stats:          NewStats(),
		blockTimer:     newStoppedTimer(),
	}

	a.wg.Add(1)
	go a.process()

	return a
}

func newStoppedTimer() *time.Timer {
	t := time.NewTimer(time.Hour)
	if !t.Stop() {
		<-t.C
	}
	return t
}

// Write implements Sink.
func (a *Async) Write(rec *core.Record, payload []byte) error {
	item := asyncItem{rec: *rec}
	// Fields may live in a pooled slice; the worker only needs the
	// formatted payload.
	item.rec.Fields = nil
	if payload != nil {
		item.payload = append([]byte(nil), payload...)
	} else {
		item.payload = []byte(rec.Message)
	}

	policy, ok := a.overflowPolicy[rec.Level]
	if !ok {
		policy = DropNewest // Default if not specified
	}

	switch policy {
	case Block:
		select {
		case a.queue <- item:
			return nil
		default:
			// Queue full, use the reusable timer for the timeout
			a.mu.Lock()
			defer a.mu.Unlock()
			if !a.blockTimer.Stop() {
				select {
				case <-a.blockTimer.C:
				default:
				}
			}
			a.blockTimer.Reset(a.blockTimeout)
			select {
			case a.queue <- item:
				if !a.blockTimer.Stop() {
					select {
					case <-a.blockTimer.C:
					default:
					}
				}
				return nil
			case <-a.blockTimer.C:
				// Timeout - fall back to synchronous write
				a.stats.IncrementBlocked()
				return a.write(item)
			case <-a.closed:
				// Sink is closing, write synchronously
				if !a.blockTimer.Stop() {
					select {
					case <-a.blockTimer.C:
					default:
					}
				}
				return a.write(item)
			}
		}

	case DropOldest:
		select {
		case a.queue <- item:
			return nil
		default:
			// Queue full - try to drop oldest
			select {
			case old := <-a.queue: // Remove oldest
				a.stats.IncrementDropped(old.rec.Level)
			default:
			}
			// Try again
			select {
			case a.queue <- item:
				return nil
			default:
				// Still full, drop this one
				a.stats.IncrementDropped(rec.Level)
				return nil
			}
		}

	case DropNewest:
		fallthrough
	default:
		// Non-blocking send
		select {
		case a.queue <- item:
			return nil
		default:
			// Queue full - drop this record
			a.stats.IncrementDropped(rec.Level)
			return nil
		}
	}
}

// write delivers one item to the wrapped sink.
func (a *Async) write(item asyncItem) error {
	err := a.inner.Write(&item.rec, item.payload)
	if err == nil {
		a.stats.IncrementProcessed()
	}
	return err
}

// process drains the queue on a background goroutine.
func (a *Async) process() {
	defer a.wg.Done()

	for {
		select {
		case item := <-a.queue:
			if err := a.write(item); err != nil {
				reportAsyncError(item, err)
			}
		case <-a.closed:
			// Drain remaining items with timeout
			deadline := time.After(a.drainTimeout)
		drainLoop:
			for {
				select {
				case item := <-a.queue:
					if err := a.write(item); err != nil {
						reportAsyncError(item, err)
					}
				case <-deadline:
					// Timeout reached, stop draining
					break drainLoop
				default:
					// Queue empty
					break drainLoop
				}
			}
			return
		}
	}
}

// reportAsyncError surfaces a worker-side write failure on stderr; the
// logging call site has long since returned.
func reportAsyncError(item asyncItem, err error) {
	fmt.Fprintf(os.Stderr, "frond: async sink write failed: %v\n\tpayload: %s\n", err, item.payload)
}

// Stats returns a snapshot of the current statistics
func (a *Async) Stats() Snapshot {
	return a.stats.GetSnapshot()
}

// Flush implements Sink. It does not wait for queued items; use Close
// to drain.
func (a *Async) Flush() error {
	return a.inner.Flush()
}

// Close implements Sink. The queue is drained (bounded by DrainTimeout)
// and the wrapped sink is closed.
func (a *Async) Close() error {
	// Check if already closed (without lock to avoid deadlock)
	select {
	case <-a.closed:
		return nil // Already closed
	default:
	}

	close(a.closed)
	a.wg.Wait() // Wait without holding lock to avoid deadlock

	return a.inner.Close()
}
