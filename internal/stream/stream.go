package stream

import (
	"bufio"
	"context"
	"encoding/json"
	"io"
	"log"
	"sync/atomic"
	"time"

	"github.com/wavecast/dial/internal/radio"
	"github.com/wavecast/dial/internal/state"
)

const (
	eventNowPlaying       = "now-playing"
	defaultReconnectDelay = 2 * time.Second
)

// Dialer is the transport surface the subscription needs: one initial
// snapshot read and the raw push stream. *radio.Client satisfies it; tests
// substitute a fake producer.
type Dialer interface {
	Now(ctx context.Context) (*radio.NowResponse, error)
	OpenEvents(ctx context.Context) (io.ReadCloser, error)
}

// Subscription is a live binding of the push channel to a store. Close is
// idempotent and safe from any goroutine including store observers; once
// the background loop has exited (Done) no further store mutation occurs.
type Subscription struct {
	store          *state.Store
	cancel         context.CancelFunc
	closed         atomic.Bool
	done           chan struct{}
	reconnectDelay time.Duration
}

// Subscribe performs one snapshot read to seed the store, then maintains a
// persistent push connection in the background until Close or context
// cancellation. A failed initial read is logged, not fatal: the first
// successful poll or push frame fills the gap.
func Subscribe(ctx context.Context, api Dialer, store *state.Store) *Subscription {
	ctx, cancel := context.WithCancel(ctx)
	sub := &Subscription{
		store:          store,
		cancel:         cancel,
		done:           make(chan struct{}),
		reconnectDelay: defaultReconnectDelay,
	}

	if now, err := api.Now(ctx); err != nil {
		log.Printf("initial snapshot read failed: %v", err)
	} else {
		sub.apply(func() { store.ApplyFull(state.FromNowResponse(now)) })
	}

	go sub.run(ctx, api)
	return sub
}

// Close tears the channel down. Events not yet dispatched when Close is
// observed are dropped; wait on Done for the loop to finish draining.
func (s *Subscription) Close() {
	s.closed.Store(true)
	s.cancel()
}

// Done is closed once the background loop has exited.
func (s *Subscription) Done() <-chan struct{} {
	return s.done
}

func (s *Subscription) run(ctx context.Context, api Dialer) {
	defer close(s.done)
	for {
		body, err := api.OpenEvents(ctx)
		if err != nil {
			if ctx.Err() != nil {
				return
			}
			// A failed (re)connect is the terminal closed state: the
			// channel is down until a later attempt succeeds.
			s.apply(func() { s.store.SetConnected(false) })
			select {
			case <-ctx.Done():
				return
			case <-time.After(s.reconnectDelay):
			}
			continue
		}

		s.apply(func() { s.store.SetConnected(true) })
		s.consume(body)
		_ = body.Close()

		if ctx.Err() != nil {
			return
		}
		// Mid-stream drop: reconnect immediately. Connectivity is not
		// flipped here; transient blips during reconnection must not flap
		// the UI. Only a failed reconnect above marks the channel lost.
	}
}

func (s *Subscription) consume(body io.Reader) {
	scanner := bufio.NewScanner(body)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for {
		f, ok := nextFrame(scanner)
		if !ok {
			return
		}
		s.dispatch(f)
	}
}

func (s *Subscription) dispatch(f frame) {
	switch f.name {
	case eventNowPlaying:
		var now radio.NowPlaying
		if err := json.Unmarshal([]byte(f.data), &now); err != nil {
			log.Printf("undecodable now-playing payload: %v", err)
			return
		}
		s.apply(func() {
			// Any decodable event proves the channel is alive.
			s.store.SetConnected(true)
			s.store.ApplyNowPlaying(now)
		})
	default:
		// Unknown event names are ignored, not fatal.
	}
}

// apply runs fn unless the subscription is closed. A frame racing the
// Close call itself may still land; after Done closes, nothing does.
func (s *Subscription) apply(fn func()) {
	if s.closed.Load() {
		return
	}
	fn()
}
