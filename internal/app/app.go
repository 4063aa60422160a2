package app

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/wavecast/dial/internal/config"
	"github.com/wavecast/dial/internal/radio"
	"github.com/wavecast/dial/internal/state"
	"github.com/wavecast/dial/internal/stream"
	"github.com/wavecast/dial/internal/ui"
)

// Options configure the dial application.
type Options struct {
	ConfigPath string
	Host       string // overrides the configured host when set
}

const flagsTimeout = 3 * time.Second

// Run boots the dial TUI until the context is cancelled or the user quits.
func Run(ctx context.Context, opts Options) error {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	host := cfg.Host
	if opts.Host != "" {
		host = opts.Host
	}
	client, err := radio.NewClient(host)
	if err != nil {
		return fmt.Errorf("init api client: %w", err)
	}

	store := &state.Store{}

	sched := NewScheduler(func() { refreshSnapshot(ctx, client, store) })
	if cfg.PollActive > 0 {
		sched.active = cfg.PollActive
	}
	if cfg.PollIdle > 0 {
		sched.idle = cfg.PollIdle
	}
	defer sched.Stop()

	// The subscription seeds the store with one full read, then keeps the
	// push channel alive; the scheduler covers the gaps with polling.
	sub := stream.Subscribe(ctx, client, store)
	defer sub.Close()

	sched.ScheduleImmediate()

	controls := NewControls(client, sched)

	return ui.Run(ui.Options{
		Context:     ctx,
		Store:       store,
		Controls:    controls,
		Searcher:    client,
		Focus:       sched,
		NewsEnabled: fetchFlags(ctx, client).News,
	})
}

// fetchFlags reads the server feature flags, best effort. When the server
// is unreachable at startup the gated features simply stay hidden.
func fetchFlags(ctx context.Context, client *radio.Client) radio.Flags {
	ctx, cancel := context.WithTimeout(ctx, flagsTimeout)
	defer cancel()
	flags, err := client.Config(ctx)
	if err != nil {
		log.Printf("config flags unavailable: %v", err)
		return radio.Flags{}
	}
	return flags
}
