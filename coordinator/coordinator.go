package coordinator

import (
	"context"
	"fmt"
	"sort"

	"github.com/katalvlaran/amrmerge/amrio"
	"github.com/katalvlaran/amrmerge/amrvertex"
	"github.com/katalvlaran/amrmerge/block"
	"github.com/katalvlaran/amrmerge/logx"
	"github.com/katalvlaran/amrmerge/telemetry"
	oteltrace "go.opentelemetry.io/otel/trace"
)

// defaultMaxRounds bounds the protocol loop against a misbehaving
// block that never reports done; termination is expected on a finite
// graph, so any realistic run completes in far fewer rounds than this.
const defaultMaxRounds = 100000

// Option customizes a Coordinator, following config's MergeOption and
// builder's BuilderOption functional-option shape.
type Option func(*Coordinator)

// WithLogger attaches a logx.Logger for per-round progress. Panics on
// nil, matching builder's fail-fast option discipline.
func WithLogger(l logx.Logger) Option {
	if l == nil {
		panic("coordinator: WithLogger(nil)")
	}
	return func(c *Coordinator) { c.logger = l }
}

// WithTracing enables per-round OpenTelemetry spans via
// telemetry.StartRound.
func WithTracing(enabled bool) Option {
	return func(c *Coordinator) { c.tracing = enabled }
}

// WithMaxRounds overrides the default round-count safety cap.
func WithMaxRounds(n int) Option {
	if n <= 0 {
		panic("coordinator: WithMaxRounds(n<=0)")
	}
	return func(c *Coordinator) { c.maxRounds = n }
}

// Coordinator owns every block of one run and drives them through
// rounds via an amrio.Exchange.
type Coordinator struct {
	blocks    map[int]*block.Block
	exchange  amrio.Exchange
	logger    logx.Logger
	tracing   bool
	maxRounds int
}

// New returns a Coordinator over blocks (already Init'd), delivering
// messages through exchange.
func New(blocks map[int]*block.Block, exchange amrio.Exchange, opts ...Option) *Coordinator {
	c := &Coordinator{
		blocks:    blocks,
		exchange:  exchange,
		logger:    logx.NullLogger{},
		maxRounds: defaultMaxRounds,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Run executes the protocol to global termination (one extra flush
// round after every block first reports local done, to drain any
// messages still in flight) and returns each block's final
// DeepestVertices, keyed by gid.
func (c *Coordinator) Run(ctx context.Context) (map[int][]amrvertex.Id, error) {
	gids := make([]int, 0, len(c.blocks))
	for gid := range c.blocks {
		gids = append(gids, gid)
	}
	sort.Ints(gids)

	incoming := make(map[int][]block.Message)
	flushing := false

	for round := 0; round < c.maxRounds; round++ {
		roundCtx := ctx
		var span oteltrace.Span
		if c.tracing {
			roundCtx, span = telemetry.StartRound(ctx, round)
		}

		outgoing := make(map[int]map[int][]block.Message, len(gids))
		allDone := true
		for _, gid := range gids {
			blk := c.blocks[gid]
			outgoing[gid] = blk.Round(incoming[gid])
			if !blk.LocalDone() {
				allDone = false
			}
		}
		c.logger.WithField("round", round).Debug("round complete")

		next, err := c.exchange.Exchange(roundCtx, outgoing)
		if span != nil {
			span.End()
		}
		if err != nil {
			return nil, fmt.Errorf("coordinator: exchange round %d: %w", round, err)
		}
		incoming = next

		if allDone {
			if flushing {
				return c.collect(gids), nil
			}
			flushing = true
			c.logger.Info("all blocks locally done, running flush round")
		}
	}
	return nil, fmt.Errorf("coordinator: %w: after %d rounds", ErrRoundLimitExceeded, c.maxRounds)
}

func (c *Coordinator) collect(gids []int) map[int][]amrvertex.Id {
	out := make(map[int][]amrvertex.Id, len(gids))
	for _, gid := range gids {
		out[gid] = c.blocks[gid].DeepestVertices()
	}
	return out
}
