package amrio

import (
	"context"

	"github.com/katalvlaran/amrmerge/block"
)

// Exchange is the partitioning framework's delivery primitive: given
// per-target payloads, deliver them and return messages addressed to
// this block. outgoing is keyed by sender gid, then by recipient gid;
// the result is keyed by recipient gid.
type Exchange interface {
	Exchange(ctx context.Context, outgoing map[int]map[int][]block.Message) (map[int][]block.Message, error)
}

// LocalExchange is an in-process Exchange: it simply regroups messages
// by recipient, with no network, serialization, or concurrency — the
// reference implementation for single-process runs and tests.
type LocalExchange struct{}

// Exchange implements Exchange.
func (LocalExchange) Exchange(ctx context.Context, outgoing map[int]map[int][]block.Message) (map[int][]block.Message, error) {
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	default:
	}

	incoming := make(map[int][]block.Message)
	for _, perRecipient := range outgoing {
		for gid, msgs := range perRecipient {
			incoming[gid] = append(incoming[gid], msgs...)
		}
	}
	return incoming, nil
}
