package amrio

import (
	"fmt"

	"github.com/katalvlaran/amrmerge/maskedbox"
)

// BlockDescriptor is everything the partitioning/link framework
// supplies about one block: its gid, its core and ghosted bounds, its
// refinement level and ratio, and its link neighbours.
type BlockDescriptor struct {
	Gid    int
	Level  int
	Ratio  int
	Core   maskedbox.Rect
	Bounds maskedbox.Rect
	Link   maskedbox.Link
}

// LinkProvider looks up a BlockDescriptor by gid.
type LinkProvider interface {
	Describe(gid int) (BlockDescriptor, error)
	Gids() []int
}

// StaticLink is a LinkProvider backed by a fixed, precomputed set of
// descriptors — the reference implementation for tests and
// single-process runs, where the partitioning is known up front.
type StaticLink struct {
	byGid map[int]BlockDescriptor
	order []int
}

// NewStaticLink builds a StaticLink from descriptors, indexed by Gid.
func NewStaticLink(descriptors []BlockDescriptor) *StaticLink {
	s := &StaticLink{byGid: make(map[int]BlockDescriptor, len(descriptors))}
	for _, d := range descriptors {
		s.byGid[d.Gid] = d
		s.order = append(s.order, d.Gid)
	}
	return s
}

// Describe implements LinkProvider.
func (s *StaticLink) Describe(gid int) (BlockDescriptor, error) {
	d, ok := s.byGid[gid]
	if !ok {
		return BlockDescriptor{}, fmt.Errorf("amrio: %w: gid %d", ErrUnknownGid, gid)
	}
	return d, nil
}

// Gids returns every known gid, in the order descriptors were supplied.
func (s *StaticLink) Gids() []int {
	return append([]int(nil), s.order...)
}
