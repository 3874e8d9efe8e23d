package serialize

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"io"
	"sort"

	"github.com/katalvlaran/amrmerge/amrvertex"
	"github.com/katalvlaran/amrmerge/block"
	"github.com/katalvlaran/amrmerge/component"
	"github.com/katalvlaran/amrmerge/disjointset"
	"github.com/katalvlaran/amrmerge/maskedbox"
)

// writer accumulates the first error seen so call sites don't need to
// check one after another, following the error-sticky pattern used
// throughout the package for a long fixed sequence of small writes.
type writer struct {
	w   io.Writer
	err error
}

func (ww *writer) write(v interface{}) {
	if ww.err != nil {
		return
	}
	ww.err = binary.Write(ww.w, binary.LittleEndian, v)
}

func (ww *writer) int32(v int)               { ww.write(int32(v)) }
func (ww *writer) uint32(v uint32)           { ww.write(v) }
func (ww *writer) float64(v amrvertex.Value) { ww.write(float64(v)) }
func (ww *writer) bool(v bool) {
	var b byte
	if v {
		b = 1
	}
	ww.write(b)
}
func (ww *writer) byte(v byte) { ww.write(v) }
func (ww *writer) id(v amrvertex.Id) {
	ww.int32(v.Gid)
	ww.int32(v.Offset)
}
func (ww *writer) rect(r maskedbox.Rect) {
	ww.int32(r.X0)
	ww.int32(r.Y0)
	ww.int32(r.X1)
	ww.int32(r.Y1)
}

type reader struct {
	r   io.Reader
	err error
}

func (rr *reader) read(v interface{}) {
	if rr.err != nil {
		return
	}
	rr.err = binary.Read(rr.r, binary.LittleEndian, v)
}

func (rr *reader) int32() int {
	var v int32
	rr.read(&v)
	return int(v)
}
func (rr *reader) uint32() uint32 {
	var v uint32
	rr.read(&v)
	return v
}
func (rr *reader) float64() amrvertex.Value {
	var v float64
	rr.read(&v)
	return amrvertex.Value(v)
}
func (rr *reader) bool() bool {
	var b byte
	rr.read(&b)
	return b != 0
}
func (rr *reader) byte() byte {
	var b byte
	rr.read(&b)
	return b
}
func (rr *reader) id() amrvertex.Id {
	return amrvertex.Id{Gid: rr.int32(), Offset: rr.int32()}
}
func (rr *reader) rect() maskedbox.Rect {
	return maskedbox.Rect{X0: rr.int32(), Y0: rr.int32(), X1: rr.int32(), Y1: rr.int32()}
}

// WriteBlock encodes b's full checkpointable state — the classified
// box, the disjoint-set forest, the component vector, and the round
// counter — as a single concatenation of length-prefixed,
// little-endian records.
func WriteBlock(w io.Writer, b *block.Block) error {
	bw := bufio.NewWriter(w)
	ww := &writer{w: bw}

	ww.write(magic)
	ww.uint32(formatVersion)

	ww.int32(b.Gid)
	ww.bool(b.Negate())
	ww.bool(b.Preserve())
	ww.int32(b.RoundNumber)

	writeBox(ww, b.Box)
	writeDSU(ww, b.DSU)
	writeComponents(ww, b.Components)

	if ww.err != nil {
		return fmt.Errorf("serialize: write block: %w", ww.err)
	}
	return bw.Flush()
}

func writeBox(ww *writer, box *maskedbox.Box) {
	ww.int32(box.Gid)
	ww.int32(box.Level)
	ww.rect(box.Core)
	ww.rect(box.Bounds)
	ww.bool(box.Negate())
	ww.byte(byte(box.Mode()))
	ww.float64(box.Threshold())

	values := box.RawValues()
	ww.uint32(uint32(len(values)))
	for _, row := range values {
		ww.uint32(uint32(len(row)))
		for _, v := range row {
			ww.float64(v)
		}
	}

	mask := box.RawMask()
	ww.uint32(uint32(len(mask)))
	for _, m := range mask {
		ww.byte(byte(m))
	}

	ghost := box.RawGhostRemote()
	ww.uint32(uint32(len(ghost)))
	for _, g := range ghost {
		ww.id(g)
	}
}

func writeDSU(ww *writer, dsu *disjointset.DisjointSets) {
	ww.bool(dsu.Negate())
	entries := dsu.Snapshot()
	sort.Slice(entries, func(i, j int) bool { return entries[i].Vertex.Less(entries[j].Vertex) })
	ww.uint32(uint32(len(entries)))
	for _, e := range entries {
		ww.id(e.Vertex)
		ww.id(e.Parent)
		ww.int32(e.Rank)
		ww.float64(e.Value)
	}
}

func writeComponents(ww *writer, components []*component.Component) {
	ww.uint32(uint32(len(components)))
	for _, c := range components {
		ww.id(c.OriginalDeepest)
		ww.float64(c.OriginalValue)
		ww.id(c.GlobalDeepest)
		ww.float64(c.GlobalValue)

		writeGidSet(ww, c.CurrentNeighbors)
		writeGidSet(ww, c.ProcessedNeighbors)

		ww.uint32(uint32(len(c.OutgoingEdges)))
		for _, e := range c.OutgoingEdges {
			ww.id(e.U)
			ww.id(e.V)
		}
	}
}

func writeGidSet(ww *writer, set map[int]struct{}) {
	gids := make([]int, 0, len(set))
	for g := range set {
		gids = append(gids, g)
	}
	sort.Ints(gids)
	ww.uint32(uint32(len(gids)))
	for _, g := range gids {
		ww.int32(g)
	}
}

// ReadBlock decodes a checkpoint written by WriteBlock back into a
// fully usable Block, rebuilding its local merge tree from the
// restored box.
func ReadBlock(r io.Reader) (*block.Block, error) {
	rr := &reader{r: r}

	var gotMagic [4]byte
	rr.read(&gotMagic)
	if rr.err != nil {
		return nil, fmt.Errorf("serialize: read block: %w", rr.err)
	}
	if gotMagic != magic {
		return nil, ErrBadMagic
	}

	version := rr.uint32()
	if version != formatVersion {
		return nil, &ErrVersionMismatch{Found: version, Want: formatVersion}
	}

	gid := rr.int32()
	negate := rr.bool()
	preserve := rr.bool()
	round := rr.int32()

	box := readBox(rr)
	dsu := readDSU(rr)
	components := readComponents(rr)

	if rr.err != nil {
		return nil, fmt.Errorf("serialize: read block: %w", rr.err)
	}

	return block.Restore(gid, negate, preserve, box, dsu, components, round), nil
}

func readBox(rr *reader) *maskedbox.Box {
	gid := rr.int32()
	level := rr.int32()
	core := rr.rect()
	bounds := rr.rect()
	negate := rr.bool()
	mode := maskedbox.ThresholdMode(rr.byte())
	threshold := rr.float64()

	nrows := int(rr.uint32())
	values := make([][]amrvertex.Value, nrows)
	for i := range values {
		ncols := int(rr.uint32())
		row := make([]amrvertex.Value, ncols)
		for j := range row {
			row[j] = rr.float64()
		}
		values[i] = row
	}

	nmask := int(rr.uint32())
	mask := make([]maskedbox.Mask, nmask)
	for i := range mask {
		mask[i] = maskedbox.Mask(rr.byte())
	}

	nghost := int(rr.uint32())
	ghost := make([]amrvertex.Id, nghost)
	for i := range ghost {
		ghost[i] = rr.id()
	}

	return maskedbox.Restore(gid, level, core, bounds, negate, mode, threshold, values, mask, ghost)
}

func readDSU(rr *reader) *disjointset.DisjointSets {
	negate := rr.bool()
	n := int(rr.uint32())
	entries := make([]disjointset.Entry, n)
	for i := range entries {
		entries[i] = disjointset.Entry{
			Vertex: rr.id(),
			Parent: rr.id(),
			Rank:   rr.int32(),
			Value:  rr.float64(),
		}
	}
	return disjointset.Restore(negate, entries)
}

func readComponents(rr *reader) []*component.Component {
	n := int(rr.uint32())
	out := make([]*component.Component, n)
	for i := range out {
		originalDeepest := rr.id()
		originalValue := rr.float64()
		globalDeepest := rr.id()
		globalValue := rr.float64()

		c := component.New(originalDeepest, originalValue)
		c.GlobalDeepest = globalDeepest
		c.GlobalValue = globalValue
		c.CurrentNeighbors = readGidSet(rr)
		c.ProcessedNeighbors = readGidSet(rr)

		nedges := int(rr.uint32())
		var edges []maskedbox.AmrEdge
		for j := 0; j < nedges; j++ {
			edges = append(edges, maskedbox.AmrEdge{U: rr.id(), V: rr.id()})
		}
		c.OutgoingEdges = edges

		out[i] = c
	}
	return out
}

func readGidSet(rr *reader) map[int]struct{} {
	n := int(rr.uint32())
	out := make(map[int]struct{}, n)
	for i := 0; i < n; i++ {
		out[rr.int32()] = struct{}{}
	}
	return out
}
