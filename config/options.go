package config

import "github.com/katalvlaran/amrmerge/amrvertex"

// MergeOptions are the per-run algorithm knobs: how ACTIVE/LOW is
// decided, which deepness direction the merge tree and disjoint sets
// use, and what sparsification keeps.
type MergeOptions struct {
	Threshold         amrvertex.Value
	RelativeThreshold amrvertex.Value
	UseRelative       bool
	Negate            bool
	Preserve          bool
	Special           func(amrvertex.Id) bool
}

// MergeOption customizes a MergeOptions before a run begins, following
// BuilderOption's functional-option shape: validate and panic on
// meaningless inputs, never on a missing one (defaults apply).
type MergeOption func(*MergeOptions)

// WithThreshold sets the absolute threshold ρ. Mutually exclusive with
// WithRelativeThreshold; whichever is applied last wins.
func WithThreshold(rho amrvertex.Value) MergeOption {
	return func(o *MergeOptions) {
		o.Threshold = rho
		o.UseRelative = false
	}
}

// WithRelativeThreshold sets the factor α such that ρ = α · global_mean.
// alpha must be positive.
func WithRelativeThreshold(alpha amrvertex.Value) MergeOption {
	if alpha <= 0 {
		panic("config: WithRelativeThreshold(alpha<=0)")
	}
	return func(o *MergeOptions) {
		o.RelativeThreshold = alpha
		o.UseRelative = true
	}
}

// WithNegate selects the deepness direction: false orders toward the
// maximum, true toward the minimum.
func WithNegate(negate bool) MergeOption {
	return func(o *MergeOptions) { o.Negate = negate }
}

// WithPreservePlainVertices sets MergeOptions.Preserve, which is handed
// on to block.New and recorded in checkpoints. Blocks keep plain
// (non-critical) vertices in supernodes whether or not it is set, and
// sparsification does not consult it.
func WithPreservePlainVertices(preserve bool) MergeOption {
	return func(o *MergeOptions) { o.Preserve = preserve }
}

// WithSpecial sets the predicate deciding which vertices sparsification
// must keep. Panics on nil — a run with no special vertices at all
// should pass a predicate that always returns false, not a nil one.
func WithSpecial(fn func(amrvertex.Id) bool) MergeOption {
	if fn == nil {
		panic("config: WithSpecial(nil)")
	}
	return func(o *MergeOptions) { o.Special = fn }
}

// NewMergeOptions resolves opts into a MergeOptions, starting from
// defaults: absolute threshold 0, non-negated (max-seeking), no
// preserved plain vertices, and a special predicate that keeps
// nothing.
func NewMergeOptions(opts ...MergeOption) *MergeOptions {
	o := &MergeOptions{
		Special: func(amrvertex.Id) bool { return false },
	}
	for _, opt := range opts {
		opt(o)
	}
	return o
}
