package scatter

// Default tuning values. The per-side clearance is the 50px ring drawn
// around each ripple plus a 30px gap.
const (
	DefaultBaseSize        = 200.0
	DefaultMaxSize         = 420.0
	DefaultClearance       = 80.0
	DefaultMaxTrials       = 300
	DefaultStackGap        = 150.0
	DefaultStackJitter     = 200.0
	DefaultRelaxGap        = 140.0
	DefaultRelaxPasses     = 25
	DefaultResizeTolerance = 10.0
)

// Options tunes the scatter layout. The zero value is not useful; start from
// [DefaultOptions].
type Options struct {
	// BaseSize and MaxSize bound every estimated diameter.
	BaseSize float64 `mapstructure:"base_size" json:"base_size"`
	MaxSize  float64 `mapstructure:"max_size" json:"max_size"`

	// Clearance is added to the radius of both circles during placement, so
	// two fresh neighbours keep a gap of at least 2*Clearance.
	Clearance float64 `mapstructure:"clearance" json:"clearance"`

	// MaxTrials bounds the rejection sampling of one placement.
	MaxTrials int `mapstructure:"max_trials" json:"max_trials"`

	// StackGap is the vertical gap above a stacked fallback circle and
	// StackJitter the width of the horizontal jitter band around the centre.
	StackGap    float64 `mapstructure:"stack_gap" json:"stack_gap"`
	StackJitter float64 `mapstructure:"stack_jitter" json:"stack_jitter"`

	// RelaxGap is the boundary gap relaxation enforces between every pair.
	RelaxGap    float64 `mapstructure:"relax_gap" json:"relax_gap"`
	RelaxPasses int     `mapstructure:"relax_passes" json:"relax_passes"`

	// ResizeTolerance is the largest diameter change treated as "same size".
	ResizeTolerance float64 `mapstructure:"resize_tolerance" json:"resize_tolerance"`
}

// DefaultOptions returns the stock tuning.
func DefaultOptions() Options {
	return Options{
		BaseSize:        DefaultBaseSize,
		MaxSize:         DefaultMaxSize,
		Clearance:       DefaultClearance,
		MaxTrials:       DefaultMaxTrials,
		StackGap:        DefaultStackGap,
		StackJitter:     DefaultStackJitter,
		RelaxGap:        DefaultRelaxGap,
		RelaxPasses:     DefaultRelaxPasses,
		ResizeTolerance: DefaultResizeTolerance,
	}
}

// withDefaults fills zero fields from [DefaultOptions].
func (o Options) withDefaults() Options {
	d := DefaultOptions()
	if o.BaseSize <= 0 {
		o.BaseSize = d.BaseSize
	}
	if o.MaxSize < o.BaseSize {
		o.MaxSize = max(d.MaxSize, o.BaseSize)
	}
	if o.Clearance < 0 {
		o.Clearance = d.Clearance
	}
	if o.MaxTrials <= 0 {
		o.MaxTrials = d.MaxTrials
	}
	if o.StackGap <= 0 {
		o.StackGap = d.StackGap
	}
	if o.StackJitter < 0 {
		o.StackJitter = d.StackJitter
	}
	if o.RelaxGap < 0 {
		o.RelaxGap = d.RelaxGap
	}
	if o.RelaxPasses <= 0 {
		o.RelaxPasses = d.RelaxPasses
	}
	if o.ResizeTolerance < 0 {
		o.ResizeTolerance = d.ResizeTolerance
	}
	return o
}
