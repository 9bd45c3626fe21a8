package component

// GeneratorComponent accumulates a resource until full
// Collection is only possible once per fill cycle
type GeneratorComponent struct {
	Accumulated int
	Capacity    int
	PerTickGain int

	// Full drives the display icon only
	Full bool
}

// NewGenerator creates an empty generator
func NewGenerator(capacity, perTickGain int) *GeneratorComponent {
	return &GeneratorComponent{
		Capacity:    capacity,
		PerTickGain: perTickGain,
	}
}

// Tick accumulates one tick of yield, saturating at capacity
func (g *GeneratorComponent) Tick() {
	if g.Accumulated >= g.Capacity {
		return
	}
	g.Accumulated += g.PerTickGain
	if g.Accumulated >= g.Capacity {
		g.Accumulated = g.Capacity
		g.Full = true
	}
}

// Collect drains a full generator and returns its yield, 0 if not yet full
func (g *GeneratorComponent) Collect() int {
	if g.Accumulated < g.Capacity {
		return 0
	}
	collected := g.Accumulated
	g.Accumulated = 0
	g.Full = false
	return collected
}
