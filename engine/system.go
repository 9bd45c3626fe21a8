package engine

// System is one phase of the simulation tick
type System interface {
	Name() string
	Priority() int // Lower values run first
	Update()
}
