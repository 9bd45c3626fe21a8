package parameter

// System Execution Priorities (lower runs first)
const (
	PrioritySpawn     = 10
	PriorityEnemy     = 20
	PriorityCull      = 30 // After enemy, clears dangling targets
	PriorityGenerator = 40
)
