package parameter

// Enemy
const (
	// EnemyDamage is hit points removed per attack
	EnemyDamage = 10

	// EnemyMovesPerStep throttles enemies to act once every N ticks
	EnemyMovesPerStep = 3
)
