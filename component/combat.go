package component

// CombatComponent tracks the hit points of anything enemies can attack
type CombatComponent struct {
	// HitPoints is the remaining hit points, <= 0 means destroyed
	HitPoints int

	// MaxHitPoints is the hit points at creation
	MaxHitPoints int
}

// NewCombat creates a combat component at full health
func NewCombat(hp int) CombatComponent {
	return CombatComponent{HitPoints: hp, MaxHitPoints: hp}
}

// TakeDamage subtracts damage and reports whether this hit destroyed it
func (c *CombatComponent) TakeDamage(damage int) bool {
	wasAlive := c.HitPoints > 0
	c.HitPoints -= damage
	return wasAlive && c.HitPoints <= 0
}

// Alive reports whether hit points remain
func (c *CombatComponent) Alive() bool {
	return c.HitPoints > 0
}
