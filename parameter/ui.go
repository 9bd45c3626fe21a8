package parameter

// Icons, all two cells wide
const (
	IconPlayer        = '👷'
	IconEnemy         = '👹'
	IconWall          = '🧱'
	IconGoldMine      = '🪨'
	IconGoldMineFull  = '🪙'
	IconCollector     = '💧'
	IconCollectorFull = '🧪'
	IconTownHall      = '🏰'
)

// ASCII fallback icons for terminals without emoji support
const (
	ASCIIPlayer        = '@'
	ASCIIEnemy         = 'X'
	ASCIIWall          = '#'
	ASCIIGoldMine      = 'g'
	ASCIIGoldMineFull  = 'G'
	ASCIICollector     = 'e'
	ASCIICollectorFull = 'E'
	ASCIITownHall      = 'H'
)

// Banner
const (
	GameOverText = "GAME OVER - Town Hall Destroyed!"
)
