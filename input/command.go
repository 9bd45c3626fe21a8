package input

// Command is one player action per loop iteration
type Command uint8

const (
	CommandNone Command = iota
	CommandMoveUp
	CommandMoveDown
	CommandMoveLeft
	CommandMoveRight
	CommandPlaceWall
	CommandPlaceGoldMine
	CommandPlaceElixirCollector
	CommandCollect
	CommandQuit
)

func (c Command) String() string {
	for name, cmd := range actionRegistry {
		if cmd == c && name != "none" {
			return name
		}
	}
	return "none"
}
