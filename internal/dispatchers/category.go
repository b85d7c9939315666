package dispatchers

// CommandCategory groups top-level commands in help output.
type CommandCategory int

const (
	CategoryUncategorized CommandCategory = iota
	CategoryWorld                         // time and world state
	CategoryPlayers                       // player records and inventory
	CategoryChat                          // say, me
	CategoryAdmin                         // operators, execute
	CategoryHost                          // help, history, config
)

func (c CommandCategory) String() string {
	switch c {
	case CategoryWorld:
		return "world"
	case CategoryPlayers:
		return "players"
	case CategoryChat:
		return "chat"
	case CategoryAdmin:
		return "administration"
	case CategoryHost:
		return "console and history"
	default:
		return "other commands"
	}
}

var categoryOrder = []CommandCategory{
	CategoryWorld,
	CategoryPlayers,
	CategoryChat,
	CategoryAdmin,
	CategoryHost,
	CategoryUncategorized,
}

// CategoryOrder returns the display order for categories.
func CategoryOrder() []CommandCategory {
	return categoryOrder
}
