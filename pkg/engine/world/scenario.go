package world

// Scenario describes the adventure a dungeon definition tells
type Scenario struct {
	Name           string
	Description    string
	WelcomeMessage string
	Difficulty     string
}

// DefaultScenario returns the scenario used when a definition omits one
func DefaultScenario() Scenario {
	return Scenario{
		Name:           "Default Scenario",
		Description:    "A default scenario",
		WelcomeMessage: "Welcome to the dungeon!",
		Difficulty:     "medium",
	}
}
