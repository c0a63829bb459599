package team

import "fmt"

// Team is a two-player side competing in a season. Display metadata rides
// along for the UI layer but never feeds any aggregation.
type Team struct {
	ID           string
	Name         string
	Abbreviation string
	Color        string
	Icon         string
	LogoURL      string
}

func (t Team) Validate() error {
	if t.ID == "" {
		return fmt.Errorf("team id is required")
	}
	if t.Name == "" {
		return fmt.Errorf("team name is required")
	}

	return nil
}
