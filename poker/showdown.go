package poker

import (
	"fmt"
	"sort"

	"github.com/lazharichir/deck/cards"
)

// Standing is one player's position after a showdown
type Standing struct {
	PlayerID string
	Result   Result
	Winner   bool
	Place    int // 0 for first place; tied players share a place
}

// Showdown evaluates the cards of every player and returns the standings,
// best hand first. Players tied with the best hand are all winners. Ties
// are listed by player ID.
func Showdown(players map[string][]cards.Card) ([]Standing, error) {
	if len(players) == 0 {
		return nil, nil
	}

	standings := make([]Standing, 0, len(players))
	for playerID, cs := range players {
		result, err := Evaluate(cs)
		if err != nil {
			return nil, fmt.Errorf("player %s: %w", playerID, err)
		}
		standings = append(standings, Standing{PlayerID: playerID, Result: result})
	}

	sort.Slice(standings, func(i, j int) bool {
		if c := Compare(standings[i].Result, standings[j].Result); c != 0 {
			return c > 0
		}
		return standings[i].PlayerID < standings[j].PlayerID
	})

	place := 0
	for i := range standings {
		if i > 0 && Compare(standings[i].Result, standings[i-1].Result) != 0 {
			place = i
		}
		standings[i].Place = place
		standings[i].Winner = place == 0
	}

	return standings, nil
}
