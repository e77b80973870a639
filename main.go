package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/lazharichir/deck/cards"
	"github.com/lazharichir/deck/deck"
	"github.com/lazharichir/deck/hand"
	"github.com/lazharichir/deck/poker"
	"github.com/pterm/pterm"
)

func main() {
	logger := slog.New(pterm.NewSlogHandler(&pterm.DefaultLogger))

	cfg, err := LoadConfig(os.Args[1:])
	if err != nil {
		logger.Error("Invalid configuration", "error", err)
		os.Exit(1)
	}

	d := deck.New(cfg.Jokers)
	if cfg.Seed != 0 {
		d.Shuffle(deck.NewSeededSource(cfg.Seed))
	} else {
		d.Shuffle(nil)
	}
	logger.Info("Dealing", "hands", cfg.Hands, "cards", cfg.Cards, "deck", d.ID)

	hands, err := d.DealHands(cfg.Hands, cfg.Cards)
	if err != nil {
		logger.Error("Deal failed", "error", err)
		os.Exit(1)
	}

	ctx := hand.WithOrder(context.Background(), cfg.Order)
	players := make(map[string][]cards.Card, len(hands))
	for i, h := range hands {
		id := fmt.Sprintf("player %d", i+1)
		players[id] = h.Cards()
		pterm.Printfln("%-10s %s", id, colour(ctx, h))
	}
	pterm.Printfln("%d cards left in the deck", d.Len())

	standings, err := poker.Showdown(players)
	if err != nil {
		logger.Warn("No showdown", "error", err)
		return
	}

	var b strings.Builder
	for _, s := range standings {
		desc, err := poker.Describe(players[s.PlayerID])
		if err != nil {
			desc = s.Result.Hand.String()
		}
		line := fmt.Sprintf("%d. %s: %s", s.Place+1, s.PlayerID, desc)
		if s.Winner {
			line = pterm.LightGreen(line)
		}
		b.WriteString(line + "\n")
	}
	pterm.DefaultBox.WithTitle(pterm.LightYellow("SHOWDOWN")).Println(strings.TrimRight(b.String(), "\n"))
}

// colour renders a hand in the active order with red suits in red
func colour(ctx context.Context, h *hand.Hand) string {
	cs, err := h.Sorted(ctx, hand.SortActive, false)
	if err != nil {
		cs = h.Cards()
	}
	var b strings.Builder
	for _, c := range cs {
		s := fmt.Sprintf("%-4.3v", c)
		if c.Suit.IsRed() {
			s = pterm.LightRed(s)
		}
		b.WriteString(s)
	}
	return b.String()
}
