package main

import (
	"flag"
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/lazharichir/deck/hand"
)

// Config holds the settings of a deal
type Config struct {
	Hands  int
	Cards  int
	Seed   int64
	Jokers bool
	Order  hand.Order
}

var orderNames = map[string]hand.Order{
	"default":   hand.SortDefault,
	"aces-high": hand.SortAcesHigh,
	"poker":     hand.SortPoker,
	"unsorted":  hand.SortUnsorted,
}

// LoadConfig reads DECK_* variables, from the environment or a .env file,
// and lets command line flags override them
func LoadConfig(args []string) (Config, error) {
	// a missing .env file is fine
	_ = godotenv.Load()

	cfg := Config{Hands: 2, Cards: 7, Order: hand.SortPoker}
	var err error
	if cfg.Hands, err = envInt("DECK_HANDS", cfg.Hands); err != nil {
		return cfg, err
	}
	if cfg.Cards, err = envInt("DECK_CARDS", cfg.Cards); err != nil {
		return cfg, err
	}
	seed, err := envInt("DECK_SEED", 0)
	if err != nil {
		return cfg, err
	}
	if v := os.Getenv("DECK_JOKERS"); v != "" {
		if cfg.Jokers, err = strconv.ParseBool(v); err != nil {
			return cfg, fmt.Errorf("DECK_JOKERS: %w", err)
		}
	}
	orderName := os.Getenv("DECK_ORDER")
	if orderName == "" {
		orderName = "poker"
	}

	fs := flag.NewFlagSet("deck", flag.ContinueOnError)
	fs.IntVar(&cfg.Hands, "hands", cfg.Hands, "number of hands to deal")
	fs.IntVar(&cfg.Cards, "cards", cfg.Cards, "cards per hand")
	fs.Int64Var(&cfg.Seed, "seed", int64(seed), "shuffle seed, 0 for a random shuffle")
	fs.BoolVar(&cfg.Jokers, "jokers", cfg.Jokers, "include the two jokers")
	fs.StringVar(&orderName, "order", orderName, "display order: default, aces-high, poker or unsorted")
	if err := fs.Parse(args); err != nil {
		return cfg, err
	}

	order, ok := orderNames[orderName]
	if !ok {
		return cfg, fmt.Errorf("%w: %q", hand.ErrUnknownOrder, orderName)
	}
	cfg.Order = order
	return cfg, nil
}

func envInt(key string, def int) (int, error) {
	v := os.Getenv(key)
	if v == "" {
		return def, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return def, fmt.Errorf("%s: %w", key, err)
	}
	return n, nil
}
