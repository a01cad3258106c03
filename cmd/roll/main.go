// Package main provides a CLI tool for rolling dice expressions and
// flipping coins.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/cory-johannsen/tomb/dice"
	"github.com/cory-johannsen/tomb/internal/config"
	"github.com/cory-johannsen/tomb/internal/observability"
)

func main() {
	configPath := flag.String("config", "", "path to configuration file (optional)")
	coins := flag.Int("coins", 0, "number of coins to flip before rolling expressions")
	flag.Parse()

	if *coins == 0 && flag.NArg() == 0 {
		fmt.Fprintln(os.Stderr, "usage: roll [-config path] [-coins n] [expression ...]")
		fmt.Fprintln(os.Stderr, "  expressions: d20, 2d6+3, 4d8-2, 4d6kh3")
		os.Exit(1)
	}

	cfg := config.Default()
	if *configPath != "" {
		loaded, err := config.Load(*configPath)
		if err != nil {
			log.Fatalf("loading config: %v", err)
		}
		cfg = loaded
	}

	logger, err := observability.NewLogger(cfg.Logging)
	if err != nil {
		log.Fatalf("building logger: %v", err)
	}
	defer logger.Sync()

	var src dice.Source
	switch cfg.Roller.Source {
	case "seeded":
		src = dice.NewSeededSource(cfg.Roller.Seed)
	default:
		src = dice.NewCryptoSource()
	}
	roller := dice.NewLoggedRoller(dice.NewRngRoller(src), logger)

	for i := 0; i < *coins; i++ {
		coin := dice.Roll(roller, dice.HeadsUp())
		fmt.Fprintf(os.Stdout, "coin → %s\n", coin.Facing())
	}

	for _, expr := range flag.Args() {
		result, err := dice.RollExpr(expr, roller)
		if err != nil {
			log.Fatalf("rolling %q: %v", expr, err)
		}
		fmt.Fprintln(os.Stdout, result)
	}
}
