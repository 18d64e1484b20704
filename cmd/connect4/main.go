package main

import (
	"errors"
	"io"
	"log"
	"os"

	"github.com/iamasit07/connect-four/internal/config"
	"github.com/iamasit07/connect-four/internal/console"
	"github.com/iamasit07/connect-four/internal/domain"
	"github.com/iamasit07/connect-four/pkg/uid"
)

func main() {
	// The board goes to stdout; move logs are only wanted when debugging.
	if os.Getenv("CONNECT4_DEBUG") == "" {
		log.SetOutput(io.Discard)
	}

	config.LoadEnv()
	cfg := config.LoadConfig()

	symbols := console.DefaultSymbols()
	symbols[domain.PlayerA] = cfg.PlayerASymbol
	symbols[domain.PlayerB] = cfg.PlayerBSymbol

	gameID := uid.GenerateGameID()
	log.Printf("[GAME] Session %s started", gameID)

	outcome, err := console.NewDriver(os.Stdin, os.Stdout, symbols).Run()
	if err != nil {
		if errors.Is(err, io.ErrUnexpectedEOF) {
			log.Printf("[GAME] Session %s ended: input closed", gameID)
		} else {
			log.Printf("[GAME] Session %s failed: %v", gameID, err)
		}
		os.Exit(1)
	}

	log.Printf("[GAME] Session %s finished: %s (winner %s)", gameID, outcome.Status, symbols.For(outcome.Winner))
}
