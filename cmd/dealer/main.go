package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/fadedpez/frenchdeck/internal/config"
	"github.com/fadedpez/frenchdeck/pkg/cards"
	dealRepo "github.com/fadedpez/frenchdeck/pkg/repositories/deal"
	"github.com/fadedpez/frenchdeck/pkg/services/dealer"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading configuration:", err)
		os.Exit(1)
	}

	// Development runs keep deal history in memory; production persists it
	var repo dealRepo.Repository
	if cfg.IsDevelopment() {
		repo = dealRepo.NewMemoryRepository()
	} else {
		repo, err = dealRepo.NewSQLiteRepository(filepath.Join(cfg.DataDir, "deals.db"))
		if err != nil {
			fmt.Println("Error opening deal database:", err)
			os.Exit(1)
		}
	}
	defer repo.Close()

	service := dealer.NewService(repo)

	ctx := context.Background()
	session, err := service.StartSession(ctx, dealer.SessionOptions{
		DeckType:     cards.DeckType(cfg.DeckType),
		ShuffleCount: cfg.ShuffleCount,
	})
	if err != nil {
		fmt.Println("Error starting session:", err)
		os.Exit(1)
	}

	fmt.Printf("Session %s: dealing %d cards\n", session.ID, cfg.DealCount)
	for i := 0; i < cfg.DealCount; i++ {
		card, ok, err := service.DealTop(ctx, session)
		if err != nil {
			fmt.Println("Error recording deal:", err)
		}
		if !ok {
			fmt.Println("Deck is exhausted")
			break
		}
		fmt.Printf("  %s (value %d)\n", card, card.Rank.NumericValue(cfg.AcesHigh))
	}
	fmt.Printf("%d cards remaining\n", service.Remaining(session))
}
