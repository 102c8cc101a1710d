package main

import (
	"fmt"
	"os"
	"time"

	"coin-market/internal/auction"
	"coin-market/internal/auth"
	"coin-market/internal/catalog"
	"coin-market/internal/config"
	"coin-market/internal/feed"
	model "coin-market/internal/models"
	"coin-market/internal/repository"
	"coin-market/internal/server"
	"coin-market/internal/worker"
	"coin-market/utils"

	"github.com/mileusna/crontab"
	"github.com/shopspring/decimal"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	auctionStore, coinStore, err := buildStores(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize storage: %v\n", err)
		os.Exit(1)
	}

	prepopulateLots(auctionStore)

	auctionSvc := auction.NewService(auctionStore)
	catalogSvc := catalog.NewService(coinStore)
	authSvc := auth.NewService(cfg.AdminUsername, cfg.AdminPasswordHash, cfg.JWTSecret, cfg.TokenTTL)

	hub := feed.NewHub()

	sweeper := worker.NewSweeper(auctionStore, hub)
	ctab := crontab.New()
	if err := sweeper.Start(ctab, cfg.SweepSchedule); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to schedule expiry sweep: %v\n", err)
		os.Exit(1)
	}

	router := server.SetupRouter(auctionSvc, catalogSvc, authSvc, hub)

	fmt.Printf("Starting marketplace server on %s...\n", cfg.Addr())
	if err := router.Run(cfg.Addr()); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to start server: %v\n", err)
		os.Exit(1)
	}
}

// buildStores picks the storage backends: MySQL when a DSN is configured,
// otherwise the in-memory lot store and JSON file catalog.
func buildStores(cfg config.Config) (repository.AuctionStore, repository.CoinStore, error) {
	if cfg.DatabaseDSN == "" {
		utils.Info("using in-memory auction store and file catalog", map[string]any{
			"catalog_file": cfg.CoinDataFile,
		})
		return repository.NewMemoryAuctionStore(), repository.NewFileCoinStore(cfg.CoinDataFile), nil
	}

	db, err := repository.OpenMySQL(cfg.DatabaseDSN)
	if err != nil {
		return nil, nil, err
	}

	utils.Info("using MySQL stores", nil)
	return repository.NewMySQLAuctionStore(db), repository.NewMySQLCoinStore(db), nil
}

// prepopulateLots seeds sample lots so a fresh deployment has something to bid on
func prepopulateLots(store repository.AuctionStore) {
	existing, err := store.ListAll()
	if err != nil || len(existing) > 0 {
		return
	}

	lots := []model.AuctionLot{
		{
			Title:       "1933 Saint-Gaudens Double Eagle",
			Description: "One of the rarest and most valuable US gold coins ever minted.",
			StartingBid: decimal.NewFromInt(2_500_000),
			EndTime:     time.Now().UTC().Add(7 * 24 * time.Hour),
			Image:       "/images/auctions/double-eagle.jpg",
		},
		{
			Title:       "1794 Flowing Hair Silver Dollar",
			Description: "Believed to be the first silver dollar struck by the US Mint.",
			StartingBid: decimal.NewFromInt(5_000_000),
			EndTime:     time.Now().UTC().Add(10 * 24 * time.Hour),
			Image:       "/images/auctions/flowing-hair.jpg",
		},
		{
			Title:       "723 Umayyad Gold Dinar",
			Description: "Struck from gold mined at the caliph's own mine.",
			StartingBid: decimal.NewFromInt(4_000_000),
			EndTime:     time.Now().UTC().Add(14 * 24 * time.Hour),
			Image:       "/images/auctions/umayyad-dinar.jpg",
		},
	}

	for _, lot := range lots {
		if _, err := store.Append(lot); err != nil {
			utils.Warn("failed to seed auction lot", map[string]any{"title": lot.Title, "error": err.Error()})
		}
	}
}
