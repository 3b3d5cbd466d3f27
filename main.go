package main

import (
	"fmt"
	"os"
	"time"

	artist "bidstar/internal/artistService"
	auction "bidstar/internal/auctionService"
	"bidstar/internal/config"
	"bidstar/internal/fixtures"
	label "bidstar/internal/labelService"
	"bidstar/internal/repository"
	"bidstar/internal/server"
	"bidstar/internal/trial"
)

func main() {
	cfg := config.Load()

	trialSettings := trial.Settings{
		Days:               cfg.TrialDays,
		MaxPosts:           cfg.TrialMaxPosts,
		RequireActiveTrial: cfg.RequireActiveTrialToPost,
	}

	repo := repository.NewMemoryRepo()
	prepopulate(repo, trialSettings)

	auctionSvc := auction.NewAuctionService(repo)
	artistSvc := artist.NewArtistService(repo, trialSettings, cfg.ArtistGenreLimit)
	labelSvc := label.NewLabelService(repo, cfg.LabelGenreLimit)

	router := server.SetupRouter(auctionSvc, artistSvc, labelSvc)

	fmt.Printf("Starting marketplace server on %s...\n", cfg.Addr())
	if err := router.Run(cfg.Addr()); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to start server: %v\n", err)
		os.Exit(1)
	}
}

// prepopulate seeds the in-memory repo with the demo marketplace data
func prepopulate(repo *repository.MemoryRepo, trialSettings trial.Settings) {
	now := time.Now().UTC()

	for _, a := range fixtures.Artists(now, trialSettings) {
		if err := repo.AddArtist(a); err != nil {
			fmt.Fprintf(os.Stderr, "Failed to seed artist %s: %v\n", a.ArtistID, err)
		}
	}
	for _, l := range fixtures.Labels() {
		if err := repo.AddLabel(l); err != nil {
			fmt.Fprintf(os.Stderr, "Failed to seed label %s: %v\n", l.LabelID, err)
		}
	}
	for _, a := range fixtures.Auctions(now) {
		if err := repo.AddAuction(a); err != nil {
			fmt.Fprintf(os.Stderr, "Failed to seed auction %s: %v\n", a.AuctionID, err)
		}
	}
}
