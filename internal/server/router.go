package server

import (
	handler "bidstar/services/marketplace/handler"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// SetupRouter configures all Gin routes for the application
func SetupRouter(auctionService handler.AuctionServiceInterface, artistService handler.ArtistServiceInterface, labelService handler.LabelServiceInterface) *gin.Engine {
	router := gin.New() // New router without default middleware for full control over middleware and logging

	router.Use(gin.Recovery())          // recover from panics
	router.Use(RequestLoggerMiddleware) // custom request logging
	router.Use(cors.Default())          // the mobile client calls cross-origin in development

	auctionHandler := handler.NewAuctionHandler(auctionService)
	artistHandler := handler.NewArtistHandler(artistService)
	labelHandler := handler.NewLabelHandler(labelService)

	bids := router.Group("/bids")
	{
		bids.POST("", auctionHandler.PlaceBidHandler)
	}

	auctions := router.Group("/auctions")
	{
		auctions.GET("", auctionHandler.ListAuctionsHandler)
		auctions.GET("/:auction_id", auctionHandler.GetAuctionHandler)
		auctions.GET("/:auction_id/bids", auctionHandler.GetBidsByAuctionHandler)
		auctions.GET("/:auction_id/winning", auctionHandler.GetWinningBidHandler)
	}

	artists := router.Group("/artists")
	{
		artists.POST("", artistHandler.RegisterArtistHandler)
		artists.GET("", artistHandler.SearchArtistsHandler)
		artists.GET("/:artist_id", artistHandler.GetArtistHandler)
		artists.POST("/:artist_id/posts", artistHandler.PostMusicHandler)
	}

	labels := router.Group("/labels")
	{
		labels.POST("", labelHandler.RegisterLabelHandler)
		labels.GET("", labelHandler.ListLabelsHandler)
		labels.GET("/:label_id", labelHandler.GetLabelHandler)
	}

	return router
}
