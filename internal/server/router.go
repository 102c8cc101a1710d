package server

import (
	"coin-market/internal/auction"
	"coin-market/internal/auth"
	"coin-market/internal/catalog"
	"coin-market/internal/feed"
	auctionhandler "coin-market/services/auction/handler"
	authhandler "coin-market/services/auth/handler"
	coinhandler "coin-market/services/catalog/handler"

	"github.com/gin-gonic/gin"
)

// SetupRouter configures all Gin routes for the application
func SetupRouter(auctionSvc *auction.Service, catalogSvc *catalog.Service, authSvc *auth.Service, hub *feed.Hub) *gin.Engine {
	router := gin.New() // New router without default middleware for full control over middleware and logging

	router.Use(gin.Recovery())          // recover from panics
	router.Use(RequestLoggerMiddleware) // custom request logging

	auctionHandler := auctionhandler.NewAuctionHandler(auctionSvc, authSvc, hub)
	coinHandler := coinhandler.NewCoinHandler(catalogSvc)
	authHandler := authhandler.NewAuthHandler(authSvc)

	api := router.Group("/api")
	{
		auctions := api.Group("/auctions")
		{
			auctions.GET("", auctionHandler.ListAuctionsHandler)
			// place_bid is public; the handler gates add_auction itself
			auctions.POST("", auctionHandler.SubmitActionHandler)
		}

		coins := api.Group("/coins")
		{
			coins.GET("", coinHandler.ListCoinsHandler)

			protected := coins.Group("", AdminAuthMiddleware(authSvc))
			{
				protected.POST("", coinHandler.CreateCoinHandler)
				protected.PUT("/:id", coinHandler.UpdateCoinHandler)
				protected.DELETE("/:id", coinHandler.DeleteCoinHandler)
			}
		}

		api.POST("/admin/login", authHandler.LoginHandler)
	}

	if hub != nil {
		router.GET("/ws/bids", hub.HandleWebSocket)
	}

	return router
}
