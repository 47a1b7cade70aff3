package routes

import (
	"campus_hop/internal/controllers"

	"github.com/gin-gonic/gin"
)

func WebSocketRoutes(r *gin.Engine, ws *controllers.WebSocketController) {
	wsRoutes := r.Group("/ws")
	{
		// Token travels as a query parameter; browsers cannot set headers on
		// websocket upgrades.
		wsRoutes.GET("/location", ws.HandlePositionWebSocket)
	}
}
