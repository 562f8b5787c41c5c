package routes

import (
	"github.com/gin-gonic/gin"

	tickethandlers "bureau/internal/interfaces/http/handlers/ticket"
	"bureau/internal/interfaces/http/middleware"
)

type TicketRouteConfig struct {
	TicketHandler *tickethandlers.TicketHandler
	Principal     *middleware.PrincipalMiddleware
}

func SetupTicketRoutes(engine *gin.Engine, config *TicketRouteConfig) {
	tickets := engine.Group("/tickets")
	tickets.Use(config.Principal.RequirePrincipal())
	{
		tickets.POST("", config.TicketHandler.CreateTicket)

		// Register action paths before the bare parameterized ones to
		// avoid route conflicts.
		tickets.POST("/:id/move", config.TicketHandler.MoveTicket)
		tickets.POST("/:id/comments", config.TicketHandler.AddComment)
		tickets.GET("/:id/time-segments", config.TicketHandler.ListTimeSegments)
	}
}
