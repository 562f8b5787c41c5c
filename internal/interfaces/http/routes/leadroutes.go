package routes

import (
	"github.com/gin-gonic/gin"

	leadhandlers "bureau/internal/interfaces/http/handlers/lead"
)

type LeadRouteConfig struct {
	LeadHandler *leadhandlers.LeadHandler
}

// SetupLeadRoutes registers the public lead intake endpoint. Throttling
// happens in the use case against redis, not in a gin middleware, so the
// limiter decision and the persistence share one code path.
func SetupLeadRoutes(engine *gin.Engine, config *LeadRouteConfig) {
	public := engine.Group("/public/leads")
	{
		public.POST("", config.LeadHandler.SubmitLead)
	}
}
