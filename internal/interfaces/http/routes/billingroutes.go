package routes

import (
	"github.com/gin-gonic/gin"

	billinghandlers "bureau/internal/interfaces/http/handlers/billing"
	"bureau/internal/interfaces/http/middleware"
)

type BillingRouteConfig struct {
	BillingHandler *billinghandlers.BillingHandler
	Principal      *middleware.PrincipalMiddleware
}

func SetupBillingRoutes(engine *gin.Engine, config *BillingRouteConfig) {
	quotes := engine.Group("/quotes")
	quotes.Use(config.Principal.RequirePrincipal())
	{
		quotes.POST("", config.BillingHandler.CreateQuote)
		quotes.POST("/:id/convert", config.BillingHandler.ConvertQuote)
	}

	invoices := engine.Group("/invoices")
	invoices.Use(config.Principal.RequirePrincipal())
	{
		invoices.POST("", config.BillingHandler.CreateInvoice)
		invoices.POST("/:id/issue", config.BillingHandler.IssueInvoice)
		invoices.GET("/:id/document", config.BillingHandler.GetInvoiceDocument)
	}

	// The public surface is what a quote recipient reaches from the
	// emailed link. Viewing is open; acceptance needs the principal the
	// gateway resolves from the link token, so the stamp names a user.
	public := engine.Group("/public/quotes")
	{
		public.GET("/:id", config.BillingHandler.ViewQuote)
		public.POST("/:id/accept", config.Principal.RequirePrincipal(), config.BillingHandler.AcceptQuote)
	}
}
