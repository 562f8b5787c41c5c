package http

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	billingUC "bureau/internal/application/billing/usecases"
	leadUC "bureau/internal/application/lead/usecases"
	ticketUC "bureau/internal/application/ticket/usecases"
	"bureau/internal/infrastructure/config"
	"bureau/internal/infrastructure/ratelimit"
	"bureau/internal/infrastructure/render"
	"bureau/internal/infrastructure/repository"
	"bureau/internal/infrastructure/sequence"
	billinghandlers "bureau/internal/interfaces/http/handlers/billing"
	leadhandlers "bureau/internal/interfaces/http/handlers/lead"
	tickethandlers "bureau/internal/interfaces/http/handlers/ticket"
	"bureau/internal/interfaces/http/middleware"
	"bureau/internal/interfaces/http/routes"
	"bureau/internal/shared/db"
	"bureau/internal/shared/logger"
)

// Router wires repositories, use cases and handlers onto one gin engine.
type Router struct {
	engine         *gin.Engine
	cfg            *config.Config
	ticketHandler  *tickethandlers.TicketHandler
	billingHandler *billinghandlers.BillingHandler
	leadHandler    *leadhandlers.LeadHandler
	principal      *middleware.PrincipalMiddleware
	logger         logger.Interface
}

// NewRouter creates a new HTTP router with all dependencies
func NewRouter(database *gorm.DB, redisClient *redis.Client, cfg *config.Config, log logger.Interface) *Router {
	engine := gin.New()

	ticketRepo := repository.NewTicketRepository(database)
	columnRepo := repository.NewColumnRepository(database)
	segmentRepo := repository.NewTimeSegmentRepository(database)
	commentRepo := repository.NewCommentRepository(database)
	eventRepo := repository.NewEventRepository(database)
	quoteRepo := repository.NewQuoteRepository(database)
	invoiceRepo := repository.NewInvoiceRepository(database)
	leadRepo := repository.NewLeadRepository(database)

	txMgr := db.NewTransactionManager(database)
	allocator := sequence.NewAllocator(database, log)
	pdfRenderer := render.NewPDFRenderer()
	termsRenderer := render.NewTermsRenderer()
	leadLimiter := ratelimit.NewFixedWindowLimiter(redisClient, &cfg.LeadIntake)

	createTicketUC := ticketUC.NewCreateTicketUseCase(ticketRepo, columnRepo, eventRepo, txMgr, log)
	moveTicketUC := ticketUC.NewMoveTicketUseCase(ticketRepo, columnRepo, segmentRepo, eventRepo, txMgr, log)
	addCommentUC := ticketUC.NewAddCommentUseCase(ticketRepo, commentRepo, eventRepo, txMgr, log)
	listSegmentsUC := ticketUC.NewListTimeSegmentsUseCase(ticketRepo, segmentRepo, log)

	createQuoteUC := billingUC.NewCreateQuoteUseCase(quoteRepo, allocator, txMgr, log)
	acceptQuoteUC := billingUC.NewAcceptQuoteUseCase(quoteRepo, txMgr, log)
	convertQuoteUC := billingUC.NewConvertQuoteUseCase(quoteRepo, invoiceRepo, txMgr, log)
	viewQuoteUC := billingUC.NewViewQuoteUseCase(quoteRepo, termsRenderer, log)
	createInvoiceUC := billingUC.NewCreateInvoiceUseCase(invoiceRepo, txMgr, log)
	issueInvoiceUC := billingUC.NewIssueInvoiceUseCase(invoiceRepo, allocator, pdfRenderer, txMgr, log)
	getDocumentUC := billingUC.NewGetInvoiceDocumentUseCase(invoiceRepo, log)

	submitLeadUC := leadUC.NewSubmitLeadUseCase(leadRepo, leadLimiter, log)

	ticketHandler := tickethandlers.NewTicketHandler(createTicketUC, moveTicketUC, addCommentUC, listSegmentsUC, log)
	billingHandler := billinghandlers.NewBillingHandler(
		createQuoteUC, acceptQuoteUC, convertQuoteUC, viewQuoteUC,
		createInvoiceUC, issueInvoiceUC, getDocumentUC, log,
	)
	leadHandler := leadhandlers.NewLeadHandler(submitLeadUC, log)

	return &Router{
		engine:         engine,
		cfg:            cfg,
		ticketHandler:  ticketHandler,
		billingHandler: billingHandler,
		leadHandler:    leadHandler,
		principal:      middleware.NewPrincipalMiddleware(log),
		logger:         log,
	}
}

// SetupRoutes configures all HTTP routes
func (r *Router) SetupRoutes() {
	r.engine.Use(middleware.Logger(r.logger))
	r.engine.Use(middleware.Recovery())
	r.engine.Use(middleware.CORS(r.cfg.Server.AllowedOrigins))

	r.engine.GET("/health", r.healthCheck)

	routes.SetupTicketRoutes(r.engine, &routes.TicketRouteConfig{
		TicketHandler: r.ticketHandler,
		Principal:     r.principal,
	})

	routes.SetupBillingRoutes(r.engine, &routes.BillingRouteConfig{
		BillingHandler: r.billingHandler,
		Principal:      r.principal,
	})

	routes.SetupLeadRoutes(r.engine, &routes.LeadRouteConfig{
		LeadHandler: r.leadHandler,
	})
}

func (r *Router) healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": "ok",
		"time":   time.Now().UTC().Format(time.RFC3339),
	})
}

// GetEngine returns the Gin engine
func (r *Router) GetEngine() *gin.Engine {
	return r.engine
}

// Run starts the HTTP server
func (r *Router) Run(addr string) error {
	return r.engine.Run(addr)
}
