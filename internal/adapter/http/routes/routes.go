package routes

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "voltflow_crm/docs" // swagger spec registered by swag init
	"voltflow_crm/internal/adapter/http/handlers"
	"voltflow_crm/internal/adapter/persistence/repository"
	"voltflow_crm/internal/config"
	"voltflow_crm/internal/infrastructure/database"
	"voltflow_crm/internal/infrastructure/metrics"
	"voltflow_crm/internal/infrastructure/payments"
	"voltflow_crm/internal/infrastructure/scheduler"
	"voltflow_crm/internal/usecase"
	"voltflow_crm/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"
)

const shutdownTimeout = 10 * time.Second

// Run wires the service from cfg and serves HTTP until SIGINT or SIGTERM.
func Run(cfg config.Config) error {
	if cfg.GinMode != "" {
		gin.SetMode(cfg.GinMode)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	db, err := database.ConnectPostgres(ctx, cfg.DBDSN, cfg.DBMaxWait)
	if err != nil {
		return fmt.Errorf("connect postgres: %w", err)
	}
	defer closeDB(db)
	if err := repository.Migrate(db); err != nil {
		return fmt.Errorf("migrate: %w", err)
	}

	ddb, err := database.ConnectDynamoDB(ctx, cfg.Dynamo)
	if err != nil {
		return fmt.Errorf("connect dynamodb: %w", err)
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	app := buildApp(cfg, db, repository.NewFlowEventDynamoRepository(ddb), repository.NewInvoicePaymentDynamoRepository(ddb), reg)

	if cfg.SweepSchedule != "" {
		sched, err := scheduler.NewFlowSweepScheduler(cfg.SweepSchedule, app.sweeper)
		if err != nil {
			return fmt.Errorf("flow sweep schedule: %w", err)
		}
		sched.Start()
		defer func() {
			stopCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
			defer cancel()
			sched.Stop(stopCtx)
		}()
	} else {
		log.Printf("[flow][scheduler] disabled")
	}

	router := NewRouter(app.handlers, metrics.NewHTTPMetrics(reg), reg)
	srv := &http.Server{Addr: cfg.Addr(), Handler: router}

	serveErr := make(chan error, 1)
	go func() {
		log.Printf("[http] listening addr=%s", cfg.Addr())
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	select {
	case err := <-serveErr:
		if err != nil {
			return fmt.Errorf("serve: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	log.Printf("[http] shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

type app struct {
	handlers Handlers
	sweeper  usecase.IFlowSweeperUseCase
}

// buildApp assembles repositories, use cases and handlers. The relational
// pipeline lives in db; the activity log and payments are passed in so tests
// can swap the DynamoDB side.
func buildApp(cfg config.Config, db *gorm.DB, events interfaces.IFlowEventRepository, paymentRepo interfaces.IInvoicePaymentRepository, reg prometheus.Registerer) app {
	leadRepo := repository.NewLeadGormRepository(db)
	clientRepo := repository.NewClientGormRepository(db)
	jobRepo := repository.NewJobGormRepository(db)
	quoteRepo := repository.NewQuoteGormRepository(db)
	invoiceRepo := repository.NewInvoiceGormRepository(db)
	tx := repository.NewGormTransactor(db)

	observer := usecase.NewFlowObserver(events, metrics.NewFlowMetrics(reg))

	var gateway interfaces.IPaymentGateway
	if cfg.PaymentMock {
		log.Printf("[payment][gateway] mock mode enabled")
	} else if mp, err := payments.NewMercadoPagoGateway(cfg.MercadoPagoAccessToken); err != nil {
		log.Printf("[payment][gateway] Mercado Pago gateway not configured: %v", err)
	} else {
		gateway = mp
	}

	paymentUseCase := usecase.NewInvoicePaymentUseCase(paymentRepo, invoiceRepo, gateway, observer, usecase.PaymentOptions{
		Mock:              cfg.PaymentMock,
		SandboxPayerEmail: cfg.SandboxPayerEmail,
	})

	return app{
		handlers: Handlers{
			Flow: handlers.NewFlowHandler(usecase.NewFlowUseCase()),
			Leads: handlers.NewLeadHandler(
				usecase.NewLeadUseCase(leadRepo, observer, cfg.PhoneRegion),
				usecase.NewLeadConversionUseCase(leadRepo, clientRepo, tx, observer),
			),
			Clients: handlers.NewClientHandler(usecase.NewClientUseCase(clientRepo, observer, cfg.PhoneRegion)),
			Jobs:    handlers.NewJobHandler(usecase.NewJobUseCase(jobRepo, clientRepo, observer)),
			Quotes: handlers.NewQuoteHandler(
				usecase.NewQuoteUseCase(quoteRepo, clientRepo, jobRepo, observer),
				usecase.NewQuoteConversionUseCase(quoteRepo, invoiceRepo, tx, observer),
			),
			Invoices: handlers.NewInvoiceHandler(usecase.NewInvoiceUseCase(invoiceRepo, clientRepo, jobRepo, observer)),
			Payments: handlers.NewInvoicePaymentHandler(paymentUseCase),
			Activity: handlers.NewActivityHandler(usecase.NewActivityUseCase(events)),
		},
		sweeper: usecase.NewFlowSweeperUseCase(quoteRepo, invoiceRepo, observer),
	}
}

// NewRouter mounts /v1, /metrics and /swagger on a fresh engine.
func NewRouter(h Handlers, httpMetrics *metrics.HTTPMetrics, gatherer prometheus.Gatherer) *gin.Engine {
	router := gin.New()
	setMiddlewares(router, httpMetrics)

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	router.GET("/metrics", gin.WrapH(promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})))

	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addFlowRoutes(v1, h.Flow)
	addLeadRoutes(v1, h.Leads)
	addClientRoutes(v1, h.Clients)
	addJobRoutes(v1, h.Jobs)
	addQuoteRoutes(v1, h.Quotes)
	addInvoiceRoutes(v1, h.Invoices, h.Payments)
	addActivityRoutes(v1, h.Activity)
	return router
}

func setMiddlewares(router *gin.Engine, httpMetrics *metrics.HTTPMetrics) {
	router.Use(gin.Logger())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(http.StatusInternalServerError)
	}))
	if httpMetrics != nil {
		router.Use(httpMetrics.Middleware())
	}
}

func closeDB(db *gorm.DB) {
	sqlDB, err := db.DB()
	if err != nil {
		return
	}
	if err := sqlDB.Close(); err != nil {
		log.Printf("[database][postgres] close failed err=%v", err)
	}
}
