package main

import (
	"database/sql"

	salesUseCase "sales/src/sales/application/usecase"
	"sales/src/sales/domain/port"
	salesController "sales/src/sales/infrastructure/controller"
	salesEventbus "sales/src/sales/infrastructure/eventbus"
	salesPersistence "sales/src/sales/infrastructure/persistence"
	sharedConfig "sales/src/shared/infrastructure/config"

	"github.com/gin-gonic/gin"
	_ "github.com/lib/pq" // PostgreSQL driver
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

func main() {
	cfg := sharedConfig.Load()

	logger, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	gin.SetMode(cfg.GinMode)
	router := gin.New()
	router.Use(gin.Logger())
	router.Use(gin.Recovery())

	if cfg.PrometheusEnabled {
		router.GET("/metrics", gin.WrapH(promhttp.Handler()))
		logger.Info("/metrics endpoint registered")
	}

	// Connect to the sales database. The service still boots without one,
	// falling back to in-memory storage, so the API stays reachable in
	// local development.
	var db *sql.DB
	db, err = sql.Open("postgres", cfg.PostgresDSN())
	if err != nil {
		logger.Warn("could not open database connection, continuing with in-memory storage", zap.Error(err))
		db = nil
	} else if err := db.Ping(); err != nil {
		logger.Warn("could not reach database, continuing with in-memory storage", zap.Error(err))
		db.Close()
		db = nil
	} else {
		defer db.Close()
		logger.Info("connected to sales database", zap.String("db_name", cfg.DBName))
	}

	publisher := salesEventbus.NewAsyncPublisher(logger, cfg.EventQueueSize)
	publisher.Start()
	defer publisher.Stop()

	v1 := router.Group("/api/v1")
	setupSalesModule(v1, db, publisher, logger)

	logger.Info("sales service listening", zap.String("port", cfg.Port))
	if err := router.Run(":" + cfg.Port); err != nil {
		logger.Fatal("server stopped", zap.Error(err))
	}
}

// setupSalesModule wires the sales module: repository, use cases, controller.
func setupSalesModule(router *gin.RouterGroup, db *sql.DB, publisher port.EventPublisher, logger *zap.Logger) {
	var saleRepo port.SaleRepository
	if db != nil {
		saleRepo = salesPersistence.NewSalePostgresRepository(db)
	} else {
		logger.Warn("database not configured, sales will not survive a restart")
		saleRepo = salesPersistence.NewSaleMemoryRepository()
	}

	createSaleUC := salesUseCase.NewCreateSaleUseCase(saleRepo, publisher, logger)
	updateSaleUC := salesUseCase.NewUpdateSaleUseCase(saleRepo, publisher, logger)
	cancelSaleUC := salesUseCase.NewCancelSaleUseCase(saleRepo, publisher, logger)
	getSaleUC := salesUseCase.NewGetSaleUseCase(saleRepo)
	listSalesUC := salesUseCase.NewListSalesUseCase(saleRepo)

	saleCtrl := salesController.NewSaleController(createSaleUC, updateSaleUC, cancelSaleUC, getSaleUC, listSalesUC, logger)
	saleCtrl.RegisterRoutes(router)
}
