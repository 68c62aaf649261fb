package routes

import (
	"context"
	"log"
	"strconv"
	"time"

	"github.com/Sandrinhosilv/back-marceneiro/internal/adapter/http/handlers"
	"github.com/Sandrinhosilv/back-marceneiro/internal/adapter/persistence/repository"
	"github.com/Sandrinhosilv/back-marceneiro/internal/config"
	"github.com/Sandrinhosilv/back-marceneiro/internal/fanout"
	"github.com/Sandrinhosilv/back-marceneiro/internal/infrastructure/conversions"
	"github.com/Sandrinhosilv/back-marceneiro/internal/infrastructure/database"
	"github.com/Sandrinhosilv/back-marceneiro/internal/infrastructure/metrics"
	"github.com/Sandrinhosilv/back-marceneiro/internal/infrastructure/payments"
	"github.com/Sandrinhosilv/back-marceneiro/internal/infrastructure/sheets"
	"github.com/Sandrinhosilv/back-marceneiro/internal/infrastructure/webhook"
	"github.com/Sandrinhosilv/back-marceneiro/internal/usecase"
	"github.com/Sandrinhosilv/back-marceneiro/internal/usecase/interfaces"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/Sandrinhosilv/back-marceneiro/docs"
)

const (
	fanoutWorkers     = 4
	fanoutQueueSize   = 64
	fanoutTaskTimeout = 15 * time.Second
)

// Run wires the whole service from configuration and starts the HTTP server.
func Run() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load configuration: %v", err)
	}

	checkoutMetrics := metrics.NewCheckoutMetrics(prometheus.DefaultRegisterer)

	var gateway interfaces.IPaymentGateway
	mpGateway, err := payments.NewMercadoPagoGateway(cfg.MercadoPago.AccessToken)
	if err != nil {
		log.Printf("Mercado Pago gateway not configured: %v", err)
	} else {
		gateway = mpGateway
	}

	var chargeRepo interfaces.IChargeRepository
	ddb, err := database.NewDynamoDBClient(context.Background())
	if err != nil {
		log.Printf("DynamoDB not configured, purchase dedup disabled: %v", err)
	} else {
		chargeRepo = repository.NewChargeDynamoRepository(ddb, cfg.Storage.ChargesTable)
	}

	leadSink := sheets.NewAppsScriptClient(cfg.LeadSink.AppsScriptURL)
	reporter := conversions.NewFacebookCAPIClient(cfg.Facebook.PixelID, cfg.Facebook.AccessToken, cfg.Facebook.APIVersion)
	relay := webhook.NewRelay(cfg.Webhook.URL)

	dispatcher := fanout.NewDispatcher(fanoutWorkers, fanoutQueueSize, fanoutTaskTimeout, checkoutMetrics)
	defer dispatcher.Close()

	uc := usecase.NewPixChargeUseCase(gateway, chargeRepo, leadSink, reporter, relay, dispatcher, cfg.FulfillmentLink, checkoutMetrics)
	pixHandler := handlers.NewPixHandler(uc)

	router := setupRouter(cfg, pixHandler)

	addr := ":" + strconv.Itoa(cfg.Port)
	log.Printf("PIX backend listening on %s", addr)
	if err := router.Run(addr); err != nil {
		log.Fatalf("Failed to startup the application: %v", err)
	}
}

func setupRouter(cfg *config.Config, pixHandler *handlers.PixHandler) *gin.Engine {
	router := gin.New()
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(corsMiddleware(cfg))

	router.GET("/health", handlers.Health)
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	addPixRoutes(router.Group("/api"), pixHandler)

	return router
}

func corsMiddleware(cfg *config.Config) gin.HandlerFunc {
	corsCfg := cors.Config{
		AllowMethods: []string{"GET", "POST", "OPTIONS"},
		AllowHeaders: []string{"Content-Type", "Authorization"},
	}
	if len(cfg.CORSOrigins) > 0 {
		corsCfg.AllowOrigins = cfg.CORSOrigins
	} else {
		corsCfg.AllowAllOrigins = true
	}
	return cors.New(corsCfg)
}
