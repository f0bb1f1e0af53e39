package handler

import (
	"net/http"

	"partner-commission-ledger/internal/adapter/http/middleware"
	"partner-commission-ledger/internal/core/ports"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// RouterDeps holds all dependencies needed to set up routes.
type RouterDeps struct {
	CommissionSvc  ports.CommissionService
	WalletSvc      ports.WalletService
	ReconcileSvc   ports.ReconciliationService
	OrderSvc       ports.OrderService
	RateLimitStore middleware.Limiter // nil = rate limiting disabled
	HealthCheckers []ports.HealthChecker
	MetricsHandler http.Handler // nil = /metrics not exposed
	Logger         zerolog.Logger
}

// SetupRouter initialises the Gin engine with all routes and middleware.
func SetupRouter(deps RouterDeps) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()

	r.Use(middleware.Recovery(deps.Logger))
	r.Use(middleware.RequestID())
	r.Use(middleware.RequestLogger(deps.Logger))
	r.Use(middleware.MaxBodySize(1 << 20)) // 1 MB request body limit

	r.GET("/health", HealthCheck(deps.HealthCheckers...))
	if deps.MetricsHandler != nil {
		r.GET("/metrics", gin.WrapH(deps.MetricsHandler))
	}

	swagger := r.Group("/swagger")
	{
		swagger.GET("", SwaggerUI)
		swagger.GET("/spec", SwaggerSpec)
	}

	rules := middleware.DefaultRateLimitRules()

	// Helper: return rate limiter middleware if store is available, else noop.
	rl := func(group string) gin.HandlerFunc {
		if deps.RateLimitStore == nil {
			return func(c *gin.Context) { c.Next() }
		}
		rule, ok := rules[group]
		if !ok {
			return func(c *gin.Context) { c.Next() }
		}
		return middleware.RateLimiter(deps.RateLimitStore, group, rule, deps.Logger)
	}

	v1 := r.Group("/api/v1")

	commissionHandler := NewCommissionHandler(deps.CommissionSvc)
	v1.POST("/commission/quote", rl("quote"), commissionHandler.Quote)

	partnerHandler := NewPartnerHandler(deps.WalletSvc, deps.ReconcileSvc)
	partners := v1.Group("/partners/:id")
	{
		partners.GET("/wallet", rl("reads"), partnerHandler.GetWallet)
		partners.GET("/transactions", rl("reads"), partnerHandler.ListTransactions)
		partners.GET("/reconciliation", rl("reconcile"), partnerHandler.Reconcile)
	}

	orderHandler := NewOrderHandler(deps.OrderSvc)
	orders := v1.Group("/orders/:id")
	{
		orders.POST("/accept", rl("orders"), orderHandler.Accept)
		orders.POST("/cancel", rl("orders"), orderHandler.Cancel)
		orders.POST("/reject", rl("orders"), orderHandler.Reject)
	}

	return r
}
