package handler

import (
	"net/http"

	"vander-key-store/internal/handler/api"
	"vander-key-store/internal/handler/middleware"
	"vander-key-store/internal/pkg/config"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

// Handlers groups everything the router mounts.
type Handlers struct {
	Webhook  *api.WebhookHandler
	Checkout *api.CheckoutHandler
	Key      *api.KeyHandler
	Ping     *api.PingHandler
}

func NewHandlers(webhook *api.WebhookHandler, checkout *api.CheckoutHandler, key *api.KeyHandler, ping *api.PingHandler) Handlers {
	return Handlers{Webhook: webhook, Checkout: checkout, Key: key, Ping: ping}
}

func NewRouter(engine *gin.Engine, cfg config.Config, logger *middleware.Logger, h Handlers) {
	setupMiddleware(engine, cfg, logger)
	setupRoutes(engine, h)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config, logger *middleware.Logger) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(logger.LoggingMiddleware())
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, h Handlers) {
	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	// the webhook reads its raw body for signature verification
	addRoutes(&engine.RouterGroup, []route{
		{
			Method:  http.MethodPost,
			Path:    "/webhook",
			Handler: h.Webhook.Receive,
			Mw:      []gin.HandlerFunc{middleware.BodyLimit(api.WebhookBodyLimit)},
		},
	})

	apiGroup := engine.Group("/api")
	{
		addRoutes(apiGroup, []route{
			{Method: http.MethodPost, Path: "/create-checkout", Handler: h.Checkout.CreateCheckout},
			{Method: http.MethodGet, Path: "/get-key", Handler: h.Key.GetKey},
			{Method: http.MethodGet, Path: "/ping", Handler: h.Ping.Ping},
		})
	}
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		h := r.Handler
		if len(r.Mw) > 0 {
			h = chainHandlers(append(r.Mw, r.Handler)...)
		}
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, h)
		case http.MethodPost:
			g.POST(r.Path, h)
		case http.MethodPut:
			g.PUT(r.Path, h)
		case http.MethodPatch:
			g.PATCH(r.Path, h)
		case http.MethodDelete:
			g.DELETE(r.Path, h)
		default:
			g.Any(r.Path, h)
		}
	}
}

func chainHandlers(hs ...gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		for _, h := range hs {
			h(c)
			if c.IsAborted() {
				return
			}
		}
	}
}
