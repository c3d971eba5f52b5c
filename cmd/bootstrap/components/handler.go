package components

import (
	"vander-key-store/internal/handler"
	"vander-key-store/internal/handler/api"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewWebhookHandler,
		api.NewCheckoutHandler,
		api.NewKeyHandler,
		api.NewPingHandler,
		handler.NewHandlers,
	),
	fx.Invoke(handler.NewRouter),
)
