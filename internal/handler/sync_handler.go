package handler

import (
	"interview-scorecard-be/internal/pkg/logger"
	internalWS "interview-scorecard-be/internal/websocket"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/websocket/v2"
)

// SyncHandler exposes the realtime synchronization channel over a Fiber route.
type SyncHandler struct {
	hub    *internalWS.Hub
	logger logger.ILogger
}

func NewSyncHandler(hub *internalWS.Hub, log logger.ILogger) *SyncHandler {
	return &SyncHandler{
		hub:    hub,
		logger: log,
	}
}

// ServeWs upgrades the request and hands the connection to the hub.
func (h *SyncHandler) ServeWs(c *fiber.Ctx) error {
	if websocket.IsWebSocketUpgrade(c) {
		return websocket.New(func(conn *websocket.Conn) {
			h.logger.Info("SyncHandler", "Starting WebSocket session", map[string]interface{}{"remote": conn.RemoteAddr().String()})
			internalWS.ServeWs(h.hub, conn)
			h.logger.Info("SyncHandler", "WebSocket session ended", map[string]interface{}{"remote": conn.RemoteAddr().String()})
		})(c)
	}
	return fiber.ErrUpgradeRequired
}

// RegisterRoutes registers the realtime channel endpoint.
func (h *SyncHandler) RegisterRoutes(router fiber.Router) {
	router.Get("/ws", h.ServeWs)
}
