package bootstrap

import (
	"interview-scorecard-be/internal/config"
	"interview-scorecard-be/internal/controller"
	"interview-scorecard-be/internal/handler"
	"interview-scorecard-be/internal/pkg/logger"
	"interview-scorecard-be/internal/repository/memory"
	"interview-scorecard-be/internal/websocket"
)

type Container struct {
	// Controllers
	SessionController controller.ISessionController

	// WebSockets
	SyncHandler  *handler.SyncHandler
	WebSocketHub *websocket.Hub

	// Exposed for graceful shutdown
	Logger logger.ILogger
}

func NewContainer(cfg *config.Config) *Container {
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")

	// Realtime traffic gets its own file so frame-level noise stays out of
	// the main log.
	realtimeLogger := logger.NewIsolatedLogger(cfg.App.RealtimeLogFilePath)

	interviewRepo := memory.NewInterviewRepository()

	hub := websocket.NewHub(interviewRepo, realtimeLogger)

	return &Container{
		SessionController: controller.NewSessionController(interviewRepo, hub, sysLogger),
		SyncHandler:       handler.NewSyncHandler(hub, realtimeLogger),
		WebSocketHub:      hub,
		Logger:            sysLogger,
	}
}
