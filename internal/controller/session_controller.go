package controller

import (
	"fmt"
	"net/url"
	"runtime"
	"time"

	"interview-scorecard-be/internal/dto"
	"interview-scorecard-be/internal/pkg/logger"
	"interview-scorecard-be/internal/repository/memory"
	"interview-scorecard-be/internal/websocket"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type ISessionController interface {
	RegisterRoutes(r fiber.Router)
	GetSessionStats(ctx *fiber.Ctx) error
	GetActiveSessions(ctx *fiber.Ctx) error
	TerminateSession(ctx *fiber.Ctx) error
	CreateSession(ctx *fiber.Ctx) error
}

// sessionController is the out-of-band administration surface. It reads the
// store directly for enumeration and stats; termination goes through the hub
// so the group gets its session-terminated notice in mutation order.
type sessionController struct {
	repo      *memory.InterviewRepository
	hub       *websocket.Hub
	logger    logger.ILogger
	validate  *validator.Validate
	startedAt time.Time
}

func NewSessionController(repo *memory.InterviewRepository, hub *websocket.Hub, log logger.ILogger) ISessionController {
	return &sessionController{
		repo:      repo,
		hub:       hub,
		logger:    log,
		validate:  validator.New(),
		startedAt: time.Now(),
	}
}

func (c *sessionController) RegisterRoutes(r fiber.Router) {
	r.Get("/session-stats", c.GetSessionStats)
	r.Get("/active-sessions", c.GetActiveSessions)
	r.Post("/terminate-session/:id", c.TerminateSession)
	r.Post("/create-session", c.CreateSession)
}

// GetSessionStats reports session count plus process resource counters.
// Informational only, not part of the synchronization contract.
func (c *sessionController) GetSessionStats(ctx *fiber.Ctx) error {
	var mem runtime.MemStats
	runtime.ReadMemStats(&mem)

	return ctx.JSON(dto.SessionStatsResponse{
		ActiveSessions: c.repo.Count(),
		MemoryUsage:    fmt.Sprintf("%dMB", mem.HeapAlloc/1024/1024),
		Uptime:         fmt.Sprintf("%ds", int(time.Since(c.startedAt).Seconds())),
	})
}

func (c *sessionController) GetActiveSessions(ctx *fiber.Ctx) error {
	interviews := c.repo.ListAll()
	sessions := make([]dto.SessionSummaryResponse, 0, len(interviews))
	for _, interview := range interviews {
		sessions = append(sessions, dto.SessionSummaryResponse{
			Id:              interview.Id,
			CandidateName:   interview.CandidateName,
			Interviewer1:    interview.Interviewer1,
			Interviewer2:    interview.Interviewer2,
			Specialization:  interview.Specialization,
			AutomationTools: interview.AutomationTools,
		})
	}
	return ctx.JSON(sessions)
}

func (c *sessionController) TerminateSession(ctx *fiber.Ctx) error {
	sessionId := ctx.Params("id")

	interview := c.hub.Terminate(sessionId)
	if interview == nil {
		return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Session not found"})
	}

	c.logger.Info("SessionController", "Session terminated via admin surface", map[string]interface{}{"interview_id": sessionId})

	return ctx.JSON(dto.TerminateSessionResponse{
		Message:       "Session terminated successfully",
		SessionId:     sessionId,
		CandidateName: interview.CandidateName,
	})
}

// CreateSession mints a session id and builds the scorecard URL participants
// share. The document itself is only created once the first participant joins.
func (c *sessionController) CreateSession(ctx *fiber.Ctx) error {
	var req dto.CreateSessionRequest
	if err := ctx.BodyParser(&req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	if err := c.validate.Struct(req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	id := uuid.NewString()
	params := url.Values{
		"id":           {id},
		"candidate":    {req.CandidateName},
		"interviewer1": {req.Interviewer1},
		"interviewer2": {req.Interviewer2},
	}

	return ctx.Status(fiber.StatusCreated).JSON(dto.CreateSessionResponse{
		Id:  id,
		Url: "/competence?" + params.Encode(),
	})
}
