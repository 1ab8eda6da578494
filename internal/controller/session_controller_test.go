package controller

import (
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"

	"interview-scorecard-be/internal/dto"
	"interview-scorecard-be/internal/entity"
	"interview-scorecard-be/internal/repository/memory"
	"interview-scorecard-be/internal/websocket"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type nopLogger struct{}

func (nopLogger) Debug(string, string, map[string]interface{}) {}
func (nopLogger) Info(string, string, map[string]interface{})  {}
func (nopLogger) Warn(string, string, map[string]interface{})  {}
func (nopLogger) Error(string, string, map[string]interface{}) {}
func (nopLogger) Sync() error                                  { return nil }

func newTestApp() (*fiber.App, *memory.InterviewRepository) {
	repo := memory.NewInterviewRepository()
	hub := websocket.NewHub(repo, nopLogger{})
	go hub.Run()

	app := fiber.New()
	NewSessionController(repo, hub, nopLogger{}).RegisterRoutes(app)
	return app, repo
}

func TestGetSessionStats(t *testing.T) {
	app, repo := newTestApp()
	repo.Save(entity.NewInterview("s1", "Ana", "Bo", "Cy"))

	resp, err := app.Test(httptest.NewRequest("GET", "/session-stats", nil), -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var stats dto.SessionStatsResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&stats))
	assert.Equal(t, 1, stats.ActiveSessions)
	assert.Regexp(t, `^\d+MB$`, stats.MemoryUsage)
	assert.Regexp(t, `^\d+s$`, stats.Uptime)
}

func TestGetActiveSessionsRedactsScores(t *testing.T) {
	app, repo := newTestApp()

	interview := entity.NewInterview("s1", "Ana", "Bo", "Cy")
	interview.Specialization = entity.SpecializationAutomation
	interview.AutomationTools = []string{"playwright"}
	score := 3
	interview.Skills = []entity.SkillScore{{SkillId: "playwright-basics", Interviewer1Score: &score}}
	repo.Save(interview)

	resp, err := app.Test(httptest.NewRequest("GET", "/active-sessions", nil), -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var sessions []map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&sessions))
	require.Len(t, sessions, 1)

	assert.Equal(t, "s1", sessions[0]["id"])
	assert.Equal(t, "Ana", sessions[0]["candidateName"])
	assert.Equal(t, "automation", sessions[0]["specialization"])
	assert.NotContains(t, sessions[0], "skills")
	assert.NotContains(t, sessions[0], "comments")
}

func TestGetActiveSessionsEmpty(t *testing.T) {
	app, _ := newTestApp()

	resp, err := app.Test(httptest.NewRequest("GET", "/active-sessions", nil), -1)
	require.NoError(t, err)

	var sessions []dto.SessionSummaryResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&sessions))
	assert.Empty(t, sessions)
}

func TestTerminateSession(t *testing.T) {
	app, repo := newTestApp()
	repo.Save(entity.NewInterview("s1", "Ana", "Bo", "Cy"))

	resp, err := app.Test(httptest.NewRequest("POST", "/terminate-session/s1", nil), -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var result dto.TerminateSessionResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&result))
	assert.Equal(t, "Session terminated successfully", result.Message)
	assert.Equal(t, "s1", result.SessionId)
	assert.Equal(t, "Ana", result.CandidateName)

	// Gone from enumeration.
	resp, err = app.Test(httptest.NewRequest("GET", "/active-sessions", nil), -1)
	require.NoError(t, err)
	var sessions []dto.SessionSummaryResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&sessions))
	assert.Empty(t, sessions)
	assert.Equal(t, 0, repo.Count())
}

func TestTerminateUnknownSessionIsNotFound(t *testing.T) {
	app, _ := newTestApp()

	resp, err := app.Test(httptest.NewRequest("POST", "/terminate-session/ghost", nil), -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)

	var body map[string]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "Session not found", body["error"])
}

func TestCreateSession(t *testing.T) {
	app, repo := newTestApp()

	payload := `{"candidateName":"Ana","interviewer1":"Bo","interviewer2":"Cy"}`
	req := httptest.NewRequest("POST", "/create-session", strings.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusCreated, resp.StatusCode)

	var result dto.CreateSessionResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&result))
	assert.NotEmpty(t, result.Id)
	assert.Contains(t, result.Url, "/competence?")
	assert.Contains(t, result.Url, "id="+result.Id)
	assert.Contains(t, result.Url, "candidate=Ana")

	// Minting an id does not create a document; the first join does.
	assert.Equal(t, 0, repo.Count())
}

func TestCreateSessionRejectsMissingFields(t *testing.T) {
	app, _ := newTestApp()

	req := httptest.NewRequest("POST", "/create-session", strings.NewReader(`{"candidateName":"Ana"}`))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}
