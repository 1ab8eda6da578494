package dto

// SessionSummaryResponse is the redacted projection served to the dashboard:
// identity and mode only, never scores or comments.
type SessionSummaryResponse struct {
	Id              string   `json:"id"`
	CandidateName   string   `json:"candidateName"`
	Interviewer1    string   `json:"interviewer1"`
	Interviewer2    string   `json:"interviewer2"`
	Specialization  string   `json:"specialization"`
	AutomationTools []string `json:"automationTools"`
}

type SessionStatsResponse struct {
	ActiveSessions int    `json:"activeSessions"`
	MemoryUsage    string `json:"memoryUsage"`
	Uptime         string `json:"uptime"`
}

type TerminateSessionResponse struct {
	Message       string `json:"message"`
	SessionId     string `json:"sessionId"`
	CandidateName string `json:"candidateName"`
}

type CreateSessionRequest struct {
	CandidateName string `json:"candidateName" validate:"required"`
	Interviewer1  string `json:"interviewer1" validate:"required"`
	Interviewer2  string `json:"interviewer2" validate:"required"`
}

type CreateSessionResponse struct {
	Id  string `json:"id"`
	Url string `json:"url"`
}
