package websocket

import (
	"encoding/json"

	"interview-scorecard-be/internal/entity"
)

// Wire event names, client to server.
const (
	EventJoin                  = "join"
	EventUpdateInterview       = "update-interview"
	EventUpdateSpecialization  = "update-specialization"
	EventUpdateAutomationTools = "update-automation-tools"
	EventUpdateSkillScore      = "update-skill-score"
	EventUpdateComment         = "update-comment"
)

// Wire event names, server to client.
const (
	EventInterviewData     = "interview-data"
	EventSessionTerminated = "session-terminated"
)

// Envelope is the frame format on the realtime channel. Data holds the
// event-specific payload, still unparsed on the inbound side because every
// payload is validated before it can touch the store.
type Envelope struct {
	Event string          `json:"event"`
	Data  json.RawMessage `json:"data"`
}

type joinPayload struct {
	Id            string `json:"id" validate:"required"`
	CandidateName string `json:"candidateName"`
	Interviewer1  string `json:"interviewer1"`
	Interviewer2  string `json:"interviewer2"`
}

type updateInterviewPayload struct {
	InterviewId   string            `json:"interviewId" validate:"required"`
	InterviewData *entity.Interview `json:"interviewData" validate:"required"`
}

type updateSpecializationPayload struct {
	InterviewId    string `json:"interviewId" validate:"required"`
	Specialization string `json:"specialization" validate:"required,oneof=manual automation"`
}

type updateAutomationToolsPayload struct {
	InterviewId     string   `json:"interviewId" validate:"required"`
	AutomationTools []string `json:"automationTools" validate:"required,dive,oneof=selenium cypress playwright"`
}

type updateSkillScorePayload struct {
	InterviewId string `json:"interviewId" validate:"required"`
	SkillId     string `json:"skillId" validate:"required"`
	Interviewer string `json:"interviewer" validate:"required,oneof=interviewer1 interviewer2"`
	Score       *int   `json:"score" validate:"omitempty,min=0,max=4"`
}

type updateCommentPayload struct {
	InterviewId string `json:"interviewId" validate:"required"`
	CategoryId  string `json:"categoryId" validate:"required"`
	Interviewer string `json:"interviewer" validate:"required,oneof=interviewer1 interviewer2"`
	Comment     string `json:"comment"`
}

type terminatedPayload struct {
	Message string `json:"message"`
}

func encodeEnvelope(event string, data interface{}) []byte {
	raw, _ := json.Marshal(data)
	out, _ := json.Marshal(Envelope{Event: event, Data: raw})
	return out
}
