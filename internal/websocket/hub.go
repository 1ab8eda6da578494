package websocket

import (
	"encoding/json"

	"interview-scorecard-be/internal/entity"
	"interview-scorecard-be/internal/pkg/logger"
	"interview-scorecard-be/internal/repository/memory"
	"interview-scorecard-be/internal/scorecard"

	"github.com/go-playground/validator/v10"
)

// inboundEvent is one frame received from a client, handed to the hub loop.
type inboundEvent struct {
	client   *Client
	envelope Envelope
}

// terminateRequest asks the hub loop to delete a session and notify its group.
// The deleted document (or nil) comes back on reply.
type terminateRequest struct {
	interviewId string
	reply       chan *entity.Interview
}

// Hub owns the session groups and is the only writer of the interview store.
// Run processes one command at a time on a single goroutine, so every mutation
// to a session, including its broadcasts, completes before the next one starts.
// That ordering is the concurrency control: last write wins, no locks needed on
// the documents themselves.
type Hub struct {
	// interview id -> group of joined connections
	groups map[string]map[*Client]bool

	// reverse index: which group each connection belongs to (one at most)
	joined map[*Client]string

	register   chan *Client
	unregister chan *Client
	inbound    chan inboundEvent
	terminate  chan terminateRequest

	repo     *memory.InterviewRepository
	validate *validator.Validate
	logger   logger.ILogger
}

func NewHub(repo *memory.InterviewRepository, log logger.ILogger) *Hub {
	return &Hub{
		groups:     make(map[string]map[*Client]bool),
		joined:     make(map[*Client]string),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		inbound:    make(chan inboundEvent),
		terminate:  make(chan terminateRequest),
		repo:       repo,
		validate:   validator.New(),
		logger:     log,
	}
}

func (h *Hub) Run() {
	for {
		select {
		case client := <-h.register:
			h.logger.Info("Hub", "Client connected", map[string]interface{}{"remote": client.remoteAddr()})

		case client := <-h.unregister:
			h.leaveGroup(client)
			h.closeSend(client)
			h.logger.Info("Hub", "Client disconnected", map[string]interface{}{"remote": client.remoteAddr()})

		case evt := <-h.inbound:
			h.dispatch(evt.client, evt.envelope)

		case req := <-h.terminate:
			req.reply <- h.handleTerminate(req.interviewId)
		}
	}
}

// Terminate deletes the session and notifies its group with a
// session-terminated event. Returns the deleted document, or nil if the id was
// unknown. Synchronous: the deletion and the notices are done when it returns.
func (h *Hub) Terminate(interviewId string) *entity.Interview {
	reply := make(chan *entity.Interview, 1)
	h.terminate <- terminateRequest{interviewId: interviewId, reply: reply}
	return <-reply
}

func (h *Hub) dispatch(c *Client, env Envelope) {
	switch env.Event {
	case EventJoin:
		var p joinPayload
		if !h.decode(env, &p) {
			return
		}
		h.handleJoin(c, p)
	case EventUpdateInterview:
		var p updateInterviewPayload
		if !h.decode(env, &p) {
			return
		}
		h.handleUpdateInterview(c, p)
	case EventUpdateSpecialization:
		var p updateSpecializationPayload
		if !h.decode(env, &p) {
			return
		}
		h.handleUpdateSpecialization(c, p)
	case EventUpdateAutomationTools:
		var p updateAutomationToolsPayload
		if !h.decode(env, &p) {
			return
		}
		h.handleUpdateAutomationTools(c, p)
	case EventUpdateSkillScore:
		var p updateSkillScorePayload
		if !h.decode(env, &p) {
			return
		}
		h.handleUpdateSkillScore(c, p)
	case EventUpdateComment:
		var p updateCommentPayload
		if !h.decode(env, &p) {
			return
		}
		h.handleUpdateComment(c, p)
	default:
		h.logger.Warn("Hub", "Unknown event ignored", map[string]interface{}{"event": env.Event})
	}
}

// decode unmarshals and validates an inbound payload. Invalid payloads are
// logged and dropped; they never reach the store.
func (h *Hub) decode(env Envelope, out interface{}) bool {
	if err := json.Unmarshal(env.Data, out); err != nil {
		h.logger.Warn("Hub", "Malformed payload dropped", map[string]interface{}{"event": env.Event, "error": err.Error()})
		return false
	}
	if err := h.validate.Struct(out); err != nil {
		h.logger.Warn("Hub", "Invalid payload dropped", map[string]interface{}{"event": env.Event, "error": err.Error()})
		return false
	}
	return true
}

func (h *Hub) handleJoin(c *Client, p joinPayload) {
	// One group per connection: re-joining leaves the previous group first.
	h.leaveGroup(c)

	group, ok := h.groups[p.Id]
	if !ok {
		group = make(map[*Client]bool)
		h.groups[p.Id] = group
	}
	group[c] = true
	h.joined[c] = p.Id

	interview, found := h.repo.Get(p.Id)
	if !found {
		// First participant creates the document; the supplied names are only
		// honored at creation time.
		interview = entity.NewInterview(p.Id, p.CandidateName, p.Interviewer1, p.Interviewer2)
		h.repo.Save(interview)
		h.logger.Info("Hub", "Interview session created", map[string]interface{}{"interview_id": p.Id, "candidate": p.CandidateName})
	}

	// Catch-up snapshot goes to the joiner only.
	h.send(c, encodeEnvelope(EventInterviewData, interview))
}

func (h *Hub) handleUpdateInterview(c *Client, p updateInterviewPayload) {
	// Full replace trusts the caller's document; the sender already has the
	// state it just sent, so it is excluded from the broadcast. Stored under
	// the envelope's session id so the store key always matches the group.
	doc := p.InterviewData
	doc.Id = p.InterviewId
	h.repo.Save(doc)
	h.broadcast(p.InterviewId, encodeEnvelope(EventInterviewData, doc), c)
}

func (h *Hub) handleUpdateSpecialization(c *Client, p updateSpecializationPayload) {
	interview, found := h.repo.Get(p.InterviewId)
	if !found {
		return
	}

	skills, comments := scorecard.InitSlots(p.Specialization, interview.AutomationTools)
	updated := interview.Clone()
	updated.Specialization = p.Specialization
	updated.Skills = skills
	updated.Comments = comments

	h.repo.Save(updated)
	h.broadcast(p.InterviewId, encodeEnvelope(EventInterviewData, updated), nil)
}

func (h *Hub) handleUpdateAutomationTools(c *Client, p updateAutomationToolsPayload) {
	interview, found := h.repo.Get(p.InterviewId)
	if !found || interview.Specialization != entity.SpecializationAutomation {
		return
	}

	skills, comments := scorecard.InitSlots(interview.Specialization, p.AutomationTools)
	updated := interview.Clone()
	updated.AutomationTools = p.AutomationTools
	updated.Skills = skills
	updated.Comments = comments

	h.repo.Save(updated)
	h.broadcast(p.InterviewId, encodeEnvelope(EventInterviewData, updated), nil)
}

func (h *Hub) handleUpdateSkillScore(c *Client, p updateSkillScorePayload) {
	interview, found := h.repo.Get(p.InterviewId)
	if !found {
		return
	}

	updated := interview.Clone()
	for i := range updated.Skills {
		if updated.Skills[i].SkillId != p.SkillId {
			continue
		}
		if p.Interviewer == "interviewer1" {
			updated.Skills[i].Interviewer1Score = p.Score
		} else {
			updated.Skills[i].Interviewer2Score = p.Score
		}
		break
	}

	h.repo.Save(updated)
	// The sender is included so its UI shows the server-confirmed value.
	h.broadcast(p.InterviewId, encodeEnvelope(EventInterviewData, updated), nil)
}

func (h *Hub) handleUpdateComment(c *Client, p updateCommentPayload) {
	interview, found := h.repo.Get(p.InterviewId)
	if !found {
		return
	}

	updated := interview.Clone()
	for i := range updated.Comments {
		if updated.Comments[i].CategoryId != p.CategoryId {
			continue
		}
		if p.Interviewer == "interviewer1" {
			updated.Comments[i].Interviewer1Comment = p.Comment
		} else {
			updated.Comments[i].Interviewer2Comment = p.Comment
		}
		break
	}

	h.repo.Save(updated)
	h.broadcast(p.InterviewId, encodeEnvelope(EventInterviewData, updated), nil)
}

func (h *Hub) handleTerminate(interviewId string) *entity.Interview {
	interview, found := h.repo.Get(interviewId)
	if !found {
		return nil
	}
	h.repo.Delete(interviewId)

	notice := encodeEnvelope(EventSessionTerminated, terminatedPayload{Message: "Session has been terminated"})
	h.broadcast(interviewId, notice, nil)

	h.logger.Info("Hub", "Interview session terminated", map[string]interface{}{"interview_id": interviewId, "candidate": interview.CandidateName})
	return interview
}

// broadcast fans a frame out to the session's group. A non-nil exclude skips
// that connection (used only by the full-document replace).
func (h *Hub) broadcast(interviewId string, message []byte, exclude *Client) {
	for client := range h.groups[interviewId] {
		if client == exclude {
			continue
		}
		h.send(client, message)
	}
}

func (h *Hub) send(c *Client, message []byte) {
	if c.closed {
		return
	}
	select {
	case c.Send <- message:
	default:
		// Slow consumer: drop the connection rather than block the loop.
		h.logger.Warn("Hub", "Send buffer full, dropping client", map[string]interface{}{"remote": c.remoteAddr()})
		h.leaveGroup(c)
		h.closeSend(c)
	}
}

// closeSend closes the outbound channel at most once. Only ever called from
// the hub goroutine, so the flag needs no lock.
func (h *Hub) closeSend(c *Client) {
	if !c.closed {
		c.closed = true
		close(c.Send)
	}
}

func (h *Hub) leaveGroup(c *Client) {
	interviewId, ok := h.joined[c]
	if !ok {
		return
	}
	delete(h.joined, c)
	if group, ok := h.groups[interviewId]; ok {
		delete(group, c)
		if len(group) == 0 {
			delete(h.groups, interviewId)
		}
	}
}
