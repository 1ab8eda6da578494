package entity

// Specialization values. Empty means the participants have not picked one yet.
const (
	SpecializationManual     = "manual"
	SpecializationAutomation = "automation"
)

// Automation tool identifiers understood by the catalog.
const (
	ToolSelenium   = "selenium"
	ToolCypress    = "cypress"
	ToolPlaywright = "playwright"
)

// SkillScore holds both interviewers' scores for one skill.
// A nil score means "not applicable", which is distinct from 0.
type SkillScore struct {
	SkillId           string `json:"skillId"`
	Interviewer1Score *int   `json:"interviewer1Score"`
	Interviewer2Score *int   `json:"interviewer2Score"`
}

// CategoryComment holds both interviewers' free-text comments for one category.
type CategoryComment struct {
	CategoryId          string `json:"categoryId"`
	Interviewer1Comment string `json:"interviewer1Comment"`
	Interviewer2Comment string `json:"interviewer2Comment"`
}

// Interview is the full mutable state of one scorecard session.
// The in-memory repository owns the canonical copy; everyone else
// reads and replaces whole documents through it.
type Interview struct {
	Id              string            `json:"id"`
	CandidateName   string            `json:"candidateName"`
	Interviewer1    string            `json:"interviewer1"`
	Interviewer2    string            `json:"interviewer2"`
	Specialization  string            `json:"specialization"`
	AutomationTools []string          `json:"automationTools"`
	Skills          []SkillScore      `json:"skills"`
	Comments        []CategoryComment `json:"comments"`
}

// Clone returns a deep copy. Stored documents are treated as immutable: the
// hub mutates a clone and swaps it in, so admin readers can marshal whatever
// pointer they got without racing the event loop.
func (i *Interview) Clone() *Interview {
	out := *i
	out.AutomationTools = append([]string(nil), i.AutomationTools...)
	out.Skills = make([]SkillScore, len(i.Skills))
	for idx, s := range i.Skills {
		out.Skills[idx] = SkillScore{
			SkillId:           s.SkillId,
			Interviewer1Score: copyScore(s.Interviewer1Score),
			Interviewer2Score: copyScore(s.Interviewer2Score),
		}
	}
	out.Comments = append([]CategoryComment(nil), i.Comments...)
	return &out
}

func copyScore(score *int) *int {
	if score == nil {
		return nil
	}
	v := *score
	return &v
}

// NewInterview creates a fresh document for a session id that has never been
// joined: no specialization picked, no slots derived yet.
func NewInterview(id, candidateName, interviewer1, interviewer2 string) *Interview {
	return &Interview{
		Id:              id,
		CandidateName:   candidateName,
		Interviewer1:    interviewer1,
		Interviewer2:    interviewer2,
		Specialization:  "",
		AutomationTools: []string{},
		Skills:          []SkillScore{},
		Comments:        []CategoryComment{},
	}
}
