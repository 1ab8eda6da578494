package scorecard

import (
	"math"

	"interview-scorecard-be/internal/catalog"
	"interview-scorecard-be/internal/entity"
)

// Score bounds accepted by the sync protocol. Nil scores mean "not applicable".
const (
	MinScore = 0
	MaxScore = 4
)

// InitSlots derives the score and comment slots implied by the given
// specialization and tool selection. Slots are always rebuilt from scratch:
// scores and comments entered before a specialization or tool change are
// intentionally discarded, since the applicable skill set itself may differ.
func InitSlots(specialization string, automationTools []string) ([]entity.SkillScore, []entity.CategoryComment) {
	applicableSkills := catalog.ApplicableSkills(specialization, automationTools)
	applicableCategories := catalog.ApplicableCategories(specialization, automationTools)

	skills := make([]entity.SkillScore, 0, len(applicableSkills))
	for _, skill := range applicableSkills {
		skills = append(skills, entity.SkillScore{SkillId: skill.Id})
	}

	comments := make([]entity.CategoryComment, 0, len(applicableCategories))
	for _, cat := range applicableCategories {
		comments = append(comments, entity.CategoryComment{CategoryId: cat.Id})
	}

	return skills, comments
}

// ValidScore reports whether a score value is acceptable: nil (N/A) or inside
// the 0..4 range.
func ValidScore(score *int) bool {
	if score == nil {
		return true
	}
	return *score >= MinScore && *score <= MaxScore
}

// Average computes the mean of the non-nil scores, rounded to two decimal
// places. Returns nil when no score is set, meaning the average itself is N/A.
func Average(scores []*int) *float64 {
	sum := 0
	count := 0
	for _, score := range scores {
		if score != nil {
			sum += *score
			count++
		}
	}
	if count == 0 {
		return nil
	}
	avg := math.Round(float64(sum)/float64(count)*100) / 100
	return &avg
}
