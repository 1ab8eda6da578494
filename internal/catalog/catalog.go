package catalog

// Skill is one scoreable competence in the reference catalog.
type Skill struct {
	Id           string   `json:"id"`
	Name         string   `json:"name"`
	Category     string   `json:"category"`
	ApplicableTo []string `json:"applicableTo"`
	Description  []string `json:"description,omitempty"`
}

// Category groups skills and carries its own applicability set.
type Category struct {
	Id           string   `json:"id"`
	Name         string   `json:"name"`
	ApplicableTo []string `json:"applicableTo"`
}

// ApplicableSkills returns the catalog skills that apply to the given
// specialization. For "manual" the skill must list manual; for "automation"
// the skill's applicability must intersect the selected tools, so an empty
// tool selection yields no skills. Any other specialization yields nothing.
func ApplicableSkills(specialization string, automationTools []string) []Skill {
	var out []Skill
	for _, skill := range Skills {
		if applies(skill.ApplicableTo, specialization, automationTools) {
			out = append(out, skill)
		}
	}
	return out
}

// ApplicableCategories filters categories under the same rule as ApplicableSkills.
func ApplicableCategories(specialization string, automationTools []string) []Category {
	var out []Category
	for _, cat := range Categories {
		if applies(cat.ApplicableTo, specialization, automationTools) {
			out = append(out, cat)
		}
	}
	return out
}

// SkillById looks up a skill in the catalog.
func SkillById(id string) (Skill, bool) {
	for _, skill := range Skills {
		if skill.Id == id {
			return skill, true
		}
	}
	return Skill{}, false
}

func applies(applicableTo []string, specialization string, automationTools []string) bool {
	switch specialization {
	case "manual":
		return contains(applicableTo, "manual")
	case "automation":
		for _, tool := range automationTools {
			if contains(applicableTo, tool) {
				return true
			}
		}
		return false
	default:
		return false
	}
}

func contains(list []string, value string) bool {
	for _, v := range list {
		if v == value {
			return true
		}
	}
	return false
}
