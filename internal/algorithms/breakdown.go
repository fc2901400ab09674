package algorithms

import "projectconnect/internal/models"

// Breakdown is the attribute-level detail behind a single compatibility
// score, shaped for the compatibility dialog.
type Breakdown struct {
	Skills               *OverlapDetail     `json:"skills,omitempty"`
	ProgrammingLanguages *OverlapDetail     `json:"programmingLanguages,omitempty"`
	Frameworks           *OverlapDetail     `json:"frameworks,omitempty"`
	Education            *CategoricalDetail `json:"education,omitempty"`
	Region               *CategoricalDetail `json:"region,omitempty"`
	Industry             *CategoricalDetail `json:"industry,omitempty"`
	AgeSimilarity        *float64           `json:"ageSimilarity,omitempty"`
	CommonCompanies      []string           `json:"commonCompanies,omitempty"`
}

// OverlapDetail lists a required set against what the user covers of it.
type OverlapDetail struct {
	Required []string `json:"required"`
	Matched  []string `json:"matched"`
	Score    float64  `json:"score"`
}

// CategoricalDetail compares the user's value with the members' mode.
type CategoricalDetail struct {
	Mode  string `json:"mode"`
	Value string `json:"value"`
	Match bool   `json:"match"`
}

// ComputeBreakdown expands a score into its per-attribute terms. Sections
// with no comparable data are omitted, mirroring the term exclusion in
// Score.
func ComputeBreakdown(user *models.User, project *models.Project, members []models.User) Breakdown {
	b := Breakdown{}

	b.Skills = overlapDetail(user, project, models.CategorySkills)
	b.ProgrammingLanguages = overlapDetail(user, project, models.CategoryProgrammingLanguages)
	b.Frameworks = overlapDetail(user, project, models.CategoryFrameworks)

	if len(members) > 0 {
		b.Education = categoricalDetail(user.Education,
			memberValues(members, func(m models.User) string { return m.Education }))
		b.Region = categoricalDetail(user.Region,
			memberValues(members, func(m models.User) string { return m.Region }))
		b.Industry = categoricalDetail(user.Industry,
			memberValues(members, func(m models.User) string { return m.Industry }))

		if age, ok := ageSimilarity(user.Age, members); ok {
			b.AgeSimilarity = &age
		}

		b.CommonCompanies = CommonCompanies(user, members)
	}

	return b
}

func overlapDetail(user *models.User, project *models.Project, category models.SkillCategory) *OverlapDetail {
	required := project.AttributeSet(category)
	if len(required) == 0 {
		return nil
	}

	have := make(map[string]bool)
	for _, v := range user.SkillNamesIn(category) {
		have[v] = true
	}

	var matched []string
	for _, v := range required {
		if have[v] {
			matched = append(matched, v)
		}
	}

	return &OverlapDetail{
		Required: required,
		Matched:  matched,
		Score:    SetOverlap(user.SkillNamesIn(category), required),
	}
}

// categoricalDetail is nil when the attribute is not comparable, matching
// the term exclusion in Score.
func categoricalDetail(value string, memberVals []string) *CategoricalDetail {
	if value == "" || len(memberVals) == 0 {
		return nil
	}
	mode := MostCommonAttribute(memberVals)
	return &CategoricalDetail{
		Mode:  mode,
		Value: value,
		Match: value == mode,
	}
}
