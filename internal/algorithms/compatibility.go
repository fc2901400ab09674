package algorithms

import (
	"sort"

	"projectconnect/internal/models"
)

// Compatibility scoring between a user and a project. Every comparison is a
// pure function of the two attribute sets plus a snapshot of the project's
// current members; nothing here touches storage.
//
// The scalar score is the arithmetic mean of the terms that are actually
// comparable in a given call:
//
//   - one set-overlap term per non-empty project attribute set
//     (|user ∩ project| / |project|),
//   - one categorical term per member-derived mode attribute
//     (education, region, industry: 1 if the user matches the mode, else 0),
//   - one age term (min/max ratio of the user's age vs the member mean).
//
// Empty or missing data excludes a term rather than scoring it as 0 or 1:
// a categorical term only counts when both the user and at least one member
// declare the attribute, and the age term only counts over positive ages.

var skillCategories = []models.SkillCategory{
	models.CategorySkills,
	models.CategoryProgrammingLanguages,
	models.CategoryFrameworks,
}

// Score computes the compatibility of user with project given the project's
// current members. ok is false when there is no basis for comparison at all
// (no members and no declared attribute sets); callers render that as 0.
func Score(user *models.User, project *models.Project, members []models.User) (float64, bool) {
	var terms []float64

	for _, category := range skillCategories {
		required := project.AttributeSet(category)
		if len(required) == 0 {
			continue
		}
		terms = append(terms, SetOverlap(user.SkillNamesIn(category), required))
	}

	if len(members) > 0 {
		categoricals := []struct {
			value string
			pick  func(models.User) string
		}{
			{user.Education, func(m models.User) string { return m.Education }},
			{user.Region, func(m models.User) string { return m.Region }},
			{user.Industry, func(m models.User) string { return m.Industry }},
		}
		for _, c := range categoricals {
			if term, ok := categoricalTerm(c.value, memberValues(members, c.pick)); ok {
				terms = append(terms, term)
			}
		}

		if ageTerm, ok := ageSimilarity(user.Age, members); ok {
			terms = append(terms, ageTerm)
		}
	}

	if len(terms) == 0 {
		return 0, false
	}

	sum := 0.0
	for _, t := range terms {
		sum += t
	}
	return sum / float64(len(terms)), true
}

// SetOverlap scores how much of the required set the candidate covers.
// The required set is the denominator; duplicates do not count twice.
func SetOverlap(candidate, required []string) float64 {
	if len(required) == 0 {
		return 0
	}

	have := make(map[string]bool, len(candidate))
	for _, v := range candidate {
		have[v] = true
	}

	matched := 0
	seen := make(map[string]bool, len(required))
	for _, v := range required {
		if seen[v] {
			continue
		}
		seen[v] = true
		if have[v] {
			matched++
		}
	}

	return float64(matched) / float64(len(seen))
}

// MostCommonAttribute returns the mode of the values. Tie-break is pinned:
// stable-sort ascending by frequency and take the last element, so among
// tied maxima the latest-appearing value wins. Returns "" for no values.
func MostCommonAttribute(values []string) string {
	if len(values) == 0 {
		return ""
	}

	freq := make(map[string]int, len(values))
	for _, v := range values {
		freq[v]++
	}

	sorted := append([]string(nil), values...)
	sort.SliceStable(sorted, func(i, j int) bool {
		return freq[sorted[i]] < freq[sorted[j]]
	})
	return sorted[len(sorted)-1]
}

// MeanAttribute averages a numeric attribute across members.
func MeanAttribute(values []int) float64 {
	if len(values) == 0 {
		return 0
	}
	sum := 0
	for _, v := range values {
		sum += v
	}
	return float64(sum) / float64(len(values))
}

// RatioSimilarity compares two positive quantities: 1.0 when equal,
// degrading toward 0 as the gap grows.
func RatioSimilarity(a, b float64) float64 {
	if a <= 0 || b <= 0 {
		return 0
	}
	if a < b {
		return a / b
	}
	return b / a
}

// CommonCompanies intersects the user's employers (current + past) with
// those of each member. Informational only: feeds the breakdown view,
// never the scalar score. Order follows first appearance among members.
func CommonCompanies(user *models.User, members []models.User) []string {
	userCompanies := make(map[string]bool)
	for _, c := range user.Companies() {
		userCompanies[c] = true
	}

	var common []string
	seen := make(map[string]bool)
	for _, member := range members {
		for _, c := range member.Companies() {
			if userCompanies[c] && !seen[c] {
				seen[c] = true
				common = append(common, c)
			}
		}
	}
	return common
}

// categoricalTerm compares the user's value with the members' mode. The term
// is undefined when the user leaves the attribute blank or no member declares
// it; such an attribute must not be scored at all.
func categoricalTerm(value string, memberVals []string) (float64, bool) {
	if value == "" || len(memberVals) == 0 {
		return 0, false
	}
	if value == MostCommonAttribute(memberVals) {
		return 1, true
	}
	return 0, true
}

func ageSimilarity(userAge int, members []models.User) (float64, bool) {
	var ages []int
	for _, m := range members {
		if m.Age > 0 {
			ages = append(ages, m.Age)
		}
	}
	if len(ages) == 0 || userAge <= 0 {
		return 0, false
	}
	return RatioSimilarity(float64(userAge), MeanAttribute(ages)), true
}

// memberValues collects an attribute across members, dropping blanks so a
// member who never filled it in does not skew the mode.
func memberValues(members []models.User, pick func(models.User) string) []string {
	out := make([]string, 0, len(members))
	for _, m := range members {
		if v := pick(m); v != "" {
			out = append(out, v)
		}
	}
	return out
}
