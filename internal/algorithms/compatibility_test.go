package algorithms

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"projectconnect/internal/models"
)

func userWithSkills(skills, languages, frameworks []string) *models.User {
	u := &models.User{}
	u.SetSkillsIn(models.CategorySkills, unweighted(skills))
	u.SetSkillsIn(models.CategoryProgrammingLanguages, unweighted(languages))
	u.SetSkillsIn(models.CategoryFrameworks, unweighted(frameworks))
	return u
}

func unweighted(names []string) []models.WeightedSkill {
	out := make([]models.WeightedSkill, 0, len(names))
	for _, n := range names {
		out = append(out, models.WeightedSkill{Name: n, Voters: []string{}})
	}
	return out
}

func projectWithSets(skills, languages, frameworks []string) *models.Project {
	p := &models.Project{}
	p.SetAttributeSet(models.CategorySkills, skills)
	p.SetAttributeSet(models.CategoryProgrammingLanguages, languages)
	p.SetAttributeSet(models.CategoryFrameworks, frameworks)
	return p
}

func TestSetOverlap(t *testing.T) {
	assert.Equal(t, 1.0, SetOverlap([]string{"Go", "SQL"}, []string{"Go", "SQL"}))
	assert.Equal(t, 0.5, SetOverlap([]string{"Go"}, []string{"Go", "SQL"}))
	assert.Equal(t, 0.0, SetOverlap([]string{"Rust"}, []string{"Go", "SQL"}))
	assert.Equal(t, 0.0, SetOverlap(nil, []string{"Go"}))
	assert.Equal(t, 0.0, SetOverlap([]string{"Go"}, nil))
}

func TestSetOverlap_DuplicatesDoNotCountTwice(t *testing.T) {
	// Candidate duplicates do not inflate the numerator.
	assert.Equal(t, 0.5, SetOverlap([]string{"Go", "Go", "Go"}, []string{"Go", "SQL"}))
	// Required duplicates do not inflate the denominator.
	assert.Equal(t, 1.0, SetOverlap([]string{"Go"}, []string{"Go", "Go"}))
}

func TestSetOverlap_OrderInvariant(t *testing.T) {
	a := SetOverlap([]string{"Go", "SQL", "Docker"}, []string{"SQL", "Go"})
	b := SetOverlap([]string{"Docker", "Go", "SQL"}, []string{"Go", "SQL"})
	assert.Equal(t, a, b)
}

func TestMostCommonAttribute(t *testing.T) {
	assert.Equal(t, "", MostCommonAttribute(nil))
	assert.Equal(t, "a", MostCommonAttribute([]string{"a"}))
	assert.Equal(t, "b", MostCommonAttribute([]string{"a", "b", "b"}))
}

func TestMostCommonAttribute_TieBreak(t *testing.T) {
	// Among tied maxima the latest-appearing value wins: the stable
	// ascending sort keeps input order within equal frequencies, and the
	// last element is taken.
	assert.Equal(t, "b", MostCommonAttribute([]string{"a", "b"}))
	assert.Equal(t, "c", MostCommonAttribute([]string{"a", "a", "b", "c", "c"}))
	assert.Equal(t, "a", MostCommonAttribute([]string{"b", "b", "a", "a"}))
}

func TestMeanAttribute(t *testing.T) {
	assert.Equal(t, 0.0, MeanAttribute(nil))
	assert.Equal(t, 25.0, MeanAttribute([]int{20, 30}))
	assert.Equal(t, 30.0, MeanAttribute([]int{30}))
}

func TestRatioSimilarity(t *testing.T) {
	assert.Equal(t, 1.0, RatioSimilarity(30, 30))
	assert.InDelta(t, 0.5, RatioSimilarity(15, 30), 1e-9)
	assert.InDelta(t, 0.5, RatioSimilarity(30, 15), 1e-9)
	assert.Equal(t, 0.0, RatioSimilarity(0, 30))
	assert.Equal(t, 0.0, RatioSimilarity(30, -1))
}

func TestScore_UndefinedWithNoBasis(t *testing.T) {
	user := userWithSkills([]string{"Go"}, nil, nil)
	project := projectWithSets(nil, nil, nil)

	score, ok := Score(user, project, nil)
	assert.False(t, ok)
	assert.Equal(t, 0.0, score)
}

func TestScore_WorkedExample(t *testing.T) {
	// Skill overlap 0.5, region match 1.0, age ratio 1.0. Education and
	// industry are blank on both sides and contribute no term, so exactly
	// three terms average to 0.8333...
	user := userWithSkills([]string{"Go", "Python"}, nil, nil)
	user.Region = "EU"
	user.Age = 30

	project := projectWithSets([]string{"Go", "SQL"}, nil, nil)
	members := []models.User{{Region: "EU", Age: 30}}

	score, ok := Score(user, project, members)
	require.True(t, ok)
	assert.InDelta(t, 0.8333, score, 0.0001)
}

func TestScore_SetTermsOnly(t *testing.T) {
	// Three set terms, no members: (1.0 + 0.5 + 1.0) / 3 = 0.8333...
	user := userWithSkills(
		[]string{"Agile", "Testing"},
		[]string{"Go"},
		[]string{"Gin"},
	)
	project := projectWithSets(
		[]string{"Agile", "Testing"},
		[]string{"Go", "Rust"},
		[]string{"Gin"},
	)

	score, ok := Score(user, project, nil)
	require.True(t, ok)
	assert.InDelta(t, 0.8333, score, 0.0001)
}

func TestScore_EmptyProjectSetExcluded(t *testing.T) {
	// A missing frameworks set excludes the term instead of scoring it 0.
	user := userWithSkills([]string{"Agile"}, nil, []string{"Gin"})
	project := projectWithSets([]string{"Agile"}, nil, nil)

	score, ok := Score(user, project, nil)
	require.True(t, ok)
	assert.Equal(t, 1.0, score)
}

func TestScore_Bounds(t *testing.T) {
	users := []*models.User{
		userWithSkills(nil, nil, nil),
		userWithSkills([]string{"Go"}, []string{"Python"}, nil),
		userWithSkills([]string{"Go", "SQL", "Docker"}, nil, []string{"React"}),
	}
	members := []models.User{
		{Age: 25, Region: "EU", Education: "BSc", Industry: "Fintech"},
		{Age: 35, Region: "US", Education: "MSc", Industry: "Fintech"},
	}
	project := projectWithSets([]string{"Go", "SQL"}, []string{"Python"}, []string{"React"})

	for _, u := range users {
		u.Age = 30
		score, ok := Score(u, project, members)
		require.True(t, ok)
		assert.GreaterOrEqual(t, score, 0.0)
		assert.LessOrEqual(t, score, 1.0)
	}
}

func TestScore_InsertionOrderInvariant(t *testing.T) {
	project := projectWithSets([]string{"Go", "SQL", "Docker"}, nil, nil)

	a := userWithSkills([]string{"Go", "Docker"}, nil, nil)
	b := userWithSkills([]string{"Docker", "Go"}, nil, nil)

	scoreA, okA := Score(a, project, nil)
	scoreB, okB := Score(b, project, nil)
	require.True(t, okA)
	require.True(t, okB)
	assert.Equal(t, scoreA, scoreB)
}

func TestScore_CategoricalAgainstMode(t *testing.T) {
	members := []models.User{
		{Region: "EU", Education: "BSc", Industry: "Fintech", Age: 30},
		{Region: "EU", Education: "MSc", Industry: "Fintech", Age: 30},
		{Region: "US", Education: "MSc", Industry: "Fintech", Age: 30},
	}

	user := userWithSkills(nil, nil, nil)
	user.Region = "EU"        // matches mode
	user.Education = "PhD"    // does not match
	user.Industry = "Fintech" // matches
	user.Age = 30             // ratio 1.0

	project := projectWithSets(nil, nil, nil)

	// Terms: region 1, education 0, industry 1, age 1 -> 0.75
	score, ok := Score(user, project, members)
	require.True(t, ok)
	assert.InDelta(t, 0.75, score, 1e-9)
}

func TestScore_NonPositiveAgeExcluded(t *testing.T) {
	members := []models.User{{Region: "EU", Age: 0}}

	user := userWithSkills(nil, nil, nil)
	user.Region = "EU"
	user.Age = 30

	project := projectWithSets(nil, nil, nil)

	// No member has a usable age and nobody declares education or industry,
	// so the matching region term is the only one that counts.
	score, ok := Score(user, project, members)
	require.True(t, ok)
	assert.Equal(t, 1.0, score)
}

func TestScore_MissingCategoricalExcluded(t *testing.T) {
	// A blank attribute never scores as a match against another blank.
	project := projectWithSets([]string{"Go", "SQL"}, nil, nil)

	// Members declare education; the user does not. Only the overlap term
	// remains.
	user := userWithSkills([]string{"Go"}, nil, nil)
	members := []models.User{{Education: "BSc"}}
	score, ok := Score(user, project, members)
	require.True(t, ok)
	assert.InDelta(t, 0.5, score, 1e-9)

	// The user declares education; no member does. Same exclusion.
	user.Education = "MSc"
	score, ok = Score(user, project, []models.User{{}})
	require.True(t, ok)
	assert.InDelta(t, 0.5, score, 1e-9)
}

func TestScore_AgeRatio(t *testing.T) {
	members := []models.User{{Age: 20}, {Age: 40}} // mean 30

	user := userWithSkills(nil, nil, nil)
	user.Age = 15

	project := projectWithSets(nil, nil, nil)

	// Nobody declares a categorical attribute; the age ratio 15/30 is the
	// only term.
	score, ok := Score(user, project, members)
	require.True(t, ok)
	assert.InDelta(t, 0.5, score, 1e-9)
}

func TestCommonCompanies(t *testing.T) {
	user := &models.User{CurrentCompany: "Acme"}
	user.SetPastEmployment([]models.Employment{
		{Position: "Dev", Company: "Globex"},
		{Position: "Dev", Company: "Initech"},
	})

	m1 := models.User{CurrentCompany: "Globex"}
	m2 := models.User{CurrentCompany: "Hooli"}
	m2.SetPastEmployment([]models.Employment{{Position: "Ops", Company: "Acme"}})

	common := CommonCompanies(user, []models.User{m1, m2})
	assert.Equal(t, []string{"Globex", "Acme"}, common)
}

func TestCommonCompanies_Empty(t *testing.T) {
	user := &models.User{CurrentCompany: "Acme"}
	assert.Empty(t, CommonCompanies(user, nil))
	assert.Empty(t, CommonCompanies(user, []models.User{{CurrentCompany: "Globex"}}))
}
