package models

import (
	"encoding/json"

	"gorm.io/datatypes"
)

// Employment is one position at one company.
type Employment struct {
	Position string `json:"position"`
	Company  string `json:"company"`
}

// WeightedSkill is a skill endorsed by a set of voters. The voter list has
// set semantics: a username appears at most once.
type WeightedSkill struct {
	Name   string   `json:"name"`
	Voters []string `json:"voters"`
}

// VoteCount is the number of distinct endorsers.
func (s WeightedSkill) VoteCount() int {
	return len(s.Voters)
}

// HasVoter reports whether the username already endorsed this skill.
func (s WeightedSkill) HasVoter(username string) bool {
	return containsString(s.Voters, username)
}

type User struct {
	BaseModel
	Username     string `gorm:"uniqueIndex;not null" json:"username"`
	PasswordHash string `gorm:"not null" json:"-"`
	Email        string `json:"-"` // optional, used only for notification copies
	Name         string `gorm:"not null" json:"name"`
	Age          int    `json:"age"`
	Region       string `json:"region"`
	Education    string `json:"education"`
	Industry     string `json:"industry"`
	Bio          string `json:"bio"`

	CurrentPosition string         `json:"currentPosition"`
	CurrentCompany  string         `json:"currentCompany"`
	PastEmployment  datatypes.JSON `gorm:"type:jsonb" json:"pastEmployment"` // []Employment

	Skills               datatypes.JSON `gorm:"type:jsonb" json:"skills"`               // []WeightedSkill
	ProgrammingLanguages datatypes.JSON `gorm:"type:jsonb" json:"programmingLanguages"` // []WeightedSkill
	Frameworks           datatypes.JSON `gorm:"type:jsonb" json:"frameworks"`           // []WeightedSkill

	// Relationship lists hold project names. Invariant: a project name
	// appears in at most one of the three at any time.
	Projects    datatypes.JSON `gorm:"type:jsonb" json:"projects"`    // []string
	Invitations datatypes.JSON `gorm:"type:jsonb" json:"invitations"` // []string
	Requests    datatypes.JSON `gorm:"type:jsonb" json:"requests"`    // []string
}

// --- Employment ---

func (u *User) GetPastEmployment() []Employment {
	if len(u.PastEmployment) == 0 {
		return nil
	}
	var out []Employment
	if err := json.Unmarshal(u.PastEmployment, &out); err != nil {
		return nil
	}
	return out
}

func (u *User) SetPastEmployment(employment []Employment) {
	u.PastEmployment = toJSON(employment)
}

// Companies returns the distinct set of employers, current first.
func (u *User) Companies() []string {
	var out []string
	if u.CurrentCompany != "" {
		out = append(out, u.CurrentCompany)
	}
	for _, e := range u.GetPastEmployment() {
		if e.Company != "" {
			out = appendUnique(out, e.Company)
		}
	}
	return out
}

// --- Weighted skills ---

func weightedSkillsFromJSON(data datatypes.JSON) []WeightedSkill {
	if len(data) == 0 {
		return nil
	}
	var out []WeightedSkill
	if err := json.Unmarshal(data, &out); err != nil {
		return nil
	}
	return out
}

// SkillsIn returns the weighted-skill collection for a category.
func (u *User) SkillsIn(category SkillCategory) []WeightedSkill {
	switch category {
	case CategoryProgrammingLanguages:
		return weightedSkillsFromJSON(u.ProgrammingLanguages)
	case CategoryFrameworks:
		return weightedSkillsFromJSON(u.Frameworks)
	default:
		return weightedSkillsFromJSON(u.Skills)
	}
}

// SetSkillsIn replaces the weighted-skill collection for a category.
func (u *User) SetSkillsIn(category SkillCategory, skills []WeightedSkill) {
	switch category {
	case CategoryProgrammingLanguages:
		u.ProgrammingLanguages = toJSON(skills)
	case CategoryFrameworks:
		u.Frameworks = toJSON(skills)
	default:
		u.Skills = toJSON(skills)
	}
}

// SkillNamesIn returns just the names, for set-overlap scoring.
func (u *User) SkillNamesIn(category SkillCategory) []string {
	skills := u.SkillsIn(category)
	out := make([]string, 0, len(skills))
	for _, s := range skills {
		out = append(out, s.Name)
	}
	return out
}

// --- Relationship lists ---

func (u *User) ProjectNames() []string    { return stringsFromJSON(u.Projects) }
func (u *User) InvitationNames() []string { return stringsFromJSON(u.Invitations) }
func (u *User) RequestNames() []string    { return stringsFromJSON(u.Requests) }

func (u *User) SetProjectNames(names []string)    { u.Projects = toJSON(names) }
func (u *User) SetInvitationNames(names []string) { u.Invitations = toJSON(names) }
func (u *User) SetRequestNames(names []string)    { u.Requests = toJSON(names) }

// MembershipStateFor derives the explicit state of this user's relationship
// with a project from the user's own lists.
func (u *User) MembershipStateFor(projectName string) MembershipState {
	switch {
	case containsString(u.ProjectNames(), projectName):
		return MembershipMember
	case containsString(u.InvitationNames(), projectName):
		return MembershipInvited
	case containsString(u.RequestNames(), projectName):
		return MembershipRequested
	default:
		return MembershipNone
	}
}
