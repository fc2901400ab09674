package models

import (
	"time"

	"gorm.io/datatypes"
)

type Project struct {
	BaseModel
	Name        string `gorm:"uniqueIndex;not null" json:"name"`
	Creator     string `gorm:"not null" json:"creator"` // username, immutable after creation
	Description string `json:"description"`

	IsInProgress   bool       `gorm:"default:true" json:"isInProgress"`
	StartDate      time.Time  `json:"startDate"`
	CompletionDate *time.Time `json:"completionDate,omitempty"`

	// Required attribute sets, plain strings (unweighted).
	Skills               datatypes.JSON `gorm:"type:jsonb" json:"skills"`               // []string
	ProgrammingLanguages datatypes.JSON `gorm:"type:jsonb" json:"programmingLanguages"` // []string
	Frameworks           datatypes.JSON `gorm:"type:jsonb" json:"frameworks"`           // []string

	// Relationship lists hold usernames. Mirror of the lists on User; a
	// username appears in at most one of the three at any time.
	Users    datatypes.JSON `gorm:"type:jsonb" json:"users"`    // []string, confirmed members
	Invitees datatypes.JSON `gorm:"type:jsonb" json:"invitees"` // []string, pending outgoing invites
	Requests datatypes.JSON `gorm:"type:jsonb" json:"requests"` // []string, pending incoming requests
}

// --- Attribute sets ---

// AttributeSet returns the required set for a category.
func (p *Project) AttributeSet(category SkillCategory) []string {
	switch category {
	case CategoryProgrammingLanguages:
		return stringsFromJSON(p.ProgrammingLanguages)
	case CategoryFrameworks:
		return stringsFromJSON(p.Frameworks)
	default:
		return stringsFromJSON(p.Skills)
	}
}

func (p *Project) SetAttributeSet(category SkillCategory, values []string) {
	switch category {
	case CategoryProgrammingLanguages:
		p.ProgrammingLanguages = toJSON(values)
	case CategoryFrameworks:
		p.Frameworks = toJSON(values)
	default:
		p.Skills = toJSON(values)
	}
}

// --- Relationship lists ---

func (p *Project) MemberNames() []string    { return stringsFromJSON(p.Users) }
func (p *Project) InviteeNames() []string   { return stringsFromJSON(p.Invitees) }
func (p *Project) RequesterNames() []string { return stringsFromJSON(p.Requests) }

func (p *Project) SetMemberNames(names []string)    { p.Users = toJSON(names) }
func (p *Project) SetInviteeNames(names []string)   { p.Invitees = toJSON(names) }
func (p *Project) SetRequesterNames(names []string) { p.Requests = toJSON(names) }

// MembershipStateOf derives the explicit state of a user's relationship
// with this project. The project side is authoritative for transition
// checks; the lifecycle manager keeps the user's lists in step.
func (p *Project) MembershipStateOf(username string) MembershipState {
	switch {
	case containsString(p.MemberNames(), username):
		return MembershipMember
	case containsString(p.InviteeNames(), username):
		return MembershipInvited
	case containsString(p.RequesterNames(), username):
		return MembershipRequested
	default:
		return MembershipNone
	}
}
