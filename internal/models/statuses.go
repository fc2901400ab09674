package models

// MembershipState is the explicit state of a (user, project) pair. The
// relationship lists on User and Project are the persisted representation;
// the enum exists so transition rules are checked against one value instead
// of three arrays.
type MembershipState string

const (
	MembershipNone      MembershipState = "none"
	MembershipRequested MembershipState = "requested"
	MembershipInvited   MembershipState = "invited"
	MembershipMember    MembershipState = "member"
)

// Operation is the lifecycle event kind recorded on a notification.
type Operation string

const (
	OperationNewRequest      Operation = "new_request"
	OperationNewInvite       Operation = "new_invite"
	OperationAcceptedRequest Operation = "accepted_request"
	OperationRejectedRequest Operation = "rejected_request"
	OperationAcceptedInvite  Operation = "accepted_invite"
	OperationRejectedInvite  Operation = "rejected_invite"
)

// SkillCategory selects one of the three weighted-skill collections.
type SkillCategory string

const (
	CategorySkills               SkillCategory = "skills"
	CategoryProgrammingLanguages SkillCategory = "programmingLanguages"
	CategoryFrameworks           SkillCategory = "frameworks"
)

// ParseSkillCategory maps a path segment to a category.
func ParseSkillCategory(s string) (SkillCategory, bool) {
	switch SkillCategory(s) {
	case CategorySkills, CategoryProgrammingLanguages, CategoryFrameworks:
		return SkillCategory(s), true
	}
	return "", false
}
