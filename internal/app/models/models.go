package models

// RoleType defines the user role type
type RoleType string

const (
	RoleStudent   RoleType = "student"
	RoleProfessor RoleType = "professor"
)

// IsValid reports whether the role is one of the known roles
func (r RoleType) IsValid() bool {
	return r == RoleStudent || r == RoleProfessor
}

// PostType categorizes a post
type PostType string

const (
	PostTypeGeneral    PostType = "general"
	PostTypeComplaint  PostType = "complaint"
	PostTypeSuggestion PostType = "suggestion"
	PostTypeRant       PostType = "rant"
)

// IsValid reports whether the post type is one of the known categories
func (t PostType) IsValid() bool {
	switch t {
	case PostTypeGeneral, PostTypeComplaint, PostTypeSuggestion, PostTypeRant:
		return true
	}
	return false
}

// VoteDirection is the direction of a post vote
type VoteDirection string

const (
	VoteDirectionUp   VoteDirection = "up"
	VoteDirectionDown VoteDirection = "down"
)

// IsValid reports whether the direction is up or down
func (d VoteDirection) IsValid() bool {
	return d == VoteDirectionUp || d == VoteDirectionDown
}

// ElectionType distinguishes formal elections from informal polls
type ElectionType string

const (
	ElectionTypeElection ElectionType = "election"
	ElectionTypePoll     ElectionType = "poll"
)

// IsValid reports whether the election type is known
func (t ElectionType) IsValid() bool {
	return t == ElectionTypeElection || t == ElectionTypePoll
}

// ElectionStatus is the lifecycle state of an election.
// No operation currently transitions an election to closed; the value is
// kept for forward compatibility with existing data.
type ElectionStatus string

const (
	ElectionStatusActive ElectionStatus = "active"
	ElectionStatusClosed ElectionStatus = "closed"
)

// Identity is the authenticated principal attached to a request, extracted
// from a verified token claim. The core trusts it and never accepts a
// client-supplied identity for vote or election mutations.
type Identity struct {
	UserID int64
	Name   string
	Role   RoleType
}
