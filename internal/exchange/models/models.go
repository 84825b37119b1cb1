// Package models defines the entities of the gift exchange: users,
// groups, and the memberships binding them.
package models

import (
	id "santa/pkg/domain"
)

// Role is a member's access level within one group. Roles are
// per-membership: the same user can be an admin in one group and a
// plain member in another.
type Role string

const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
)

// User is a participant. The display name is the only mutable field.
type User struct {
	ID   id.UserID `json:"id"`
	Name string    `json:"name"`
}

// Group is a gift exchange round. Closed is terminal: it flips to true
// when the pairing runs and never resets.
type Group struct {
	ID     id.GroupID `json:"id"`
	Closed bool       `json:"closed"`
}

// Membership binds one user to one group, unique per (user, group).
// Recipient stays nil until the group is closed and paired; afterwards
// it names the user this member gifts to.
type Membership struct {
	UserID    id.UserID  `json:"user_id"`
	GroupID   id.GroupID `json:"group_id"`
	Role      Role       `json:"role"`
	Recipient *id.UserID `json:"recipient,omitempty"`
}
