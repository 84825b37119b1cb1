// Package store holds the in-memory entity collections and the
// monotonic identifier allocators. It does plain lookup, insert, and
// remove only — validation belongs to the rules package and locking to
// the service, which serializes every operation through its single
// exclusive lock. Not safe for concurrent use on its own.
package store

import (
	"sort"

	"santa/internal/exchange/models"
	id "santa/pkg/domain"
	"santa/pkg/platform/sentinel"
)

// MembershipKey is the composite key of the memberships collection.
type MembershipKey struct {
	UserID  id.UserID
	GroupID id.GroupID
}

// Memory owns the three entity collections and the id counters.
type Memory struct {
	nextUserID  id.UserID
	nextGroupID id.GroupID

	users       map[id.UserID]models.User
	groups      map[id.GroupID]models.Group
	memberships map[MembershipKey]models.Membership
}

// NewMemory returns an empty store. Identifiers start at 0.
func NewMemory() *Memory {
	return &Memory{
		users:       make(map[id.UserID]models.User),
		groups:      make(map[id.GroupID]models.Group),
		memberships: make(map[MembershipKey]models.Membership),
	}
}

// AllocateUserID issues the next user id. Issued ids are never reused,
// even after the user is deleted.
func (s *Memory) AllocateUserID() id.UserID {
	allocated := s.nextUserID
	s.nextUserID++
	return allocated
}

// AllocateGroupID issues the next group id, with the same no-reuse
// guarantee as AllocateUserID.
func (s *Memory) AllocateGroupID() id.GroupID {
	allocated := s.nextGroupID
	s.nextGroupID++
	return allocated
}

// PutUser inserts or replaces a user record.
func (s *Memory) PutUser(user models.User) {
	s.users[user.ID] = user
}

// GetUser looks up a user by id.
func (s *Memory) GetUser(userID id.UserID) (models.User, error) {
	if user, ok := s.users[userID]; ok {
		return user, nil
	}
	return models.User{}, sentinel.ErrNotFound
}

// DeleteUser removes a user record. Memberships are the caller's
// responsibility.
func (s *Memory) DeleteUser(userID id.UserID) error {
	if _, ok := s.users[userID]; !ok {
		return sentinel.ErrNotFound
	}
	delete(s.users, userID)
	return nil
}

// Users lists all users in ascending id order.
func (s *Memory) Users() []models.User {
	users := make([]models.User, 0, len(s.users))
	for _, user := range s.users {
		users = append(users, user)
	}
	sort.Slice(users, func(i, j int) bool { return users[i].ID < users[j].ID })
	return users
}

// PutGroup inserts or replaces a group record.
func (s *Memory) PutGroup(group models.Group) {
	s.groups[group.ID] = group
}

// GetGroup looks up a group by id.
func (s *Memory) GetGroup(groupID id.GroupID) (models.Group, error) {
	if group, ok := s.groups[groupID]; ok {
		return group, nil
	}
	return models.Group{}, sentinel.ErrNotFound
}

// DeleteGroup removes a group record. Memberships are the caller's
// responsibility.
func (s *Memory) DeleteGroup(groupID id.GroupID) error {
	if _, ok := s.groups[groupID]; !ok {
		return sentinel.ErrNotFound
	}
	delete(s.groups, groupID)
	return nil
}

// Groups lists all groups in ascending id order.
func (s *Memory) Groups() []models.Group {
	groups := make([]models.Group, 0, len(s.groups))
	for _, group := range s.groups {
		groups = append(groups, group)
	}
	sort.Slice(groups, func(i, j int) bool { return groups[i].ID < groups[j].ID })
	return groups
}

// PutMembership inserts or replaces a membership record.
func (s *Memory) PutMembership(m models.Membership) {
	s.memberships[MembershipKey{UserID: m.UserID, GroupID: m.GroupID}] = m
}

// GetMembership looks up the membership of a user in a group.
func (s *Memory) GetMembership(userID id.UserID, groupID id.GroupID) (models.Membership, error) {
	if m, ok := s.memberships[MembershipKey{UserID: userID, GroupID: groupID}]; ok {
		return m, nil
	}
	return models.Membership{}, sentinel.ErrNotFound
}

// DeleteMembership removes the membership of a user in a group.
func (s *Memory) DeleteMembership(userID id.UserID, groupID id.GroupID) error {
	key := MembershipKey{UserID: userID, GroupID: groupID}
	if _, ok := s.memberships[key]; !ok {
		return sentinel.ErrNotFound
	}
	delete(s.memberships, key)
	return nil
}

// MembershipsByGroup lists a group's memberships in ascending user id
// order. The pairing engine depends on this order being deterministic.
func (s *Memory) MembershipsByGroup(groupID id.GroupID) []models.Membership {
	var members []models.Membership
	for key, m := range s.memberships {
		if key.GroupID == groupID {
			members = append(members, m)
		}
	}
	sort.Slice(members, func(i, j int) bool { return members[i].UserID < members[j].UserID })
	return members
}

// MembershipsByUser lists a user's memberships in ascending group id
// order.
func (s *Memory) MembershipsByUser(userID id.UserID) []models.Membership {
	var members []models.Membership
	for key, m := range s.memberships {
		if key.UserID == userID {
			members = append(members, m)
		}
	}
	sort.Slice(members, func(i, j int) bool { return members[i].GroupID < members[j].GroupID })
	return members
}

// DeleteMembershipsByGroup removes every membership of a group and
// reports how many were removed.
func (s *Memory) DeleteMembershipsByGroup(groupID id.GroupID) int {
	removed := 0
	for key := range s.memberships {
		if key.GroupID == groupID {
			delete(s.memberships, key)
			removed++
		}
	}
	return removed
}
