// Package rules holds the stateless predicates the service consults
// before committing a mutation. Each predicate reads the store as it is
// at call time; the service's lock guarantees that snapshot cannot
// change between the check and the commit.
package rules

import (
	"santa/internal/exchange/models"
	"santa/internal/exchange/store"
	id "santa/pkg/domain"
)

// MembershipExists reports whether the user belongs to the group.
func MembershipExists(st *store.Memory, userID id.UserID, groupID id.GroupID) bool {
	_, err := st.GetMembership(userID, groupID)
	return err == nil
}

// IsAdmin reports whether the user holds the admin role in the group.
// A missing membership counts as "not admin".
func IsAdmin(st *store.Memory, userID id.UserID, groupID id.GroupID) bool {
	m, err := st.GetMembership(userID, groupID)
	return err == nil && m.Role == models.RoleAdmin
}

// AdminCount counts the group's admin memberships.
func AdminCount(st *store.Memory, groupID id.GroupID) int {
	count := 0
	for _, m := range st.MembershipsByGroup(groupID) {
		if m.Role == models.RoleAdmin {
			count++
		}
	}
	return count
}

// IsClosed reports whether the group exists and is closed.
func IsClosed(st *store.Memory, groupID id.GroupID) bool {
	group, err := st.GetGroup(groupID)
	return err == nil && group.Closed
}

// CanVacate reports whether removing the user's membership keeps the
// last-admin rule intact: plain members may always leave, admins only
// while another admin remains. Deleting the whole group is the one
// sanctioned path to a zero-admin state.
func CanVacate(st *store.Memory, m models.Membership) bool {
	if m.Role != models.RoleAdmin {
		return true
	}
	return AdminCount(st, m.GroupID) >= 2
}
