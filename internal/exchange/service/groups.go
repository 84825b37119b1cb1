package service

import (
	"context"

	"santa/internal/exchange/models"
	"santa/internal/exchange/rules"
	id "santa/pkg/domain"
	dErrors "santa/pkg/domain-errors"
)

// CreateGroup allocates a group id, inserts an open group, and makes
// the creator its first admin.
func (s *Service) CreateGroup(ctx context.Context, creatorID id.UserID) (group models.Group, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	done := s.track("create_group")
	defer func() { done(err) }()

	if _, storeErr := s.store.GetUser(creatorID); storeErr != nil {
		return models.Group{}, dErrors.New(dErrors.CodeNotFound, "creator not found")
	}

	group = models.Group{ID: s.store.AllocateGroupID()}
	s.store.PutGroup(group)
	s.store.PutMembership(models.Membership{
		UserID:  creatorID,
		GroupID: group.ID,
		Role:    models.RoleAdmin,
	})

	s.logger.InfoContext(ctx, "group created", "group_id", group.ID, "creator_id", creatorID)
	return group, nil
}

// GetGroup returns one group by id.
func (s *Service) GetGroup(ctx context.Context, groupID id.GroupID) (group models.Group, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	done := s.track("get_group")
	defer func() { done(err) }()

	group, storeErr := s.store.GetGroup(groupID)
	if storeErr != nil {
		return models.Group{}, dErrors.New(dErrors.CodeNotFound, "group not found")
	}
	return group, nil
}

// ListGroups returns all groups in ascending id order.
func (s *Service) ListGroups(ctx context.Context) []models.Group {
	s.mu.Lock()
	defer s.mu.Unlock()
	defer s.track("list_groups")(nil)

	return s.store.Groups()
}

// ListMembers returns a group's memberships in ascending user id order.
func (s *Service) ListMembers(ctx context.Context, groupID id.GroupID) (members []models.Membership, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	done := s.track("list_members")
	defer func() { done(err) }()

	if _, storeErr := s.store.GetGroup(groupID); storeErr != nil {
		return nil, dErrors.New(dErrors.CodeNotFound, "group not found")
	}
	return s.store.MembershipsByGroup(groupID), nil
}

// ListAdmins returns the subset of a group's memberships holding the
// admin role.
func (s *Service) ListAdmins(ctx context.Context, groupID id.GroupID) (admins []models.Membership, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	done := s.track("list_admins")
	defer func() { done(err) }()

	if _, storeErr := s.store.GetGroup(groupID); storeErr != nil {
		return nil, dErrors.New(dErrors.CodeNotFound, "group not found")
	}
	for _, m := range s.store.MembershipsByGroup(groupID) {
		if m.Role == models.RoleAdmin {
			admins = append(admins, m)
		}
	}
	return admins, nil
}

// JoinGroup adds a user to an open group as a plain member.
func (s *Service) JoinGroup(ctx context.Context, userID id.UserID, groupID id.GroupID) (m models.Membership, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	done := s.track("join_group")
	defer func() { done(err) }()

	if _, storeErr := s.store.GetGroup(groupID); storeErr != nil {
		return models.Membership{}, dErrors.New(dErrors.CodeNotFound, "group not found")
	}
	if rules.IsClosed(s.store, groupID) {
		return models.Membership{}, dErrors.New(dErrors.CodeGroupClosed, "group is closed")
	}
	if _, storeErr := s.store.GetUser(userID); storeErr != nil {
		return models.Membership{}, dErrors.New(dErrors.CodeNotFound, "user not found")
	}
	if rules.MembershipExists(s.store, userID, groupID) {
		return models.Membership{}, dErrors.New(dErrors.CodeAlreadyMember, "user is already a member")
	}

	m = models.Membership{UserID: userID, GroupID: groupID, Role: models.RoleUser}
	s.store.PutMembership(m)

	s.logger.InfoContext(ctx, "user joined group", "user_id", userID, "group_id", groupID)
	return m, nil
}

// QuitGroup removes a user's membership from an open group. Admins may
// only quit while another admin remains.
func (s *Service) QuitGroup(ctx context.Context, userID id.UserID, groupID id.GroupID) (err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	done := s.track("quit_group")
	defer func() { done(err) }()

	m, storeErr := s.store.GetMembership(userID, groupID)
	if storeErr != nil {
		return dErrors.New(dErrors.CodeNotMember, "user is not a member of this group")
	}
	if rules.IsClosed(s.store, groupID) {
		return dErrors.New(dErrors.CodeGroupClosed, "group is closed")
	}
	if m.Role == models.RoleAdmin && rules.AdminCount(s.store, groupID) < 2 {
		return dErrors.New(dErrors.CodeLastAdmin, "group would lose its last admin")
	}

	_ = s.store.DeleteMembership(userID, groupID)

	s.logger.InfoContext(ctx, "user quit group", "user_id", userID, "group_id", groupID)
	return nil
}

// PromoteToAdmin grants the admin role to a member, on behalf of an
// acting admin of the same group.
func (s *Service) PromoteToAdmin(ctx context.Context, actingAdminID, memberID id.UserID, groupID id.GroupID) (err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	done := s.track("promote_to_admin")
	defer func() { done(err) }()

	if _, storeErr := s.store.GetGroup(groupID); storeErr != nil {
		return dErrors.New(dErrors.CodeNotFound, "group not found")
	}
	if rules.IsClosed(s.store, groupID) {
		return dErrors.New(dErrors.CodeGroupClosed, "group is closed")
	}
	m, storeErr := s.store.GetMembership(memberID, groupID)
	if storeErr != nil {
		return dErrors.New(dErrors.CodeNotMember, "user is not a member of this group")
	}
	if m.Role == models.RoleAdmin {
		return dErrors.New(dErrors.CodeAlreadyAdmin, "user is already an admin")
	}
	if !rules.IsAdmin(s.store, actingAdminID, groupID) {
		return dErrors.New(dErrors.CodeForbidden, "acting user is not an admin of this group")
	}

	m.Role = models.RoleAdmin
	s.store.PutMembership(m)

	s.logger.InfoContext(ctx, "member promoted to admin",
		"acting_admin_id", actingAdminID,
		"user_id", memberID,
		"group_id", groupID,
	)
	return nil
}

// DemoteFromAdmin drops a user's own admin role back to plain member.
// The last admin of an open group cannot step down.
func (s *Service) DemoteFromAdmin(ctx context.Context, adminID id.UserID, groupID id.GroupID) (err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	done := s.track("demote_from_admin")
	defer func() { done(err) }()

	m, storeErr := s.store.GetMembership(adminID, groupID)
	if storeErr != nil {
		return dErrors.New(dErrors.CodeNotMember, "user is not a member of this group")
	}
	if rules.IsClosed(s.store, groupID) {
		return dErrors.New(dErrors.CodeGroupClosed, "group is closed")
	}
	if m.Role != models.RoleAdmin {
		return dErrors.New(dErrors.CodeNotAdmin, "user is not an admin of this group")
	}
	if rules.AdminCount(s.store, groupID) < 2 {
		return dErrors.New(dErrors.CodeLastAdmin, "group would lose its last admin")
	}

	m.Role = models.RoleUser
	s.store.PutMembership(m)

	s.logger.InfoContext(ctx, "admin demoted", "user_id", adminID, "group_id", groupID)
	return nil
}

// DeleteGroup removes a group and all of its memberships. Only an admin
// of the group may do this; it is the one path to a zero-admin state.
func (s *Service) DeleteGroup(ctx context.Context, adminID id.UserID, groupID id.GroupID) (err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	done := s.track("delete_group")
	defer func() { done(err) }()

	m, storeErr := s.store.GetMembership(adminID, groupID)
	if storeErr != nil {
		return dErrors.New(dErrors.CodeNotMember, "user is not a member of this group")
	}
	if m.Role != models.RoleAdmin {
		return dErrors.New(dErrors.CodeNotAdmin, "user is not an admin of this group")
	}

	removed := s.store.DeleteMembershipsByGroup(groupID)
	_ = s.store.DeleteGroup(groupID)

	s.logger.InfoContext(ctx, "group deleted",
		"group_id", groupID,
		"admin_id", adminID,
		"memberships_removed", removed,
	)
	return nil
}
