package service

import (
	"context"

	"santa/internal/exchange/models"
	"santa/internal/exchange/rules"
	id "santa/pkg/domain"
	dErrors "santa/pkg/domain-errors"
)

// RunSecretSanta closes the group and assigns every member exactly one
// recipient. Members are enumerated in ascending user id order and
// assigned cyclically: the member at position i receives the member at
// position i-1, position 0 receives the last. A single cycle covers all
// members, so for groups of two or more nobody is their own recipient.
//
// A group of one degenerately self-pairs; no invariant forbids a
// one-member group. An empty group just closes.
//
// Closing is irreversible, and a second run against the closed group is
// rejected rather than reshuffled.
func (s *Service) RunSecretSanta(ctx context.Context, adminID id.UserID, groupID id.GroupID) (assigned int, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	done := s.track("run_secret_santa")
	defer func() { done(err) }()

	m, storeErr := s.store.GetMembership(adminID, groupID)
	if storeErr != nil {
		return 0, dErrors.New(dErrors.CodeNotMember, "user is not a member of this group")
	}
	if m.Role != models.RoleAdmin {
		return 0, dErrors.New(dErrors.CodeNotAdmin, "user is not an admin of this group")
	}
	if rules.IsClosed(s.store, groupID) {
		return 0, dErrors.New(dErrors.CodeGroupClosed, "group is already closed")
	}

	group, storeErr := s.store.GetGroup(groupID)
	if storeErr != nil {
		return 0, dErrors.Wrap(storeErr, dErrors.CodeInternal, "membership references missing group")
	}
	group.Closed = true
	s.store.PutGroup(group)

	members := s.store.MembershipsByGroup(groupID)
	for i := range members {
		recipient := members[(i+len(members)-1)%len(members)].UserID
		members[i].Recipient = &recipient
		s.store.PutMembership(members[i])
	}

	s.metrics.ObservePairing(len(members))
	s.logger.InfoContext(ctx, "secret santa assigned",
		"group_id", groupID,
		"admin_id", adminID,
		"members", len(members),
	)
	return len(members), nil
}

// GetRecipient returns the recipient assigned to a member. The
// recipient is nil while the group is still open.
func (s *Service) GetRecipient(ctx context.Context, userID id.UserID, groupID id.GroupID) (recipient *id.UserID, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	done := s.track("get_recipient")
	defer func() { done(err) }()

	m, storeErr := s.store.GetMembership(userID, groupID)
	if storeErr != nil {
		return nil, dErrors.New(dErrors.CodeNotMember, "user is not a member of this group")
	}
	if m.Recipient == nil {
		return nil, nil
	}
	r := *m.Recipient
	return &r, nil
}
