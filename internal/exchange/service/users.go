package service

import (
	"context"

	"santa/internal/exchange/models"
	"santa/internal/exchange/rules"
	id "santa/pkg/domain"
	dErrors "santa/pkg/domain-errors"
)

// CreateUser allocates an id and inserts a user with the given display
// name.
func (s *Service) CreateUser(ctx context.Context, name string) (user models.User, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	done := s.track("create_user")
	defer func() { done(err) }()

	if name == "" {
		return models.User{}, dErrors.New(dErrors.CodeInvalidInput, "name is required")
	}

	user = models.User{ID: s.store.AllocateUserID(), Name: name}
	s.store.PutUser(user)

	s.logger.InfoContext(ctx, "user created", "user_id", user.ID, "name", user.Name)
	return user, nil
}

// GetUser returns one user by id.
func (s *Service) GetUser(ctx context.Context, userID id.UserID) (user models.User, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	done := s.track("get_user")
	defer func() { done(err) }()

	user, storeErr := s.store.GetUser(userID)
	if storeErr != nil {
		return models.User{}, dErrors.New(dErrors.CodeNotFound, "user not found")
	}
	return user, nil
}

// ListUsers returns all users in ascending id order.
func (s *Service) ListUsers(ctx context.Context) []models.User {
	s.mu.Lock()
	defer s.mu.Unlock()
	defer s.track("list_users")(nil)

	return s.store.Users()
}

// UpdateUser replaces a user's display name.
func (s *Service) UpdateUser(ctx context.Context, userID id.UserID, name string) (user models.User, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	done := s.track("update_user")
	defer func() { done(err) }()

	if name == "" {
		return models.User{}, dErrors.New(dErrors.CodeInvalidInput, "name is required")
	}

	user, storeErr := s.store.GetUser(userID)
	if storeErr != nil {
		return models.User{}, dErrors.New(dErrors.CodeNotFound, "user not found")
	}

	user.Name = name
	s.store.PutUser(user)

	s.logger.InfoContext(ctx, "user updated", "user_id", user.ID, "name", user.Name)
	return user, nil
}

// DeleteUserResult reports the outcome of a DeleteUser call. The
// operation deliberately applies partially: every open-group membership
// that can be vacated without breaking the last-admin rule is removed
// even when the user record itself survives.
type DeleteUserResult struct {
	// Deleted is true when the user record was removed along with all
	// of their memberships.
	Deleted bool

	// BlockedOpen lists open groups that kept their membership because
	// the user is their last admin.
	BlockedOpen []id.GroupID

	// Closed lists closed groups the user belongs to. Any entry here
	// pins the user record: closed memberships are frozen and can never
	// be vacated.
	Closed []id.GroupID
}

// DeleteUser removes a user and their memberships where the invariants
// allow it. See DeleteUserResult for the partial-application contract.
func (s *Service) DeleteUser(ctx context.Context, userID id.UserID) (res DeleteUserResult, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	done := s.track("delete_user")
	defer func() { done(err) }()

	if _, storeErr := s.store.GetUser(userID); storeErr != nil {
		return DeleteUserResult{}, dErrors.New(dErrors.CodeNotFound, "user not found")
	}

	// Memberships live in distinct groups, so vacating one never
	// changes another group's admin count; order is irrelevant.
	for _, m := range s.store.MembershipsByUser(userID) {
		switch {
		case rules.IsClosed(s.store, m.GroupID):
			res.Closed = append(res.Closed, m.GroupID)
		case !rules.CanVacate(s.store, m):
			res.BlockedOpen = append(res.BlockedOpen, m.GroupID)
		default:
			_ = s.store.DeleteMembership(m.UserID, m.GroupID)
		}
	}

	if len(res.Closed) == 0 && len(res.BlockedOpen) == 0 {
		_ = s.store.DeleteUser(userID)
		res.Deleted = true
		s.logger.InfoContext(ctx, "user deleted", "user_id", userID)
		return res, nil
	}

	s.logger.InfoContext(ctx, "user deletion blocked",
		"user_id", userID,
		"blocked_open_groups", len(res.BlockedOpen),
		"closed_groups", len(res.Closed),
	)
	return res, nil
}
