package handler

import (
	"santa/internal/exchange/models"
	"santa/internal/exchange/service"
	id "santa/pkg/domain"
	dErrors "santa/pkg/domain-errors"
)

// UserResponse is the wire shape of a user.
type UserResponse struct {
	ID   id.UserID `json:"id"`
	Name string    `json:"name"`
}

func FromUser(u models.User) UserResponse {
	return UserResponse{ID: u.ID, Name: u.Name}
}

func FromUsers(users []models.User) []UserResponse {
	out := make([]UserResponse, 0, len(users))
	for _, u := range users {
		out = append(out, FromUser(u))
	}
	return out
}

// GroupResponse is the wire shape of a group in listings.
type GroupResponse struct {
	ID     id.GroupID `json:"id"`
	Closed bool       `json:"closed"`
}

func FromGroup(g models.Group) GroupResponse {
	return GroupResponse{ID: g.ID, Closed: g.Closed}
}

func FromGroups(groups []models.Group) []GroupResponse {
	out := make([]GroupResponse, 0, len(groups))
	for _, g := range groups {
		out = append(out, FromGroup(g))
	}
	return out
}

// GroupDetailResponse is the wire shape of GET /groups/{groupID}: the
// group plus its full membership list.
type GroupDetailResponse struct {
	ID      id.GroupID       `json:"id"`
	Closed  bool             `json:"closed"`
	Members []MemberResponse `json:"members"`
}

// MemberResponse is the wire shape of one membership. The recipient is
// omitted until the group has been paired.
type MemberResponse struct {
	UserID    id.UserID  `json:"user_id"`
	Role      string     `json:"role"`
	Recipient *id.UserID `json:"recipient,omitempty"`
}

func FromMembership(m models.Membership) MemberResponse {
	return MemberResponse{
		UserID:    m.UserID,
		Role:      string(m.Role),
		Recipient: m.Recipient,
	}
}

func FromMemberships(members []models.Membership) []MemberResponse {
	out := make([]MemberResponse, 0, len(members))
	for _, m := range members {
		out = append(out, FromMembership(m))
	}
	return out
}

// DeleteUserBlockedResponse extends the standard error envelope with
// the groups that kept the user alive. Open-group memberships that
// could be vacated are already gone by the time this is returned.
type DeleteUserBlockedResponse struct {
	Error            string       `json:"error"`
	ErrorDescription string       `json:"error_description"`
	BlockedGroups    []id.GroupID `json:"blocked_groups,omitempty"`
	ClosedGroups     []id.GroupID `json:"closed_groups,omitempty"`
}

// FromDeleteUserResult maps a blocked deletion to its envelope. Closed
// memberships dominate the error code: they can never be vacated,
// while a last-admin block is recoverable by promoting someone else.
func FromDeleteUserResult(res service.DeleteUserResult) DeleteUserBlockedResponse {
	out := DeleteUserBlockedResponse{
		Error:            string(dErrors.CodeLastAdmin),
		ErrorDescription: "user is the last admin of open groups",
		BlockedGroups:    res.BlockedOpen,
		ClosedGroups:     res.Closed,
	}
	if len(res.Closed) > 0 {
		out.Error = string(dErrors.CodeGroupClosed)
		out.ErrorDescription = "user belongs to closed groups"
	}
	return out
}

// RunSecretSantaResponse is the wire shape of a successful pairing run.
type RunSecretSantaResponse struct {
	Closed   bool `json:"closed"`
	Assigned int  `json:"assigned"`
}

// RecipientResponse is the wire shape of GET
// /groups/{groupID}/secret-santa. Assigned is false while the group is
// still open.
type RecipientResponse struct {
	Assigned    bool       `json:"assigned"`
	RecipientID *id.UserID `json:"recipient_id,omitempty"`
}
