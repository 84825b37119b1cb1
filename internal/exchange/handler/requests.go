package handler

import (
	"strings"

	dErrors "santa/pkg/domain-errors"
)

// CreateUserRequest is the HTTP request body for POST /users.
type CreateUserRequest struct {
	Name string `json:"name"`
}

// Validate validates and normalizes the request.
func (r *CreateUserRequest) Validate() error {
	r.Name = strings.TrimSpace(r.Name)
	if r.Name == "" {
		return dErrors.New(dErrors.CodeInvalidInput, "name is required")
	}
	return nil
}

// UpdateUserRequest is the HTTP request body for PUT /users/{userID}.
type UpdateUserRequest struct {
	Name string `json:"name"`
}

func (r *UpdateUserRequest) Validate() error {
	r.Name = strings.TrimSpace(r.Name)
	if r.Name == "" {
		return dErrors.New(dErrors.CodeInvalidInput, "name is required")
	}
	return nil
}

// CreateGroupRequest is the HTTP request body for POST /groups. The
// creator becomes the group's first admin.
type CreateGroupRequest struct {
	CreatorID uint32 `json:"creator_id"`
}

func (r *CreateGroupRequest) Validate() error { return nil }

// ActorRequest carries the id of the user acting on their own
// membership: join, leave, and unadmin take this shape.
type ActorRequest struct {
	UserID uint32 `json:"user_id"`
}

func (r *ActorRequest) Validate() error { return nil }

// AdminActionRequest carries the id of the admin invoking a
// group-level operation: group deletion and the secret-santa run.
type AdminActionRequest struct {
	AdminID uint32 `json:"admin_id"`
}

func (r *AdminActionRequest) Validate() error { return nil }

// PromoteRequest is the HTTP request body for POST
// /groups/{groupID}/admin: admin_id promotes user_id.
type PromoteRequest struct {
	AdminID uint32 `json:"admin_id"`
	UserID  uint32 `json:"user_id"`
}

func (r *PromoteRequest) Validate() error { return nil }
