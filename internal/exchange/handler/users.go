package handler

import (
	"net/http"

	"santa/pkg/platform/httputil"
	"santa/pkg/requestcontext"
)

// HandleCreateUser handles POST /users requests.
func (h *Handler) HandleCreateUser(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)

	req, ok := httputil.DecodeAndPrepare[CreateUserRequest](w, r, h.logger, ctx, requestID)
	if !ok {
		return
	}

	user, err := h.service.CreateUser(ctx, req.Name)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}

	h.logger.InfoContext(ctx, "user created",
		"request_id", requestID,
		"user_id", user.ID,
	)
	httputil.WriteJSON(w, http.StatusCreated, FromUser(user))
}

// HandleListUsers handles GET /users requests.
func (h *Handler) HandleListUsers(w http.ResponseWriter, r *http.Request) {
	httputil.WriteJSON(w, http.StatusOK, FromUsers(h.service.ListUsers(r.Context())))
}

// HandleGetUser handles GET /users/{userID} requests.
func (h *Handler) HandleGetUser(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDParam(w, r)
	if !ok {
		return
	}

	user, err := h.service.GetUser(r.Context(), userID)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, FromUser(user))
}

// HandleUpdateUser handles PUT /users/{userID} requests.
func (h *Handler) HandleUpdateUser(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)

	userID, ok := userIDParam(w, r)
	if !ok {
		return
	}
	req, ok := httputil.DecodeAndPrepare[UpdateUserRequest](w, r, h.logger, ctx, requestID)
	if !ok {
		return
	}

	user, err := h.service.UpdateUser(ctx, userID, req.Name)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, FromUser(user))
}

// HandleDeleteUser handles DELETE /users/{userID} requests. A blocked
// deletion answers 409 with the groups holding the user in place; the
// memberships that could be vacated are gone either way.
func (h *Handler) HandleDeleteUser(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)

	userID, ok := userIDParam(w, r)
	if !ok {
		return
	}

	res, err := h.service.DeleteUser(ctx, userID)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	if !res.Deleted {
		h.logger.InfoContext(ctx, "user deletion blocked",
			"request_id", requestID,
			"user_id", userID,
			"blocked_groups", len(res.BlockedOpen),
			"closed_groups", len(res.Closed),
		)
		httputil.WriteJSON(w, http.StatusConflict, FromDeleteUserResult(res))
		return
	}

	h.logger.InfoContext(ctx, "user deleted",
		"request_id", requestID,
		"user_id", userID,
	)
	httputil.WriteJSON(w, http.StatusOK, map[string]bool{"deleted": true})
}
