package handler

import (
	"net/http"

	id "santa/pkg/domain"
	"santa/pkg/platform/httputil"
	"santa/pkg/requestcontext"
)

// HandleCreateGroup handles POST /groups requests.
func (h *Handler) HandleCreateGroup(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)

	req, ok := httputil.DecodeAndPrepare[CreateGroupRequest](w, r, h.logger, ctx, requestID)
	if !ok {
		return
	}

	group, err := h.service.CreateGroup(ctx, id.UserID(req.CreatorID))
	if err != nil {
		httputil.WriteError(w, err)
		return
	}

	h.logger.InfoContext(ctx, "group created",
		"request_id", requestID,
		"group_id", group.ID,
		"creator_id", req.CreatorID,
	)
	httputil.WriteJSON(w, http.StatusCreated, FromGroup(group))
}

// HandleListGroups handles GET /groups requests.
func (h *Handler) HandleListGroups(w http.ResponseWriter, r *http.Request) {
	httputil.WriteJSON(w, http.StatusOK, FromGroups(h.service.ListGroups(r.Context())))
}

// HandleGetGroup handles GET /groups/{groupID} requests, returning the
// group with its membership list.
func (h *Handler) HandleGetGroup(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	groupID, ok := groupIDParam(w, r)
	if !ok {
		return
	}

	group, err := h.service.GetGroup(ctx, groupID)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	members, err := h.service.ListMembers(ctx, groupID)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, GroupDetailResponse{
		ID:      group.ID,
		Closed:  group.Closed,
		Members: FromMemberships(members),
	})
}

// HandleDeleteGroup handles DELETE /groups/{groupID} requests.
func (h *Handler) HandleDeleteGroup(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)

	groupID, ok := groupIDParam(w, r)
	if !ok {
		return
	}
	req, ok := httputil.DecodeAndPrepare[AdminActionRequest](w, r, h.logger, ctx, requestID)
	if !ok {
		return
	}

	if err := h.service.DeleteGroup(ctx, id.UserID(req.AdminID), groupID); err != nil {
		httputil.WriteError(w, err)
		return
	}

	h.logger.InfoContext(ctx, "group deleted",
		"request_id", requestID,
		"group_id", groupID,
		"admin_id", req.AdminID,
	)
	httputil.WriteJSON(w, http.StatusOK, map[string]bool{"deleted": true})
}

// HandleListMembers handles GET /groups/{groupID}/members requests.
func (h *Handler) HandleListMembers(w http.ResponseWriter, r *http.Request) {
	groupID, ok := groupIDParam(w, r)
	if !ok {
		return
	}

	members, err := h.service.ListMembers(r.Context(), groupID)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, FromMemberships(members))
}

// HandleListAdmins handles GET /groups/{groupID}/admins requests.
func (h *Handler) HandleListAdmins(w http.ResponseWriter, r *http.Request) {
	groupID, ok := groupIDParam(w, r)
	if !ok {
		return
	}

	admins, err := h.service.ListAdmins(r.Context(), groupID)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, FromMemberships(admins))
}

// HandleJoinGroup handles POST /groups/{groupID}/join requests.
func (h *Handler) HandleJoinGroup(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)

	groupID, ok := groupIDParam(w, r)
	if !ok {
		return
	}
	req, ok := httputil.DecodeAndPrepare[ActorRequest](w, r, h.logger, ctx, requestID)
	if !ok {
		return
	}

	m, err := h.service.JoinGroup(ctx, id.UserID(req.UserID), groupID)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}

	h.logger.InfoContext(ctx, "user joined group",
		"request_id", requestID,
		"user_id", req.UserID,
		"group_id", groupID,
	)
	httputil.WriteJSON(w, http.StatusCreated, FromMembership(m))
}

// HandleQuitGroup handles POST /groups/{groupID}/leave requests.
func (h *Handler) HandleQuitGroup(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)

	groupID, ok := groupIDParam(w, r)
	if !ok {
		return
	}
	req, ok := httputil.DecodeAndPrepare[ActorRequest](w, r, h.logger, ctx, requestID)
	if !ok {
		return
	}

	if err := h.service.QuitGroup(ctx, id.UserID(req.UserID), groupID); err != nil {
		httputil.WriteError(w, err)
		return
	}

	h.logger.InfoContext(ctx, "user left group",
		"request_id", requestID,
		"user_id", req.UserID,
		"group_id", groupID,
	)
	httputil.WriteJSON(w, http.StatusOK, map[string]bool{"left": true})
}

// HandlePromote handles POST /groups/{groupID}/admin requests.
func (h *Handler) HandlePromote(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)

	groupID, ok := groupIDParam(w, r)
	if !ok {
		return
	}
	req, ok := httputil.DecodeAndPrepare[PromoteRequest](w, r, h.logger, ctx, requestID)
	if !ok {
		return
	}

	if err := h.service.PromoteToAdmin(ctx, id.UserID(req.AdminID), id.UserID(req.UserID), groupID); err != nil {
		httputil.WriteError(w, err)
		return
	}

	h.logger.InfoContext(ctx, "member promoted",
		"request_id", requestID,
		"admin_id", req.AdminID,
		"user_id", req.UserID,
		"group_id", groupID,
	)
	httputil.WriteJSON(w, http.StatusOK, map[string]bool{"promoted": true})
}

// HandleDemote handles POST /groups/{groupID}/unadmin requests. Users
// demote only themselves.
func (h *Handler) HandleDemote(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)

	groupID, ok := groupIDParam(w, r)
	if !ok {
		return
	}
	req, ok := httputil.DecodeAndPrepare[ActorRequest](w, r, h.logger, ctx, requestID)
	if !ok {
		return
	}

	if err := h.service.DemoteFromAdmin(ctx, id.UserID(req.UserID), groupID); err != nil {
		httputil.WriteError(w, err)
		return
	}

	h.logger.InfoContext(ctx, "admin demoted",
		"request_id", requestID,
		"user_id", req.UserID,
		"group_id", groupID,
	)
	httputil.WriteJSON(w, http.StatusOK, map[string]bool{"demoted": true})
}
