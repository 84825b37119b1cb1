package handler

import (
	"net/http"

	id "santa/pkg/domain"
	"santa/pkg/platform/httputil"
	"santa/pkg/requestcontext"
)

// HandleRunSecretSanta handles POST /groups/{groupID}/secret-santa
// requests: closes the group and assigns recipients.
func (h *Handler) HandleRunSecretSanta(w http.ResponseWriter, r *http.Request) {
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

	assigned, err := h.service.RunSecretSanta(ctx, id.UserID(req.AdminID), groupID)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}

	h.logger.InfoContext(ctx, "secret santa run",
		"request_id", requestID,
		"group_id", groupID,
		"admin_id", req.AdminID,
		"assigned", assigned,
	)
	httputil.WriteJSON(w, http.StatusOK, RunSecretSantaResponse{
		Closed:   true,
		Assigned: assigned,
	})
}

// HandleGetRecipient handles GET
// /groups/{groupID}/secret-santa?user_id=N requests.
func (h *Handler) HandleGetRecipient(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	groupID, ok := groupIDParam(w, r)
	if !ok {
		return
	}
	userID, err := id.ParseUserID(r.URL.Query().Get("user_id"))
	if err != nil {
		httputil.WriteError(w, err)
		return
	}

	recipient, err := h.service.GetRecipient(ctx, userID, groupID)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, RecipientResponse{
		Assigned:    recipient != nil,
		RecipientID: recipient,
	})
}
