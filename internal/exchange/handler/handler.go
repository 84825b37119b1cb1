// Package handler exposes the exchange over HTTP: route registration,
// request parsing, and response mapping. Domain decisions stay in the
// service.
package handler

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"santa/internal/exchange/models"
	"santa/internal/exchange/service"
	id "santa/pkg/domain"
	"santa/pkg/platform/httputil"
)

// Service defines the exchange operations the handler depends on.
type Service interface {
	CreateUser(ctx context.Context, name string) (models.User, error)
	GetUser(ctx context.Context, userID id.UserID) (models.User, error)
	ListUsers(ctx context.Context) []models.User
	UpdateUser(ctx context.Context, userID id.UserID, name string) (models.User, error)
	DeleteUser(ctx context.Context, userID id.UserID) (service.DeleteUserResult, error)

	CreateGroup(ctx context.Context, creatorID id.UserID) (models.Group, error)
	GetGroup(ctx context.Context, groupID id.GroupID) (models.Group, error)
	ListGroups(ctx context.Context) []models.Group
	DeleteGroup(ctx context.Context, adminID id.UserID, groupID id.GroupID) error
	ListMembers(ctx context.Context, groupID id.GroupID) ([]models.Membership, error)
	ListAdmins(ctx context.Context, groupID id.GroupID) ([]models.Membership, error)

	JoinGroup(ctx context.Context, userID id.UserID, groupID id.GroupID) (models.Membership, error)
	QuitGroup(ctx context.Context, userID id.UserID, groupID id.GroupID) error
	PromoteToAdmin(ctx context.Context, actingAdminID, memberID id.UserID, groupID id.GroupID) error
	DemoteFromAdmin(ctx context.Context, adminID id.UserID, groupID id.GroupID) error

	RunSecretSanta(ctx context.Context, adminID id.UserID, groupID id.GroupID) (int, error)
	GetRecipient(ctx context.Context, userID id.UserID, groupID id.GroupID) (*id.UserID, error)
}

// Handler wires exchange endpoints to the exchange service.
type Handler struct {
	service Service
	logger  *slog.Logger
}

// New constructs an exchange handler with its dependencies.
func New(service Service, logger *slog.Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Register mounts exchange endpoints on the router.
func (h *Handler) Register(r chi.Router) {
	r.Route("/users", func(r chi.Router) {
		r.Post("/", h.HandleCreateUser)
		r.Get("/", h.HandleListUsers)
		r.Get("/{userID}", h.HandleGetUser)
		r.Put("/{userID}", h.HandleUpdateUser)
		r.Delete("/{userID}", h.HandleDeleteUser)
	})

	r.Route("/groups", func(r chi.Router) {
		r.Post("/", h.HandleCreateGroup)
		r.Get("/", h.HandleListGroups)
		r.Get("/{groupID}", h.HandleGetGroup)
		r.Delete("/{groupID}", h.HandleDeleteGroup)

		r.Get("/{groupID}/members", h.HandleListMembers)
		r.Get("/{groupID}/admins", h.HandleListAdmins)

		r.Post("/{groupID}/join", h.HandleJoinGroup)
		r.Post("/{groupID}/leave", h.HandleQuitGroup)
		r.Post("/{groupID}/admin", h.HandlePromote)
		r.Post("/{groupID}/unadmin", h.HandleDemote)

		r.Post("/{groupID}/secret-santa", h.HandleRunSecretSanta)
		r.Get("/{groupID}/secret-santa", h.HandleGetRecipient)
	})
}

// userIDParam parses the {userID} route parameter, writing the error
// response itself on failure.
func userIDParam(w http.ResponseWriter, r *http.Request) (id.UserID, bool) {
	userID, err := id.ParseUserID(chi.URLParam(r, "userID"))
	if err != nil {
		httputil.WriteError(w, err)
		return 0, false
	}
	return userID, true
}

// groupIDParam parses the {groupID} route parameter, writing the error
// response itself on failure.
func groupIDParam(w http.ResponseWriter, r *http.Request) (id.GroupID, bool) {
	groupID, err := id.ParseGroupID(chi.URLParam(r, "groupID"))
	if err != nil {
		httputil.WriteError(w, err)
		return 0, false
	}
	return groupID, true
}
