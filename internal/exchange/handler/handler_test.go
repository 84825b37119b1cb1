package handler

import (
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/suite"

	"santa/internal/exchange/service"
	"santa/internal/exchange/store"
	id "santa/pkg/domain"
	dErrors "santa/pkg/domain-errors"
	"santa/pkg/testutil"
)

// HandlerSuite drives the full route table through a real router,
// service, and store. Handler tests validate HTTP concerns: parsing,
// status codes, and envelope shapes.
type HandlerSuite struct {
	suite.Suite
	router http.Handler
}

func (s *HandlerSuite) SetupTest() {
	svc, err := service.New(store.NewMemory())
	s.Require().NoError(err)

	h := New(svc, slog.New(slog.NewTextHandler(io.Discard, nil)))
	r := chi.NewRouter()
	h.Register(r)
	s.router = r
}

func TestHandlerSuite(t *testing.T) {
	suite.Run(t, new(HandlerSuite))
}

// createUser drives POST /users and returns the created id.
func (s *HandlerSuite) createUser(name string) id.UserID {
	rr := testutil.DoRequest(s.router,
		testutil.NewJSONRequest(s.T(), http.MethodPost, "/users", CreateUserRequest{Name: name}))
	s.Require().Equal(http.StatusCreated, rr.Code)
	return testutil.UnmarshalResponse[UserResponse](s.T(), rr).ID
}

// createGroup drives POST /groups and returns the created id.
func (s *HandlerSuite) createGroup(creator id.UserID) id.GroupID {
	rr := testutil.DoRequest(s.router,
		testutil.NewJSONRequest(s.T(), http.MethodPost, "/groups", CreateGroupRequest{CreatorID: uint32(creator)}))
	s.Require().Equal(http.StatusCreated, rr.Code)
	return testutil.UnmarshalResponse[GroupResponse](s.T(), rr).ID
}

func (s *HandlerSuite) join(user id.UserID, group id.GroupID) {
	rr := testutil.DoRequest(s.router,
		testutil.NewJSONRequest(s.T(), http.MethodPost, fmt.Sprintf("/groups/%s/join", group), ActorRequest{UserID: uint32(user)}))
	s.Require().Equal(http.StatusCreated, rr.Code)
}

func (s *HandlerSuite) TestCreateUser() {
	s.Run("valid body yields 201 with the user", func() {
		rr := testutil.DoRequest(s.router,
			testutil.NewJSONRequest(s.T(), http.MethodPost, "/users", CreateUserRequest{Name: "Alice"}))

		testutil.AssertStatus(s.T(), rr, http.StatusCreated)
		resp := testutil.UnmarshalResponse[UserResponse](s.T(), rr)
		s.Equal("Alice", resp.Name)
	})

	s.Run("invalid JSON yields 400 bad_request", func() {
		rr := testutil.DoRequest(s.router,
			testutil.NewRequestWithBody(s.T(), http.MethodPost, "/users", "not json"))

		testutil.AssertStatusAndError(s.T(), rr, http.StatusBadRequest, string(dErrors.CodeBadRequest))
	})

	s.Run("blank name yields 400 invalid_input", func() {
		rr := testutil.DoRequest(s.router,
			testutil.NewJSONRequest(s.T(), http.MethodPost, "/users", CreateUserRequest{Name: "   "}))

		testutil.AssertStatusAndError(s.T(), rr, http.StatusBadRequest, string(dErrors.CodeInvalidInput))
	})
}

func (s *HandlerSuite) TestGetUser() {
	alice := s.createUser("Alice")

	s.Run("existing user yields 200", func() {
		rr := testutil.DoRequest(s.router,
			testutil.NewRequest(s.T(), http.MethodGet, "/users/"+alice.String()))

		testutil.AssertStatus(s.T(), rr, http.StatusOK)
		s.Equal("Alice", testutil.UnmarshalResponse[UserResponse](s.T(), rr).Name)
	})

	s.Run("unknown id yields 404 not_found", func() {
		rr := testutil.DoRequest(s.router,
			testutil.NewRequest(s.T(), http.MethodGet, "/users/99"))

		testutil.AssertStatusAndError(s.T(), rr, http.StatusNotFound, string(dErrors.CodeNotFound))
	})

	s.Run("malformed id yields 400 invalid_input", func() {
		rr := testutil.DoRequest(s.router,
			testutil.NewRequest(s.T(), http.MethodGet, "/users/abc"))

		testutil.AssertStatusAndError(s.T(), rr, http.StatusBadRequest, string(dErrors.CodeInvalidInput))
	})
}

func (s *HandlerSuite) TestListUsers() {
	s.createUser("Alice")
	s.createUser("Bob")

	rr := testutil.DoRequest(s.router,
		testutil.NewRequest(s.T(), http.MethodGet, "/users"))

	testutil.AssertStatus(s.T(), rr, http.StatusOK)
	users := testutil.UnmarshalResponse[[]UserResponse](s.T(), rr)
	s.Require().Len(*users, 2)
	s.Equal("Alice", (*users)[0].Name)
	s.Equal("Bob", (*users)[1].Name)
}

func (s *HandlerSuite) TestUpdateUser() {
	alice := s.createUser("Alice")

	rr := testutil.DoRequest(s.router,
		testutil.NewJSONRequest(s.T(), http.MethodPut, "/users/"+alice.String(), UpdateUserRequest{Name: "Alicia"}))

	testutil.AssertStatus(s.T(), rr, http.StatusOK)
	s.Equal("Alicia", testutil.UnmarshalResponse[UserResponse](s.T(), rr).Name)
}

func (s *HandlerSuite) TestDeleteUser() {
	s.Run("free user yields 200 deleted", func() {
		alice := s.createUser("Alice")

		rr := testutil.DoRequest(s.router,
			testutil.NewRequest(s.T(), http.MethodDelete, "/users/"+alice.String()))

		testutil.AssertStatus(s.T(), rr, http.StatusOK)
	})

	s.Run("last admin yields 409 last_admin with blocked groups", func() {
		alice := s.createUser("Alice")
		bob := s.createUser("Bob")
		gid := s.createGroup(alice)
		s.join(bob, gid)

		rr := testutil.DoRequest(s.router,
			testutil.NewRequest(s.T(), http.MethodDelete, "/users/"+alice.String()))

		testutil.AssertStatus(s.T(), rr, http.StatusConflict)
		resp := testutil.UnmarshalResponse[DeleteUserBlockedResponse](s.T(), rr)
		s.Equal(string(dErrors.CodeLastAdmin), resp.Error)
		s.Equal([]id.GroupID{gid}, resp.BlockedGroups)
		s.Empty(resp.ClosedGroups)
	})

	s.Run("closed-group member yields 409 group_closed", func() {
		alice := s.createUser("Alice")
		gid := s.createGroup(alice)
		rr := testutil.DoRequest(s.router,
			testutil.NewJSONRequest(s.T(), http.MethodPost, fmt.Sprintf("/groups/%s/secret-santa", gid), AdminActionRequest{AdminID: uint32(alice)}))
		s.Require().Equal(http.StatusOK, rr.Code)

		rr = testutil.DoRequest(s.router,
			testutil.NewRequest(s.T(), http.MethodDelete, "/users/"+alice.String()))

		testutil.AssertStatus(s.T(), rr, http.StatusConflict)
		resp := testutil.UnmarshalResponse[DeleteUserBlockedResponse](s.T(), rr)
		s.Equal(string(dErrors.CodeGroupClosed), resp.Error)
		s.Equal([]id.GroupID{gid}, resp.ClosedGroups)
	})
}

func (s *HandlerSuite) TestGroups() {
	s.Run("create with unknown creator yields 404", func() {
		rr := testutil.DoRequest(s.router,
			testutil.NewJSONRequest(s.T(), http.MethodPost, "/groups", CreateGroupRequest{CreatorID: 99}))

		testutil.AssertStatusAndError(s.T(), rr, http.StatusNotFound, string(dErrors.CodeNotFound))
	})

	s.Run("get returns group with members", func() {
		alice := s.createUser("Alice")
		bob := s.createUser("Bob")
		gid := s.createGroup(alice)
		s.join(bob, gid)

		rr := testutil.DoRequest(s.router,
			testutil.NewRequest(s.T(), http.MethodGet, "/groups/"+gid.String()))

		testutil.AssertStatus(s.T(), rr, http.StatusOK)
		resp := testutil.UnmarshalResponse[GroupDetailResponse](s.T(), rr)
		s.False(resp.Closed)
		s.Require().Len(resp.Members, 2)
		s.Equal("admin", resp.Members[0].Role)
		s.Equal("user", resp.Members[1].Role)
		s.Nil(resp.Members[0].Recipient)
	})

	s.Run("admins lists only admins", func() {
		alice := s.createUser("Alice")
		bob := s.createUser("Bob")
		gid := s.createGroup(alice)
		s.join(bob, gid)

		rr := testutil.DoRequest(s.router,
			testutil.NewRequest(s.T(), http.MethodGet, fmt.Sprintf("/groups/%s/admins", gid)))

		testutil.AssertStatus(s.T(), rr, http.StatusOK)
		admins := testutil.UnmarshalResponse[[]MemberResponse](s.T(), rr)
		s.Require().Len(*admins, 1)
		s.Equal(alice, (*admins)[0].UserID)
	})

	s.Run("double join yields 409 already_member", func() {
		alice := s.createUser("Alice")
		gid := s.createGroup(alice)

		rr := testutil.DoRequest(s.router,
			testutil.NewJSONRequest(s.T(), http.MethodPost, fmt.Sprintf("/groups/%s/join", gid), ActorRequest{UserID: uint32(alice)}))

		testutil.AssertStatusAndError(s.T(), rr, http.StatusConflict, string(dErrors.CodeAlreadyMember))
	})

	s.Run("last admin leave yields 409 last_admin", func() {
		alice := s.createUser("Alice")
		bob := s.createUser("Bob")
		gid := s.createGroup(alice)
		s.join(bob, gid)

		rr := testutil.DoRequest(s.router,
			testutil.NewJSONRequest(s.T(), http.MethodPost, fmt.Sprintf("/groups/%s/leave", gid), ActorRequest{UserID: uint32(alice)}))

		testutil.AssertStatusAndError(s.T(), rr, http.StatusConflict, string(dErrors.CodeLastAdmin))
	})

	s.Run("promote by non-admin yields 403 forbidden", func() {
		alice := s.createUser("Alice")
		bob := s.createUser("Bob")
		gid := s.createGroup(alice)
		s.join(bob, gid)

		rr := testutil.DoRequest(s.router,
			testutil.NewJSONRequest(s.T(), http.MethodPost, fmt.Sprintf("/groups/%s/admin", gid),
				PromoteRequest{AdminID: uint32(bob), UserID: uint32(bob)}))

		testutil.AssertStatusAndError(s.T(), rr, http.StatusForbidden, string(dErrors.CodeForbidden))
	})

	s.Run("delete by plain member yields 403 not_admin", func() {
		alice := s.createUser("Alice")
		bob := s.createUser("Bob")
		gid := s.createGroup(alice)
		s.join(bob, gid)

		rr := testutil.DoRequest(s.router,
			testutil.NewJSONRequest(s.T(), http.MethodDelete, "/groups/"+gid.String(), AdminActionRequest{AdminID: uint32(bob)}))

		testutil.AssertStatusAndError(s.T(), rr, http.StatusForbidden, string(dErrors.CodeNotAdmin))
	})
}

// TestSecretSantaFlow walks the example exchange over the wire: Alice
// creates the group, Bob and Carol join, Alice runs the pairing, and
// every member can look up their recipient.
func (s *HandlerSuite) TestSecretSantaFlow() {
	alice := s.createUser("Alice")
	bob := s.createUser("Bob")
	carol := s.createUser("Carol")
	gid := s.createGroup(alice)
	s.join(bob, gid)
	s.join(carol, gid)

	santaPath := fmt.Sprintf("/groups/%s/secret-santa", gid)

	s.Run("recipient is unassigned before the run", func() {
		rr := testutil.DoRequest(s.router,
			testutil.NewRequest(s.T(), http.MethodGet, santaPath+"?user_id="+bob.String()))

		testutil.AssertStatus(s.T(), rr, http.StatusOK)
		resp := testutil.UnmarshalResponse[RecipientResponse](s.T(), rr)
		s.False(resp.Assigned)
		s.Nil(resp.RecipientID)
	})

	s.Run("non-admin run yields 403 not_admin", func() {
		rr := testutil.DoRequest(s.router,
			testutil.NewJSONRequest(s.T(), http.MethodPost, santaPath, AdminActionRequest{AdminID: uint32(bob)}))

		testutil.AssertStatusAndError(s.T(), rr, http.StatusForbidden, string(dErrors.CodeNotAdmin))
	})

	s.Run("admin run closes the group and assigns everyone", func() {
		rr := testutil.DoRequest(s.router,
			testutil.NewJSONRequest(s.T(), http.MethodPost, santaPath, AdminActionRequest{AdminID: uint32(alice)}))

		testutil.AssertStatus(s.T(), rr, http.StatusOK)
		resp := testutil.UnmarshalResponse[RunSecretSantaResponse](s.T(), rr)
		s.True(resp.Closed)
		s.Equal(3, resp.Assigned)
	})

	s.Run("each member sees a recipient that is not themselves", func() {
		seen := make(map[id.UserID]bool)
		for _, u := range []id.UserID{alice, bob, carol} {
			rr := testutil.DoRequest(s.router,
				testutil.NewRequest(s.T(), http.MethodGet, santaPath+"?user_id="+u.String()))

			testutil.AssertStatus(s.T(), rr, http.StatusOK)
			resp := testutil.UnmarshalResponse[RecipientResponse](s.T(), rr)
			s.Require().True(resp.Assigned)
			s.Require().NotNil(resp.RecipientID)
			s.NotEqual(u, *resp.RecipientID)
			seen[*resp.RecipientID] = true
		}
		s.Len(seen, 3)
	})

	s.Run("second run yields 409 group_closed", func() {
		rr := testutil.DoRequest(s.router,
			testutil.NewJSONRequest(s.T(), http.MethodPost, santaPath, AdminActionRequest{AdminID: uint32(alice)}))

		testutil.AssertStatusAndError(s.T(), rr, http.StatusConflict, string(dErrors.CodeGroupClosed))
	})

	s.Run("join after closing yields 409 group_closed", func() {
		dave := s.createUser("Dave")

		rr := testutil.DoRequest(s.router,
			testutil.NewJSONRequest(s.T(), http.MethodPost, fmt.Sprintf("/groups/%s/join", gid), ActorRequest{UserID: uint32(dave)}))

		testutil.AssertStatusAndError(s.T(), rr, http.StatusConflict, string(dErrors.CodeGroupClosed))
	})

	s.Run("outsider recipient lookup yields 404 not_member", func() {
		dave := s.createUser("Dave")

		rr := testutil.DoRequest(s.router,
			testutil.NewRequest(s.T(), http.MethodGet, santaPath+"?user_id="+dave.String()))

		testutil.AssertStatusAndError(s.T(), rr, http.StatusNotFound, string(dErrors.CodeNotMember))
	})
}
