package service

import (
	id "santa/pkg/domain"
	dErrors "santa/pkg/domain-errors"
)

// buildGroup creates n users, a group admined by the first, and joins
// the rest. Returns the member ids in creation order and the group id.
func (s *ServiceSuite) buildGroup(n int) ([]id.UserID, id.GroupID) {
	s.Require().Positive(n)

	users := make([]id.UserID, 0, n)
	for i := 0; i < n; i++ {
		users = append(users, s.mustUser("member"))
	}
	gid := s.mustGroup(users[0])
	for _, u := range users[1:] {
		s.mustJoin(u, gid)
	}
	return users, gid
}

// recipients maps every member of the group to their assigned
// recipient, failing the test on any unassigned member.
func (s *ServiceSuite) recipients(users []id.UserID, gid id.GroupID) map[id.UserID]id.UserID {
	out := make(map[id.UserID]id.UserID, len(users))
	for _, u := range users {
		r, err := s.svc.GetRecipient(s.ctx, u, gid)
		s.Require().NoError(err)
		s.Require().NotNil(r, "member %d has no recipient", u)
		out[u] = *r
	}
	return out
}

func (s *ServiceSuite) TestRunSecretSanta() {
	s.Run("closes the group", func() {
		users, gid := s.buildGroup(3)

		assigned, err := s.svc.RunSecretSanta(s.ctx, users[0], gid)
		s.Require().NoError(err)
		s.Equal(3, assigned)

		group, err := s.svc.GetGroup(s.ctx, gid)
		s.Require().NoError(err)
		s.True(group.Closed)
	})

	s.Run("non-member yields not_member", func() {
		_, gid := s.buildGroup(1)
		outsider := s.mustUser("outsider")

		_, err := s.svc.RunSecretSanta(s.ctx, outsider, gid)
		s.True(dErrors.HasCode(err, dErrors.CodeNotMember))
	})

	s.Run("plain member yields not_admin", func() {
		users, gid := s.buildGroup(2)

		_, err := s.svc.RunSecretSanta(s.ctx, users[1], gid)
		s.True(dErrors.HasCode(err, dErrors.CodeNotAdmin))
	})

	s.Run("second run is rejected", func() {
		users, gid := s.buildGroup(2)

		_, err := s.svc.RunSecretSanta(s.ctx, users[0], gid)
		s.Require().NoError(err)

		_, err = s.svc.RunSecretSanta(s.ctx, users[0], gid)
		s.True(dErrors.HasCode(err, dErrors.CodeGroupClosed))

		// Assignments survive the rejected re-run.
		first := s.recipients(users, gid)
		s.Len(first, 2)
	})

	s.Run("single member self-pairs", func() {
		users, gid := s.buildGroup(1)

		assigned, err := s.svc.RunSecretSanta(s.ctx, users[0], gid)
		s.Require().NoError(err)
		s.Equal(1, assigned)

		r, err := s.svc.GetRecipient(s.ctx, users[0], gid)
		s.Require().NoError(err)
		s.Require().NotNil(r)
		s.Equal(users[0], *r)
	})

	s.Run("two members swap", func() {
		users, gid := s.buildGroup(2)

		_, err := s.svc.RunSecretSanta(s.ctx, users[0], gid)
		s.Require().NoError(err)

		got := s.recipients(users, gid)
		s.Equal(users[1], got[users[0]])
		s.Equal(users[0], got[users[1]])
	})

	s.Run("assignment is a single-cycle derangement", func() {
		users, gid := s.buildGroup(7)

		_, err := s.svc.RunSecretSanta(s.ctx, users[0], gid)
		s.Require().NoError(err)

		got := s.recipients(users, gid)

		// Permutation: every member gives once and receives once.
		seen := make(map[id.UserID]bool, len(users))
		for giver, recipient := range got {
			s.NotEqual(giver, recipient, "member %d drew themselves", giver)
			s.False(seen[recipient], "member %d drawn twice", recipient)
			seen[recipient] = true
		}
		s.Len(seen, len(users))

		// Single cycle: walking giver->recipient visits everyone
		// before returning to the start.
		visited := 0
		for at := users[0]; ; {
			visited++
			at = got[at]
			if at == users[0] {
				break
			}
			s.Require().LessOrEqual(visited, len(users), "assignment contains a short cycle")
		}
		s.Equal(len(users), visited)
	})

	s.Run("members drawn in ascending id order receive their predecessor", func() {
		users, gid := s.buildGroup(4)

		_, err := s.svc.RunSecretSanta(s.ctx, users[0], gid)
		s.Require().NoError(err)

		got := s.recipients(users, gid)
		// buildGroup allocates ids in ascending order, so users is
		// already the enumeration order.
		s.Equal(users[len(users)-1], got[users[0]])
		for i := 1; i < len(users); i++ {
			s.Equal(users[i-1], got[users[i]])
		}
	})
}

func (s *ServiceSuite) TestGetRecipient() {
	s.Run("nil while the group is open", func() {
		users, gid := s.buildGroup(2)

		r, err := s.svc.GetRecipient(s.ctx, users[1], gid)
		s.Require().NoError(err)
		s.Nil(r)
	})

	s.Run("non-member yields not_member", func() {
		_, gid := s.buildGroup(1)
		outsider := s.mustUser("outsider")

		_, err := s.svc.GetRecipient(s.ctx, outsider, gid)
		s.True(dErrors.HasCode(err, dErrors.CodeNotMember))
	})
}

// TestClosedGroupFreeze verifies that a closed group rejects every
// mutation of its membership set and roles.
func (s *ServiceSuite) TestClosedGroupFreeze() {
	users, gid := s.buildGroup(3)
	admin, member := users[0], users[1]

	s.Require().NoError(s.svc.PromoteToAdmin(s.ctx, admin, users[2], gid))
	_, err := s.svc.RunSecretSanta(s.ctx, admin, gid)
	s.Require().NoError(err)

	outsider := s.mustUser("outsider")

	_, err = s.svc.JoinGroup(s.ctx, outsider, gid)
	s.True(dErrors.HasCode(err, dErrors.CodeGroupClosed), "join")

	err = s.svc.QuitGroup(s.ctx, member, gid)
	s.True(dErrors.HasCode(err, dErrors.CodeGroupClosed), "quit")

	err = s.svc.PromoteToAdmin(s.ctx, admin, member, gid)
	s.True(dErrors.HasCode(err, dErrors.CodeGroupClosed), "promote")

	err = s.svc.DemoteFromAdmin(s.ctx, admin, gid)
	s.True(dErrors.HasCode(err, dErrors.CodeGroupClosed), "demote")

	// Deleting the whole group stays allowed: it removes the closed
	// memberships rather than mutating them.
	s.Require().NoError(s.svc.DeleteGroup(s.ctx, admin, gid))
	_, err = s.svc.GetGroup(s.ctx, gid)
	s.True(dErrors.HasCode(err, dErrors.CodeNotFound))
}

// TestExchangeLifecycle walks one full exchange end to end.
func (s *ServiceSuite) TestExchangeLifecycle() {
	alice := s.mustUser("Alice")
	bob := s.mustUser("Bob")
	carol := s.mustUser("Carol")

	gid := s.mustGroup(alice)
	s.mustJoin(bob, gid)
	s.mustJoin(carol, gid)

	// Carol changes her mind, then rejoins.
	s.Require().NoError(s.svc.QuitGroup(s.ctx, carol, gid))
	s.mustJoin(carol, gid)

	s.Require().NoError(s.svc.PromoteToAdmin(s.ctx, alice, bob, gid))

	members, err := s.svc.ListMembers(s.ctx, gid)
	s.Require().NoError(err)
	s.Len(members, 3)

	admins, err := s.svc.ListAdmins(s.ctx, gid)
	s.Require().NoError(err)
	s.Len(admins, 2)

	assigned, err := s.svc.RunSecretSanta(s.ctx, bob, gid)
	s.Require().NoError(err)
	s.Equal(3, assigned)

	got := s.recipients([]id.UserID{alice, bob, carol}, gid)
	s.Equal(carol, got[alice])
	s.Equal(alice, got[bob])
	s.Equal(bob, got[carol])

	s.assertInvariants()
}
