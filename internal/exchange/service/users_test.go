package service

import (
	"santa/internal/exchange/rules"
	id "santa/pkg/domain"
	dErrors "santa/pkg/domain-errors"
)

func (s *ServiceSuite) TestDeleteUser() {
	s.Run("unknown user yields not_found", func() {
		_, err := s.svc.DeleteUser(s.ctx, 99)
		s.True(dErrors.HasCode(err, dErrors.CodeNotFound))
	})

	s.Run("user with no memberships is removed", func() {
		alice := s.mustUser("Alice")

		res, err := s.svc.DeleteUser(s.ctx, alice)
		s.Require().NoError(err)
		s.True(res.Deleted)
		s.Empty(res.BlockedOpen)
		s.Empty(res.Closed)

		_, err = s.svc.GetUser(s.ctx, alice)
		s.True(dErrors.HasCode(err, dErrors.CodeNotFound))
	})

	s.Run("plain memberships are vacated and the user removed", func() {
		alice := s.mustUser("Alice")
		bob := s.mustUser("Bob")
		g1 := s.mustGroup(alice)
		g2 := s.mustGroup(alice)
		s.mustJoin(bob, g1)
		s.mustJoin(bob, g2)

		res, err := s.svc.DeleteUser(s.ctx, bob)
		s.Require().NoError(err)
		s.True(res.Deleted)
		s.False(rules.MembershipExists(s.store, bob, g1))
		s.False(rules.MembershipExists(s.store, bob, g2))
		s.assertInvariants()
	})

	s.Run("last admin of an open group blocks deletion", func() {
		alice := s.mustUser("Alice")
		bob := s.mustUser("Bob")
		gid := s.mustGroup(alice)
		s.mustJoin(bob, gid)

		res, err := s.svc.DeleteUser(s.ctx, alice)
		s.Require().NoError(err)
		s.False(res.Deleted)
		s.Equal([]id.GroupID{gid}, res.BlockedOpen)
		s.Empty(res.Closed)

		_, err = s.svc.GetUser(s.ctx, alice)
		s.Require().NoError(err, "user record survives")
		s.True(rules.IsAdmin(s.store, alice, gid), "blocking membership survives")
		s.assertInvariants()
	})

	s.Run("closed-group membership pins the user", func() {
		alice := s.mustUser("Alice")
		gid := s.mustGroup(alice)
		_, err := s.svc.RunSecretSanta(s.ctx, alice, gid)
		s.Require().NoError(err)

		res, err := s.svc.DeleteUser(s.ctx, alice)
		s.Require().NoError(err)
		s.False(res.Deleted)
		s.Empty(res.BlockedOpen)
		s.Equal([]id.GroupID{gid}, res.Closed)
		s.True(rules.MembershipExists(s.store, alice, gid))
	})

	s.Run("partial application vacates what it can", func() {
		// Alice is sole admin of one group and a plain member of
		// another. Deletion removes the plain membership, keeps the
		// admin one, and keeps the user record.
		alice := s.mustUser("Alice")
		bob := s.mustUser("Bob")
		owned := s.mustGroup(alice)
		s.mustJoin(bob, owned)
		other := s.mustGroup(bob)
		s.mustJoin(alice, other)

		res, err := s.svc.DeleteUser(s.ctx, alice)
		s.Require().NoError(err)
		s.False(res.Deleted)
		s.Equal([]id.GroupID{owned}, res.BlockedOpen)

		s.True(rules.IsAdmin(s.store, alice, owned))
		s.False(rules.MembershipExists(s.store, alice, other), "plain membership vacated anyway")
		s.assertInvariants()
	})

	s.Run("retry succeeds once the blocker is gone", func() {
		alice := s.mustUser("Alice")
		bob := s.mustUser("Bob")
		gid := s.mustGroup(alice)
		s.mustJoin(bob, gid)

		res, err := s.svc.DeleteUser(s.ctx, alice)
		s.Require().NoError(err)
		s.False(res.Deleted)

		s.Require().NoError(s.svc.PromoteToAdmin(s.ctx, alice, bob, gid))

		res, err = s.svc.DeleteUser(s.ctx, alice)
		s.Require().NoError(err)
		s.True(res.Deleted)
		s.assertInvariants()
	})
}
