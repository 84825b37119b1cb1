// Package domain provides typed identifiers shared across the exchange
// modules. Typed IDs prevent cross-type assignment at compile time: a
// UserID can never be passed where a GroupID is expected.
package domain

import (
	"strconv"

	dErrors "santa/pkg/domain-errors"
)

// UserID identifies a user. IDs are allocated monotonically starting at
// 0 and are never reused, even after the user is deleted.
type UserID uint32

// GroupID identifies a group, with the same allocation rules as UserID.
type GroupID uint32

// ParseUserID parses a decimal user ID as received at a trust boundary
// (route param, query param, CLI argument).
func ParseUserID(s string) (UserID, error) {
	n, err := parseID(s, "user id")
	return UserID(n), err
}

// ParseGroupID parses a decimal group ID.
func ParseGroupID(s string) (GroupID, error) {
	n, err := parseID(s, "group id")
	return GroupID(n), err
}

func parseID(s, what string) (uint32, error) {
	if s == "" {
		return 0, dErrors.New(dErrors.CodeInvalidInput, what+" is required")
	}
	n, err := strconv.ParseUint(s, 10, 32)
	if err != nil {
		return 0, dErrors.Wrap(err, dErrors.CodeInvalidInput, "invalid "+what)
	}
	return uint32(n), nil
}

func (u UserID) String() string {
	return strconv.FormatUint(uint64(u), 10)
}

func (g GroupID) String() string {
	return strconv.FormatUint(uint64(g), 10)
}
