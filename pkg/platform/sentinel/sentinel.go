package sentinel

import "errors"

// Sentinel errors for store-level facts. The entity store returns these
// (optionally wrapped) so the service can translate them into domain
// errors with the right code for the operation at hand: a missing
// membership is ErrNotFound at the store but not_member at the API.
//
// For validation failures (bad input, rule violations), use
// pkg/domain-errors directly.
var (
	ErrNotFound = errors.New("not found")
	ErrConflict = errors.New("conflict")
)
