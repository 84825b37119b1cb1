package api

// User is the wire shape of a user.
type User struct {
	ID   uint32 `json:"id"`
	Name string `json:"name"`
}

// Group is the wire shape of a group in listings.
type Group struct {
	ID     uint32 `json:"id"`
	Closed bool   `json:"closed"`
}

// GroupDetail is the wire shape of GET /groups/{id}.
type GroupDetail struct {
	ID      uint32   `json:"id"`
	Closed  bool     `json:"closed"`
	Members []Member `json:"members"`
}

// Member is the wire shape of one membership.
type Member struct {
	UserID    uint32  `json:"user_id"`
	Role      string  `json:"role"`
	Recipient *uint32 `json:"recipient,omitempty"`
}

// Recipient is the wire shape of GET /groups/{id}/secret-santa.
type Recipient struct {
	Assigned    bool    `json:"assigned"`
	RecipientID *uint32 `json:"recipient_id,omitempty"`
}

// RunResult is the wire shape of a successful pairing run.
type RunResult struct {
	Closed   bool `json:"closed"`
	Assigned int  `json:"assigned"`
}

// DeleteBlocked is the 409 body of DELETE /users/{id}: the groups that
// kept the user alive.
type DeleteBlocked struct {
	Error            string   `json:"error"`
	ErrorDescription string   `json:"error_description"`
	BlockedGroups    []uint32 `json:"blocked_groups,omitempty"`
	ClosedGroups     []uint32 `json:"closed_groups,omitempty"`
}
