package dto

type UserProfile struct {
	Username     string   `json:"username"`
	Email        string   `json:"email,omitempty"`
	Roles        []string `json:"roles"`
	TotalEntries int64    `json:"total_entries"`
	MemberSince  string   `json:"member_since,omitempty"`
}

// UpdateProfileRequest is a partial update: zero-valued fields are left
// untouched. Email is a pointer so an explicit empty string clears it.
type UpdateProfileRequest struct {
	Username string  `json:"username,omitempty"`
	Password string  `json:"password,omitempty"`
	Email    *string `json:"email,omitempty"`
}
