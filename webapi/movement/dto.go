package movement

// AppendRequest is the request body for writing one audit entry directly.
// The type must be one of the known movement types and the description is
// mandatory; everything else is optional context.
type AppendRequest struct {
	Type        string            `json:"type" validate:"required,max=32"`
	Description string            `json:"description" validate:"required,max=512"`
	Metadata    map[string]string `json:"metadata,omitempty" validate:"omitempty,max=16"`
}
