package movement

import (
	"encoding/base64"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// ErrInvalidCursor is returned when a pagination cursor cannot be decoded.
var ErrInvalidCursor = errors.New("invalid pagination cursor")

// Cursor is a keyset-pagination position in the audit trail: the timestamp
// and id of the last movement the caller has seen. The next page contains
// strictly older entries, so paging never duplicates or skips records even
// when multiple movements share a timestamp.
type Cursor struct {
	Timestamp time.Time
	LastID    uuid.UUID
}

// CursorFor returns the cursor positioned at the given movement.
func CursorFor(m *Movement) Cursor {
	return Cursor{Timestamp: m.Timestamp, LastID: m.ID}
}

// Encode renders the cursor as an opaque URL-safe token.
func (c Cursor) Encode() string {
	raw := fmt.Sprintf("%s|%s", c.Timestamp.UTC().Format(time.RFC3339Nano), c.LastID)
	return base64.RawURLEncoding.EncodeToString([]byte(raw))
}

// DecodeCursor parses a token produced by Encode. An empty token yields a
// nil cursor, meaning "start from the newest entry".
func DecodeCursor(token string) (*Cursor, error) {
	if token == "" {
		return nil, nil
	}
	raw, err := base64.RawURLEncoding.DecodeString(token)
	if err != nil {
		return nil, ErrInvalidCursor
	}
	parts := strings.SplitN(string(raw), "|", 2)
	if len(parts) != 2 {
		return nil, ErrInvalidCursor
	}
	ts, err := time.Parse(time.RFC3339Nano, parts[0])
	if err != nil {
		return nil, ErrInvalidCursor
	}
	id, err := uuid.Parse(parts[1])
	if err != nil {
		return nil, ErrInvalidCursor
	}
	return &Cursor{Timestamp: ts, LastID: id}, nil
}
