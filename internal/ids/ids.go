package ids

import (
	"crypto/rand"
	"encoding/hex"
	"time"

	"github.com/google/uuid"
)

// New returns a fresh entity id.
func New() string {
	return uuid.NewString()
}

// Valid reports whether s looks like an entity id. Anything else can never match a row.
func Valid(s string) bool {
	_, err := uuid.Parse(s)
	return err == nil
}

// NewRequestID returns a 32 character hex id for request correlation.
func NewRequestID() string {
	b := make([]byte, 16)
	if _, err := rand.Read(b); err == nil {
		return hex.EncodeToString(b)
	}
	return time.Now().Format("20060102T150405.000000000")
}
