package utils

import (
	"strings"

	"github.com/google/uuid"
)

// NewID returns a prefixed short id like "guest_a1b2c3d4". The admin
// front-end treats the prefix as a human hint only; uniqueness comes from
// the uuid fragment.
func NewID(prefix string) string {
	raw := strings.ReplaceAll(uuid.NewString(), "-", "")
	if prefix == "" {
		return raw[:8]
	}
	return prefix + "_" + raw[:8]
}
