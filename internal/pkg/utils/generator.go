package utils

import (
	"strings"
	"telemed-service/internal/pkg/constvars"

	"github.com/google/uuid"
)

func GenerateRequestID() string {
	return constvars.REQUEST_ID_PREFIX + uuid.NewString()
}

// GenerateRoomID returns a collision-resistant consultation room identifier.
// uuid.NewString reads crypto/rand, so no timestamp component is needed.
func GenerateRoomID() string {
	return "room_" + strings.ReplaceAll(uuid.NewString(), "-", "")
}
