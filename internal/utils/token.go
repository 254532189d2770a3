package utils

import (
	"strings"

	"github.com/google/uuid"
)

// NewQRCode returns a fresh opaque token embedded in the QR code handed to a
// customer after booking.  The token doubles as the verification key, so it
// must be unique per booking; a random UUID with the dashes stripped keeps it
// short enough to encode densely.
func NewQRCode() string {
	return strings.ReplaceAll(uuid.NewString(), "-", "")
}
