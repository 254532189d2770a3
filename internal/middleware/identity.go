package middleware

// identity.go holds helpers shared across middleware files.  currentUserID
// resolves the authenticated account for rate-limit key construction; guests
// fall back to a fixed marker so anonymous traffic shares one bucket per IP.

import (
	"strconv"

	"github.com/labstack/echo/v4"
)

// currentUserID returns the user_id stored in context by JWTAuth as a string,
// or "anon" when the request is unauthenticated.  JWT number claims decode as
// float64, so that case is handled alongside the direct types.
func currentUserID(c echo.Context) string {
	switch v := c.Get("user_id").(type) {
	case string:
		if v != "" {
			return v
		}
	case float64:
		if v > 0 {
			return strconv.FormatUint(uint64(v), 10)
		}
	case uint64:
		if v > 0 {
			return strconv.FormatUint(v, 10)
		}
	}
	return "anon"
}
