package apperrors

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"time"
)

// NewRequestID generates a correlation id for one inbound request:
// "req_" + millisecond timestamp + short random suffix. Uniqueness is
// best-effort; the id exists for log correlation, not security.
func NewRequestID() string {
	buf := make([]byte, 3)
	if _, err := rand.Read(buf); err != nil {
		// degrade to a timestamp-only suffix; collisions are acceptable
		return fmt.Sprintf("req_%d_%06d", time.Now().UnixMilli(), time.Now().Nanosecond()%1000000)
	}

	return fmt.Sprintf("req_%d_%s", time.Now().UnixMilli(), hex.EncodeToString(buf))
}
