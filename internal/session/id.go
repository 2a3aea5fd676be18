package session

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"strings"
	"time"

	"github.com/google/uuid"
)

const (
	idPrefix     = "session_"
	suffixLength = 9
	base36       = "0123456789abcdefghijklmnopqrstuvwxyz"
)

// IDGenerator creates a new session identifier.
type IDGenerator func(now time.Time) string

// ClientID mirrors the identifier the generated scripts create in the browser:
// millisecond timestamp plus a short base36 suffix.
func ClientID(now time.Time) string {
	var b strings.Builder
	for i := 0; i < suffixLength; i++ {
		n, err := rand.Int(rand.Reader, big.NewInt(int64(len(base36))))
		if err != nil {
			// crypto/rand does not fail on supported platforms
			panic(fmt.Sprintf("session: read random: %v", err))
		}
		b.WriteByte(base36[n.Int64()])
	}
	return fmt.Sprintf("%s%d_%s", idPrefix, now.UnixMilli(), b.String())
}

// ServerID is the server variant: second timestamp plus a server-issued random token.
func ServerID(now time.Time) string {
	token := strings.ReplaceAll(uuid.NewString(), "-", "")
	return fmt.Sprintf("%s%d_%s", idPrefix, now.Unix(), token[:12])
}
