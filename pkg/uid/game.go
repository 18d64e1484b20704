package uid

import (
	"crypto/rand"
	"encoding/hex"
)

// GenerateGameID returns a random 32 character hex identifier for a game
// session.
func GenerateGameID() string {
	bytes := make([]byte, 16)
	if _, err := rand.Read(bytes); err != nil {
		panic("uid: crypto/rand failed: " + err.Error())
	}
	return hex.EncodeToString(bytes)
}
