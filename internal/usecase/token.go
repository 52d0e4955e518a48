package usecase

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
)

// DeriveQuickSendToken computes the deterministic quick-send token for a
// quote. Same inputs always yield the same token, so no token table is
// needed; verification recomputes and compares.
func DeriveQuickSendToken(quoteID, quoteHash, secret string) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(quoteID))
	mac.Write([]byte("|"))
	mac.Write([]byte(quoteHash))
	return hex.EncodeToString(mac.Sum(nil))
}

// quickSendTokenMatches compares in constant time.
func quickSendTokenMatches(expected, provided string) bool {
	return hmac.Equal([]byte(expected), []byte(provided))
}
