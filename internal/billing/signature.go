// AngelaMos | 2026
// signature.go

package billing

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"strings"
)

// Sign returns the hex HMAC-SHA256 of body under secret, the format
// Razorpay sends in X-Razorpay-Signature.
func Sign(body []byte, secret string) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write(body)
	return hex.EncodeToString(mac.Sum(nil))
}

func VerifySignature(body []byte, signature, secret string) bool {
	if secret == "" || signature == "" {
		return false
	}
	expected := Sign(body, secret)
	return hmac.Equal(
		[]byte(strings.ToLower(strings.TrimSpace(signature))),
		[]byte(expected),
	)
}
