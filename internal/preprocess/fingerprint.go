package preprocess

import (
	"encoding/hex"

	"golang.org/x/crypto/blake2b"
)

// Fingerprint returns a short, stable identifier for a player source,
// suitable for log correlation and server responses that want to name
// *which* player failed without echoing tens of thousands of characters
// of minified JS.
func Fingerprint(source string) string {
	sum := blake2b.Sum256([]byte(source))
	return hex.EncodeToString(sum[:8])
}
