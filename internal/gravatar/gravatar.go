// Package gravatar builds avatar URLs from email addresses.
package gravatar

import (
	"crypto/md5"
	"encoding/hex"
	"fmt"
	"strings"
)

// URL returns the gravatar URL for an email: 200px, PG-rated, with the
// "mystery man" default when the address has no gravatar.
func URL(email string) string {
	normalized := strings.ToLower(strings.TrimSpace(email))
	sum := md5.Sum([]byte(normalized))
	return fmt.Sprintf("https://www.gravatar.com/avatar/%s?s=200&r=pg&d=mm", hex.EncodeToString(sum[:]))
}
