// Package secrets resolves "!secret name" references against files
// mounted at /run/secrets, the convention used by container runtimes.
package secrets

import (
	"os"
	"path/filepath"
	"strings"
)

const dir = "/run/secrets"

// Prefix marks a config string for substitution with a secret value:
//
//	"!secret foo" -> contents of /run/secrets/foo
const Prefix = "!secret "

// CutPrefix is equivalent to [strings.CutPrefix](s, [Prefix]).
func CutPrefix(s string) (secret string, ok bool) {
	return strings.CutPrefix(s, Prefix)
}

// Read returns the value of the secret file /run/secrets/<secret>,
// trimmed of surrounding whitespace.
func Read(secret string) (string, error) {
	b, err := os.ReadFile(filepath.Join(dir, secret))
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(b)), nil
}

// MustRead returns the value of the secret file /run/secrets/<secret>,
// or fallback if the file cannot be read.
func MustRead(secret, fallback string) string {
	s, err := Read(secret)
	if err != nil {
		return fallback
	}
	return s
}
