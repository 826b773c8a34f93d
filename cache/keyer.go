package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strconv"
	"strings"

	"github.com/cespare/xxhash/v2"
)

// Separator joins fingerprint parts before hashing. Parts must not contain it.
const Separator = "\x00"

// KeyPrefix prefixes every fingerprint produced by this package.
const KeyPrefix = "fmt:"

// Keyer generates deterministic cache keys from formatter options.
//
// Contract:
// - Determinism: same parts in the same order must produce the same key.
// - Concurrency: implementations must be safe for concurrent use.
type Keyer interface {
	// Key generates a cache key from an ordered option tuple.
	Key(parts ...string) (string, error)
}

// DefaultKeyer generates SHA-256 based cache keys.
type DefaultKeyer struct{}

// NewDefaultKeyer creates a new default keyer.
func NewDefaultKeyer() *DefaultKeyer {
	return &DefaultKeyer{}
}

// Key generates a deterministic cache key. See Fingerprint.
func (k *DefaultKeyer) Key(parts ...string) (string, error) {
	return Fingerprint(parts...)
}

// Fingerprint hashes the ordered parts joined by Separator.
// Format: fmt:<hex SHA-256>
func Fingerprint(parts ...string) (string, error) {
	if err := checkParts(parts); err != nil {
		return "", err
	}

	hash := sha256.Sum256([]byte(strings.Join(parts, Separator)))
	return KeyPrefix + hex.EncodeToString(hash[:]), nil
}

// FastKeyPrefix prefixes keys produced by FastKeyer.
const FastKeyPrefix = "fmtx:"

// FastKeyer generates 64-bit xxhash keys. Collisions are possible in
// principle; use it only where the option space is small and trusted.
type FastKeyer struct{}

// Key hashes the ordered parts joined by Separator.
// Format: fmtx:<16 hex digits>
func (FastKeyer) Key(parts ...string) (string, error) {
	if err := checkParts(parts); err != nil {
		return "", err
	}

	d := xxhash.New()
	for i, p := range parts {
		if i > 0 {
			_, _ = d.WriteString(Separator)
		}
		_, _ = d.WriteString(p)
	}
	sum := strconv.FormatUint(d.Sum64(), 16)
	return FastKeyPrefix + strings.Repeat("0", 16-len(sum)) + sum, nil
}

func checkParts(parts []string) error {
	for i, p := range parts {
		if strings.Contains(p, Separator) {
			return fmt.Errorf("%w: part %d contains the separator", ErrInvalidKey, i)
		}
	}
	return nil
}

var (
	_ Keyer = (*DefaultKeyer)(nil)
	_ Keyer = FastKeyer{}
)
