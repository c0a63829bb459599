package cache

import (
	"fmt"

	"github.com/bytedance/sonic"
	"github.com/cespare/xxhash/v2"
)

// Fingerprint hashes an arbitrary snapshot value into a stable cache-key
// component. Two snapshots with the same content fingerprint the same; any
// edit to a game or roster row changes the key and strands the old entry
// until its TTL runs out.
func Fingerprint(v any) (string, error) {
	raw, err := sonic.Marshal(v)
	if err != nil {
		return "", fmt.Errorf("marshal snapshot for fingerprint: %w", err)
	}
	return fmt.Sprintf("%016x", xxhash.Sum64(raw)), nil
}

// Key joins a namespace and fingerprint into a store key.
func Key(namespace, fingerprint string) string {
	if fingerprint == "" {
		return ""
	}
	return namespace + ":" + fingerprint
}
