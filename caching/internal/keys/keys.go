package keys

import "strings"

// Normalize lower-cases key so that keys differing only in letter case map to
// the same storage entry. A non-empty namespace is prepended as "<ns>:".
func Normalize(namespace, key string) string {
	k := strings.ToLower(key)
	if namespace == "" {
		return k
	}
	return strings.ToLower(namespace) + ":" + k
}

// NormalizeAll applies Normalize to every key, preserving order.
func NormalizeAll(namespace string, keys []string) []string {
	out := make([]string, len(keys))
	for i, k := range keys {
		out[i] = Normalize(namespace, k)
	}
	return out
}
