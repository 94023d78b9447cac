package visitor

import (
	"crypto/sha256"
	"encoding/hex"
	"net/netip"
	"strings"
)

// Identity carries the raw material a visitor id can be derived from.
// Username wins when present, then IP, then the fingerprint components.
type Identity struct {
	// Username is the authenticated identity hint, when the host knows one.
	Username string

	// IP is the client address as reported by the edge.
	IP string

	// Components are opaque device characteristics (user agent, locale,
	// screen resolution, timezone) hashed into a composite fingerprint
	// when no stronger signal is available.
	Components []string
}

// FromIP derives a visitor id from a client address. The address is
// canonicalized first so textual variants of the same IP map to the same
// id, then separators become hyphens: "203.0.113.5" -> "203-0-113-5".
// Unparseable input returns an empty string.
func FromIP(ip string) string {
	addr, err := netip.ParseAddr(strings.TrimSpace(ip))
	if err != nil {
		return ""
	}
	canonical := addr.String()
	canonical = strings.ReplaceAll(canonical, ".", "-")
	canonical = strings.ReplaceAll(canonical, ":", "-")
	return canonical
}

// Fingerprint hashes the non-empty components into an opaque composite id:
// sha256 over the components joined by "|", first 16 bytes as a
// 32-character hex string. Identical inputs always produce identical ids.
func Fingerprint(components ...string) string {
	filtered := make([]string, 0, len(components))
	for _, c := range components {
		if c != "" {
			filtered = append(filtered, c)
		}
	}

	hash := sha256.Sum256([]byte(strings.Join(filtered, "|")))
	return hex.EncodeToString(hash[:16])
}

// derive picks the strongest anonymous signal available.
func (id Identity) derive() string {
	if v := FromIP(id.IP); v != "" {
		return v
	}
	return Fingerprint(id.Components...)
}
