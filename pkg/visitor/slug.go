package visitor

import "strings"

// MaxSlugLength caps identity-derived visitor ids.
const MaxSlugLength = 50

// UnknownUser is the sentinel id used when slugifying an identity hint
// leaves nothing behind.
const UnknownUser = "unknown-user"

// Slugify derives a deterministic visitor id from a human-readable identity
// hint: lowercase, whitespace to hyphens, everything outside [a-z0-9-]
// stripped, repeated hyphens collapsed, trimmed, capped at MaxSlugLength.
// An empty result falls back to UnknownUser.
func Slugify(hint string) string {
	hint = strings.ToLower(strings.TrimSpace(hint))

	var b strings.Builder
	b.Grow(len(hint))

	lastWasHyphen := true // swallow leading hyphens
	for _, r := range hint {
		switch {
		case (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9'):
			b.WriteRune(r)
			lastWasHyphen = false
		case r == ' ' || r == '\t' || r == '\n' || r == '\r' || r == '-' || r == '_':
			if !lastWasHyphen {
				b.WriteByte('-')
				lastWasHyphen = true
			}
		}
		// Everything else is stripped, not replaced; "jo@hn" stays "john".
	}

	slug := strings.TrimRight(b.String(), "-")
	if len(slug) > MaxSlugLength {
		slug = strings.TrimRight(slug[:MaxSlugLength], "-")
	}
	if slug == "" {
		return UnknownUser
	}
	return slug
}
