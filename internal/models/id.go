package models

import "github.com/google/uuid"

// ValidID reports whether s is a canonical hyphenated lowercase UUID.
// Every entry path checks identity references with this predicate, so an
// id form accepted by one path is accepted by all of them. Non-canonical
// encodings (urn prefix, braces, 32 hex digits without hyphens, uppercase)
// are rejected.
func ValidID(s string) bool {
	u, err := uuid.Parse(s)
	return err == nil && u.String() == s
}
