package servicedef

import "github.com/leapstack-labs/servicedef/pkg/token"

// validName reports whether name satisfies the identifier grammar: an ASCII
// letter followed by any number of letters, digits, or underscores.
func validName(name string) bool {
	if name == "" {
		return false
	}
	for i := 0; i < len(name); i++ {
		c := name[i]
		switch {
		case c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z':
		case c == '_' || c >= '0' && c <= '9':
			if i == 0 {
				return false
			}
		default:
			return false
		}
	}
	return true
}

// validateName checks one identifier against the name grammar. Returns nil
// when the name is valid.
func validateName(name string, pos token.Position) *ValidationError {
	if validName(name) {
		return nil
	}
	return newError(ErrInvalidName, pos, "invalid name %q", name)
}

// namedItem pairs a declared name with its source position for duplicate
// detection.
type namedItem struct {
	name string
	pos  token.Position
}

// duplicateNames returns one error per item beyond the first sharing a name.
// Matching is exact and case-sensitive; errors follow input order and each
// carries the later occurrence's position. The kind label names the scope in
// the error message, e.g. "field" or "service member".
func duplicateNames(kind string, items []namedItem) []*ValidationError {
	var errs []*ValidationError
	seen := make(map[string]bool, len(items))
	for _, it := range items {
		if seen[it.name] {
			errs = append(errs, newError(ErrDuplicateName, it.pos, "duplicate %s name %q", kind, it.name))
			continue
		}
		seen[it.name] = true
	}
	return errs
}
