package interpolate

import "regexp"

var tokenRe = regexp.MustCompile(`\{(\w+)\}`)

// Token is an occurrence of {identifier} in a format string.
type Token struct {
	// Name is the identifier between the braces.
	Name string
	// Start is the byte offset of the opening brace.
	Start int
	// End is the byte offset after the closing brace.
	End int
}

// Tokens returns all tokens in format, ordered by their position.
func Tokens(format string) []Token {
	matches := tokenRe.FindAllStringSubmatchIndex(format, -1)
	if len(matches) == 0 {
		return nil
	}

	res := make([]Token, 0, len(matches))
	for _, m := range matches {
		res = append(res, Token{
			Name:  format[m[2]:m[3]],
			Start: m[0],
			End:   m[1],
		})
	}

	return res
}

// Identifiers returns the distinct identifiers referenced in format in the
// order of their first occurrence.
func Identifiers(format string) []string {
	var res []string
	seen := map[string]struct{}{}

	for _, tok := range Tokens(format) {
		if _, exists := seen[tok.Name]; exists {
			continue
		}

		seen[tok.Name] = struct{}{}
		res = append(res, tok.Name)
	}

	return res
}

// IsIdentifier returns true if s can be referenced by a token.
func IsIdentifier(s string) bool {
	if s == "" {
		return false
	}

	for _, r := range s {
		if !isWordChar(r) {
			return false
		}
	}

	return true
}

func isWordChar(r rune) bool {
	return r == '_' ||
		(r >= 'a' && r <= 'z') ||
		(r >= 'A' && r <= 'Z') ||
		(r >= '0' && r <= '9')
}
