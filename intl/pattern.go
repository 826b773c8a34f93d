package intl

import (
	"fmt"
	"strings"

	"github.com/vjeantet/jodaTime"
)

// patternFields are the unquoted pattern letters a custom pattern may use.
const patternFields = "yMdEHhmsSaZz"

// layoutTokens are Go layout words that would be reinterpreted if they
// appeared as quoted literal text.
var layoutTokens = []string{"Jan", "Mon", "MST", "PM", "pm"}

// validatePattern rejects patterns whose translated Go layout would not mean
// what the pattern says: pattern letters with no Go equivalent, digits (Go
// reference values), and quoted literals containing Go layout words.
// Text inside single quotes is literal; '' is an escaped quote.
func validatePattern(pattern string) error {
	quoted := false
	var literal strings.Builder
	for i, r := range pattern {
		if r == '\'' {
			if quoted {
				if err := checkLiteral(literal.String()); err != nil {
					return err
				}
				literal.Reset()
			}
			quoted = !quoted
			continue
		}
		if r >= '0' && r <= '9' {
			return fmt.Errorf("digit %q at offset %d clashes with the Go layout", r, i)
		}
		if quoted {
			literal.WriteRune(r)
			continue
		}
		isLetter := (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
		if isLetter && !strings.ContainsRune(patternFields, r) {
			return fmt.Errorf("unsupported pattern field %q at offset %d", r, i)
		}
	}
	if quoted {
		return fmt.Errorf("unterminated quote in pattern %q", pattern)
	}
	return nil
}

func checkLiteral(text string) error {
	for _, tok := range layoutTokens {
		if strings.Contains(text, tok) {
			return fmt.Errorf("literal %q contains Go layout token %q", text, tok)
		}
	}
	return nil
}

// patternLayout translates an ICU/Joda pattern to a Go layout.
func patternLayout(pattern string) string {
	return jodaTime.GetLayout(pattern)
}
