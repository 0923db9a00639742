package rdf

import (
	"fmt"
	"net/url"
	"strings"
)

// Validate reports whether i is a syntactically plausible IRI for use as
// a TurtleParser's seed base or document URL. It accepts any IRI with a
// recognizable scheme, and any relative reference that doesn't merely
// look like an absolute IRI with its scheme missing. It is not a full
// RFC 3987 conformance check, just enough to reject garbage early
// instead of letting absolutise/resolveIRI silently misresolve it later.
func (i IRI) Validate() error {
	if i.Text == "" {
		return fmt.Errorf("empty IRI")
	}
	parsed, err := url.Parse(i.Text)
	if err != nil {
		return fmt.Errorf("invalid IRI syntax: %w", err)
	}
	if parsed.Scheme == "" {
		if err := validateSchemelessIRI(i.Text); err != nil {
			return err
		}
	} else if err := validateIRIScheme(parsed.Scheme); err != nil {
		return err
	}
	return validateIRIChars(i.Text)
}

// ValidateIRI validates text as an IRI reference; see IRI.Validate.
func ValidateIRI(text string) error {
	return IRI{Text: text}.Validate()
}

// validateSchemelessIRI checks a url.Parse result with no scheme: it
// must be a genuine relative reference, not an absolute IRI whose
// scheme prefix happens to confuse url.Parse.
func validateSchemelessIRI(text string) error {
	if strings.HasPrefix(text, "//") {
		return fmt.Errorf("relative IRI without scheme: %s", text)
	}
	if !strings.Contains(text, ":") || strings.HasPrefix(text, "/") ||
		strings.HasPrefix(text, "./") || strings.HasPrefix(text, "../") {
		return nil
	}
	scheme, _, _ := strings.Cut(text, ":")
	if err := validateIRIScheme(scheme); err != nil {
		return fmt.Errorf("IRI appears to be missing a scheme: %s", text)
	}
	return nil
}

func validateIRIScheme(scheme string) error {
	if scheme == "" {
		return fmt.Errorf("empty scheme in IRI")
	}
	first := scheme[0]
	if !((first >= 'a' && first <= 'z') || (first >= 'A' && first <= 'Z')) {
		return fmt.Errorf("scheme must start with a letter: %s", scheme)
	}
	for _, r := range scheme {
		if !((r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') ||
			(r >= '0' && r <= '9') || r == '+' || r == '-' || r == '.') {
			return fmt.Errorf("invalid character in scheme: %s", scheme)
		}
	}
	return nil
}

// validateIRIChars rejects raw control characters and the angle
// brackets that would collide with Turtle's own "<...>" IRI delimiters
// if they appeared unescaped inside the IRI text.
func validateIRIChars(text string) error {
	for i, r := range text {
		if r < 0x20 && r != '\t' && r != '\n' && r != '\r' {
			return fmt.Errorf("invalid control character at position %d in IRI: %s", i, text)
		}
		if r == '<' || r == '>' {
			return fmt.Errorf("invalid character %q at position %d in IRI (should be percent-encoded): %s", r, i, text)
		}
	}
	return nil
}
