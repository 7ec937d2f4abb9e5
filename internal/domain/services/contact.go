package services

import (
	"regexp"
	"strings"
	"unicode"
)

// Contact is the structured interpretation of one free-text contact field.
// Role and Phone are empty when the field did not carry them.
type Contact struct {
	Name  string
	Role  string
	Phone string
}

var (
	// "Name (Role) -phone": leading alphabetic name, parenthesized role,
	// optional hyphen and trailing phone text.
	reNameRolePhone = regexp.MustCompile(`^([A-Za-z][^()]*?)\s*\(([^)]+)\)\s*-?\s*(.*)`)
	// "phone (inside)": leading phone-like segment, one parenthesized group
	// holding the name and optionally a role.
	rePhoneInside = regexp.MustCompile(`^([+\d][^()]*?)\s*\(([^)]+)\)`)
)

// ParseContact extracts a person's name, role and phone number from the
// contact field of one row. The two patterns decide which side of the
// parentheses carries the phone number; the first matching pattern wins and
// no content plausibility check is applied beyond requiring at least one
// letter inside the parentheses for the phone-first form. Returns nil when
// the field is blank or matches neither pattern.
func ParseContact(raw string) *Contact {
	value := strings.TrimSpace(raw)
	if value == "" {
		return nil
	}

	if m := reNameRolePhone.FindStringSubmatch(value); m != nil {
		return &Contact{
			Name:  strings.TrimSpace(m[1]),
			Role:  strings.TrimSpace(m[2]),
			Phone: strings.TrimSpace(m[3]),
		}
	}

	if m := rePhoneInside.FindStringSubmatch(value); m != nil {
		inside := strings.TrimSpace(m[2])
		if containsLetter(inside) {
			name, role := splitNameRole(inside)
			return &Contact{
				Name:  name,
				Role:  role,
				Phone: strings.TrimSpace(m[1]),
			}
		}
	}

	return nil
}

// splitNameRole splits text like "Oleg Leonov-CEO-designate" or
// "Tan Wee, Compliance" into name and role. A hyphen takes precedence over a
// comma; with neither separator the whole text is the name.
func splitNameRole(text string) (name, role string) {
	if before, after, ok := strings.Cut(text, "-"); ok {
		return strings.TrimSpace(before), strings.TrimSpace(after)
	}
	if before, after, ok := strings.Cut(text, ","); ok {
		return strings.TrimSpace(before), strings.TrimSpace(after)
	}
	return strings.TrimSpace(text), ""
}

func containsLetter(s string) bool {
	for _, r := range s {
		if unicode.IsLetter(r) {
			return true
		}
	}
	return false
}
