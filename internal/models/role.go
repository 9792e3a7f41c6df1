package models

import "fmt"

// Role is the closed set of account roles. Every switch over Role must
// handle all three values; there is no free-form role string anywhere
// above the storage layer.
type Role string

const (
	RoleAdmin   Role = "admin"
	RoleTeacher Role = "teacher"
	RoleStudent Role = "student"
)

// ParseRole converts a stored role string into a Role.
func ParseRole(s string) (Role, error) {
	switch Role(s) {
	case RoleAdmin, RoleTeacher, RoleStudent:
		return Role(s), nil
	}
	return "", fmt.Errorf("unknown role %q", s)
}

// Valid reports whether r is one of the three known roles.
func (r Role) Valid() bool {
	switch r {
	case RoleAdmin, RoleTeacher, RoleStudent:
		return true
	}
	return false
}

func (r Role) String() string {
	return string(r)
}

// Language is a UI language preference. The store keeps it per user;
// the view layer uses it to pick which side of the bilingual lesson
// fields to display.
type Language string

const (
	LangEnglish Language = "en"
	LangArabic  Language = "ar"

	// DefaultLanguage is applied when a user never chose a preference.
	DefaultLanguage = LangArabic
)

// ParseLanguage converts a stored language code into a Language.
func ParseLanguage(s string) (Language, error) {
	switch Language(s) {
	case LangEnglish, LangArabic:
		return Language(s), nil
	}
	return "", fmt.Errorf("unknown language %q", s)
}

// Valid reports whether l is a known language code.
func (l Language) Valid() bool {
	return l == LangEnglish || l == LangArabic
}

func (l Language) String() string {
	return string(l)
}
