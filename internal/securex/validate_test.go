package securex

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateUsername(t *testing.T) {
	tests := []struct {
		name     string
		username string
		want     bool
	}{
		{"simple", "alice", true},
		{"with digits and underscore", "teacher_01", true},
		{"minimum length", "abc", true},
		{"maximum length", "a2345678901234567890", true},
		{"too short", "ab", false},
		{"too long", "a23456789012345678901", false},
		{"empty", "", false},
		{"space", "bad name", false},
		{"punctuation", "alice!", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ValidateUsername(tt.username))
		})
	}
}

func TestValidatePassword(t *testing.T) {
	tests := []struct {
		name     string
		password string
		want     bool
	}{
		{"all classes", "Teacher123!", true},
		{"minimal", "Aa1!aaaa", true},
		{"too short", "Aa1!aaa", false},
		{"no upper", "aa1!aaaa", false},
		{"no lower", "AA1!AAAA", false},
		{"no digit", "Aaa!aaaa", false},
		{"no special", "Aa1aaaaa", false},
		{"empty", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ValidatePassword(tt.password))
		})
	}
}
