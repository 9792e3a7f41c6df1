package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRole(t *testing.T) {
	for _, s := range []string{"admin", "teacher", "student"} {
		r, err := ParseRole(s)
		require.NoError(t, err)
		assert.Equal(t, s, r.String())
		assert.True(t, r.Valid())
	}

	_, err := ParseRole("superuser")
	require.Error(t, err)
	assert.False(t, Role("superuser").Valid())
	assert.False(t, Role("").Valid())
}

func TestParseLanguage(t *testing.T) {
	for _, s := range []string{"en", "ar"} {
		l, err := ParseLanguage(s)
		require.NoError(t, err)
		assert.Equal(t, s, l.String())
		assert.True(t, l.Valid())
	}

	_, err := ParseLanguage("fr")
	require.Error(t, err)
	assert.Equal(t, LangArabic, DefaultLanguage)
}

func TestLesson_BilingualSelectors(t *testing.T) {
	l := Lesson{
		Title:         "Introduction to Python",
		TitleAr:       "مقدمة في بايثون",
		Description:   "Basics of Python.",
		DescriptionAr: "أساسيات بايثون.",
	}

	assert.Equal(t, l.Title, l.TitleIn(LangEnglish))
	assert.Equal(t, l.TitleAr, l.TitleIn(LangArabic))
	assert.Equal(t, l.Description, l.DescriptionIn(LangEnglish))
	assert.Equal(t, l.DescriptionAr, l.DescriptionIn(LangArabic))
}
