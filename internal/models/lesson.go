package models

import "time"

// Lesson is a published lesson with bilingual title/description pairs.
// The two sides are independent texts, not guaranteed translations of
// each other. ImagePath and VideoPath point at externally managed
// media files; only the paths are stored.
type Lesson struct {
	ID            int64
	Title         string
	TitleAr       string
	Description   string
	DescriptionAr string
	ImagePath     string
	VideoPath     string
	CreatedBy     int64
	CreatedAt     time.Time
}

// TitleIn returns the title for the given UI language.
func (l *Lesson) TitleIn(lang Language) string {
	if lang == LangArabic {
		return l.TitleAr
	}
	return l.Title
}

// DescriptionIn returns the description for the given UI language.
func (l *Lesson) DescriptionIn(lang Language) string {
	if lang == LangArabic {
		return l.DescriptionAr
	}
	return l.Description
}
