package store

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/eduplatform/internal/models"
)

// SeedSampleData creates a demo teacher and student plus two bilingual
// lessons, for trying the application out. Idempotent: it does nothing
// when the demo teacher already exists.
func (s *Store) SeedSampleData(ctx context.Context) error {
	if s.GetUserByUsername(ctx, "teacher") != nil {
		return nil
	}

	teacher := s.AddUser(ctx, "teacher", "Teacher123!", models.RoleTeacher, models.LangEnglish)
	if teacher == nil {
		return fmt.Errorf("create demo teacher")
	}
	if s.AddUser(ctx, "student", "Student123!", models.RoleStudent, models.LangEnglish) == nil {
		return fmt.Errorf("create demo student")
	}

	samples := []models.Lesson{
		{
			Title:         "Introduction to Python",
			TitleAr:       "مقدمة في بايثون",
			Description:   "Learn the basics of the Python programming language. This course covers variables, data types, control flow, and functions.",
			DescriptionAr: "تعلم أساسيات لغة البرمجة بايثون. تغطي هذه الدورة المتغيرات وأنواع البيانات والتحكم في التدفق والدوال.",
			ImagePath:     "resources/images/python.jpg",
			VideoPath:     "resources/videos/python_intro.mp4",
			CreatedBy:     teacher.ID,
		},
		{
			Title:         "Web Development Fundamentals",
			TitleAr:       "أساسيات تطوير الويب",
			Description:   "Introduction to HTML, CSS, and JavaScript. Learn how to create modern and responsive websites.",
			DescriptionAr: "مقدمة في HTML و CSS و JavaScript. تعلم كيفية إنشاء مواقع ويب حديثة ومتجاوبة.",
			ImagePath:     "resources/images/web_dev.jpg",
			VideoPath:     "resources/videos/web_dev_intro.mp4",
			CreatedBy:     teacher.ID,
		},
	}
	for _, l := range samples {
		if s.AddLesson(ctx, l) == nil {
			return fmt.Errorf("create demo lesson %q", l.Title)
		}
	}
	return nil
}
