package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/dmitrijs2005/eduplatform/internal/mediastore"
	"github.com/dmitrijs2005/eduplatform/internal/models"
)

// listLessons prints lessons newest-first, titled in the viewer's
// preferred language. ownerID zero lists everything.
func (a *App) listLessons(ctx context.Context, ownerID int64) {
	lang := models.DefaultLanguage
	if u := a.session.CurrentUser(); u != nil {
		lang = u.Language
	}

	for _, l := range a.store.GetLessons(ctx, ownerID) {
		fmt.Printf("%4d  %-40s  %s\n", l.ID, l.TitleIn(lang), l.CreatedAt.Format("2006-01-02 15:04"))
	}
}

func (a *App) showLesson(ctx context.Context) {
	id, err := GetID(a.reader, "Lesson id", os.Stdout)
	if err != nil {
		fmt.Println(err.Error())
		return
	}

	l := a.store.GetLesson(ctx, id)
	if l == nil {
		fmt.Println("No such lesson")
		return
	}

	lang := models.DefaultLanguage
	if u := a.session.CurrentUser(); u != nil {
		lang = u.Language
	}

	fmt.Println(l.TitleIn(lang))
	fmt.Println(l.DescriptionIn(lang))
	if l.ImagePath != "" {
		fmt.Println("Image:", l.ImagePath)
	}
	if l.VideoPath != "" {
		fmt.Println("Video:", l.VideoPath)
	}
}

// addLesson collects the bilingual fields and optional media files,
// copies the media into the managed directory, and stores the lesson
// under the current teacher's id.
func (a *App) addLesson(ctx context.Context) {
	l, ok := a.promptLessonFields(models.Lesson{})
	if !ok {
		return
	}
	l.CreatedBy = a.session.CurrentUser().ID

	created := a.store.AddLesson(ctx, l)
	if created == nil {
		fmt.Println("Could not create lesson")
		return
	}
	fmt.Printf("Created lesson %d\n", created.ID)
}

// editLesson overwrites content and media paths of one of the current
// teacher's lessons. Ownership never changes.
func (a *App) editLesson(ctx context.Context) {
	id, err := GetID(a.reader, "Lesson id", os.Stdout)
	if err != nil {
		fmt.Println(err.Error())
		return
	}

	current := a.store.GetLesson(ctx, id)
	if current == nil {
		fmt.Println("No such lesson")
		return
	}
	if current.CreatedBy != a.session.CurrentUser().ID {
		fmt.Println("You can only edit your own lessons")
		return
	}

	l, ok := a.promptLessonFields(*current)
	if !ok {
		return
	}
	l.ID = current.ID

	if !a.store.UpdateLesson(ctx, l) {
		fmt.Println("Update failed")
		return
	}
	fmt.Println("Lesson updated")
}

// deleteLesson removes the record and then its media files. Media
// cleanup failures are reported but do not undo the deletion.
func (a *App) deleteLesson(ctx context.Context) {
	id, err := GetID(a.reader, "Lesson id", os.Stdout)
	if err != nil {
		fmt.Println(err.Error())
		return
	}

	current := a.store.GetLesson(ctx, id)
	if current == nil {
		fmt.Println("No such lesson")
		return
	}

	if !a.store.DeleteLesson(ctx, id) {
		fmt.Println("Delete failed")
		return
	}
	for _, p := range []string{current.ImagePath, current.VideoPath} {
		if err := a.media.Remove(p); err != nil {
			fmt.Println("Could not remove media file:", err.Error())
		}
	}
	fmt.Println("Lesson deleted")
}

// promptLessonFields reads both language sides and the media paths.
// Empty input keeps the value in base, so the same prompt flow serves
// creation and editing.
func (a *App) promptLessonFields(base models.Lesson) (models.Lesson, bool) {
	prompts := []struct {
		label string
		dst   *string
		multi bool
	}{
		{"Title (en)", &base.Title, false},
		{"Title (ar)", &base.TitleAr, false},
		{"Description (en)", &base.Description, true},
		{"Description (ar)", &base.DescriptionAr, true},
	}
	for _, p := range prompts {
		var (
			s   string
			err error
		)
		if p.multi {
			s, err = GetMultiline(a.reader, p.label, os.Stdout)
		} else {
			s, err = getSimpleText(a.reader, p.label, os.Stdout)
		}
		if err != nil {
			fmt.Println(err.Error())
			return base, false
		}
		if s != "" {
			*p.dst = s
		}
	}

	if path, ok := a.promptMedia("Image file path (empty to keep)", mediastore.KindImage); ok && path != "" {
		base.ImagePath = path
	}
	if path, ok := a.promptMedia("Video file path (empty to keep)", mediastore.KindVideo); ok && path != "" {
		base.VideoPath = path
	}
	return base, true
}

// promptMedia asks for a source file and copies it into the managed
// media directory, returning the stored path. An empty answer skips
// the field.
func (a *App) promptMedia(label string, kind mediastore.Kind) (string, bool) {
	src, err := getSimpleText(a.reader, label, os.Stdout)
	if err != nil {
		fmt.Println(err.Error())
		return "", false
	}
	if src == "" {
		return "", true
	}

	stored, err := a.media.Save(src, kind)
	if err != nil {
		fmt.Println("Could not copy media file:", err.Error())
		return "", false
	}
	return stored, true
}
