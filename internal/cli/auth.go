package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/dmitrijs2005/eduplatform/internal/models"
	"github.com/dmitrijs2005/eduplatform/internal/securex"
)

// getSimpleText and getPassword are indirections used to facilitate
// testing; they point at the interactive helpers and can be swapped.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// Login prompts for credentials and asks the session controller to
// authenticate. A failed attempt prints a single generic message;
// whether the username or the password was wrong is not revealed.
func (a *App) Login(ctx context.Context) {
	username, err := getSimpleText(a.reader, "Enter username", os.Stdout)
	if err != nil {
		fmt.Println(err.Error())
		return
	}

	password, err := getPassword(os.Stdout)
	if err != nil {
		fmt.Println(err.Error())
		return
	}
	defer securex.Wipe(password)

	if !a.session.Login(ctx, username, string(password)) {
		fmt.Println("Invalid username or password")
	}
}

// Register walks the self-service registration flow. The account role
// is always student; on success the user lands back on the login
// view and logs in explicitly.
func (a *App) Register(ctx context.Context) {
	a.session.ShowRegistration()

	username, err := getSimpleText(a.reader, "Choose a username (3-20 letters, digits, underscores)", os.Stdout)
	if err != nil {
		fmt.Println(err.Error())
		return
	}
	if !securex.ValidateUsername(username) {
		fmt.Println("Invalid username format")
		a.session.ShowLogin()
		return
	}

	password, err := getPassword(os.Stdout)
	if err != nil {
		fmt.Println(err.Error())
		return
	}
	defer securex.Wipe(password)

	if !securex.ValidatePassword(string(password)) {
		fmt.Println("Password too weak: need 8+ characters with upper, lower, digit and special")
		a.session.ShowLogin()
		return
	}

	language := a.askLanguage()

	if !a.session.Register(ctx, username, string(password), language) {
		fmt.Println("Registration failed: username may already be taken")
		a.session.ShowLogin()
		return
	}
	fmt.Println("Account created, please log in")
}

// switchLanguage flips the bound user's UI language preference and
// persists it.
func (a *App) switchLanguage(ctx context.Context) {
	u := a.session.CurrentUser()
	if u == nil {
		fmt.Println("Not logged in")
		return
	}

	next := models.LangArabic
	if u.Language == models.LangArabic {
		next = models.LangEnglish
	}

	if !a.session.SetLanguage(ctx, next) {
		fmt.Println("Could not save language preference")
		return
	}
	fmt.Println("Language set to", next)
}

func (a *App) askLanguage() models.Language {
	s, err := getSimpleText(a.reader, "Preferred language: en or ar (default ar)", os.Stdout)
	if err != nil {
		return models.DefaultLanguage
	}
	lang, err := models.ParseLanguage(s)
	if err != nil {
		return models.DefaultLanguage
	}
	return lang
}
