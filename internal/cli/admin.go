package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/dmitrijs2005/eduplatform/internal/models"
	"github.com/dmitrijs2005/eduplatform/internal/securex"
	"github.com/dmitrijs2005/eduplatform/internal/store"
)

func (a *App) listUsers(ctx context.Context) {
	for _, u := range a.store.GetUsers(ctx) {
		fmt.Printf("%4d  %-20s  %-8s  %s\n", u.ID, u.Username, u.Role, u.Language)
	}
}

// addUser provisions an account with an explicitly chosen role, the
// admin-side counterpart of self-service registration.
func (a *App) addUser(ctx context.Context) {
	username, err := getSimpleText(a.reader, "Username (3-20 letters, digits, underscores)", os.Stdout)
	if err != nil {
		fmt.Println(err.Error())
		return
	}
	if !securex.ValidateUsername(username) {
		fmt.Println("Invalid username format")
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
		return
	}

	role, err := a.askRole()
	if err != nil {
		fmt.Println(err.Error())
		return
	}
	language := a.askLanguage()

	u := a.store.AddUser(ctx, username, string(password), role, language)
	if u == nil {
		fmt.Println("Could not create user: username may already be taken")
		return
	}
	fmt.Printf("Created user %d (%s)\n", u.ID, u.Username)
}

// editUser updates username, role and language of an existing
// account. Password and salt are never touched here.
func (a *App) editUser(ctx context.Context) {
	id, err := GetID(a.reader, "User id", os.Stdout)
	if err != nil {
		fmt.Println(err.Error())
		return
	}

	current := a.store.GetUser(ctx, id)
	if current == nil {
		fmt.Println("No such user")
		return
	}

	username, err := getSimpleText(a.reader, fmt.Sprintf("New username [%s]", current.Username), os.Stdout)
	if err != nil {
		fmt.Println(err.Error())
		return
	}
	if username == "" {
		username = current.Username
	} else if !securex.ValidateUsername(username) {
		fmt.Println("Invalid username format")
		return
	}

	role, err := a.askRole()
	if err != nil {
		fmt.Println(err.Error())
		return
	}
	language := a.askLanguage()

	if !a.store.UpdateUser(ctx, id, username, role, language) {
		fmt.Println("Update failed: username may already be taken")
		return
	}
	fmt.Println("User updated")
}

// deleteUser removes an account together with every lesson it
// authored. The seeded admin account is refused here; that rule is a
// contract this layer upholds, the store itself does not special-case
// it.
func (a *App) deleteUser(ctx context.Context) {
	id, err := GetID(a.reader, "User id", os.Stdout)
	if err != nil {
		fmt.Println(err.Error())
		return
	}

	target := a.store.GetUser(ctx, id)
	if target == nil {
		fmt.Println("No such user")
		return
	}
	if target.Username == store.AdminUsername {
		fmt.Println("The admin account cannot be deleted")
		return
	}

	if !a.store.DeleteUser(ctx, id) {
		fmt.Println("Delete failed")
		return
	}
	fmt.Printf("Deleted user %s and all their lessons\n", target.Username)
}

func (a *App) askRole() (models.Role, error) {
	s, err := getSimpleText(a.reader, "Role: admin, teacher or student", os.Stdout)
	if err != nil {
		return "", err
	}
	return models.ParseRole(s)
}
