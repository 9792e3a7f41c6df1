package cli

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/dmitrijs2005/eduplatform/internal/session"
)

func (a *App) getStatus() string {
	u := a.session.CurrentUser()
	if u == nil {
		return ""
	}
	return fmt.Sprintf("(%s %s)", u.Username, u.Role)
}

func (a *App) printHelp() {
	switch a.session.State() {
	case session.StateAuthenticating:
		fmt.Println("Available commands: login, register, exit")
	case session.StateAdminSession:
		fmt.Println("Available commands: users, adduser, edituser, deluser, lessons, dellesson, lang, logout, exit")
	case session.StateTeacherSession:
		fmt.Println("Available commands: lessons, addlesson, editlesson, lang, logout, exit")
	case session.StateStudentSession:
		fmt.Println("Available commands: lessons, show, lang, logout, exit")
	default:
		fmt.Println("Available commands: exit")
	}
}

// Root runs the command loop until EOF or an explicit exit. Handlers
// print their own errors; a failed command never ends the loop.
func (a *App) Root(ctx context.Context) {
	fmt.Println("Welcome to the educational platform (type 'help' for commands)")
	scanner := bufio.NewScanner(os.Stdin)

	for {
		fmt.Printf("edu %s> ", a.getStatus())
		if !scanner.Scan() {
			break
		}
		parts := strings.Fields(scanner.Text())
		if len(parts) == 0 {
			continue
		}

		cmd := parts[0]
		switch cmd {
		case "help":
			a.printHelp()
		case "exit", "quit":
			fmt.Println("Bye!")
			return
		case "logout":
			if a.isLoggedIn() {
				a.session.Logout()
				continue
			}
			fmt.Println("Not logged in")
		case "lang":
			a.switchLanguage(ctx)
		default:
			if !a.dispatch(ctx, cmd) {
				fmt.Println("Unknown command:", cmd)
			}
		}
	}
}

// dispatch routes state-specific commands; it reports false for a
// command not available in the current state.
func (a *App) dispatch(ctx context.Context, cmd string) bool {
	switch a.session.State() {
	case session.StateAuthenticating:
		switch cmd {
		case "login":
			a.Login(ctx)
			return true
		case "register":
			a.Register(ctx)
			return true
		}
	case session.StateAdminSession:
		switch cmd {
		case "users":
			a.listUsers(ctx)
			return true
		case "adduser":
			a.addUser(ctx)
			return true
		case "edituser":
			a.editUser(ctx)
			return true
		case "deluser":
			a.deleteUser(ctx)
			return true
		case "lessons":
			a.listLessons(ctx, 0)
			return true
		case "dellesson":
			a.deleteLesson(ctx)
			return true
		}
	case session.StateTeacherSession:
		switch cmd {
		case "lessons":
			a.listLessons(ctx, a.session.CurrentUser().ID)
			return true
		case "addlesson":
			a.addLesson(ctx)
			return true
		case "editlesson":
			a.editLesson(ctx)
			return true
		}
	case session.StateStudentSession:
		switch cmd {
		case "lessons":
			a.listLessons(ctx, 0)
			return true
		case "show":
			a.showLesson(ctx)
			return true
		}
	}
	return false
}
