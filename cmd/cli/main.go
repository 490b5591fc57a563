// Command cli is the Agrosphere admin tool. It talks to the database
// directly through the same configuration the server uses; there is no HTTP
// surface for any of these operations.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/agrosphere/backend/infra/initializer"
	chatinfra "github.com/agrosphere/backend/infra/repository/chat"
	connectioninfra "github.com/agrosphere/backend/infra/repository/connection"
	ledgerinfra "github.com/agrosphere/backend/infra/repository/ledger"
	notificationinfra "github.com/agrosphere/backend/infra/repository/notification"
	userinfra "github.com/agrosphere/backend/infra/repository/user"
	"github.com/agrosphere/backend/pkg/config"
	"github.com/agrosphere/backend/pkg/dto"
	usersvc "github.com/agrosphere/backend/pkg/service/user"
	"github.com/fatih/color"
	"golang.org/x/term"
	"gorm.io/gorm"
)

func main() {
	if len(os.Args) < 2 {
		usage()
		return
	}

	cfg, err := config.Load(".env")
	if err != nil {
		color.Red("Failed to load configuration: %v", err)
		os.Exit(1)
	}
	deps, err := initializer.InitializeDependencies(cfg)
	if err != nil {
		color.Red("Failed to initialize dependencies: %v", err)
		os.Exit(1)
	}

	svc := usersvc.New(deps.Uow, deps.Logger)
	ctx := context.Background()

	switch os.Args[1] {
	case "create-user":
		if len(os.Args) < 4 {
			fmt.Println("Usage: cli create-user <username> <email>")
			return
		}
		createUser(ctx, svc, os.Args[2], os.Args[3])
	case "ban", "unban":
		if len(os.Args) < 3 {
			fmt.Println("Usage: cli ban|unban <username>")
			return
		}
		setBanned(ctx, svc, os.Args[2], os.Args[1] == "ban")
	case "stats":
		printStats(deps.DB)
	default:
		usage()
	}
}

func usage() {
	fmt.Println("Usage: cli <command> [arguments]")
	fmt.Println("Commands:")
	fmt.Println("  create-user <username> <email>   create an account (prompts for a password)")
	fmt.Println("  ban <username>                   ban a user")
	fmt.Println("  unban <username>                 lift a ban")
	fmt.Println("  stats                            print row counts per table")
}

func createUser(ctx context.Context, svc *usersvc.Service, username, email string) {
	password, err := readPassword("Password: ")
	if err != nil {
		color.Red("Failed to read password: %v", err)
		os.Exit(1)
	}
	confirm, err := readPassword("Confirm password: ")
	if err != nil {
		color.Red("Failed to read password: %v", err)
		os.Exit(1)
	}
	if password != confirm {
		color.Red("Passwords do not match")
		os.Exit(1)
	}

	u, err := svc.CreateUser(ctx, &dto.UserCreate{
		Username: username,
		Email:    email,
		Password: password,
	})
	if err != nil {
		color.Red("Failed to create user: %v", err)
		os.Exit(1)
	}
	color.Green("User created: %s <%s> id=%s", u.Username, u.Email, u.ID)
}

func setBanned(ctx context.Context, svc *usersvc.Service, username string, banned bool) {
	if err := svc.SetBanned(ctx, username, banned); err != nil {
		color.Red("Failed to update %q: %v", username, err)
		os.Exit(1)
	}
	if banned {
		color.Yellow("User %q banned", username)
	} else {
		color.Green("User %q unbanned", username)
	}
}

// readPassword prompts on stdout and reads without echo.
func readPassword(prompt string) (string, error) {
	fmt.Print(prompt)
	b, err := term.ReadPassword(int(os.Stdin.Fd()))
	fmt.Println()
	if err != nil {
		return "", err
	}
	return string(b), nil
}

func printStats(db *gorm.DB) {
	color.New(color.Bold).Println("Agrosphere database")
	rows := []struct {
		label string
		model any
	}{
		{"users", &userinfra.User{}},
		{"connections", &connectioninfra.Connection{}},
		{"conversations", &chatinfra.Conversation{}},
		{"messages", &chatinfra.Message{}},
		{"records", &ledgerinfra.Record{}},
		{"notifications", &notificationinfra.Notification{}},
	}
	for _, row := range rows {
		var n int64
		if err := db.Model(row.model).Count(&n).Error; err != nil {
			color.Red("  %-15s error: %v", row.label, err)
			continue
		}
		fmt.Printf("  %-15s %d\n", row.label, n)
	}
}
