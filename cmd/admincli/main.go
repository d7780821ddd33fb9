// Command admincli is the operator tool: balance inspection, audit trail
// review, and movement cleanup. Destructive commands require a credential
// check first.
package main

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"syscall"

	"github.com/fatih/color"
	"github.com/fintrackd/fintrack/internal/initializer"
	"github.com/fintrackd/fintrack/pkg/app"
	"github.com/fintrackd/fintrack/pkg/config"
	"github.com/google/uuid"
	"golang.org/x/term"
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
	a := app.New(deps, cfg)

	ctx := context.Background()
	switch os.Args[1] {
	case "accounts":
		cmdAccounts(ctx, a)
	case "movements":
		cmdMovements(ctx, a)
	case "purge-movement":
		cmdPurgeMovement(ctx, a)
	default:
		color.Red("Unknown command: %s", os.Args[1])
		usage()
		os.Exit(1)
	}
}

func usage() {
	fmt.Println("Usage: admincli <command> [arguments]")
	fmt.Println("Commands:")
	fmt.Println("  accounts <owner_id>                        list an owner's accounts and balances")
	fmt.Println("  movements <owner_id> [limit]               list an owner's newest movements")
	fmt.Println("  purge-movement <owner_id> <movement_id>    delete one audit entry (asks for admin credentials)")
}

func cmdAccounts(ctx context.Context, a *app.App) {
	ownerID := mustOwnerID(2)
	accounts, err := a.AccountService.ListAccounts(ctx, ownerID)
	if err != nil {
		color.Red("Failed to list accounts: %v", err)
		os.Exit(1)
	}
	if len(accounts) == 0 {
		color.Yellow("No accounts for owner %s", ownerID)
		return
	}
	for _, acc := range accounts {
		balance := color.GreenString("%.2f %s", acc.Balance, acc.Currency)
		if acc.Balance < 0 {
			balance = color.RedString("%.2f %s", acc.Balance, acc.Currency)
		}
		fmt.Printf("%s  %-24s %-10s %s\n", acc.ID, acc.Name, acc.Type, balance)
	}
}

func cmdMovements(ctx context.Context, a *app.App) {
	ownerID := mustOwnerID(2)
	limit := 20
	if len(os.Args) > 3 {
		n, err := strconv.Atoi(os.Args[3])
		if err != nil {
			color.Red("Invalid limit: %v", err)
			os.Exit(1)
		}
		limit = n
	}
	page, err := a.AuditService.List(ctx, ownerID, limit, "")
	if err != nil {
		color.Red("Failed to list movements: %v", err)
		os.Exit(1)
	}
	for _, m := range page.Items {
		fmt.Printf("%s  %s  %-22s %s\n",
			m.ID, m.Timestamp.Format("2006-01-02 15:04:05"),
			color.CyanString(m.Type), m.Description)
	}
	if page.NextCursor != "" {
		color.Yellow("more entries beyond this page")
	}
}

func cmdPurgeMovement(ctx context.Context, a *app.App) {
	if len(os.Args) < 4 {
		usage()
		os.Exit(1)
	}
	ownerID := mustOwnerID(2)
	movementID, err := uuid.Parse(os.Args[3])
	if err != nil {
		color.Red("Invalid movement ID: %v", err)
		os.Exit(1)
	}
	if err := promptLogin(ctx, a); err != nil {
		color.Red("Credential check failed: %v", err)
		os.Exit(1)
	}
	if err := a.AuditService.DeleteMovement(ctx, ownerID, movementID); err != nil {
		color.Red("Failed to delete movement: %v", err)
		os.Exit(1)
	}
	color.Green("Movement %s deleted", movementID)
}

// promptLogin asks for admin credentials on the terminal and verifies them
// against the user store. The password is read without echo.
func promptLogin(ctx context.Context, a *app.App) error {
	fmt.Print("Admin email: ")
	var email string
	if _, err := fmt.Scanln(&email); err != nil {
		return err
	}
	fmt.Print("Password: ")
	raw, err := term.ReadPassword(int(syscall.Stdin))
	fmt.Println()
	if err != nil {
		return err
	}
	_, err = a.AuthService.Login(ctx, email, string(raw))
	return err
}

func mustOwnerID(arg int) uuid.UUID {
	if len(os.Args) <= arg {
		usage()
		os.Exit(1)
	}
	id, err := uuid.Parse(os.Args[arg])
	if err != nil {
		color.Red("Invalid owner ID: %v", err)
		os.Exit(1)
	}
	return id
}
