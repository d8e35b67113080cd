// accounts_cli.go implements the add-user and setup-admin subcommands for
// provisioning HTTP basic auth accounts.
package main

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strings"
	"syscall"

	"golang.org/x/term"
)

// runAddUser interactively creates an account. Prompts on stdin, reads the
// password without echo.
func runAddUser(store *Store) error {
	reader := bufio.NewReader(os.Stdin)

	fmt.Print("Enter new username: ")
	username, err := reader.ReadString('\n')
	if err != nil {
		return fmt.Errorf("read username: %w", err)
	}
	username = strings.TrimSpace(username)
	if username == "" {
		return errors.New("username cannot be empty")
	}

	fmt.Print("Enter password: ")
	pw, err := term.ReadPassword(int(syscall.Stdin))
	fmt.Println()
	if err != nil {
		return fmt.Errorf("read password: %w", err)
	}
	if len(pw) == 0 {
		return errors.New("password cannot be empty")
	}

	fmt.Print("Enter email (optional): ")
	email, err := reader.ReadString('\n')
	if err != nil {
		return fmt.Errorf("read email: %w", err)
	}
	email = strings.TrimSpace(email)

	return createAccountIfMissing(store, username, string(pw), email)
}

// runSetupAdmin creates the admin account from APP_USERNAME/APP_PASSWORD.
func runSetupAdmin(store *Store) error {
	username := os.Getenv("APP_USERNAME")
	password := os.Getenv("APP_PASSWORD")
	if username == "" || password == "" {
		return errors.New("APP_USERNAME and APP_PASSWORD must be set in the environment")
	}
	return createAccountIfMissing(store, username, password, "")
}

func createAccountIfMissing(store *Store, username, password, email string) error {
	existing, err := store.GetAccount(username)
	if err != nil {
		return err
	}
	if existing != nil {
		fmt.Printf("User %q already exists.\n", username)
		return nil
	}
	if _, err := store.CreateAccount(username, password, email); err != nil {
		return err
	}
	fmt.Printf("Created user: %s\n", username)
	return nil
}
