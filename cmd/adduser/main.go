// Command adduser creates an account from the terminal, writing through the
// same store and hasher as the server. Useful for seeding accounts without
// the public endpoint.
package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"golang.org/x/term"

	"github.com/loginbox/loginbox/internal/common"
	"github.com/loginbox/loginbox/internal/server/accounts"
	"github.com/loginbox/loginbox/internal/server/config"
	"github.com/loginbox/loginbox/internal/server/hashing"
	"github.com/loginbox/loginbox/internal/server/shared/db"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {

	ctx := context.Background()
	cfg := config.LoadConfig()

	m, err := db.NewPostgresRepositoryManager(cfg.DatabaseDSN)
	if err != nil {
		return fmt.Errorf("db init error: %w", err)
	}

	reader := bufio.NewReader(os.Stdin)

	fmt.Print("Email: ")
	email, err := reader.ReadString('\n')
	if err != nil {
		return err
	}
	email = strings.TrimSpace(email)
	if email == "" {
		return errors.New("email must not be empty")
	}

	password, err := readPassword("Password: ")
	if err != nil {
		return err
	}
	if len(password) < accounts.MinPasswordLength {
		return fmt.Errorf("password must be at least %d characters long", accounts.MinPasswordLength)
	}

	confirmation, err := readPassword("Repeat password: ")
	if err != nil {
		return err
	}
	if password != confirmation {
		return errors.New("passwords do not match")
	}

	hash, err := hashing.NewBcryptHasher().Hash(password)
	if err != nil {
		return err
	}

	account, err := m.Accounts().Create(ctx, &accounts.Account{Email: email, PasswordHash: hash})
	if err != nil {
		if errors.Is(err, common.ErrorAlreadyExists) {
			return fmt.Errorf("account %q already exists", email)
		}
		return err
	}

	fmt.Printf("Created account %d (%s)\n", account.ID, account.Email)
	return nil
}

// readPassword reads a password from the terminal without echo.
func readPassword(prompt string) (string, error) {
	fmt.Print(prompt)
	pw, err := term.ReadPassword(int(os.Stdin.Fd()))
	fmt.Println()
	if err != nil {
		return "", err
	}
	return string(pw), nil
}
