package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/aisb-selection/aisb/internal/auth"
	"github.com/aisb-selection/aisb/internal/database"
)

var adminOpts struct {
	password string
	email    string
	name     string
}

var hashPasswordCmd = &cobra.Command{
	Use:   "hash-password",
	Short: "Print the bcrypt hash of a password",
	Long: `Print the bcrypt hash of a password, for ADMIN_PASSWORD_HASH.

The password is read from --password or, when omitted, from the first line
of stdin.

Examples:
  aisb hash-password --password 's3cret-pass'
  echo 's3cret-pass' | aisb hash-password`,
	Args: cobra.NoArgs,
	RunE: runHashPassword,
}

var createAdminCmd = &cobra.Command{
	Use:   "create-admin",
	Short: "Create an admin account in the database",
	Long: `Create an admin account in DATABASE_URL.

The password is read from --password or, when omitted, from the first line
of stdin.

Examples:
  aisb create-admin --email admin@example.com --name "Ada Lovelace"`,
	Args: cobra.NoArgs,
	RunE: runCreateAdmin,
}

func init() {
	rootCmd.AddCommand(hashPasswordCmd)
	rootCmd.AddCommand(createAdminCmd)

	for _, c := range []*cobra.Command{hashPasswordCmd, createAdminCmd} {
		c.Flags().StringVar(&adminOpts.password, "password", "",
			"Password (read from stdin when omitted)")
	}

	createAdminCmd.Flags().StringVar(&adminOpts.email, "email", "", "Admin email address")
	createAdminCmd.Flags().StringVar(&adminOpts.name, "name", "", "Display name")
	_ = createAdminCmd.MarkFlagRequired("email")
}

// readPassword returns the --password flag or the first line of in.
func readPassword(in io.Reader) (string, error) {
	if adminOpts.password != "" {
		return adminOpts.password, nil
	}
	line, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", fmt.Errorf("read password: %w", err)
	}
	return strings.TrimRight(line, "\r\n"), nil
}

func runHashPassword(cmd *cobra.Command, args []string) error {
	password, err := readPassword(cmd.InOrStdin())
	if err != nil {
		return err
	}
	hash, err := auth.HashPassword(password)
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), hash)
	return nil
}

func runCreateAdmin(cmd *cobra.Command, args []string) error {
	password, err := readPassword(cmd.InOrStdin())
	if err != nil {
		return err
	}
	hash, err := auth.HashPassword(password)
	if err != nil {
		return err
	}

	db, err := openDatabase(cmd)
	if err != nil {
		return err
	}
	defer db.Close()

	account, err := database.NewAccounts(db).Create(cmd.Context(), adminOpts.email, adminOpts.name, hash)
	if errors.Is(err, database.ErrAccountExists) {
		return fmt.Errorf("%s: %w", auth.NormalizeEmail(adminOpts.email), err)
	}
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "created admin %s (%s)\n", account.Email, account.ID)
	return nil
}
