// Command signup registers an account from the terminal using the same form
// logic as the web front end.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"usersignup/internal/config"
	"usersignup/internal/database"
	"usersignup/internal/domain"
	"usersignup/internal/modules/registration"
	"usersignup/internal/modules/signup"
	"usersignup/internal/repository"
	"usersignup/internal/session"
)

type options struct {
	firstName string
	lastName  string
	email     string
	password  string
}

func main() {
	_ = godotenv.Load()

	if err := rootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	var opts options

	cmd := &cobra.Command{
		Use:   "signup",
		Short: "Create an account on the configured backend",
		Long: `Create an account on the backend at API_BASE_URL.

The password may also be given through SIGNUP_PASSWORD. On success the
session token is stored in STORAGE_DSN under the key "token".

Examples:
  signup --first-name John --last-name Doe --email j@x.com --password secret1
  signup clear-token
`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if opts.password == "" {
				opts.password = os.Getenv("SIGNUP_PASSWORD")
			}

			cfg, err := config.LoadClientConfig()
			if err != nil {
				return err
			}
			storage, err := openStorage(cfg.StorageDSN)
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			return register(ctx, cmd.OutOrStdout(), opts, registration.NewClient(cfg.BaseURL, nil), storage)
		},
	}

	cmd.Flags().StringVar(&opts.firstName, "first-name", "", "First name")
	cmd.Flags().StringVar(&opts.lastName, "last-name", "", "Last name")
	cmd.Flags().StringVar(&opts.email, "email", "", "Email address")
	cmd.Flags().StringVar(&opts.password, "password", "", "Password (or SIGNUP_PASSWORD)")

	cmd.AddCommand(clearTokenCmd())

	return cmd
}

func clearTokenCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "clear-token",
		Short: "Remove the stored session token",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.LoadClientConfig()
			if err != nil {
				return err
			}
			storage, err := openStorage(cfg.StorageDSN)
			if err != nil {
				return err
			}
			if err := storage.Delete(cmd.Context(), domain.TokenStorageKey); err != nil {
				return fmt.Errorf("clear token: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), "token cleared")
			return nil
		},
	}
}

func openStorage(dsn string) (*repository.StorageRepository, error) {
	db, err := database.Connect(dsn)
	if err != nil {
		return nil, fmt.Errorf("open storage: %w", err)
	}
	if err := database.MigrateClient(db); err != nil {
		return nil, fmt.Errorf("migrate storage: %w", err)
	}
	return repository.NewStorageRepository(db), nil
}

// printNavigator reports navigation instead of switching views.
type printNavigator struct {
	out io.Writer
}

func (n printNavigator) GoTo(path string) {
	fmt.Fprintf(n.out, "-> %s\n", path)
}

func register(ctx context.Context, out io.Writer, opts options, registrar signup.Registrar, storage signup.Storage) error {
	sessions := session.NewStore()
	form := signup.NewForm(registrar, sessions, storage, printNavigator{out: out})

	form.SetFirstName(opts.firstName)
	form.SetLastName(opts.lastName)
	form.SetEmail(opts.email)
	form.SetPassword(opts.password)

	switch form.Submit(ctx) {
	case signup.StateNavigating:
		fmt.Fprintf(out, "registered %s\n", sessions.GetUser().DisplayName())
		return nil
	case signup.StateError:
		return errors.New(form.ErrorMessage())
	default:
		return errors.New("registration did not create a session")
	}
}
