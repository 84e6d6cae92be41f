package commands

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"syscall"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/mapmotion/geocore-go/internal/constants"
	"github.com/mapmotion/geocore-go/pkg/geoclient"
)

// NewLoginCommand creates the login command.
func NewLoginCommand() *cobra.Command {
	var (
		id       string
		password string
	)

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Log in to a Geocore project",
		Long: `Authenticate against a Geocore service and store the access token.

The base URL and project come from --base-url and --project, the
GEOCORE_BASE_URL and GEOCORE_PROJECT_ID variables or the config file.
The password is prompted for when --password is not given.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			config := loadConfig()

			if config.BaseURL == "" {
				return constants.ErrNoBaseURLConfigured
			}

			reader := bufio.NewReader(cmd.InOrStdin())

			if id == "" {
				value, err := prompt(cmd.OutOrStdout(), reader, "User ID: ")
				if err != nil {
					return err
				}

				id = value
			}

			if id == "" {
				return constants.ErrIDRequired
			}

			if password == "" {
				value, err := readPassword(cmd.OutOrStdout(), reader)
				if err != nil {
					return err
				}

				password = value
			}

			config.Token = ""
			config.BaseURL = geoclient.NormalizeBaseURL(config.BaseURL)

			client, err := geoclient.New(clientConfig(config))
			if err != nil {
				return fmt.Errorf("failed to create client: %w", err)
			}

			token, err := client.Login(context.Background(), id, password)
			if err != nil {
				return fmt.Errorf("login failed: %w", err)
			}

			config.Token = token
			config.UserID = id

			err = saveConfigStruct(config)
			if err != nil {
				return fmt.Errorf("failed to save configuration: %w", err)
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Successfully logged in to %s as %s\n", config.BaseURL, id)

			return nil
		},
	}

	cmd.Flags().StringVarP(&id, "id", "i", "", "user ID")
	cmd.Flags().StringVar(&password, "password", "", "password (prompted when omitted)")

	return cmd
}

func prompt(out io.Writer, reader *bufio.Reader, label string) (string, error) {
	_, _ = fmt.Fprint(out, label)

	value, err := reader.ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", fmt.Errorf("failed to read input: %w", err)
	}

	return strings.TrimSpace(value), nil
}

// readPassword reads without echo on a terminal and falls back to a plain
// line read when stdin is piped.
func readPassword(out io.Writer, reader *bufio.Reader) (string, error) {
	fd := int(syscall.Stdin)
	if !term.IsTerminal(fd) {
		return prompt(out, reader, "Password: ")
	}

	_, _ = fmt.Fprint(out, "Password: ")

	bytePassword, err := term.ReadPassword(fd)
	if err != nil {
		return "", fmt.Errorf("failed to read password: %w", err)
	}

	_, _ = fmt.Fprintln(out)

	return string(bytePassword), nil
}

// NewLogoutCommand creates the logout command.
func NewLogoutCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Log out from Geocore",
		Long:  "Discard the stored access token",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			config := loadConfig()
			config.Token = ""
			config.UserID = ""

			err := saveConfigStruct(config)
			if err != nil {
				return fmt.Errorf("failed to save configuration: %w", err)
			}

			_, _ = fmt.Fprintln(cmd.OutOrStdout(), "Successfully logged out")

			return nil
		},
	}
}
