package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/meetmint/meetmint/internal/config"
	"github.com/meetmint/meetmint/internal/google"
)

func newAuthCmd() *cobra.Command {
	var (
		account string
		code    string
	)

	cmd := &cobra.Command{
		Use:   "auth",
		Short: "Authorize a Google account for meetmint",
		Long: `Authorize meetmint to create calendar events on a Google account.

Without --code, prints the authorization URL to visit. After granting access,
run the command again with --code to save the token:

  meetmint auth
  meetmint auth --code <authorization code>`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}
			if !cfg.HasCredentials() {
				return fmt.Errorf("Google OAuth client credentials are not configured; set GOOGLE_CLIENT_ID and GOOGLE_CLIENT_SECRET")
			}

			if code == "" {
				fmt.Printf("Visit this URL to authorize account %q:\n\n  %s\n\n", account, google.GetAuthURL(cfg))
				fmt.Printf("Then run: meetmint auth --account %s --code <authorization code>\n", account)
				return nil
			}

			if err := google.SaveTokenForAccount(context.Background(), cfg, account, code); err != nil {
				return fmt.Errorf("failed to save token for account %s: %w", account, err)
			}

			fmt.Printf("Authorization successful for account %q. Token saved.\n", account)
			return nil
		},
	}

	cmd.Flags().StringVar(&account, "account", "default", "Google account name to use")
	cmd.Flags().StringVar(&code, "code", "", "Authorization code obtained from the auth URL")
	return cmd
}
