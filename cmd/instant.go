package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/meetmint/meetmint/internal/meeting"
)

func newInstantCmd() *cobra.Command {
	var (
		account     string
		title       string
		description string
	)

	cmd := &cobra.Command{
		Use:   "instant",
		Short: "Mint a Google Meet link that works immediately",
		Long: `Create an instant Google Meet link. A temporary calendar event is created
to obtain the link and deleted right away, so nothing lingers in the calendar.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, st, err := openStore()
			if err != nil {
				return err
			}
			defer st.Close()

			ctx := context.Background()
			svc, err := newCLIService(ctx, cfg, st, account)
			if err != nil {
				return err
			}

			res, err := svc.CreateInstantWindow(ctx, meeting.CreateRequest{
				Summary:     title,
				Description: description,
			})
			if err != nil {
				return fmt.Errorf("failed to create instant meeting: %w", err)
			}

			fmt.Printf("Meet link: %s\n", res.Meeting.MeetLink)
			if res.Note != "" {
				fmt.Printf("\n%s\n", res.Note)
			}
			if !res.Deleted {
				fmt.Printf("\nWarning: the temporary calendar event %s could not be removed.\n", res.Meeting.EventID)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&account, "account", "", "Google account name to use (default from config)")
	cmd.Flags().StringVar(&title, "title", "", "Meeting title (default: 'Instant Meeting')")
	cmd.Flags().StringVar(&description, "description", "", "Meeting description")
	return cmd
}
