package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/meetmint/meetmint/internal/meeting"
)

func newScheduleCmd() *cobra.Command {
	var (
		account     string
		title       string
		description string
		date        string
		startTime   string
		duration    string
		customMins  int
	)

	cmd := &cobra.Command{
		Use:   "schedule",
		Short: "Schedule a Google Meet meeting at a future date and time",
		Long: `Create a meeting in the future. The calendar event persists and carries the
Meet link. Inputs are validated before any network call: the date must be
selected, the start must not be in the past, and the duration must be one of
15, 30, 45, 60 minutes or a custom value between 1 and 300.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, st, err := openStore()
			if err != nil {
				return err
			}
			defer st.Close()

			// The whole form is gated on an authorized session; the token
			// check runs before any input validation.
			ctx := context.Background()
			svc, err := newCLIService(ctx, cfg, st, account)
			if err != nil {
				return err
			}

			loc := configLocation(cfg)
			input := meeting.ScheduleInput{
				Title:       title,
				Description: description,
				Date:        date,
				Time:        startTime,
				Duration:    duration,
				CustomMins:  customMins,
				Location:    loc,
			}
			req, err := input.Resolve(time.Now().In(loc))
			if err != nil {
				return err
			}

			res, err := svc.CreateScheduled(ctx, req)
			if err != nil {
				return fmt.Errorf("failed to schedule meeting: %w", err)
			}

			fmt.Printf("Meeting scheduled!\n\n")
			fmt.Printf("  Title:     %s\n", res.Meeting.Title)
			fmt.Printf("  Start:     %s\n", res.Meeting.StartDateTime.Format("2006-01-02 15:04 MST"))
			fmt.Printf("  End:       %s\n", res.Meeting.EndDateTime.Format("2006-01-02 15:04 MST"))
			fmt.Printf("  Meet link: %s\n", res.Meeting.MeetLink)
			fmt.Printf("  Event ID:  %s\n", res.Meeting.EventID)
			return nil
		},
	}

	cmd.Flags().StringVar(&account, "account", "", "Google account name to use (default from config)")
	cmd.Flags().StringVar(&title, "title", "", "Meeting title (default: 'Scheduled Meeting')")
	cmd.Flags().StringVar(&description, "description", "", "Meeting description")
	cmd.Flags().StringVar(&date, "date", "", "Meeting date in YYYY-MM-DD format (required)")
	cmd.Flags().StringVar(&startTime, "time", "", "Start time in HH:MM 24-hour format (default: 10:00)")
	cmd.Flags().StringVar(&duration, "duration", "60", "Duration in minutes: 15, 30, 45, 60, or custom")
	cmd.Flags().IntVar(&customMins, "custom-minutes", 0, "Duration in minutes when --duration=custom (1-300)")
	return cmd
}
