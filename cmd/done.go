package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newDoneCmd() *cobra.Command {
	var undo bool

	cmd := &cobra.Command{
		Use:   "done <eventId>",
		Short: "Mark a stored meeting as completed",
		Long: `Mark a stored meeting as completed. Use --undo to mark it as not completed
again. Unknown event IDs are ignored.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, st, err := openStore()
			if err != nil {
				return err
			}
			defer st.Close()

			eventID := args[0]
			if err := st.SetCompleted(eventID, !undo); err != nil {
				return fmt.Errorf("failed to update meeting %s: %w", eventID, err)
			}

			state := "completed"
			if undo {
				state = "not completed"
			}
			fmt.Printf("Meeting %s marked as %s\n", eventID, state)
			return nil
		},
	}

	cmd.Flags().BoolVar(&undo, "undo", false, "Mark the meeting as not completed")
	return cmd
}
