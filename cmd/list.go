package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newListCmd() *cobra.Command {
	var linksOnly bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "Show stored meetings, newest first",
		RunE: func(cmd *cobra.Command, args []string) error {
			_, st, err := openStore()
			if err != nil {
				return err
			}
			defer st.Close()

			meetings := st.Meetings()
			if len(meetings) == 0 {
				fmt.Println("No meetings created yet")
				return nil
			}

			// Stored in insertion order; render newest first.
			for i := len(meetings) - 1; i >= 0; i-- {
				m := meetings[i]
				if linksOnly {
					fmt.Println(m.MeetLink)
					continue
				}
				mark := " "
				if m.IsCompleted {
					mark = "x"
				}
				duration := m.EndDateTime.Sub(m.StartDateTime)
				fmt.Printf("[%s] %s\n", mark, m.Title)
				fmt.Printf("    Start:    %s (%s)\n", m.StartDateTime.Format("2006-01-02 15:04 MST"), duration)
				fmt.Printf("    Link:     %s\n", m.MeetLink)
				fmt.Printf("    Event ID: %s\n", m.EventID)
				fmt.Println()
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&linksOnly, "links", false, "Print bare Meet links only, for shell piping")
	return cmd
}
