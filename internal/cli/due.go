package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/zhouzirui/health-assistant/backend/internal/model/chat"
	"github.com/zhouzirui/health-assistant/backend/internal/schedule"
)

func init() {
	cmd := &cobra.Command{
		Use:   "due",
		Short: "Print reminders and medications due this minute (consumes one-shot reminders)",
		RunE:  runDue,
	}
	cmd.Flags().Bool("schedule", false, "Print the full medication schedule instead")
	RootCmd.AddCommand(cmd)
}

func runDue(cmd *cobra.Command, _ []string) error {
	showSchedule, _ := cmd.Flags().GetBool("schedule")

	a, err := bootstrap(cmd)
	if err != nil {
		return err
	}
	defer a.Close()

	var payload any
	if showSchedule {
		err = a.Sessions.View(cmd.Context(), sessionID, func(state *chat.State) error {
			payload = map[string][]schedule.Entry{"schedule": schedule.MedicationSchedule(state.Medications, a.Clock())}
			return nil
		})
	} else {
		err = a.Sessions.Update(cmd.Context(), sessionID, func(state *chat.State) error {
			payload = map[string][]schedule.DueItem{"reminders": schedule.Due(state, a.Clock())}
			return nil
		})
	}
	if err != nil {
		return err
	}

	return writeJSON(cmd.OutOrStdout(), payload)
}

func writeJSON(w io.Writer, payload any) error {
	b, err := json.MarshalIndent(payload, "", "  ")
	if err != nil {
		return fmt.Errorf("encode due items: %w", err)
	}
	_, err = fmt.Fprintln(w, string(b))
	return err
}
