package cli

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
)

func init() {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP server",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			cmd.SetContext(ctx)

			a, err := bootstrap(cmd)
			if err != nil {
				return err
			}
			defer a.Close()
			defer a.Logger.Sync()

			return a.Serve(ctx)
		},
	}
	RootCmd.AddCommand(cmd)
}
