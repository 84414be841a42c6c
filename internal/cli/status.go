package cli

import (
	"github.com/spf13/cobra"
)

func newStatusCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "status UID...",
		Short: "Show whether users are online",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			service := newAppService()
			_, err := service.ShowStatus(cmd.Context(), statusRequest(args))
			return err
		},
	}
	return cmd
}
