package cli

import (
	"github.com/spf13/cobra"
)

func newSelfTestCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "selftest [UID...]",
		Short: "Check the status pipeline against a known account",
		RunE: func(cmd *cobra.Command, args []string) error {
			service := newAppService()
			return service.SelfTest(cmd.Context(), args)
		},
	}
	return cmd
}
