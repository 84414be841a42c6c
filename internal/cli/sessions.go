package cli

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"vkstatus/internal/app"
	"vkstatus/internal/types"
)

type sessionsOptions struct {
	InputFormat  string
	OutputFormat string
	GroupBy      string
}

func newSessionsCommand() *cobra.Command {
	opts := sessionsOptions{}
	cmd := &cobra.Command{
		Use:   "sessions INPUT [OUTPUT]",
		Short: "Report how long users spent online",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			outputPath := ""
			if len(args) > 1 {
				outputPath = args[1]
			}
			service := newAppService()
			_, err := service.SessionsReport(cmd.Context(), app.SessionsRequest{
				InputPath:    args[0],
				InputFormat:  types.LogFormat(resolveString(cmd, opts.InputFormat, "input_format", "input-format")),
				OutputPath:   outputPath,
				OutputFormat: types.ReportFormat(resolveString(cmd, opts.OutputFormat, "output_format", "output-format")),
				GroupBy:      types.GroupBy(resolveString(cmd, opts.GroupBy, "group_by", "group-by")),
			})
			return err
		},
	}

	cmd.Flags().StringVar(&opts.InputFormat, "input-format", "csv", "Status log format (csv or json)")
	cmd.Flags().StringVar(&opts.OutputFormat, "output-format", "csv", "Report format (csv or json)")
	cmd.Flags().StringVar(&opts.GroupBy, "group-by", "user", "Grouping (user, date, weekday or hour)")

	_ = viper.BindPFlag("input_format", cmd.Flags().Lookup("input-format"))
	_ = viper.BindPFlag("output_format", cmd.Flags().Lookup("output-format"))
	_ = viper.BindPFlag("group_by", cmd.Flags().Lookup("group-by"))

	return cmd
}
