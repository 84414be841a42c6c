package cli

import (
	"strings"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"vkstatus/internal/app"
	"vkstatus/internal/types"
)

type trackOptions struct {
	TimeoutSeconds int
	WatchFile      string
	LogPath        string
	LogFormat      string
}

func newTrackCommand() *cobra.Command {
	opts := trackOptions{}
	cmd := &cobra.Command{
		Use:   "track [UID...]",
		Short: "Track status transitions at a fixed interval",
		RunE: func(cmd *cobra.Command, args []string) error {
			service := newAppService()
			return service.Track(cmd.Context(), app.TrackRequest{
				UserIDs:   args,
				WatchFile: resolveString(cmd, opts.WatchFile, "watch_file", "watch-file"),
				Interval:  time.Duration(resolveInt(cmd, opts.TimeoutSeconds, "timeout", "timeout")) * time.Second,
				LogPath:   resolveString(cmd, opts.LogPath, "log_path", "log"),
				LogFormat: types.LogFormat(resolveString(cmd, opts.LogFormat, "log_format", "format")),
			})
		},
	}

	cmd.Flags().IntVarP(&opts.TimeoutSeconds, "timeout", "t", 0, "Refresh interval in seconds")
	cmd.Flags().StringVar(&opts.WatchFile, "watch-file", "", "YAML watch list path")
	cmd.Flags().StringVar(&opts.LogPath, "log", "", "Status log path")
	cmd.Flags().StringVar(&opts.LogFormat, "format", "csv", "Status log format (csv or json)")

	_ = viper.BindPFlag("timeout", cmd.Flags().Lookup("timeout"))
	_ = viper.BindPFlag("watch_file", cmd.Flags().Lookup("watch-file"))
	_ = viper.BindPFlag("log_path", cmd.Flags().Lookup("log"))
	_ = viper.BindPFlag("log_format", cmd.Flags().Lookup("format"))

	return cmd
}

func statusRequest(args []string) app.StatusRequest {
	return app.StatusRequest{UserIDs: args}
}

func resolveString(cmd *cobra.Command, value string, key string, flagName string) string {
	if cmd == nil {
		if value != "" {
			return value
		}
		return viper.GetString(key)
	}
	if flagChanged(cmd, flagName) {
		return value
	}
	return viper.GetString(key)
}

func resolveStrings(cmd *cobra.Command, values []string, key string, flagName string) []string {
	if cmd == nil {
		if len(values) > 0 {
			return values
		}
		return viper.GetStringSlice(key)
	}
	if flagChanged(cmd, flagName) {
		return values
	}
	return viper.GetStringSlice(key)
}

func resolveInt(cmd *cobra.Command, value int, key string, flagName string) int {
	if cmd == nil {
		if value != 0 {
			return value
		}
		return viper.GetInt(key)
	}
	if flagChanged(cmd, flagName) {
		return value
	}
	return viper.GetInt(key)
}

func flagChanged(cmd *cobra.Command, name string) bool {
	if cmd == nil || strings.TrimSpace(name) == "" {
		return false
	}
	flag := cmd.Flags().Lookup(name)
	return flag != nil && flag.Changed
}
