package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"vkstatus/internal/app"
	"vkstatus/internal/types"
)

type resolveOptions struct {
	PythonVersion string
	Ecosystem     string
	Candidates    []string
}

func newResolveCommand() *cobra.Command {
	opts := resolveOptions{}
	cmd := &cobra.Command{
		Use:   "resolve REQUIREMENTS_FILE",
		Short: "Resolve version constraints for an environment",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			service := newAppService()
			result, err := service.Resolve(cmd.Context(), app.ResolveRequest{
				Path:          args[0],
				PythonVersion: resolveString(cmd, opts.PythonVersion, "python_version", "python-version"),
				Ecosystem:     types.Ecosystem(resolveString(cmd, opts.Ecosystem, "ecosystem", "ecosystem")),
				Candidates:    resolveStrings(cmd, opts.Candidates, "candidates", "candidates"),
			})
			if err != nil {
				return err
			}
			for _, resolved := range result.Resolved {
				if resolved.Version != "" {
					fmt.Printf("%s==%s\n", resolved.Name, resolved.Version)
					continue
				}
				fmt.Printf("%s%s\n", resolved.Name, resolved.Spec)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&opts.PythonVersion, "python-version", "", "Interpreter version for marker evaluation")
	cmd.Flags().StringVar(&opts.Ecosystem, "ecosystem", "pip", "Version semantics (pip or apt)")
	cmd.Flags().StringSliceVar(&opts.Candidates, "candidates", nil, "Candidate versions to select from")

	_ = viper.BindPFlag("python_version", cmd.Flags().Lookup("python-version"))
	_ = viper.BindPFlag("ecosystem", cmd.Flags().Lookup("ecosystem"))
	_ = viper.BindPFlag("candidates", cmd.Flags().Lookup("candidates"))

	return cmd
}
