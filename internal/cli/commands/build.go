package commands

import (
	"github.com/spf13/cobra"

	"github.com/katalvlaran/fakebackend/backend"
	"github.com/katalvlaran/fakebackend/internal/cli/config"
	"github.com/katalvlaran/fakebackend/internal/cli/render"
	"github.com/katalvlaran/fakebackend/internal/ctxlog"
)

// NewBuildCommand creates the build command.
func NewBuildCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "build [name]",
		Short: "Build a synthetic backend and print a report",
		Long: `Build a synthetic backend descriptor from the resolved profile and print
one section of it: summary, topology, qubits, gates, commands or all.`,
		Example: `  # Default 10-qubit device
  fakebackend build

  # 4 qubits, restricted basis, markdown report of the gate table
  fakebackend build tiny --qubits 4 --basis-gates u1,u2,cx --section gates -o markdown

  # Explicit coupling map
  fakebackend build line --qubits 4 --coupling-map "0-1,1-2,2-3" --section topology`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p := profileFrom(cmd.Context())
			name := p.Name
			if len(args) > 0 {
				name = args[0]
			}

			logger := ctxlog.FromContext(cmd.Context())
			opts, err := p.Options(logger)
			if err != nil {
				return err
			}
			d, err := backend.Build(name, p.Qubits, opts...)
			if err != nil {
				return err
			}
			logger.Info("backend built", "name", d.Name(), "qubits", d.NQubits())

			return render.New(cmd.OutOrStdout(), p.Output).Section(d, p.Section)
		},
	}

	cmd.Flags().IntP("qubits", "n", config.DefaultQubits, "Number of qubits")
	cmd.Flags().StringP("section", "s", config.DefaultSection, "Report section (summary|topology|qubits|gates|commands|all)")
	addDeviceFlags(cmd.Flags())

	_ = cmd.RegisterFlagCompletionFunc("section", func(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
		return config.Sections(), cobra.ShellCompDirectiveNoFileComp
	})

	return cmd
}
