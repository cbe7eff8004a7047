package commands

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/fakebackend/backend"
	"github.com/katalvlaran/fakebackend/internal/cli/config"
	"github.com/katalvlaran/fakebackend/internal/cli/render"
	"github.com/katalvlaran/fakebackend/internal/ctxlog"
	"github.com/katalvlaran/fakebackend/topology"
)

// NewSweepCommand creates the sweep command.
func NewSweepCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sweep [name]",
		Short: "Build one backend per qubit count and compare them",
		Long: `Build a backend for every qubit count in --counts, at most --jobs at a time,
and print one row per device. Rows keep the order of --counts.`,
		Example: `  fakebackend sweep --counts 10,40,70
  fakebackend sweep lattice --counts 5,9,16,25 --basis-gates u2,cx -o csv`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p := profileFrom(cmd.Context())
			name := p.Name
			if len(args) > 0 {
				name = args[0]
			}

			rows, err := Sweep(cmd.Context(), p, name)
			if err != nil {
				return err
			}
			render.New(cmd.OutOrStdout(), p.Output).Sweep(rows)

			return nil
		},
	}

	cmd.Flags().IntSlice("counts", config.DefaultCounts(), "Qubit counts to build")
	cmd.Flags().IntP("jobs", "j", config.DefaultJobs, "Maximum concurrent builds")
	addDeviceFlags(cmd.Flags())

	return cmd
}

// Sweep builds one descriptor per count in p.Counts concurrently and returns
// the report rows in count order. The first failure cancels the rest.
func Sweep(ctx context.Context, p *config.Profile, name string) ([]render.SweepRow, error) {
	if len(p.Counts) == 0 {
		return nil, fmt.Errorf("%w: no qubit counts to sweep", config.ErrInvalidProfile)
	}
	logger := ctxlog.FromContext(ctx)
	opts, err := p.Options(logger)
	if err != nil {
		return nil, err
	}

	rows := make([]render.SweepRow, len(p.Counts))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(max(p.Jobs, 1))
	for i, n := range p.Counts {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			d, err := backend.Build(name, n, opts...)
			if err != nil {
				return fmt.Errorf("sweep %d qubits: %w", n, err)
			}
			cfg := d.Configuration()
			st, err := topology.Analyze(cfg.CouplingMap, n)
			if err != nil {
				return err
			}
			rows[i] = render.SweepRow{
				Name:      d.Name(),
				Qubits:    n,
				Edges:     st.Edges,
				MaxDegree: st.MaxDegree,
				Gates:     len(d.Properties().Gates),
				Commands:  len(d.Defaults().CmdDef),
			}
			logger.Debug("sweep entry built", "qubits", n)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return rows, nil
}
