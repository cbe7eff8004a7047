package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/fakebackend/internal/cli/config"
)

// NewProfileCommand creates the profile command group.
func NewProfileCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "profile",
		Short: "Manage fakebackend profiles",
	}
	cmd.AddCommand(newProfileInitCommand())

	return cmd
}

func newProfileInitCommand() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "init [path]",
		Short: "Write a profile with every default spelled out",
		Long: `Write a YAML profile holding the default value of every key. Edit it and
pass it with --config, or keep it as ./fakebackend.yaml to have it picked up
automatically.`,
		Example: `  fakebackend profile init
  fakebackend profile init devices/lattice.yaml --force`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := config.DefaultFileNames[0]
			if len(args) > 0 {
				path = args[0]
			}
			if err := WriteProfile(path, config.Default(), force); err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Wrote profile %s\n", path)
			return nil
		},
	}
	cmd.Flags().BoolVar(&force, "force", false, "Overwrite an existing file")

	return cmd
}

// WriteProfile marshals p to YAML at path. An existing file is kept unless force is set.
func WriteProfile(path string, p config.Profile, force bool) error {
	if _, err := os.Stat(path); err == nil && !force {
		return fmt.Errorf("%s already exists. Use --force to overwrite", path)
	}

	data, err := yaml.Marshal(p)
	if err != nil {
		return fmt.Errorf("failed to encode profile: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}

	return nil
}
