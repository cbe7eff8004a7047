// Package commands implements the fakebackend subcommands.
package commands

import (
	"context"

	"github.com/katalvlaran/fakebackend/internal/cli/config"
)

// profileKey stores the resolved profile in a command context.
type profileKey struct{}

// WithProfile returns a context carrying p.
func WithProfile(ctx context.Context, p *config.Profile) context.Context {
	return context.WithValue(ctx, profileKey{}, p)
}

// profileFrom returns the profile stored by the root command, or the defaults.
func profileFrom(ctx context.Context) *config.Profile {
	if ctx != nil {
		if p, ok := ctx.Value(profileKey{}).(*config.Profile); ok && p != nil {
			return p
		}
	}
	d := config.Default()
	return &d
}
