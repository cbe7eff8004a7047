package commands

import (
	"github.com/spf13/pflag"

	"github.com/katalvlaran/fakebackend/internal/cli/config"
)

// addDeviceFlags registers the device overrides shared by build and sweep.
// Values are read back through the profile loader, so defaults here are
// placeholders; only flags the user sets take effect.
func addDeviceFlags(fs *pflag.FlagSet) {
	d := config.Default()
	fs.String("backend-version", d.BackendVersion, "Backend version string")
	fs.StringSlice("basis-gates", d.BasisGates, "Native gate set, e.g. u1,u2,cx")
	fs.StringSlice("single-qubit-gates", nil, "Restrict calibrated one-qubit gates to this subset")
	fs.String("coupling-map", "", `Explicit coupling map, e.g. "0-1,1-2" (default: generated layout)`)
	fs.Float64("t1", d.T1, "T1 of every qubit (us)")
	fs.Float64("t2", d.T2, "T2 of every qubit (us)")
	fs.Float64("frequency", d.Frequency, "Frequency of every qubit (GHz)")
	fs.Float64("readout-error", d.ReadoutError, "Readout error of every qubit")
	fs.Float64("dt", d.Dt, "Sample time (ns)")
}
