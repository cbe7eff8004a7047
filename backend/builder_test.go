package backend_test

import (
	"bytes"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/fakebackend/backend"
	"github.com/katalvlaran/fakebackend/calibration"
	"github.com/katalvlaran/fakebackend/instruction"
	"github.com/katalvlaran/fakebackend/internal/testutil"
	"github.com/katalvlaran/fakebackend/topology"
)

func mustBuild(t *testing.T, name string, n int, opts ...backend.Option) *backend.Descriptor {
	t.Helper()
	opts = append([]backend.Option{backend.WithLogger(testutil.NewTestLogger(t))}, opts...)
	d, err := backend.Build(name, n, opts...)
	require.NoError(t, err)
	require.NotNil(t, d)

	return d
}

func TestBuild_DefaultConfiguration(t *testing.T) {
	t.Parallel()

	d := mustBuild(t, "Tashkent", 4)
	cfg := d.Configuration()

	assert.Equal(t, "Tashkent", d.Name())
	assert.Equal(t, "Tashkent", cfg.BackendName)
	assert.Equal(t, "0.0.0", cfg.BackendVersion)
	assert.Equal(t, []string{"id", "u1", "u2", "u3", "cx"}, cfg.BasisGates)
	assert.True(t, cfg.Local)
	assert.True(t, cfg.OpenPulse)
	assert.False(t, cfg.Simulator)
	assert.Equal(t, 4, cfg.NQubits)
	assert.Equal(t, 4, d.NQubits())
}

func TestBuild_OverrideParams(t *testing.T) {
	t.Parallel()

	for _, n := range []int{10, 40, 70} {
		d := mustBuild(t, "Tashkent", n,
			backend.WithBasisGates("u1"),
			backend.WithSingleQubitGates("u1"),
			backend.WithQubitT1(99),
			backend.WithQubitT2(146),
			backend.WithQubitFrequency(5),
			backend.WithQubitReadoutError(0.01),
		)
		props := d.Properties()

		assert.Len(t, props.Gates, n, "n=%d", n)
		require.Len(t, props.Qubits, n)
		for q := 0; q < n; q++ {
			t1, err := props.T1(q)
			require.NoError(t, err)
			t2, _ := props.T2(q)
			f, _ := props.Frequency(q)
			ro, _ := props.ReadoutError(q)
			assert.Equal(t, []float64{99, 146, 5, 0.01}, []float64{t1, t2, f, ro}, "n=%d qubit=%d", n, q)
		}
		for _, g := range props.Gates {
			assert.Equal(t, "u1", g.Gate)
		}
	}
}

func TestBuild_GateCounts(t *testing.T) {
	t.Parallel()

	d := mustBuild(t, "Tashkent", 4)
	assert.Len(t, d.Properties().Gates, 22)

	d = mustBuild(t, "Tashkent", 4, backend.WithBasisGates("u1", "u2", "cx"))
	props := d.Properties()
	assert.Len(t, props.Gates, 14)

	cx := 0
	for _, g := range props.Gates {
		if g.Gate == "cx" {
			cx++
		}
	}
	assert.Equal(t, 6, cx)
}

func TestBuild_TenQubitRecords(t *testing.T) {
	t.Parallel()

	d := mustBuild(t, "Tashkent", 10)

	cfg := d.Configuration()
	assert.Equal(t, [][]int{{0, 1, 2, 3, 4, 5, 6, 7, 8, 9}}, cfg.MeasMap)
	assert.Len(t, cfg.Hamiltonian.Qub, 10)
	assert.Len(t, cfg.Hamiltonian.Vars, 30)
	assert.Len(t, cfg.UChannelLO, 10)
	assert.Len(t, cfg.MeasLORange, 10)
	assert.Len(t, cfg.QubitLORange, 10)
	assert.Equal(t, topology.MustGenerate(10), cfg.CouplingMap)
	assert.Equal(t,
		[][]int{{0, 1}, {1, 2}, {2, 3}, {0, 4}, {2, 6}, {4, 5}, {5, 6}, {6, 7}, {5, 9}, {8, 9}},
		cfg.CouplingMap.Pairs())

	defs := d.Defaults()
	assert.Len(t, defs.MeasFreqEst, 10)
	assert.Len(t, defs.QubitFreqEst, 10)
	assert.Len(t, defs.CmdDef, 50)
}

func TestBuild_ConfigurationMetadata(t *testing.T) {
	t.Parallel()

	d := mustBuild(t, "Tashkent", 3, backend.WithQubitFrequency(5), backend.WithDt(2))
	cfg := d.Configuration()

	assert.Equal(t, 2.0, cfg.Dt)
	assert.Equal(t, backend.DefaultDtm, cfg.Dtm)
	assert.Equal(t, backend.DefaultMaxShots, cfg.MaxShots)
	assert.True(t, cfg.Memory)
	assert.False(t, cfg.Conditional)
	assert.Equal(t, 3, cfg.NUChannels)
	for q := 0; q < 3; q++ {
		assert.Equal(t, [2]float64{4.5, 5.5}, cfg.QubitLORange[q])
		assert.Equal(t, [2]float64{6.0, 7.0}, cfg.MeasLORange[q])
		assert.Equal(t, backend.UChannelLO{Q: q, Scale: 1}, cfg.UChannelLO[q])
		assert.Equal(t, 2, cfg.Hamiltonian.Qub[q])
	}
	names := make([]string, 0, 9)
	for _, v := range cfg.Hamiltonian.Vars {
		names = append(names, v.Name)
	}
	assert.Equal(t, []string{"wq0", "delta0", "omegad0", "wq1", "delta1", "omegad1", "wq2", "delta2", "omegad2"}, names)
	_, ok := cfg.Hamiltonian.Var("wq2")
	assert.True(t, ok)
	_, ok = cfg.Hamiltonian.Var("wq3")
	assert.False(t, ok)

	require.Len(t, cfg.Gates, 5)
	u3, ok := cfg.Gate("u3")
	require.True(t, ok)
	assert.Equal(t, []string{"theta", "phi", "lambda"}, u3.Parameters)
	assert.Equal(t, [][]int{{0}, {1}, {2}}, u3.CouplingMap)
	cx, ok := cfg.Gate("cx")
	require.True(t, ok)
	assert.Equal(t, cfg.CouplingMap.Pairs(), cx.CouplingMap)
	_, ok = cfg.Gate("swap")
	assert.False(t, ok)
}

func TestBuild_ExplicitCouplingMap(t *testing.T) {
	t.Parallel()

	pairs := [][]int{{0, 1}, {1, 2}, {2, 3}}
	cm, _, ok := topology.FromPairs(pairs)
	require.True(t, ok)

	d := mustBuild(t, "Tashkent", 4, backend.WithCouplingMap(cm))

	assert.Equal(t, pairs, d.Configuration().CouplingMap.Pairs())
	assert.Equal(t, pairs, d.Defaults().CommandQubits("cx"))

	var cxTargets [][]int
	for _, g := range d.Properties().Gates {
		if g.Gate == "cx" {
			cxTargets = append(cxTargets, g.Qubits)
		}
	}
	assert.Equal(t, pairs, cxTargets)
}

func TestBuild_ExplicitEmptyCouplingMap(t *testing.T) {
	t.Parallel()

	d := mustBuild(t, "Tashkent", 3, backend.WithCouplingMap(nil))
	assert.Empty(t, d.Configuration().CouplingMap)
	assert.Len(t, d.Properties().Gates, 12)
}

func TestBuild_SingleQubit(t *testing.T) {
	t.Parallel()

	d := mustBuild(t, "Solo", 1)
	assert.Empty(t, d.Configuration().CouplingMap)
	assert.Len(t, d.Properties().Gates, 4)
	assert.Len(t, d.Defaults().CmdDef, 4)
	assert.Equal(t, [][]int{{0}}, d.Configuration().MeasMap)
}

func TestBuild_EmptyBasis(t *testing.T) {
	t.Parallel()

	d := mustBuild(t, "Bare", 5, backend.WithBasisGates())
	assert.Empty(t, d.Properties().Gates)
	assert.Empty(t, d.Defaults().CmdDef)
	assert.Empty(t, d.Configuration().Gates)
	assert.Len(t, d.Properties().Qubits, 5)
}

func TestBuild_RepeatedBasisGates(t *testing.T) {
	t.Parallel()

	d := mustBuild(t, "Twice", 4,
		backend.WithBasisGates("u1", "cx", "u1", "cx"),
		backend.WithSingleQubitGates("u1", "u1"),
	)
	cfg := d.Configuration()
	assert.Equal(t, []string{"u1", "cx"}, cfg.BasisGates)
	require.Len(t, cfg.Gates, 2)

	want := instruction.Count(1, 1, 4, len(cfg.CouplingMap))
	assert.Equal(t, 10, want)
	assert.Len(t, d.Properties().Gates, want)
	assert.Len(t, d.Defaults().CmdDef, want)
}

func TestBuild_SingleQubitOverrideOutsideBasis(t *testing.T) {
	t.Parallel()

	d := mustBuild(t, "X", 3,
		backend.WithBasisGates("u1", "cx"),
		backend.WithSingleQubitGates("u3"),
	)
	for _, g := range d.Properties().Gates {
		assert.Equal(t, "cx", g.Gate)
	}
	assert.Len(t, d.Properties().Gates, len(topology.MustGenerate(3)))
}

func TestBuild_RecordsAgree(t *testing.T) {
	t.Parallel()

	for _, n := range []int{1, 2, 5, 10, 17, 64} {
		d := mustBuild(t, "Agree", n, backend.WithBasisGates("u2", "cx", "cz", "u3"))
		props, defs, cfg := d.Properties(), d.Defaults(), d.Configuration()

		want := instruction.Count(2, 2, n, len(cfg.CouplingMap))
		require.Len(t, props.Gates, want, "n=%d", n)
		require.Len(t, defs.CmdDef, want, "n=%d", n)
		for i := range props.Gates {
			assert.Equal(t, props.Gates[i].Gate, defs.CmdDef[i].Name)
			assert.Equal(t, props.Gates[i].Qubits, defs.CmdDef[i].Qubits)
		}
		for q := 0; q < n; q++ {
			f, err := props.Frequency(q)
			require.NoError(t, err)
			assert.Equal(t, f, defs.QubitFreqEst[q])
		}
		for _, e := range cfg.CouplingMap {
			_, err := props.GateError("cx", e.Control(), e.Target())
			assert.NoError(t, err)
			assert.True(t, defs.HasCommand("cz", e.Control(), e.Target()))
			if !cfg.CouplingMap.Contains(e.Reverse()) {
				_, err = props.GateError("cx", e.Target(), e.Control())
				assert.ErrorIs(t, err, calibration.ErrGateNotFound)
			}
		}
	}
}

func TestBuild_Calibration(t *testing.T) {
	t.Parallel()

	date := time.Date(2024, time.May, 5, 10, 0, 0, 0, time.FixedZone("X", 3600))
	d := mustBuild(t, "Cal", 3,
		backend.WithVersion("1.2.3"),
		backend.WithSingleQubitGateError(0.002),
		backend.WithTwoQubitGateError(0.02),
		backend.WithDt(2),
		backend.WithCalibrationDate(date),
	)
	props := d.Properties()

	assert.Equal(t, "1.2.3", props.BackendVersion)
	assert.Equal(t, "1.2.3", d.Configuration().BackendVersion)
	assert.True(t, props.LastUpdateDate.Equal(date))
	assert.Equal(t, time.UTC, props.LastUpdateDate.Location())

	e, err := props.GateError("u2", 1)
	require.NoError(t, err)
	assert.Equal(t, 0.002, e)
	e, err = props.GateError("cx", 0, 1)
	require.NoError(t, err)
	assert.Equal(t, 0.02, e)
	l, err := props.GateLength("u1", 0)
	require.NoError(t, err)
	assert.Equal(t, float64(calibration.SingleQubitGateSamples)*2, l)
}

func TestBuild_Errors(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name  string
		bname string
		n     int
		opts  []backend.Option
		want  error
	}{
		{"empty name", "", 5, nil, backend.ErrEmptyName},
		{"zero qubits", "X", 0, nil, backend.ErrInvalidQubitCount},
		{"negative qubits", "X", -3, nil, backend.ErrInvalidQubitCount},
		{"empty version", "X", 2, []backend.Option{backend.WithVersion("")}, backend.ErrOptionViolation},
		{"zero T1", "X", 2, []backend.Option{backend.WithQubitT1(0)}, backend.ErrOptionViolation},
		{"negative T2", "X", 2, []backend.Option{backend.WithQubitT2(-1)}, backend.ErrOptionViolation},
		{"zero frequency", "X", 2, []backend.Option{backend.WithQubitFrequency(0)}, backend.ErrOptionViolation},
		{"readout above one", "X", 2, []backend.Option{backend.WithQubitReadoutError(1.5)}, backend.ErrOptionViolation},
		{"negative 1q error", "X", 2, []backend.Option{backend.WithSingleQubitGateError(-0.1)}, backend.ErrOptionViolation},
		{"2q error above one", "X", 2, []backend.Option{backend.WithTwoQubitGateError(2)}, backend.ErrOptionViolation},
		{"zero dt", "X", 2, []backend.Option{backend.WithDt(0)}, backend.ErrOptionViolation},
		{"zero date", "X", 2, []backend.Option{backend.WithCalibrationDate(time.Time{})}, backend.ErrOptionViolation},
		{"edge out of range", "X", 3, []backend.Option{backend.WithCouplingMap(topology.CouplingMap{{0, 3}})}, topology.ErrQubitOutOfRange},
		{"self loop", "X", 3, []backend.Option{backend.WithCouplingMap(topology.CouplingMap{{1, 1}})}, topology.ErrSelfLoop},
		{"unknown gate", "X", 3, []backend.Option{backend.WithBasisGates("u1", "magic")}, instruction.ErrUnsupportedGate},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			d, err := backend.Build(tc.bname, tc.n, tc.opts...)
			require.Error(t, err)
			assert.Nil(t, d)
			assert.ErrorIs(t, err, backend.ErrConfiguration)
			assert.ErrorIs(t, err, tc.want)
		})
	}
}

func TestBuild_FirstViolationWins(t *testing.T) {
	t.Parallel()

	_, err := backend.Build("X", 2, backend.WithQubitT1(-1), backend.WithDt(-1))
	require.ErrorIs(t, err, backend.ErrOptionViolation)
	assert.Contains(t, err.Error(), "T1")
	assert.NotContains(t, err.Error(), "dt")
}

func TestBuild_Idempotent(t *testing.T) {
	t.Parallel()

	b := backend.NewBuilder("Tashkent", 10, backend.WithBasisGates("u1", "u2", "cx"))
	d1, err := b.Build()
	require.NoError(t, err)
	d2, err := b.Build()
	require.NoError(t, err)
	d3, err := backend.Build("Tashkent", 10, backend.WithBasisGates("u1", "u2", "cx"))
	require.NoError(t, err)

	assert.NotSame(t, d1, d2)
	for _, other := range []*backend.Descriptor{d2, d3} {
		assert.Equal(t, d1.Configuration(), other.Configuration())
		assert.Equal(t, d1.Properties(), other.Properties())
		assert.Equal(t, d1.Defaults(), other.Defaults())
	}
}

func TestBuild_OptionInputsCopied(t *testing.T) {
	t.Parallel()

	basis := []string{"u1", "cx"}
	cm := topology.CouplingMap{{0, 1}}
	b := backend.NewBuilder("X", 2, backend.WithBasisGates(basis...), backend.WithCouplingMap(cm))
	basis[0] = "magic"
	cm[0] = topology.Edge{1, 1}

	d, err := b.Build()
	require.NoError(t, err)
	assert.Equal(t, []string{"u1", "cx"}, d.Configuration().BasisGates)
	assert.Equal(t, [][]int{{0, 1}}, d.Configuration().CouplingMap.Pairs())
}

func TestDescriptor_Immutable(t *testing.T) {
	t.Parallel()

	d := mustBuild(t, "Frozen", 5)

	cfg := d.Configuration()
	cfg.BasisGates[0] = "x"
	cfg.CouplingMap[0] = topology.Edge{4, 3}
	cfg.MeasMap[0][0] = 9
	cfg.Gates[0].CouplingMap[0][0] = 7
	cfg.Hamiltonian.Vars[0].Value = -1

	props := d.Properties()
	props.Qubits[0][0].Value = -1
	props.Gates[0].Qubits[0] = 4

	defs := d.Defaults()
	defs.CmdDef[0].Qubits[0] = 3
	defs.QubitFreqEst[0] = 0

	fresh := d.Configuration()
	assert.Equal(t, "id", fresh.BasisGates[0])
	assert.Equal(t, topology.MustGenerate(5)[0], fresh.CouplingMap[0])
	assert.Equal(t, 0, fresh.MeasMap[0][0])
	assert.Equal(t, 0, fresh.Gates[0].CouplingMap[0][0])
	assert.NotEqual(t, -1.0, fresh.Hamiltonian.Vars[0].Value)

	t1, _ := d.Properties().T1(0)
	assert.Equal(t, calibration.DefaultT1, t1)
	assert.Equal(t, []int{0}, d.Properties().Gates[0].Qubits)
	assert.Equal(t, []int{0}, d.Defaults().CmdDef[0].Qubits)
	assert.Equal(t, calibration.DefaultFrequency, d.Defaults().QubitFreqEst[0])
}

func TestBuild_Concurrent(t *testing.T) {
	t.Parallel()

	want, err := backend.Build("Shared", 12)
	require.NoError(t, err)

	const workers = 16
	got := make([]*backend.Descriptor, workers)
	var g errgroup.Group
	for i := 0; i < workers; i++ {
		g.Go(func() error {
			d, err := backend.Build("Shared", 12)
			if err != nil {
				return err
			}
			// Concurrent reads of one shared descriptor.
			_ = want.Configuration()
			_ = want.Defaults()
			got[i] = d
			return nil
		})
	}
	require.NoError(t, g.Wait())

	for _, d := range got {
		assert.Equal(t, want.Properties(), d.Properties())
		assert.Equal(t, want.Defaults(), d.Defaults())
	}
}

func TestBuild_Logging(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	_, err := backend.Build("Logged", 4, backend.WithLogger(logger))
	require.NoError(t, err)
	out := buf.String()
	assert.Contains(t, out, "coupling map resolved")
	assert.Contains(t, out, "backend=Logged")
	assert.Contains(t, out, "commands=22")

	// nil logger falls back to discard.
	_, err = backend.Build("Quiet", 2, backend.WithLogger(nil))
	assert.NoError(t, err)
}

func TestBackendInterface(t *testing.T) {
	t.Parallel()

	var b backend.Backend = mustBuild(t, "Iface", 2)
	assert.Equal(t, "Iface", b.Name())
	assert.Equal(t, 2, b.Configuration().NQubits)
	assert.Len(t, b.Properties().Qubits, 2)
	assert.Len(t, b.Defaults().MeasFreqEst, 2)
}
