package catalog_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/fakebackend/calibration"
	"github.com/katalvlaran/fakebackend/catalog"
	"github.com/katalvlaran/fakebackend/instruction"
	"github.com/katalvlaran/fakebackend/topology"
)

// fixture enumerates basis over cm and synthesizes matching properties.
func fixture(t *testing.T, basis []string, n int, cm topology.CouplingMap) (calibration.Properties, []instruction.Instruction) {
	t.Helper()
	instrs, err := instruction.Plan{BasisGates: basis}.Enumerate(n, cm)
	require.NoError(t, err)

	return calibration.Synthesize("Tashkent", "0.0.0", n, instrs, calibration.DefaultParams()), instrs
}

func TestGenerate_CatalogLength(t *testing.T) {
	t.Parallel()

	basis := []string{"id", "u1", "u2", "u3", "cx"}
	for _, n := range []int{1, 2, 4, 10, 40} {
		cm := topology.MustGenerate(n)
		props, instrs := fixture(t, basis, n, cm)
		d, err := catalog.Generate(props, instrs)
		require.NoError(t, err)

		assert.Len(t, d.CmdDef, 4*n+len(cm), "n=%d", n)
		assert.Len(t, d.QubitFreqEst, n)
		assert.Len(t, d.MeasFreqEst, n)
		for i, c := range d.CmdDef {
			assert.Equal(t, instrs[i].Gate, c.Name)
			assert.Equal(t, instrs[i].Qubits, c.Qubits)
		}
	}
}

func TestGenerate_TenQubits(t *testing.T) {
	t.Parallel()

	props, instrs := fixture(t, []string{"id", "u1", "u2", "u3", "cx"}, 10, topology.MustGenerate(10))
	d, err := catalog.Generate(props, instrs)
	require.NoError(t, err)

	assert.Len(t, d.CmdDef, 50)
	for q, f := range d.QubitFreqEst {
		assert.Equal(t, calibration.DefaultFrequency, f, "qubit %d", q)
	}
	assert.InDelta(t, catalog.MeasFreqLow, d.MeasFreqEst[0], 1e-12)
	assert.InDelta(t, catalog.MeasFreqHigh, d.MeasFreqEst[9], 1e-12)
	for i := 1; i < len(d.MeasFreqEst); i++ {
		assert.Greater(t, d.MeasFreqEst[i], d.MeasFreqEst[i-1])
	}
}

func TestGenerate_SingleQubit(t *testing.T) {
	t.Parallel()

	props, instrs := fixture(t, []string{"u1", "cx"}, 1, nil)
	d, err := catalog.Generate(props, instrs)
	require.NoError(t, err)

	assert.Equal(t, []float64{catalog.MeasFreqLow}, d.MeasFreqEst)
	require.Len(t, d.CmdDef, 1)
	assert.Equal(t, []int{0}, d.Measure.Qubits)
}

func TestGenerate_Schedules(t *testing.T) {
	t.Parallel()

	props, instrs := fixture(t, []string{"u2", "cx"}, 3, topology.CouplingMap{{0, 1}, {2, 1}})
	d, err := catalog.Generate(props, instrs)
	require.NoError(t, err)

	u2, err := d.Command("u2", 2)
	require.NoError(t, err)
	assert.Equal(t, []catalog.PulseInstruction{
		{Name: catalog.InstrFrameChange, Ch: "d2", T0: 0, Phase: "-P0"},
		{Name: catalog.PulseDrive, Ch: "d2", T0: 0},
	}, u2.Sequence)
	assert.Equal(t, calibration.SingleQubitGateSamples, d.Duration(u2))

	cx, err := d.Command("cx", 2, 1)
	require.NoError(t, err)
	assert.Equal(t, []catalog.PulseInstruction{
		{Name: catalog.PulseDrive, Ch: "d2", T0: 0},
		{Name: catalog.PulseCrossRes, Ch: "u2", T0: 10},
		{Name: catalog.PulseDrive, Ch: "d1", T0: 20},
		{Name: catalog.InstrFrameChange, Ch: "d1", T0: 20, Phase: "2.1"},
	}, cx.Sequence)
	assert.Equal(t, calibration.TwoQubitGateSamples, d.Duration(cx))

	for _, in := range append(u2.Sequence, cx.Sequence...) {
		if in.Name == catalog.InstrFrameChange {
			continue
		}
		_, ok := d.Pulse(in.Name)
		assert.True(t, ok, "pulse %q missing from library", in.Name)
	}
}

func TestGenerate_GateLengthMatchesSchedule(t *testing.T) {
	t.Parallel()

	props, instrs := fixture(t, []string{"u1", "u3", "cx", "cz"}, 5, topology.MustGenerate(5))
	d, err := catalog.Generate(props, instrs)
	require.NoError(t, err)

	drive, ok := d.Pulse(catalog.PulseDrive)
	require.True(t, ok)
	assert.Len(t, drive.Samples, instruction.DrivePulseSamples)

	for i, cmd := range d.CmdDef {
		length, err := props.GateLength(cmd.Name, cmd.Qubits...)
		require.NoError(t, err)
		assert.InDelta(t, float64(d.Duration(cmd))*calibration.DefaultDt, length, 1e-9, instrs[i].Name())
	}
}

func TestGenerate_Measure(t *testing.T) {
	t.Parallel()

	props, instrs := fixture(t, []string{"u1"}, 3, nil)
	d, err := catalog.Generate(props, instrs)
	require.NoError(t, err)

	m := d.Measure
	assert.Equal(t, catalog.CommandMeasure, m.Name)
	assert.Equal(t, []int{0, 1, 2}, m.Qubits)
	require.Len(t, m.Sequence, 4)
	assert.Equal(t, catalog.InstrAcquire, m.Sequence[0].Name)
	assert.Equal(t, []int{0, 1, 2}, m.Sequence[0].MemorySlot)
	assert.Equal(t, catalog.AcquireDuration, m.Sequence[0].Duration)
	for q := 0; q < 3; q++ {
		assert.Equal(t, "m"+string(rune('0'+q)), m.Sequence[q+1].Ch)
	}
	assert.False(t, d.HasCommand(catalog.CommandMeasure, 0, 1, 2))
}

func TestGenerate_MissingFrequency(t *testing.T) {
	t.Parallel()

	props, instrs := fixture(t, []string{"u1"}, 2, nil)
	props.Qubits[1] = props.Qubits[1][:2] // drop frequency and readout_error
	_, err := catalog.Generate(props, instrs)
	assert.ErrorIs(t, err, calibration.ErrPropertyNotFound)
}

func TestLookup(t *testing.T) {
	t.Parallel()

	cm := topology.CouplingMap{{0, 1}, {1, 2}, {2, 3}}
	props, instrs := fixture(t, []string{"u1", "cx"}, 4, cm)
	d, err := catalog.Generate(props, instrs)
	require.NoError(t, err)

	assert.Equal(t, [][]int{{0, 1}, {1, 2}, {2, 3}}, d.CommandQubits("cx"))
	assert.Equal(t, [][]int{{0}, {1}, {2}, {3}}, d.CommandQubits("u1"))
	assert.Nil(t, d.CommandQubits("u3"))

	assert.True(t, d.HasCommand("cx", 1, 2))
	assert.False(t, d.HasCommand("cx", 2, 1))
	_, err = d.Command("cx", 3, 2)
	assert.ErrorIs(t, err, catalog.ErrCommandNotFound)
	_, err = d.Command("u1")
	assert.ErrorIs(t, err, catalog.ErrCommandNotFound)

	_, ok := d.Pulse("gaussian")
	assert.False(t, ok)
}

func TestClone_Independent(t *testing.T) {
	t.Parallel()

	props, instrs := fixture(t, []string{"u1", "cx"}, 2, topology.CouplingMap{{0, 1}})
	d, err := catalog.Generate(props, instrs)
	require.NoError(t, err)

	c := d.Clone()
	require.Equal(t, d, c)

	c.QubitFreqEst[0] = 0
	c.CmdDef[2].Qubits[0] = 9
	c.CmdDef[0].Sequence[0].Ch = "x"
	c.PulseLibrary[0].Samples[0] = 1
	c.Measure.Sequence[0].MemorySlot[0] = 5

	assert.Equal(t, calibration.DefaultFrequency, d.QubitFreqEst[0])
	assert.Equal(t, []int{0, 1}, d.CmdDef[2].Qubits)
	assert.Equal(t, "d0", d.CmdDef[0].Sequence[0].Ch)
	assert.Equal(t, complex128(0), d.PulseLibrary[0].Samples[0])
	assert.Equal(t, 0, d.Measure.Sequence[0].MemorySlot[0])

	got, err := d.Command("cx", 0, 1)
	require.NoError(t, err)
	got.Sequence[0].T0 = 99
	assert.Equal(t, 0, d.CmdDef[2].Sequence[0].T0)
}
