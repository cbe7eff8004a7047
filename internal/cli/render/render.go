// Package render prints human-readable reports of backend descriptors.
// The output is a summary for people, not a serialization of the records.
package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/katalvlaran/fakebackend/backend"
	"github.com/katalvlaran/fakebackend/calibration"
	"github.com/katalvlaran/fakebackend/catalog"
	"github.com/katalvlaran/fakebackend/internal/cli/config"
	"github.com/katalvlaran/fakebackend/topology"
)

// Renderer writes tables in one output format.
type Renderer struct {
	w      io.Writer
	format string
}

// New returns a renderer for format (table, markdown or csv).
func New(w io.Writer, format string) *Renderer {
	return &Renderer{w: w, format: format}
}

// Section renders one named section, or every section for config.SectionAll.
func (r *Renderer) Section(b backend.Backend, section string) error {
	switch section {
	case config.SectionSummary:
		return r.Summary(b)
	case config.SectionTopology:
		return r.Topology(b)
	case config.SectionQubits:
		return r.Qubits(b)
	case config.SectionGates:
		return r.Gates(b)
	case config.SectionCommands:
		return r.Commands(b)
	case config.SectionAll:
		for _, s := range []func(backend.Backend) error{r.Summary, r.Topology, r.Qubits, r.Gates, r.Commands} {
			if err := s(b); err != nil {
				return err
			}
		}
		return nil
	default:
		return fmt.Errorf("render: unknown section %q", section)
	}
}

// Summary renders device-level facts as key/value rows.
func (r *Renderer) Summary(b backend.Backend) error {
	cfg := b.Configuration()
	props := b.Properties()
	defs := b.Defaults()
	st, err := topology.Analyze(cfg.CouplingMap, cfg.NQubits)
	if err != nil {
		return err
	}

	rows := []table.Row{
		{"name", b.Name()},
		{"version", cfg.BackendVersion},
		{"qubits", cfg.NQubits},
		{"basis gates", strings.Join(cfg.BasisGates, " ")},
		{"coupling edges", st.Edges},
		{"max degree", st.MaxDegree},
		{"connected", st.Connected},
		{"gate entries", len(props.Gates)},
		{"commands", len(defs.CmdDef)},
		{"dt (ns)", cfg.Dt},
		{"calibrated", props.LastUpdateDate.Format("2006-01-02")},
	}
	r.render("Summary", table.Row{"field", "value"}, rows)

	return nil
}

// Topology renders one row per coupling-map edge, in stored order.
func (r *Renderer) Topology(b backend.Backend) error {
	cfg := b.Configuration()
	rows := make([]table.Row, len(cfg.CouplingMap))
	for i, e := range cfg.CouplingMap {
		rows[i] = table.Row{i, e.Control(), e.Target()}
	}
	r.render("Coupling map", table.Row{"#", "control", "target"}, rows)

	return nil
}

// Qubits renders per-qubit calibration values.
func (r *Renderer) Qubits(b backend.Backend) error {
	props := b.Properties()
	defs := b.Defaults()
	rows := make([]table.Row, 0, len(props.Qubits))
	for q := range props.Qubits {
		row := table.Row{q}
		for _, name := range []string{calibration.NameT1, calibration.NameT2, calibration.NameFrequency, calibration.NameReadoutError} {
			v, err := props.QubitProperty(q, name)
			if err != nil {
				return err
			}
			row = append(row, v.Value)
		}
		row = append(row, defs.MeasFreqEst[q])
		rows = append(rows, row)
	}
	r.render("Qubits", table.Row{"qubit", "T1 (us)", "T2 (us)", "freq (GHz)", "readout err", "meas freq (GHz)"}, rows)

	return nil
}

// Gates renders one row per gate instance.
func (r *Renderer) Gates(b backend.Backend) error {
	props := b.Properties()
	rows := make([]table.Row, 0, len(props.Gates))
	for _, g := range props.Gates {
		errRate, err := props.GateError(g.Gate, g.Qubits...)
		if err != nil {
			return err
		}
		length, err := props.GateLength(g.Gate, g.Qubits...)
		if err != nil {
			return err
		}
		rows = append(rows, table.Row{g.Name, g.Gate, qubitList(g.Qubits), errRate, length})
	}
	r.render("Gates", table.Row{"name", "gate", "qubits", "error", "length (ns)"}, rows)

	return nil
}

// Commands renders the command catalog followed by the measure command.
func (r *Renderer) Commands(b backend.Backend) error {
	defs := b.Defaults()
	rows := make([]table.Row, 0, len(defs.CmdDef)+1)
	for _, c := range append(defs.CmdDef, defs.Measure) {
		rows = append(rows, table.Row{c.Name, qubitList(c.Qubits), defs.Duration(c), sequence(c)})
	}
	r.render("Commands", table.Row{"command", "qubits", "duration", "sequence"}, rows)

	return nil
}

// SweepRow is one line of a sweep report.
type SweepRow struct {
	Name      string
	Qubits    int
	Edges     int
	MaxDegree int
	Gates     int
	Commands  int
}

// Sweep renders a sweep report.
func (r *Renderer) Sweep(rows []SweepRow) {
	out := make([]table.Row, len(rows))
	for i, s := range rows {
		out[i] = table.Row{s.Name, s.Qubits, s.Edges, s.MaxDegree, s.Gates, s.Commands}
	}
	r.render("Sweep", table.Row{"name", "qubits", "edges", "max degree", "gates", "commands"}, out)
}

func (r *Renderer) render(title string, header table.Row, rows []table.Row) {
	t := table.NewWriter()
	t.SetOutputMirror(r.w)
	t.AppendHeader(header)
	t.AppendRows(rows)

	switch r.format {
	case config.OutputCSV:
		t.RenderCSV()
	case config.OutputMarkdown:
		_, _ = fmt.Fprintf(r.w, "### %s\n\n", title)
		t.RenderMarkdown()
		_, _ = fmt.Fprintln(r.w)
	default:
		t.SetTitle(title)
		t.SetStyle(table.StyleLight)
		t.Render()
	}
}

// qubitList joins targets with "-" so a cell never holds the CSV delimiter.
func qubitList(qs []int) string {
	parts := make([]string, len(qs))
	for i, q := range qs {
		parts[i] = fmt.Sprint(q)
	}

	return strings.Join(parts, "-")
}

func sequence(c catalog.Command) string {
	parts := make([]string, len(c.Sequence))
	for i, in := range c.Sequence {
		if in.Ch == "" {
			parts[i] = fmt.Sprintf("%s@%d", in.Name, in.T0)
			continue
		}
		parts[i] = fmt.Sprintf("%s(%s)@%d", in.Name, in.Ch, in.T0)
	}

	return strings.Join(parts, " ")
}
