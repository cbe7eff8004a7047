package config

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/v2"
	"github.com/spf13/pflag"

	"github.com/katalvlaran/fakebackend/backend"
	"github.com/katalvlaran/fakebackend/topology"
)

// EnvPrefix prefixes every environment override, e.g. FAKEBACKEND_QUBITS.
const EnvPrefix = "FAKEBACKEND_"

// DefaultFileNames are searched in the working directory when no profile
// path is given.
var DefaultFileNames = []string{"fakebackend.yaml", "fakebackend.yml"}

// skipFlags never reach the profile.
var skipFlags = map[string]bool{"config": true, "help": true, "force": true}

// listKeys are comma-separated when read from the environment.
var listKeys = map[string]bool{"basis_gates": true, "single_qubit_gates": true, "counts": true}

// findConfigFile returns explicit, or the first default file that exists.
func findConfigFile(explicit string) string {
	if explicit != "" {
		return explicit
	}
	for _, name := range DefaultFileNames {
		if _, err := os.Stat(name); err == nil {
			return name
		}
	}

	return ""
}

// Load resolves the profile from defaults, the profile file, the environment
// and the changed flags in flags (nil allowed). It returns the profile and
// the file actually read ("" when none).
func Load(path string, flags *pflag.FlagSet) (*Profile, string, error) {
	k := koanf.New(".")

	// 1. Defaults
	if err := k.Load(confmap.Provider(defaultMap(), "."), nil); err != nil {
		return nil, "", fmt.Errorf("failed to load defaults: %w", err)
	}

	// 2. Profile file
	used := findConfigFile(path)
	if used != "" {
		if err := k.Load(file.Provider(used), yaml.Parser()); err != nil {
			return nil, "", fmt.Errorf("error reading profile %s: %w", used, err)
		}
	}

	// 3. Environment: FAKEBACKEND_BASIS_GATES=u1,cx -> basis_gates: [u1 cx]
	if err := k.Load(env.ProviderWithValue(EnvPrefix, ".", func(key, value string) (string, interface{}) {
		key = strings.ToLower(strings.TrimPrefix(key, EnvPrefix))
		if listKeys[key] {
			return key, splitList(value)
		}
		return key, value
	}), nil); err != nil {
		return nil, "", fmt.Errorf("failed to load env vars: %w", err)
	}

	// 4. Flags, only those explicitly set
	if flags != nil {
		if err := k.Load(posflag.ProviderWithFlag(flags, ".", k, func(f *pflag.Flag) (string, interface{}) {
			if !f.Changed || skipFlags[f.Name] {
				return "", nil
			}
			// Transform kebab-case to snake_case for config keys
			return strings.ReplaceAll(f.Name, "-", "_"), posflag.FlagVal(flags, f)
		}), nil); err != nil {
			return nil, "", fmt.Errorf("failed to load flags: %w", err)
		}
	}

	var p Profile
	if err := k.Unmarshal("", &p); err != nil {
		return nil, "", fmt.Errorf("unable to decode profile: %w", err)
	}
	if err := p.Validate(); err != nil {
		return nil, "", err
	}

	return &p, used, nil
}

// ParseCouplingMap parses "0-1,1-2" into a coupling map. Blank input yields
// nil, meaning "use the generated layout".
func ParseCouplingMap(s string) (topology.CouplingMap, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}

	parts := strings.Split(s, ",")
	cm := make(topology.CouplingMap, 0, len(parts))
	for _, part := range parts {
		a, b, ok := strings.Cut(strings.TrimSpace(part), "-")
		if !ok {
			return nil, fmt.Errorf("%w: coupling map edge %q (want control-target)", ErrInvalidProfile, part)
		}
		control, errA := strconv.Atoi(strings.TrimSpace(a))
		target, errB := strconv.Atoi(strings.TrimSpace(b))
		if errA != nil || errB != nil {
			return nil, fmt.Errorf("%w: coupling map edge %q is not numeric", ErrInvalidProfile, part)
		}
		cm = append(cm, topology.Edge{control, target})
	}

	return cm, nil
}

// FormatCouplingMap renders cm in the form ParseCouplingMap accepts.
func FormatCouplingMap(cm topology.CouplingMap) string {
	parts := make([]string, len(cm))
	for i, e := range cm {
		parts[i] = e.String()
	}

	return strings.Join(parts, ",")
}

// Options converts the device fields of p into builder options.
func (p *Profile) Options(logger *slog.Logger) ([]backend.Option, error) {
	opts := []backend.Option{
		backend.WithLogger(logger),
		backend.WithVersion(p.BackendVersion),
		backend.WithBasisGates(p.BasisGates...),
		backend.WithQubitT1(p.T1),
		backend.WithQubitT2(p.T2),
		backend.WithQubitFrequency(p.Frequency),
		backend.WithQubitReadoutError(p.ReadoutError),
		backend.WithDt(p.Dt),
	}
	if p.SingleQubitGates != nil {
		opts = append(opts, backend.WithSingleQubitGates(p.SingleQubitGates...))
	}

	cm, err := ParseCouplingMap(p.CouplingMap)
	if err != nil {
		return nil, err
	}
	if cm != nil {
		opts = append(opts, backend.WithCouplingMap(cm))
	}

	return opts, nil
}

// splitList splits a comma-separated value, dropping blanks.
func splitList(s string) []string {
	out := []string{}
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}

	return out
}
