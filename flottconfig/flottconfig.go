// Package flottconfig loads declarative input-set definitions for the
// T-transform engine from YAML files, so a batch run (e.g. comparing
// many file pairs for NTID/NTCD) can be described once instead of
// passed as repeated flags.
//
// The loader's shape is grounded on fiddeb-otlp_cardinality_checker's
// internal/patterns.LoadPatterns: read the whole file, unmarshal into
// a tagged struct, then validate and adapt into the engine-facing
// type.
package flottconfig

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/flottgo/flott"
)

// SourceSpec names one input within an InputSet.
type SourceSpec struct {
	Name string `yaml:"name"`
	Path string `yaml:"path"`
}

// InputSetFile is the on-disk YAML shape: a named set of sources plus
// the engine options to run them with.
type InputSetFile struct {
	Alphabet       string       `yaml:"alphabet"`
	Unit           string       `yaml:"unit"`
	Concatenate    bool         `yaml:"concatenate"`
	AppendSentinel bool         `yaml:"append_sentinel"`
	MaxLevels      int          `yaml:"max_levels"`
	Sources        []SourceSpec `yaml:"sources"`
}

// InputSet is the resolved, engine-ready form of an InputSetFile.
type InputSet struct {
	Config  flott.Config
	Sources []flott.InputSource
	Names   []string
}

// LoadSet reads path, parses it as YAML, and resolves it into an
// InputSet ready to be fed to flott.New/AddSource.
func LoadSet(path string) (*InputSet, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("flottconfig: reading %s: %w", path, err)
	}

	var file InputSetFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("flottconfig: parsing %s: %w", path, err)
	}

	cfg, err := resolveConfig(file)
	if err != nil {
		return nil, fmt.Errorf("flottconfig: %s: %w", path, err)
	}

	set := &InputSet{Config: cfg}
	for _, s := range file.Sources {
		if s.Path == "" {
			return nil, fmt.Errorf("flottconfig: %s: source %q has no path", path, s.Name)
		}
		set.Sources = append(set.Sources, flott.FileSource(s.Path))
		name := s.Name
		if name == "" {
			name = s.Path
		}
		set.Names = append(set.Names, name)
	}
	return set, nil
}

func resolveConfig(file InputSetFile) (flott.Config, error) {
	cfg := flott.DefaultConfig()
	cfg.Concatenate = file.Concatenate
	cfg.AppendSentinel = file.AppendSentinel
	cfg.MaxLevels = file.MaxLevels

	switch file.Alphabet {
	case "", "byte":
		cfg.Alphabet = flott.SymbolByte
	case "bit":
		cfg.Alphabet = flott.SymbolBit
	default:
		return cfg, fmt.Errorf("unknown alphabet %q", file.Alphabet)
	}

	switch file.Unit {
	case "", "bits":
		cfg.Unit = flott.UnitBits
	case "nats":
		cfg.Unit = flott.UnitNats
	default:
		return cfg, fmt.Errorf("unknown unit %q", file.Unit)
	}

	return cfg, nil
}
