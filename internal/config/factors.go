package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/Masterminds/semver/v3"
	"gopkg.in/yaml.v3"

	"github.com/rshade/esgfocus/internal/emissions"
)

// SupportedFactorSetVersions is the semver constraint a factor-set file's
// version must satisfy.
const SupportedFactorSetVersions = ">= 1.0.0, < 2.0.0"

// ErrIncompatibleFactorSet is returned for factor-set files whose version
// is missing, malformed, or outside SupportedFactorSetVersions.
const ErrIncompatibleFactorSet = constError("incompatible factor set")

// FactorSetFile is the YAML form of an emissions.FactorSet.
//
//	name: india-cea-defra
//	version: 1.1.0
//	grid_factor: 0.00082
//	scope1:
//	  - category: Diesel (litres)
//	    factor: 2.68
//	scope3:
//	  - category: Waste Generated (t)
//	    factor: 0.98
type FactorSetFile struct {
	Name       string             `yaml:"name"`
	Version    string             `yaml:"version"`
	GridFactor float64            `yaml:"grid_factor"`
	Scope1     []emissions.Factor `yaml:"scope1"`
	Scope3     []emissions.Factor `yaml:"scope3"`
}

// NewFactorSetFile converts a factor set to its file form.
func NewFactorSetFile(set emissions.FactorSet) FactorSetFile {
	return FactorSetFile{
		Name:       set.Name,
		Version:    set.Version,
		GridFactor: set.GridFactor,
		Scope1:     set.Scope1.Factors(),
		Scope3:     set.Scope3.Factors(),
	}
}

// FactorSet validates the file and builds the factor set.
func (f FactorSetFile) FactorSet() (emissions.FactorSet, error) {
	if strings.TrimSpace(f.Name) == "" {
		return emissions.FactorSet{}, fmt.Errorf("%w: factor set has no name", emissions.ErrInvalidInput)
	}
	if err := CheckFactorSetVersion(f.Version); err != nil {
		return emissions.FactorSet{}, err
	}
	scope1, err := emissions.NewFactorTable(f.Scope1...)
	if err != nil {
		return emissions.FactorSet{}, fmt.Errorf("scope1: %w", err)
	}
	scope3, err := emissions.NewFactorTable(f.Scope3...)
	if err != nil {
		return emissions.FactorSet{}, fmt.Errorf("scope3: %w", err)
	}
	set := emissions.FactorSet{
		Name:       f.Name,
		Version:    f.Version,
		Scope1:     scope1,
		GridFactor: f.GridFactor,
		Scope3:     scope3,
	}
	if err = set.Validate(); err != nil {
		return emissions.FactorSet{}, err
	}
	return set, nil
}

// CheckFactorSetVersion reports whether version satisfies
// SupportedFactorSetVersions.
func CheckFactorSetVersion(version string) error {
	v, err := semver.NewVersion(version)
	if err != nil {
		return fmt.Errorf("%w: version %q: %w", ErrIncompatibleFactorSet, version, err)
	}
	constraint, err := semver.NewConstraint(SupportedFactorSetVersions)
	if err != nil {
		return fmt.Errorf("parsing constraint: %w", err)
	}
	if !constraint.Check(v) {
		return fmt.Errorf("%w: version %s does not satisfy %s",
			ErrIncompatibleFactorSet, v, SupportedFactorSetVersions)
	}
	return nil
}

// DecodeFactorSet reads a factor-set YAML document.
func DecodeFactorSet(r io.Reader) (emissions.FactorSet, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var f FactorSetFile
	if err := dec.Decode(&f); err != nil {
		return emissions.FactorSet{}, fmt.Errorf("%w: decoding factor set: %w", emissions.ErrInvalidInput, err)
	}
	return f.FactorSet()
}

// LoadFactorSet reads a factor-set YAML file.
func LoadFactorSet(path string) (emissions.FactorSet, error) {
	file, err := os.Open(path)
	if err != nil {
		return emissions.FactorSet{}, fmt.Errorf("opening factor set: %w", err)
	}
	defer file.Close()

	set, err := DecodeFactorSet(file)
	if err != nil {
		return emissions.FactorSet{}, fmt.Errorf("factor set %s: %w", path, err)
	}
	return set, nil
}

// EncodeFactorSet writes set as a factor-set YAML document.
func EncodeFactorSet(w io.Writer, set emissions.FactorSet) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(NewFactorSetFile(set)); err != nil {
		return fmt.Errorf("encoding factor set: %w", err)
	}
	return enc.Close()
}

// ResolveFactorSet returns the factor set at path, or the built-in set when
// path is empty.
func ResolveFactorSet(path string) (emissions.FactorSet, error) {
	if path == "" {
		return emissions.DefaultFactorSet(), nil
	}
	return LoadFactorSet(path)
}

// FactorSetInfo describes a factor-set file found on disk.
type FactorSetInfo struct {
	Name    string
	Version string
	Path    string
	Set     emissions.FactorSet
}

// ListFactorSets scans dir for *.yaml and *.yml factor sets and returns the
// latest version of each name, sorted by name. Files that fail to load are
// reported as warnings. A missing dir yields no sets and no error.
func ListFactorSets(dir string) ([]FactorSetInfo, []string, error) {
	entries, err := os.ReadDir(dir)
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil, nil
	}
	if err != nil {
		return nil, nil, fmt.Errorf("reading factors directory: %w", err)
	}

	latest := make(map[string]FactorSetInfo)
	latestVer := make(map[string]*semver.Version)
	var warnings []string

	for _, e := range entries {
		ext := filepath.Ext(e.Name())
		if e.IsDir() || (ext != ".yaml" && ext != ".yml") {
			continue
		}
		path := filepath.Join(dir, e.Name())
		set, loadErr := LoadFactorSet(path)
		if loadErr != nil {
			warnings = append(warnings, fmt.Sprintf("skipping %s: %v", e.Name(), loadErr))
			continue
		}
		// LoadFactorSet already validated the version.
		v := semver.MustParse(set.Version)
		if prev, ok := latestVer[set.Name]; ok && !v.GreaterThan(prev) {
			continue
		}
		latestVer[set.Name] = v
		latest[set.Name] = FactorSetInfo{Name: set.Name, Version: set.Version, Path: path, Set: set}
	}

	out := make([]FactorSetInfo, 0, len(latest))
	for _, info := range latest {
		out = append(out, info)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, warnings, nil
}
