package atmp

import (
	"compress/gzip"
	_ "embed"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/hhkbp2/go-logging"
	"github.com/udawtr/mwrt-go/constants"
	"github.com/udawtr/mwrt-go/rte"
	"gopkg.in/yaml.v3"
)

//go:embed data/tropical.yaml
var tropicalYAML []byte

// profileFile is the YAML layout of a profile. Humidity is given by exactly
// one of e, h2o_ppmv, mixing_ratio or rh. With ice set, rh below 263.16 K
// is relative to saturation over ice.
type profileFile struct {
	Name        string    `yaml:"name"`
	Z           []float64 `yaml:"z"`
	P           []float64 `yaml:"p"`
	T           []float64 `yaml:"t"`
	E           []float64 `yaml:"e"`
	H2OPPMV     []float64 `yaml:"h2o_ppmv"`
	MixingRatio []float64 `yaml:"mixing_ratio"`
	RH          []float64 `yaml:"rh"`
	Denliq      []float64 `yaml:"denliq"`
	Denice      []float64 `yaml:"denice"`
	Ice         bool      `yaml:"ice"`
}

func (f *profileFile) profile() (*Profile, error) {
	n := len(f.Z)
	pr := &Profile{
		Name:   f.Name,
		Z:      f.Z,
		P:      f.P,
		Tk:     f.T,
		Denliq: f.Denliq,
		Denice: f.Denice,
	}
	if len(pr.P) != n || len(pr.Tk) != n {
		return nil, fmt.Errorf("%w: z, p and t must have the same length", ErrInvalidProfile)
	}

	humidity := func(src []float64, conv func(v float64, i int) float64) error {
		if len(src) != n {
			return fmt.Errorf("%w: humidity column has %d levels, z has %d", ErrInvalidProfile, len(src), n)
		}
		pr.E = make([]float64, n)
		for i, v := range src {
			pr.E[i] = conv(v, i)
		}
		return nil
	}

	var err error
	switch {
	case f.E != nil:
		err = humidity(f.E, func(v float64, _ int) float64 { return v })
	case f.H2OPPMV != nil:
		err = humidity(f.H2OPPMV, func(v float64, i int) float64 {
			return VaporPressureFromMixingRatio(PPMVToGKG(v, constants.MolarH2O), f.P[i])
		})
	case f.MixingRatio != nil:
		err = humidity(f.MixingRatio, func(v float64, i int) float64 { return VaporPressureFromMixingRatio(v, f.P[i]) })
	case f.RH != nil:
		if err = humidity(f.RH, func(v float64, _ int) float64 { return v / 100 }); err == nil {
			pr.E, _, err = rte.Vapor(f.T, pr.E, f.Ice)
		}
	default:
		err = fmt.Errorf("%w: no humidity column", ErrInvalidProfile)
	}
	if err != nil {
		return nil, err
	}

	if pr.Denliq == nil {
		pr.Denliq = make([]float64, n)
	}
	if pr.Denice == nil {
		pr.Denice = make([]float64, n)
	}
	if err := pr.Validate(); err != nil {
		return nil, err
	}
	return pr, nil
}

// Tropical returns the AFGL tropical profile, 0-30 km, without cloud.
func Tropical() *Profile {
	pr, err := ParseYAML(tropicalYAML)
	if err != nil {
		panic(err)
	}
	return pr
}

// ParseYAML decodes a profile from YAML.
func ParseYAML(data []byte) (*Profile, error) {
	return parseYAML(data, false)
}

// parseYAML decodes a profile; ice forces saturation over ice for rh.
func parseYAML(data []byte, ice bool) (*Profile, error) {
	var f profileFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("atmp: %w", err)
	}
	f.Ice = f.Ice || ice
	return f.profile()
}

// LoadCSV reads a profile from CSV with a header row. Columns are matched
// by name: z, p, t, one of e/h2o_ppmv/mixing_ratio/rh, and optionally
// denliq and denice. With ice set, rh below 263.16 K is relative to
// saturation over ice.
func LoadCSV(r io.Reader, ice bool) (*Profile, error) {
	csvReader := csv.NewReader(r)
	csvReader.ReuseRecord = true
	csvReader.Comment = '#'
	csvReader.TrimLeadingSpace = true

	header, err := csvReader.Read()
	if err != nil {
		return nil, fmt.Errorf("atmp: csv header: %w", err)
	}
	names := make([]string, len(header))
	for i, h := range header {
		names[i] = strings.ToLower(strings.TrimSpace(h))
	}

	cols := make(map[string][]float64, len(names))
	for line := 2; ; line++ {
		row, err := csvReader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("atmp: csv: %w", err)
		}
		for i, cell := range row {
			v, err := strconv.ParseFloat(strings.TrimSpace(cell), 64)
			if err != nil {
				return nil, fmt.Errorf("%w: line %d column %s: %v", ErrInvalidProfile, line, names[i], err)
			}
			cols[names[i]] = append(cols[names[i]], v)
		}
	}

	f := profileFile{
		Z:           cols["z"],
		P:           cols["p"],
		T:           cols["t"],
		E:           cols["e"],
		H2OPPMV:     cols["h2o_ppmv"],
		MixingRatio: cols["mixing_ratio"],
		RH:          cols["rh"],
		Denliq:      cols["denliq"],
		Denice:      cols["denice"],
		Ice:         ice,
	}
	return f.profile()
}

// LoadFile reads a profile from path, choosing the format from the
// extension (.yaml, .yml or .csv, optionally gzipped). ice is passed on to
// the relative humidity conversion.
func LoadFile(path string, ice bool) (*Profile, error) {
	ext := strings.ToLower(path)
	gz := strings.HasSuffix(ext, ".gz")
	ext = filepath.Ext(strings.TrimSuffix(ext, ".gz"))

	if ext != ".yaml" && ext != ".yml" && ext != ".csv" {
		return nil, fmt.Errorf("atmp: %s: unsupported profile format %q", path, ext)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var r io.Reader = f
	if gz {
		gf, err := gzip.NewReader(f)
		if err != nil {
			return nil, fmt.Errorf("atmp: %s: %w", path, err)
		}
		defer gf.Close()
		r = gf
	}

	var pr *Profile
	if ext == ".csv" {
		pr, err = LoadCSV(r, ice)
	} else {
		var data []byte
		data, err = io.ReadAll(r)
		if err == nil {
			pr, err = parseYAML(data, ice)
		}
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	if pr.Name == "" {
		pr.Name = profileName(path)
	}
	return pr, nil
}

type profileAndIndex struct {
	Index   int
	Profile *Profile
	Err     error
}

// LoadFiles reads the profiles in paths concurrently, preserving order.
func LoadFiles(paths []string, ice bool) ([]*Profile, error) {
	logger := logging.GetLogger(rte.LoggerName)

	profiles := make([]*Profile, len(paths))
	c := make(chan profileAndIndex, 4)
	for index, path := range paths {
		go func(index int, path string) {
			pr, err := LoadFile(path, ice)
			c <- profileAndIndex{index, pr, err}
		}(index, path)
	}

	var firstErr error
	for i := 0; i < len(paths); i++ {
		ret := <-c
		if ret.Err != nil {
			if firstErr == nil {
				firstErr = ret.Err
			}
			continue
		}
		profiles[ret.Index] = ret.Profile
		logger.Infof("profile loaded: %s (%d levels)", ret.Profile.Name, ret.Profile.Len())
	}
	if firstErr != nil {
		return nil, firstErr
	}
	return profiles, nil
}

func profileName(path string) string {
	base := filepath.Base(path)
	for _, ext := range []string{".gz", ".csv", ".yaml", ".yml"} {
		base = strings.TrimSuffix(base, ext)
	}
	return base
}
