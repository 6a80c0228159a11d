package absmodel

import (
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed data/h2o_lines.yaml
var h2oCatalog []byte

//go:embed data/o2_lines.yaml
var o2Catalog []byte

// H2OLines holds the water vapor line list and continuum coefficients.
// Column slices are indexed in lock-step by line.
type H2OLines struct {
	Models []Model `yaml:"models,omitempty"`

	Reftline float64 `yaml:"reftline"` // reference temperature of the line parameters [K]
	Reftcon  float64 `yaml:"reftcon"`  // reference temperature of the continuum [K]
	Cf       float64 `yaml:"cf"`       // foreign continuum coefficient
	Xcf      float64 `yaml:"xcf"`      // foreign continuum temperature exponent
	Cs       float64 `yaml:"cs"`       // self continuum coefficient
	Xcs      float64 `yaml:"xcs"`      // self continuum temperature exponent
	D2air    float64 `yaml:"d2air"`    // speed-dependent shift, air [GHz/mb]
	D2self   float64 `yaml:"d2self"`   // speed-dependent shift, self [GHz/mb]

	Fl    []float64 `yaml:"fl"`    // line frequency [GHz]
	S1    []float64 `yaml:"s1"`    // line intensity at Reftline
	B2    []float64 `yaml:"b2"`    // lower state energy / Reftline
	W0    []float64 `yaml:"w0"`    // air broadened width [GHz/mb]
	X     []float64 `yaml:"x"`     // temperature exponent of W0
	W0s   []float64 `yaml:"w0s"`   // self broadened width [GHz/mb]
	Xs    []float64 `yaml:"xs"`    // temperature exponent of W0s
	Sr    []float64 `yaml:"sr"`    // shift to width ratio
	Sh    []float64 `yaml:"sh"`    // air shift [GHz/mb]
	Xh    []float64 `yaml:"xh"`    // temperature exponent of Sh
	Shs   []float64 `yaml:"shs"`   // self shift [GHz/mb]
	Xhs   []float64 `yaml:"xhs"`   // temperature exponent of Shs
	Aair  []float64 `yaml:"aair"`  // log temperature coefficient of Sh
	Aself []float64 `yaml:"aself"` // log temperature coefficient of Shs
	W2    []float64 `yaml:"w2"`    // speed-dependent width, air [GHz/mb]
	W2s   []float64 `yaml:"w2s"`   // speed-dependent width, self [GHz/mb]
}

// Len returns the number of lines.
func (ll *H2OLines) Len() int {
	return len(ll.Fl)
}

// normalize checks the column lengths and zero-fills absent optional columns.
func (ll *H2OLines) normalize() error {
	n := len(ll.Fl)
	if n == 0 {
		return fmt.Errorf("%w: h2o table has no lines", ErrLineTableShape)
	}
	required := map[string][]float64{
		"s1": ll.S1, "b2": ll.B2, "w0": ll.W0, "x": ll.X, "w0s": ll.W0s, "xs": ll.Xs,
	}
	for name, col := range required {
		if len(col) != n {
			return fmt.Errorf("%w: h2o column %s has %d entries, fl has %d", ErrLineTableShape, name, len(col), n)
		}
	}
	optional := map[string]*[]float64{
		"sr": &ll.Sr, "sh": &ll.Sh, "xh": &ll.Xh, "shs": &ll.Shs, "xhs": &ll.Xhs,
		"aair": &ll.Aair, "aself": &ll.Aself, "w2": &ll.W2, "w2s": &ll.W2s,
	}
	for name, col := range optional {
		if err := fillColumn(name, col, n); err != nil {
			return err
		}
	}
	if ll.Reftline <= 0 || ll.Reftcon <= 0 {
		return fmt.Errorf("%w: h2o reference temperatures must be positive", ErrLineTableShape)
	}
	return nil
}

// O2Lines holds the oxygen line list including line-mixing coefficients.
type O2Lines struct {
	Models []Model `yaml:"models,omitempty"`

	X     float64 `yaml:"x"`     // temperature exponent of the widths
	Wb300 float64 `yaml:"wb300"` // non-resonant width [GHz/mb]

	F    []float64 `yaml:"f"`    // line frequency [GHz]
	S300 []float64 `yaml:"s300"` // intensity at 300 K
	Be   []float64 `yaml:"be"`   // lower state energy coefficient
	W300 []float64 `yaml:"w300"` // width [GHz/mb]
	Y300 []float64 `yaml:"y300"` // first-order mixing [1/mb]
	V    []float64 `yaml:"v"`    // temperature coefficient of Y300
	Y0   []float64 `yaml:"y0"`   // first-order mixing, second-order algorithm
	Y1   []float64 `yaml:"y1"`   // temperature coefficient of Y0
	Dnu0 []float64 `yaml:"dnu0"` // second-order shift
	Dnu1 []float64 `yaml:"dnu1"` // temperature coefficient of Dnu0
	G0   []float64 `yaml:"g0"`   // second-order intensity correction
	G1   []float64 `yaml:"g1"`   // temperature coefficient of G0
}

// Len returns the number of lines.
func (ll *O2Lines) Len() int {
	return len(ll.F)
}

func (ll *O2Lines) normalize() error {
	n := len(ll.F)
	if n == 0 {
		return fmt.Errorf("%w: o2 table has no lines", ErrLineTableShape)
	}
	required := map[string][]float64{"s300": ll.S300, "be": ll.Be, "w300": ll.W300}
	for name, col := range required {
		if len(col) != n {
			return fmt.Errorf("%w: o2 column %s has %d entries, f has %d", ErrLineTableShape, name, len(col), n)
		}
	}
	optional := map[string]*[]float64{
		"y300": &ll.Y300, "v": &ll.V, "y0": &ll.Y0, "y1": &ll.Y1,
		"dnu0": &ll.Dnu0, "dnu1": &ll.Dnu1, "g0": &ll.G0, "g1": &ll.G1,
	}
	for name, col := range optional {
		if err := fillColumn(name, col, n); err != nil {
			return err
		}
	}
	return nil
}

func fillColumn(name string, col *[]float64, n int) error {
	switch len(*col) {
	case 0:
		*col = make([]float64, n)
	case n:
	default:
		return fmt.Errorf("%w: column %s has %d entries, want %d", ErrLineTableShape, name, len(*col), n)
	}
	return nil
}

type h2oCatalogFile struct {
	Tables []H2OLines `yaml:"tables"`
}

type o2CatalogFile struct {
	Tables []O2Lines `yaml:"tables"`
}

// DefaultH2OLines returns the built-in water vapor table for model.
func DefaultH2OLines(model Model) (*H2OLines, error) {
	if err := model.Validate(); err != nil {
		return nil, err
	}
	var cat h2oCatalogFile
	if err := yaml.Unmarshal(h2oCatalog, &cat); err != nil {
		return nil, fmt.Errorf("absmodel: built-in h2o catalog: %w", err)
	}
	for i := range cat.Tables {
		if hasModel(cat.Tables[i].Models, model) {
			ll := cat.Tables[i]
			if err := ll.normalize(); err != nil {
				return nil, err
			}
			return &ll, nil
		}
	}
	return nil, fmt.Errorf("%w: no built-in h2o table for %s", ErrUnknownModel, model)
}

// DefaultO2Lines returns the built-in oxygen table for model.
func DefaultO2Lines(model Model) (*O2Lines, error) {
	if err := model.Validate(); err != nil {
		return nil, err
	}
	var cat o2CatalogFile
	if err := yaml.Unmarshal(o2Catalog, &cat); err != nil {
		return nil, fmt.Errorf("absmodel: built-in o2 catalog: %w", err)
	}
	for i := range cat.Tables {
		if hasModel(cat.Tables[i].Models, model) {
			ll := cat.Tables[i]
			if err := ll.normalize(); err != nil {
				return nil, err
			}
			return &ll, nil
		}
	}
	return nil, fmt.Errorf("%w: no built-in o2 table for %s", ErrUnknownModel, model)
}

// LoadH2OLines reads a single water vapor table from a YAML file.
func LoadH2OLines(path string) (*H2OLines, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return ParseH2OLines(data)
}

// ParseH2OLines decodes a single water vapor table from YAML.
func ParseH2OLines(data []byte) (*H2OLines, error) {
	var ll H2OLines
	if err := yaml.Unmarshal(data, &ll); err != nil {
		return nil, fmt.Errorf("absmodel: h2o table: %w", err)
	}
	if err := ll.normalize(); err != nil {
		return nil, err
	}
	return &ll, nil
}

// LoadO2Lines reads a single oxygen table from a YAML file.
func LoadO2Lines(path string) (*O2Lines, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return ParseO2Lines(data)
}

// ParseO2Lines decodes a single oxygen table from YAML.
func ParseO2Lines(data []byte) (*O2Lines, error) {
	var ll O2Lines
	if err := yaml.Unmarshal(data, &ll); err != nil {
		return nil, fmt.Errorf("absmodel: o2 table: %w", err)
	}
	if err := ll.normalize(); err != nil {
		return nil, err
	}
	return &ll, nil
}

func hasModel(models []Model, m Model) bool {
	for _, x := range models {
		if x == m {
			return true
		}
	}
	return false
}

func cloneSlice(s []float64) []float64 {
	if s == nil {
		return nil
	}
	return append([]float64(nil), s...)
}

func (ll *H2OLines) clone() *H2OLines {
	c := *ll
	c.Models = append([]Model(nil), ll.Models...)
	for _, col := range []*[]float64{
		&c.Fl, &c.S1, &c.B2, &c.W0, &c.X, &c.W0s, &c.Xs, &c.Sr, &c.Sh,
		&c.Xh, &c.Shs, &c.Xhs, &c.Aair, &c.Aself, &c.W2, &c.W2s,
	} {
		*col = cloneSlice(*col)
	}
	return &c
}

func (ll *O2Lines) clone() *O2Lines {
	c := *ll
	c.Models = append([]Model(nil), ll.Models...)
	for _, col := range []*[]float64{
		&c.F, &c.S300, &c.Be, &c.W300, &c.Y300, &c.V, &c.Y0, &c.Y1,
		&c.Dnu0, &c.Dnu1, &c.G0, &c.G1,
	} {
		*col = cloneSlice(*col)
	}
	return &c
}
