package atmp

import (
	"errors"
	"fmt"
	"sort"
)

// ErrInvalidProfile is returned when a profile breaks its shape or value constraints.
var ErrInvalidProfile = errors.New("atmp: invalid profile")

// Profile is a vertical atmospheric profile, bottom (antenna) to top.
// All slices are indexed by level.
type Profile struct {
	Name string

	Z      []float64 // height [km]
	P      []float64 // pressure [mb]
	Tk     []float64 // temperature [K]
	E      []float64 // vapor pressure [mb]
	Denliq []float64 // cloud liquid density [g/m3]
	Denice []float64 // cloud ice density [g/m3]
}

// Len returns the number of levels.
func (p *Profile) Len() int {
	return len(p.Z)
}

// Validate checks that the columns share one length, heights increase and
// pressure, temperature and vapor pressure are physical.
func (p *Profile) Validate() error {
	n := len(p.Z)
	if n < 2 {
		return fmt.Errorf("%w: %d levels, need at least 2", ErrInvalidProfile, n)
	}
	cols := []struct {
		name string
		v    []float64
	}{
		{"p", p.P}, {"t", p.Tk}, {"e", p.E}, {"denliq", p.Denliq}, {"denice", p.Denice},
	}
	for _, c := range cols {
		if len(c.v) != n {
			return fmt.Errorf("%w: column %s has %d levels, z has %d", ErrInvalidProfile, c.name, len(c.v), n)
		}
	}
	for i := 0; i < n; i++ {
		if i > 0 && p.Z[i] <= p.Z[i-1] {
			return fmt.Errorf("%w: height does not increase at level %d", ErrInvalidProfile, i)
		}
		if p.P[i] <= 0 {
			return fmt.Errorf("%w: pressure %g mb at level %d", ErrInvalidProfile, p.P[i], i)
		}
		if p.Tk[i] <= 0 {
			return fmt.Errorf("%w: temperature %g K at level %d", ErrInvalidProfile, p.Tk[i], i)
		}
		if p.E[i] < 0 || p.E[i] >= p.P[i] {
			return fmt.Errorf("%w: vapor pressure %g mb at level %d", ErrInvalidProfile, p.E[i], i)
		}
	}
	return nil
}

// Extract returns a copy of the levels with zmin <= z <= zmax.
func (p *Profile) Extract(zmin, zmax float64) *Profile {
	start := sort.Search(len(p.Z), func(i int) bool {
		return p.Z[i] >= zmin
	})
	end := sort.Search(len(p.Z), func(i int) bool {
		return p.Z[i] > zmax
	})
	if end < start {
		end = start
	}
	return p.slice(start, end)
}

// Levels returns a copy of the lowest n levels.
func (p *Profile) Levels(n int) *Profile {
	if n > p.Len() {
		n = p.Len()
	}
	if n < 0 {
		n = 0
	}
	return p.slice(0, n)
}

func (p *Profile) slice(start, end int) *Profile {
	return &Profile{
		Name:   p.Name,
		Z:      append([]float64{}, p.Z[start:end]...),
		P:      append([]float64{}, p.P[start:end]...),
		Tk:     append([]float64{}, p.Tk[start:end]...),
		E:      append([]float64{}, p.E[start:end]...),
		Denliq: append([]float64{}, p.Denliq[start:end]...),
		Denice: append([]float64{}, p.Denice[start:end]...),
	}
}

// Heights returns the heights above the lowest level and the height of the
// lowest level, the form RayTrac takes.
func (p *Profile) Heights() (z []float64, z0 float64) {
	z = make([]float64, p.Len())
	if p.Len() == 0 {
		return z, 0
	}
	z0 = p.Z[0]
	for i, v := range p.Z {
		z[i] = v - z0
	}
	return z, z0
}

// CloudLevels returns the levels bounding the lowest contiguous cloud:
// base is the level below the first cloudy level (or 0) and top the last
// cloudy level above it. ok is false when the profile has no cloud.
func (p *Profile) CloudLevels() (base, top int, ok bool) {
	first := -1
	for i := range p.Denliq {
		if p.Denliq[i] > 0 || p.Denice[i] > 0 {
			first = i
			break
		}
	}
	if first < 0 {
		return 0, 0, false
	}
	top = first
	for top+1 < p.Len() && (p.Denliq[top+1] > 0 || p.Denice[top+1] > 0) {
		top++
	}
	base = first - 1
	if base < 0 {
		base = 0
	}
	if base == top {
		return 0, 0, false
	}
	return base, top, true
}
