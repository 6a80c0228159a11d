// Package tbcloud computes microwave brightness temperatures of a cloudy,
// non-scattering atmosphere seen from the ground.
package tbcloud

import (
	"errors"
	"fmt"
	"math"

	"github.com/hhkbp2/go-logging"
	"github.com/udawtr/mwrt-go/absmodel"
	"github.com/udawtr/mwrt-go/atmp"
	"github.com/udawtr/mwrt-go/rte"
	"gonum.org/v1/gonum/floats"
)

// Simulator holds the absorption components of one model.
// It is immutable and safe for concurrent use.
type Simulator struct {
	model absmodel.Model
	h2o   *absmodel.H2OAbsModel
	o2    *absmodel.O2AbsModel
	n2    rte.CollisionAbsorber // nil when the oxygen continuum includes it
	liq   *absmodel.LiqAbsModel
}

// New builds a Simulator for model. Nil line tables select the built-in ones.
func New(model absmodel.Model, h2oLines *absmodel.H2OLines, o2Lines *absmodel.O2Lines) (*Simulator, error) {
	if err := model.Validate(); err != nil {
		return nil, err
	}

	h2o, err := absmodel.NewH2OAbsModel(model, h2oLines)
	if err != nil {
		return nil, fmt.Errorf("water vapor: %w", err)
	}
	o2, err := absmodel.NewO2AbsModel(model, o2Lines)
	if err != nil {
		return nil, fmt.Errorf("oxygen: %w", err)
	}
	liq, err := absmodel.NewLiqAbsModel(model)
	if err != nil {
		return nil, err
	}

	s := &Simulator{model: model, h2o: h2o, o2: o2, liq: liq}
	if !model.O2IncludesN2() {
		n2, err := absmodel.NewN2AbsModel(model)
		if err != nil {
			return nil, err
		}
		s.n2 = n2
	}
	return s, nil
}

// Model returns the absorption model of s.
func (s *Simulator) Model() absmodel.Model {
	return s.model
}

// Channel is the result of one frequency.
type Channel struct {
	Frequency float64 // [GHz]

	TbTotal float64 // brightness temperature including the cosmic background [K]
	TbAtm   float64 // brightness temperature of the atmosphere alone [K]
	Tmr     float64 // mean radiating temperature [K]
	TmrCld  float64 // mean radiating temperature of the lowest cloud [K], NaN without cloud

	TauWet float64 // water vapor optical depth [Np]
	TauDry float64 // dry air optical depth [Np]
	TauLiq float64 // cloud liquid optical depth [Np]
	TauIce float64 // cloud ice optical depth [Np]

	Tauprof []float64 // optical depth from the antenna to each level [Np]

	Partial bool // a negative absorption stopped an integration early
}

// Tau returns the total optical depth.
func (c *Channel) Tau() float64 {
	return c.TauWet + c.TauDry + c.TauLiq + c.TauIce
}

// Result is the output of Run for one profile.
type Result struct {
	Profile   string
	Model     absmodel.Model
	Angle     float64   // elevation angle [deg]
	Levels    int       // number of levels used
	Truncated bool      // the ray ducted and the profile was cut
	Ds        []float64 // slant path of each layer [km]

	Cloudy     bool
	CloudBase  int
	CloudTop   int
	LiquidPath float64 // integrated cloud liquid along the path [cm]

	Channels []Channel
}

type channelAndIndex struct {
	Index   int
	Channel Channel
	Err     error
}

// Run computes the brightness temperature of pr at each frequency in frq
// (GHz) for a ray at elevation angle (degrees). Frequencies are computed
// concurrently.
//
// If the ray ducts, the profile is cut at the ducting level and the result
// is marked Truncated.
func (s *Simulator) Run(pr *atmp.Profile, frq []float64, angle float64) (*Result, error) {
	logger := logging.GetLogger(rte.LoggerName)

	if err := pr.Validate(); err != nil {
		return nil, err
	}

	res := &Result{
		Profile: pr.Name,
		Model:   s.model,
		Angle:   angle,
	}

	// refractivity and ray path
	z, z0 := pr.Heights()
	refr, err := rte.Refract(pr.P, pr.Tk, pr.E)
	if err != nil {
		return nil, err
	}
	ds, err := rte.RayTrac(z, refr.Index, angle, z0)
	if errors.Is(err, rte.ErrDucting) {
		if len(ds) < 2 {
			return nil, err
		}
		logger.Warnf("profile %s cut to %d levels", pr.Name, len(ds))
		pr = pr.Levels(len(ds))
		res.Truncated = true
	} else if err != nil {
		return nil, err
	}
	res.Ds = ds
	res.Levels = pr.Len()

	// lowest cloud
	if base, top, ok := pr.CloudLevels(); ok {
		res.Cloudy = true
		res.CloudBase = base
		res.CloudTop = top
		lwp, err := rte.CldInt(pr.Denliq, ds, []int{base}, []int{top})
		if err != nil {
			return nil, err
		}
		res.LiquidPath = lwp
	}

	res.Channels = make([]Channel, len(frq))
	c := make(chan channelAndIndex, 4)
	for index, f := range frq {
		go func(index int, f float64) {
			ch, err := s.channel(pr, ds, f, res)
			c <- channelAndIndex{index, ch, err}
		}(index, f)
	}

	var firstErr error
	for i := 0; i < len(frq); i++ {
		ret := <-c
		if ret.Err != nil {
			if firstErr == nil {
				firstErr = ret.Err
			}
			continue
		}
		res.Channels[ret.Index] = ret.Channel
		logger.Debugf("%s %.3f GHz: Tb=%.2f K tau=%.4f", pr.Name, ret.Channel.Frequency, ret.Channel.TbTotal, ret.Channel.Tau())
	}
	if firstErr != nil {
		return nil, firstErr
	}

	logger.Infof("profile %s: %d channels at %g degrees", pr.Name, len(frq), angle)
	return res, nil
}

// channel runs one frequency. res is read only.
func (s *Simulator) channel(pr *atmp.Profile, ds []float64, f float64, res *Result) (Channel, error) {
	ch := Channel{Frequency: f, TmrCld: math.NaN()}
	nl := pr.Len()
	iend := nl - 1

	awet, adry, err := rte.ClearSkyAbsorption(pr.P, pr.Tk, pr.E, f, s.h2o, s.o2, s.n2)
	if err != nil {
		return ch, fmt.Errorf("%.3f GHz: %w", f, err)
	}
	aliq, aice, err := rte.CloudyAbsorption(pr.Tk, pr.Denliq, pr.Denice, f, s.liq)
	if err != nil {
		return ch, fmt.Errorf("%.3f GHz: %w", f, err)
	}

	taulay := make([]float64, nl)
	layers := []struct {
		abs     []float64
		zeroflg int
		tau     *float64
	}{
		{awet, 1, &ch.TauWet},
		{adry, 1, &ch.TauDry},
		{aliq, 0, &ch.TauLiq},
		{aice, 0, &ch.TauIce},
	}
	for _, l := range layers {
		sxds, xds, err := rte.ExpInt(l.zeroflg, l.abs, ds, 0, iend, 1.0)
		if errors.Is(err, rte.ErrNegativeProfile) {
			ch.Partial = true
		} else if err != nil {
			return ch, fmt.Errorf("%.3f GHz: %w", f, err)
		}
		*l.tau = sxds
		floats.Add(taulay, xds)
	}

	pl, err := rte.Planck(f, pr.Tk, taulay)
	if err != nil {
		return ch, fmt.Errorf("%.3f GHz: %w", f, err)
	}
	ch.Tauprof = pl.Tauprof
	ch.TbTotal = rte.Bright(pl.Hvk, pl.Boftotl)
	ch.TbAtm = rte.Bright(pl.Hvk, pl.Boftatm[iend])
	ch.Tmr = rte.Bright(pl.Hvk, pl.Boftmr)

	if res.Cloudy {
		tmr, err := rte.CldTmr(res.CloudBase, res.CloudTop, pl.Hvk, pl.Tauprof, pl.Boftatm)
		if err == nil {
			ch.TmrCld = tmr
		} else if !errors.Is(err, rte.ErrAbsorptionTooLarge) {
			return ch, fmt.Errorf("%.3f GHz: %w", f, err)
		}
	}

	return ch, nil
}
