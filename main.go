// mwrt computes ground-based microwave brightness temperatures of
// atmospheric profiles.
package main

import (
	"bytes"
	"fmt"
	"os"

	"github.com/akamensky/argparse"
	"github.com/hhkbp2/go-logging"
	"github.com/udawtr/mwrt-go/absmodel"
	"github.com/udawtr/mwrt-go/atmp"
	"github.com/udawtr/mwrt-go/rte"
	"github.com/udawtr/mwrt-go/tbcloud"
)

func main() {
	// command line
	parser := argparse.NewParser("mwrt", "Computes microwave brightness temperatures of cloudy atmospheric profiles")

	models := make([]string, len(absmodel.Models))
	for i, m := range absmodel.Models {
		models[i] = m.String()
	}
	model := parser.Selector("m", "model", models, &argparse.Options{
		Default: absmodel.Rose19.String(),
		Help:    "absorption model"})

	angle := parser.Float("a", "angle", &argparse.Options{
		Default: 90.0,
		Help:    "elevation angle [deg]"})

	freq := parser.FloatList("f", "freq", &argparse.Options{
		Help: "frequency [GHz], repeatable; 22.235 and 31.4 by default"})

	profiles := parser.StringList("p", "profile", &argparse.Options{
		Help: "profile file (.yaml, .yml or .csv, optionally .gz), repeatable; the built-in tropical profile by default"})

	ice := parser.Flag("", "ice", &argparse.Options{
		Help: "relative humidity below 263.16 K is over ice"})

	zmax := parser.Float("", "zmax", &argparse.Options{
		Default: 0.0,
		Help:    "ignore levels above this height [km], 0 keeps all"})

	linesH2O := parser.String("", "lines-h2o", &argparse.Options{
		Default: "",
		Help:    "water vapor line table (YAML)"})

	linesO2 := parser.String("", "lines-o2", &argparse.Options{
		Default: "",
		Help:    "oxygen line table (YAML)"})

	filename := parser.String("o", "output", &argparse.Options{
		Default: "",
		Help:    "output CSV path, stdout when empty"})

	log := parser.Selector("", "log", []string{"DEBUG", "INFO", "WARN", "ERROR", "CRITICAL"}, &argparse.Options{
		Default: "ERROR",
		Help:    "log level"})

	err := parser.Parse(os.Args)
	if err != nil {
		fmt.Print(parser.Usage(err))
		os.Exit(2)
	}

	// log level
	logger := logging.GetLogger(rte.LoggerName)
	if *log == "DEBUG" {
		logger.SetLevel(logging.LevelDebug)
	} else if *log == "INFO" {
		logger.SetLevel(logging.LevelInfo)
	} else if *log == "WARN" {
		logger.SetLevel(logging.LevelWarn)
	} else if *log == "ERROR" {
		logger.SetLevel(logging.LevelError)
	} else if *log == "CRITICAL" {
		logger.SetLevel(logging.LevelCritical)
	}

	if err := run(*model, *angle, *freq, *profiles, *ice, *zmax, *linesH2O, *linesO2, *filename); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func run(modelName string, angle float64, freq []float64, profiles []string, ice bool, zmax float64, linesH2O, linesO2, filename string) error {
	logger := logging.GetLogger(rte.LoggerName)

	model, err := absmodel.ParseModel(modelName)
	if err != nil {
		return err
	}
	if len(freq) == 0 {
		freq = []float64{22.235, 31.4}
	}

	// line tables
	var h2oLines *absmodel.H2OLines
	if linesH2O != "" {
		if h2oLines, err = absmodel.LoadH2OLines(linesH2O); err != nil {
			return err
		}
	}
	var o2Lines *absmodel.O2Lines
	if linesO2 != "" {
		if o2Lines, err = absmodel.LoadO2Lines(linesO2); err != nil {
			return err
		}
	}

	sim, err := tbcloud.New(model, h2oLines, o2Lines)
	if err != nil {
		return err
	}

	// profiles
	var prs []*atmp.Profile
	if len(profiles) == 0 {
		prs = []*atmp.Profile{atmp.Tropical()}
	} else if prs, err = atmp.LoadFiles(profiles, ice); err != nil {
		return err
	}

	results := make(tbcloud.Results, 0, len(prs))
	for _, pr := range prs {
		if zmax > 0 {
			pr = pr.Extract(pr.Z[0], zmax)
		}
		if pr.Len() > 0 {
			logger.Infof("%s: surface %.1f mb %.1f K, rh %.0f%%, mixing ratio %.2f g/kg, dew point %.1f K",
				pr.Name, pr.P[0], pr.Tk[0], atmp.RelativeHumidity(pr.E[0], pr.Tk[0]),
				atmp.MixingRatio(pr.E[0], pr.P[0]), atmp.DewPoint(pr.E[0]))
		}
		res, err := sim.Run(pr, freq, angle)
		if err != nil {
			return fmt.Errorf("%s: %w", pr.Name, err)
		}
		results = append(results, res)
	}

	// save
	var buf *bytes.Buffer = bytes.NewBuffer([]byte{})
	results.ToCSV(buf)

	if filename == "" {
		fmt.Print(buf.String())
	} else {
		logger.Infof("CSV saved: %s", filename)
		if err := os.WriteFile(filename, buf.Bytes(), 0o644); err != nil {
			return err
		}
	}

	logger.Infof("done")
	return nil
}
