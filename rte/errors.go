package rte

import "errors"

// LoggerName is the go-logging logger the routines report non-fatal conditions to.
const LoggerName = "mwrt"

// ExpMax is the largest optical depth that is exponentiated.
const ExpMax = 125.0

var (
	// ErrNegativeRefractiveIndex is returned by RayTrac when a refractive index is below 1.
	ErrNegativeRefractiveIndex = errors.New("rte: refractive index below 1")
	// ErrDucting is returned by RayTrac when the ray is trapped below the top of the profile.
	ErrDucting = errors.New("rte: ducting")
	// ErrNegativeProfile is returned by ExpInt when the integrand is negative.
	ErrNegativeProfile = errors.New("rte: negative profile value")
	// ErrAbsorptionTooLarge is returned by CldTmr when the optical depth to the cloud base exceeds ExpMax.
	ErrAbsorptionTooLarge = errors.New("rte: absorption too large to exponentiate")
	// ErrLength is returned when parallel profiles differ in length.
	ErrLength = errors.New("rte: profile lengths differ")
)
