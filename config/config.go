// Package config holds the tunables of the solver core: VSIDS decay,
// clause-activity decay, and the Luby restart base, plus the driver-level
// logger. It is deliberately small: the core itself never reads the
// environment or a config file, it only receives a Config value.
package config

import (
	"log"
	"os"
)

// Config bundles the solver's tunable constants.
type Config struct {
	// Logger is a driver-level logger. The solver core itself never logs,
	// and the CLI driver reports its errors through the standard log
	// package rather than through this field.
	Logger *log.Logger
	// VarDecay is the VSIDS activity decay factor alpha, canonically 0.95.
	VarDecay float64
	// ClauseDecay is the learned-clause activity decay factor.
	ClauseDecay float64
	// RestartBase is the Luby-sequence scaling unit, canonically 100.
	RestartBase int
	// Verbose enables statistics printing in the CLI driver.
	Verbose bool
}

// Default returns the canonical configuration: VarDecay 0.95, ClauseDecay
// 0.999, RestartBase 100.
func Default() Config {
	return Config{
		Logger:      log.New(os.Stderr, "", log.Ldate|log.Ltime),
		VarDecay:    0.95,
		ClauseDecay: 0.999,
		RestartBase: 100,
	}
}
