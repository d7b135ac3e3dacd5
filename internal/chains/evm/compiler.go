// Package evm provides the Solidity compiler profile for EVM chains.
package evm

import (
	"errors"
	"fmt"

	"github.com/pendergraft/seiconf/internal/validation"
)

// Default solc settings applied to every contract source
const (
	DefaultCompilerVersion = "0.8.25"
	DefaultOptimizerRuns   = 200
)

// CompilerProfile contains solc version and optimizer settings
type CompilerProfile struct {
	Version   string          // "0.8.25"
	Optimizer OptimizerConfig
}

// OptimizerConfig contains optimizer settings
type OptimizerConfig struct {
	Enabled bool
	Runs    int
}

// DefaultCompiler returns the compiler profile used for all builds
func DefaultCompiler() CompilerProfile {
	return CompilerProfile{
		Version: DefaultCompilerVersion,
		Optimizer: OptimizerConfig{
			Enabled: true,
			Runs:    DefaultOptimizerRuns,
		},
	}
}

// Validate checks that the version is a solc release and the optimizer
// settings are usable
func (p CompilerProfile) Validate() error {
	if err := validation.ValidateCompilerVersion(p.Version); err != nil {
		return err
	}
	if p.Optimizer.Runs < 0 {
		return errors.New("optimizer runs cannot be negative")
	}
	if p.Optimizer.Enabled && p.Optimizer.Runs == 0 {
		return errors.New("optimizer runs must be at least 1 when the optimizer is enabled")
	}
	return nil
}

// String returns a short description, e.g. "solc 0.8.25 (optimizer: 200 runs)"
func (p CompilerProfile) String() string {
	if !p.Optimizer.Enabled {
		return fmt.Sprintf("solc %s (optimizer: off)", validation.NormalizeVersion(p.Version))
	}
	return fmt.Sprintf("solc %s (optimizer: %d runs)", validation.NormalizeVersion(p.Version), p.Optimizer.Runs)
}
