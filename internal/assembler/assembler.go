// Package assembler builds the build-tool configuration from a fixed compiler
// profile and the network catalogue, gated by which credentials are present.
package assembler

import (
	"errors"
	"fmt"
	"io"
	"log/slog"

	ozzo "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/pendergraft/seiconf/internal/chains"
	"github.com/pendergraft/seiconf/internal/chains/evm"
)

// ErrVerificationWithoutNetwork is returned in strict mode when explorer
// verification is requested but no network section is produced
var ErrVerificationWithoutNetwork = errors.New("verification requested without network profiles")

// WarnVerificationWithoutNetwork is the warning code for the same condition
// outside strict mode
const WarnVerificationWithoutNetwork = "verification-without-network"

// Options configures an Assembler
type Options struct {
	Registry *chains.Registry     // default: chains.SeiRegistry()
	Compiler *evm.CompilerProfile // default: evm.DefaultCompiler()
	Strict   bool
	Logger   *slog.Logger
}

// Assembler produces AssembledConfig values. It has no side effects.
type Assembler struct {
	registry *chains.Registry
	compiler evm.CompilerProfile
	strict   bool
	logger   *slog.Logger
}

// New creates an Assembler, filling unset options with defaults
func New(opts Options) *Assembler {
	a := &Assembler{
		registry: opts.Registry,
		compiler: evm.DefaultCompiler(),
		strict:   opts.Strict,
		logger:   opts.Logger,
	}
	if a.registry == nil {
		a.registry = chains.SeiRegistry()
	}
	if opts.Compiler != nil {
		a.compiler = *opts.Compiler
	}
	if a.logger == nil {
		a.logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return a
}

// Registry returns the network catalogue the assembler draws from
func (a *Assembler) Registry() *chains.Registry {
	return a.registry
}

// Assemble builds the configuration for the given credentials.
// Missing credentials never fail: they narrow the result and are reported
// in Result.Skipped.
func (a *Assembler) Assemble(creds Credentials) (*Result, error) {
	cfg := &AssembledConfig{Compiler: a.compiler}
	res := &Result{Config: cfg}

	if creds.PrivateKey.Present() {
		cfg.Networks = a.networkProfiles(creds.PrivateKey)
	} else {
		res.Skipped = append(res.Skipped, Skip{Section: SectionNetworks, EnvVar: EnvPrivateKey})
		a.logger.Info("networks section skipped", "reason", EnvPrivateKey+" not set")
	}

	if creds.SeitraceKey.Present() {
		cfg.Verification = a.verificationProfiles(creds.SeitraceKey)
	} else {
		res.Skipped = append(res.Skipped, Skip{Section: SectionVerification, EnvVar: EnvSeitraceKey})
		a.logger.Info("etherscan section skipped", "reason", EnvSeitraceKey+" not set")
	}

	if cfg.HasVerification() && !cfg.HasNetworks() {
		if a.strict {
			return nil, fmt.Errorf("%w: set %s or unset %s", ErrVerificationWithoutNetwork, EnvPrivateKey, EnvSeitraceKey)
		}
		msg := fmt.Sprintf("%s is set but %s is not: verification entries have no matching network", EnvSeitraceKey, EnvPrivateKey)
		res.Warnings = append(res.Warnings, Warning{Code: WarnVerificationWithoutNetwork, Message: msg})
		a.logger.Warn(msg)
	}

	if err := cfg.validate(a.registry); err != nil {
		return nil, fmt.Errorf("invalid assembled config: %w", err)
	}

	res.Status = statusOf(cfg)
	a.logger.Debug("config assembled",
		"status", res.Status.String(),
		"compiler", cfg.Compiler.String(),
		"networks", len(cfg.Networks),
		"verification", len(cfg.Verification),
	)
	return res, nil
}

func (a *Assembler) networkProfiles(key Secret) []NetworkProfile {
	networks := a.registry.List()
	profiles := make([]NetworkProfile, 0, len(networks))
	for _, n := range networks {
		profiles = append(profiles, NetworkProfile{
			Name:              n.Name,
			RPCURL:            n.RPCURL,
			ChainID:           n.ChainID,
			SigningCredential: key,
			Gas:               AutoGas(),
			GasPrice:          AutoGas(),
		})
	}
	return profiles
}

func (a *Assembler) verificationProfiles(key Secret) []VerificationProfile {
	networks := a.registry.List()
	profiles := make([]VerificationProfile, 0, len(networks))
	for _, n := range networks {
		profiles = append(profiles, VerificationProfile{
			NetworkName: n.Name,
			ChainID:     n.ChainID,
			APIKey:      key,
			APIURL:      n.Explorer.APIURL,
			ExplorerURL: n.Explorer.BrowserURL,
		})
	}
	return profiles
}

func statusOf(cfg *AssembledConfig) Status {
	switch {
	case cfg.HasNetworks() && cfg.HasVerification():
		return StatusFull
	case cfg.HasNetworks() || cfg.HasVerification():
		return StatusPartial
	default:
		return StatusMinimal
	}
}

// validate checks every profile and that each one refers to a catalogued
// network with the same chain ID
func (c *AssembledConfig) validate(reg *chains.Registry) error {
	return ozzo.ValidateStruct(c,
		ozzo.Field(&c.Compiler),
		ozzo.Field(&c.Networks,
			ozzo.By(uniqueNetworkNames),
			ozzo.Each(ozzo.By(knownNetwork(reg))),
		),
		ozzo.Field(&c.Verification,
			ozzo.By(uniqueVerificationTargets),
			ozzo.Each(ozzo.By(knownVerificationTarget(reg))),
		),
	)
}

func uniqueNetworkNames(value interface{}) error {
	profiles, _ := value.([]NetworkProfile)
	seen := make(map[string]bool, len(profiles))
	for _, p := range profiles {
		if seen[p.Name] {
			return ozzo.NewError("validation_duplicate_network", "duplicate network "+p.Name)
		}
		seen[p.Name] = true
	}
	return nil
}

func uniqueVerificationTargets(value interface{}) error {
	profiles, _ := value.([]VerificationProfile)
	seen := make(map[string]bool, len(profiles))
	for _, p := range profiles {
		if seen[p.NetworkName] {
			return ozzo.NewError("validation_duplicate_network", "duplicate verification entry for "+p.NetworkName)
		}
		seen[p.NetworkName] = true
	}
	return nil
}

func knownNetwork(reg *chains.Registry) ozzo.RuleFunc {
	return func(value interface{}) error {
		p, ok := value.(NetworkProfile)
		if !ok {
			return ozzo.NewError("validation_invalid_type", "must be a NetworkProfile")
		}
		return checkCatalogued(reg, p.Name, p.ChainID)
	}
}

func knownVerificationTarget(reg *chains.Registry) ozzo.RuleFunc {
	return func(value interface{}) error {
		p, ok := value.(VerificationProfile)
		if !ok {
			return ozzo.NewError("validation_invalid_type", "must be a VerificationProfile")
		}
		return checkCatalogued(reg, p.NetworkName, p.ChainID)
	}
}

func checkCatalogued(reg *chains.Registry, name string, chainID int) error {
	n, ok := reg.Get(name)
	if !ok {
		return ozzo.NewError("validation_unknown_network", "unknown network "+name)
	}
	if n.ChainID != chainID {
		return ozzo.NewError("validation_chain_mismatch",
			fmt.Sprintf("chain ID %d does not match %s (%d)", chainID, name, n.ChainID))
	}
	return nil
}
