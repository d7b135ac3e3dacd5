package assembler

import (
	"fmt"
	"log/slog"

	ozzo "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/pendergraft/seiconf/internal/chains/evm"
	"github.com/pendergraft/seiconf/internal/validation"
)

// Environment variables that switch optional sections on
const (
	EnvPrivateKey  = "PRIVATE_KEY"
	EnvSeitraceKey = "SEITRACE_KEY"
)

// Secret is an opaque credential. It formats and logs masked.
type Secret string

// String returns the masked secret
func (s Secret) String() string {
	return MaskSecret(string(s))
}

// LogValue implements slog.LogValuer
func (s Secret) LogValue() slog.Value {
	return slog.StringValue(MaskSecret(string(s)))
}

// Present reports whether the secret is set (non-empty)
func (s Secret) Present() bool {
	return validation.IsPresent(string(s))
}

// MaskSecret masks a secret for display
func MaskSecret(secret string) string {
	if secret == "" {
		return "(not set)"
	}
	if len(secret) <= 12 {
		return "****"
	}
	return secret[:6] + "..." + secret[len(secret)-4:]
}

// Credentials are the inputs that gate the optional sections
type Credentials struct {
	PrivateKey  Secret
	SeitraceKey Secret
}

// GasMode selects how gas or gas price is chosen
type GasMode string

const (
	GasModeAuto  GasMode = "auto"
	GasModeFixed GasMode = "fixed"
)

// GasSetting is either automatic or a fixed value
type GasSetting struct {
	Mode  GasMode
	Value uint64 // only used when Mode is GasModeFixed
}

// AutoGas lets the node estimate the value
func AutoGas() GasSetting {
	return GasSetting{Mode: GasModeAuto}
}

// Validate implements ozzo's Validatable
func (g GasSetting) Validate() error {
	return ozzo.ValidateStruct(&g,
		ozzo.Field(&g.Mode, ozzo.Required, ozzo.In(GasModeAuto, GasModeFixed)),
		ozzo.Field(&g.Value, ozzo.When(g.Mode == GasModeFixed, ozzo.Required)),
	)
}

// NetworkProfile is a named connection descriptor for one network
type NetworkProfile struct {
	Name              string
	RPCURL            string
	ChainID           int
	SigningCredential Secret
	Gas               GasSetting
	GasPrice          GasSetting
}

// Validate implements ozzo's Validatable
func (p NetworkProfile) Validate() error {
	return ozzo.ValidateStruct(&p,
		ozzo.Field(&p.Name, ozzo.By(stringCheck(validation.ValidateNetworkName))),
		ozzo.Field(&p.RPCURL, ozzo.By(stringCheck(validation.ValidateEndpointURL))),
		ozzo.Field(&p.ChainID, ozzo.Min(1)),
		ozzo.Field(&p.SigningCredential, ozzo.Required),
		ozzo.Field(&p.Gas),
		ozzo.Field(&p.GasPrice),
	)
}

// VerificationProfile enables explorer verification for one network.
// ChainID, APIURL and ExplorerURL make up the custom chain descriptor.
type VerificationProfile struct {
	NetworkName string
	ChainID     int
	APIKey      Secret
	APIURL      string
	ExplorerURL string
}

// Validate implements ozzo's Validatable
func (p VerificationProfile) Validate() error {
	return ozzo.ValidateStruct(&p,
		ozzo.Field(&p.NetworkName, ozzo.By(stringCheck(validation.ValidateNetworkName))),
		ozzo.Field(&p.ChainID, ozzo.Min(1)),
		ozzo.Field(&p.APIKey, ozzo.Required),
		ozzo.Field(&p.APIURL, ozzo.By(stringCheck(validation.ValidateEndpointURL))),
		ozzo.Field(&p.ExplorerURL, ozzo.By(stringCheck(validation.ValidateEndpointURL))),
	)
}

// AssembledConfig is the root configuration value.
// A nil section is omitted from the output; it is never emitted empty.
type AssembledConfig struct {
	Compiler     evm.CompilerProfile
	Networks     []NetworkProfile
	Verification []VerificationProfile
}

// HasNetworks reports whether the networks section is present
func (c *AssembledConfig) HasNetworks() bool {
	return c.Networks != nil
}

// HasVerification reports whether the verification section is present
func (c *AssembledConfig) HasVerification() bool {
	return c.Verification != nil
}

// Section names an optional part of the configuration
type Section string

const (
	SectionNetworks     Section = "networks"
	SectionVerification Section = "etherscan"
)

// Skip records an optional section left out and the variable that enables it
type Skip struct {
	Section Section
	EnvVar  string
}

// Status summarises which optional sections were produced
type Status int

const (
	StatusMinimal Status = iota
	StatusPartial
	StatusFull
)

func (s Status) String() string {
	switch s {
	case StatusMinimal:
		return "minimal"
	case StatusPartial:
		return "partial"
	case StatusFull:
		return "full"
	default:
		return fmt.Sprintf("status(%d)", int(s))
	}
}

// Warning is a non-fatal finding made during assembly
type Warning struct {
	Code    string
	Message string
}

// Result is the outcome of one assembly
type Result struct {
	Config   *AssembledConfig
	Status   Status
	Skipped  []Skip
	Warnings []Warning
}

// MissingEnv returns the variables whose absence narrowed the result
func (r *Result) MissingEnv() []string {
	vars := make([]string, 0, len(r.Skipped))
	for _, s := range r.Skipped {
		vars = append(vars, s.EnvVar)
	}
	return vars
}

func stringCheck(fn func(string) error) ozzo.RuleFunc {
	return func(value interface{}) error {
		s, ok := value.(string)
		if !ok {
			return ozzo.NewError("validation_invalid_type", "must be a string")
		}
		return fn(s)
	}
}
