package strex

import (
	"github.com/go-playground/validator/v10"

	"github.com/coregx/strex/metrics"
)

// Config controls how Compile builds a StrexSet.
//
// Example:
//
//	cfg := strex.DefaultConfig()
//	cfg.CaseInsensitive = true
//	set, err := strex.CompileWithConfig(patterns, cfg)
type Config struct {
	// CaseInsensitive folds literal interning and automaton matching to
	// lower case. Default: false.
	CaseInsensitive bool

	// MaxPatterns bounds how many patterns a single Compile call will
	// accept, guarding the shared word table and chain graph from
	// unbounded memory use. Default: 1,000,000.
	MaxPatterns int `validate:"min=1,max=10000000"`

	// MaxWordLen bounds the length of any single interned literal. The
	// grammar itself has no length limit on an identifier token.
	// Default: 4096.
	MaxWordLen int `validate:"min=1,max=1048576"`

	// Metrics, if non-nil, receives compile and match observations.
	// Nil (the default) means no Prometheus collectors are touched;
	// strex.Stats remains available regardless.
	Metrics *metrics.Metrics `validate:"-"`
}

// DefaultConfig returns sensible defaults for Compile.
func DefaultConfig() Config {
	return Config{
		CaseInsensitive: false,
		MaxPatterns:     1_000_000,
		MaxWordLen:      4096,
	}
}

var configValidator = validator.New()

// Validate reports whether c's fields are within their documented
// ranges.
func (c Config) Validate() error {
	if err := configValidator.Struct(c); err != nil {
		if verrs, ok := err.(validator.ValidationErrors); ok && len(verrs) > 0 {
			fe := verrs[0]
			return &ConfigError{Field: fe.Field(), Message: "failed check: " + fe.Tag()}
		}
		return &ConfigError{Field: "Config", Message: err.Error()}
	}
	return nil
}

// ConfigError reports an out-of-range Config field.
type ConfigError struct {
	Field   string
	Message string
}

func (e *ConfigError) Error() string {
	return "strex: invalid config: " + e.Field + ": " + e.Message
}
