package slice

import "os"

// Config holds the small set of internal policy knobs spec.md leaves
// as implementation choices rather than requirements (see §4.1). There
// is no configuration file or CLI surface in this core; values come
// from the environment with sensible defaults, the same pattern used
// throughout the retrieval pack for leaf config this small.
type Config struct {
	// UseMmap selects mmap-backed SampleFile reads over plain
	// pread-style ReadAt. Default true.
	UseMmap bool

	// SequentialHint advises the kernel the mapping will be read
	// sequentially (MADV_SEQUENTIAL or equivalent). Only consulted
	// when UseMmap is true. Default true.
	SequentialHint bool
}

// DefaultConfig returns the default policy: mmap with a sequential
// access hint.
func DefaultConfig() Config {
	return Config{UseMmap: true, SequentialHint: true}
}

// ConfigFromEnv overlays DefaultConfig with MP4VAULT_USE_MMAP and
// MP4VAULT_SEQUENTIAL_HINT, if set to "0" or "false".
func ConfigFromEnv() Config {
	cfg := DefaultConfig()
	if v := os.Getenv("MP4VAULT_USE_MMAP"); v == "0" || v == "false" {
		cfg.UseMmap = false
	}
	if v := os.Getenv("MP4VAULT_SEQUENTIAL_HINT"); v == "0" || v == "false" {
		cfg.SequentialHint = false
	}
	return cfg
}
