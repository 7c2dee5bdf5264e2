package types

// Config holds the policy flags and the default persister target consumed
// by the core operations. It is loaded from the configuration file and
// passed in explicitly; the domain layer never reads it ambiently.
type Config struct {
	// Persister is the default path or connection string used when a
	// command does not name one.
	Persister string `mapstructure:"persister" yaml:"persister"`

	// ForceDrop allows dropping tasks that are not checked.
	ForceDrop bool `mapstructure:"force_drop" yaml:"force_drop"`

	// ForceCopy allows copying onto a destination that already has tasks.
	ForceCopy bool `mapstructure:"force_copy" yaml:"force_copy"`

	// DropAfterCopy removes the source target after a successful copy.
	DropAfterCopy bool `mapstructure:"drop_after_copy" yaml:"drop_after_copy"`
}

// DefaultConfig returns the configuration used when no file exists.
func DefaultConfig() Config {
	return Config{Persister: "tasks.csv"}
}
