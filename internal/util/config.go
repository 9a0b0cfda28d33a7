package util

// Config holds runtime settings and flags.
type Config struct {
	SeedText     string
	DSN          string
	TextDensity  string // concise|standard|rich
	Mode         string // classic|endless|daily|challenge
	RulesVersion string
}
