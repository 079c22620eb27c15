package cli

import "execexam/internal/config"

// Flags holds command-line flags
type Flags struct {
	Mark    string
	Fancy   bool
	Theme   string
	Verbose bool
	View    bool
	Project string
}

// ToConfigFlags converts CLI flags to config flags
func (f *Flags) ToConfigFlags() config.Flags {
	return config.Flags{
		Mark:    f.Mark,
		Fancy:   f.Fancy,
		Theme:   f.Theme,
		Verbose: f.Verbose,
		View:    f.View,
	}
}
