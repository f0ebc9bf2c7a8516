package config

const (
	EnvNoColor = "NO_COLOR"
	EnvTerm    = "TERM"

	dumbTerminal = "dumb"
)

// ResolveNoColor reports whether colored output must be disabled.
//
// Color starts enabled only when stderr is a terminal. NO_COLOR set to any
// value, including the empty string, disables it, and so does TERM=dumb.
// Once disabled, no later check turns it back on.
func ResolveNoColor(env Environment) bool {
	noColor := !env.StderrIsTerminal()

	if _, ok := env.LookupEnv(EnvNoColor); ok {
		noColor = true
	}

	if term, ok := env.LookupEnv(EnvTerm); ok && term == dumbTerminal {
		noColor = true
	}

	return noColor
}

// ResolveColorEnabled is the positive form of ResolveNoColor.
func ResolveColorEnabled(env Environment) bool {
	return !ResolveNoColor(env)
}
