package config

import (
	"os"

	"golang.org/x/term"
)

// Environment is the process state consulted while resolving Options.
type Environment interface {
	LookupEnv(key string) (string, bool)
	StderrIsTerminal() bool
}

type osEnvironment struct{}

// OSEnvironment returns an Environment backed by the real process.
func OSEnvironment() Environment {
	return osEnvironment{}
}

func (osEnvironment) LookupEnv(key string) (string, bool) {
	return os.LookupEnv(key)
}

func (osEnvironment) StderrIsTerminal() bool {
	return term.IsTerminal(int(os.Stderr.Fd()))
}

// MapEnvironment is a fixed Environment, used in tests and by callers that
// embed the option parser.
type MapEnvironment struct {
	Vars     map[string]string
	Terminal bool
}

func (m MapEnvironment) LookupEnv(key string) (string, bool) {
	v, ok := m.Vars[key]
	return v, ok
}

func (m MapEnvironment) StderrIsTerminal() bool {
	return m.Terminal
}
