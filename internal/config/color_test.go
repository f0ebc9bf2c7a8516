package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolveNoColor(t *testing.T) {
	tests := []struct {
		name        string
		env         MapEnvironment
		wantNoColor bool
	}{
		{
			name:        "terminal without overrides",
			env:         MapEnvironment{Terminal: true},
			wantNoColor: false,
		},
		{
			name:        "terminal with color-capable TERM",
			env:         MapEnvironment{Terminal: true, Vars: map[string]string{"TERM": "xterm-256color"}},
			wantNoColor: false,
		},
		{
			name:        "stderr redirected",
			env:         MapEnvironment{Terminal: false},
			wantNoColor: true,
		},
		{
			name:        "NO_COLOR set to empty string",
			env:         MapEnvironment{Terminal: true, Vars: map[string]string{"NO_COLOR": ""}},
			wantNoColor: true,
		},
		{
			name:        "NO_COLOR set to a value",
			env:         MapEnvironment{Terminal: true, Vars: map[string]string{"NO_COLOR": "0"}},
			wantNoColor: true,
		},
		{
			name:        "dumb terminal",
			env:         MapEnvironment{Terminal: true, Vars: map[string]string{"TERM": "dumb"}},
			wantNoColor: true,
		},
		{
			name:        "TERM match is exact",
			env:         MapEnvironment{Terminal: true, Vars: map[string]string{"TERM": "DUMB"}},
			wantNoColor: false,
		},
		{
			name:        "every signal disables",
			env:         MapEnvironment{Terminal: false, Vars: map[string]string{"NO_COLOR": "1", "TERM": "dumb"}},
			wantNoColor: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.wantNoColor, ResolveNoColor(tt.env))
			assert.Equal(t, !tt.wantNoColor, ResolveColorEnabled(tt.env))
		})
	}
}

func TestOSEnvironment_LookupEnv(t *testing.T) {
	t.Setenv("NO_COLOR", "")

	v, ok := OSEnvironment().LookupEnv("NO_COLOR")
	assert.True(t, ok)
	assert.Equal(t, "", v)
	assert.True(t, ResolveNoColor(OSEnvironment()))
}
