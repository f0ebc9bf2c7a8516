package config

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"golang.org/x/net/html/charset"
	"golang.org/x/text/encoding"
)

const (
	// DefaultTimeout is the network request timeout in seconds.
	DefaultTimeout uint64 = 120
	// DefaultUserAgent is sent when no --user-agent is given.
	DefaultUserAgent = "Mozilla/5.0 (X11; Ubuntu; Linux x86_64; rv:73.0) Gecko/20100101 Firefox/73.0"

	// StdioTarget as the target reads the document from stdin; as the output
	// it writes to stdout.
	StdioTarget = "-"
)

// Long flag names, shared by the command definition and Options.Args.
const (
	FlagNoAudio        = "no-audio"
	FlagBaseURL        = "base-url"
	FlagNoCSS          = "no-css"
	FlagCharset        = "charset"
	FlagIgnoreErrors   = "ignore-errors"
	FlagNoFrames       = "no-frames"
	FlagNoFonts        = "no-fonts"
	FlagNoImages       = "no-images"
	FlagIsolate        = "isolate"
	FlagNoJS           = "no-js"
	FlagInsecure       = "insecure"
	FlagNoMetadata     = "no-metadata"
	FlagOutput         = "output"
	FlagSilent         = "silent"
	FlagTimeout        = "timeout"
	FlagUserAgent      = "user-agent"
	FlagHeaders        = "headers"
	FlagNoVideo        = "no-video"
	FlagUnwrapNoscript = "unwrap-noscript"
)

var (
	ErrMissingTarget  = errors.New("target is required")
	ErrUnknownCharset = errors.New("unknown charset")
)

// Options holds the resolved settings for one monolith run. It is built once
// by Resolve and treated as read-only afterwards.
type Options struct {
	NoAudio        bool
	BaseURL        *string
	NoCSS          bool
	Charset        *string
	IgnoreErrors   bool
	NoFrames       bool
	NoFonts        bool
	NoImages       bool
	Isolate        bool
	NoJS           bool
	Insecure       bool
	NoMetadata     bool
	Output         *string // nil or "-" writes to stdout
	Silent         bool
	Timeout        uint64 // seconds
	UserAgent      string
	Headers        *HeaderList // nil when no -H was given
	NoVideo        bool
	UnwrapNoscript bool
	Target         string // URL, file path, or "-" for stdin

	// NoColor is derived from the environment, never set by a flag.
	NoColor bool
}

// DefaultOptions returns Options with every default applied and no target.
func DefaultOptions() Options {
	return Options{
		Timeout:   DefaultTimeout,
		UserAgent: DefaultUserAgent,
	}
}

// ColorEnabled reports whether downstream reporting may emit color.
func (o *Options) ColorEnabled() bool {
	return !o.NoColor
}

// OutputToStdout reports whether the document goes to standard output.
func (o *Options) OutputToStdout() bool {
	return o.Output == nil || *o.Output == StdioTarget
}

// ReadsStdin reports whether the target is standard input.
func (o *Options) ReadsStdin() bool {
	return o.Target == StdioTarget
}

// TimeoutDuration returns Timeout as a time.Duration.
func (o *Options) TimeoutDuration() time.Duration {
	return time.Duration(o.Timeout) * time.Second
}

// RawOptions is the flag set as populated by the argument parser, before
// defaults for optional values and derived fields are settled.
type RawOptions struct {
	NoAudio        bool
	BaseURL        string
	NoCSS          bool
	Charset        string
	IgnoreErrors   bool
	NoFrames       bool
	NoFonts        bool
	NoImages       bool
	Isolate        bool
	NoJS           bool
	Insecure       bool
	NoMetadata     bool
	Output         string
	Silent         bool
	Timeout        uint64
	UserAgent      string
	Headers        []string // one entry per -H occurrence
	NoVideo        bool
	UnwrapNoscript bool
	Target         string

	// Set holds the long names of flags given explicitly on the command line.
	Set map[string]bool
}

// NewRawOptions returns RawOptions carrying the defaults.
func NewRawOptions() RawOptions {
	return RawOptions{
		Timeout:   DefaultTimeout,
		UserAgent: DefaultUserAgent,
		Set:       make(map[string]bool),
	}
}

// Resolve validates raw and builds the final Options. Header diagnostics are
// returned for the caller to report; they never make Resolve fail.
func Resolve(raw RawOptions, env Environment) (*Options, []HeaderDiagnostic, error) {
	if raw.Target == "" {
		return nil, nil, ErrMissingTarget
	}

	opts := DefaultOptions()
	opts.NoAudio = raw.NoAudio
	opts.NoCSS = raw.NoCSS
	opts.IgnoreErrors = raw.IgnoreErrors
	opts.NoFrames = raw.NoFrames
	opts.NoFonts = raw.NoFonts
	opts.NoImages = raw.NoImages
	opts.Isolate = raw.Isolate
	opts.NoJS = raw.NoJS
	opts.Insecure = raw.Insecure
	opts.NoMetadata = raw.NoMetadata
	opts.Silent = raw.Silent
	opts.NoVideo = raw.NoVideo
	opts.UnwrapNoscript = raw.UnwrapNoscript
	opts.Timeout = raw.Timeout
	opts.UserAgent = raw.UserAgent
	opts.Target = raw.Target

	// The base may be a URL or a filesystem path; it is kept as given.
	if raw.Set[FlagBaseURL] {
		opts.BaseURL = stringPtr(raw.BaseURL)
	}

	if raw.Set[FlagCharset] {
		if name := strings.TrimSpace(raw.Charset); name != "" {
			// Labels mapped to the replacement encoding decode to U+FFFD only.
			if enc, _ := charset.Lookup(name); enc == nil || enc == encoding.Replacement {
				return nil, nil, fmt.Errorf("%w: %q", ErrUnknownCharset, raw.Charset)
			}
		}
		opts.Charset = stringPtr(raw.Charset)
	}

	if raw.Set[FlagOutput] {
		opts.Output = stringPtr(raw.Output)
	}

	var diags []HeaderDiagnostic
	if len(raw.Headers) > 0 {
		opts.Headers = NewHeaderList()
		for _, h := range raw.Headers {
			diags = parseHeaderListInto(opts.Headers, h, diags)
		}
	}

	opts.NoColor = ResolveNoColor(env)

	return &opts, diags, nil
}

// Args re-encodes the explicitly settable fields as command-line arguments.
// Only fields that differ from their defaults are emitted; the target comes
// last.
func (o *Options) Args() []string {
	var args []string

	boolFlags := []struct {
		name string
		on   bool
	}{
		{FlagNoAudio, o.NoAudio},
		{FlagNoCSS, o.NoCSS},
		{FlagIgnoreErrors, o.IgnoreErrors},
		{FlagNoFrames, o.NoFrames},
		{FlagNoFonts, o.NoFonts},
		{FlagNoImages, o.NoImages},
		{FlagIsolate, o.Isolate},
		{FlagNoJS, o.NoJS},
		{FlagInsecure, o.Insecure},
		{FlagNoMetadata, o.NoMetadata},
		{FlagSilent, o.Silent},
		{FlagNoVideo, o.NoVideo},
		{FlagUnwrapNoscript, o.UnwrapNoscript},
	}
	for _, f := range boolFlags {
		if f.on {
			args = append(args, "--"+f.name)
		}
	}

	if o.BaseURL != nil {
		args = append(args, "--"+FlagBaseURL+"="+*o.BaseURL)
	}
	if o.Charset != nil {
		args = append(args, "--"+FlagCharset+"="+*o.Charset)
	}
	if o.Output != nil {
		args = append(args, "--"+FlagOutput+"="+*o.Output)
	}
	if o.Timeout != DefaultTimeout {
		args = append(args, "--"+FlagTimeout+"="+strconv.FormatUint(o.Timeout, 10))
	}
	if o.UserAgent != DefaultUserAgent {
		args = append(args, "--"+FlagUserAgent+"="+o.UserAgent)
	}
	if o.Headers != nil {
		args = append(args, "--"+FlagHeaders+"="+o.Headers.String())
	}

	if strings.HasPrefix(o.Target, "-") && o.Target != StdioTarget {
		args = append(args, "--")
	}
	return append(args, o.Target)
}

func stringPtr(s string) *string {
	return &s
}
