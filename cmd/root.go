package cmd

import (
	"context"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/Devon-White/monolith/internal/config"
	"github.com/Devon-White/monolith/internal/logger"
	"github.com/Devon-White/monolith/internal/ui"
)

// Version information set at build time.
var version = "dev"

const banner = ` _____     ______________    __________      ___________________    ___
|     \   /              \  |          |    |                   |  |   |
|      \_/       __       \_|    __    |    |    ___     ___    |__|   |
|               |  |            |  |   |    |   |   |   |   |          |
|   |\     /|   |__|    _       |__|   |____|   |   |   |   |    __    |
|   | \___/ |          | \                      |   |   |   |   |  |   |
|___|       |__________|  \_____________________|   |___|   |___|  |___|
`

// Runner receives the resolved options once the command line is accepted.
type Runner func(ctx context.Context, opts *config.Options) error

// headersValue collects every -H occurrence in order.
type headersValue struct {
	raw *[]string
}

func (h headersValue) String() string {
	if h.raw == nil {
		return ""
	}
	return strings.Join(*h.raw, " ")
}

func (h headersValue) Set(s string) error {
	*h.raw = append(*h.raw, s)
	return nil
}

func (h headersValue) Type() string { return "name:value" }

var _ pflag.Value = headersValue{}

// NewRootCmd builds the monolith command. env is consulted once per run to
// derive terminal capabilities; run gets the resolved options.
func NewRootCmd(env config.Environment, run Runner) *cobra.Command {
	raw := config.NewRawOptions()

	cmd := &cobra.Command{
		Use:   "monolith [flags] <target>",
		Short: "Save a web page as a single HTML file",
		Long: banner + `
monolith bundles a web page and its assets (CSS, images, JavaScript)
into a single HTML document.

<target> is a URL or file path; use - to read the document from STDIN.`,
		Args:    cobra.ExactArgs(1),
		Version: version,
		RunE: func(cmd *cobra.Command, args []string) error {
			raw.Target = args[0]
			cmd.Flags().Visit(func(f *pflag.Flag) {
				raw.Set[f.Name] = true
			})

			opts, diags, err := config.Resolve(raw, env)
			if err != nil {
				return err
			}

			ui.NewReporter(cmd.ErrOrStderr(), opts).HeaderDiagnostics(diags)
			logger.SetLogger(logger.New(cmd.ErrOrStderr(), opts.Silent))
			if opts.Insecure {
				logger.Warn("TLS certificate verification disabled", "target", opts.Target)
			}

			return run(cmd.Context(), opts)
		},
	}
	cmd.SetVersionTemplate("monolith {{.Version}}\n")

	f := cmd.Flags()
	f.BoolVarP(&raw.NoAudio, config.FlagNoAudio, "a", false, "removes audio sources")
	f.StringVarP(&raw.BaseURL, config.FlagBaseURL, "b", "", "sets custom base URL (e.g. http://localhost/)")
	f.BoolVarP(&raw.NoCSS, config.FlagNoCSS, "c", false, "removes CSS")
	f.StringVarP(&raw.Charset, config.FlagCharset, "C", "", "enforces custom encoding (e.g. UTF-8)")
	f.BoolVarP(&raw.IgnoreErrors, config.FlagIgnoreErrors, "e", false, "ignore network errors")
	f.BoolVarP(&raw.NoFrames, config.FlagNoFrames, "f", false, "removes frames and iframes")
	f.BoolVarP(&raw.NoFonts, config.FlagNoFonts, "F", false, "removes fonts")
	f.BoolVarP(&raw.NoImages, config.FlagNoImages, "i", false, "removes images")
	f.BoolVarP(&raw.Isolate, config.FlagIsolate, "I", false, "cuts off document from the Internet")
	f.BoolVarP(&raw.NoJS, config.FlagNoJS, "j", false, "removes JavaScript")
	f.BoolVarP(&raw.Insecure, config.FlagInsecure, "k", false, "allows invalid X.509 (TLS) certificates")
	f.BoolVarP(&raw.NoMetadata, config.FlagNoMetadata, "M", false, "excludes timestamp and source information")
	f.StringVarP(&raw.Output, config.FlagOutput, "o", "", "writes output to `file`, use - for STDOUT")
	f.BoolVarP(&raw.Silent, config.FlagSilent, "s", false, "suppresses verbosity (header overwrite notices are hidden; dropped headers are still reported)")
	f.Uint64VarP(&raw.Timeout, config.FlagTimeout, "t", config.DefaultTimeout, "adjusts network request timeout in `seconds`")
	f.StringVarP(&raw.UserAgent, config.FlagUserAgent, "u", config.DefaultUserAgent, "sets custom User-Agent string")
	f.VarP(headersValue{raw: &raw.Headers}, config.FlagHeaders, "H", `sets request headers, e.g. "host:example.com accept:text/html" (name and value separated by ':', pairs by spaces)`)
	f.BoolVarP(&raw.NoVideo, config.FlagNoVideo, "v", false, "removes video sources")
	f.BoolVarP(&raw.UnwrapNoscript, config.FlagUnwrapNoscript, "n", false, "replaces NOSCRIPT elements with their contents")

	return cmd
}

// Execute runs the root command against the real process environment.
func Execute(ctx context.Context) error {
	return NewRootCmd(config.OSEnvironment(), logOptions).ExecuteContext(ctx)
}

// logOptions is the default Runner: it records the resolved options that the
// archiving engine receives.
func logOptions(_ context.Context, opts *config.Options) error {
	attrs := []any{
		"target", opts.Target,
		"stdout", opts.OutputToStdout(),
		"timeout", opts.TimeoutDuration(),
		"color", opts.ColorEnabled(),
	}
	if opts.Headers != nil {
		attrs = append(attrs, "headers", opts.Headers.Len())
	}
	logger.Info("options resolved", attrs...)
	return nil
}
