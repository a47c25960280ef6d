package command

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/simplesurance/interpolate/internal/command/flag"
	"github.com/simplesurance/interpolate/internal/command/term"
	"github.com/simplesurance/interpolate/internal/log"
	"github.com/simplesurance/interpolate/pkg/interpolate"
	"github.com/simplesurance/interpolate/pkg/resolver"
)

const (
	// envVarOnMissing contains the name of an environment variable that
	// is used as default for the --on-missing flag.
	envVarOnMissing = "INTERPOLATE_ON_MISSING"
	// envVarSentinel contains the name of an environment variable that is
	// used as default for the --sentinel flag.
	envVarSentinel = "INTERPOLATE_SENTINEL"
)

const renderLongHelp = `
Replace {name} tokens in a format string with parameter values.

A token is an identifier consisting of letters, digits and underscores,
enclosed in curly braces. Braces that do not enclose an identifier are
copied unchanged. Replacement values are not scanned for tokens again.

The format string is read from the argument, from --template-file or
from stdin.

Parameters are read from --params-file, environment variables with the
--env-prefix and --param assignments. When a parameter is defined
multiple times, the value from the source listed last wins.

--replace substitutes literal strings in the format string before tokens
are resolved, e.g. to convert placeholders of another syntax to tokens.
`

const renderExamples = `
interpolate render -p name=World 'Hello {name}'
interpolate render -f 'params/**/*.toml' --template-file motd.tmpl
interpolate render --on-missing error -p a=1 '{a} {b}'
interpolate render --replace '$USER={user}' -p user=joe 'Hello $USER'
INTERPOLATE_PARAM_user=joe interpolate render --env-prefix INTERPOLATE_PARAM_ '{user}'
`

func init() {
	rootCmd.AddCommand(&newRenderCmd().Command)
}

type renderCmd struct {
	cobra.Command

	params       paramFlags
	templateFile string
	onMissing    *flag.OneOf
	sentinel     string
	newline      bool
	replacements []string
}

func newRenderCmd() *renderCmd {
	cmd := renderCmd{
		Command: cobra.Command{
			Use:     "render [FORMAT-STRING]",
			Short:   "replace tokens in a format string with parameter values",
			Long:    strings.TrimSpace(renderLongHelp),
			Example: strings.TrimSpace(renderExamples),
			Args:    cobra.MaximumNArgs(1),
		},
		onMissing: newOnMissingFlag(),
	}

	cmd.Run = cmd.run

	cmd.params.register(&cmd.Command)

	cmd.Flags().StringVarP(&cmd.templateFile, "template-file", "t", "",
		"read the format string from the file")
	cmd.Flags().Var(cmd.onMissing, "on-missing",
		cmd.onMissing.Usage(term.Highlight))
	cmd.Flags().StringVar(&cmd.sentinel, "sentinel", sentinelDefault(),
		"text that replaces tokens without a parameter when --on-missing is sentinel")
	cmd.Flags().BoolVarP(&cmd.newline, "newline", "n", false,
		"append a newline to the result")
	cmd.Flags().StringArrayVar(&cmd.replacements, "replace", nil,
		"replace the literal string OLD with NEW in the format string before\n"+
			"tokens are resolved, in the format OLD=NEW, can be specified multiple times")

	_ = cmd.onMissing.RegisterFlagCompletion(&cmd.Command)

	return &cmd
}

func newOnMissingFlag() *flag.OneOf {
	policies := []string{
		interpolate.MissingSentinel.String(),
		interpolate.MissingError.String(),
		interpolate.MissingKeep.String(),
	}

	f := flag.NewOneOfFlag(
		"on-missing",
		interpolate.MissingSentinel.String(),
		"handling of tokens without a parameter",
		policies...,
	)

	if env := os.Getenv(envVarOnMissing); env != "" {
		if err := f.Set(env); err != nil {
			log.Errorf("ignoring $%s: %s", envVarOnMissing, err)
		}
	}

	return f
}

func sentinelDefault() string {
	if s, exists := os.LookupEnv(envVarSentinel); exists {
		return s
	}

	return interpolate.DefaultSentinel
}

func (c *renderCmd) run(_ *cobra.Command, args []string) {
	format, err := readFormatString(args, c.templateFile)
	exitOnErr(err)

	params, err := c.params.load()
	exitOnErr(err)

	policy, err := interpolate.PolicyFromString(c.onMissing.Value())
	exitOnErr(err)

	uuids, err := c.params.uuidResolvers()
	exitOnErr(err)

	replacements, err := strReplacements(c.replacements)
	exitOnErr(err)

	log.Debugf("format string references the parameters: %s, %d parameters are defined, missing parameter policy: %s",
		strings.Join(interpolate.Identifiers(format), ", "), len(params), policy)

	r := append(replacements, uuids...)
	r = append(r, &resolver.Params{
		Interpolator: &interpolate.Interpolator{
			Missing:  policy,
			Sentinel: c.sentinel,
		},
		Params: params,
	})

	result, err := r.Resolve(format)
	exitOnErr(err)

	if c.newline {
		stdout.Println(result)
		return
	}

	stdout.Printf("%s", result)
}

// strReplacements returns StrReplacement resolvers for OLD=NEW strings.
func strReplacements(replacements []string) (resolver.List, error) {
	res := make(resolver.List, 0, len(replacements))

	for _, r := range replacements {
		old, repl, found := strings.Cut(r, "=")
		if !found || old == "" {
			return nil, fmt.Errorf("--replace %q: must be in the format OLD=NEW, OLD must not be empty", r)
		}

		res = append(res, &resolver.StrReplacement{Old: old, New: repl})
	}

	return res, nil
}
