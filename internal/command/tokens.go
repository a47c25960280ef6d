package command

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/simplesurance/interpolate/internal/command/flag"
	"github.com/simplesurance/interpolate/internal/command/term"
	"github.com/simplesurance/interpolate/internal/format"
	"github.com/simplesurance/interpolate/internal/format/csv"
	"github.com/simplesurance/interpolate/internal/format/jsonformat"
	"github.com/simplesurance/interpolate/internal/format/table"
	"github.com/simplesurance/interpolate/pkg/interpolate"
)

const tokensLongHelp = `
List the tokens that are referenced in a format string.

For every distinct identifier the number of occurrences and the byte
offset of its first occurrence are shown.

When --check is passed, it is additionally shown if a parameter exists
for the identifier. If parameters are missing the command exits with
code 2.
`

const tokensExamples = `
interpolate tokens 'Hello {name}, {greeting}'
interpolate tokens --format json --template-file motd.tmpl
interpolate tokens --check -f params.toml --template-file motd.tmpl
`

const (
	tokensIdentifierHeader  = "Identifier"
	tokensOccurrencesHeader = "Occurrences"
	tokensOffsetHeader      = "First Offset"
	tokensSuppliedHeader    = "Supplied"
)

func init() {
	rootCmd.AddCommand(&newTokensCmd().Command)
}

type tokensCmd struct {
	cobra.Command

	params       paramFlags
	templateFile string
	format       *flag.Format
	quiet        bool
	check        bool
}

type tokenSummary struct {
	identifier  string
	occurrences int
	firstOffset int
}

func newTokensCmd() *tokensCmd {
	cmd := tokensCmd{
		Command: cobra.Command{
			Use:     "tokens [FORMAT-STRING]",
			Short:   "list the tokens of a format string",
			Long:    strings.TrimSpace(tokensLongHelp),
			Example: strings.TrimSpace(tokensExamples),
			Args:    cobra.MaximumNArgs(1),
		},
		format: flag.NewFormatFlag(),
	}

	cmd.Run = cmd.run

	cmd.params.register(&cmd.Command)

	cmd.Flags().StringVarP(&cmd.templateFile, "template-file", "t", "",
		"read the format string from the file")
	cmd.Flags().Var(cmd.format, "format",
		cmd.format.Usage(term.Highlight))
	cmd.Flags().BoolVarP(&cmd.quiet, "quiet", "q", false,
		"do not print a header")
	cmd.Flags().BoolVar(&cmd.check, "check", false,
		"show if parameters exist for the identifiers, exit with code 2 if not")

	_ = cmd.format.RegisterFlagCompletion(&cmd.Command)

	return &cmd
}

func summarizeTokens(tokens []interpolate.Token) []*tokenSummary {
	var res []*tokenSummary
	byName := map[string]*tokenSummary{}

	for _, tok := range tokens {
		if s, exists := byName[tok.Name]; exists {
			s.occurrences++
			continue
		}

		s := tokenSummary{
			identifier:  tok.Name,
			occurrences: 1,
			firstOffset: tok.Start,
		}
		byName[tok.Name] = &s
		res = append(res, &s)
	}

	return res
}

func (c *tokensCmd) headers() []string {
	if c.format.Val == flag.FormatJSON {
		res := []string{"identifier", "occurrences", "first_offset"}
		if c.check {
			res = append(res, "supplied")
		}
		return res
	}

	if c.quiet {
		return nil
	}

	res := []string{tokensIdentifierHeader, tokensOccurrencesHeader, tokensOffsetHeader}
	if c.check {
		res = append(res, tokensSuppliedHeader)
	}

	return res
}

func (c *tokensCmd) newFormatter() format.Formatter {
	switch c.format.Val {
	case flag.FormatJSON:
		return jsonformat.New(c.headers(), stdout)
	case flag.FormatCSV:
		return csv.New(c.headers(), stdout)
	default:
		return table.New(c.headers(), stdout)
	}
}

func (c *tokensCmd) run(_ *cobra.Command, args []string) {
	formatStr, err := readFormatString(args, c.templateFile)
	exitOnErr(err)

	var params map[string]any
	if c.check {
		params, err = c.params.load()
		exitOnErr(err)
	}

	formatter := c.newFormatter()
	var missing []string

	for _, s := range summarizeTokens(interpolate.Tokens(formatStr)) {
		row := []any{s.identifier, s.occurrences, s.firstOffset}

		if c.check {
			_, supplied := params[s.identifier]
			supplied = supplied || c.params.isUUIDParam(s.identifier)

			if !supplied {
				missing = append(missing, s.identifier)
			}

			row = append(row, c.suppliedCol(supplied))
		}

		exitOnErr(formatter.WriteRow(row...))
	}

	exitOnErr(formatter.Flush())

	if len(missing) > 0 {
		exitOnErr(&missingParametersError{names: missing})
	}
}

func (c *tokensCmd) suppliedCol(supplied bool) any {
	switch c.format.Val {
	case flag.FormatJSON:
		return supplied
	case flag.FormatCSV:
		return fmt.Sprint(supplied)
	default:
		return term.ColoredParamStatus(supplied)
	}
}

type missingParametersError struct {
	names []string
}

func (e *missingParametersError) Error() string {
	return fmt.Sprintf("missing parameters: %s", strings.Join(e.names, ", "))
}

func (e *missingParametersError) Unwrap() error {
	return interpolate.ErrMissingParameter
}
