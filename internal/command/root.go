package command

import (
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/simplesurance/interpolate/internal/command/term"
	"github.com/simplesurance/interpolate/internal/log"
	"github.com/simplesurance/interpolate/internal/version"
)

var rootCmd = &cobra.Command{
	Use:              "interpolate",
	Short:            "interpolate replaces {name} tokens in strings with parameter values.",
	PersistentPreRun: initSb,
	SilenceUsage:     true,
}

var verboseFlag bool
var noColorFlag bool

var stdout = term.NewStream(os.Stdout)
var stderr = term.NewStream(os.Stderr)

var exitFunc = func(code int) { os.Exit(code) }

func initSb(_ *cobra.Command, _ []string) {
	if verboseFlag {
		log.StdLogger.EnableDebug(verboseFlag)
	}

	if noColorFlag {
		color.NoColor = true
	}
}

// Execute parses commandline flags and execute their actions
func Execute() {
	if err := version.LoadPackageVars(); err != nil {
		stderr.Printf("setting version failed: %s\n", err)
	}
	rootCmd.Version = version.CurSemVer.String()

	rootCmd.PersistentFlags().BoolVarP(&verboseFlag, "verbose", "v", false, "verbose output")
	rootCmd.PersistentFlags().BoolVar(&noColorFlag, "no-color", false, "disable color output")

	err := rootCmd.Execute()
	exitOnErr(err)
}
