package command

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/simplesurance/interpolate/internal/log"
	"github.com/simplesurance/interpolate/pkg/interpolate"
)

var stdin io.Reader = os.Stdin

// exitOnErr prints err and terminates the program when err is not nil.
// Errors about missing parameters terminate with exitCodeMissingParameter,
// all others with exitCodeError.
func exitOnErr(err error, msg ...any) {
	if err == nil {
		return
	}

	stderr.ErrPrintln(err, msg...)

	if errors.Is(err, interpolate.ErrMissingParameter) {
		exitFunc(exitCodeMissingParameter)
		return
	}

	exitFunc(exitCodeError)
}

// readFormatString returns the format string from args, when it's empty from
// templateFile and when that is also empty from stdin.
func readFormatString(args []string, templateFile string) (string, error) {
	if len(args) > 0 && templateFile != "" {
		return "", errors.New("a format string argument and --template-file can not be specified together")
	}

	if len(args) > 0 {
		return args[0], nil
	}

	if templateFile != "" {
		log.Debugf("reading format string from %s", templateFile)

		content, err := os.ReadFile(templateFile)
		if err != nil {
			return "", fmt.Errorf("reading template file failed: %w", err)
		}

		return string(content), nil
	}

	log.Debugln("reading format string from stdin")

	content, err := io.ReadAll(stdin)
	if err != nil {
		return "", fmt.Errorf("reading from stdin failed: %w", err)
	}

	return string(content), nil
}
