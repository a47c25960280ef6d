package command

import (
	"fmt"
	"os"
	"slices"

	"github.com/spf13/cobra"

	"github.com/simplesurance/interpolate/internal/log"
	"github.com/simplesurance/interpolate/pkg/interpolate"
	"github.com/simplesurance/interpolate/pkg/params"
	"github.com/simplesurance/interpolate/pkg/resolver"
)

// envVarEnvPrefix contains the name of an environment variable that is used
// as default for the --env-prefix flag.
const envVarEnvPrefix = "INTERPOLATE_ENV_PREFIX"

// paramFlags are the command line flags that define parameters.
type paramFlags struct {
	assignments []string
	files       []string
	envPrefix   string
	uuids       []string
}

func (p *paramFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringArrayVarP(&p.assignments, "param", "p", nil,
		"set a parameter, in the format KEY=VALUE, can be specified multiple times")
	cmd.Flags().StringArrayVarP(&p.files, "params-file", "f", nil,
		"read parameters from TOML, YAML or JSON files matching the glob pattern,\n"+
			"'**' matches directories recursively, can be specified multiple times")
	cmd.Flags().StringVar(&p.envPrefix, "env-prefix", os.Getenv(envVarEnvPrefix),
		"use environment variables starting with the prefix as parameters,\n"+
			"the prefix is removed from the parameter names")
	cmd.Flags().StringArrayVar(&p.uuids, "uuid", nil,
		"replace {NAME} tokens with a random UUID, can be specified multiple times")
}

// load returns the parameters defined by the flags.
// Parameters from --params-file are overridden by environment parameters,
// which are overridden by --param assignments.
func (p *paramFlags) load() (map[string]any, error) {
	var fileParams map[string]any
	var envParams map[string]any

	if len(p.files) > 0 {
		var err error

		fileParams, err = params.FromFiles(p.files)
		if err != nil {
			return nil, err
		}
	}

	if p.envPrefix != "" {
		envParams = params.FromEnv(p.envPrefix, os.Environ())
		log.Debugf("found %d parameters in environment variables with prefix %q", len(envParams), p.envPrefix)
	}

	argParams, err := params.FromAssignments(p.assignments)
	if err != nil {
		return nil, err
	}

	return params.Merge(fileParams, envParams, argParams), nil
}

// uuidResolvers returns resolvers that replace the --uuid tokens.
func (p *paramFlags) uuidResolvers() (resolver.List, error) {
	res := make(resolver.List, 0, len(p.uuids))

	for _, name := range p.uuids {
		if !interpolate.IsIdentifier(name) {
			return nil, fmt.Errorf("--uuid %q: not a valid parameter name, only letters, digits and underscores are allowed", name)
		}

		res = append(res, &resolver.UUIDVar{Old: "{" + name + "}"})
	}

	return res, nil
}

// isUUIDParam returns true if name was passed via --uuid.
func (p *paramFlags) isUUIDParam(name string) bool {
	return slices.Contains(p.uuids, name)
}
