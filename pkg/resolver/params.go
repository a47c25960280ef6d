package resolver

import (
	"github.com/simplesurance/interpolate/pkg/interpolate"
)

// Params replaces {identifier} tokens with the values in Params.
// If Interpolator is nil, interpolate.New() is used.
type Params struct {
	Interpolator *interpolate.Interpolator
	Params       map[string]any
}

// NewParams returns a Params resolver that fails on tokens without a
// parameter.
func NewParams(params map[string]any) *Params {
	return &Params{
		Interpolator: &interpolate.Interpolator{Missing: interpolate.MissingError},
		Params:       params,
	}
}

func (p *Params) Resolve(in string) (string, error) {
	ip := p.Interpolator
	if ip == nil {
		ip = interpolate.New()
	}

	return ip.Interpolate(in, p.Params)
}
