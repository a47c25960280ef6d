package resolver

import (
	"strings"

	"github.com/google/uuid"
)

// UUIDVar replaces every occurrence of Old with the same, newly generated,
// random UUID.
type UUIDVar struct {
	Old string
}

func (r *UUIDVar) Resolve(in string) (string, error) {
	if !strings.Contains(in, r.Old) {
		return in, nil
	}

	return strings.ReplaceAll(in, r.Old, uuid.NewString()), nil
}
