package dimacsio

import (
	"fmt"
	"io"

	"github.com/crillab/wcnfpp/pkg/wcnf"
)

// Load parses r as a WCNF instance and builds a Formula from it,
// configured by cfg.
func Load(r io.Reader, cfg wcnf.Config) (*wcnf.Formula, error) {
	parsed, err := Parse(r)
	if err != nil {
		return nil, err
	}
	f := wcnf.New(cfg)
	if parsed.HasTop {
		f.SetDimacsTop(parsed.Top)
	}
	for _, c := range parsed.Hard {
		if err := f.AddHard(c); err != nil {
			return nil, fmt.Errorf("dimacsio: adding hard clause: %w", err)
		}
	}
	for i, c := range parsed.Soft {
		// AddSoft itself drops a zero-weight clause silently and logs
		// and drops a negative-weight one; neither aborts the load.
		_ = f.AddSoft(c, parsed.Weights[i])
	}
	return f, nil
}
