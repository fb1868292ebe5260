package vec

import (
	"fmt"

	"github.com/arloliu/zerovec/errs"
	"github.com/arloliu/zerovec/internal/options"
)

type varConfig struct {
	indexWidth int
}

// VarOption configures how a variable-width sequence is built.
type VarOption = options.Option[*varConfig]

// WithIndexWidth forces the index table width to w bytes instead of the
// narrowest width able to address the payload.
//
// w must be 1, 2 or 4. Building fails with errs.ErrPayloadTooLarge if the
// payload does not fit the forced width.
func WithIndexWidth(w int) VarOption {
	return options.New(func(cfg *varConfig) error {
		if !validWidth(w) {
			return fmt.Errorf("%w: %d", errs.ErrInvalidIndexWidth, w)
		}
		cfg.indexWidth = w

		return nil
	})
}

func newVarConfig(opts []VarOption) (*varConfig, error) {
	cfg := &varConfig{}
	if err := options.Apply(cfg, opts...); err != nil {
		return nil, err
	}

	return cfg, nil
}
