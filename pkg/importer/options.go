package importer

import (
	"github.com/San4eeez/Cruzak/pkg/catalog"
	"github.com/pkg/errors"
)

// CommitMode controls how often the sink commits.
type CommitMode string

const (
	// CommitPerProduct commits after a product row and again after its
	// attribute rows.
	CommitPerProduct CommitMode = "per_product"

	// CommitSingle commits the whole data load at the end of the run.
	CommitSingle CommitMode = "single"
)

// Options configures an import run.
type Options struct {
	Catalog     catalog.Options
	NumericOnly catalog.NumericOnlyPolicy
	CommitMode  CommitMode
}

// DefaultOptions returns per-product commits, dropped numeric-only attributes
// and NULL for unparseable dates.
func DefaultOptions() Options {
	return Options{
		Catalog:     catalog.DefaultOptions(),
		NumericOnly: catalog.NumericOnlyDrop,
		CommitMode:  CommitPerProduct,
	}
}

// ParseCommitMode validates a commit mode name. An empty name selects
// CommitPerProduct.
func ParseCommitMode(s string) (CommitMode, error) {
	switch m := CommitMode(s); m {
	case "":
		return CommitPerProduct, nil
	case CommitPerProduct, CommitSingle:
		return m, nil
	default:
		return "", errors.Errorf("unsupported commit mode: %s", s)
	}
}
