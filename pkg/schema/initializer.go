package schema

import (
	"context"
	"log/slog"

	"github.com/pkg/errors"
)

// DDLExecutor executes schema statements and commits them.
type DDLExecutor interface {
	ExecDDL(context.Context, string) error
	Commit(context.Context) error
}

// Initialize drops and recreates the products and product_attributes tables.
// Any existing data in both tables is discarded. Every error is fatal, no
// attempt is made to recover a partially created schema.
func Initialize(ctx context.Context, exec DDLExecutor, d Dialect) error {
	for _, stmt := range Statements(d) {
		slog.Debug("Executing DDL", "dialect", d, "statement", stmt)

		if err := exec.ExecDDL(ctx, stmt); err != nil {
			return errors.Wrapf(err, "failed to execute statement: %s", stmt)
		}
	}

	if err := exec.Commit(ctx); err != nil {
		return errors.Wrap(err, "failed to commit schema")
	}

	slog.Info("Schema initialized", "dialect", d, "tables", []string{Products.Name, Attributes.Name})
	return nil
}
