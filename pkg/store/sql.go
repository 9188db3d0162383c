package store

import (
	"context"
	"database/sql"
	"time"

	"github.com/San4eeez/Cruzak/pkg/catalog"
	"github.com/San4eeez/Cruzak/pkg/schema"
	"github.com/pkg/errors"
)

// SQLSink writes to a database/sql connection. A transaction is started by the
// first write after a Commit, so every Commit makes exactly the writes since the
// previous one durable.
type SQLSink struct {
	db      *sql.DB
	tx      *sql.Tx
	dialect schema.Dialect

	insertProduct   string
	insertAttribute string
}

// NewSQLSink wraps an open connection speaking dialect d. The sink owns db and
// closes it on Close.
func NewSQLSink(db *sql.DB, d schema.Dialect) *SQLSink {
	return &SQLSink{
		db:              db,
		dialect:         d,
		insertProduct:   schema.Products.InsertStatement(d, true),
		insertAttribute: schema.Attributes.InsertStatement(d, false),
	}
}

func (s *SQLSink) Dialect() schema.Dialect { return s.dialect }

func (s *SQLSink) ExecDDL(ctx context.Context, stmt string) error {
	tx, err := s.begin(ctx)
	if err != nil {
		return err
	}

	_, err = tx.ExecContext(ctx, stmt)
	return err
}

func (s *SQLSink) InsertProduct(ctx context.Context, p *catalog.Product) (int64, error) {
	tx, err := s.begin(ctx)
	if err != nil {
		return 0, err
	}

	var id int64
	err = tx.QueryRowContext(ctx, s.insertProduct,
		p.Name,
		nullString(p.OKPD2),
		nullString(p.Detail),
		nullString(p.Unit),
		nullString(p.Category),
		nullString(p.KTRUCode),
		nullString(p.KKNCode),
		nullString(p.ProductPart),
		nullTime(p.UpdateDate),
		p.IsRussian,
	).Scan(&id)
	if err != nil {
		return 0, errors.Wrapf(err, "failed to insert product %q", p.Name)
	}

	return id, nil
}

func (s *SQLSink) InsertAttribute(ctx context.Context, productID int64, row catalog.AttributeRow) error {
	tx, err := s.begin(ctx)
	if err != nil {
		return err
	}

	_, err = tx.ExecContext(ctx, s.insertAttribute,
		productID,
		nullString(row.Name),
		row.NumericValue,
		nullString(row.TextValue),
		nullString(row.AdditionalText),
		nullString(row.Unit),
	)
	if err != nil {
		return errors.Wrapf(err, "failed to insert attribute of product %d", productID)
	}

	return nil
}

// Commit commits the open transaction, if any.
func (s *SQLSink) Commit(context.Context) error {
	if s.tx == nil {
		return nil
	}

	tx := s.tx
	s.tx = nil
	return errors.Wrap(tx.Commit(), "failed to commit transaction")
}

// Close rolls back uncommitted writes and closes the connection.
func (s *SQLSink) Close() error {
	if s.tx != nil {
		_ = s.tx.Rollback()
		s.tx = nil
	}
	return s.db.Close()
}

func (s *SQLSink) begin(ctx context.Context) (*sql.Tx, error) {
	if s.tx != nil {
		return s.tx, nil
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, errors.Wrap(err, "failed to begin transaction")
	}

	s.tx = tx
	return tx, nil
}

func nullString(s *string) sql.NullString {
	if s == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: *s, Valid: true}
}

func nullTime(t *time.Time) sql.NullTime {
	if t == nil {
		return sql.NullTime{}
	}
	return sql.NullTime{Time: *t, Valid: true}
}
