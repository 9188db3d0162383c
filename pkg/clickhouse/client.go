package clickhouse

import (
	"context"
	"log/slog"
	"strings"

	"github.com/ClickHouse/clickhouse-go/v2"
	"github.com/ClickHouse/clickhouse-go/v2/lib/driver"
	"github.com/San4eeez/Cruzak/pkg/catalog"
	"github.com/San4eeez/Cruzak/pkg/schema"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
)

type (
	// Conn is the subset of driver.Conn the client needs.
	Conn interface {
		Exec(context.Context, string, ...any) error
		PrepareBatch(context.Context, string, ...driver.PrepareBatchOption) (driver.Batch, error)
		Close() error
	}

	// TLSSettings points at the PEM files used for mTLS. TLS is enabled when
	// CertFile is set.
	TLSSettings struct {
		CertFile string
		KeyFile  string
		CAFile   string
	}

	// ClientOptions configures a ClickHouse connection. Empty fields keep
	// whatever the DSN specifies.
	ClientOptions struct {
		Database    string
		Username    string
		Password    string
		TLSSettings TLSSettings
	}

	// Client writes catalog rows into ClickHouse.
	//
	// ClickHouse has neither transactions nor generated keys. Ids come from
	// per-table counters that restart whenever DDL runs (the tables are
	// recreated), and rows are buffered in batches that Commit sends.
	Client struct {
		conn Conn

		productSeq   int64
		attributeSeq int64

		products   driver.Batch
		attributes driver.Batch
	}
)

// NewClient connects to ClickHouse using dsn, either host:port or a
// clickhouse:// URL.
//
// Example:
//
//	client, err := NewClient(ctx, "localhost:9000")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer client.Close()
func NewClient(ctx context.Context, dsn string) (*Client, error) {
	return NewClientWithOptions(ctx, dsn, ClientOptions{})
}

// NewClientWithOptions connects to ClickHouse using dsn and opts and pings the
// server.
func NewClientWithOptions(ctx context.Context, dsn string, opts ClientOptions) (*Client, error) {
	options, err := connOptions(dsn, opts)
	if err != nil {
		return nil, err
	}

	conn, err := clickhouse.Open(options)
	if err != nil {
		return nil, errors.Wrap(err, "failed to connect to ClickHouse")
	}

	if err := conn.Ping(ctx); err != nil {
		_ = conn.Close()
		return nil, errors.Wrap(err, "failed to connect to ClickHouse")
	}

	return NewClientFromConn(conn), nil
}

// NewClientFromConn wraps an existing connection.
func NewClientFromConn(conn Conn) *Client {
	return &Client{conn: conn}
}

func connOptions(dsn string, opts ClientOptions) (*clickhouse.Options, error) {
	options := &clickhouse.Options{Addr: []string{dsn}}
	if strings.Contains(dsn, "://") {
		parsed, err := clickhouse.ParseDSN(dsn)
		if err != nil {
			return nil, errors.Wrapf(err, "invalid ClickHouse DSN: %s", dsn)
		}
		options = parsed
	}

	if opts.Database != "" {
		options.Auth.Database = opts.Database
	}
	if opts.Username != "" {
		options.Auth.Username = opts.Username
	}
	if opts.Password != "" {
		options.Auth.Password = opts.Password
	}

	if opts.TLSSettings.CertFile != "" {
		tlsConfig, err := GetTLSConfig(opts)
		if err != nil {
			return nil, err
		}
		options.TLS = tlsConfig
	}

	return options, nil
}

func (c *Client) Dialect() schema.Dialect { return schema.ClickHouse }

// ExecDDL runs stmt immediately, DDL isn't transactional in ClickHouse.
func (c *Client) ExecDDL(ctx context.Context, stmt string) error {
	c.productSeq = 0
	c.attributeSeq = 0

	return c.conn.Exec(ctx, strings.TrimSuffix(stmt, ";"))
}

func (c *Client) InsertProduct(ctx context.Context, p *catalog.Product) (int64, error) {
	if c.products == nil {
		batch, err := c.conn.PrepareBatch(ctx, schema.Products.InsertStatement(schema.ClickHouse, false))
		if err != nil {
			return 0, errors.Wrap(err, "failed to prepare products batch")
		}
		c.products = batch
	}

	id := c.productSeq + 1
	err := c.products.Append(
		id,
		p.Name,
		p.OKPD2,
		p.Detail,
		p.Unit,
		p.Category,
		p.KTRUCode,
		p.KKNCode,
		p.ProductPart,
		p.UpdateDate,
		p.IsRussian,
	)
	if err != nil {
		return 0, errors.Wrapf(err, "failed to insert product %q", p.Name)
	}

	c.productSeq = id
	return id, nil
}

func (c *Client) InsertAttribute(ctx context.Context, productID int64, row catalog.AttributeRow) error {
	if c.attributes == nil {
		batch, err := c.conn.PrepareBatch(ctx, schema.Attributes.InsertStatement(schema.ClickHouse, false))
		if err != nil {
			return errors.Wrap(err, "failed to prepare attributes batch")
		}
		c.attributes = batch
	}

	id := c.attributeSeq + 1
	err := c.attributes.Append(
		id,
		productID,
		row.Name,
		nullableDecimal(row.NumericValue),
		row.TextValue,
		row.AdditionalText,
		row.Unit,
	)
	if err != nil {
		return errors.Wrapf(err, "failed to insert attribute of product %d", productID)
	}

	c.attributeSeq = id
	return nil
}

// Commit sends the pending batches. Products go first so attribute rows never
// reference a product that isn't stored.
func (c *Client) Commit(context.Context) error {
	if c.products != nil {
		batch := c.products
		c.products = nil

		slog.Debug("Sending batch", "table", schema.Products.Name, "rows", batch.Rows())
		if err := batch.Send(); err != nil {
			return errors.Wrap(err, "failed to send products batch")
		}
	}

	if c.attributes != nil {
		batch := c.attributes
		c.attributes = nil

		slog.Debug("Sending batch", "table", schema.Attributes.Name, "rows", batch.Rows())
		if err := batch.Send(); err != nil {
			return errors.Wrap(err, "failed to send attributes batch")
		}
	}

	return nil
}

// Close aborts unsent batches and closes the connection.
func (c *Client) Close() error {
	for _, batch := range []driver.Batch{c.products, c.attributes} {
		if batch != nil {
			_ = batch.Abort()
		}
	}
	c.products, c.attributes = nil, nil

	return c.conn.Close()
}

func nullableDecimal(d decimal.NullDecimal) *decimal.Decimal {
	if !d.Valid {
		return nil
	}
	return &d.Decimal
}
