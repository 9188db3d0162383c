package store

import (
	"context"
	"database/sql"
	"net"
	"net/url"
	"strconv"

	"github.com/San4eeez/Cruzak/pkg/clickhouse"
	"github.com/San4eeez/Cruzak/pkg/config"
	"github.com/San4eeez/Cruzak/pkg/schema"
	"github.com/pkg/errors"

	_ "github.com/jackc/pgx/v5/stdlib"
	_ "github.com/lib/pq"
	_ "modernc.org/sqlite"
)

// Supported database drivers.
const (
	DriverPostgres   = "postgres"
	DriverPgx        = "pgx"
	DriverSQLite     = "sqlite"
	DriverClickHouse = "clickhouse"
)

// Open connects to the database described by db and verifies the connection.
func Open(ctx context.Context, db config.Database) (Sink, error) {
	if db.Driver == DriverClickHouse {
		client, err := clickhouse.NewClientWithOptions(ctx, clickhouseAddr(db), clickhouse.ClientOptions{
			Database: db.Name,
			Username: db.User,
			Password: db.Password,
			TLSSettings: clickhouse.TLSSettings{
				CertFile: db.TLS.CertFile,
				KeyFile:  db.TLS.KeyFile,
				CAFile:   db.TLS.CAFile,
			},
		})
		if err != nil {
			return nil, err
		}
		return client, nil
	}

	dialect, err := DialectFor(db.Driver)
	if err != nil {
		return nil, err
	}

	dsn := DataSourceName(db)
	conn, err := sql.Open(db.Driver, dsn)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open %s database", db.Driver)
	}

	if err := conn.PingContext(ctx); err != nil {
		_ = conn.Close()
		return nil, errors.Wrapf(err, "failed to connect to %s database", db.Driver)
	}

	return NewSQLSink(conn, dialect), nil
}

// DialectFor maps a driver name onto the SQL dialect it speaks.
func DialectFor(driver string) (schema.Dialect, error) {
	switch driver {
	case DriverPostgres, DriverPgx:
		return schema.Postgres, nil
	case DriverSQLite:
		return schema.SQLite, nil
	case DriverClickHouse:
		return schema.ClickHouse, nil
	default:
		return "", errors.Errorf("unsupported driver: %s", driver)
	}
}

// DataSourceName builds the DSN for a database/sql driver. An explicit DSN wins.
// PostgreSQL drivers get a postgres:// URL, SQLite gets a file name derived
// from the database name.
func DataSourceName(db config.Database) string {
	if db.DSN != "" {
		return db.DSN
	}

	if db.Driver == DriverSQLite {
		return db.Name + ".db"
	}

	u := &url.URL{
		Scheme: "postgres",
		Host:   net.JoinHostPort(db.Host, strconv.Itoa(db.PortOrDefault())),
		Path:   "/" + db.Name,
	}

	switch {
	case db.User != "" && db.Password != "":
		u.User = url.UserPassword(db.User, db.Password)
	case db.User != "":
		u.User = url.User(db.User)
	}

	if db.SSLMode != "" {
		u.RawQuery = url.Values{"sslmode": []string{db.SSLMode}}.Encode()
	}

	return u.String()
}

func clickhouseAddr(db config.Database) string {
	if db.DSN != "" {
		return db.DSN
	}
	return net.JoinHostPort(db.Host, strconv.Itoa(db.PortOrDefault()))
}
