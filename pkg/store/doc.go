// Package store persists normalized catalog products and attribute rows.
//
// A Sink receives the schema DDL, one product at a time and the attribute rows
// that belong to it. Writes become durable only when Commit is called, the
// importer decides how often that happens.
//
// Three implementations are provided:
//
//	SQLSink           database/sql with the postgres, pgx or sqlite driver
//	clickhouse.Client ClickHouse batches (see pkg/clickhouse)
//	MemorySink        in-memory, used for previews and tests
//
// Open picks the implementation from a config.Database:
//
//	sink, err := store.Open(ctx, cfg.Database)
//	if err != nil {
//		return err
//	}
//	defer sink.Close()
package store
