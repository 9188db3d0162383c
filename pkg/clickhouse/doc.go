// Package clickhouse stores imported catalogs in ClickHouse.
//
// The Client satisfies the same write contract as the SQL sinks but maps it
// onto ClickHouse semantics: DDL runs immediately, inserts are appended to
// per-table batches, and Commit sends them. Keys are assigned on the client
// because ClickHouse has no serial columns.
//
// Example usage:
//
//	client, err := clickhouse.NewClientWithOptions(ctx, "localhost:9000", clickhouse.ClientOptions{
//		Database: "catalog",
//		Username: "default",
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer client.Close()
//
//	if err := schema.Initialize(ctx, client, client.Dialect()); err != nil {
//	    log.Fatal(err)
//	}
package clickhouse
