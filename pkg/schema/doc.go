// Package schema defines the target tables of a catalog import and renders
// their DDL and DML for each supported SQL dialect.
//
// Two tables are maintained:
//
//	products            one row per product header
//	product_attributes  one row per (attribute, text value) pair
//
// Every import run drops and recreates both tables before loading, so the
// result of a run never depends on what a previous run left behind:
//
//	err := schema.Initialize(ctx, sink, schema.Postgres)
//
// PostgreSQL is the reference dialect. SQLite renders the same schema with
// its own key syntax, and ClickHouse renders MergeTree tables without
// generated or foreign keys.
package schema
