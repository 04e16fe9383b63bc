// Package store provides SQLite-backed durable storage for work records.
//
// The store is a single flat table (jobs) with no relationships:
//   - Records are append-only; there is no update or delete path.
//   - Identity is the AUTOINCREMENT id assigned at insert time.
//   - The only constraints are NOT NULL on title, company, and start_date.
//
// # Database Configuration
//
//   - WAL mode: Concurrent reads during writes
//   - synchronous=NORMAL: Balance durability/performance
//   - busy_timeout=5000: Wait for locks up to 5 seconds
//   - foreign_keys=ON: Enforce referential integrity
//
// Open is idempotent: the schema is applied with CREATE TABLE IF NOT EXISTS
// and versioned via PRAGMA user_version for future migrations.
package store
