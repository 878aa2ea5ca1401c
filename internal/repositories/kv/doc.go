// Package kv implements the storage facade: string keys mapped to opaque
// byte values, with transactional batches.
//
// Three backends share the Store interface:
//
//   - SQLStore: a single "kv" table in SQLite (default) or PostgreSQL, batches
//     run in a SQL transaction via dbx.WithTx.
//   - RedisStore: keys under a prefix; batches are staged in memory and
//     committed with a MULTI/EXEC pipeline.
//   - MemoryStore: a mutex-guarded map, used by tests and the "memory"
//     driver.
package kv
