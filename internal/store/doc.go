// Package store implements the persistent store of the achievement tracker.
//
// Everything the tracker remembers between runs is a JSON value under a string
// key. The KV interface is that capability; typed stores encode and decode the
// values on top of it.
//
// # Architecture Overview
//
//	┌─────────────────────────────────────────────────────────────────┐
//	│                         Store (facade)                          │
//	├─────────────────────┬─────────────────────┬─────────────────────┤
//	│    SnapshotStore    │   CollectionStore   │  CredentialsStore   │
//	│          ▼          │          ▼          │          ▼          │
//	│  library_snapshot   │     collections     │     credentials     │
//	│  library_snapshot_ts│                     │                     │
//	├─────────────────────┴─────────────────────┴─────────────────────┤
//	│                              KV                                 │
//	│     KVStore (DuckDB)  │  RedisKV (redis)  │  MemoryKV (tests)   │
//	└─────────────────────────────────────────────────────────────────┘
//
// # KVStore
//
// The default backend. One table created by the local migrations
// (internal/store/migrations/sql/):
//
//	kv (
//	    key VARCHAR PRIMARY KEY,
//	    value BLOB NOT NULL,
//	    created_at TIMESTAMP,
//	    updated_at TIMESTAMP
//	)
//
// Queries are built with squirrel. Set is an UPSERT
// (INSERT ... ON CONFLICT (key) DO UPDATE). All statements go through a
// QueryInterceptor that logs them at debug level.
//
// Open an in-memory database with NewDB(":memory:"); a file database lives in
// the configured data folder (DBPath).
//
// # Typed stores
//
// SnapshotStore:
//   - Get(ctx) → *models.LibrarySnapshot
//   - Save(ctx, snapshot) → replaces the previous snapshot in full
//   - Clear(ctx)
//
// The timestamp is written under its own key and must match the snapshot's
// FetchedAt. A pair written by two different saves is reported as
// CacheCorruptError, never returned as a mix.
//
// CollectionStore:
//   - List(ctx) → []models.Collection, empty when nothing was saved
//   - Save(ctx, collections)
//
// CredentialsStore:
//   - Get(ctx) → *models.Credentials
//   - Save(ctx, creds), Delete(ctx)
//
// # Errors
//
//   - missing key       → ResourceNotFoundError
//   - undecodable value → CacheCorruptError (callers treat it as a cache miss)
package store
