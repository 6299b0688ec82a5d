// Package sqlite implements the SQLite storage backend for
// habits-manager. All state is stored as JSON documents in a single
// key/value table, matching the Store contract.
package sqlite

// Schema DDL. Values are JSON documents; day records, the habit list,
// the points total, the daily goal, and the category list each live
// under one key.
const createKV = `CREATE TABLE IF NOT EXISTS kv (
    key TEXT PRIMARY KEY,
    value TEXT NOT NULL
);`
