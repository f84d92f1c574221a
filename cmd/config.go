package cmd

import "time"

// Config carries the runtime configuration for the fulfillment engine.
// Connection settings come from the environment as-is; the policy knobs are
// parsed with sensible defaults in main.
type Config struct {
	HTTPPort   string
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSslMode  string

	// InventoryDefaultCapacity seeds lazily materialized inventory windows.
	InventoryDefaultCapacity int

	// InventoryWindowLength is the inventory bucketing granularity.
	InventoryWindowLength time.Duration

	// RosterMinHeadcount is the minimum crew size per duty on a day roster.
	RosterMinHeadcount int
}
