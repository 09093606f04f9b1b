package config

import "time"

type Logger interface {
	Level() string
	AsJSON() bool
}

type Database interface {
	DatabaseName() string
	ManufacturersCollection() string
	SolarModulesCollection() string
	InvertersCollection() string
	DSN() string
}

type Catalog interface {
	DBReadTimeout() time.Duration
	DBWriteTimeout() time.Duration
	// Seed the built-in public equipment when the database is empty.
	BootstrapEnabled() bool
	// Apply repairs during the startup maintenance pass instead of
	// only reporting violations.
	RepairEnabled() bool
}

type PVCalc interface {
	BaseURL() string
	RequestTimeout() time.Duration
}
