// Package config loads the ledger binary's configuration from the
// environment, optionally seeded from a .env file.
package config

// Log configures the binary's logger.
type Log struct {
	Level      int    `envconfig:"LEVEL" default:"0"`
	Format     string `envconfig:"FORMAT" default:"text"`
	Prefix     string `envconfig:"PREFIX" default:"ledger"`
	TimeFormat string `envconfig:"TIME_FORMAT" default:"15:04:05"`
}

// Ingest configures the concurrent feed pipeline.
type Ingest struct {
	// Workers is the number of goroutines applying transactions. With more
	// than one worker, same-client ordering follows lock acquisition rather
	// than feed order.
	Workers int `envconfig:"WORKERS" default:"1"`
	// Buffer is the capacity of the channel between the feed reader and the
	// workers.
	Buffer int `envconfig:"BUFFER" default:"256"`
}

// App holds everything the ledger binary needs from the environment.
type App struct {
	Env    string `envconfig:"APP_ENV" default:"development"`
	Log    Log    `envconfig:"LOG"`
	Ingest Ingest `envconfig:"INGEST"`
}
