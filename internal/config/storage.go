package config

type Storage struct {
	Database Database `envPrefix:"DATABASE_"`
}

type Database struct {
	URL string `env:"URL,required,notEmpty"`
	// MaxOpenConns bounds the connection pool. SQLite in WAL mode serves
	// readers concurrently, writers still take turns on the database lock.
	MaxOpenConns int `env:"MAX_OPEN_CONNS" envDefault:"4"`
}
