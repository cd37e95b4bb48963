package db

import (
	"fmt"
	"path/filepath"
	"strconv"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"
)

const (
	DriverSQLite = "sqlite"
	DriverPgx    = "pgx"

	maxOpenConnections            = 25
	maxIdleConnections            = 5
	connMaxLifetime               = 5 * time.Minute
	connMaxIdleTime               = 1 * time.Minute
	defaultStatementTimeoutMillis = 60000
)

type Config struct {
	Driver                 string `envconfig:"DRIVER" default:"sqlite"`
	Name                   string `envconfig:"NAME" default:"db.sqlite3"` // путь к файлу для sqlite
	DSN                    string `envconfig:"DSN"`                       // строка подключения для pgx
	StatementTimeoutMillis int    `envconfig:"STATEMENT_TIMEOUT" default:"60000"`
}

// Path возвращает путь к файлу sqlite относительно baseDir
func (c *Config) Path(baseDir string) string {
	if filepath.IsAbs(c.Name) {
		return c.Name
	}
	return filepath.Join(baseDir, c.Name)
}

// Open открывает пул соединений. Подключение ленивое: файл sqlite создаёт сам драйвер
// при первом обращении, недоступность БД видна только через Ping.
func (c *Config) Open(baseDir string) (*sqlx.DB, error) {
	switch c.Driver {
	case DriverSQLite, "":
		db, err := sqlx.Open(DriverSQLite, c.Path(baseDir))
		if err != nil {
			return nil, fmt.Errorf("open sqlite: %w", err)
		}
		// sqlite не любит конкурентную запись из нескольких соединений
		db.SetMaxOpenConns(1)
		return db, nil
	case DriverPgx:
		return c.openPgx()
	default:
		return nil, fmt.Errorf("unsupported database driver: %s", c.Driver)
	}
}

func (c *Config) openPgx() (*sqlx.DB, error) {
	connectionConfig, err := pgx.ParseConfig(c.DSN)
	if err != nil {
		return nil, fmt.Errorf("parse db config: %w", err)
	}

	timeout := c.StatementTimeoutMillis
	if timeout <= 0 {
		timeout = defaultStatementTimeoutMillis
	}
	connectionConfig.RuntimeParams["statement_timeout"] = strconv.Itoa(timeout)

	connectionString := stdlib.RegisterConnConfig(connectionConfig)
	db, err := sqlx.Open(DriverPgx, connectionString)
	if err != nil {
		return nil, fmt.Errorf("open db error: %w", err)
	}

	db.SetMaxOpenConns(maxOpenConnections)
	db.SetConnMaxLifetime(connMaxLifetime)
	db.SetMaxIdleConns(maxIdleConnections)
	db.SetConnMaxIdleTime(connMaxIdleTime)

	return db, nil
}
