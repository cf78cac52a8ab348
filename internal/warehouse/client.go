package warehouse

import (
	"context"
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"

	"github.com/covelane/ltc-data-api/internal/platform/config"
)

// Client wraps one long-lived pooled connection to the warehouse. It is
// created once at startup, shared by reference across request handlers,
// and closed on shutdown. All per-caller state travels in the
// SessionContext argument of each call; nothing caller-specific is ever
// stored on the client.
type Client struct {
	db     *sqlx.DB
	schema string
}

// NewClient connects to the warehouse and configures the connection pool.
func NewClient(ctx context.Context, cfg *config.WarehouseConfig) (*Client, error) {
	connStr := buildConnectionString(cfg)

	db, err := sqlx.ConnectContext(ctx, "postgres", connStr)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to warehouse: %w", err)
	}

	if cfg.MaxOpenConns > 0 {
		db.SetMaxOpenConns(cfg.MaxOpenConns)
	}
	if cfg.MaxIdleConns > 0 {
		db.SetMaxIdleConns(cfg.MaxIdleConns)
	}
	if cfg.ConnMaxLifetime > 0 {
		db.SetConnMaxLifetime(cfg.ConnMaxLifetime)
	}

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping warehouse: %w", err)
	}

	return &Client{db: db, schema: cfg.Schema}, nil
}

// buildConnectionString builds the warehouse connection string from config
func buildConnectionString(cfg *config.WarehouseConfig) string {
	var parts []string

	parts = append(parts, fmt.Sprintf("host=%s", cfg.Host))
	parts = append(parts, fmt.Sprintf("port=%d", cfg.Port))
	parts = append(parts, fmt.Sprintf("dbname=%s", cfg.Database))

	if cfg.Username != "" {
		parts = append(parts, fmt.Sprintf("user=%s", cfg.Username))
	}
	if cfg.Password != "" {
		parts = append(parts, fmt.Sprintf("password=%s", cfg.Password))
	}
	if cfg.Schema != "" {
		parts = append(parts, fmt.Sprintf("search_path=%s", cfg.Schema))
	}
	if cfg.Role != "" {
		// Service-account role every pooled session runs under.
		parts = append(parts, fmt.Sprintf("options='-c role=%s'", cfg.Role))
	}

	parts = append(parts, fmt.Sprintf("sslmode=%s", cfg.SSLMode))

	if cfg.ConnectTimeout > 0 {
		parts = append(parts, fmt.Sprintf("connect_timeout=%d", cfg.ConnectTimeout))
	}

	return strings.Join(parts, " ")
}

// DB returns the underlying *sqlx.DB connection
func (c *Client) DB() *sqlx.DB {
	return c.db
}

// Ping tests the warehouse connection
func (c *Client) Ping(ctx context.Context) error {
	return c.db.PingContext(ctx)
}

// Close closes the underlying connection pool
func (c *Client) Close() error {
	return c.db.Close()
}
