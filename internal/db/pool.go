package db

import (
	"context"
	"fmt"
	"net"
	"net/url"

	"github.com/exaring/otelpgx"
	"github.com/jackc/pgx/v5/pgxpool"
)

const defaultPostgresPort = "5432"

type NewDBPoolParams struct {
	DBHost         string
	DBPort         string
	DBName         string
	DBUser         string
	DBPassword     string
	TracingEnabled bool
}

// ConnString builds the postgres URL, the password is optional.
func (p NewDBPoolParams) ConnString() string {
	port := p.DBPort
	if port == "" {
		port = defaultPostgresPort
	}

	user := url.User(p.DBUser)
	if p.DBPassword != "" {
		user = url.UserPassword(p.DBUser, p.DBPassword)
	}

	connURL := url.URL{
		Scheme: "postgres",
		User:   user,
		Host:   net.JoinHostPort(p.DBHost, port),
		Path:   "/" + p.DBName,
	}
	return connURL.String()
}

func NewDBPool(ctx context.Context, params NewDBPoolParams) (*pgxpool.Pool, error) {
	poolConfig, err := pgxpool.ParseConfig(params.ConnString())
	if err != nil {
		return nil, fmt.Errorf("parse db config: %w", err)
	}

	if params.TracingEnabled {
		poolConfig.ConnConfig.Tracer = otelpgx.NewTracer()
	}

	db, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		return nil, fmt.Errorf("create connection pool: %w", err)
	}

	return db, nil
}
