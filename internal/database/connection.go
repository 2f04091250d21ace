package database

import (
	"context"
	"database/sql"
	"fmt"
	"net/url"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	rdsutils "github.com/aws/aws-sdk-go-v2/feature/rds/auth"
	"github.com/go-sql-driver/mysql"
	"github.com/goswift/booking-backend/internal/config"
	_ "github.com/jackc/pgx/v5/stdlib" // PostgreSQL driver registered as "pgx"
	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq" // PostgreSQL driver registered as "postgres"
)

// Queryer is the subset of sqlx shared by *sqlx.DB and *sqlx.Tx. Repositories
// are written against it so the same code runs inside and outside a transaction.
type Queryer interface {
	GetContext(ctx context.Context, dest interface{}, query string, args ...interface{}) error
	SelectContext(ctx context.Context, dest interface{}, query string, args ...interface{}) error
	ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error)
	Rebind(query string) string
	DriverName() string
}

// NewConnection creates a new database connection
func NewConnection(ctx context.Context, cfg config.DatabaseConfig, awsCfg config.AWSConfig) (*sqlx.DB, error) {
	dsn, err := buildDSN(ctx, cfg, awsCfg)
	if err != nil {
		return nil, err
	}

	db, err := sqlx.ConnectContext(ctx, cfg.Driver, dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	db.SetMaxOpenConns(cfg.MaxConnections)
	db.SetMaxIdleConns(cfg.MaxIdleConnections)
	db.SetConnMaxLifetime(cfg.ConnMaxLifetime)
	db.SetConnMaxIdleTime(cfg.ConnMaxLifetime / 2)

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return db, nil
}

func buildDSN(ctx context.Context, cfg config.DatabaseConfig, awsCfg config.AWSConfig) (string, error) {
	if cfg.IAMAuth {
		return iamDSN(ctx, cfg, awsCfg)
	}

	if cfg.URL == "" {
		return "", fmt.Errorf("database URL is required")
	}

	switch cfg.Driver {
	case "mysql":
		// Scanning DATETIME into time.Time needs parseTime. Updates report
		// matched rather than changed rows so a no-op update is not a miss.
		mcfg, err := mysql.ParseDSN(cfg.URL)
		if err != nil {
			return "", fmt.Errorf("invalid mysql DSN: %w", err)
		}
		mcfg.ParseTime = true
		mcfg.ClientFoundRows = true
		return mcfg.FormatDSN(), nil
	case "pgx":
		// Simple protocol keeps Supavisor/pgbouncer style poolers happy
		if strings.Contains(cfg.URL, "default_query_exec_mode") {
			return cfg.URL, nil
		}
		separator := "?"
		if strings.Contains(cfg.URL, "?") {
			separator = "&"
		}
		return cfg.URL + separator + "default_query_exec_mode=simple_protocol", nil
	default:
		return cfg.URL, nil
	}
}

// iamDSN builds a DSN whose password is an RDS IAM auth token. Tokens are valid
// for 15 minutes so ConnMaxLifetime should stay below that.
func iamDSN(ctx context.Context, cfg config.DatabaseConfig, awsCfg config.AWSConfig) (string, error) {
	opts := []func(*awsconfig.LoadOptions) error{awsconfig.WithRegion(awsCfg.Region)}
	if awsCfg.Profile != "" {
		opts = append(opts, awsconfig.WithSharedConfigProfile(awsCfg.Profile))
	}

	sdkCfg, err := awsconfig.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return "", fmt.Errorf("unable to load AWS config for RDS: %w", err)
	}

	return iamDSNWithCredentials(ctx, cfg, awsCfg.Region, sdkCfg.Credentials)
}

func iamDSNWithCredentials(ctx context.Context, cfg config.DatabaseConfig, region string, creds aws.CredentialsProvider) (string, error) {
	endpoint := fmt.Sprintf("%s:%d", cfg.Host, cfg.Port)

	// Signed locally, no API call
	token, err := rdsutils.BuildAuthToken(ctx, endpoint, region, cfg.User, creds)
	if err != nil {
		return "", fmt.Errorf("failed to create authentication token: %w", err)
	}

	if cfg.Driver == "mysql" {
		mcfg := mysql.NewConfig()
		mcfg.User = cfg.User
		mcfg.Passwd = token
		mcfg.Net = "tcp"
		mcfg.Addr = endpoint
		mcfg.DBName = cfg.Name
		mcfg.ParseTime = true
		mcfg.ClientFoundRows = true
		mcfg.AllowCleartextPasswords = true
		mcfg.TLSConfig = "true"
		return mcfg.FormatDSN(), nil
	}

	return fmt.Sprintf(
		"postgres://%s:%s@%s/%s?sslmode=require",
		url.QueryEscape(cfg.User),
		url.QueryEscape(token),
		endpoint,
		url.QueryEscape(cfg.Name),
	), nil
}
