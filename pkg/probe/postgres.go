package probe

import (
	"context"
	stderrors "errors"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/pkg/errors"

	gserrors "github.com/redshift-provisioner/pkg/errors"
	"github.com/redshift-provisioner/pkg/warehouse"
)

const (
	DefaultConnectTimeout = 10 * time.Second
	DefaultRetryAfter     = 15 * time.Second

	// cannotConnectNow is reported while the server is still starting up.
	cannotConnectNow = "57P03"
)

// Postgres checks that a cluster accepts database connections over the PostgreSQL wire protocol.
type Postgres struct {
	ConnectTimeout time.Duration
	RetryAfter     time.Duration
}

func NewPostgres() *Postgres {
	return &Postgres{
		ConnectTimeout: DefaultConnectTimeout,
		RetryAfter:     DefaultRetryAfter,
	}
}

// Probe opens a single connection, pings the server and closes it again. Network failures are
// returned as retryable errors, errors reported by the server are not.
func (p *Postgres) Probe(ctx context.Context, endpoint warehouse.Endpoint) error {
	poolConfig, err := pgxpool.ParseConfig(ConnectionString(endpoint, p.ConnectTimeout))
	if err != nil {
		return errors.WithStack(err)
	}
	poolConfig.MaxConns = 1

	pool, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		return p.classify(err)
	}
	defer pool.Close()

	err = pool.Ping(ctx)
	if err != nil {
		return p.classify(err)
	}

	return nil
}

func (p *Postgres) classify(err error) error {
	var pgErr *pgconn.PgError
	if stderrors.As(err, &pgErr) && pgErr.Code != cannotConnectNow {
		return errors.WithStack(err)
	}

	return gserrors.WrapRetryable(err, p.RetryAfter)
}

// ConnectionString renders endpoint as keyword/value pairs, quoting values where needed.
func ConnectionString(endpoint warehouse.Endpoint, connectTimeout time.Duration) string {
	pairs := []string{
		"host=" + quote(endpoint.Host),
		fmt.Sprintf("port=%d", endpoint.Port),
		"dbname=" + quote(endpoint.Database),
		"user=" + quote(endpoint.User),
		"password=" + quote(endpoint.Password),
	}
	if connectTimeout > 0 {
		seconds := int(connectTimeout.Round(time.Second) / time.Second)
		if seconds < 1 {
			seconds = 1
		}
		pairs = append(pairs, fmt.Sprintf("connect_timeout=%d", seconds))
	}

	return strings.Join(pairs, " ")
}

func quote(value string) string {
	if value != "" && !strings.ContainsAny(value, ` '\`) {
		return value
	}

	escaped := strings.NewReplacer(`\`, `\\`, `'`, `\'`).Replace(value)
	return "'" + escaped + "'"
}
