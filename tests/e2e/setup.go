//go:build e2e

package e2e

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"testing"
	"time"

	"meeting-room-approval/cmd/bootstrap"
	"meeting-room-approval/cmd/bootstrap/components"
	"meeting-room-approval/internal/infra/db"
	"meeting-room-approval/internal/pkg/config"
	"meeting-room-approval/migrations"
	"meeting-room-approval/tests/common/dbtest"

	"github.com/docker/go-connections/nat"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
	"go.uber.org/fx"
)

const (
	pgUser     = "test"
	pgPassword = "testpass"
	pgPort     = "5432/tcp"
)

var (
	postgresOnce      sync.Once
	postgresContainer testcontainers.Container
)

type endpoint struct {
	Host string
	Port nat.Port
}

func (e endpoint) dsn(database string) string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable", pgUser, pgPassword, e.Host, e.Port.Port(), database)
}

// SharedSuite gives every e2e suite its own database inside one shared
// postgres container, plus a router built from the production fx modules.
type SharedSuite struct {
	suite.Suite
	Router *gin.Engine
	DB     *pgxpool.Pool
	Config config.Config
}

func (s *SharedSuite) SetupSuite() {
	t := s.T()
	gin.SetMode(gin.TestMode)

	pg := startPostgres(t)
	pool, dbConfig := prepareDatabase(t, pg)

	router, cfg, app := buildApp(t, pool, dbConfig)
	t.Cleanup(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := app.Stop(ctx); err != nil {
			slog.Warn("failed to stop fx app", "error", err.Error())
		}
	})

	s.DB = pool
	s.Router = router
	s.Config = cfg
}

// SetupSubTest truncates every table and reseeds reference data.
func (s *SharedSuite) SetupSubTest() {
	require.NoError(s.T(), dbtest.ResetDB(s.DB), "failed to reset database")
}

func startPostgres(t *testing.T) endpoint {
	postgresOnce.Do(func() {
		req := testcontainers.ContainerRequest{
			Image:        "postgres:17",
			ExposedPorts: []string{pgPort},
			Env: map[string]string{
				"POSTGRES_USER":     pgUser,
				"POSTGRES_PASSWORD": pgPassword,
				"POSTGRES_DB":       "postgres",
			},
			Tmpfs: map[string]string{"/var/lib/postgresql/data": "rw,size=512m"},
			// durability is irrelevant for throwaway data
			Cmd: []string{
				"postgres",
				"-c", "fsync=off",
				"-c", "full_page_writes=off",
				"-c", "synchronous_commit=off",
				"-c", "shared_buffers=256MB",
				"-c", "max_connections=200",
				"-c", "log_statement=none",
			},
			WaitingFor: wait.ForSQL(pgPort, "pgx", func(host string, port nat.Port) string {
				return endpoint{Host: host, Port: port}.dsn("postgres")
			}).WithStartupTimeout(60 * time.Second),
			Name:   "postgres-meeting-room-e2e",
			Labels: map[string]string{"purpose": "e2e-tests"},
		}

		ctx, cancel := context.WithTimeout(context.Background(), 3*time.Minute)
		defer cancel()

		var err error
		postgresContainer, err = testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
			ContainerRequest: req,
			Started:          true,
		})
		require.NoError(t, err, "failed to start postgres container")
	})
	require.NotNil(t, postgresContainer, "postgres container did not start")

	ctx := context.Background()
	port, err := postgresContainer.MappedPort(ctx, pgPort)
	require.NoError(t, err)
	host, err := postgresContainer.Host(ctx)
	require.NoError(t, err)
	return endpoint{Host: host, Port: port}
}

func prepareDatabase(t *testing.T, pg endpoint) (*pgxpool.Pool, config.DBConfig) {
	name := "testdb_" + strings.ReplaceAll(uuid.NewString(), "-", "")
	require.NoError(t, createDatabase(pg, name), "failed to create test database")
	t.Cleanup(func() { dropDatabase(pg, name) })

	dbConfig := config.DBConfig{
		Host:     pg.Host,
		Port:     pg.Port.Port(),
		User:     pgUser,
		Password: pgPassword,
		DBName:   name,
		SSLMode:  "disable",
		TimeZone: "Asia/Jakarta",
		MaxConns: 10,
		MinConns: 1,
	}

	pool, closePool, err := db.Connect(dbConfig)
	require.NoError(t, err, "database connection failed")
	t.Cleanup(closePool)

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	require.NoError(t, db.Migrate(ctx, pool, migrations.FS), "migration failed")
	require.NoError(t, dbtest.SeedReferenceData(pool), "failed to seed reference data")

	return pool, dbConfig
}

// createDatabase retries because CREATE DATABASE collides on the template
// when several suites start at once.
func createDatabase(pg endpoint, name string) error {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	admin, err := pgxpool.New(ctx, pg.dsn("postgres"))
	if err != nil {
		return err
	}
	defer admin.Close()

	for attempt := range 5 {
		if attempt > 0 {
			backoff := min(time.Duration(500+attempt*500)*time.Millisecond, 3*time.Second)
			slog.Warn("retrying database creation", "attempt", attempt+1, "error", err.Error(), "retry_wait", backoff)
			time.Sleep(backoff)
		}
		if _, err = admin.Exec(ctx, "CREATE DATABASE "+name); err == nil {
			return nil
		}
	}
	return err
}

func dropDatabase(pg endpoint, name string) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	admin, err := pgxpool.New(ctx, pg.dsn("postgres"))
	if err != nil {
		slog.Warn("failed to connect for cleanup", "database", name, "error", err.Error())
		return
	}
	defer admin.Close()

	if _, err := admin.Exec(ctx, "DROP DATABASE IF EXISTS "+name+" WITH (FORCE)"); err != nil {
		slog.Warn("failed to drop test database", "database", name, "error", err.Error())
	}
}

// buildApp wires the production persistence, use case and handler modules
// around the test pool. The admin seed and the HTTP listener are left out.
func buildApp(t *testing.T, pool *pgxpool.Pool, dbConfig config.DBConfig) (*gin.Engine, config.Config, *fx.App) {
	var (
		router *gin.Engine
		cfg    config.Config
	)

	app := fx.New(
		fx.Provide(
			func() *pgxpool.Pool { return pool },
			func() config.Config {
				c := config.NewTestConfig()
				c.DB = dbConfig
				return c
			},
			func() *gin.Engine { return gin.New() },
		),
		bootstrap.LoggerModule,
		bootstrap.JWTModule,
		components.PersistenceModule,
		components.UseCaseModule,
		components.HandlerModule,
		fx.Populate(&router, &cfg),
		fx.NopLogger,
	)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	require.NoError(t, app.Start(ctx), "failed to start fx app")
	require.NotNil(t, router, "router not populated")

	return router, cfg, app
}
