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

	"storefront/cmd/bootstrap"
	"storefront/cmd/bootstrap/components"
	"storefront/internal/pkg/config"
	"storefront/internal/pkg/password"
	"storefront/tests/common/dbtest"

	"github.com/alicebob/miniredis/v2"
	"github.com/docker/go-connections/nat"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/mongodb"
	"github.com/testcontainers/testcontainers-go/wait"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/fx"
)

// AdminPassword is the console password accepted by every e2e app.
const AdminPassword = "admin-e2e-password"

var (
	postgresContainerOnce sync.Once
	postgresTestContainer testcontainers.Container

	mongoContainerOnce sync.Once
	mongoTestContainer *mongodb.MongoDBContainer

	testUser     = "test"
	testPassword = "testpass"
)

type ContainerInfo struct {
	Host string
	Port nat.Port
}

type environment struct {
	pool   *pgxpool.Pool
	mongo  *mongo.Database
	redis  *miniredis.Miniredis
	router *gin.Engine
	cfg    config.Config
}

// ------------------------------------------------------------
// Per test process setup
// ------------------------------------------------------------
func setupE2EEnvironment(t *testing.T) environment {
	postgresInfo, mongoURI := startContainers(t)

	cfg := createTestConfig(t, prepareDatabase(t, postgresInfo), mongoURI)
	mr := miniredis.RunT(t)
	cfg.Redis.Addr = mr.Addr()

	env, app := buildE2EApp(cfg)
	env.redis = mr
	require.NotNil(t, env.router, "router setup failed")

	t.Cleanup(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := env.mongo.Drop(ctx); err != nil {
			slog.Warn("failed to drop test mongo database", "error", err.Error())
		}
		if err := app.Stop(ctx); err != nil {
			slog.Warn("failed to stop fx app", "error", err.Error())
		}
	})

	slog.Info("e2e environment ready",
		"postgres_host", postgresInfo.Host,
		"postgres_port", postgresInfo.Port.Port(),
		"mongo_db", cfg.Mongo.DBName)

	return env
}

// ------------------------------------------------------------
// Containers
// ------------------------------------------------------------
func startContainers(t *testing.T) (ContainerInfo, string) {
	gin.SetMode(gin.TestMode)
	startPostgreSQLContainerOnce(t)
	startMongoContainerOnce(t)

	postgresInfo, err := getContainerHostPort(postgresTestContainer, "5432/tcp")
	require.NoError(t, err, "failed to read postgres container address")

	mongoURI, err := mongoTestContainer.ConnectionString(context.Background())
	require.NoError(t, err, "failed to read mongo connection string")

	return postgresInfo, mongoURI
}

// ------------------------------------------------------------
// Database per test process; the app migrates it on start
// ------------------------------------------------------------
func prepareDatabase(t *testing.T, postgresInfo ContainerInfo) config.DBConfig {
	dbName := "testdb_" + strings.ReplaceAll(uuid.New().String(), "-", "")

	adminDSN := fmt.Sprintf("postgres://%s:%s@%s:%s/postgres?sslmode=disable",
		testUser, testPassword, postgresInfo.Host, postgresInfo.Port.Port())

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	adminPool, err := pgxpool.New(ctx, adminDSN)
	require.NoError(t, err, "admin connection failed")
	defer adminPool.Close()

	var createErr error
	for attempts := range 5 {
		var waitTime time.Duration
		if attempts > 0 {
			waitTime = time.Duration(500+attempts*500) * time.Millisecond
			waitTime = min(waitTime, 3*time.Second)
			time.Sleep(waitTime)
		}
		_, createErr = adminPool.Exec(ctx, "CREATE DATABASE "+dbName)
		if createErr == nil {
			break
		}
		slog.Warn("retrying database creation", "attempt", attempts+1, "error", createErr.Error(), "retry_wait", waitTime)
	}
	require.NoError(t, createErr, "failed to create test database")

	t.Cleanup(func() {
		cleanupCtx, cleanupCancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cleanupCancel()

		cleanupPool, err := pgxpool.New(cleanupCtx, adminDSN)
		if err != nil {
			slog.Warn("cleanup connection failed", "database", dbName, "error", err.Error())
			return
		}
		defer cleanupPool.Close()

		if _, err := cleanupPool.Exec(cleanupCtx, "DROP DATABASE IF EXISTS "+dbName+" WITH (FORCE)"); err != nil {
			slog.Warn("failed to drop test database", "database", dbName, "error", err.Error())
		}
	})

	return config.DBConfig{
		Host:     postgresInfo.Host,
		Port:     postgresInfo.Port.Port(),
		User:     testUser,
		Password: testPassword,
		DBName:   dbName,
		SSLMode:  "disable",
		TimeZone: "America/Sao_Paulo",
		MaxConns: 4,
	}
}

// ------------------------------------------------------------
// Application wiring: production modules over a test config
// ------------------------------------------------------------
func buildE2EApp(cfg config.Config) (environment, *fx.App) {
	env := environment{cfg: cfg}

	app := fx.New(
		fx.Supply(cfg),
		fx.Provide(func() *gin.Engine { return gin.New() }),
		bootstrap.LoggerModule,
		bootstrap.InfraModule,
		components.PersistenceModule,
		components.UseCaseModule,
		components.HandlerModule,
		bootstrap.RelayModule,

		fx.Populate(&env.router, &env.pool, &env.mongo),
		fx.NopLogger,
	)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := app.Start(ctx); err != nil {
		panic(fmt.Sprintf("Failed to start fx app: %v", err))
	}

	return env, app
}

func createTestConfig(t *testing.T, dbConfig config.DBConfig, mongoURI string) config.Config {
	t.Helper()

	hash, err := password.Hash(AdminPassword)
	require.NoError(t, err)

	testConfig := config.NewTestConfig()
	testConfig.DB = dbConfig
	testConfig.Mongo.URI = mongoURI
	testConfig.Mongo.DBName = "storefront_" + strings.ReplaceAll(uuid.New().String(), "-", "")[:12]
	testConfig.Admin.PasswordHash = hash
	return testConfig
}

func startGenericContainer(req testcontainers.ContainerRequest, timeoutSec int) (testcontainers.Container, error) {
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(timeoutSec)*time.Second)
	defer cancel()

	return testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
}

func startPostgreSQLContainerOnce(t *testing.T) {
	postgresContainerOnce.Do(func() {
		req := testcontainers.ContainerRequest{
			Image:        "postgres:17",
			ExposedPorts: []string{"5432/tcp"},
			Env: map[string]string{
				"POSTGRES_USER":     testUser,
				"POSTGRES_PASSWORD": testPassword,
				"POSTGRES_DB":       "postgres",
			},
			Tmpfs: map[string]string{
				"/var/lib/postgresql/data": "rw,size=512m",
			},
			Cmd: []string{
				"postgres",
				"-c", "fsync=off",
				"-c", "full_page_writes=off",
				"-c", "synchronous_commit=off",
				"-c", "max_connections=200",
				"-c", "log_statement=none",
			},
			WaitingFor: wait.ForSQL("5432/tcp", "pgx", func(host string, port nat.Port) string {
				return fmt.Sprintf("postgres://%s:%s@%s:%s/postgres?sslmode=disable",
					testUser, testPassword, host, port.Port())
			}).WithStartupTimeout(60 * time.Second),
			Labels: map[string]string{"purpose": "e2e-tests"},
		}

		var err error
		postgresTestContainer, err = startGenericContainer(req, 180)
		require.NoError(t, err, "failed to start postgres container")

		t.Cleanup(func() {
			ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			if err := postgresTestContainer.Terminate(ctx); err != nil {
				slog.Warn("failed to terminate postgres container", "error", err.Error())
			}
		})
	})
}

func startMongoContainerOnce(t *testing.T) {
	mongoContainerOnce.Do(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 180*time.Second)
		defer cancel()

		var err error
		mongoTestContainer, err = mongodb.Run(ctx, "mongo:7")
		require.NoError(t, err, "failed to start mongo container")

		t.Cleanup(func() {
			ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			if err := mongoTestContainer.Terminate(ctx); err != nil {
				slog.Warn("failed to terminate mongo container", "error", err.Error())
			}
		})
	})
}

func getContainerHostPort(c testcontainers.Container, port string) (ContainerInfo, error) {
	ctx := context.Background()
	mappedPort, err := c.MappedPort(ctx, nat.Port(port))
	if err != nil {
		return ContainerInfo{}, err
	}
	host, err := c.Host(ctx)
	if err != nil {
		return ContainerInfo{}, err
	}
	return ContainerInfo{Host: host, Port: mappedPort}, nil
}

// ------------------------------------------------------------
// Shared suite
// ------------------------------------------------------------
type SharedSuite struct {
	suite.Suite
	Router *gin.Engine
	DB     *pgxpool.Pool
	Mongo  *mongo.Database
	Redis  *miniredis.Miniredis
	Config config.Config
}

func (s *SharedSuite) SetupSharedSuite(t *testing.T) {
	env := setupE2EEnvironment(t)
	s.DB = env.pool
	s.Mongo = env.mongo
	s.Redis = env.redis
	s.Router = env.router
	s.Config = env.cfg
	require.NotNil(t, s.DB, "database setup failed")
	require.NotNil(t, s.Mongo, "mongo setup failed")
	require.NotNil(t, s.Router, "router setup failed")
}

func (s *SharedSuite) SetupSuite() {
	s.SetupSharedSuite(s.T())
}

// SetupSubTest starts every subtest from empty tables, carts and cache.
func (s *SharedSuite) SetupSubTest() {
	require.NoError(s.T(), dbtest.ResetDB(s.DB), "failed to reset database state")
	_, err := s.Mongo.Collection("carts").DeleteMany(s.T().Context(), bson.D{})
	require.NoError(s.T(), err, "failed to clear carts")
	s.Redis.FlushAll()
}
