//go:build e2e

package e2e

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"invoice-dashboard/cmd/bootstrap"
	"invoice-dashboard/cmd/bootstrap/components"
	"invoice-dashboard/internal/infra/db"
	"invoice-dashboard/internal/pkg/config"
	"invoice-dashboard/tests/common/dbtest"

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

	// E2E_CACHE_DRIVER=redis runs the suites against a Redis view cache.
	cacheDriverEnv = "E2E_CACHE_DRIVER"

	migrationFile = "migrations/001_initial_schema.sql"
)

var (
	postgresOnce      sync.Once
	postgresContainer testcontainers.Container
	postgresErr       error

	redisOnce      sync.Once
	redisContainer testcontainers.Container
	redisErr       error
)

type ContainerInfo struct {
	Host string
	Port nat.Port
}

func (c ContainerInfo) Addr() string {
	return c.Host + ":" + c.Port.Port()
}

// ------------------------------------------------------------
// テストプロセスごとの環境
// ------------------------------------------------------------
type environment struct {
	pool   *pgxpool.Pool
	router *gin.Engine
	cfg    config.Config
}

func setupE2EEnvironment(t *testing.T) environment {
	gin.SetMode(gin.TestMode)

	cfg := config.NewTestConfig()
	cfg.DB = prepareDatabase(t, postgresInfo(t))
	cfg.Cache = cacheConfig(t)

	pool, cleanup, err := db.Connect(context.Background(), cfg.DB)
	require.NoError(t, err, "データベース接続に失敗")
	t.Cleanup(cleanup)

	require.NoError(t, applyMigrations(t, pool), "データベースマイグレーションに失敗")
	require.NoError(t, dbtest.SeedReferenceData(pool), "参照データの投入に失敗")

	router := buildE2EApp(t, pool, cfg)

	slog.Info("E2E環境の準備が完了しました", "database", cfg.DB.DBName, "cache", cfg.Cache.Driver)
	return environment{pool: pool, router: router, cfg: cfg}
}

// ------------------------------------------------------------
// コンテナ
// ------------------------------------------------------------
func postgresInfo(t *testing.T) ContainerInfo {
	t.Helper()

	postgresOnce.Do(func() {
		postgresContainer, postgresErr = startContainer(testcontainers.ContainerRequest{
			Image:        "postgres:17",
			ExposedPorts: []string{"5432/tcp"},
			Env: map[string]string{
				"POSTGRES_USER":     pgUser,
				"POSTGRES_PASSWORD": pgPassword,
				"POSTGRES_DB":       "postgres",
			},
			Tmpfs: map[string]string{
				"/var/lib/postgresql/data": "rw,size=512m",
			},
			// 耐久性よりテスト速度を優先
			Cmd: []string{
				"postgres",
				"-c", "fsync=off",
				"-c", "full_page_writes=off",
				"-c", "synchronous_commit=off",
				"-c", "max_connections=200",
				"-c", "log_statement=none",
			},
			WaitingFor: wait.ForSQL("5432/tcp", "pgx", func(host string, port nat.Port) string {
				return adminDSN(ContainerInfo{Host: host, Port: port})
			}).WithStartupTimeout(60 * time.Second),
			Labels: map[string]string{"purpose": "e2e-tests"},
		})
	})
	require.NoError(t, postgresErr, "PostgreSQLコンテナの起動に失敗")

	info, err := hostPort(postgresContainer, "5432/tcp")
	require.NoError(t, err, "PostgreSQLコンテナ情報の取得に失敗")
	return info
}

func redisInfo(t *testing.T) ContainerInfo {
	t.Helper()

	redisOnce.Do(func() {
		redisContainer, redisErr = startContainer(testcontainers.ContainerRequest{
			Image:        "redis:7-alpine",
			ExposedPorts: []string{"6379/tcp"},
			WaitingFor:   wait.ForListeningPort("6379/tcp").WithStartupTimeout(60 * time.Second),
			Labels:       map[string]string{"purpose": "e2e-tests"},
		})
	})
	require.NoError(t, redisErr, "Redisコンテナの起動に失敗")

	info, err := hostPort(redisContainer, "6379/tcp")
	require.NoError(t, err, "Redisコンテナ情報の取得に失敗")
	return info
}

// Containers are reaped by ryuk when the test binary exits.
func startContainer(req testcontainers.ContainerRequest) (testcontainers.Container, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 180*time.Second)
	defer cancel()

	return testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
}

func hostPort(c testcontainers.Container, port string) (ContainerInfo, error) {
	ctx := context.Background()
	mapped, err := c.MappedPort(ctx, nat.Port(port))
	if err != nil {
		return ContainerInfo{}, err
	}
	host, err := c.Host(ctx)
	if err != nil {
		return ContainerInfo{}, err
	}
	return ContainerInfo{Host: host, Port: mapped}, nil
}

func cacheConfig(t *testing.T) config.CacheConfig {
	cache := config.CacheConfig{Driver: config.CacheDriverMemory, TTL: time.Minute}
	if os.Getenv(cacheDriverEnv) != config.CacheDriverRedis {
		return cache
	}

	cache.Driver = config.CacheDriverRedis
	cache.RedisAddr = redisInfo(t).Addr()
	// 1プロセス1DBでキーの衝突を避ける
	cache.RedisDB = int(time.Now().UnixNano() % 16)
	return cache
}

// ------------------------------------------------------------
// データベース
// ------------------------------------------------------------
func adminDSN(info ContainerInfo) string {
	return fmt.Sprintf("postgres://%s:%s@%s/postgres?sslmode=disable", pgUser, pgPassword, info.Addr())
}

// prepareDatabase creates a database private to this test process.
func prepareDatabase(t *testing.T, info ContainerInfo) config.DBConfig {
	t.Helper()

	dbName := "testdb_" + strings.ReplaceAll(uuid.NewString(), "-", "")

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	admin, err := pgxpool.New(ctx, adminDSN(info))
	require.NoError(t, err, "管理者接続に失敗")
	defer admin.Close()

	var createErr error
	for attempt := range 5 {
		if attempt > 0 {
			backoff := min(time.Duration(attempt)*500*time.Millisecond, 3*time.Second)
			slog.Warn("データベース作成を再試行中", "attempt", attempt+1, "error", createErr.Error(), "retry_wait", backoff)
			time.Sleep(backoff)
		}
		if _, createErr = admin.Exec(ctx, "CREATE DATABASE "+dbName); createErr == nil {
			break
		}
	}
	require.NoError(t, createErr, "テスト用データベースの作成に失敗")

	t.Cleanup(func() {
		dropCtx, dropCancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer dropCancel()

		dropPool, err := pgxpool.New(dropCtx, adminDSN(info))
		if err != nil {
			slog.Warn("クリーンアップ用のデータベース接続に失敗しました", "database", dbName, "error", err.Error())
			return
		}
		defer dropPool.Close()

		if _, err := dropPool.Exec(dropCtx, "DROP DATABASE IF EXISTS "+dbName+" WITH (FORCE)"); err != nil {
			slog.Warn("テストデータベースの削除に失敗しました", "database", dbName, "error", err.Error())
		}
	})

	return config.DBConfig{
		Host:     info.Host,
		Port:     info.Port.Port(),
		User:     pgUser,
		Password: pgPassword,
		DBName:   dbName,
		SSLMode:  "disable",
		TimeZone: "UTC",
		MaxConns: 8,
	}
}

// applyMigrations looks for the schema file upwards from the package
// directory that `go test` runs in.
func applyMigrations(t *testing.T, pool *pgxpool.Pool) error {
	t.Helper()

	var (
		sql  []byte
		err  error
		path string
	)
	for depth := range 4 {
		path = filepath.Join(append(repeat("..", depth), migrationFile)...)
		if sql, err = os.ReadFile(path); err == nil {
			break
		}
	}
	if err != nil {
		return fmt.Errorf("failed to read migration file %s: %w", migrationFile, err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if _, err := pool.Exec(ctx, string(sql)); err != nil {
		return fmt.Errorf("failed to execute migration %s: %w", path, err)
	}

	slog.Info("マイグレーション実行完了", "file", path)
	return nil
}

func repeat(s string, n int) []string {
	out := make([]string, n)
	for i := range out {
		out[i] = s
	}
	return out
}

// ------------------------------------------------------------
// アプリケーション
// ------------------------------------------------------------
func buildE2EApp(t *testing.T, pool *pgxpool.Pool, cfg config.Config) *gin.Engine {
	t.Helper()

	var router *gin.Engine
	app := fx.New(
		fx.Provide(
			func() *pgxpool.Pool { return pool },
			func() config.Config { return cfg },
			func() *gin.Engine { return gin.New() },
		),
		bootstrap.LoggerModule,
		bootstrap.JWTModule,
		bootstrap.MetricsModule,
		bootstrap.CacheModule,
		components.PersistenceModule,
		components.UseCaseModule,
		components.HandlerModule,
		fx.Populate(&router),
		fx.NopLogger,
	)

	startCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	require.NoError(t, app.Start(startCtx), "fxアプリケーションの起動に失敗")

	t.Cleanup(func() {
		stopCtx, stopCancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer stopCancel()
		if err := app.Stop(stopCtx); err != nil {
			slog.Warn("fxアプリケーションの停止に失敗しました", "error", err.Error())
		}
	})

	require.NotNil(t, router, "Routerのセットアップに失敗")
	return router
}

// ------------------------------------------------------------
// E2Eテストスイートで共通のセットアップ
// ------------------------------------------------------------
type SharedSuite struct {
	suite.Suite
	Router *gin.Engine
	DB     *pgxpool.Pool
	Config config.Config
}

func (s *SharedSuite) SetupSuite() {
	env := setupE2EEnvironment(s.T())
	s.DB = env.pool
	s.Router = env.router
	s.Config = env.cfg
}

// SetupSubTest truncates every table and reseeds reference data.
func (s *SharedSuite) SetupSubTest() {
	require.NoError(s.T(), dbtest.ResetDB(s.DB), "Failed to reset database state")
}
