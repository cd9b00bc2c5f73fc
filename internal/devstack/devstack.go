// devstack.go
//
// Planning portal ticket to job document delivery service
// Copyright (c) 2026 Alex Grant <info@localnerve.com> (https://www.localnerve.com), LocalNerve LLC
//
// This file is part of planning-portal.
// planning-portal is free software: you can redistribute it and/or modify it
// under the terms of the GNU Affero General Public License as published by the Free Software
// Foundation, either version 3 of the License, or (at your option) any later version.
// planning-portal is distributed in the hope that it will be useful, but WITHOUT ANY WARRANTY;
// without even the implied warranty of MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.
// See the GNU Affero General Public License for more details.
// You should have received a copy of the GNU Affero General Public License along with planning-portal.
// If not, see <https://www.gnu.org/licenses/>.
// Additional terms under GNU AGPL version 3 section 7:
// a) The reasonable legal notice of original copyright and author attribution must be preserved
//    by including the string: "Copyright (c) 2026 Alex Grant <info@localnerve.com> (https://www.localnerve.com), LocalNerve LLC"
//    in this material, copies, or source code of derived works.

// Package devstack runs the MariaDB and Redis containers used for local
// development and the SQL integration tests.
package devstack

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net"
	"os"
	"sort"
	"time"

	"github.com/docker/docker/api/types/container"
	"github.com/docker/go-connections/nat"
	mysqldriver "github.com/go-sql-driver/mysql"
	"github.com/localnerve/planning-portal/internal/config"
	"github.com/localnerve/planning-portal/internal/logging"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/network"
	"github.com/testcontainers/testcontainers-go/wait"
	"go.uber.org/zap"
)

const (
	dbAlias    = "mariadb"
	redisAlias = "redis"
)

// Options select the images and credentials of the stack.
type Options struct {
	DBImage      string
	DBPort       string
	Database     string
	User         string
	Password     string
	RootPassword string
	RedisImage   string
}

// OptionsFromEnv reads the stack options from the environment
func OptionsFromEnv() Options {
	return Options{
		DBImage:      getEnv("DB_IMAGE", "mariadb:11"),
		DBPort:       getEnv("DB_PORT", "3306"),
		Database:     getEnv("DB_DATABASE", "planning_portal"),
		User:         getEnv("DB_USER", "portal"),
		Password:     getEnv("DB_PASSWORD", "portal"),
		RootPassword: getEnv("DB_ROOT_PASSWORD", "root"),
		RedisImage:   getEnv("REDIS_IMAGE", "redis:7-alpine"),
	}
}

// Stack is a running set of containers.
type Stack struct {
	Network *testcontainers.DockerNetwork
	DB      testcontainers.Container
	Redis   testcontainers.Container

	opts      Options
	dbHost    string
	dbPort    string
	redisAddr string
	logger    *zap.Logger
}

// Start creates the network and starts MariaDB and Redis. On failure everything
// already started is terminated.
func Start(ctx context.Context, opts Options, logger *zap.Logger) (*Stack, error) {
	s := &Stack{opts: opts, logger: logging.OrNop(logger)}

	nw, err := network.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create network: %w", err)
	}
	s.Network = nw

	if err := s.startDB(ctx); err != nil {
		return nil, errors.Join(err, s.Terminate(context.Background()))
	}
	if err := s.startRedis(ctx); err != nil {
		return nil, errors.Join(err, s.Terminate(context.Background()))
	}
	return s, nil
}

func (s *Stack) startDB(ctx context.Context) error {
	tcpPort, err := nat.NewPort("tcp", s.opts.DBPort)
	if err != nil {
		return fmt.Errorf("failed to create DB port: %w", err)
	}

	db, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        s.opts.DBImage,
			ExposedPorts: []string{string(tcpPort)},
			Env: map[string]string{
				"MYSQL_ROOT_PASSWORD": s.opts.RootPassword,
				"MYSQL_DATABASE":      s.opts.Database,
				"MYSQL_USER":          s.opts.User,
				"MYSQL_PASSWORD":      s.opts.Password,
			},
			// Throwaway data, keep it in memory
			HostConfigModifier: func(hc *container.HostConfig) {
				hc.Tmpfs = map[string]string{"/var/lib/mysql": "rw"}
			},
			WaitingFor: wait.ForListeningPort(tcpPort).WithStartupTimeout(60 * time.Second),
			Networks:   []string{s.Network.Name},
			NetworkAliases: map[string][]string{
				s.Network.Name: {dbAlias},
			},
		},
		Started: true,
	})
	if err != nil {
		return fmt.Errorf("failed to start MariaDB: %w", err)
	}
	s.DB = db

	host, err := db.Host(ctx)
	if err != nil {
		return err
	}
	mapped, err := db.MappedPort(ctx, tcpPort)
	if err != nil {
		return err
	}
	s.dbHost, s.dbPort = host, mapped.Port()
	s.logger.Info("mariadb started", zap.String("addr", net.JoinHostPort(s.dbHost, s.dbPort)))

	return s.waitForDB(ctx)
}

// waitForDB pings until the server accepts the application user. The port opens
// before the entrypoint has finished creating users.
func (s *Stack) waitForDB(ctx context.Context) error {
	dsn := mysqldriver.NewConfig()
	dsn.User = s.opts.User
	dsn.Passwd = s.opts.Password
	dsn.Net = "tcp"
	dsn.Addr = net.JoinHostPort(s.dbHost, s.dbPort)
	dsn.DBName = s.opts.Database

	db, err := sql.Open("mysql", dsn.FormatDSN())
	if err != nil {
		return fmt.Errorf("failed to open MariaDB: %w", err)
	}
	defer db.Close()

	for i := 0; i < 30; i++ {
		if err = db.PingContext(ctx); err == nil {
			return nil
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(time.Second):
		}
	}
	return fmt.Errorf("MariaDB not ready after 30 seconds: %w", err)
}

func (s *Stack) startRedis(ctx context.Context) error {
	tcpPort, err := nat.NewPort("tcp", "6379")
	if err != nil {
		return err
	}
	redis, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        s.opts.RedisImage,
			ExposedPorts: []string{string(tcpPort)},
			WaitingFor:   wait.ForLog("Ready to accept connections").WithStartupTimeout(30 * time.Second),
			Networks:     []string{s.Network.Name},
			NetworkAliases: map[string][]string{
				s.Network.Name: {redisAlias},
			},
		},
		Started: true,
	})
	if err != nil {
		return fmt.Errorf("failed to start Redis: %w", err)
	}
	s.Redis = redis

	host, err := redis.Host(ctx)
	if err != nil {
		return err
	}
	mapped, err := redis.MappedPort(ctx, tcpPort)
	if err != nil {
		return err
	}
	s.redisAddr = net.JoinHostPort(host, mapped.Port())
	s.logger.Info("redis started", zap.String("addr", s.redisAddr))
	return nil
}

// Env returns the variables that point the portal at the stack
func (s *Stack) Env() map[string]string {
	return map[string]string{
		"STORE_TYPE":   "sql",
		"DB_TYPE":      "mariadb",
		"DB_HOST":      s.dbHost,
		"DB_PORT":      s.dbPort,
		"DB_DATABASE":  s.opts.Database,
		"DB_USER":      s.opts.User,
		"DB_PASSWORD":  s.opts.Password,
		"LOCK_BACKEND": "redis",
		"REDIS_ADDR":   s.redisAddr,
	}
}

// EnvLines renders Env as sorted KEY=VALUE lines
func (s *Stack) EnvLines() []string {
	env := s.Env()
	lines := make([]string, 0, len(env))
	for k, v := range env {
		lines = append(lines, k+"="+v)
	}
	sort.Strings(lines)
	return lines
}

// Config returns a portal configuration using the stack and dataDir
func (s *Stack) Config(dataDir string) *config.Config {
	return &config.Config{
		Port:              "3000",
		PublicBasePath:    "/api",
		DataDir:           dataDir,
		MaxUploadBytes:    20 << 20,
		StoreType:         "sql",
		DBType:            "mariadb",
		DBHost:            s.dbHost,
		DBPort:            s.dbPort,
		DBDatabase:        s.opts.Database,
		DBUser:            s.opts.User,
		DBPassword:        s.opts.Password,
		DBConnectionLimit: 5,
		LockBackend:       "redis",
		RedisAddr:         s.redisAddr,
		LockTTLMillis:     10000,
		LogLevel:          "info",
		LogFormat:         "console",
	}
}

// Terminate stops the containers and removes the network
func (s *Stack) Terminate(ctx context.Context) error {
	var errs []error
	if s.Redis != nil {
		if err := s.Redis.Terminate(ctx); err != nil {
			errs = append(errs, fmt.Errorf("failed to terminate Redis: %w", err))
		}
	}
	if s.DB != nil {
		if err := s.DB.Terminate(ctx); err != nil {
			errs = append(errs, fmt.Errorf("failed to terminate MariaDB: %w", err))
		}
	}
	if s.Network != nil {
		if err := s.Network.Remove(ctx); err != nil {
			errs = append(errs, fmt.Errorf("failed to remove network: %w", err))
		}
	}
	return errors.Join(errs...)
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
