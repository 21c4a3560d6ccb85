package integration_test

import (
	"context"
	"fmt"
	"time"

	"github.com/docker/go-connections/nat"
	"github.com/metinatakli/planetarium-reservation-system/internal/repository"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	tcredis "github.com/testcontainers/testcontainers-go/modules/redis"
	"github.com/testcontainers/testcontainers-go/wait"
)

type PostgresContainer struct {
	Container        *postgres.PostgresContainer
	ConnectionString string
}

type RedisContainer struct {
	Container        *tcredis.RedisContainer
	ConnectionString string
}

func getDbContainer(ctx context.Context) (*PostgresContainer, error) {
	req := testcontainers.ContainerRequest{
		Image:        dbImageName,
		ExposedPorts: []string{"5432/tcp"},
		Env: map[string]string{
			"POSTGRES_DB":       dbName,
			"POSTGRES_USER":     dbUser,
			"POSTGRES_PASSWORD": dbPassword,
		},
		WaitingFor: wait.ForAll(
			wait.ForLog("database system is ready to accept connections"),
			wait.ForListeningPort("5432/tcp"),
			wait.ForSQL("5432/tcp", "postgres", func(host string, port nat.Port) string {
				return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable",
					dbUser, dbPassword, host, port.Port(), dbName)
			}),
		).WithDeadline(60 * time.Second),
	}

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to start DB container: %w", err)
	}

	host, err := container.Host(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get container host: %w", err)
	}

	port, err := container.MappedPort(ctx, "5432")
	if err != nil {
		return nil, fmt.Errorf("failed to get container port: %w", err)
	}

	connStr := fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=disable",
		dbUser,
		dbPassword,
		host,
		port.Port(),
		dbName,
	)

	err = repository.MigrateUp(connStr, "file://../../migrations")
	if err != nil {
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	dbContainer := &PostgresContainer{
		Container:        &postgres.PostgresContainer{Container: container},
		ConnectionString: connStr,
	}

	return dbContainer, nil
}

func getCacheContainer(ctx context.Context) (*RedisContainer, error) {
	container, err := tcredis.Run(ctx, cacheImageName)
	if err != nil {
		return nil, fmt.Errorf("failed to start cache container: %w", err)
	}

	host, err := container.Host(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get container host: %w", err)
	}

	port, err := container.MappedPort(ctx, "6379")
	if err != nil {
		return nil, fmt.Errorf("failed to get container port: %w", err)
	}

	connStr := fmt.Sprintf("%s:%s", host, port.Port())

	cacheContainer := &RedisContainer{
		Container:        container,
		ConnectionString: connStr,
	}

	return cacheContainer, nil
}
