// Helpers for running integration tests against real database containers.
// Expects docker to be available locally; callers skip when it is not.

package helpers

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"time"

	"github.com/docker/docker/client"
	"github.com/docker/go-connections/nat"
	_ "github.com/go-sql-driver/mysql"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

const (
	dbName     = "backoffice_test"
	dbUser     = "backoffice"
	dbPassword = "backoffice-test-pw"
)

// DockerAvailable reports whether a docker daemon answers on this host.
func DockerAvailable(ctx context.Context) bool {
	cli, err := client.NewClientWithOpts(client.FromEnv, client.WithAPIVersionNegotiation())
	if err != nil {
		return false
	}
	defer cli.Close()
	_, err = cli.Ping(ctx)
	return err == nil
}

// MariaDB is a running throwaway database container.
type MariaDB struct {
	Container testcontainers.Container
	Host      string
	Port      string
	Name      string
	User      string
	Password  string
}

// StartMariaDB launches a MariaDB container and waits until it accepts
// connections with the test credentials.
func StartMariaDB(ctx context.Context) (*MariaDB, error) {
	image := os.Getenv("DB_IMAGE")
	if image == "" {
		image = "mariadb:11"
	}

	tcpPort, err := nat.NewPort("tcp", "3306")
	if err != nil {
		return nil, err
	}

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        image,
			ExposedPorts: []string{string(tcpPort)},
			Env: map[string]string{
				"MYSQL_ROOT_PASSWORD": "rootpass",
				"MYSQL_DATABASE":      dbName,
				"MYSQL_USER":          dbUser,
				"MYSQL_PASSWORD":      dbPassword,
			},
			WaitingFor: wait.ForListeningPort(tcpPort).WithStartupTimeout(90 * time.Second),
		},
		Started: true,
	})
	if err != nil {
		return nil, err
	}

	host, err := container.Host(ctx)
	if err != nil {
		_ = container.Terminate(ctx)
		return nil, err
	}
	mapped, err := container.MappedPort(ctx, tcpPort)
	if err != nil {
		_ = container.Terminate(ctx)
		return nil, err
	}

	db := &MariaDB{
		Container: container,
		Host:      host,
		Port:      mapped.Port(),
		Name:      dbName,
		User:      dbUser,
		Password:  dbPassword,
	}

	if err := db.waitReady(ctx); err != nil {
		_ = container.Terminate(ctx)
		return nil, err
	}
	return db, nil
}

// Terminate stops and removes the container.
func (m *MariaDB) Terminate(ctx context.Context) error {
	if m.Container == nil {
		return nil
	}
	return m.Container.Terminate(ctx)
}

// waitReady pings with the app credentials until the server accepts them.
// The listening port opens before grants are in place.
func (m *MariaDB) waitReady(ctx context.Context) error {
	dsn := fmt.Sprintf("%s:%s@tcp(%s:%s)/%s", m.User, m.Password, m.Host, m.Port, m.Name)

	deadline := time.Now().Add(60 * time.Second)
	for {
		conn, err := sql.Open("mysql", dsn)
		if err == nil {
			err = conn.PingContext(ctx)
			_ = conn.Close()
			if err == nil {
				return nil
			}
		}
		if time.Now().After(deadline) {
			return fmt.Errorf("database never became ready: %w", err)
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(time.Second):
		}
	}
}
