//go:build unit || e2e

package dbtest

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

// DefaultPassword is the plain password of every fixture user.
const DefaultPassword = "password123"

var (
	hashOnce    sync.Once
	defaultHash string
)

func passwordHash(t *testing.T) string {
	t.Helper()
	hashOnce.Do(func() {
		b, err := bcrypt.GenerateFromPassword([]byte(DefaultPassword), bcrypt.MinCost)
		if err == nil {
			defaultHash = string(b)
		}
	})
	require.NotEmpty(t, defaultHash, "failed to hash fixture password")
	return defaultHash
}

// CreateTestUser inserts an active user or returns the id of the existing one.
func CreateTestUser(t *testing.T, db DBLike, username, role string) int64 {
	t.Helper()

	ctx := context.Background()
	var id int64
	err := db.QueryRow(ctx, `
		INSERT INTO users (username, email, password_hash, full_name, whatsapp, department, role)
		VALUES ($1, $2, $3, $4, '081234567890', 'Finance', $5)
		ON CONFLICT (username) DO UPDATE SET role = EXCLUDED.role
		RETURNING id`,
		username, username+"@example.com", passwordHash(t), "User "+username, role).Scan(&id)
	require.NoError(t, err)
	return id
}

func CreateTestRoom(t *testing.T, db DBLike, name string, capacity int) int64 {
	t.Helper()

	var id int64
	err := db.QueryRow(context.Background(),
		"INSERT INTO rooms (name, capacity) VALUES ($1, $2) ON CONFLICT (name) DO UPDATE SET is_active = TRUE RETURNING id",
		name, capacity).Scan(&id)
	require.NoError(t, err)
	return id
}

// SeedReferenceData inserts the rooms, facilities and departments tests rely on.
func SeedReferenceData(pool *pgxpool.Pool) error {
	ctx := context.Background()

	_, err := pool.Exec(ctx, `
		INSERT INTO rooms (name, capacity, location) VALUES
		    ('Room A', 10, 'Lantai 2'),
		    ('Room B', 6, 'Lantai 3')
		ON CONFLICT (name) DO NOTHING;
		INSERT INTO facilities (name) VALUES ('Projector'), ('Whiteboard')
		ON CONFLICT (name) DO NOTHING;
		INSERT INTO departments (name) VALUES ('Finance'), ('General Affairs')
		ON CONFLICT (name) DO NOTHING;
	`)
	if err != nil {
		return err
	}

	return nil
}

var (
	buildTruncateOnce sync.Once
	truncateSQL       atomic.Value // string
)

// truncates all tables and reseeds reference data
func ResetDB(pool *pgxpool.Pool) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	buildTruncateOnce.Do(func() {
		rows, err := pool.Query(ctx, `
		  SELECT 'public.' || quote_ident(tablename)
		  FROM pg_tables
		  WHERE schemaname = 'public'
		    AND tablename NOT IN ('schema_migrations')`)
		if err != nil {
			truncateSQL.Store("")
			return
		}
		defer rows.Close()
		var tables []string
		for rows.Next() {
			var t string
			if err := rows.Scan(&t); err != nil {
				truncateSQL.Store("")
				return
			}
			tables = append(tables, t)
		}
		if rows.Err() != nil {
			truncateSQL.Store("")
			return
		}
		if len(tables) == 0 {
			truncateSQL.Store("SELECT 1")
			return
		}
		truncateSQL.Store("TRUNCATE " + strings.Join(tables, ", ") + " RESTART IDENTITY CASCADE;")
	})
	sqlAny := truncateSQL.Load()
	if sqlAny == nil || sqlAny.(string) == "" {
		return fmt.Errorf("failed to build TRUNCATE SQL")
	}
	if _, err := pool.Exec(ctx, sqlAny.(string)); err != nil {
		return err
	}
	if _, err := pool.Exec(ctx, "ALTER SEQUENCE meeting_request_code_seq RESTART"); err != nil {
		return err
	}

	return SeedReferenceData(pool)
}
