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

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

func CreateTestExhibit(t *testing.T, db DBLike, name string, unitFeeCents int64) uuid.UUID {
	t.Helper()

	exhibitID := uuid.New()
	ctx := context.Background()

	tag, err := db.Exec(ctx,
		"INSERT INTO exhibits (id, name, gallery, about, unit_fee_cents) VALUES ($1, $2, $3, $4, $5) ON CONFLICT (name) DO NOTHING",
		exhibitID, name, "East Wing", "Test exhibit", unitFeeCents)
	require.NoError(t, err)

	if tag.RowsAffected() == 0 {
		_ = db.QueryRow(ctx, "SELECT id FROM exhibits WHERE name = $1", name).Scan(&exhibitID)
	}

	return exhibitID
}

func CreateTestBookedSlot(t *testing.T, db DBLike, exhibitID uuid.UUID, slotDate time.Time, slotTime string) {
	t.Helper()

	ctx := context.Background()
	_, err := db.Exec(ctx,
		"INSERT INTO exhibit_booked_slots (exhibit_id, slot_date, slot_time) VALUES ($1, $2, $3) ON CONFLICT DO NOTHING",
		exhibitID, slotDate, slotTime)
	require.NoError(t, err)
}

// inserts basic reference data needed by tests
func SeedReferenceData(pool *pgxpool.Pool) error {
	ctx := context.Background()

	_, err := pool.Exec(ctx, `
		INSERT INTO exhibits (id, name, gallery, about, unit_fee_cents) VALUES
		    (gen_random_uuid(), 'Impressionist Masters', 'East Wing', 'A curated walk through late 19th century painting.', 5000),
		    (gen_random_uuid(), 'Modern Sculpture', 'North Hall', 'Form and material from 1950 onward.', 3000)
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

	return SeedReferenceData(pool)
}
