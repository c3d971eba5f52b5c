//go:build unit

package pgconv_test

import (
	"database/sql"
	"fmt"
	"testing"
	"time"

	"vander-key-store/internal/pkg/pgconv"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/assert"
)

func TestTimeConversion(t *testing.T) {
	tokyo := time.FixedZone("JST", 9*60*60)
	local := time.Date(2026, 1, 2, 12, 0, 0, 0, tokyo)

	pt := pgconv.TimeToPgtype(local)
	assert.True(t, pt.Valid)
	assert.Equal(t, time.UTC, pt.Time.Location())

	back := pgconv.TimeFromPgtype(pt)
	assert.True(t, back.Equal(local))
	assert.Equal(t, time.UTC, back.Location())

	assert.False(t, pgconv.TimeToPgtype(time.Time{}).Valid)
	assert.True(t, pgconv.TimeFromPgtype(pgtype.Timestamptz{}).IsZero())
}

func TestStringConversion(t *testing.T) {
	assert.Equal(t, "buyer@example.com", pgconv.StringFromPgtype(pgconv.StringToPgtype("buyer@example.com")))
	assert.Empty(t, pgconv.StringFromPgtype(pgtype.Text{}))
}

func TestIsNoRows(t *testing.T) {
	assert.True(t, pgconv.IsNoRows(pgx.ErrNoRows))
	assert.True(t, pgconv.IsNoRows(fmt.Errorf("select: %w", sql.ErrNoRows)))
	assert.False(t, pgconv.IsNoRows(sql.ErrConnDone))
}
