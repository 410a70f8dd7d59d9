package repository

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"idealink-backend/internal/domains/idea"
)

// TestTextArrayScanBothWireFormats pins the professions column's scan
// destination: pgxpool's default exec mode describes statements and gets
// text[] back in binary format, which only a plain []string destination
// decodes. A sql.Scanner wrapper like pq.StringArray chokes on the binary
// representation.
func TestTextArrayScanBothWireFormats(t *testing.T) {
	m := pgtype.NewMap()
	src := []string{"backend developer", "designer"}

	formats := []struct {
		name string
		code int16
	}{
		{"text", pgtype.TextFormatCode},
		{"binary", pgtype.BinaryFormatCode},
	}

	for _, f := range formats {
		t.Run(f.name, func(t *testing.T) {
			encoded, err := m.Encode(pgtype.TextArrayOID, f.code, src, nil)
			require.NoError(t, err)

			var professions []string
			require.NoError(t, m.Scan(pgtype.TextArrayOID, f.code, encoded, &professions))
			assert.Equal(t, src, professions)
		})
	}
}

// recordingTx satisfies pgx.Tx and records executed statements in order.
type recordingTx struct {
	execs      []string
	ideasTag   string
	committed  bool
	rolledBack bool
}

func (f *recordingTx) Exec(_ context.Context, sql string, _ ...any) (pgconn.CommandTag, error) {
	f.execs = append(f.execs, sql)
	if strings.Contains(sql, "FROM ideas") {
		return pgconn.NewCommandTag(f.ideasTag), nil
	}
	return pgconn.NewCommandTag("DELETE 2"), nil
}

func (f *recordingTx) Commit(_ context.Context) error {
	f.committed = true
	return nil
}

func (f *recordingTx) Rollback(_ context.Context) error {
	f.rolledBack = true
	return nil
}

func (f *recordingTx) Begin(_ context.Context) (pgx.Tx, error) { return f, nil }
func (f *recordingTx) Conn() *pgx.Conn                         { return nil }
func (f *recordingTx) LargeObjects() pgx.LargeObjects          { return pgx.LargeObjects{} }
func (f *recordingTx) SendBatch(_ context.Context, _ *pgx.Batch) pgx.BatchResults {
	return nil
}
func (f *recordingTx) CopyFrom(_ context.Context, _ pgx.Identifier, _ []string, _ pgx.CopyFromSource) (int64, error) {
	return 0, nil
}
func (f *recordingTx) Prepare(_ context.Context, _, _ string) (*pgconn.StatementDescription, error) {
	return nil, nil
}
func (f *recordingTx) Query(_ context.Context, _ string, _ ...any) (pgx.Rows, error) {
	return nil, nil
}
func (f *recordingTx) QueryRow(_ context.Context, _ string, _ ...any) pgx.Row {
	return nil
}

// fakeDB hands out the recording transaction; the non-transactional paths
// are unused by these tests.
type fakeDB struct {
	tx *recordingTx
}

func (f *fakeDB) Begin(_ context.Context) (pgx.Tx, error) { return f.tx, nil }
func (f *fakeDB) Exec(_ context.Context, _ string, _ ...any) (pgconn.CommandTag, error) {
	return pgconn.CommandTag{}, nil
}
func (f *fakeDB) Query(_ context.Context, _ string, _ ...any) (pgx.Rows, error) {
	return nil, nil
}
func (f *fakeDB) QueryRow(_ context.Context, _ string, _ ...any) pgx.Row {
	return nil
}

// spyCache records invalidations.
type spyCache struct {
	deleted []string
}

func (c *spyCache) Get(_ context.Context, _ string, _ interface{}) (bool, error) {
	return false, nil
}
func (c *spyCache) Set(_ context.Context, _ string, _ interface{}, _ time.Duration) error {
	return nil
}
func (c *spyCache) Delete(_ context.Context, keys ...string) error {
	c.deleted = append(c.deleted, keys...)
	return nil
}
func (c *spyCache) Ping(_ context.Context) error { return nil }

func TestDeleteRunsCascadeInOneTransaction(t *testing.T) {
	tx := &recordingTx{ideasTag: "DELETE 1"}
	spy := &spyCache{}
	repo := NewPostgresRepository(&fakeDB{tx: tx}, spy)

	id := uuid.New()
	err := repo.Delete(context.Background(), id)
	require.NoError(t, err)

	require.Len(t, tx.execs, 2)
	assert.Contains(t, tx.execs[0], "FROM applications")
	assert.Contains(t, tx.execs[1], "FROM ideas")

	assert.True(t, tx.committed)
	assert.False(t, tx.rolledBack)
	assert.Contains(t, spy.deleted, "idea:"+id.String())
}

func TestDeleteMissingIdeaRollsBack(t *testing.T) {
	tx := &recordingTx{ideasTag: "DELETE 0"}
	spy := &spyCache{}
	repo := NewPostgresRepository(&fakeDB{tx: tx}, spy)

	err := repo.Delete(context.Background(), uuid.New())
	assert.ErrorIs(t, err, idea.ErrIdeaNotFound)

	assert.True(t, tx.rolledBack)
	assert.False(t, tx.committed)
	assert.Empty(t, spy.deleted)
}
