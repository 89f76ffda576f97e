package ch

import (
	"context"
	"errors"
	"testing"

	"personalab/internal/platform/testkit"

	"github.com/ClickHouse/clickhouse-go/v2"
	"github.com/ClickHouse/clickhouse-go/v2/lib/driver"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeBatch embeds driver.Batch so only the used methods need bodies
type fakeBatch struct {
	driver.Batch
	rows      [][]any
	appendErr error
	sent      bool
	aborted   bool
}

func (b *fakeBatch) Append(v ...any) error {
	if b.appendErr != nil {
		return b.appendErr
	}
	b.rows = append(b.rows, v)
	return nil
}
func (b *fakeBatch) Send() error  { b.sent = true; return nil }
func (b *fakeBatch) Abort() error { b.aborted = true; return nil }

type fakeRows struct {
	driver.Rows
	left int
}

func (r *fakeRows) Next() bool             { r.left--; return r.left >= 0 }
func (r *fakeRows) Scan(dest ...any) error { *(dest[0].(*int32)) = 1; return nil }

type fakeConn struct {
	batch    *fakeBatch
	query    string
	execSQL  string
	pingErr  error
	closed   bool
	prepared string
}

func (c *fakeConn) Query(_ context.Context, q string, _ ...any) (driver.Rows, error) {
	c.query = q
	return &fakeRows{left: 1}, nil
}
func (c *fakeConn) PrepareBatch(_ context.Context, q string, _ ...driver.PrepareBatchOption) (driver.Batch, error) {
	c.prepared = q
	return c.batch, nil
}
func (c *fakeConn) Exec(_ context.Context, q string, _ ...any) error { c.execSQL = q; return nil }
func (c *fakeConn) Ping(context.Context) error                       { return c.pingErr }
func (c *fakeConn) Close() error                                     { c.closed = true; return nil }

func useConn(t *testing.T, fc *fakeConn) {
	t.Helper()
	testkit.Serial(t)
	testkit.Swap(t, &dial, func(*clickhouse.Options) (conn, error) { return fc, nil })
}

func TestOpen(t *testing.T) {
	fc := &fakeConn{}
	var seen *clickhouse.Options
	testkit.Serial(t)
	testkit.Swap(t, &dial, func(o *clickhouse.Options) (conn, error) {
		seen = o
		return fc, nil
	})

	c, err := Open(context.Background(), Config{URL: "clickhouse://default:@localhost:9000/audit", Role: "api", Tag: "v1.2.0"})
	require.NoError(t, err)
	require.NotNil(t, c)

	require.NotNil(t, seen)
	assert.Equal(t, "audit", seen.Auth.Database)
	require.NotEmpty(t, seen.ClientInfo.Products)
	assert.Equal(t, "personalab", seen.ClientInfo.Products[0].Name)
	assert.Equal(t, "v1.2.0", seen.ClientInfo.Products[0].Version)
	assert.Equal(t, "api", seen.ClientInfo.Products[1].Version)
}

func TestOpen_Errors(t *testing.T) {
	_, err := Open(context.Background(), Config{URL: "::not a dsn"})
	assert.Error(t, err)

	fc := &fakeConn{pingErr: errors.New("connection refused")}
	useConn(t, fc)
	_, err = Open(context.Background(), Config{URL: "clickhouse://localhost:9000"})
	assert.ErrorContains(t, err, "ch ping")
	assert.True(t, fc.closed, "failed ping closes the connection")
}

func TestInsert(t *testing.T) {
	b := &fakeBatch{}
	c := &CH{conn: &fakeConn{batch: b}}

	require.NoError(t, c.Insert(context.Background(), "persona_exports", [][]any{
		{"p-1", "markdown", uint64(1200)},
		{"p-1", "json", uint64(800)},
	}))
	assert.Equal(t, "INSERT INTO persona_exports", c.conn.(*fakeConn).prepared)
	assert.Len(t, b.rows, 2)
	assert.True(t, b.sent)

	// nothing to write is not a round trip
	empty := &fakeConn{}
	require.NoError(t, (&CH{conn: empty}).Insert(context.Background(), "persona_exports", nil))
	assert.Empty(t, empty.prepared)
}

func TestInsert_AppendErrorAborts(t *testing.T) {
	b := &fakeBatch{appendErr: errors.New("type mismatch")}
	c := &CH{conn: &fakeConn{batch: b}}

	err := c.Insert(context.Background(), "persona_exports", [][]any{{"x"}})
	assert.ErrorContains(t, err, "row 0")
	assert.True(t, b.aborted)
	assert.False(t, b.sent)
}

func TestQueryExecPingClose(t *testing.T) {
	fc := &fakeConn{}
	c := &CH{conn: fc}
	ctx := context.Background()

	rows, err := c.Query(ctx, "SELECT toInt32(1)")
	require.NoError(t, err)
	require.True(t, rows.Next())
	var one int32
	require.NoError(t, rows.Scan(&one))
	assert.EqualValues(t, 1, one)
	assert.False(t, rows.Next())

	require.NoError(t, c.Exec(ctx, "CREATE TABLE IF NOT EXISTS t (x UInt8) ENGINE = Memory"))
	assert.Contains(t, fc.execSQL, "CREATE TABLE")
	assert.NoError(t, c.Ping(ctx))
	assert.NoError(t, c.Close())
	assert.True(t, fc.closed)

	var nilCH *CH
	assert.NoError(t, nilCH.Close())
}

func TestBuildClientInfo(t *testing.T) {
	t.Parallel()

	ci := BuildClientInfo(" export ", "")
	names := make([]string, 0, len(ci.Products))
	for _, p := range ci.Products {
		names = append(names, p.Name)
	}
	assert.Equal(t, []string{"personalab", "role", "go", "commit", "host"}, names)
	assert.Equal(t, "export", ci.Products[1].Version)
}
