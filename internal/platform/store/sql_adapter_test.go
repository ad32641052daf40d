package store

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// pgx-level stubs. helpers_test.go carries its own fakes for the RowQuerier
// seam; these sit one layer down, at the pgx.Rows/pgx.Tx surface.

type stubPgxRow struct {
	scan func(dest ...any) error
}

func (r *stubPgxRow) Scan(dest ...any) error {
	if r.scan == nil {
		return nil
	}
	return r.scan(dest...)
}

// gridRows serves a fixed column/value grid through the pgx.Rows interface.
type gridRows struct {
	fields []pgconn.FieldDescription
	grid   [][]any
	pos    int
	err    error
	closed bool
	ct     pgconn.CommandTag
}

func newGridRows(cols []string, grid [][]any) *gridRows {
	fds := make([]pgconn.FieldDescription, len(cols))
	for i, c := range cols {
		fds[i] = pgconn.FieldDescription{Name: c}
	}
	return &gridRows{fields: fds, grid: grid, pos: -1}
}

func (g *gridRows) Conn() *pgx.Conn                              { return nil }
func (g *gridRows) Close()                                       { g.closed = true }
func (g *gridRows) Err() error                                   { return g.err }
func (g *gridRows) CommandTag() pgconn.CommandTag                { return g.ct }
func (g *gridRows) FieldDescriptions() []pgconn.FieldDescription { return g.fields }
func (g *gridRows) RawValues() [][]byte                          { return nil }

func (g *gridRows) Next() bool {
	if g.err != nil {
		return false
	}
	g.pos++
	return g.pos < len(g.grid)
}

func (g *gridRows) Values() ([]any, error) {
	if g.pos < 0 || g.pos >= len(g.grid) {
		return nil, errors.New("no current row")
	}
	return g.grid[g.pos], nil
}

func (g *gridRows) Scan(dest ...any) error {
	if g.err != nil {
		return g.err
	}
	if g.pos < 0 || g.pos >= len(g.grid) {
		return errors.New("no current row")
	}
	cur := g.grid[g.pos]
	if len(cur) != len(dest) {
		return errors.New("dest count mismatch")
	}
	for i, d := range dest {
		dv := reflect.ValueOf(d)
		if dv.Kind() != reflect.Pointer || !dv.Elem().CanSet() {
			return errors.New("dest must be a settable pointer")
		}
		sv := reflect.ValueOf(cur[i])
		switch {
		case sv.IsValid() && sv.Type().AssignableTo(dv.Elem().Type()):
			dv.Elem().Set(sv)
		case sv.IsValid() && sv.Type().ConvertibleTo(dv.Elem().Type()):
			dv.Elem().Set(sv.Convert(dv.Elem().Type()))
		default:
			return errors.New("value not assignable to dest")
		}
	}
	return nil
}

// stubTx is a pgx.Tx whose Exec/Query/QueryRow hand off to test hooks. The
// rest of the interface is stubbed out; txQuerier never reaches it.
type stubTx struct {
	onExec     func(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	onQuery    func(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	onQueryRow func(ctx context.Context, sql string, args ...any) pgx.Row
}

func (s *stubTx) Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error) {
	if s.onExec != nil {
		return s.onExec(ctx, sql, args...)
	}
	return pgconn.NewCommandTag("OK"), nil
}

func (s *stubTx) Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error) {
	if s.onQuery != nil {
		return s.onQuery(ctx, sql, args...)
	}
	return newGridRows([]string{"n"}, [][]any{{1}}), nil
}

func (s *stubTx) QueryRow(ctx context.Context, sql string, args ...any) pgx.Row {
	if s.onQueryRow != nil {
		return s.onQueryRow(ctx, sql, args...)
	}
	return &stubPgxRow{}
}

func (s *stubTx) SendBatch(context.Context, *pgx.Batch) pgx.BatchResults { return nil }
func (s *stubTx) CopyFrom(context.Context, pgx.Identifier, []string, pgx.CopyFromSource) (int64, error) {
	return 0, errors.New("not implemented")
}
func (s *stubTx) LargeObjects() pgx.LargeObjects { return pgx.LargeObjects{} }
func (s *stubTx) Prepare(context.Context, string, string) (*pgconn.StatementDescription, error) {
	return nil, errors.New("not implemented")
}
func (s *stubTx) Conn() *pgx.Conn                           { return nil }
func (s *stubTx) Commit(context.Context) error              { return nil }
func (s *stubTx) Rollback(context.Context) error            { return nil }
func (s *stubTx) Begin(ctx context.Context) (pgx.Tx, error) { return s, nil }

func TestTag_String(t *testing.T) {
	t.Parallel()

	tg := tag{}
	tg.t = pgconn.NewCommandTag("INSERT 0 1")

	if got := tg.String(); got != "INSERT 0 1" {
		t.Fatalf("tag.String: got %q", got)
	}
}

func TestRows_WrapsPgxRows(t *testing.T) {
	t.Parallel()

	fr := newGridRows([]string{"id", "name"}, [][]any{{1, "ada"}, {2, "zoe"}})
	rs := rows{r: fr}

	if cols := rs.Columns(); len(cols) != 2 || cols[0] != "id" || cols[1] != "name" {
		t.Fatalf("Columns: %#v", cols)
	}

	var gotIDs []int
	var gotNames []string
	for rs.Next() {
		var id int
		var name string
		if err := rs.Scan(&id, &name); err != nil {
			t.Fatalf("Scan: %v", err)
		}
		gotIDs = append(gotIDs, id)
		gotNames = append(gotNames, name)
	}
	if err := rs.Err(); err != nil {
		t.Fatalf("Err: %v", err)
	}
	if !reflect.DeepEqual(gotIDs, []int{1, 2}) || !reflect.DeepEqual(gotNames, []string{"ada", "zoe"}) {
		t.Fatalf("rows content: ids=%v names=%v", gotIDs, gotNames)
	}

	rs.Close()
	if !fr.closed {
		t.Fatal("Close did not reach the underlying rows")
	}
}

func TestRow_ScanDelegates(t *testing.T) {
	t.Parallel()

	r := row{r: &stubPgxRow{scan: func(dest ...any) error {
		if len(dest) != 1 {
			return errors.New("want exactly one dest")
		}
		p, ok := dest[0].(*string)
		if !ok {
			return errors.New("want *string dest")
		}
		*p = "routed"
		return nil
	}}}

	var s string
	if err := r.Scan(&s); err != nil {
		t.Fatalf("row.Scan: %v", err)
	}
	if s != "routed" {
		t.Fatalf("row.Scan wrote %q", s)
	}
}

func TestTxQuerier_Exec_Query_QueryRow(t *testing.T) {
	t.Parallel()

	const (
		updSQL = "update operators set max_load=$1 where id=$2"
		selSQL = "select id, name from operators where id=$1"
	)

	fx := &stubTx{
		onExec: func(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error) {
			if sql != updSQL {
				return pgconn.NewCommandTag(""), errors.New("unexpected sql")
			}
			if len(args) != 2 || args[0] != 9 || args[1] != 1 {
				return pgconn.NewCommandTag(""), errors.New("unexpected args")
			}
			return pgconn.NewCommandTag("UPDATE 1"), nil
		},
		onQuery: func(ctx context.Context, sql string, args ...any) (pgx.Rows, error) {
			if sql != selSQL || len(args) != 1 || args[0] != 1 {
				return nil, errors.New("unexpected query")
			}
			return newGridRows([]string{"id", "name"}, [][]any{{1, "ada"}}), nil
		},
		onQueryRow: func(ctx context.Context, sql string, args ...any) pgx.Row {
			return &stubPgxRow{scan: func(dest ...any) error {
				p, ok := dest[0].(*int)
				if !ok {
					return errors.New("want *int dest")
				}
				*p = 7
				return nil
			}}
		},
	}
	q := txQuerier{tx: fx}

	ct, err := q.Exec(context.Background(), updSQL, 9, 1)
	if err != nil {
		t.Fatalf("Exec: %v", err)
	}
	if ct.String() != "UPDATE 1" {
		t.Fatalf("Exec tag: %q", ct.String())
	}

	rs, err := q.Query(context.Background(), selSQL, 1)
	if err != nil {
		t.Fatalf("Query: %v", err)
	}
	defer rs.Close()

	if !rs.Next() {
		t.Fatal("Query returned no rows")
	}
	var id int
	var name string
	if err := rs.Scan(&id, &name); err != nil {
		t.Fatalf("Scan: %v", err)
	}
	if id != 1 || name != "ada" {
		t.Fatalf("row: id=%d name=%q", id, name)
	}
	if rs.Next() {
		t.Fatal("Query returned an extra row")
	}

	var n int
	if err := q.QueryRow(context.Background(), "select 1").Scan(&n); err != nil {
		t.Fatalf("QueryRow scan: %v", err)
	}
	if n != 7 {
		t.Fatalf("QueryRow value: %d", n)
	}
}

func TestRows_ScanAndErrFailures(t *testing.T) {
	t.Parallel()

	t.Run("dest count mismatch", func(t *testing.T) {
		t.Parallel()

		rs := rows{r: newGridRows([]string{"id", "phone"}, [][]any{{1, "15550001"}})}
		if !rs.Next() {
			t.Fatal("want a row")
		}
		var only int
		if err := rs.Scan(&only); err == nil {
			t.Fatal("Scan with too few dests should fail")
		}
	})

	t.Run("err short-circuits Next", func(t *testing.T) {
		t.Parallel()

		fr := newGridRows([]string{"n"}, nil)
		fr.err = errors.New("conn reset")

		rs := rows{r: fr}
		if rs.Next() {
			t.Fatal("Next should be false once the cursor errored")
		}
		if err := rs.Err(); err == nil || err.Error() != "conn reset" {
			t.Fatalf("Err: %v", err)
		}
	})
}

func TestTxQuerier_PropagatesErrors(t *testing.T) {
	t.Parallel()

	fx := &stubTx{
		onExec: func(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error) {
			return pgconn.NewCommandTag(""), errors.New("exec failed")
		},
		onQuery: func(ctx context.Context, sql string, args ...any) (pgx.Rows, error) {
			return nil, errors.New("query failed")
		},
		onQueryRow: func(ctx context.Context, sql string, args ...any) pgx.Row {
			return &stubPgxRow{scan: func(dest ...any) error { return errors.New("scan failed") }}
		},
	}
	q := txQuerier{tx: fx}

	if _, err := q.Exec(context.Background(), "noop"); err == nil {
		t.Fatal("want Exec error")
	}
	if _, err := q.Query(context.Background(), "noop"); err == nil {
		t.Fatal("want Query error")
	}
	var n int
	if err := q.QueryRow(context.Background(), "noop").Scan(&n); err == nil {
		t.Fatal("want QueryRow.Scan error")
	}
}
