// Package sql provides a dialect.Driver implementation on top of the
// standard database/sql package.
//
// It wraps *sql.DB and *sql.Tx with the dialect.ExecQuerier contract used
// by the schema tooling, and adds session variables, null scanning helpers
// and query statistics.
//
// # Opening a Driver
//
// A driver is opened from a driver name and data source, or wrapped around
// an existing *sql.DB:
//
//	drv, err := sql.Open(dialect.Postgres, "postgres://localhost:5432/test")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer drv.Close()
//
//	// Or, reuse an already configured pool.
//	drv := sql.OpenDB(dialect.MySQL, db)
//
// # Transactions
//
// Transactions implement the dialect.Tx interface and share the same
// Exec/Query contract as the root driver:
//
//	tx, err := drv.Tx(ctx)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	var res sql.Result
//	if err := tx.Exec(ctx, "UPDATE users SET active = true", []any{}, &res); err != nil {
//	    _ = tx.Rollback()
//	    log.Fatal(err)
//	}
//	_ = tx.Commit()
//
// # Session Variables
//
// Session or transaction variables can be attached to the context and are
// applied before every statement. When the statement runs on the connection
// pool, the variables are reset before the connection is returned:
//
//	ctx = sql.WithVar(ctx, "app.current_tenant", tenant)
//	var rows sql.Rows
//	err := drv.Query(ctx, "SELECT id FROM users", []any{}, &rows)
//
// # Query Statistics
//
// The Stats driver wraps any dialect.Driver and records counters and
// latencies for executed statements:
//
//	drv := sql.NewStatsDriver(base, sql.WithSlowQueryLog())
//	...
//	snap := drv.QueryStats().Stats()
//	fmt.Println(snap.TotalQueries, snap.AvgQueryDuration())
package sql
