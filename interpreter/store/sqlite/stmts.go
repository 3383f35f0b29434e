package sqlite

import (
	"context"
	"database/sql"
	"fmt"
)

type statements struct {
	saveContext       *sql.Stmt
	getContext        *sql.Stmt
	listContexts      *sql.Stmt
	listClientContext *sql.Stmt
	deleteContext     *sql.Stmt
	saveJob           *sql.Stmt
	listJobs          *sql.Stmt
}

const contextColumns = `id, client, name, fw_ctx_id, start_col, num_col, num_tiles,
	mem_size, max_opc, qos, cus, status, old_status, created_at`

func (st *statements) prepare(ctx context.Context, db *sql.DB) error {
	queries := []struct {
		name string
		dst  **sql.Stmt
		sql  string
	}{
		{"SaveContext", &st.saveContext, `
			INSERT INTO hw_contexts (` + contextColumns + `, updated_at)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
			ON CONFLICT(id) DO UPDATE SET
			  name = excluded.name,
			  fw_ctx_id = excluded.fw_ctx_id,
			  num_tiles = excluded.num_tiles,
			  mem_size = excluded.mem_size,
			  max_opc = excluded.max_opc,
			  qos = excluded.qos,
			  cus = excluded.cus,
			  status = excluded.status,
			  old_status = excluded.old_status,
			  updated_at = excluded.updated_at`},
		{"GetContext", &st.getContext, `SELECT ` + contextColumns + ` FROM hw_contexts WHERE id = ?`},
		{"ListContexts", &st.listContexts, `SELECT ` + contextColumns + ` FROM hw_contexts ORDER BY id`},
		{"ListClientContexts", &st.listClientContext, `SELECT ` + contextColumns + ` FROM hw_contexts WHERE client = ? ORDER BY id`},
		{"DeleteContext", &st.deleteContext, `DELETE FROM hw_contexts WHERE id = ?`},
		{"SaveJob", &st.saveJob, `
			INSERT INTO jobs (context_id, seq, opcode, cu_index, state, submitted_at, finished_at)
			VALUES (?, ?, ?, ?, ?, ?, ?)
			ON CONFLICT(context_id, seq) DO UPDATE SET
			  state = excluded.state,
			  finished_at = excluded.finished_at`},
		{"ListJobs", &st.listJobs, `
			SELECT context_id, seq, opcode, cu_index, state, submitted_at, finished_at
			FROM jobs WHERE context_id = ? ORDER BY seq`},
	}
	for _, q := range queries {
		stmt, err := db.PrepareContext(ctx, q.sql)
		if err != nil {
			return fmt.Errorf("prepare %s: %w", q.name, err)
		}
		*q.dst = stmt
	}
	return nil
}

// bind returns transaction-bound handles of the master statements.
func (st *statements) bind(ctx context.Context, tx *sql.Tx) statements {
	return statements{
		saveContext:       tx.StmtContext(ctx, st.saveContext),
		getContext:        tx.StmtContext(ctx, st.getContext),
		listContexts:      tx.StmtContext(ctx, st.listContexts),
		listClientContext: tx.StmtContext(ctx, st.listClientContext),
		deleteContext:     tx.StmtContext(ctx, st.deleteContext),
		saveJob:           tx.StmtContext(ctx, st.saveJob),
		listJobs:          tx.StmtContext(ctx, st.listJobs),
	}
}

func (st *statements) close() {
	for _, stmt := range []*sql.Stmt{
		st.saveContext, st.getContext, st.listContexts, st.listClientContext,
		st.deleteContext, st.saveJob, st.listJobs,
	} {
		if stmt != nil {
			stmt.Close()
		}
	}
}
