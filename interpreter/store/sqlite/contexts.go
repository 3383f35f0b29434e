package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/frobware/go-xdna"
	"github.com/frobware/go-xdna/interpreter/store"
)

// SaveContext inserts or updates a context. The client and column
// range are fixed at creation.
func (s *sqliteStore) SaveContext(ctx context.Context, hw xdna.HWContext) error {
	qos, err := json.Marshal(hw.QoS)
	if err != nil {
		return fmt.Errorf("marshal qos: %w", err)
	}
	cus, err := json.Marshal(hw.CUs)
	if err != nil {
		return fmt.Errorf("marshal cus: %w", err)
	}
	if hw.CUs == nil {
		cus = []byte("[]")
	}
	start := time.Now()
	_, err = s.stmts.saveContext.ExecContext(ctx,
		hw.ID, string(hw.Client), hw.Name, hw.FWContextID, hw.StartCol, hw.NumCol,
		hw.NumTiles, hw.MemSize, hw.MaxOpc, string(qos), string(cus),
		hw.Status, hw.OldStatus, hw.CreatedAt.UTC().Format(time.RFC3339Nano),
		time.Now().UTC().Format(time.RFC3339Nano))
	s.logSQL("SaveContext", start, err, hw.ID)
	if err != nil {
		return fmt.Errorf("save context %d: %w", hw.ID, err)
	}
	return nil
}

// GetContext returns the context with id, or store.ErrNotFound.
func (s *sqliteStore) GetContext(ctx context.Context, id xdna.ContextID) (xdna.HWContext, error) {
	start := time.Now()
	hw, err := scanContext(s.stmts.getContext.QueryRowContext(ctx, id))
	s.logSQL("GetContext", start, err, id)
	if errors.Is(err, sql.ErrNoRows) {
		return xdna.HWContext{}, fmt.Errorf("context %d: %w", id, store.ErrNotFound)
	}
	return hw, err
}

// ListContexts returns the contexts of client, or every context when
// client is empty, in id order.
func (s *sqliteStore) ListContexts(ctx context.Context, client xdna.ClientID) ([]xdna.HWContext, error) {
	start := time.Now()
	var rows *sql.Rows
	var err error
	if client == "" {
		rows, err = s.stmts.listContexts.QueryContext(ctx)
	} else {
		rows, err = s.stmts.listClientContext.QueryContext(ctx, string(client))
	}
	if err != nil {
		s.logSQL("ListContexts", start, err, client)
		return nil, err
	}
	defer rows.Close()

	var out []xdna.HWContext
	for rows.Next() {
		hw, err := scanContext(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, hw)
	}
	err = rows.Err()
	s.logSQL("ListContexts", start, err, client)
	return out, err
}

// DeleteContext removes the context; its job history cascades.
func (s *sqliteStore) DeleteContext(ctx context.Context, id xdna.ContextID) error {
	start := time.Now()
	_, err := s.stmts.deleteContext.ExecContext(ctx, id)
	s.logSQL("DeleteContext", start, err, id)
	if err != nil {
		return fmt.Errorf("delete context %d: %w", id, err)
	}
	return nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanContext(row scanner) (xdna.HWContext, error) {
	var (
		hw         xdna.HWContext
		client     string
		qos, cus   string
		createdStr string
	)
	err := row.Scan(&hw.ID, &client, &hw.Name, &hw.FWContextID, &hw.StartCol, &hw.NumCol,
		&hw.NumTiles, &hw.MemSize, &hw.MaxOpc, &qos, &cus, &hw.Status, &hw.OldStatus, &createdStr)
	if err != nil {
		return xdna.HWContext{}, err
	}
	hw.Client = xdna.ClientID(client)
	if err := json.Unmarshal([]byte(qos), &hw.QoS); err != nil {
		return xdna.HWContext{}, fmt.Errorf("context %d: decode qos: %w", hw.ID, err)
	}
	if err := json.Unmarshal([]byte(cus), &hw.CUs); err != nil {
		return xdna.HWContext{}, fmt.Errorf("context %d: decode cus: %w", hw.ID, err)
	}
	if len(hw.CUs) == 0 {
		hw.CUs = nil
	}
	if hw.CreatedAt, err = time.Parse(time.RFC3339Nano, createdStr); err != nil {
		return xdna.HWContext{}, fmt.Errorf("context %d: parse created_at: %w", hw.ID, err)
	}
	return hw, nil
}
