package storage

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
)

// StateKey is the namespaced key holding the serialized state blob.
const StateKey = "vitacoach-storage"

// StateRepo persists the state blob through the kv table.
type StateRepo struct {
	db       *sql.DB
	defaults func() *State
}

// NewStateRepo returns a repo that hands out defaults() when nothing has been
// stored yet.
func NewStateRepo(db *sql.DB, defaults func() *State) *StateRepo {
	return &StateRepo{db: db, defaults: defaults}
}

// Load returns the stored blob, or a fresh default one on first load.
func (r *StateRepo) Load(ctx context.Context) (*State, error) {
	return r.load(ctx, r.db)
}

func (r *StateRepo) load(ctx context.Context, db DBTX) (*State, error) {
	raw, ok, err := NewKVRepo(db).Get(ctx, StateKey)
	if err != nil {
		return nil, err
	}
	if !ok {
		return r.defaults(), nil
	}
	var st State
	if err := json.Unmarshal([]byte(raw), &st); err != nil {
		return nil, fmt.Errorf("decode state: %w", err)
	}
	return &st, nil
}

// Save writes st verbatim.
func (r *StateRepo) Save(ctx context.Context, st *State) error {
	return r.save(ctx, r.db, st)
}

func (r *StateRepo) save(ctx context.Context, db DBTX, st *State) error {
	data, err := json.Marshal(st)
	if err != nil {
		return fmt.Errorf("encode state: %w", err)
	}
	return NewKVRepo(db).Set(ctx, StateKey, string(data))
}

// Update loads the blob, applies fn and persists the result in one
// transaction. If fn fails nothing is written.
func (r *StateRepo) Update(ctx context.Context, fn func(st *State) error) (*State, error) {
	return r.UpdateTx(ctx, func(_ DBTX, st *State) error { return fn(st) })
}

// UpdateTx is Update with the transaction handed to fn, so related rows
// commit or roll back together with the blob.
func (r *StateRepo) UpdateTx(ctx context.Context, fn func(tx DBTX, st *State) error) (*State, error) {
	var out *State
	err := WithTx(ctx, r.db, func(tx *sql.Tx) error {
		st, err := r.load(ctx, tx)
		if err != nil {
			return err
		}
		if err := fn(tx, st); err != nil {
			return err
		}
		if err := r.save(ctx, tx, st); err != nil {
			return err
		}
		out = st
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// Reset removes the blob and the XP ledger; the next Load yields defaults.
func (r *StateRepo) Reset(ctx context.Context) error {
	return WithTx(ctx, r.db, func(tx *sql.Tx) error {
		if err := NewXPEventRepo(tx).DeleteAll(ctx); err != nil {
			return err
		}
		return NewKVRepo(tx).Delete(ctx, StateKey)
	})
}
