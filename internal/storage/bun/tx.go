package bunrepo

import (
	"context"

	"github.com/uptrace/bun"
)

type txKey struct{}

// ContextWithTx makes repositories run their queries on tx for the lifetime
// of ctx.
func ContextWithTx(ctx context.Context, tx bun.IDB) context.Context {
	if tx == nil {
		return ctx
	}
	return context.WithValue(ctx, txKey{}, tx)
}

// TxFromContext returns the transaction stored in ctx, if any.
func TxFromContext(ctx context.Context) (bun.IDB, bool) {
	if ctx == nil {
		return nil, false
	}
	tx, ok := ctx.Value(txKey{}).(bun.IDB)
	return tx, ok && tx != nil
}

func conn(ctx context.Context, db *bun.DB) bun.IDB {
	if tx, ok := TxFromContext(ctx); ok {
		return tx
	}
	return db
}
