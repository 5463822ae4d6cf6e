// Package service wraps the ledger engine for the HTTP layer: it coerces the
// UI's free-text numeric input, applies defaults, and triggers best-effort
// snapshot persistence after every successful mutation. Persistence failures
// are logged and swallowed; the in-memory ledger is the source of truth and
// must never be corrupted or rolled back because storage was unavailable.
package service

import (
	"context"

	"github.com/rs/zerolog/log"

	"github.com/Gualguanosky/afterwod/internal/ledger"
	"github.com/Gualguanosky/afterwod/internal/store"
)

// metodoPorDefecto is the payment method assumed when the UI sends none.
const metodoPorDefecto = "Efectivo"

type base struct {
	led *ledger.Ledger
	st  store.Store
}

// persistir snapshots the ledger into the store. Best-effort by contract.
func (b *base) persistir(ctx context.Context) {
	if b.st == nil {
		return
	}
	if err := b.st.Save(ctx, b.led.Snapshot()); err != nil {
		log.Warn().Err(err).Msg("no se pudo guardar el snapshot del ledger")
	}
}
