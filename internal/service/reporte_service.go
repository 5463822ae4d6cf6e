package service

import (
	"context"

	"github.com/Gualguanosky/afterwod/internal/ledger"
	"github.com/Gualguanosky/afterwod/internal/store"
)

// ReporteService exposes the pure read-side aggregations.
type ReporteService interface {
	Resumen(ctx context.Context) ledger.Resumen
	HistorialCombinado(ctx context.Context) []ledger.Entrada
}

type reporteService struct{ base }

func NewReporteService(led *ledger.Ledger, st store.Store) ReporteService {
	return &reporteService{base{led: led, st: st}}
}

func (s *reporteService) Resumen(_ context.Context) ledger.Resumen {
	return s.led.ResumenFinanciero()
}

// HistorialCombinado collects the engine's lazy sequence for the JSON
// response; the sequence itself stays available to in-process callers that
// want to stop early.
func (s *reporteService) HistorialCombinado(_ context.Context) []ledger.Entrada {
	var out []ledger.Entrada
	for e := range s.led.HistorialCombinado() {
		out = append(out, e)
	}
	if out == nil {
		out = []ledger.Entrada{}
	}
	return out
}
