// Package redisstore persists ledger snapshots in Redis, one JSON document
// per collection keyed by collection name. All six keys are written in a
// single pipeline so a snapshot is replaced atomically enough for a
// best-effort collaborator.
package redisstore

import (
	"context"
	"encoding/json"

	"github.com/redis/go-redis/v9"

	"github.com/Gualguanosky/afterwod/internal/ledger"
	"github.com/Gualguanosky/afterwod/internal/store"
)

const (
	claveProductos = "afterwod:productos"
	claveClientes  = "afterwod:clientes"
	claveVinculos  = "afterwod:vinculos"
	claveVentas    = "afterwod:ventas"
	claveCompras   = "afterwod:compras"
	clavePagos     = "afterwod:pagos"
)

type Store struct {
	rdb *redis.Client
}

// New creates and validates a go-redis client connection.
func New(redisURL string) (*Store, error) {
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, err
	}
	rdb := redis.NewClient(opts)
	if err := rdb.Ping(context.Background()).Err(); err != nil {
		return nil, err
	}
	return &Store{rdb: rdb}, nil
}

func (s *Store) Load(ctx context.Context) (*ledger.State, error) {
	existe, err := s.rdb.Exists(ctx, claveProductos, claveClientes).Result()
	if err != nil {
		return nil, err
	}
	if existe == 0 {
		return nil, store.ErrSinEstado
	}

	var st ledger.State
	colecciones := []struct {
		clave   string
		destino interface{}
	}{
		{claveProductos, &st.Productos},
		{claveClientes, &st.Clientes},
		{claveVinculos, &st.Vinculos},
		{claveVentas, &st.Ventas},
		{claveCompras, &st.Compras},
		{clavePagos, &st.Pagos},
	}
	for _, col := range colecciones {
		raw, err := s.rdb.Get(ctx, col.clave).Bytes()
		if err == redis.Nil {
			continue
		}
		if err != nil {
			return nil, err
		}
		if err := json.Unmarshal(raw, col.destino); err != nil {
			return nil, err
		}
	}
	return &st, nil
}

func (s *Store) Save(ctx context.Context, st ledger.State) error {
	colecciones := []struct {
		clave string
		valor interface{}
	}{
		{claveProductos, st.Productos},
		{claveClientes, st.Clientes},
		{claveVinculos, st.Vinculos},
		{claveVentas, st.Ventas},
		{claveCompras, st.Compras},
		{clavePagos, st.Pagos},
	}
	pipe := s.rdb.TxPipeline()
	for _, col := range colecciones {
		raw, err := json.Marshal(col.valor)
		if err != nil {
			return err
		}
		pipe.Set(ctx, col.clave, raw, 0)
	}
	_, err := pipe.Exec(ctx)
	return err
}
