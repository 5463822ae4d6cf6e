// Package gormstore persists ledger snapshots in an embedded sqlite file via
// GORM. Save replaces the whole contents inside one transaction: a snapshot
// is small (single-location shop) and replace-all keeps the store trivially
// consistent with the in-memory source of truth.
package gormstore

import (
	"context"
	"errors"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/Gualguanosky/afterwod/internal/ledger"
	"github.com/Gualguanosky/afterwod/internal/model"
	"github.com/Gualguanosky/afterwod/internal/store"
)

type Store struct {
	db *gorm.DB
}

// New opens (or creates) the sqlite file and migrates the six tables.
func New(path string) (*Store, error) {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, err
	}
	if err := db.AutoMigrate(
		&model.Producto{},
		&model.Cliente{},
		&model.VinculoReceta{},
		&model.Venta{},
		&model.Compra{},
		&model.Pago{},
	); err != nil {
		return nil, err
	}
	return &Store{db: db}, nil
}

func (s *Store) Load(ctx context.Context) (*ledger.State, error) {
	var st ledger.State
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// Emptiness is decided across all six tables: an empty catalog with
		// surviving history rows is still saved state and must never be
		// reseeded (the seed Save would erase the append-only logs).
		var total int64
		for _, m := range []interface{}{
			&model.Producto{}, &model.Cliente{}, &model.VinculoReceta{},
			&model.Venta{}, &model.Compra{}, &model.Pago{},
		} {
			var n int64
			if err := tx.Model(m).Count(&n).Error; err != nil {
				return err
			}
			total += n
		}
		if total == 0 {
			return store.ErrSinEstado
		}
		if err := tx.Order("created_at").Find(&st.Productos).Error; err != nil {
			return err
		}
		if err := tx.Order("created_at").Find(&st.Clientes).Error; err != nil {
			return err
		}
		if err := tx.Find(&st.Vinculos).Error; err != nil {
			return err
		}
		if err := tx.Order("fecha").Find(&st.Ventas).Error; err != nil {
			return err
		}
		if err := tx.Order("fecha").Find(&st.Compras).Error; err != nil {
			return err
		}
		return tx.Order("fecha").Find(&st.Pagos).Error
	})
	if err != nil {
		if errors.Is(err, store.ErrSinEstado) {
			return nil, store.ErrSinEstado
		}
		return nil, err
	}
	return &st, nil
}

func (s *Store) Save(ctx context.Context, st ledger.State) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, m := range []interface{}{
			&model.Pago{}, &model.Compra{}, &model.Venta{},
			&model.VinculoReceta{}, &model.Cliente{}, &model.Producto{},
		} {
			if err := tx.Where("1 = 1").Delete(m).Error; err != nil {
				return err
			}
		}
		if len(st.Productos) > 0 {
			if err := tx.Create(&st.Productos).Error; err != nil {
				return err
			}
		}
		if len(st.Clientes) > 0 {
			if err := tx.Create(&st.Clientes).Error; err != nil {
				return err
			}
		}
		if len(st.Vinculos) > 0 {
			if err := tx.Create(&st.Vinculos).Error; err != nil {
				return err
			}
		}
		if len(st.Ventas) > 0 {
			if err := tx.Create(&st.Ventas).Error; err != nil {
				return err
			}
		}
		if len(st.Compras) > 0 {
			if err := tx.Create(&st.Compras).Error; err != nil {
				return err
			}
		}
		if len(st.Pagos) > 0 {
			if err := tx.Create(&st.Pagos).Error; err != nil {
				return err
			}
		}
		return nil
	})
}
