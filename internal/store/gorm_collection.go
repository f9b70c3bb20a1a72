package store

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/salon-scheduler/internal/models"
)

// gormCollection stores one model per table row.
type gormCollection[T any, PT interface {
	*T
	models.Identified
}, P Patch[T]] struct {
	db    *gorm.DB
	table string
}

func newGormCollection[T any, PT interface {
	*T
	models.Identified
}, P Patch[T]](db *gorm.DB, table string) *gormCollection[T, PT, P] {
	return &gormCollection[T, PT, P]{db: db, table: table}
}

func (c *gormCollection[T, PT, P]) List(ctx context.Context) ([]T, error) {
	recs := []T{}
	if err := c.db.WithContext(ctx).
		Order("created_at ASC").
		Find(&recs).Error; err != nil {
		return nil, translate("list "+c.table, err)
	}
	return recs, nil
}

func (c *gormCollection[T, PT, P]) Get(ctx context.Context, id string) (T, error) {
	var rec T
	if err := c.db.WithContext(ctx).
		Where("id = ?", id).
		First(&rec).Error; err != nil {
		var zero T
		return zero, translate("get "+c.table, err)
	}
	return rec, nil
}

func (c *gormCollection[T, PT, P]) Create(ctx context.Context, rec T) (T, error) {
	stamp[T, PT](&rec)

	if err := c.db.WithContext(ctx).Create(&rec).Error; err != nil {
		var zero T
		return zero, translate("create "+c.table, err)
	}
	return rec, nil
}

func (c *gormCollection[T, PT, P]) Update(ctx context.Context, id string, patch P) (T, error) {
	var zero T

	rec, err := c.Get(ctx, id)
	if err != nil {
		return zero, err
	}

	patch.Apply(&rec)

	if err := c.db.WithContext(ctx).Save(&rec).Error; err != nil {
		return zero, translate("update "+c.table, err)
	}
	return rec, nil
}

func (c *gormCollection[T, PT, P]) Delete(ctx context.Context, id string) error {
	res := c.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(new(T))
	if res.Error != nil {
		return translate("delete "+c.table, res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// translate maps driver errors onto the store taxonomy.
func translate(op string, err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return &TransportError{Op: op + " [" + pgErr.Code + "]", Err: err}
	}
	return &TransportError{Op: op, Err: err}
}

func NewGorm(db *gorm.DB) *Store {
	return &Store{
		Clients:      newGormCollection[models.Client, *models.Client, models.ClientPatch](db, "clients"),
		Services:     newGormCollection[models.Service, *models.Service, models.ServicePatch](db, "services"),
		Products:     newGormCollection[models.Product, *models.Product, models.ProductPatch](db, "products"),
		Appointments: newGormCollection[models.Appointment, *models.Appointment, models.AppointmentPatch](db, "appointments"),
	}
}
