package orderrepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"tailor/internal/core/domain/model/kernel"
	"tailor/internal/core/domain/model/order"
	"tailor/internal/pkg/errs"
)

// ReferenceSequence backs generated order references.
const ReferenceSequence = "tailor_order_seq"

const referenceFormat = "TO/%05d"

// GormOrderRepository implements OrderRepository using GORM.
type GormOrderRepository struct {
	db *gorm.DB
}

// NewGormOrderRepository creates a new GORM order repository.
func NewGormOrderRepository(db *gorm.DB) *GormOrderRepository {
	return &GormOrderRepository{db: db}
}

// Add saves a new order together with its pending audit entries.
func (r *GormOrderRepository) Add(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	if err := r.insertEntries(ctx, aggregate.ID(), aggregate.PendingEntries()); err != nil {
		return err
	}

	return nil
}

// Update saves an existing order and appends its pending audit entries.
func (r *GormOrderRepository) Update(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).
		Model(&OrderDTO{}).
		Where("id = ?", dto.ID).
		Select("*").
		Omit("id", "created_at").
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("order", aggregate.ID().String())
	}

	if err := r.insertEntries(ctx, aggregate.ID(), aggregate.PendingEntries()); err != nil {
		return err
	}

	return nil
}

// AppendEntries stores the pending audit entries without touching the order row.
func (r *GormOrderRepository) AppendEntries(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	return r.insertEntries(ctx, aggregate.ID(), aggregate.PendingEntries())
}

// Get retrieves an order by ID.
func (r *GormOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto OrderDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("order", id.String())
		}
		return nil, err
	}

	return r.load(ctx, dto)
}

// GetByReference retrieves an order by its reference.
func (r *GormOrderRepository) GetByReference(ctx context.Context, reference string) (*order.Order, error) {
	var dto OrderDTO
	if err := r.db.WithContext(ctx).First(&dto, "reference = ?", reference).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("order", reference)
		}
		return nil, err
	}

	return r.load(ctx, dto)
}

// NextReference draws the next order reference from the database sequence.
func (r *GormOrderRepository) NextReference(ctx context.Context) (string, error) {
	var n int64
	if err := r.db.WithContext(ctx).Raw("SELECT nextval(?::regclass)", ReferenceSequence).Scan(&n).Error; err != nil {
		return "", err
	}

	return fmt.Sprintf(referenceFormat, n), nil
}

// GetDueForDelivery returns orders with a delivery date in [from, to) and one
// of the given statuses.
func (r *GormOrderRepository) GetDueForDelivery(
	ctx context.Context,
	from, to time.Time,
	statuses []order.Status,
) ([]*order.Order, error) {
	if len(statuses) == 0 {
		return []*order.Order{}, nil
	}

	names := make([]string, 0, len(statuses))
	for _, s := range statuses {
		names = append(names, s.String())
	}

	var dtos []OrderDTO
	if err := r.db.WithContext(ctx).
		Where("delivery_date >= ? AND delivery_date < ?", from, to).
		Where("status IN ?", names).
		Order("delivery_date, reference").
		Find(&dtos).Error; err != nil {
		return nil, err
	}

	orders := make([]*order.Order, 0, len(dtos))
	for _, dto := range dtos {
		o, err := r.load(ctx, dto)
		if err != nil {
			return nil, err
		}
		orders = append(orders, o)
	}

	return orders, nil
}

func (r *GormOrderRepository) load(ctx context.Context, dto OrderDTO) (*order.Order, error) {
	var entries []AuditEntryDTO
	if err := r.db.WithContext(ctx).
		Where("order_id = ?", dto.ID).
		Order("created_at, id").
		Find(&entries).Error; err != nil {
		return nil, err
	}

	return toDomain(dto, entries)
}

func (r *GormOrderRepository) insertEntries(ctx context.Context, id kernel.UUID, entries []order.AuditEntry) error {
	if len(entries) == 0 {
		return nil
	}

	dtos := entriesFromDomain(id, entries)
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{DoNothing: true}).Create(&dtos).Error
}
