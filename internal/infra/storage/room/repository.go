package room

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/sokol-matija/hotel-inventory-sub003/internal/domain"
	"github.com/sokol-matija/hotel-inventory-sub003/pkg/dbmetrics"
	"github.com/sokol-matija/hotel-inventory-sub003/pkg/psqlbuilder"
)

// Переиспользуем интерфейс из dbmetrics для работы с БД
type DBExecutor = dbmetrics.DBExecutor

var columns = []string{
	"id",
	"number",
	"room_type",
	"floor",
	"max_occupancy",
	"premium",
	"rate_a",
	"rate_b",
	"rate_c",
	"rate_d",
	"min_stay_nights",
	"fixed_stay_rate",
	"buffer_days",
	"included_services",
	"created_at",
	"updated_at",
}

// Repository репозиторий каталога номеров (таблица rooms)
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория номеров
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// ListRooms получает весь каталог номеров
func (r *Repository) ListRooms(ctx context.Context) ([]*domain.Room, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(columns...).
		From("rooms").
		OrderBy("number ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListRooms - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListRooms - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	var rooms []*domain.Room
	for rows.Next() {
		room, err := scanRoom(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: ListRooms - scan room: %v", ErrScanRow, err)
		}
		rooms = append(rooms, room)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListRooms - rows error: %v", ErrScanRow, err)
	}
	return rooms, nil
}

// GetByID получает номер по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Room, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(columns...).
		From("rooms").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	room, err := scanRoom(executor.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrRoomNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan room: %v", ErrScanRow, err)
	}
	return room, nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

// roomRow колонки таблицы rooms до преобразования в доменную модель
type roomRow struct {
	id                   int64
	number               string
	roomType             string
	floor                int
	maxOccupancy         int
	premium              bool
	rateA, rateB         sql.NullFloat64
	rateC, rateD         sql.NullFloat64
	minStayNights        sql.NullInt64
	fixedStayRate        sql.NullFloat64
	bufferDays           int
	includedServices     []string
	createdAt, updatedAt sql.NullTime
}

func scanRoom(row rowScanner) (*domain.Room, error) {
	var r roomRow
	err := row.Scan(
		&r.id,
		&r.number,
		&r.roomType,
		&r.floor,
		&r.maxOccupancy,
		&r.premium,
		&r.rateA,
		&r.rateB,
		&r.rateC,
		&r.rateD,
		&r.minStayNights,
		&r.fixedStayRate,
		&r.bufferDays,
		pq.Array(&r.includedServices),
		&r.createdAt,
		&r.updatedAt,
	)
	if err != nil {
		return nil, err
	}
	return r.toDomain(), nil
}

func (r roomRow) toDomain() *domain.Room {
	room := &domain.Room{
		ID:           r.id,
		Number:       r.number,
		Type:         domain.RoomType(r.roomType),
		Floor:        r.floor,
		MaxOccupancy: r.maxOccupancy,
		Premium:      r.premium,
		Rates:        domain.SeasonalRates{},
		CreatedAt:    r.createdAt.Time,
		UpdatedAt:    r.updatedAt.Time,
	}
	for period, rate := range map[domain.SeasonalPeriod]sql.NullFloat64{
		domain.PeriodA: r.rateA,
		domain.PeriodB: r.rateB,
		domain.PeriodC: r.rateC,
		domain.PeriodD: r.rateD,
	} {
		if rate.Valid {
			room.Rates[period] = rate.Float64
		}
	}

	if r.minStayNights.Valid || r.fixedStayRate.Valid || r.bufferDays > 0 || len(r.includedServices) > 0 {
		rules := &domain.RoomRules{
			MinStayNights: int(r.minStayNights.Int64),
			BufferDays:    r.bufferDays,
		}
		if r.fixedStayRate.Valid {
			rate := r.fixedStayRate.Float64
			rules.FixedStayRate = &rate
		}
		for _, s := range r.includedServices {
			rules.IncludedServices = append(rules.IncludedServices, domain.Service(s))
		}
		room.Rules = rules
	}
	return room
}
