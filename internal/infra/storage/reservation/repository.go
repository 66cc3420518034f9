package reservation

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/sokol-matija/hotel-inventory-sub003/internal/domain"
	"github.com/sokol-matija/hotel-inventory-sub003/pkg/dbmetrics"
	"github.com/sokol-matija/hotel-inventory-sub003/pkg/psqlbuilder"
)

const table = "reservations"

var columns = []string{
	"id",
	"room_id",
	"guest_id",
	"guest_name",
	"check_in",
	"check_out",
	"status",
	"adults",
	"children",
	"has_pets",
	"needs_parking",
	"additional_charges",
	"total_amount",
	"vat_amount",
	"notes",
	"created_at",
	"updated_at",
}

// Repository репозиторий для работы с бронированиями
type Repository struct {
	db  DBExecutor
	loc *time.Location
}

// NewRepository создает новый экземпляр репозитория бронирований.
// Прочитанные моменты переводятся в часовой пояс отеля loc.
func NewRepository(db DBExecutor, loc *time.Location) *Repository {
	if loc == nil {
		loc = time.UTC
	}
	return &Repository{db: db, loc: loc}
}

// Create создает новое бронирование и возвращает его с присвоенным ID
// Если в контексте передана активная транзакция, использует её
func (r *Repository) Create(ctx context.Context, res *domain.Reservation) (*domain.Reservation, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	children, err := encodeChildren(res.Children)
	if err != nil {
		return nil, fmt.Errorf("%w: Create: %v", ErrEncode, err)
	}

	query, args, err := psqlbuilder.Insert(table).
		Columns(
			"room_id",
			"guest_id",
			"guest_name",
			"check_in",
			"check_out",
			"status",
			"adults",
			"children",
			"has_pets",
			"needs_parking",
			"additional_charges",
			"total_amount",
			"vat_amount",
			"notes",
		).
		Values(
			res.RoomID,
			res.GuestID,
			res.GuestName,
			res.CheckIn,
			res.CheckOut,
			res.Status,
			res.Adults,
			children,
			res.HasPets,
			res.NeedsParking,
			res.AdditionalCharges,
			res.TotalAmount,
			res.VATAmount,
			res.Notes,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	created := res.Clone()
	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&created.ID, &createdAt, &updatedAt)
	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	created.CheckIn = created.CheckIn.In(r.loc)
	created.CheckOut = created.CheckOut.In(r.loc)
	created.CreatedAt = createdAt.Time.In(r.loc)
	created.UpdatedAt = updatedAt.Time.In(r.loc)
	return created, nil
}

// GetByID получает бронирование по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Reservation, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(columns...).
		From(table).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	res, err := scanReservation(executor.QueryRowContext(ctx, query, args...), r.loc)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrReservationNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan reservation: %v", ErrScanRow, err)
	}
	return res, nil
}

// ListInRange получает бронирования, пересекающие период [From, To)
func (r *Repository) ListInRange(ctx context.Context, filter domain.ReservationsFilter) ([]*domain.Reservation, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := buildListQuery(filter)
	if err != nil {
		return nil, fmt.Errorf("%w: ListInRange - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListInRange - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	var result []*domain.Reservation
	for rows.Next() {
		res, err := scanReservation(rows, r.loc)
		if err != nil {
			return nil, fmt.Errorf("%w: ListInRange - scan reservation: %v", ErrScanRow, err)
		}
		result = append(result, res)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListInRange - rows error: %v", ErrScanRow, err)
	}
	return result, nil
}

// Update применяет частичное изменение
func (r *Repository) Update(ctx context.Context, id int64, patch domain.ReservationPatch) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := buildUpdateQuery(id, patch)
	if err != nil {
		return err
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Update - execute update: %v", ErrExecQuery, err)
	}
	return checkAffected(result, "Update")
}

// Delete удаляет бронирование
func (r *Repository) Delete(ctx context.Context, id int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete(table).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: Delete - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Delete - execute delete: %v", ErrExecQuery, err)
	}
	return checkAffected(result, "Delete")
}

func buildListQuery(filter domain.ReservationsFilter) (string, []interface{}, error) {
	builder := psqlbuilder.Select(columns...).
		From(table).
		Where(squirrel.Gt{"check_out": filter.From}).
		Where(squirrel.Lt{"check_in": filter.To}).
		OrderBy("room_id ASC", "check_in ASC")

	if filter.RoomID != nil {
		builder = builder.Where(squirrel.Eq{"room_id": *filter.RoomID})
	}
	if filter.Status != nil {
		builder = builder.Where(squirrel.Eq{"status": *filter.Status})
	}
	return builder.ToSql()
}

func buildUpdateQuery(id int64, patch domain.ReservationPatch) (string, []interface{}, error) {
	if patch.IsEmpty() {
		return "", nil, ErrEmptyPatch
	}

	builder := psqlbuilder.Update(table).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id})

	if patch.RoomID != nil {
		builder = builder.Set("room_id", *patch.RoomID)
	}
	if patch.CheckIn != nil {
		builder = builder.Set("check_in", *patch.CheckIn)
	}
	if patch.CheckOut != nil {
		builder = builder.Set("check_out", *patch.CheckOut)
	}
	if patch.Status != nil {
		builder = builder.Set("status", *patch.Status)
	}
	if patch.Adults != nil {
		builder = builder.Set("adults", *patch.Adults)
	}
	if patch.HasPets != nil {
		builder = builder.Set("has_pets", *patch.HasPets)
	}
	if patch.NeedsParking != nil {
		builder = builder.Set("needs_parking", *patch.NeedsParking)
	}
	if patch.AdditionalCharges != nil {
		builder = builder.Set("additional_charges", *patch.AdditionalCharges)
	}
	if patch.TotalAmount != nil {
		builder = builder.Set("total_amount", *patch.TotalAmount)
	}
	if patch.VATAmount != nil {
		builder = builder.Set("vat_amount", *patch.VATAmount)
	}
	if patch.Notes != nil {
		builder = builder.Set("notes", *patch.Notes)
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: Update - build update query: %v", ErrBuildQuery, err)
	}
	return query, args, nil
}

func checkAffected(result sql.Result, op string) error {
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %s - rows affected: %v", ErrExecQuery, op, err)
	}
	if affected == 0 {
		return ErrReservationNotFound
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

// scanReservation читает строку; check_in и check_out приходят в поясе сессии Postgres,
// а полудни считаются по календарю отеля
func scanReservation(row rowScanner, loc *time.Location) (*domain.Reservation, error) {
	var (
		res                  domain.Reservation
		guestID              sql.NullInt64
		notes                sql.NullString
		children             []byte
		createdAt, updatedAt sql.NullTime
	)

	err := row.Scan(
		&res.ID,
		&res.RoomID,
		&guestID,
		&res.GuestName,
		&res.CheckIn,
		&res.CheckOut,
		&res.Status,
		&res.Adults,
		&children,
		&res.HasPets,
		&res.NeedsParking,
		&res.AdditionalCharges,
		&res.TotalAmount,
		&res.VATAmount,
		&notes,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	if guestID.Valid {
		id := guestID.Int64
		res.GuestID = &id
	}
	if notes.Valid {
		n := notes.String
		res.Notes = &n
	}
	res.Children, err = decodeChildren(children)
	if err != nil {
		return nil, fmt.Errorf("decode children: %v", err)
	}
	res.CheckIn = res.CheckIn.In(loc)
	res.CheckOut = res.CheckOut.In(loc)
	res.CreatedAt = createdAt.Time.In(loc)
	res.UpdatedAt = updatedAt.Time.In(loc)
	return &res, nil
}
