package booking

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-HotelService/internal/domain"
	"github.com/m04kA/SMC-HotelService/pkg/dbmetrics"
	"github.com/m04kA/SMC-HotelService/pkg/psqlbuilder"
)

var bookingColumns = []string{
	"reference",
	"guest_id",
	"first_name",
	"last_name",
	"date_of_birth",
	"room_type",
	"room_number",
	"number_of_guests",
	"check_in",
	"check_out",
	"paid",
	"cancelled",
	"checked_in",
	"checked_out",
	"created_at",
}

// Repository репозиторий для работы с бронированиями
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория бронирований
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create сохраняет новое бронирование.
// Если в контексте передана активная транзакция (через context.Value), использует её.
func (r *Repository) Create(ctx context.Context, b *domain.Booking) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("bookings").
		Columns(bookingColumns...).
		Values(
			b.Reference,
			b.GuestID,
			b.FirstName,
			b.LastName,
			b.DateOfBirth,
			b.RoomType,
			b.RoomNumber,
			b.NumberOfGuests,
			b.CheckIn,
			b.CheckOut,
			b.Paid,
			b.Cancelled,
			b.CheckedIn,
			b.CheckedOut,
			b.CreatedAt,
		).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	return nil
}

// GetByReference получает бронирование по его референсу
func (r *Repository) GetByReference(ctx context.Context, reference string) (*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(bookingColumns...).
		From("bookings").
		Where(squirrel.Eq{"reference": reference}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByReference - build select query: %v", ErrBuildQuery, err)
	}

	var b domain.Booking
	var createdAt sql.NullTime

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&b.Reference,
		&b.GuestID,
		&b.FirstName,
		&b.LastName,
		&b.DateOfBirth,
		&b.RoomType,
		&b.RoomNumber,
		&b.NumberOfGuests,
		&b.CheckIn,
		&b.CheckOut,
		&b.Paid,
		&b.Cancelled,
		&b.CheckedIn,
		&b.CheckedOut,
		&createdAt,
	)

	if err == sql.ErrNoRows {
		return nil, ErrBookingNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByReference - scan booking: %v", ErrScanRow, err)
	}

	b.CreatedAt = createdAt.Time

	return &b, nil
}

// ListForRoom получает неотмененные бронирования комнаты.
// Внутри транзакции добавляет FOR UPDATE для блокировки строк
// (используется usecase создания бронирования).
func (r *Repository) ListForRoom(ctx context.Context, roomNumber string) ([]*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(bookingColumns...).
		From("bookings").
		Where(squirrel.Eq{"room_number": roomNumber, "cancelled": false}).
		OrderBy("check_in ASC")

	if dbmetrics.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListForRoom - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListForRoom - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanBookings(rows)
}

// ListForGuest получает все бронирования гостя, включая отмененные
func (r *Repository) ListForGuest(ctx context.Context, guestID string) ([]*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(bookingColumns...).
		From("bookings").
		Where(squirrel.Eq{"guest_id": guestID}).
		OrderBy("check_in DESC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListForGuest - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListForGuest - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanBookings(rows)
}

// ListBetween получает бронирования, пересекающие полуоткрытый интервал [start, end).
// Пересечение на уровне SQL: check_in < end AND check_out > start —
// та же семантика, что у domain.Booking.Overlaps.
func (r *Repository) ListBetween(ctx context.Context, start, end time.Time) ([]*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(bookingColumns...).
		From("bookings").
		Where(squirrel.Lt{"check_in": end}).
		Where(squirrel.Gt{"check_out": start}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListBetween - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListBetween - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanBookings(rows)
}

// Update полностью перезаписывает все поля бронирования (last writer wins)
func (r *Repository) Update(ctx context.Context, b *domain.Booking) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("bookings").
		Set("guest_id", b.GuestID).
		Set("first_name", b.FirstName).
		Set("last_name", b.LastName).
		Set("date_of_birth", b.DateOfBirth).
		Set("room_type", b.RoomType).
		Set("room_number", b.RoomNumber).
		Set("number_of_guests", b.NumberOfGuests).
		Set("check_in", b.CheckIn).
		Set("check_out", b.CheckOut).
		Set("paid", b.Paid).
		Set("cancelled", b.Cancelled).
		Set("checked_in", b.CheckedIn).
		Set("checked_out", b.CheckedOut).
		Set("created_at", b.CreatedAt).
		Where(squirrel.Eq{"reference": b.Reference}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Update - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Update - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Update - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrBookingNotFound
	}

	return nil
}

// Delete физически удаляет бронирование
func (r *Repository) Delete(ctx context.Context, reference string) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("bookings").
		Where(squirrel.Eq{"reference": reference}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Delete - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Delete - execute delete: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Delete - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrBookingNotFound
	}

	return nil
}

// scanBookings сканирует результаты запроса в слайс бронирований
func (r *Repository) scanBookings(rows *sql.Rows) ([]*domain.Booking, error) {
	bookings := make([]*domain.Booking, 0)

	for rows.Next() {
		var b domain.Booking
		var createdAt sql.NullTime

		err := rows.Scan(
			&b.Reference,
			&b.GuestID,
			&b.FirstName,
			&b.LastName,
			&b.DateOfBirth,
			&b.RoomType,
			&b.RoomNumber,
			&b.NumberOfGuests,
			&b.CheckIn,
			&b.CheckOut,
			&b.Paid,
			&b.Cancelled,
			&b.CheckedIn,
			&b.CheckedOut,
			&createdAt,
		)

		if err != nil {
			return nil, fmt.Errorf("%w: scanBookings - scan row: %v", ErrScanRow, err)
		}

		b.CreatedAt = createdAt.Time

		bookings = append(bookings, &b)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanBookings - rows error: %v", ErrScanRow, err)
	}

	return bookings, nil
}
