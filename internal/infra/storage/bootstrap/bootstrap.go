package bootstrap

import (
	"context"
	"fmt"

	"github.com/m04kA/SMC-HotelService/internal/domain"
	"github.com/m04kA/SMC-HotelService/pkg/dbmetrics"
	"github.com/m04kA/SMC-HotelService/pkg/psqlbuilder"
)

// Номера комнат отеля: 101–200.
// Первые 50 — standard, следующие 30 — deluxe, последние 20 — suite.
const (
	firstRoomNumber = 101
	totalRooms      = 100
	standardRooms   = 50
	deluxeRooms     = 30
)

var schema = []string{
	`CREATE TABLE IF NOT EXISTS guests (
		id            TEXT PRIMARY KEY,
		first_name    TEXT NOT NULL,
		last_name     TEXT NOT NULL,
		date_of_birth DATE NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS rooms (
		number    TEXT PRIMARY KEY,
		room_type TEXT NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS bookings (
		reference        TEXT PRIMARY KEY,
		guest_id         TEXT NOT NULL REFERENCES guests (id),
		first_name       TEXT NOT NULL,
		last_name        TEXT NOT NULL,
		date_of_birth    DATE NOT NULL,
		room_type        TEXT NOT NULL,
		room_number      TEXT NOT NULL REFERENCES rooms (number),
		number_of_guests INT  NOT NULL,
		check_in         DATE NOT NULL,
		check_out        DATE NOT NULL,
		paid             BOOLEAN NOT NULL DEFAULT FALSE,
		cancelled        BOOLEAN NOT NULL DEFAULT FALSE,
		checked_in       BOOLEAN NOT NULL DEFAULT FALSE,
		checked_out      BOOLEAN NOT NULL DEFAULT FALSE,
		created_at       TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE INDEX IF NOT EXISTS idx_bookings_room_number ON bookings (room_number)`,
	`CREATE INDEX IF NOT EXISTS idx_bookings_guest_id ON bookings (guest_id)`,
}

// Run создает таблицы, если их нет, и сидирует комнаты на чистой базе
func Run(ctx context.Context, db dbmetrics.DBExecutor) error {
	for _, stmt := range schema {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("bootstrap: create schema: %w", err)
		}
	}

	return seedRooms(ctx, db)
}

// seedRooms наполняет таблицу комнат дефолтным набором, если она пуста
func seedRooms(ctx context.Context, db dbmetrics.DBExecutor) error {
	query, args, err := psqlbuilder.Select("COUNT(*)").From("rooms").ToSql()
	if err != nil {
		return fmt.Errorf("bootstrap: build count query: %w", err)
	}

	var count int
	if err := db.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		return fmt.Errorf("bootstrap: count rooms: %w", err)
	}
	if count > 0 {
		return nil
	}

	insert := psqlbuilder.Insert("rooms").Columns("number", "room_type")
	for i := 0; i < totalRooms; i++ {
		insert = insert.Values(fmt.Sprintf("%d", firstRoomNumber+i), roomTypeForIndex(i))
	}

	query, args, err = insert.ToSql()
	if err != nil {
		return fmt.Errorf("bootstrap: build seed query: %w", err)
	}

	if _, err := db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("bootstrap: seed rooms: %w", err)
	}

	return nil
}

func roomTypeForIndex(i int) domain.RoomType {
	switch {
	case i < standardRooms:
		return domain.RoomTypeStandard
	case i < standardRooms+deluxeRooms:
		return domain.RoomTypeDeluxe
	default:
		return domain.RoomTypeSuite
	}
}
