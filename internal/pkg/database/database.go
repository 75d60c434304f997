package database

import (
	"fmt"
	"log"

	"tour-booking/config"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
)

func GetConnection(cfg *config.DatabaseConfig) *sqlx.DB {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		cfg.Host, cfg.Port, cfg.User, cfg.Password, cfg.Name, cfg.SSLMode)

	db, err := sqlx.Connect("postgres", dsn)
	if err != nil {
		log.Fatalf("error connect database: %v", err)
	}
	db.SetMaxOpenConns(cfg.MaxOpenConns)

	return db
}

const bookingsSchema = `
CREATE TABLE IF NOT EXISTS bookings (
	uuid             UUID PRIMARY KEY,
	tour_instance_id BIGINT NOT NULL,
	tour_date        TEXT NOT NULL,
	tour_type        TEXT NOT NULL,
	guest_name       TEXT NOT NULL,
	guest_email      TEXT NOT NULL,
	num_people       INTEGER NOT NULL,
	total_price      NUMERIC(10, 2) NOT NULL,
	special_notes    TEXT NOT NULL DEFAULT '',
	status           TEXT NOT NULL,
	pix_code         TEXT NOT NULL DEFAULT '',
	task_id          TEXT NOT NULL DEFAULT '',
	created_at       TIMESTAMPTZ NOT NULL,
	updated_at       TIMESTAMPTZ
);
CREATE INDEX IF NOT EXISTS bookings_tour_date_idx ON bookings (tour_date, tour_type);
`

// EnsureSchema creates the bookings table when missing.
func EnsureSchema(db *sqlx.DB) {
	if _, err := db.Exec(bookingsSchema); err != nil {
		log.Fatalf("error create schema: %v", err)
	}
}
