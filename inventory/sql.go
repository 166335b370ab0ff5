package inventory

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	// MySQL driver registered for database/sql.
	_ "github.com/go-sql-driver/mysql"
)

// SQLRepository is a Source backed by a MySQL `vehicles` table.
//
// Expected schema:
//
//	CREATE TABLE vehicles (
//	    id           VARCHAR(26) PRIMARY KEY,
//	    make         VARCHAR(64)  NOT NULL,
//	    model        VARCHAR(64)  NOT NULL,
//	    year         INT          NOT NULL,
//	    base_price   BIGINT       NOT NULL,
//	    mileage      INT          NOT NULL DEFAULT 0,
//	    fuel         VARCHAR(32)  NOT NULL DEFAULT '',
//	    transmission VARCHAR(32)  NOT NULL DEFAULT '',
//	    color        VARCHAR(32)  NOT NULL DEFAULT '',
//	    grade        VARCHAR(8)   NOT NULL DEFAULT '',
//	    location     VARCHAR(64)  NOT NULL DEFAULT '',
//	    image_url    VARCHAR(255)
//	);
type SQLRepository struct {
	db *sql.DB
}

// NewSQLRepository creates a repository over an open database handle.
// The caller owns the handle's lifecycle.
func NewSQLRepository(db *sql.DB) *SQLRepository {
	return &SQLRepository{db: db}
}

// OpenSQLRepository opens a MySQL connection from a DSN and verifies it.
func OpenSQLRepository(ctx context.Context, dsn string) (*SQLRepository, error) {
	db, err := sql.Open("mysql", dsn)
	if err != nil {
		return nil, fmt.Errorf("open inventory database: %w", err)
	}
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping inventory database: %w", err)
	}
	return NewSQLRepository(db), nil
}

const vehicleColumns = `id, make, model, year, base_price, mileage, fuel, transmission, color, grade, location, image_url`

func (r *SQLRepository) List(ctx context.Context) ([]Vehicle, error) {
	query := `SELECT ` + vehicleColumns + ` FROM vehicles ORDER BY make, model, year`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list vehicles: %w", err)
	}
	defer rows.Close()

	var vehicles []Vehicle
	for rows.Next() {
		v, err := scanVehicle(rows)
		if err != nil {
			return nil, fmt.Errorf("list vehicles: %w", err)
		}
		vehicles = append(vehicles, v)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list vehicles: %w", err)
	}

	return vehicles, nil
}

func (r *SQLRepository) Get(ctx context.Context, id string) (Vehicle, error) {
	query := `SELECT ` + vehicleColumns + ` FROM vehicles WHERE id = ?`

	v, err := scanVehicle(r.db.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return Vehicle{}, fmt.Errorf("%w: %s", ErrVehicleNotFound, id)
	}
	if err != nil {
		return Vehicle{}, fmt.Errorf("get vehicle %s: %w", id, err)
	}

	return v, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanVehicle(row rowScanner) (Vehicle, error) {
	var v Vehicle
	var imageURL sql.NullString

	err := row.Scan(
		&v.ID, &v.Make, &v.Model, &v.Year, &v.BasePrice, &v.Mileage,
		&v.Fuel, &v.Transmission, &v.Color, &v.Grade, &v.Location, &imageURL,
	)
	if err != nil {
		return Vehicle{}, err
	}

	if imageURL.Valid {
		v.ImageURL = imageURL.String
	}
	return v, nil
}
