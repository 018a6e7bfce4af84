package db

import (
	"database/sql"
	"fmt"
)

// schema is the full database schema. Inventory tables deliberately carry no
// foreign key on owner_id: ownership is enforced in the handlers, deletes
// never cascade, and rows belonging to a deleted user remain in place.
const schema = `
CREATE TABLE IF NOT EXISTS users (
    id                   INTEGER PRIMARY KEY,
    username             TEXT NOT NULL UNIQUE,
    email                TEXT NOT NULL UNIQUE,
    password_hash        TEXT NOT NULL,
    is_admin             INTEGER NOT NULL DEFAULT 0,
    profile_picture      BLOB,
    profile_picture_mime TEXT,
    created_at           DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
    updated_at           DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
);

CREATE TABLE IF NOT EXISTS appliances (
    id                   INTEGER PRIMARY KEY,
    owner_id             INTEGER NOT NULL,
    name                 TEXT NOT NULL,
    type                 TEXT NOT NULL,
    warranty_expiry      DATETIME NOT NULL,
    maintenance_schedule DATETIME NOT NULL,
    value                REAL NOT NULL CHECK (value >= 0),
    past_maintenance     TEXT NOT NULL DEFAULT '[]',
    created_at           DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
    updated_at           DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
);

CREATE INDEX IF NOT EXISTS idx_appliances_owner ON appliances(owner_id);

CREATE TABLE IF NOT EXISTS clothing (
    id            INTEGER PRIMARY KEY,
    owner_id      INTEGER NOT NULL,
    item_name     TEXT NOT NULL,
    brand         TEXT NOT NULL,
    quantity      INTEGER NOT NULL CHECK (quantity >= 1),
    purchase_date DATETIME NOT NULL,
    created_at    DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
    updated_at    DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
);

CREATE INDEX IF NOT EXISTS idx_clothing_owner ON clothing(owner_id);

CREATE TABLE IF NOT EXISTS essentials (
    id            INTEGER PRIMARY KEY,
    owner_id      INTEGER NOT NULL,
    item_name     TEXT NOT NULL,
    no_of_items   INTEGER NOT NULL CHECK (no_of_items >= 1),
    expiry_date   DATETIME NOT NULL,
    description   TEXT NOT NULL,
    current_price REAL NOT NULL CHECK (current_price >= 0),
    type          TEXT NOT NULL,
    created_at    DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
    updated_at    DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
);

CREATE INDEX IF NOT EXISTS idx_essentials_owner ON essentials(owner_id);

CREATE TABLE IF NOT EXISTS pantry_items (
    id          INTEGER PRIMARY KEY,
    owner_id    INTEGER NOT NULL,
    title       TEXT NOT NULL,
    content     TEXT NOT NULL,
    price       REAL NOT NULL CHECK (price >= 0),
    expire_date DATETIME NOT NULL,
    quantity    INTEGER NOT NULL CHECK (quantity >= 1),
    created_at  DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
    updated_at  DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
);

CREATE INDEX IF NOT EXISTS idx_pantry_items_owner ON pantry_items(owner_id);

CREATE TABLE IF NOT EXISTS reviews (
    id                   INTEGER PRIMARY KEY,
    reviewer_name        TEXT NOT NULL,
    reviewer_description TEXT NOT NULL,
    reviewer_rate        INTEGER NOT NULL CHECK (reviewer_rate BETWEEN 1 AND 5),
    is_approved          INTEGER NOT NULL DEFAULT 0,
    created_at           DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
    updated_at           DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
);

CREATE TABLE IF NOT EXISTS revoked_tokens (
    jti        TEXT PRIMARY KEY,
    expires_at DATETIME NOT NULL
);

CREATE TABLE IF NOT EXISTS settings (
    key   TEXT PRIMARY KEY,
    value TEXT NOT NULL
);
`

// EnsureSchema creates all tables and indexes if they don't already exist.
func EnsureSchema(db *sql.DB) error {
	_, err := db.Exec(schema)
	if err != nil {
		return fmt.Errorf("creating schema: %w", err)
	}
	return nil
}
