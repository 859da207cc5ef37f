// Applies the wallet schema. Run once against a fresh database:
//
//	DATABASE_URL=postgres://... go run ./cmd/migrate
package main

import (
	"database/sql"
	"fmt"
	"log"
	"os"

	_ "github.com/jackc/pgx/v5/stdlib"
)

const schema = `
CREATE TABLE IF NOT EXISTS accounts (
	id            UUID PRIMARY KEY,
	fullname      TEXT NOT NULL,
	email         TEXT NOT NULL UNIQUE,
	phone_number  TEXT NOT NULL,
	balance       BIGINT NOT NULL DEFAULT 0 CHECK (balance >= 0),
	pin           TEXT NOT NULL,
	wallet_id     TEXT NOT NULL,
	password_hash TEXT NOT NULL,
	role          TEXT NOT NULL DEFAULT 'agent' CHECK (role IN ('admin', 'agent')),
	created_at    TIMESTAMPTZ NOT NULL DEFAULT NOW(),
	updated_at    TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

CREATE TABLE IF NOT EXISTS transactions (
	id                  UUID PRIMARY KEY,
	sender_account_id   UUID NOT NULL REFERENCES accounts(id) ON DELETE CASCADE,
	receiver_account_id UUID NOT NULL,
	amount              BIGINT NOT NULL CHECK (amount > 0),
	pin                 TEXT NOT NULL,
	otp                 TEXT NOT NULL,
	transaction_type    TEXT NOT NULL CHECK (transaction_type IN ('sent', 'received')),
	status              TEXT NOT NULL CHECK (status IN ('Pending', 'Success', 'Error')),
	created_at          TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

CREATE INDEX IF NOT EXISTS idx_transactions_sender   ON transactions (sender_account_id, created_at DESC);
CREATE INDEX IF NOT EXISTS idx_transactions_receiver ON transactions (receiver_account_id, created_at DESC);
`

func main() {
	dbURL := os.Getenv("DATABASE_URL")
	if dbURL == "" {
		log.Fatal("DATABASE_URL is not set")
	}

	db, err := sql.Open("pgx", dbURL)
	if err != nil {
		log.Fatalf("failed to open db: %v", err)
	}
	defer db.Close()

	if err := db.Ping(); err != nil {
		log.Fatalf("failed to ping db: %v", err)
	}

	if _, err := db.Exec(schema); err != nil {
		log.Fatalf("failed to execute migration: %v", err)
	}

	fmt.Println("Migration executed successfully")
}
