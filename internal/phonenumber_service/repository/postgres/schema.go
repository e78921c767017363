package postgres

// Schema creates the phone_number column type and the phone_numbers table.
//
// phone_number is a text domain holding the canonical AAA-EEE-NNNN form. With
// the "C" collation, byte order of that form is the order of
// (area code, exchange, number), so the b-tree index serves ordered scans and
// range queries, and the hash index serves equality lookups.
var Schema = []string{
	`DO $$
BEGIN
	CREATE DOMAIN phone_number AS text COLLATE "C"
		CHECK (VALUE ~ '^[0-9]{3}-[0-9]{3}-[0-9]{4}$');
EXCEPTION
	WHEN duplicate_object THEN NULL;
END
$$`,
	`CREATE TABLE IF NOT EXISTS phone_numbers (
	id         UUID PRIMARY KEY,
	number     phone_number NOT NULL,
	label      TEXT NOT NULL DEFAULT '',
	created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
)`,
	`CREATE UNIQUE INDEX IF NOT EXISTS idx_phone_numbers_number_btree ON phone_numbers USING btree (number)`,
	`CREATE INDEX IF NOT EXISTS idx_phone_numbers_number_hash ON phone_numbers USING hash (number)`,
}
