package sqlite

// Schema DDL for the snapshot tables. position preserves directory and
// phone insertion order.
const (
	createRecords = `CREATE TABLE records (
    record_id TEXT PRIMARY KEY,
    name TEXT NOT NULL UNIQUE,
    position INTEGER NOT NULL
);`

	createPhones = `CREATE TABLE phones (
    record_id TEXT NOT NULL,
    phone TEXT NOT NULL,
    position INTEGER NOT NULL,
    PRIMARY KEY (record_id, phone),
    FOREIGN KEY (record_id) REFERENCES records(record_id)
);`

	createPhonesIndex = `CREATE INDEX idx_phones_phone ON phones(phone);`
)

// schemaStatements lists the DDL in execution order.
var schemaStatements = []string{
	createRecords,
	createPhones,
	createPhonesIndex,
}
