package store

const schemaSQL = `
CREATE TABLE IF NOT EXISTS assessments (
    id             INTEGER PRIMARY KEY AUTOINCREMENT,
    taken_at       TEXT NOT NULL,
    cash           REAL NOT NULL,
    income         REAL NOT NULL,
    expenses       REAL NOT NULL,
    overdue        REAL NOT NULL,
    runway_months  REAL,
    cash_level     TEXT NOT NULL,
    burn_level     TEXT NOT NULL,
    risk_level     TEXT NOT NULL,
    burn_amount    REAL NOT NULL,
    insights       TEXT NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_assessments_taken ON assessments(taken_at);
`
