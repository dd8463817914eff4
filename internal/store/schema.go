package store

const schemaSQL = `
CREATE TABLE IF NOT EXISTS profile (
    id                   INTEGER PRIMARY KEY CHECK (id = 1),
    monthly_income       REAL NOT NULL,
    mortgage_payment     REAL NOT NULL,
    car_payment          REAL NOT NULL,
    credit_card_payment  REAL NOT NULL,
    student_loan_payment REAL NOT NULL,
    other_debt_payment   REAL NOT NULL
);

CREATE TABLE IF NOT EXISTS accounts (
    pos                  INTEGER PRIMARY KEY,
    name                 TEXT NOT NULL,
    credit_limit         REAL NOT NULL,
    balance              REAL NOT NULL
);

CREATE TABLE IF NOT EXISTS payments (
    pos                  INTEGER PRIMARY KEY,
    account_name         TEXT NOT NULL,
    amount               REAL NOT NULL,
    due_date             TEXT,
    payment_date         TEXT,
    is_paid              INTEGER NOT NULL DEFAULT 0,
    is_late              INTEGER NOT NULL DEFAULT 0
);

CREATE TABLE IF NOT EXISTS goals (
    pos                  INTEGER PRIMARY KEY,
    goal_id              TEXT NOT NULL,
    name                 TEXT NOT NULL,
    current_amount       REAL NOT NULL,
    target_amount        REAL NOT NULL,
    deadline             TEXT,
    category             TEXT
);

CREATE TABLE IF NOT EXISTS reports (
    pos                  INTEGER PRIMARY KEY,
    month                TEXT NOT NULL,
    health_score         INTEGER NOT NULL,
    debt_to_income       REAL NOT NULL,
    credit_utilization   REAL NOT NULL,
    missed_payments      INTEGER NOT NULL,
    notes                TEXT
);
`
