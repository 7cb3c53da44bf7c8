package db

const schema = `
PRAGMA journal_mode = WAL;
PRAGMA synchronous = NORMAL;
PRAGMA foreign_keys = ON;
PRAGMA temp_store = MEMORY;

-- One row per scrape invocation
CREATE TABLE IF NOT EXISTS runs (
    run_id INTEGER PRIMARY KEY AUTOINCREMENT,
    created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
    finished_at TIMESTAMP,
    search_url TEXT NOT NULL,
    link_count INTEGER DEFAULT 0,
    success_count INTEGER DEFAULT 0,
    failed_count INTEGER DEFAULT 0,
    report_path TEXT
);

-- Derived satellite records, insert-only, ordered by catalog position
CREATE TABLE IF NOT EXISTS satellites (
    record_id INTEGER PRIMARY KEY AUTOINCREMENT,
    run_id INTEGER NOT NULL,
    position INTEGER NOT NULL,
    link TEXT NOT NULL,
    name TEXT NOT NULL,
    mission_type TEXT,
    background_full TEXT,
    background_summary TEXT,
    launch_date TEXT,
    lifetime TEXT,
    end_of_life TEXT,
    mass_kg REAL,                 -- NULL when the page had no usable mass
    orbit_type TEXT,
    size_class TEXT NOT NULL,
    mission_status TEXT NOT NULL,
    product_candidates TEXT NOT NULL,
    image_url TEXT,
    FOREIGN KEY (run_id) REFERENCES runs(run_id) ON DELETE CASCADE,
    UNIQUE(run_id, link)
);

CREATE INDEX IF NOT EXISTS idx_satellites_run ON satellites(run_id, position);
CREATE INDEX IF NOT EXISTS idx_satellites_status ON satellites(mission_status);

-- Every page fetch attempt of a run
CREATE TABLE IF NOT EXISTS page_accesses (
    access_id INTEGER PRIMARY KEY AUTOINCREMENT,
    run_id INTEGER NOT NULL,
    link TEXT NOT NULL,
    status_code INTEGER,
    error_type TEXT,
    error_message TEXT,
    success BOOLEAN NOT NULL,
    accessed_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
    FOREIGN KEY (run_id) REFERENCES runs(run_id) ON DELETE CASCADE
);

CREATE INDEX IF NOT EXISTS idx_accesses_run ON page_accesses(run_id);
`
