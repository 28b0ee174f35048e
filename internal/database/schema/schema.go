package schema

// SchemaSQL contains the full database schema initialization script.
// Every statement is idempotent so it can be re-run against an existing database.
const SchemaSQL = `
-- Companies (read-only from the jobs side)
CREATE TABLE IF NOT EXISTS companies (
    handle VARCHAR(25) PRIMARY KEY CHECK (handle = lower(handle)),
    name TEXT UNIQUE NOT NULL,
    num_employees INTEGER CHECK (num_employees >= 0),
    description TEXT NOT NULL,
    logo_url TEXT
);

-- Jobs
CREATE TABLE IF NOT EXISTS jobs (
    id SERIAL PRIMARY KEY,
    title TEXT NOT NULL,
    salary INTEGER CHECK (salary >= 0),
    equity NUMERIC CHECK (equity <= 1.0),
    company_handle VARCHAR(25) NOT NULL
        REFERENCES companies ON DELETE CASCADE
);

CREATE INDEX IF NOT EXISTS idx_jobs_company_handle ON jobs (company_handle);
CREATE INDEX IF NOT EXISTS idx_jobs_title ON jobs (title);
`

// SeedSQL inserts a small fixture set used by local setups
const SeedSQL = `
INSERT INTO companies (handle, name, num_employees, description, logo_url) VALUES
('anderson-arias-morrow', 'Anderson, Arias and Morrow', 245, 'Somebody program how I.', '/logos/logo3.png'),
('bauer-gallagher', 'Bauer-Gallagher', 862, 'Difficult ready trip question produce produce someone.', NULL),
('watson-davis', 'Watson-Davis', 819, 'Year join loss.', '/logos/logo3.png')
ON CONFLICT DO NOTHING;

INSERT INTO jobs (title, salary, equity, company_handle)
SELECT v.title, v.salary, v.equity, v.company_handle
FROM (VALUES
    ('Conservator, furniture', 110000, 0::numeric, 'watson-davis'),
    ('Information officer', 200000, NULL, 'bauer-gallagher'),
    ('Consulting civil engineer', 60000, 0.076, 'anderson-arias-morrow'),
    ('Software engineer', 150000, 0.01, 'bauer-gallagher')
) AS v (title, salary, equity, company_handle)
WHERE NOT EXISTS (SELECT 1 FROM jobs);
`
