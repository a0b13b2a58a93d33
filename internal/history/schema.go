package history

const schemaSQL = `
CREATE TABLE IF NOT EXISTS commits (
    id            INTEGER PRIMARY KEY AUTOINCREMENT,
    committed_at  TEXT NOT NULL,
    budget        INTEGER NOT NULL,
    unallocated   INTEGER NOT NULL
);

CREATE TABLE IF NOT EXISTS commit_allocations (
    commit_id     INTEGER NOT NULL REFERENCES commits(id) ON DELETE CASCADE,
    category      TEXT NOT NULL,
    allocated     INTEGER NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_commits_at ON commits(committed_at);
CREATE INDEX IF NOT EXISTS idx_alloc_commit ON commit_allocations(commit_id);
`
