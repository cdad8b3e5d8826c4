package storage

// vocabularyTable holds the sheet itself. Its columns mirror the sheet
// header, so it is (re)created on every write rather than here.
const vocabularyTable = "vocabulary"

const schema = `
-- The 'sheets' table remembers the sheet name and when it was last written.
CREATE TABLE IF NOT EXISTS sheets (
    name TEXT PRIMARY KEY,
    updated_at DATETIME NOT NULL
);
`
