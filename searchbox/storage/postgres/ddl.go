package postgres

const ddlBase = `
CREATE TABLE IF NOT EXISTS meta (
  key   TEXT PRIMARY KEY,
  value TEXT
);

CREATE TABLE IF NOT EXISTS users (
  space      TEXT   NOT NULL,
  id         TEXT   NOT NULL,
  name       TEXT   NOT NULL,
  created_at BIGINT NOT NULL,
  PRIMARY KEY (space, id)
);
CREATE INDEX IF NOT EXISTS idx_users_order ON users(space, created_at, id);

CREATE TABLE IF NOT EXISTS content_types (
  space      TEXT   NOT NULL,
  id         TEXT   NOT NULL,
  name       TEXT   NOT NULL DEFAULT '',
  data_json  JSONB  NOT NULL,
  updated_at BIGINT NOT NULL,
  PRIMARY KEY (space, id)
);
`
