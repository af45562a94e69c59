package sqlite

import "github.com/nonibytes/searchbox/searchbox/storage"

var SQLTemplates = storage.SQL{
	GetMeta: "SELECT value FROM meta WHERE key = ?1",
	SetMeta: "INSERT INTO meta(key,value) VALUES(?1,?2) ON CONFLICT(key) DO UPDATE SET value=excluded.value",

	UpsertUser: `INSERT INTO users(space, id, name, created_at) VALUES(?1, ?2, ?3, ?4)
		ON CONFLICT(space, id) DO UPDATE SET name=excluded.name`,
	ListUsers:  "SELECT id, name FROM users WHERE space = ?1 ORDER BY created_at, id",
	DeleteUser: "DELETE FROM users WHERE space = ?1 AND id = ?2",

	UpsertContentType: `INSERT INTO content_types(space, id, name, data_json, updated_at) VALUES(?1, ?2, ?3, ?4, ?5)
		ON CONFLICT(space, id) DO UPDATE SET name=excluded.name, data_json=excluded.data_json, updated_at=excluded.updated_at`,
	GetContentType:    "SELECT data_json FROM content_types WHERE space = ?1 AND id = ?2",
	ListContentTypes:  "SELECT data_json FROM content_types WHERE space = ?1 ORDER BY id",
	DeleteContentType: "DELETE FROM content_types WHERE space = ?1 AND id = ?2",
}
