package store

import (
	sq "github.com/Masterminds/squirrel"
)

const (
	createUser = `INSERT INTO users (username, password_hash, role)
    VALUES ($1, $2, $3)
    RETURNING user_id, username, password_hash, role, created_at;`

	findUserByUsername = `SELECT user_id, username, password_hash, role, created_at
    FROM users
    WHERE username = $1;`
)

const (
	colID         = "id"
	colIdentifier = "identifier"
	colDoc        = "doc"
	colUpdatedAt  = "updated_at"
)

// psql builds statements with $n placeholders.
var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// buildUpsertDocumentQuery inserts a document or replaces the row with the
// same id. identifier may be nil for entities without one.
func buildUpsertDocumentQuery(table, id string, identifier *string, doc []byte) (string, []any, error) {
	return psql.
		Insert(table).
		Columns(colID, colIdentifier, colDoc).
		Values(id, identifier, doc).
		Suffix("ON CONFLICT (id) DO UPDATE SET identifier = EXCLUDED.identifier, doc = EXCLUDED.doc, updated_at = NOW()").
		ToSql()
}

func buildGetDocumentQuery(table, id string) (string, []any, error) {
	return psql.
		Select(colDoc).
		From(table).
		Where(sq.Eq{colID: id}).
		ToSql()
}

func buildListDocumentsQuery(table string) (string, []any, error) {
	return psql.
		Select(colDoc).
		From(table).
		OrderBy(colIdentifier, colID).
		ToSql()
}

func buildDeleteDocumentQuery(table, id string) (string, []any, error) {
	return psql.
		Delete(table).
		Where(sq.Eq{colID: id}).
		ToSql()
}

// buildIdentifierExistsQuery counts rows using identifier, skipping exceptID
// when it is set.
func buildIdentifierExistsQuery(table, identifier, exceptID string) (string, []any, error) {
	q := psql.
		Select("COUNT(*)").
		From(table).
		Where(sq.Eq{colIdentifier: identifier})
	if exceptID != "" {
		q = q.Where(sq.NotEq{colID: exceptID})
	}
	return q.ToSql()
}

// buildFindImageByFilenameQuery looks a food image up by its stored file name.
func buildFindImageByFilenameQuery(filename string) (string, []any, error) {
	return psql.
		Select(colDoc).
		From("food_images").
		Where(sq.Expr("doc->>'filename' = ?", filename)).
		ToSql()
}
