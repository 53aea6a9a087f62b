// Package psqlbuilder provides squirrel builders preconfigured for PostgreSQL
// ($1, $2, ... placeholders).
package psqlbuilder

import "github.com/Masterminds/squirrel"

var builder = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)

// Select starts a SELECT query with dollar placeholders.
func Select(columns ...string) squirrel.SelectBuilder {
	return builder.Select(columns...)
}

// Insert starts an INSERT query with dollar placeholders.
func Insert(table string) squirrel.InsertBuilder {
	return builder.Insert(table)
}

// Update starts an UPDATE query with dollar placeholders.
func Update(table string) squirrel.UpdateBuilder {
	return builder.Update(table)
}

// Delete starts a DELETE query with dollar placeholders.
func Delete(table string) squirrel.DeleteBuilder {
	return builder.Delete(table)
}
