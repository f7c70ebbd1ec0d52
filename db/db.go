// Package db selects and connects the persistence backend. The two
// implementations, db/postgres and db/mongo, satisfy the same DB capability
// so the rest of the system never branches on the backend beyond startup.
package db

import "context"

type DBType string

const (
	Postgres DBType = "postgres"
	Mongo    DBType = "mongo"
)

type DB interface {
	Connect() error
	Disconnect() error
	GetContext() context.Context
}
