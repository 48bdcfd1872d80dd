package store

import (
	"errors"

	"go.mongodb.org/mongo-driver/mongo"
)

var (
	// ErrNotFound reports a lookup by id that matched no document.
	ErrNotFound = errors.New("document not found")
	// ErrDuplicateKey reports a unique index violation (mongo code 11000),
	// e.g. a product name collision.
	ErrDuplicateKey = errors.New("duplicate key")
)

func translateMongoError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, mongo.ErrNoDocuments) {
		return ErrNotFound
	}
	if mongo.IsDuplicateKeyError(err) {
		return ErrDuplicateKey
	}
	return err
}
