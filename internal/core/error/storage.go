package errx

import (
	"errors"
	"net/http"

	"github.com/redis/go-redis/v9"
)

// WrapStorage maps persistent store errors to the unified AppError type with
// appropriate status codes.
func WrapStorage(err error) *AppError {
	if err == nil {
		return nil
	}

	if errors.Is(err, redis.Nil) {
		return New(err, http.StatusNotFound, StorageNotFoundMessage)
	}

	return New(err, http.StatusBadGateway, StorageErrorMessage)
}
