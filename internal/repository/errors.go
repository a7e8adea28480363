package repository

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/wb-go/wbf/retry"
)

const codeUniqueViolation = "23505"

func defaultStrategy() retry.Strategy {
	return retry.Strategy{
		Attempts: 3,
		Delay:    500 * time.Millisecond,
		Backoff:  2,
	}
}

func isUniqueViolation(err error) bool {
	var pgErr *pq.Error
	return errors.As(err, &pgErr) && pgErr.Code == codeUniqueViolation
}

// validID filters out ids that cannot match a uuid column, so they never
// reach the database as a query error.
func validID(id string) bool {
	_, err := uuid.Parse(id)
	return err == nil
}
