package repository

import (
	"errors"
	"fmt"
	"testing"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
)

func TestValidID(t *testing.T) {
	assert.True(t, validID("6f1c2d4e-8a3b-4c5d-9e7f-0a1b2c3d4e5f"))
	assert.False(t, validID("42"))
	assert.False(t, validID(""))
}

func TestIsUniqueViolation(t *testing.T) {
	dup := &pq.Error{Code: "23505"}

	assert.True(t, isUniqueViolation(dup))
	assert.True(t, isUniqueViolation(fmt.Errorf("insert admin: %w", dup)))
	assert.False(t, isUniqueViolation(&pq.Error{Code: "23503"}))
	assert.False(t, isUniqueViolation(errors.New("boom")))
}
