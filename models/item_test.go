package models_test

import (
	"testing"

	"Gin_redis_rental_registry/models"

	"github.com/stretchr/testify/assert"
)

func TestParseCategory(t *testing.T) {
	for in, want := range map[string]models.Category{
		"cactus":   models.CategoryCactus,
		"Cactus":   models.CategoryCactus,
		"  FERN  ": models.CategoryFern,
		"bonsai":   models.CategoryBonsai,
	} {
		got, ok := models.ParseCategory(in)
		assert.True(t, ok, in)
		assert.Equal(t, want, got)
	}

	for _, in := range []string{"", "shrubbery", "cactus!"} {
		_, ok := models.ParseCategory(in)
		assert.False(t, ok, in)
	}
}
