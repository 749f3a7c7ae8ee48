package repositories

import (
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
)

func TestProductDelete(t *testing.T) {
	t.Run("removes the product and its images for real", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewProductRepository(db)

		mock.ExpectBegin()
		mock.ExpectExec("DELETE FROM `product_images`").WillReturnResult(sqlmock.NewResult(0, 2))
		mock.ExpectExec("DELETE FROM `products`").WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectCommit()

		assert.NoError(t, repo.Delete(3))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("unknown id rolls back", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewProductRepository(db)

		mock.ExpectBegin()
		mock.ExpectExec("DELETE FROM `product_images`").WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectExec("DELETE FROM `products`").WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectRollback()

		assert.ErrorIs(t, repo.Delete(99), ErrProductNotFound)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
