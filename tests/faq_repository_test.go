package tests

import (
	"testing"

	"mediplus/internal/repository"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

// Unlike the department lookup, every other by-id read rides the default
// soft-delete scope and must filter on deleted_at.
func TestFAQRepositoryFindByIDExcludesSoftDeleted(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := repository.NewFAQRepository(db)

	mock.ExpectQuery(`SELECT \* FROM "faqs" WHERE "faqs"\."id" = \$1 AND "faqs"\."deleted_at" IS NULL`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "faq_question", "faq_answer"}))

	faq, err := repo.FindByID(1)

	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
	assert.Nil(t, faq)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFAQRepositoryUpdateFallsBackToStoredValues(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := repository.NewFAQRepository(db)

	rows := func() *sqlmock.Rows {
		return sqlmock.NewRows([]string{"id", "faq_question", "faq_answer"}).
			AddRow(1, "Do you accept walk-ins?", "Yes, every weekday.")
	}

	mock.ExpectQuery(`SELECT \* FROM "faqs" WHERE "faqs"\."id" = \$1 AND "faqs"\."deleted_at" IS NULL`).
		WillReturnRows(rows())
	mock.ExpectExec(`UPDATE "faqs" SET .* WHERE id = \$4 AND "faqs"\."deleted_at" IS NULL`).
		WithArgs("Yes, every weekday.", "Updated question?", sqlmock.AnyArg(), 1).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery(`SELECT \* FROM "faqs" WHERE "faqs"\."id" = \$1 AND "faqs"\."deleted_at" IS NULL`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "faq_question", "faq_answer"}).
			AddRow(1, "Updated question?", "Yes, every weekday."))

	question := "Updated question?"
	updated, err := repo.Update(1, &question, nil)

	assert.NoError(t, err)
	assert.NotNil(t, updated)
	assert.Equal(t, "Updated question?", updated.FaqQuestion)
	assert.Equal(t, "Yes, every weekday.", updated.FaqAnswer)
	assert.NoError(t, mock.ExpectationsWereMet())
}
