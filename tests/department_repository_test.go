package tests

import (
	"testing"

	"mediplus/internal/repository"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
)

// The department lookup deliberately reads past the soft-delete scope:
// the dashboard can still fetch a removed department by id. The query
// must therefore carry no deleted_at filter between the id match and
// the ORDER BY.
func TestDepartmentRepositoryFindByIDReadsPastSoftDeleteScope(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := repository.NewDepartmentRepository(db)

	mock.ExpectQuery(`SELECT \* FROM "departments" WHERE "departments"\."id" = \$1 ORDER BY`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "department_name", "department_description"}).
			AddRow(1, "Cardiology", "Heart care"))

	department, err := repo.FindByID(1)

	assert.NoError(t, err)
	assert.NotNil(t, department)
	assert.Equal(t, "Cardiology", department.DepartmentName)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDepartmentRepositoryFindByNameExcludesSoftDeleted(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := repository.NewDepartmentRepository(db)

	mock.ExpectQuery(`SELECT \* FROM "departments" WHERE department_name = \$1 AND "departments"\."deleted_at" IS NULL`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "department_name"}))

	department, err := repo.FindByName("Cardiology")

	assert.NoError(t, err)
	assert.Nil(t, department)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDepartmentRepositoryDeleteOnlyStampsActiveRows(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := repository.NewDepartmentRepository(db)

	mock.ExpectExec(`UPDATE "departments" SET .* WHERE id = \$3 AND "departments"\."deleted_at" IS NULL`).
		WillReturnResult(sqlmock.NewResult(0, 0))

	deleted, err := repo.Delete(7)

	assert.NoError(t, err)
	assert.False(t, deleted)
	assert.NoError(t, mock.ExpectationsWereMet())
}
