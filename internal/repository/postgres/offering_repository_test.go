package postgres

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"tneaCompass/domain"
)

func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()

	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{})
	require.NoError(t, err)

	return db, mock
}

func expectDataset(mock sqlmock.Sqlmock) {
	mock.ExpectQuery(`SELECT \* FROM "colleges"`).WillReturnRows(
		sqlmock.NewRows([]string{"college_code", "college_name", "district", "ownership", "hostel_available", "rural_support"}).
			AddRow("C001", "Anna Institute", "Chennai", "Government", true, true),
	)
	mock.ExpectQuery(`SELECT \* FROM "programs"`).WillReturnRows(
		sqlmock.NewRows([]string{"college_code", "branch", "annual_fee", "placement_rate", "quality_score"}).
			AddRow("C001", "CSE", 25000, 0.92, 0.90).
			AddRow("C001", "ECE", 24000, 0.85, 0.88),
	)
	mock.ExpectQuery(`SELECT \* FROM "cutoffs"`).WillReturnRows(
		sqlmock.NewRows([]string{"college_code", "branch", "oc", "bc", "mbc", "sc", "st"}).
			AddRow("C001", "CSE", 196.0, 193.0, 190.0, 184.0, 180.0),
	)
}

func TestLoad_JoinsTables(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewOfferingRepository(db)

	expectDataset(mock)

	require.NoError(t, repo.Load(context.Background()))
	require.NoError(t, mock.ExpectationsWereMet())

	offerings, err := repo.FindAll(context.Background())
	require.NoError(t, err)
	require.Len(t, offerings, 2)

	assert.Equal(t, "Anna Institute", offerings[0].CollegeName)
	assert.Equal(t, domain.CutoffSet{OC: 196, BC: 193, MBC: 190, SC: 184, ST: 180}, offerings[0].Cutoffs)

	// program without a cutoff row gets the conservative fallback
	assert.Equal(t, "ECE", offerings[1].Branch)
	assert.Equal(t, domain.FallbackCutoff, offerings[1].Cutoffs.OC)
}

func TestFindAll_ServesMemoryAfterLoad(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewOfferingRepository(db)

	expectDataset(mock)
	require.NoError(t, repo.Load(context.Background()))

	// no further query expectations: FindAll must not hit the database
	for i := 0; i < 3; i++ {
		offerings, err := repo.FindAll(context.Background())
		require.NoError(t, err)
		assert.Len(t, offerings, 2)
	}
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFindAll_BeforeLoad(t *testing.T) {
	db, _ := newMockDB(t)
	repo := NewOfferingRepository(db)

	_, err := repo.FindAll(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "offerings not loaded")
}

func TestLoad_QueryError(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewOfferingRepository(db)

	mock.ExpectQuery(`SELECT \* FROM "colleges"`).WillReturnError(gorm.ErrInvalidDB)

	err := repo.Load(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to load colleges")
}

func TestLoad_CancelledContext(t *testing.T) {
	db, _ := newMockDB(t)
	repo := NewOfferingRepository(db)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := repo.Load(ctx)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "context error")
}
