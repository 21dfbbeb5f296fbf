package repository

import (
	"context"
	"testing"
	"time"

	"github.com/SeakMengs/CertVerify/internal/model"
	"github.com/SeakMengs/CertVerify/internal/util"
	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func strPtr(s string) *string { return &s }

func newCertificate(number string) *model.Certificate {
	return &model.Certificate{
		CertificateNumber: number,
		RecipientName:     "Jane Doe",
		CourseName:        "Web Development Fundamentals",
		IssueDate:         time.Date(2024, 1, 20, 0, 0, 0, 0, time.UTC),
		CompletionDate:    time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC),
		Grade:             strPtr("A"),
		Status:            model.CertificateStatusActive,
	}
}

func newSQLiteStore(t *testing.T) *CertificateRepository {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	// every connection to :memory: is its own database
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })

	require.NoError(t, db.AutoMigrate(&model.Certificate{}))

	return NewRepository(db, util.NewNopLogger()).Certificate
}

func TestCertificateStores(t *testing.T) {
	stores := map[string]func(t *testing.T) CertificateStore{
		"memory": func(t *testing.T) CertificateStore { return NewMemoryCertificateStore() },
		"gorm":   func(t *testing.T) CertificateStore { return newSQLiteStore(t) },
	}

	for name, newStore := range stores {
		t.Run(name, func(t *testing.T) {
			testStoreContract(t, newStore)
		})
	}
}

func testStoreContract(t *testing.T, newStore func(t *testing.T) CertificateStore) {
	ctx := context.Background()

	t.Run("create then get by number", func(t *testing.T) {
		store := newStore(t)
		in := newCertificate("GZ2024004")
		in.ID = "client-supplied"

		created, err := store.Create(ctx, in)
		require.NoError(t, err)
		assert.NotEmpty(t, created.ID)
		assert.NotEqual(t, "client-supplied", created.ID)

		got, err := store.GetByNumber(ctx, "GZ2024004")
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, created.ID, got.ID)
		assert.Equal(t, "Jane Doe", got.RecipientName)
		assert.Equal(t, "Web Development Fundamentals", got.CourseName)
		assert.True(t, in.IssueDate.Equal(got.IssueDate))
		assert.True(t, in.CompletionDate.Equal(got.CompletionDate))
		require.NotNil(t, got.Grade)
		assert.Equal(t, "A", *got.Grade)
		assert.Nil(t, got.InstructorName)
		assert.Equal(t, model.CertificateStatusActive, got.Status)

		byId, err := store.GetById(ctx, created.ID)
		require.NoError(t, err)
		require.NotNil(t, byId)
		assert.Equal(t, "GZ2024004", byId.CertificateNumber)
	})

	t.Run("absent lookups are nil without error", func(t *testing.T) {
		store := newStore(t)

		got, err := store.GetByNumber(ctx, "NOPE")
		assert.NoError(t, err)
		assert.Nil(t, got)

		got, err = store.GetById(ctx, "missing-id")
		assert.NoError(t, err)
		assert.Nil(t, got)
	})

	t.Run("duplicate number is rejected by the store", func(t *testing.T) {
		store := newStore(t)

		_, err := store.Create(ctx, newCertificate("GZ2024001"))
		require.NoError(t, err)

		_, err = store.Create(ctx, newCertificate("GZ2024001"))
		assert.Error(t, err)

		list, err := store.List(ctx)
		require.NoError(t, err)
		assert.Len(t, list, 1)
	})

	t.Run("list keeps insertion order", func(t *testing.T) {
		store := newStore(t)

		list, err := store.List(ctx)
		require.NoError(t, err)
		assert.NotNil(t, list)
		assert.Empty(t, list)

		for _, n := range []string{"A1", "A2", "A3"} {
			_, err := store.Create(ctx, newCertificate(n))
			require.NoError(t, err)
		}

		list, err = store.List(ctx)
		require.NoError(t, err)
		require.Len(t, list, 3)
		assert.Equal(t, "A1", list[0].CertificateNumber)
		assert.Equal(t, "A3", list[2].CertificateNumber)
	})

	t.Run("partial update", func(t *testing.T) {
		store := newStore(t)
		created, err := store.Create(ctx, newCertificate("GZ2024002"))
		require.NoError(t, err)

		updated, err := store.Update(ctx, created.ID, model.CertificateUpdate{
			Status:         strPtr("revoked"),
			InstructorName: strPtr("Prof. Smith"),
		})
		require.NoError(t, err)
		require.NotNil(t, updated)

		assert.Equal(t, created.ID, updated.ID)
		assert.Equal(t, model.CertificateStatusRevoked, updated.Status)
		require.NotNil(t, updated.InstructorName)
		assert.Equal(t, "Prof. Smith", *updated.InstructorName)
		assert.Equal(t, "GZ2024002", updated.CertificateNumber)
		assert.Equal(t, "Jane Doe", updated.RecipientName)
		assert.Equal(t, "A", *updated.Grade)
		assert.True(t, created.IssueDate.Equal(updated.IssueDate))

		got, err := store.GetById(ctx, created.ID)
		require.NoError(t, err)
		assert.Equal(t, model.CertificateStatusRevoked, got.Status)

		same, err := store.Update(ctx, created.ID, model.CertificateUpdate{})
		require.NoError(t, err)
		assert.Equal(t, model.CertificateStatusRevoked, same.Status)
	})

	t.Run("update missing id", func(t *testing.T) {
		store := newStore(t)

		got, err := store.Update(ctx, "missing-id", model.CertificateUpdate{Grade: strPtr("B")})
		assert.NoError(t, err)
		assert.Nil(t, got)
	})

	t.Run("update onto an existing number", func(t *testing.T) {
		store := newStore(t)
		_, err := store.Create(ctx, newCertificate("N1"))
		require.NoError(t, err)
		second, err := store.Create(ctx, newCertificate("N2"))
		require.NoError(t, err)

		_, err = store.Update(ctx, second.ID, model.CertificateUpdate{CertificateNumber: strPtr("N1")})
		assert.Error(t, err)
	})

	t.Run("delete", func(t *testing.T) {
		store := newStore(t)
		created, err := store.Create(ctx, newCertificate("GZ2024003"))
		require.NoError(t, err)

		deleted, err := store.Delete(ctx, created.ID)
		require.NoError(t, err)
		assert.True(t, deleted)

		got, err := store.GetById(ctx, created.ID)
		require.NoError(t, err)
		assert.Nil(t, got)

		deleted, err = store.Delete(ctx, created.ID)
		require.NoError(t, err)
		assert.False(t, deleted)
	})
}

func TestMemoryStoreDuplicateSentinel(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryCertificateStore()

	_, err := store.Create(ctx, newCertificate("GZ1"))
	require.NoError(t, err)

	_, err = store.Create(ctx, newCertificate("GZ1"))
	assert.ErrorIs(t, err, ErrDuplicateCertificateNumber)
}

func TestMemoryStoreReturnsCopies(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryCertificateStore()

	created, err := store.Create(ctx, newCertificate("GZ1"))
	require.NoError(t, err)

	got, err := store.GetById(ctx, created.ID)
	require.NoError(t, err)
	got.RecipientName = "mutated"

	again, err := store.GetById(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Jane Doe", again.RecipientName)
}
