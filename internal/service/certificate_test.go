package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"

	"github.com/SeakMengs/CertVerify/internal/constant"
	"github.com/SeakMengs/CertVerify/internal/model"
	"github.com/SeakMengs/CertVerify/internal/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func input(number string) model.CertificateInput {
	return model.CertificateInput{
		CertificateNumber: number,
		RecipientName:     "Jane Doe",
		CourseName:        "Web Development Fundamentals",
		IssueDate:         "2024-01-20",
		CompletionDate:    "2024-01-15",
		Grade:             strPtr("A"),
		InstructorName:    strPtr("Prof. Smith"),
	}
}

// countingStore records how many lookups reached the store.
type countingStore struct {
	repository.CertificateStore
	mu      sync.Mutex
	lookups int
}

func (c *countingStore) GetByNumber(ctx context.Context, number string) (*model.Certificate, error) {
	c.mu.Lock()
	c.lookups++
	c.mu.Unlock()
	return c.CertificateStore.GetByNumber(ctx, number)
}

var errBackend = errors.New("connection refused")

type failingStore struct {
	repository.CertificateStore
}

func (failingStore) GetByNumber(ctx context.Context, number string) (*model.Certificate, error) {
	return nil, errBackend
}

func (failingStore) Delete(ctx context.Context, id string) (bool, error) {
	return false, errBackend
}

func TestVerify(t *testing.T) {
	ctx := context.Background()
	store := &countingStore{CertificateStore: repository.NewMemoryCertificateStore()}
	svc := NewCertificateService(store, nil)

	active, err := svc.Create(ctx, input("GZ-ACTIVE"))
	require.NoError(t, err)

	revokedIn := input("GZ-REVOKED")
	revokedIn.Status = "revoked"
	_, err = svc.Create(ctx, revokedIn)
	require.NoError(t, err)

	expiredIn := input("GZ-EXPIRED")
	expiredIn.Status = "expired"
	_, err = svc.Create(ctx, expiredIn)
	require.NoError(t, err)

	t.Run("active is valid with the stored record", func(t *testing.T) {
		res := svc.Verify(ctx, "GZ-ACTIVE")
		assert.Equal(t, constant.VerificationValid, res.Status)
		require.NotNil(t, res.Certificate)
		assert.Equal(t, *active, *res.Certificate)
	})

	for _, number := range []string{"GZ-REVOKED", "GZ-EXPIRED"} {
		t.Run(number+" is inactive with the record", func(t *testing.T) {
			res := svc.Verify(ctx, number)
			assert.Equal(t, constant.VerificationInactive, res.Status)
			require.NotNil(t, res.Certificate)
			assert.Equal(t, number, res.Certificate.CertificateNumber)
		})
	}

	t.Run("unknown numbers are not found", func(t *testing.T) {
		for i := 0; i < 20; i++ {
			res := svc.Verify(ctx, fmt.Sprintf("UNKNOWN-%d", i))
			assert.Equal(t, constant.VerificationNotFound, res.Status)
			assert.Nil(t, res.Certificate)
		}
	})

	t.Run("blank input short-circuits", func(t *testing.T) {
		before := store.lookups
		for _, n := range []string{"", "   "} {
			res := svc.Verify(ctx, n)
			assert.Equal(t, constant.VerificationInvalidInput, res.Status)
		}
		assert.Equal(t, before, store.lookups)
	})

	t.Run("storage fault is a generic error", func(t *testing.T) {
		res := NewCertificateService(failingStore{}, nil).Verify(ctx, "GZ-ACTIVE")
		assert.Equal(t, constant.VerificationError, res.Status)
		assert.Nil(t, res.Certificate)
	})
}

func TestCreate(t *testing.T) {
	ctx := context.Background()

	t.Run("create then get by number equals input except id", func(t *testing.T) {
		store := repository.NewMemoryCertificateStore()
		svc := NewCertificateService(store, nil)

		created, err := svc.Create(ctx, input("GZ2024004"))
		require.NoError(t, err)
		assert.NotEmpty(t, created.ID)

		got, err := store.GetByNumber(ctx, "GZ2024004")
		require.NoError(t, err)
		require.NotNil(t, got)

		want, err := input("GZ2024004").ToModel()
		require.NoError(t, err)
		want.BaseModel = got.BaseModel
		assert.Equal(t, *want, *got)
		assert.Equal(t, model.CertificateStatusActive, got.Status)
	})

	t.Run("duplicate number is a conflict and keeps one record", func(t *testing.T) {
		store := repository.NewMemoryCertificateStore()
		svc := NewCertificateService(store, nil)

		_, err := svc.Create(ctx, input("GZ2024001"))
		require.NoError(t, err)

		second := input("GZ2024001")
		second.RecipientName = "Someone Else"
		_, err = svc.Create(ctx, second)
		assert.ErrorIs(t, err, ErrDuplicateCertificateNumber)

		list, err := store.List(ctx)
		require.NoError(t, err)
		require.Len(t, list, 1)
		assert.Equal(t, "Jane Doe", list[0].RecipientName)
	})

	t.Run("validation error", func(t *testing.T) {
		svc := NewCertificateService(repository.NewMemoryCertificateStore(), nil)

		in := input("GZ1")
		in.CompletionDate = ""
		_, err := svc.Create(ctx, in)

		var ve *ValidationError
		assert.ErrorAs(t, err, &ve)
	})

	t.Run("storage fault propagates", func(t *testing.T) {
		svc := NewCertificateService(failingStore{}, nil)

		_, err := svc.Create(ctx, input("GZ1"))
		assert.ErrorIs(t, err, errBackend)
	})

	// The pre-check and the insert are separate calls. Concurrent creates with
	// one number may all pass the pre-check; the store constraint must still
	// leave exactly one record.
	t.Run("concurrent duplicate creates leave one record", func(t *testing.T) {
		store := repository.NewMemoryCertificateStore()
		svc := NewCertificateService(store, nil)

		var wg sync.WaitGroup
		errs := make([]error, 8)
		for i := range errs {
			wg.Add(1)
			go func(i int) {
				defer wg.Done()
				_, errs[i] = svc.Create(ctx, input("GZ-RACE"))
			}(i)
		}
		wg.Wait()

		succeeded := 0
		for _, err := range errs {
			if err == nil {
				succeeded++
			} else {
				assert.ErrorIs(t, err, ErrDuplicateCertificateNumber)
			}
		}
		assert.Equal(t, 1, succeeded)

		list, err := store.List(ctx)
		require.NoError(t, err)
		assert.Len(t, list, 1)
	})
}

func TestUpdate(t *testing.T) {
	ctx := context.Background()
	svc := NewCertificateService(repository.NewMemoryCertificateStore(), nil)

	created, err := svc.Create(ctx, input("GZ2024002"))
	require.NoError(t, err)
	other, err := svc.Create(ctx, input("GZ2024003"))
	require.NoError(t, err)

	t.Run("only provided fields change", func(t *testing.T) {
		updated, err := svc.Update(ctx, created.ID, model.CertificateUpdate{
			RecipientName: strPtr("Emily Davis"),
			Status:        strPtr("expired"),
		})
		require.NoError(t, err)

		want := *created
		want.RecipientName = "Emily Davis"
		want.Status = model.CertificateStatusExpired
		want.UpdatedAt = updated.UpdatedAt
		assert.Equal(t, want, *updated)

		got, err := svc.Get(ctx, created.ID)
		require.NoError(t, err)
		assert.Equal(t, *updated, *got)
	})

	t.Run("missing id", func(t *testing.T) {
		_, err := svc.Update(ctx, "missing", model.CertificateUpdate{Grade: strPtr("B")})
		assert.ErrorIs(t, err, ErrCertificateNotFound)

		_, err = svc.Get(ctx, "missing")
		assert.ErrorIs(t, err, ErrCertificateNotFound)
	})

	t.Run("invalid status", func(t *testing.T) {
		_, err := svc.Update(ctx, created.ID, model.CertificateUpdate{Status: strPtr("archived")})
		var ve *ValidationError
		assert.ErrorAs(t, err, &ve)
	})

	t.Run("number collision", func(t *testing.T) {
		_, err := svc.Update(ctx, other.ID, model.CertificateUpdate{CertificateNumber: strPtr("GZ2024002")})
		assert.ErrorIs(t, err, ErrDuplicateCertificateNumber)
	})
}

func TestDelete(t *testing.T) {
	ctx := context.Background()
	svc := NewCertificateService(repository.NewMemoryCertificateStore(), nil)

	created, err := svc.Create(ctx, input("GZ2024005"))
	require.NoError(t, err)

	deleted, err := svc.Delete(ctx, created.ID)
	require.NoError(t, err)
	assert.True(t, deleted)

	_, err = svc.Get(ctx, created.ID)
	assert.ErrorIs(t, err, ErrCertificateNotFound)

	deleted, err = svc.Delete(ctx, created.ID)
	require.NoError(t, err)
	assert.False(t, deleted)

	_, err = NewCertificateService(failingStore{}, nil).Delete(ctx, "any")
	assert.ErrorIs(t, err, errBackend)
}
