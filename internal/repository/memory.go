package repository

import (
	"context"
	"sync"
	"time"

	"github.com/SeakMengs/CertVerify/internal/model"
	"github.com/google/uuid"
)

// MemoryCertificateStore keeps certificates in insertion order. It enforces
// the same unique certificate number rule as the database index.
type MemoryCertificateStore struct {
	mu    sync.RWMutex
	order []string
	byId  map[string]model.Certificate
}

var _ CertificateStore = (*MemoryCertificateStore)(nil)

func NewMemoryCertificateStore() *MemoryCertificateStore {
	return &MemoryCertificateStore{byId: map[string]model.Certificate{}}
}

func (m *MemoryCertificateStore) GetById(ctx context.Context, id string) (*model.Certificate, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	c, ok := m.byId[id]
	if !ok {
		return nil, nil
	}
	return &c, nil
}

func (m *MemoryCertificateStore) GetByNumber(ctx context.Context, number string) (*model.Certificate, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if c, ok := m.findByNumber(number); ok {
		return &c, nil
	}
	return nil, nil
}

func (m *MemoryCertificateStore) Create(ctx context.Context, certificate *model.Certificate) (*model.Certificate, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.findByNumber(certificate.CertificateNumber); ok {
		return nil, ErrDuplicateCertificateNumber
	}

	now := time.Now()
	certificate.ID = uuid.NewString()
	certificate.CreatedAt = now
	certificate.UpdatedAt = now
	if certificate.Status == "" {
		certificate.Status = model.CertificateStatusActive
	}

	m.byId[certificate.ID] = *certificate
	m.order = append(m.order, certificate.ID)

	return certificate, nil
}

func (m *MemoryCertificateStore) List(ctx context.Context) ([]model.Certificate, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]model.Certificate, 0, len(m.order))
	for _, id := range m.order {
		out = append(out, m.byId[id])
	}
	return out, nil
}

func (m *MemoryCertificateStore) Update(ctx context.Context, id string, update model.CertificateUpdate) (*model.Certificate, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	c, ok := m.byId[id]
	if !ok {
		return nil, nil
	}

	if err := update.Apply(&c); err != nil {
		return nil, err
	}

	if other, ok := m.findByNumber(c.CertificateNumber); ok && other.ID != id {
		return nil, ErrDuplicateCertificateNumber
	}

	c.UpdatedAt = time.Now()
	m.byId[id] = c
	return &c, nil
}

func (m *MemoryCertificateStore) Delete(ctx context.Context, id string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.byId[id]; !ok {
		return false, nil
	}

	delete(m.byId, id)
	for i, oid := range m.order {
		if oid == id {
			m.order = append(m.order[:i], m.order[i+1:]...)
			break
		}
	}
	return true, nil
}

// caller holds mu
func (m *MemoryCertificateStore) findByNumber(number string) (model.Certificate, bool) {
	for _, id := range m.order {
		if c := m.byId[id]; c.CertificateNumber == number {
			return c, true
		}
	}
	return model.Certificate{}, false
}
