package service

import (
	"context"
	"sort"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/CS-LTU/com7033-assignment-MuhammadFaizButt/internal/store"
	"github.com/CS-LTU/com7033-assignment-MuhammadFaizButt/models"
)

// ─────────────────────────────────────────────
// Mock: store.UserRepository
// ─────────────────────────────────────────────

type mockUserRepository struct {
	createUserFn         func(ctx context.Context, user models.User) (models.User, error)
	findUserByUsernameFn func(ctx context.Context, username string) (models.User, error)
}

func (m *mockUserRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	if m.createUserFn != nil {
		return m.createUserFn(ctx, user)
	}
	return user, nil
}

func (m *mockUserRepository) FindUserByUsername(ctx context.Context, username string) (models.User, error) {
	if m.findUserByUsernameFn != nil {
		return m.findUserByUsernameFn(ctx, username)
	}
	return models.User{}, store.ErrNoUserWasFound
}

// ─────────────────────────────────────────────
// Mock: store.PatientRepository
// ─────────────────────────────────────────────

type mockPatientRepository struct {
	addFn        func(ctx context.Context, patient models.Patient) (int64, error)
	getByIDFn    func(ctx context.Context, id int64) (models.Patient, error)
	listFn       func(ctx context.Context, skip, limit int64) ([]models.Patient, error)
	updateFn     func(ctx context.Context, patient models.Patient) error
	deleteFn     func(ctx context.Context, id int64) (bool, error)
	searchFn     func(ctx context.Context, query string) ([]models.Patient, error)
	statisticsFn func(ctx context.Context) (models.PatientStatistics, error)
	replaceAllFn func(ctx context.Context, patients []models.Patient) (int, error)
}

func (m *mockPatientRepository) Add(ctx context.Context, patient models.Patient) (int64, error) {
	if m.addFn != nil {
		return m.addFn(ctx, patient)
	}
	return 1, nil
}

func (m *mockPatientRepository) GetByID(ctx context.Context, id int64) (models.Patient, error) {
	if m.getByIDFn != nil {
		return m.getByIDFn(ctx, id)
	}
	return models.Patient{}, store.ErrPatientNotFound
}

func (m *mockPatientRepository) List(ctx context.Context, skip, limit int64) ([]models.Patient, error) {
	if m.listFn != nil {
		return m.listFn(ctx, skip, limit)
	}
	return nil, nil
}

func (m *mockPatientRepository) Update(ctx context.Context, patient models.Patient) error {
	if m.updateFn != nil {
		return m.updateFn(ctx, patient)
	}
	return nil
}

func (m *mockPatientRepository) Delete(ctx context.Context, id int64) (bool, error) {
	if m.deleteFn != nil {
		return m.deleteFn(ctx, id)
	}
	return false, nil
}

func (m *mockPatientRepository) Search(ctx context.Context, query string) ([]models.Patient, error) {
	if m.searchFn != nil {
		return m.searchFn(ctx, query)
	}
	return nil, nil
}

func (m *mockPatientRepository) Statistics(ctx context.Context) (models.PatientStatistics, error) {
	if m.statisticsFn != nil {
		return m.statisticsFn(ctx)
	}
	return models.PatientStatistics{}, nil
}

func (m *mockPatientRepository) ReplaceAll(ctx context.Context, patients []models.Patient) (int, error) {
	if m.replaceAllFn != nil {
		return m.replaceAllFn(ctx, patients)
	}
	return len(patients), nil
}

// ─────────────────────────────────────────────
// In-memory store.PatientRepository
// ─────────────────────────────────────────────

// memPatientRepository is a map-backed repository used for scenario tests
// that need real id allocation, list ordering, and search matching.
type memPatientRepository struct {
	mu       sync.Mutex
	patients map[int64]models.Patient
}

func newMemPatientRepository() *memPatientRepository {
	return &memPatientRepository{patients: make(map[int64]models.Patient)}
}

func (m *memPatientRepository) Add(ctx context.Context, patient models.Patient) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	var maxID int64
	for id := range m.patients {
		if id > maxID {
			maxID = id
		}
	}

	patient.ID = maxID + 1
	m.patients[patient.ID] = patient
	return patient.ID, nil
}

func (m *memPatientRepository) GetByID(ctx context.Context, id int64) (models.Patient, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	patient, ok := m.patients[id]
	if !ok {
		return models.Patient{}, store.ErrPatientNotFound
	}
	return patient, nil
}

func (m *memPatientRepository) List(ctx context.Context, skip, limit int64) ([]models.Patient, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	all := make([]models.Patient, 0, len(m.patients))
	for _, p := range m.patients {
		all = append(all, p)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].ID < all[j].ID })

	if skip >= int64(len(all)) {
		return []models.Patient{}, nil
	}
	all = all[skip:]
	if limit < int64(len(all)) {
		all = all[:limit]
	}
	return all, nil
}

func (m *memPatientRepository) Update(ctx context.Context, patient models.Patient) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.patients[patient.ID]; !ok {
		return store.ErrPatientNotFound
	}
	m.patients[patient.ID] = patient
	return nil
}

func (m *memPatientRepository) Delete(ctx context.Context, id int64) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.patients[id]; !ok {
		return false, nil
	}
	delete(m.patients, id)
	return true, nil
}

func (m *memPatientRepository) Search(ctx context.Context, query string) ([]models.Patient, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	q := strings.ToLower(query)
	matched := make([]models.Patient, 0)
	for _, p := range m.patients {
		fields := []string{strconv.FormatInt(p.ID, 10), p.Gender, p.WorkType, p.SmokingStatus}
		for _, field := range fields {
			if strings.Contains(strings.ToLower(field), q) {
				matched = append(matched, p)
				break
			}
		}
	}

	sort.Slice(matched, func(i, j int) bool { return matched[i].ID < matched[j].ID })
	if len(matched) > store.SearchResultLimit {
		matched = matched[:store.SearchResultLimit]
	}
	return matched, nil
}

func (m *memPatientRepository) Statistics(ctx context.Context) (models.PatientStatistics, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	stats := models.PatientStatistics{TotalPatients: int64(len(m.patients))}
	for _, p := range m.patients {
		if p.Stroke == 1 {
			stats.StrokePatients++
		}
	}
	stats.NonStrokePatients = stats.TotalPatients - stats.StrokePatients
	if stats.TotalPatients > 0 {
		stats.StrokePercentage = float64(stats.StrokePatients) / float64(stats.TotalPatients) * 100
	}
	return stats, nil
}

func (m *memPatientRepository) ReplaceAll(ctx context.Context, patients []models.Patient) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.patients = make(map[int64]models.Patient, len(patients))
	for _, p := range patients {
		m.patients[p.ID] = p
	}
	return len(patients), nil
}

// ─────────────────────────────────────────────
// In-memory store.SessionStore
// ─────────────────────────────────────────────

// memSessionStore is a map-backed session store. TTL eviction is not
// simulated; expiry decisions under test go through Session.ExpiredAt.
type memSessionStore struct {
	mu       sync.Mutex
	sessions map[string]models.Session

	saveErr   error
	getErr    error
	deleteErr error
}

func newMemSessionStore() *memSessionStore {
	return &memSessionStore{sessions: make(map[string]models.Session)}
}

func (m *memSessionStore) Save(ctx context.Context, session models.Session, ttl time.Duration) error {
	if m.saveErr != nil {
		return m.saveErr
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.sessions[session.SessionID] = session
	return nil
}

func (m *memSessionStore) Get(ctx context.Context, sessionID string) (models.Session, error) {
	if m.getErr != nil {
		return models.Session{}, m.getErr
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	session, ok := m.sessions[sessionID]
	if !ok {
		return models.Session{}, store.ErrSessionNotFound
	}
	return session, nil
}

func (m *memSessionStore) Delete(ctx context.Context, sessionID string) error {
	if m.deleteErr != nil {
		return m.deleteErr
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.sessions, sessionID)
	return nil
}
