package http

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/CS-LTU/com7033-assignment-MuhammadFaizButt/internal/logger"
	"github.com/CS-LTU/com7033-assignment-MuhammadFaizButt/internal/service"
	"github.com/CS-LTU/com7033-assignment-MuhammadFaizButt/models"
	"github.com/stretchr/testify/require"
)

// testToken is the bearer token the fake session service accepts.
const testToken = "good-token"

func testSession() models.Session {
	return models.Session{SessionID: "session-1", UserID: 7, Username: "john_doe"}
}

// ─────────────────────────────────────────────
// Mock: service.AuthService
// ─────────────────────────────────────────────

type mockAuthService struct {
	registerFn func(ctx context.Context, req models.RegisterRequest) (models.User, error)
	loginFn    func(ctx context.Context, req models.LoginRequest) (models.User, error)
}

func (m *mockAuthService) Register(ctx context.Context, req models.RegisterRequest) (models.User, error) {
	if m.registerFn != nil {
		return m.registerFn(ctx, req)
	}
	return models.User{}, nil
}

func (m *mockAuthService) Login(ctx context.Context, req models.LoginRequest) (models.User, error) {
	if m.loginFn != nil {
		return m.loginFn(ctx, req)
	}
	return models.User{}, service.ErrInvalidCredentials
}

// ─────────────────────────────────────────────
// Mock: service.SessionService
// ─────────────────────────────────────────────

type mockSessionService struct {
	beginFn   func(ctx context.Context, user models.User) (models.Token, error)
	resolveFn func(ctx context.Context, tokenString string) (models.Session, error)
	endFn     func(ctx context.Context, sessionID string) error
}

func (m *mockSessionService) Begin(ctx context.Context, user models.User) (models.Token, error) {
	if m.beginFn != nil {
		return m.beginFn(ctx, user)
	}
	return models.Token{SignedString: testToken}, nil
}

func (m *mockSessionService) Resolve(ctx context.Context, tokenString string) (models.Session, error) {
	if m.resolveFn != nil {
		return m.resolveFn(ctx, tokenString)
	}
	if tokenString == testToken {
		return testSession(), nil
	}
	return models.Session{}, service.ErrUnauthenticated
}

func (m *mockSessionService) End(ctx context.Context, sessionID string) error {
	if m.endFn != nil {
		return m.endFn(ctx, sessionID)
	}
	return nil
}

// ─────────────────────────────────────────────
// Mock: service.PatientService
// ─────────────────────────────────────────────

type mockPatientService struct {
	addFn         func(ctx context.Context, patient models.Patient) (models.Patient, error)
	getByIDFn     func(ctx context.Context, id int64) (models.Patient, error)
	listFn        func(ctx context.Context, skip, limit int64) ([]models.Patient, error)
	updateFn      func(ctx context.Context, id int64, update models.PatientUpdate) (models.Patient, error)
	deleteFn      func(ctx context.Context, id int64) error
	searchFn      func(ctx context.Context, query string) ([]models.Patient, error)
	statisticsFn  func(ctx context.Context) (models.PatientStatistics, error)
	loadDatasetFn func(ctx context.Context, rows []map[string]string) (int, error)
}

func (m *mockPatientService) Add(ctx context.Context, patient models.Patient) (models.Patient, error) {
	if m.addFn != nil {
		return m.addFn(ctx, patient)
	}
	return patient, nil
}

func (m *mockPatientService) GetByID(ctx context.Context, id int64) (models.Patient, error) {
	if m.getByIDFn != nil {
		return m.getByIDFn(ctx, id)
	}
	return models.Patient{ID: id}, nil
}

func (m *mockPatientService) List(ctx context.Context, skip, limit int64) ([]models.Patient, error) {
	if m.listFn != nil {
		return m.listFn(ctx, skip, limit)
	}
	return []models.Patient{}, nil
}

func (m *mockPatientService) Update(ctx context.Context, id int64, update models.PatientUpdate) (models.Patient, error) {
	if m.updateFn != nil {
		return m.updateFn(ctx, id, update)
	}
	return models.Patient{ID: id}, nil
}

func (m *mockPatientService) Delete(ctx context.Context, id int64) error {
	if m.deleteFn != nil {
		return m.deleteFn(ctx, id)
	}
	return nil
}

func (m *mockPatientService) Search(ctx context.Context, query string) ([]models.Patient, error) {
	if m.searchFn != nil {
		return m.searchFn(ctx, query)
	}
	return []models.Patient{}, nil
}

func (m *mockPatientService) Statistics(ctx context.Context) (models.PatientStatistics, error) {
	if m.statisticsFn != nil {
		return m.statisticsFn(ctx)
	}
	return models.PatientStatistics{}, nil
}

func (m *mockPatientService) LoadDataset(ctx context.Context, rows []map[string]string) (int, error) {
	if m.loadDatasetFn != nil {
		return m.loadDatasetFn(ctx, rows)
	}
	return len(rows), nil
}

// ─────────────────────────────────────────────
// Helpers
// ─────────────────────────────────────────────

type testServices struct {
	auth     *mockAuthService
	sessions *mockSessionService
	patients *mockPatientService
}

func newTestHandler(t *testing.T) (*Handler, *testServices) {
	t.Helper()

	svcs := &testServices{
		auth:     &mockAuthService{},
		sessions: &mockSessionService{},
		patients: &mockPatientService{},
	}

	h := NewHandler(&service.Services{
		AuthService:    svcs.auth,
		SessionService: svcs.sessions,
		PatientService: svcs.patients,
	}, logger.Nop())

	return h, svcs
}

// perform routes the request through the full middleware chain.
func perform(t *testing.T, h *Handler, req *http.Request) *httptest.ResponseRecorder {
	t.Helper()

	recorder := httptest.NewRecorder()
	h.Init().ServeHTTP(recorder, req)
	return recorder
}

func authorized(req *http.Request) *http.Request {
	req.Header.Set("Authorization", "Bearer "+testToken)
	return req
}

func readBody(t *testing.T, recorder *httptest.ResponseRecorder) string {
	t.Helper()

	body, err := io.ReadAll(recorder.Body)
	require.NoError(t, err)
	return string(body)
}
