package handler_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/DavidJulianGit/BJJTracker/internal/domain"
	"github.com/DavidJulianGit/BJJTracker/internal/handler"
	"github.com/DavidJulianGit/BJJTracker/internal/middleware"
	"github.com/DavidJulianGit/BJJTracker/internal/service"
)

// The mocks below are hand-written test doubles for the Servicer interfaces.
// Each method is a function field — set only the ones your test needs.

type mockAuthServicer struct {
	signup func(ctx context.Context, in service.SignupInput) (domain.User, string, error)
	login  func(ctx context.Context, email, password string) (domain.User, string, error)
}

func (m *mockAuthServicer) Signup(ctx context.Context, in service.SignupInput) (domain.User, string, error) {
	return m.signup(ctx, in)
}
func (m *mockAuthServicer) Login(ctx context.Context, email, password string) (domain.User, string, error) {
	return m.login(ctx, email, password)
}

type mockUserServicer struct {
	get            func(ctx context.Context, id uuid.UUID) (domain.User, error)
	updateProfile  func(ctx context.Context, id uuid.UUID, update service.ProfileUpdate) (domain.User, error)
	changePassword func(ctx context.Context, id uuid.UUID, newPassword string) error
	delete         func(ctx context.Context, id uuid.UUID) error
}

func (m *mockUserServicer) Get(ctx context.Context, id uuid.UUID) (domain.User, error) {
	return m.get(ctx, id)
}
func (m *mockUserServicer) UpdateProfile(ctx context.Context, id uuid.UUID, update service.ProfileUpdate) (domain.User, error) {
	return m.updateProfile(ctx, id, update)
}
func (m *mockUserServicer) ChangePassword(ctx context.Context, id uuid.UUID, newPassword string) error {
	return m.changePassword(ctx, id, newPassword)
}
func (m *mockUserServicer) Delete(ctx context.Context, id uuid.UUID) error {
	return m.delete(ctx, id)
}

type mockTagServicer struct {
	list       func(ctx context.Context, userID uuid.UUID) ([]domain.Tag, error)
	create     func(ctx context.Context, userID uuid.UUID, name string) (domain.Tag, error)
	rename     func(ctx context.Context, userID, tagID uuid.UUID, name string) (domain.Tag, error)
	softDelete func(ctx context.Context, userID, tagID uuid.UUID) error
}

func (m *mockTagServicer) List(ctx context.Context, userID uuid.UUID) ([]domain.Tag, error) {
	return m.list(ctx, userID)
}
func (m *mockTagServicer) Create(ctx context.Context, userID uuid.UUID, name string) (domain.Tag, error) {
	return m.create(ctx, userID, name)
}
func (m *mockTagServicer) Rename(ctx context.Context, userID, tagID uuid.UUID, name string) (domain.Tag, error) {
	return m.rename(ctx, userID, tagID, name)
}
func (m *mockTagServicer) SoftDelete(ctx context.Context, userID, tagID uuid.UUID) error {
	return m.softDelete(ctx, userID, tagID)
}

type mockTechniqueServicer struct {
	list       func(ctx context.Context, userID uuid.UUID) ([]domain.Technique, error)
	get        func(ctx context.Context, userID, techniqueID uuid.UUID) (domain.Technique, error)
	create     func(ctx context.Context, userID uuid.UUID, draft domain.TechniqueDraft) (domain.Technique, error)
	update     func(ctx context.Context, userID, techniqueID uuid.UUID, draft domain.TechniqueDraft) (domain.Technique, error)
	restore    func(ctx context.Context, userID, techniqueID uuid.UUID) (domain.Technique, error)
	replace    func(ctx context.Context, userID, targetID uuid.UUID, draft domain.TechniqueDraft) (domain.Technique, error)
	softDelete func(ctx context.Context, userID, techniqueID uuid.UUID) error
}

func (m *mockTechniqueServicer) List(ctx context.Context, userID uuid.UUID) ([]domain.Technique, error) {
	return m.list(ctx, userID)
}
func (m *mockTechniqueServicer) Get(ctx context.Context, userID, techniqueID uuid.UUID) (domain.Technique, error) {
	return m.get(ctx, userID, techniqueID)
}
func (m *mockTechniqueServicer) Create(ctx context.Context, userID uuid.UUID, draft domain.TechniqueDraft) (domain.Technique, error) {
	return m.create(ctx, userID, draft)
}
func (m *mockTechniqueServicer) Update(ctx context.Context, userID, techniqueID uuid.UUID, draft domain.TechniqueDraft) (domain.Technique, error) {
	return m.update(ctx, userID, techniqueID, draft)
}
func (m *mockTechniqueServicer) Restore(ctx context.Context, userID, techniqueID uuid.UUID) (domain.Technique, error) {
	return m.restore(ctx, userID, techniqueID)
}
func (m *mockTechniqueServicer) Replace(ctx context.Context, userID, targetID uuid.UUID, draft domain.TechniqueDraft) (domain.Technique, error) {
	return m.replace(ctx, userID, targetID, draft)
}
func (m *mockTechniqueServicer) SoftDelete(ctx context.Context, userID, techniqueID uuid.UUID) error {
	return m.softDelete(ctx, userID, techniqueID)
}

type mockSessionServicer struct {
	list   func(ctx context.Context, userID uuid.UUID) ([]domain.TrainingSession, error)
	get    func(ctx context.Context, userID, sessionID uuid.UUID) (domain.TrainingSession, error)
	create func(ctx context.Context, session domain.TrainingSession) (domain.TrainingSession, error)
	update func(ctx context.Context, session domain.TrainingSession) (domain.TrainingSession, error)
	delete func(ctx context.Context, userID, sessionID uuid.UUID) error
}

func (m *mockSessionServicer) List(ctx context.Context, userID uuid.UUID) ([]domain.TrainingSession, error) {
	return m.list(ctx, userID)
}
func (m *mockSessionServicer) Get(ctx context.Context, userID, sessionID uuid.UUID) (domain.TrainingSession, error) {
	return m.get(ctx, userID, sessionID)
}
func (m *mockSessionServicer) Create(ctx context.Context, session domain.TrainingSession) (domain.TrainingSession, error) {
	return m.create(ctx, session)
}
func (m *mockSessionServicer) Update(ctx context.Context, session domain.TrainingSession) (domain.TrainingSession, error) {
	return m.update(ctx, session)
}
func (m *mockSessionServicer) Delete(ctx context.Context, userID, sessionID uuid.UUID) error {
	return m.delete(ctx, userID, sessionID)
}

type mockStatsServicer struct {
	summary func(ctx context.Context, userID uuid.UUID, window domain.StatsWindow, topTechniques int) (domain.StatsSummary, error)
}

func (m *mockStatsServicer) Summary(ctx context.Context, userID uuid.UUID, window domain.StatsWindow, topTechniques int) (domain.StatsSummary, error) {
	return m.summary(ctx, userID, window, topTechniques)
}

// compile-time checks: the mocks must satisfy the handler interfaces.
var (
	_ handler.AuthServicer      = (*mockAuthServicer)(nil)
	_ handler.UserServicer      = (*mockUserServicer)(nil)
	_ handler.TagServicer       = (*mockTagServicer)(nil)
	_ handler.TechniqueServicer = (*mockTechniqueServicer)(nil)
	_ handler.SessionServicer   = (*mockSessionServicer)(nil)
	_ handler.StatsServicer     = (*mockStatsServicer)(nil)
)

// ---- helpers ---------------------------------------------------------------

// serverMocks bundles the per-resource doubles; zero-value fields stay nil,
// which is fine as long as the test never routes to them.
type serverMocks struct {
	auth       *mockAuthServicer
	users      *mockUserServicer
	tags       *mockTagServicer
	techniques *mockTechniqueServicer
	sessions   *mockSessionServicer
	stats      *mockStatsServicer
}

// newTestRouter builds the real route tree with the mocks plugged in. The
// auth middleware is replaced by one that stamps userID into the context, and
// the bootstrap gate passes requests straight through — both are covered by
// their own package's tests.
func newTestRouter(userID uuid.UUID, m serverMocks) http.Handler {
	srv := handler.NewServer(m.auth, m.users, m.tags, m.techniques, m.sessions, m.stats)

	authAs := func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			next.ServeHTTP(w, r.WithContext(middleware.WithUserID(r.Context(), userID)))
		})
	}
	passthrough := func(next http.Handler) http.Handler { return next }

	return srv.Routes(authAs, passthrough)
}

func jsonBody(t *testing.T, v any) *bytes.Buffer {
	t.Helper()
	b, err := json.Marshal(v)
	require.NoError(t, err)
	return bytes.NewBuffer(b)
}

func decodeBody(t *testing.T, body *bytes.Buffer, into any) {
	t.Helper()
	require.NoError(t, json.NewDecoder(body).Decode(into))
}
