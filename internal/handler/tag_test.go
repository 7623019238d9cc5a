package handler_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/DavidJulianGit/BJJTracker/internal/domain"
)

func tagFixture(userID uuid.UUID) domain.Tag {
	return domain.Tag{
		ID:        uuid.New(),
		UserID:    userID,
		Name:      "Gi",
		CreatedAt: time.Now().UTC(),
		UpdatedAt: time.Now().UTC(),
	}
}

func TestListTags_200(t *testing.T) {
	userID := uuid.New()

	router := newTestRouter(userID, serverMocks{tags: &mockTagServicer{
		list: func(_ context.Context, gotUser uuid.UUID) ([]domain.Tag, error) {
			assert.Equal(t, userID, gotUser)
			return []domain.Tag{tagFixture(userID)}, nil
		},
	}})

	req := httptest.NewRequest(http.MethodGet, "/api/tags", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp []domain.Tag
	decodeBody(t, rec.Body, &resp)
	assert.Len(t, resp, 1)
}

func TestCreateTag_201(t *testing.T) {
	userID := uuid.New()
	fixture := tagFixture(userID)

	router := newTestRouter(userID, serverMocks{tags: &mockTagServicer{
		create: func(_ context.Context, _ uuid.UUID, name string) (domain.Tag, error) {
			assert.Equal(t, "gi", name, "normalization happens in the service, not the handler")
			return fixture, nil
		},
	}})

	req := httptest.NewRequest(http.MethodPost, "/api/tags", jsonBody(t, map[string]string{"name": "gi"}))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusCreated, rec.Code)
}

func TestCreateTag_400Duplicate(t *testing.T) {
	router := newTestRouter(uuid.New(), serverMocks{tags: &mockTagServicer{
		create: func(_ context.Context, _ uuid.UUID, _ string) (domain.Tag, error) {
			return domain.Tag{}, domain.ErrDuplicateName
		},
	}})

	req := httptest.NewRequest(http.MethodPost, "/api/tags", jsonBody(t, map[string]string{"name": "Gi"}))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var resp struct {
		Error struct {
			Code string `json:"code"`
		} `json:"error"`
	}
	decodeBody(t, rec.Body, &resp)
	assert.Equal(t, "duplicate_name", resp.Error.Code)
}

func TestCreateTag_400UnknownField(t *testing.T) {
	router := newTestRouter(uuid.New(), serverMocks{tags: &mockTagServicer{}})

	req := httptest.NewRequest(http.MethodPost, "/api/tags", jsonBody(t, map[string]string{"nmae": "Gi"}))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestRenameTag_200(t *testing.T) {
	userID := uuid.New()
	fixture := tagFixture(userID)

	router := newTestRouter(userID, serverMocks{tags: &mockTagServicer{
		rename: func(_ context.Context, _, tagID uuid.UUID, name string) (domain.Tag, error) {
			assert.Equal(t, fixture.ID, tagID)
			renamed := fixture
			renamed.Name = name
			return renamed, nil
		},
	}})

	req := httptest.NewRequest(http.MethodPut, "/api/tags/"+fixture.ID.String(), jsonBody(t, map[string]string{"name": "No-Gi"}))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRenameTag_404(t *testing.T) {
	router := newTestRouter(uuid.New(), serverMocks{tags: &mockTagServicer{
		rename: func(_ context.Context, _, _ uuid.UUID, _ string) (domain.Tag, error) {
			return domain.Tag{}, domain.ErrNotFound
		},
	}})

	req := httptest.NewRequest(http.MethodPut, "/api/tags/"+uuid.NewString(), jsonBody(t, map[string]string{"name": "Gi"}))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestDeleteTag_200(t *testing.T) {
	userID := uuid.New()
	target := uuid.New()

	router := newTestRouter(userID, serverMocks{tags: &mockTagServicer{
		softDelete: func(_ context.Context, _, tagID uuid.UUID) error {
			assert.Equal(t, target, tagID)
			return nil
		},
	}})

	req := httptest.NewRequest(http.MethodDelete, "/api/tags/"+target.String(), nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}
