package httpadapter_test

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	httpadapter "keyword-dashboard/internal/adapter/http"
	"keyword-dashboard/internal/core/aggregate"
	"keyword-dashboard/internal/core/domain"
	"keyword-dashboard/internal/core/port"
	"keyword-dashboard/internal/core/port/mocks"
)

func newTestHandler(t *testing.T) (*mocks.MockKeywordUseCase, http.Handler) {
	t.Helper()
	svc := mocks.NewMockKeywordUseCase(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return svc, httpadapter.NewHandler(svc, logger, httpadapter.WithRequestTimeout(time.Second)).Router()
}

func do(t *testing.T, h http.Handler, method, target, body string) *httptest.ResponseRecorder {
	t.Helper()
	var rd io.Reader
	if body != "" {
		rd = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, rd)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	return w
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &v), w.Body.String())
	return v
}

func TestCreateKeyword(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		svc, h := newTestHandler(t)
		id := uuid.New()
		svc.EXPECT().
			CreateKeyword(mock.Anything, port.CreateKeywordReq{Term: "shoes", MatchType: "Exact", Campaign: "Summer"}).
			Return(&domain.Keyword{ID: id}, nil)

		w := do(t, h, http.MethodPost, "/api/v1/keywords", `{"term":"shoes","matchType":"Exact","campaign":"Summer"}`)

		assert.Equal(t, http.StatusOK, w.Code)
		body := decode[map[string]any](t, w)
		assert.Equal(t, true, body["success"])
		assert.Equal(t, id.String(), body["keywordId"])
	})

	t.Run("validation error is 400", func(t *testing.T) {
		svc, h := newTestHandler(t)
		svc.EXPECT().CreateKeyword(mock.Anything, mock.Anything).
			Return(nil, &domain.ValidationError{Err: errors.New("term: cannot be blank")})

		w := do(t, h, http.MethodPost, "/api/v1/keywords", `{"term":"","matchType":"Exact","campaign":"Summer"}`)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, decode[map[string]string](t, w)["error"], "term")
	})

	t.Run("unknown field is 400 without calling the service", func(t *testing.T) {
		_, h := newTestHandler(t)

		w := do(t, h, http.MethodPost, "/api/v1/keywords", `{"term":"shoes","bid":3}`)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("malformed body is 400", func(t *testing.T) {
		_, h := newTestHandler(t)

		w := do(t, h, http.MethodPost, "/api/v1/keywords", `{"term":`)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("storage failure is 500", func(t *testing.T) {
		svc, h := newTestHandler(t)
		svc.EXPECT().CreateKeyword(mock.Anything, mock.Anything).
			Return(nil, &domain.PersistenceError{Op: "insert keyword", Err: errors.New("disk full")})

		w := do(t, h, http.MethodPost, "/api/v1/keywords", `{"term":"shoes","matchType":"Exact","campaign":"Summer"}`)

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.Equal(t, "insert keyword: disk full", decode[map[string]string](t, w)["error"])
	})
}

func TestSetStatus(t *testing.T) {
	id := uuid.NewString()
	body := `{"keywordId":"` + id + `","newStatus":"Paused","oldStatus":"Active"}`

	t.Run("success", func(t *testing.T) {
		svc, h := newTestHandler(t)
		svc.EXPECT().
			SetStatus(mock.Anything, port.SetStatusReq{KeywordID: id, NewStatus: "Paused", OldStatus: "Active"}).
			Return(nil)

		w := do(t, h, http.MethodPost, "/api/v1/keywords/status", body)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"success":true}`, w.Body.String())
	})

	tests := []struct {
		name string
		err  error
		code int
	}{
		{"not found", domain.ErrNotFound, http.StatusInternalServerError},
		{"terminal", domain.ErrTerminalStatus, http.StatusInternalServerError},
		{"persistence", &domain.PersistenceError{Op: "update keyword status"}, http.StatusInternalServerError},
		{"validation", &domain.ValidationError{Err: errors.New("newStatus: must be one of Active, Paused, Removed")}, http.StatusBadRequest},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, h := newTestHandler(t)
			svc.EXPECT().SetStatus(mock.Anything, mock.Anything).Return(tt.err)

			w := do(t, h, http.MethodPost, "/api/v1/keywords/status", body)

			assert.Equal(t, tt.code, w.Code)
			assert.Equal(t, tt.err.Error(), decode[map[string]string](t, w)["error"])
		})
	}
}

func TestListKeywords(t *testing.T) {
	t.Run("returns snapshot", func(t *testing.T) {
		svc, h := newTestHandler(t)
		svc.EXPECT().ListKeywords(mock.Anything).Return([]domain.Keyword{
			{ID: uuid.New(), Term: "shoes", MatchType: domain.MatchExact, Campaign: "Summer", Status: domain.StatusActive},
		}, nil)

		w := do(t, h, http.MethodGet, "/api/v1/keywords", "")

		assert.Equal(t, http.StatusOK, w.Code)
		got := decode[[]domain.Keyword](t, w)
		require.Len(t, got, 1)
		assert.Equal(t, "shoes", got[0].Term)
	})

	t.Run("empty snapshot is an empty array", func(t *testing.T) {
		svc, h := newTestHandler(t)
		svc.EXPECT().ListKeywords(mock.Anything).Return(nil, nil)

		w := do(t, h, http.MethodGet, "/api/v1/keywords", "")

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `[]`, w.Body.String())
	})

	t.Run("storage failure", func(t *testing.T) {
		svc, h := newTestHandler(t)
		svc.EXPECT().ListKeywords(mock.Anything).Return(nil, errors.New("boom"))

		w := do(t, h, http.MethodGet, "/api/v1/keywords", "")

		assert.Equal(t, http.StatusInternalServerError, w.Code)
	})
}

func TestBrowse(t *testing.T) {
	t.Run("query string is mapped to criteria", func(t *testing.T) {
		svc, h := newTestHandler(t)
		want := port.BrowseReq{
			Criteria: aggregate.Criteria{
				SearchText:     "shoe",
				Status:         "Active",
				Campaign:       "Summer",
				AdGroup:        "all",
				MatchType:      "Exact",
				IncludeRemoved: true,
			},
			Page:     2,
			PageSize: 10,
		}
		svc.EXPECT().Browse(mock.Anything, want).Return(&port.BrowseResp{Page: 2, PageSize: 10}, nil)

		w := do(t, h, http.MethodGet,
			"/api/v1/keywords/browse?q=shoe&status=Active&campaign=Summer&adGroup=all&matchType=Exact&includeRemoved=true&page=2&pageSize=10", "")

		assert.Equal(t, http.StatusOK, w.Code)
		got := decode[map[string]any](t, w)
		assert.Equal(t, []any{}, got["items"])
		assert.Equal(t, float64(2), got["page"])
	})

	t.Run("localised labels are passed through", func(t *testing.T) {
		svc, h := newTestHandler(t)
		want := port.BrowseReq{Criteria: aggregate.Criteria{Status: "Aktiverad", MatchType: "Exakt matchning"}}
		svc.EXPECT().Browse(mock.Anything, want).Return(&port.BrowseResp{Page: 1, PageSize: 50}, nil)

		w := do(t, h, http.MethodGet, "/api/v1/keywords/browse?status=Aktiverad&matchType=Exakt+matchning", "")

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("unknown status is 400", func(t *testing.T) {
		svc, h := newTestHandler(t)
		svc.EXPECT().Browse(mock.Anything, mock.Anything).
			Return(nil, &domain.ValidationError{Err: errors.New("Criteria: (status: unknown keyword status \"Bogus\".).")})

		w := do(t, h, http.MethodGet, "/api/v1/keywords/browse?status=Bogus", "")

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	for _, target := range []string{
		"/api/v1/keywords/browse?page=two",
		"/api/v1/keywords/browse?pageSize=1.5",
		"/api/v1/keywords/browse?includeRemoved=maybe",
	} {
		t.Run("bad query "+target, func(t *testing.T) {
			_, h := newTestHandler(t)

			w := do(t, h, http.MethodGet, target, "")

			assert.Equal(t, http.StatusBadRequest, w.Code)
		})
	}
}

func TestSummary(t *testing.T) {
	svc, h := newTestHandler(t)
	summary := aggregate.Summarize([]domain.Keyword{
		{Term: "shoes", MatchType: domain.MatchExact, Campaign: "Summer", Status: domain.StatusActive},
	})
	svc.EXPECT().Summarize(mock.Anything).Return(&summary, nil)

	w := do(t, h, http.MethodGet, "/api/v1/keywords/summary", "")

	assert.Equal(t, http.StatusOK, w.Code)
	got := decode[aggregate.Summary](t, w)
	assert.Equal(t, 1, got.TotalKeywords)
	assert.Equal(t, aggregate.CampaignSummary{Total: 1, Active: 1}, got.Campaigns["Summer"])
	assert.Equal(t, 100.0, got.MatchTypes[domain.MatchExact].Percentage)
}

func TestChangeLog(t *testing.T) {
	id := uuid.New()
	svc, h := newTestHandler(t)
	svc.EXPECT().ChangeLog(mock.Anything, id.String()).Return([]domain.ChangeLogEntry{
		{KeywordID: id, OldStatus: domain.StatusActive, NewStatus: domain.StatusPaused},
	}, nil)

	w := do(t, h, http.MethodGet, "/api/v1/keywords/"+id.String()+"/changelog", "")

	assert.Equal(t, http.StatusOK, w.Code)
	got := decode[[]domain.ChangeLogEntry](t, w)
	require.Len(t, got, 1)
	assert.Equal(t, domain.StatusPaused, got[0].NewStatus)
}

func TestDirectory(t *testing.T) {
	t.Run("list", func(t *testing.T) {
		svc, h := newTestHandler(t)
		svc.EXPECT().ListDirectory(mock.Anything).Return([]domain.DirectoryEntry{
			{Campaign: "Summer", AdGroup: "Footwear"},
		}, nil)

		w := do(t, h, http.MethodGet, "/api/v1/campaigns", "")

		assert.Equal(t, http.StatusOK, w.Code)
		got := decode[[]domain.DirectoryEntry](t, w)
		require.Len(t, got, 1)
		assert.Equal(t, "Footwear", got[0].AdGroup)
	})

	t.Run("ad groups", func(t *testing.T) {
		svc, h := newTestHandler(t)
		svc.EXPECT().AdGroupsForCampaign(mock.Anything, "Summer").Return([]string{"Footwear", "Hats"}, nil)

		w := do(t, h, http.MethodGet, "/api/v1/campaigns/adgroups?campaign=Summer", "")

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"adGroups":["Footwear","Hats"]}`, w.Body.String())
	})

	t.Run("campaign without ad groups", func(t *testing.T) {
		svc, h := newTestHandler(t)
		svc.EXPECT().AdGroupsForCampaign(mock.Anything, "Autumn").Return(nil, nil)

		w := do(t, h, http.MethodGet, "/api/v1/campaigns/adgroups?campaign=Autumn", "")

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"adGroups":[]}`, w.Body.String())
	})

	t.Run("ad groups without campaign", func(t *testing.T) {
		svc, h := newTestHandler(t)
		svc.EXPECT().AdGroupsForCampaign(mock.Anything, "").
			Return(nil, &domain.ValidationError{Err: errors.New("campaign: cannot be blank")})

		w := do(t, h, http.MethodGet, "/api/v1/campaigns/adgroups", "")

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("storage failure", func(t *testing.T) {
		svc, h := newTestHandler(t)
		svc.EXPECT().ListDirectory(mock.Anything).Return(nil, errors.New("boom"))

		w := do(t, h, http.MethodGet, "/api/v1/campaigns", "")

		assert.Equal(t, http.StatusInternalServerError, w.Code)
	})
}

func TestStoreStatus(t *testing.T) {
	t.Run("connected", func(t *testing.T) {
		svc, h := newTestHandler(t)
		svc.EXPECT().StoreStatus(mock.Anything).Return(&port.StoreCounts{Keywords: 3, Directory: 2, ChangeLogs: 1}, nil)

		w := do(t, h, http.MethodGet, "/api/v1/status", "")

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"connected":true,"collections":{"keywords":3,"campaignAdGroups":2,"changeLogs":1}}`, w.Body.String())
	})

	t.Run("upstream unavailable", func(t *testing.T) {
		svc, h := newTestHandler(t)
		svc.EXPECT().StoreStatus(mock.Anything).
			Return(nil, errors.Join(domain.ErrUpstreamUnavailable, errors.New("dial tcp: refused")))

		w := do(t, h, http.MethodGet, "/api/v1/status", "")

		assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	})
}

func TestHealthz(t *testing.T) {
	_, h := newTestHandler(t)

	w := do(t, h, http.MethodGet, "/healthz", "")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"ok"}`, w.Body.String())
}
