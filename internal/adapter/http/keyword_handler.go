package httpadapter

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"keyword-dashboard/internal/core/aggregate"
	"keyword-dashboard/internal/core/domain"
	"keyword-dashboard/internal/core/port"
)

// handleListKeywords handles GET /api/v1/keywords.
func (h *Handler) handleListKeywords(w http.ResponseWriter, r *http.Request) {
	keywords, err := h.svc.ListKeywords(r.Context())
	if err != nil {
		h.writeError(w, r, "list keywords", err)
		return
	}
	if keywords == nil {
		keywords = []domain.Keyword{}
	}
	writeJSON(w, http.StatusOK, keywords)
}

// handleCreateKeyword handles POST /api/v1/keywords.
func (h *Handler) handleCreateKeyword(w http.ResponseWriter, r *http.Request) {
	var req port.CreateKeywordReq
	if err := decodeJSON(r, &req); err != nil {
		h.writeError(w, r, "create keyword", err)
		return
	}
	kw, err := h.svc.CreateKeyword(r.Context(), req)
	if err != nil {
		h.writeError(w, r, "create keyword", err)
		return
	}
	writeJSON(w, http.StatusOK, successResponse{Success: true, KeywordID: kw.ID.String()})
}

// handleSetStatus handles POST /api/v1/keywords/status.
func (h *Handler) handleSetStatus(w http.ResponseWriter, r *http.Request) {
	var req port.SetStatusReq
	if err := decodeJSON(r, &req); err != nil {
		h.writeError(w, r, "set status", err)
		return
	}
	if err := h.svc.SetStatus(r.Context(), req); err != nil {
		h.writeError(w, r, "set status", err)
		return
	}
	writeJSON(w, http.StatusOK, successResponse{Success: true})
}

// handleBrowse handles GET /api/v1/keywords/browse. Filter criteria and
// paging come from the query string.
func (h *Handler) handleBrowse(w http.ResponseWriter, r *http.Request) {
	req, err := browseRequest(r)
	if err != nil {
		h.writeError(w, r, "browse keywords", err)
		return
	}
	page, err := h.svc.Browse(r.Context(), req)
	if err != nil {
		h.writeError(w, r, "browse keywords", err)
		return
	}
	if page.Items == nil {
		page.Items = []domain.Keyword{}
	}
	writeJSON(w, http.StatusOK, page)
}

func browseRequest(r *http.Request) (port.BrowseReq, error) {
	q := r.URL.Query()
	req := port.BrowseReq{
		Criteria: aggregate.Criteria{
			SearchText: q.Get("q"),
			Status:     q.Get("status"),
			Campaign:   q.Get("campaign"),
			AdGroup:    q.Get("adGroup"),
			MatchType:  q.Get("matchType"),
		},
	}

	var err error
	if req.Criteria.IncludeRemoved, err = boolParam(q.Get("includeRemoved")); err != nil {
		return req, err
	}
	if req.Page, err = intParam("page", q.Get("page")); err != nil {
		return req, err
	}
	if req.PageSize, err = intParam("pageSize", q.Get("pageSize")); err != nil {
		return req, err
	}
	return req, nil
}

func intParam(name, v string) (int, error) {
	if v == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, &domain.ValidationError{Err: fmt.Errorf("%s: must be an integer", name)}
	}
	return n, nil
}

func boolParam(v string) (bool, error) {
	if v == "" {
		return false, nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return false, &domain.ValidationError{Err: errors.New("includeRemoved: must be a boolean")}
	}
	return b, nil
}

// handleSummary handles GET /api/v1/keywords/summary.
func (h *Handler) handleSummary(w http.ResponseWriter, r *http.Request) {
	summary, err := h.svc.Summarize(r.Context())
	if err != nil {
		h.writeError(w, r, "summarize keywords", err)
		return
	}
	writeJSON(w, http.StatusOK, summary)
}

// handleChangeLog handles GET /api/v1/keywords/{id}/changelog.
func (h *Handler) handleChangeLog(w http.ResponseWriter, r *http.Request) {
	entries, err := h.svc.ChangeLog(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.writeError(w, r, "list change log", err)
		return
	}
	if entries == nil {
		entries = []domain.ChangeLogEntry{}
	}
	writeJSON(w, http.StatusOK, entries)
}

// handleListDirectory handles GET /api/v1/campaigns.
func (h *Handler) handleListDirectory(w http.ResponseWriter, r *http.Request) {
	entries, err := h.svc.ListDirectory(r.Context())
	if err != nil {
		h.writeError(w, r, "list campaigns", err)
		return
	}
	if entries == nil {
		entries = []domain.DirectoryEntry{}
	}
	writeJSON(w, http.StatusOK, entries)
}

// handleAdGroups handles GET /api/v1/campaigns/adgroups?campaign=.
func (h *Handler) handleAdGroups(w http.ResponseWriter, r *http.Request) {
	groups, err := h.svc.AdGroupsForCampaign(r.Context(), r.URL.Query().Get("campaign"))
	if err != nil {
		h.writeError(w, r, "list ad groups", err)
		return
	}
	if groups == nil {
		groups = []string{}
	}
	writeJSON(w, http.StatusOK, adGroupsResponse{AdGroups: groups})
}

// handleStoreStatus handles GET /api/v1/status.
func (h *Handler) handleStoreStatus(w http.ResponseWriter, r *http.Request) {
	counts, err := h.svc.StoreStatus(r.Context())
	if err != nil {
		if errors.Is(err, domain.ErrUpstreamUnavailable) {
			h.logger.ErrorContext(r.Context(), "store status failed", "err", err)
			writeJSON(w, http.StatusServiceUnavailable, errorResponse{Error: err.Error()})
			return
		}
		h.writeError(w, r, "store status", err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"connected":   true,
		"collections": counts,
	})
}
