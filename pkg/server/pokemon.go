package server

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"tableflip.dev/pokedex/pkg/category"
	"tableflip.dev/pokedex/pkg/dex"
	"tableflip.dev/pokedex/pkg/filter"
	"tableflip.dev/pokedex/pkg/format"
	"tableflip.dev/pokedex/pkg/pokeapi"
)

type recordResponse struct {
	Record *pokeapi.Record `json:"record"`
	Detail dex.Detail      `json:"detail"`
}

// handleListPokemon returns one catalog page. Query: type, page, q, sort.
func (s *Server) handleListPokemon(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	req := dex.CatalogRequest{
		Category: query.Get("type"),
		Page:     1,
		Query:    query.Get("q"),
	}
	if req.Category == "" {
		req.Category = category.All
	}
	if raw := query.Get("page"); raw != "" {
		page, err := strconv.Atoi(raw)
		if err != nil {
			s.respondDexError(w, fmt.Errorf("%w: page %q is not a number", format.ErrInvalidArgument, raw))
			return
		}
		req.Page = page
	}
	sort, err := filter.ParseSortKey(query.Get("sort"))
	if err != nil {
		s.respondDexError(w, err)
		return
	}
	req.Sort = sort

	page, err := s.dex.Catalog(r.Context(), req)
	if err != nil {
		s.respondDexError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, page)
}

// handleGetPokemon returns a single record by id or name.
func (s *Server) handleGetPokemon(w http.ResponseWriter, r *http.Request) {
	key := chi.URLParam(r, "idOrName")

	rec, err := s.dex.Record(r.Context(), key)
	if err != nil {
		s.respondDexError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, recordResponse{Record: rec, Detail: dex.NewDetail(rec)})
}

// handleGetMoves returns a record's moves filtered by q and ordered by order.
func (s *Server) handleGetMoves(w http.ResponseWriter, r *http.Request) {
	key := chi.URLParam(r, "idOrName")

	order, err := filter.ParseOrder(r.URL.Query().Get("order"))
	if err != nil {
		s.respondDexError(w, err)
		return
	}
	q := filter.Query{Text: r.URL.Query().Get("q"), Order: order}

	rec, err := s.dex.Record(r.Context(), key)
	if err != nil {
		s.respondDexError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, s.dex.SearchMoves(rec, q))
}

// handleGetTypes returns the categories.
func (s *Server) handleGetTypes(w http.ResponseWriter, r *http.Request) {
	cats, err := s.dex.Categories(r.Context())
	if err != nil {
		s.respondDexError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]any{
		"types":       cats,
		"total_count": len(cats),
	})
}
