package server

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tableflip.dev/pokedex/pkg/dex"
	"tableflip.dev/pokedex/pkg/pokeapi"
	"tableflip.dev/pokedex/pkg/pokeapi/pokeapitest"
)

func newTestServer(t *testing.T) (*Server, *pokeapitest.Server) {
	t.Helper()
	fake := pokeapitest.New(t)
	svc := &dex.Service{API: pokeapi.New(fake.BaseURL()), PageSize: 8}
	return New(svc), fake
}

func get(t *testing.T, h http.Handler, target string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, target, nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func decode(t *testing.T, rec *httptest.ResponseRecorder, v any) {
	t.Helper()
	require.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), v))
}

func TestHealth(t *testing.T) {
	s, _ := newTestServer(t)
	rec := get(t, s, "/health")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "OK", rec.Body.String())
}

func TestListPokemon(t *testing.T) {
	s, _ := newTestServer(t)

	rec := get(t, s, "/api/pokemon")
	require.Equal(t, http.StatusOK, rec.Code)

	var page dex.CatalogPage
	decode(t, rec, &page)
	assert.Equal(t, "All", page.Category)
	assert.Equal(t, 1, page.State.Current)
	assert.Equal(t, len(pokeapitest.Catalog), page.State.Total)
	assert.Len(t, page.Records, 8)
	assert.Equal(t, "bulbasaur", page.Records[0].Name)
	assert.Equal(t, []int{1, 2, 3}, page.Window.Pages)
}

func TestListPokemonByTypeAndPage(t *testing.T) {
	s, _ := newTestServer(t)

	rec := get(t, s, "/api/pokemon?type=fire&page=1&sort=weight")
	require.Equal(t, http.StatusOK, rec.Code)

	var page dex.CatalogPage
	decode(t, rec, &page)
	assert.Equal(t, "fire", page.Category)
	assert.Equal(t, 6, page.State.Total)
	require.Len(t, page.Records, 6)
	assert.Equal(t, "growlithe", page.Records[0].Name)
}

func TestListPokemonBadInput(t *testing.T) {
	s, _ := newTestServer(t)

	for _, target := range []string{
		"/api/pokemon?page=two",
		"/api/pokemon?page=0",
		"/api/pokemon?page=-2",
		"/api/pokemon?page=9",
		"/api/pokemon?sort=speed",
	} {
		rec := get(t, s, target)
		assert.Equal(t, http.StatusBadRequest, rec.Code, target)

		var body map[string]string
		decode(t, rec, &body)
		assert.NotEmpty(t, body["error"], target)
	}
}

func TestListPokemonUpstreamFailure(t *testing.T) {
	s, fake := newTestServer(t)
	fake.Break("/type/")

	rec := get(t, s, "/api/pokemon?type=fire")
	require.Equal(t, http.StatusBadGateway, rec.Code)

	var body map[string]string
	decode(t, rec, &body)
	assert.Equal(t, "Failed to load Pokémon. Please try again.", body["error"])
}

func TestListPokemonUnknownType(t *testing.T) {
	s, _ := newTestServer(t)

	rec := get(t, s, "/api/pokemon?type=shadow")
	require.Equal(t, http.StatusNotFound, rec.Code)

	var body map[string]string
	decode(t, rec, &body)
	assert.Equal(t, "Type not found", body["error"])
}

func TestGetPokemon(t *testing.T) {
	s, _ := newTestServer(t)

	rec := get(t, s, "/api/pokemon/Great-Tusk")
	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Record pokeapi.Record `json:"record"`
		Detail dex.Detail     `json:"detail"`
	}
	decode(t, rec, &body)
	assert.Equal(t, 984, body.Record.ID)
	assert.Equal(t, "Great Tusk", body.Detail.DisplayName)
	assert.Equal(t, []string{"ground", "fighting"}, body.Detail.Types)
}

func TestGetPokemonNotFound(t *testing.T) {
	s, _ := newTestServer(t)

	rec := get(t, s, "/api/pokemon/missingno")
	require.Equal(t, http.StatusNotFound, rec.Code)

	var body map[string]string
	decode(t, rec, &body)
	assert.Equal(t, "Pokémon not found", body["error"])
}

func TestGetMoves(t *testing.T) {
	s, _ := newTestServer(t)

	rec := get(t, s, "/api/pokemon/25/moves?q=e&order=desc")
	require.Equal(t, http.StatusOK, rec.Code)

	var body dex.MoveList
	decode(t, rec, &body)
	assert.Equal(t, "pikachu", body.Name)
	names := make([]string, 0, len(body.Moves))
	for _, m := range body.Moves {
		names = append(names, m.Name)
	}
	assert.Equal(t, []string{"tackle", "ice-beam", "flamethrower", "ember"}, names)

	rec = get(t, s, "/api/pokemon/25/moves?order=sideways")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGetTypes(t *testing.T) {
	s, _ := newTestServer(t)

	rec := get(t, s, "/api/types")
	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Types      []pokeapi.Category `json:"types"`
		TotalCount int                `json:"total_count"`
	}
	decode(t, rec, &body)
	assert.Equal(t, len(pokeapitest.TypeNames), body.TotalCount)
	assert.Equal(t, "Normal", body.Types[0].Name)
}

func TestCORSPreflight(t *testing.T) {
	s, _ := newTestServer(t)

	req := httptest.NewRequest(http.MethodOptions, "/api/types", nil)
	req.Header.Set("Origin", "http://localhost:5173")
	req.Header.Set("Access-Control-Request-Method", "GET")
	rec := httptest.NewRecorder()
	s.ServeHTTP(rec, req)

	assert.Equal(t, "http://localhost:5173", rec.Header().Get("Access-Control-Allow-Origin"))
}
