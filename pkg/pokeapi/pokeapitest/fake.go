// Package pokeapitest serves a small in-memory PokeAPI for tests.
package pokeapitest

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/go-chi/chi/v5"
)

// Mon is one fixture entry.
type Mon struct {
	ID    int
	Name  string
	Types []string
}

// Catalog is the fixture catalog, in national dex order.
var Catalog = []Mon{
	{1, "bulbasaur", []string{"grass", "poison"}},
	{2, "ivysaur", []string{"grass", "poison"}},
	{3, "venusaur", []string{"grass", "poison"}},
	{4, "charmander", []string{"fire"}},
	{5, "charmeleon", []string{"fire"}},
	{6, "charizard", []string{"fire", "flying"}},
	{7, "squirtle", []string{"water"}},
	{8, "wartortle", []string{"water"}},
	{9, "blastoise", []string{"water"}},
	{10, "caterpie", []string{"bug"}},
	{11, "metapod", []string{"bug"}},
	{12, "butterfree", []string{"bug", "flying"}},
	{16, "pidgey", []string{"normal", "flying"}},
	{19, "rattata", []string{"normal"}},
	{25, "pikachu", []string{"electric"}},
	{26, "raichu", []string{"electric"}},
	{37, "vulpix", []string{"fire"}},
	{38, "ninetales", []string{"fire"}},
	{58, "growlithe", []string{"fire"}},
	{984, "great-tusk", []string{"ground", "fighting"}},
}

// TypeNames are the categories the fake advertises, in the service's order.
var TypeNames = []string{"normal", "fighting", "flying", "poison", "ground", "bug", "fire", "water", "grass", "electric"}

// Moves every fixture record knows, in the order the service returns them.
var Moves = []string{"tackle", "ice-beam", "ember", "flamethrower", "growl"}

// Server is a running fake.
type Server struct {
	*httptest.Server

	mu       sync.Mutex
	broken   map[string]bool
	requests atomic.Int64
	hits     map[string]int
}

// New starts a fake and registers its shutdown with t.
func New(t testing.TB) *Server {
	t.Helper()
	s := &Server{broken: map[string]bool{}, hits: map[string]int{}}

	r := chi.NewRouter()
	r.Use(s.count)
	r.Get("/api/v2/pokemon", s.handleList)
	r.Get("/api/v2/pokemon/{key}/", s.handleRecord)
	r.Get("/api/v2/type/", s.handleTypes)
	r.Get("/api/v2/type/{name}/", s.handleType)

	s.Server = httptest.NewServer(r)
	t.Cleanup(s.Close)
	return s
}

// BaseURL is the API root to hand to pokeapi.New.
func (s *Server) BaseURL() string {
	return s.URL + "/api/v2"
}

// Break makes every request whose path contains fragment answer 500.
func (s *Server) Break(fragment string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.broken[fragment] = true
}

// Requests is the number of requests served so far.
func (s *Server) Requests() int {
	return int(s.requests.Load())
}

// Hits is the number of requests served for an exact path.
func (s *Server) Hits(path string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.hits[path]
}

func (s *Server) count(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s.requests.Add(1)
		s.mu.Lock()
		s.hits[r.URL.Path]++
		broken := false
		for frag := range s.broken {
			if strings.Contains(r.URL.Path, frag) {
				broken = true
			}
		}
		s.mu.Unlock()
		if broken {
			http.Error(w, "boom", http.StatusInternalServerError)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func (s *Server) ref(kind string, id int) map[string]string {
	return map[string]string{"url": fmt.Sprintf("%s/%s/%d/", s.BaseURL(), kind, id)}
}

func (s *Server) handleList(w http.ResponseWriter, _ *http.Request) {
	results := make([]map[string]string, 0, len(Catalog))
	for _, m := range Catalog {
		ref := s.ref("pokemon", m.ID)
		ref["name"] = m.Name
		results = append(results, ref)
	}
	writeJSON(w, map[string]any{"count": len(results), "results": results})
}

func (s *Server) handleTypes(w http.ResponseWriter, _ *http.Request) {
	results := make([]map[string]string, 0, len(TypeNames))
	for i, name := range TypeNames {
		ref := s.ref("type", i+1)
		ref["name"] = name
		results = append(results, ref)
	}
	writeJSON(w, map[string]any{"count": len(results), "results": results})
}

func (s *Server) handleType(w http.ResponseWriter, r *http.Request) {
	key := chi.URLParam(r, "name")
	name := key
	if n, err := strconv.Atoi(key); err == nil && n >= 1 && n <= len(TypeNames) {
		name = TypeNames[n-1]
	}
	known := false
	for _, t := range TypeNames {
		if t == name {
			known = true
		}
	}
	if !known {
		http.NotFound(w, r)
		return
	}

	members := make([]map[string]any, 0)
	for _, m := range Catalog {
		for slot, t := range m.Types {
			if t != name {
				continue
			}
			ref := s.ref("pokemon", m.ID)
			ref["name"] = m.Name
			members = append(members, map[string]any{"pokemon": ref, "slot": slot + 1})
		}
	}
	writeJSON(w, map[string]any{"name": name, "pokemon": members})
}

func (s *Server) handleRecord(w http.ResponseWriter, r *http.Request) {
	key := chi.URLParam(r, "key")
	var mon *Mon
	for i := range Catalog {
		if Catalog[i].Name == key || strconv.Itoa(Catalog[i].ID) == key {
			mon = &Catalog[i]
		}
	}
	if mon == nil {
		http.NotFound(w, r)
		return
	}
	writeJSON(w, s.record(*mon))
}

func (s *Server) record(m Mon) map[string]any {
	types := make([]map[string]any, 0, len(m.Types))
	// Reverse slot order on the wire so clients must sort by slot.
	for i := len(m.Types) - 1; i >= 0; i-- {
		types = append(types, map[string]any{"slot": i + 1, "type": map[string]string{"name": m.Types[i]}})
	}

	stats := make([]map[string]any, 0, 6)
	for i, name := range []string{"hp", "attack", "defense", "special-attack", "special-defense", "speed"} {
		stats = append(stats, map[string]any{
			"base_stat": 40 + i*5 + m.ID%10,
			"stat":      map[string]string{"name": name},
		})
	}

	moves := make([]map[string]any, 0, len(Moves))
	for i, name := range Moves {
		moves = append(moves, map[string]any{"move": map[string]string{
			"name": name,
			"url":  fmt.Sprintf("%s/move/%d/", s.BaseURL(), i+1),
		}})
	}

	return map[string]any{
		"id":     m.ID,
		"name":   m.Name,
		"height": m.ID%20 + 3,
		"weight": m.ID * 10,
		"types":  types,
		"stats":  stats,
		"abilities": []map[string]any{
			{"ability": map[string]string{"name": "overgrow"}, "is_hidden": false, "slot": 1},
			{"ability": map[string]string{"name": "chlorophyll"}, "is_hidden": true, "slot": 3},
		},
		"moves": moves,
		"sprites": map[string]any{
			"front_default": fmt.Sprintf("https://img.example/%d.png", m.ID),
			"other": map[string]any{
				"official-artwork": map[string]string{
					"front_default": fmt.Sprintf("https://img.example/artwork/%d.png", m.ID),
				},
			},
		},
	}
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(v)
}
