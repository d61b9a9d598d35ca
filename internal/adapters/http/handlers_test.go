package httpadapter

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"svw.info/skyscraper/internal/domain"
	"svw.info/skyscraper/internal/generator"
	"svw.info/skyscraper/internal/infrastructure/storage"
	"svw.info/skyscraper/internal/solver"
	"svw.info/skyscraper/internal/usecase"
	"svw.info/skyscraper/internal/validator"
)

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	s := solver.NewBacktrackingSolver()
	uc := usecase.NewService(s, generator.NewUniqueGenerator(s), validator.New(), storage.NewFS(t.TempDir()))
	mux := http.NewServeMux()
	New(uc).Register(mux)
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func postJSON(t *testing.T, url string, req, resp any) int {
	t.Helper()
	body, err := json.Marshal(req)
	require.NoError(t, err)
	r, err := http.Post(url, "application/json", bytes.NewReader(body))
	require.NoError(t, err)
	defer r.Body.Close()
	require.NoError(t, json.NewDecoder(r.Body).Decode(resp))
	return r.StatusCode
}

func TestGenerateSolveCheckFlow(t *testing.T) {
	srv := newTestServer(t)

	var gen generateResp
	code := postJSON(t, srv.URL+"/api/generate", generateReq{Size: 4, Seed: 42}, &gen)
	require.Equal(t, http.StatusOK, code, "error: %s", gen.Error)
	require.NotNil(t, gen.Puzzle)
	require.True(t, gen.Puzzle.Board.IsLatinSquare())

	var solved solveResp
	code = postJSON(t, srv.URL+"/api/solve", solveReq{Clues: gen.Puzzle.Clues}, &solved)
	require.Equal(t, http.StatusOK, code, "error: %s", solved.Error)
	require.NotNil(t, solved.Board)
	require.True(t, solved.Board.Equal(&gen.Puzzle.Board), "clue set must pin down the generated board")

	var checked checkResp
	code = postJSON(t, srv.URL+"/api/check", checkReq{Board: *solved.Board, Clues: gen.Puzzle.Clues}, &checked)
	require.Equal(t, http.StatusOK, code)
	require.True(t, checked.OK)
}

func TestSolveRejectsMalformedClues(t *testing.T) {
	srv := newTestServer(t)
	var resp solveResp
	code := postJSON(t, srv.URL+"/api/solve", solveReq{Clues: domain.Clues{Top: []int{1}}}, &resp)
	require.Equal(t, http.StatusBadRequest, code)
	require.NotEmpty(t, resp.Error)
}

func TestSolveReportsNoSolution(t *testing.T) {
	srv := newTestServer(t)
	cl := domain.Clues{Top: []int{1, 1}, Bottom: []int{1, 1}, Left: []int{1, 1}, Right: []int{1, 1}}
	var resp solveResp
	code := postJSON(t, srv.URL+"/api/solve", solveReq{Clues: cl}, &resp)
	require.Equal(t, http.StatusUnprocessableEntity, code)
	require.NotEmpty(t, resp.Error)
}

func TestCluesEndpoint(t *testing.T) {
	srv := newTestServer(t)
	board := domain.Board{Size: 4, Cells: [][]int{
		{4, 1, 3, 2},
		{3, 2, 4, 1},
		{1, 3, 2, 4},
		{2, 4, 1, 3},
	}}
	var resp cluesResp
	code := postJSON(t, srv.URL+"/api/clues", cluesReq{Board: board}, &resp)
	require.Equal(t, http.StatusOK, code)
	require.Equal(t, []int{1, 4, 2, 2}, resp.Clues.Top)
	require.Equal(t, []int{3, 1, 3, 2}, resp.Clues.Bottom)
	require.Equal(t, []int{1, 2, 3, 2}, resp.Clues.Left)
	require.Equal(t, []int{3, 2, 1, 2}, resp.Clues.Right)
}

func TestSaveLoadList(t *testing.T) {
	srv := newTestServer(t)

	var gen generateResp
	code := postJSON(t, srv.URL+"/api/generate", generateReq{Size: 3, Seed: 7}, &gen)
	require.Equal(t, http.StatusOK, code)

	var saved saveResp
	code = postJSON(t, srv.URL+"/api/save", gen.Puzzle, &saved)
	require.Equal(t, http.StatusOK, code, "error: %s", saved.Error)
	require.Equal(t, gen.Puzzle.ID, saved.ID)

	var loaded loadResp
	code = postJSON(t, srv.URL+"/api/load", loadReq{ID: saved.ID}, &loaded)
	require.Equal(t, http.StatusOK, code)
	require.True(t, loaded.Puzzle.Board.Equal(&gen.Puzzle.Board))

	r, err := http.Get(srv.URL + "/api/list")
	require.NoError(t, err)
	defer r.Body.Close()
	var list listResp
	require.NoError(t, json.NewDecoder(r.Body).Decode(&list))
	require.Len(t, list.Puzzles, 1)
	require.Equal(t, saved.ID, list.Puzzles[0].ID)
}

func TestMethodFiltering(t *testing.T) {
	srv := newTestServer(t)
	r, err := http.Get(srv.URL + "/api/generate")
	require.NoError(t, err)
	r.Body.Close()
	require.Equal(t, http.StatusMethodNotAllowed, r.StatusCode)
}
