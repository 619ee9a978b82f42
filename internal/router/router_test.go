package router

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/DjordjeVuckovic/proplogic/internal/apperr"
	"github.com/DjordjeVuckovic/proplogic/internal/dto"
	"github.com/DjordjeVuckovic/proplogic/internal/pipeline"
	"github.com/DjordjeVuckovic/proplogic/internal/storage/in_mem"
	"github.com/DjordjeVuckovic/proplogic/internal/verdict"
)

func newTestServer(t *testing.T, opts ...Option) *echo.Echo {
	t.Helper()

	p, err := pipeline.New(pipeline.DefaultConfig())
	require.NoError(t, err)

	e := echo.New()
	e.HTTPErrorHandler = apperr.GlobalErrorHandler()
	New(e, p, opts...).Bind()
	return e
}

func do(e *echo.Echo, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestCheck(t *testing.T) {
	e := newTestServer(t)

	tests := []struct {
		name      string
		body      string
		wantCode  int
		wantStage string
		wantPos   int
	}{
		{
			name:     "accepted",
			body:     `{"formula":"(p1⇒p2)→((¬p1)∨p2)"}`,
			wantCode: http.StatusOK,
		},
		{
			name:      "lexical error at the first uppercase P",
			body:      `{"formula":"(¬(P1∨p2))→((¬p1)∧(¬P2))"}`,
			wantCode:  http.StatusUnprocessableEntity,
			wantStage: "lexical",
			wantPos:   3,
		},
		{
			name:      "missing closing parenthesis",
			body:      `{"formula":"(p1⇒p2"}`,
			wantCode:  http.StatusUnprocessableEntity,
			wantStage: "parse",
		},
		{
			name:      "unknown proposition",
			body:      `{"formula":"p1∧p4"}`,
			wantCode:  http.StatusUnprocessableEntity,
			wantStage: "semantic",
			wantPos:   -1,
		},
		{
			name:     "atoms override",
			body:     `{"formula":"a∧b","atoms":["a","b"]}`,
			wantCode: http.StatusOK,
		},
		{
			name:     "empty formula",
			body:     `{"formula":"  "}`,
			wantCode: http.StatusBadRequest,
		},
		{
			name:     "malformed body",
			body:     `{"formula":`,
			wantCode: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := do(e, http.MethodPost, "/v1/formulas/check", tt.body)
			require.Equal(t, tt.wantCode, rec.Code, rec.Body.String())

			if tt.wantStage == "" {
				return
			}
			var body apperr.PipelineErrorResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.Equal(t, tt.wantStage, body.Stage)
			if tt.wantStage != "parse" {
				assert.Equal(t, tt.wantPos, body.Position)
			}
		})
	}
}

func TestCheck_Response(t *testing.T) {
	e := newTestServer(t)

	rec := do(e, http.MethodPost, "/v1/formulas/check", `{"formula":"p1∨p2∨p3"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp dto.CheckResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "(p1∨p2)∨p3", resp.Canonical)
	assert.Len(t, resp.Tokens, 6)
	assert.False(t, resp.Truncated)
}

func TestEvaluate(t *testing.T) {
	e := newTestServer(t)

	rec := do(e, http.MethodPost, "/v1/formulas/evaluate",
		`{"formula":"(p1⇒p2)→((¬p1)∨p2)","env":{"p1":true,"p2":false}}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var resp dto.EvaluateResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.Value)
	assert.Equal(t, "VRAI\n", resp.Output)
	assert.Equal(t, "PRINT", resp.Program[len(resp.Program)-1])

	rec = do(e, http.MethodPost, "/v1/formulas/evaluate", `{"formula":"p1∧p2","env":{"p1":true}}`)
	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Contains(t, rec.Body.String(), `"stage":"compile"`)
}

func TestTruthTableAndAnalyze(t *testing.T) {
	e := newTestServer(t)

	rec := do(e, http.MethodPost, "/v1/formulas/truth-table", `{"formula":"p1⇒p2"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var tbl dto.TruthTableResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &tbl))
	require.Len(t, tbl.Rows, 4)
	assert.Equal(t, []bool{true, true, false, true}, []bool{
		tbl.Rows[0].Result, tbl.Rows[1].Result, tbl.Rows[2].Result, tbl.Rows[3].Result,
	})

	rec = do(e, http.MethodPost, "/v1/formulas/analyze", `{"formula":"p1∨¬p1"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var a dto.AnalyzeResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &a))
	assert.True(t, a.Tautology)
	assert.True(t, a.Satisfiable)
}

func TestRunProgram(t *testing.T) {
	e := newTestServer(t)

	body, err := json.Marshal(dto.ProgramRequest{
		Code: "PUSH 1\nPUSH 0\nAND\nPUSH 1\nNOT\nPUSH 1\nOR\nIMP\nPRINT\n",
	})
	require.NoError(t, err)

	rec := do(e, http.MethodPost, "/v1/programs/run", string(body))
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var resp dto.ProgramResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, []bool{true}, resp.Results)
	assert.Equal(t, []string{"VRAI"}, resp.Output)

	rec = do(e, http.MethodPost, "/v1/programs/run", `{"code":"AND\nPRINT"}`)
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Contains(t, rec.Body.String(), `"stage":"vm"`)

	rec = do(e, http.MethodPost, "/v1/programs/run", `{"code":"JUMP 3"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = do(e, http.MethodPost, "/v1/programs/run", `{"code":"# nothing"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestVerdicts(t *testing.T) {
	store := in_mem.NewInMemStorer()
	e := newTestServer(t, WithStore(store))

	do(e, http.MethodPost, "/v1/formulas/check", `{"formula":"p1∧p2"}`)
	do(e, http.MethodPost, "/v1/formulas/check", `{"formula":"p1∧"}`)
	do(e, http.MethodPost, "/v1/programs/run", `{"code":"PUSH 0\nPRINT"}`)

	recs, total, err := store.List(context.Background(), 0, 10)
	require.NoError(t, err)
	require.EqualValues(t, 3, total)

	byKind := map[verdict.Kind]int{}
	accepted := 0
	for _, r := range recs {
		byKind[r.Kind]++
		if r.Accepted {
			accepted++
		}
	}
	assert.Equal(t, map[verdict.Kind]int{verdict.KindFormula: 2, verdict.KindProgram: 1}, byKind)
	assert.Equal(t, 2, accepted)

	rec := do(e, http.MethodGet, "/v1/verdicts?page=1&size=2", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var page dto.VerdictPage
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &page))
	assert.EqualValues(t, 3, page.Total)
	assert.Len(t, page.Items, 2)
	assert.True(t, page.HasMore)
}

func TestVerdicts_HugePage(t *testing.T) {
	store := in_mem.NewInMemStorer()
	e := newTestServer(t, WithStore(store))
	do(e, http.MethodPost, "/v1/formulas/check", `{"formula":"p1"}`)

	rec := do(e, http.MethodGet, "/v1/verdicts?page=9223372036854775807&size=100", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var page dto.VerdictPage
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &page))
	assert.EqualValues(t, 1, page.Total)
	assert.Empty(t, page.Items)
	assert.False(t, page.HasMore)
}

func TestVerdicts_NoStore(t *testing.T) {
	e := newTestServer(t)

	rec := do(e, http.MethodGet, "/v1/verdicts", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
