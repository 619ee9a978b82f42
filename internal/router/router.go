package router

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/DjordjeVuckovic/proplogic/internal/apperr"
	"github.com/DjordjeVuckovic/proplogic/internal/dto"
	"github.com/DjordjeVuckovic/proplogic/internal/pipeline"
	"github.com/DjordjeVuckovic/proplogic/internal/storage"
	"github.com/DjordjeVuckovic/proplogic/internal/verdict"
	"github.com/DjordjeVuckovic/proplogic/internal/vm"
	"github.com/DjordjeVuckovic/proplogic/pkg/pagination"
)

type Router struct {
	e        *echo.Echo
	pipeline *pipeline.Pipeline
	store    storage.Store
}

type Option func(*Router)

// WithStore saves a verdict for every checked formula and run program, and
// enables the verdict listing.
func WithStore(s storage.Store) Option {
	return func(r *Router) {
		r.store = s
	}
}

func New(e *echo.Echo, p *pipeline.Pipeline, opts ...Option) *Router {
	r := &Router{e: e, pipeline: p}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

func (r *Router) Bind() {
	v1 := r.e.Group("/v1")

	formulas := v1.Group("/formulas")
	formulas.POST("/check", r.check)
	formulas.POST("/evaluate", r.evaluate)
	formulas.POST("/truth-table", r.truthTable)
	formulas.POST("/analyze", r.analyze)

	v1.POST("/programs/run", r.runProgram)
	v1.GET("/verdicts", r.listVerdicts)
}

// check godoc
// @Summary Check a formula
// @Description Lexes, parses and validates a formula.
// @Tags formulas
// @Accept json
// @Produce json
// @Param request body dto.FormulaRequest true "Formula"
// @Success 200 {object} dto.CheckResponse
// @Failure 400 {object} map[string]string
// @Failure 422 {object} apperr.PipelineErrorResponse
// @Router /v1/formulas/check [post]
func (r *Router) check(c echo.Context) error {
	var req dto.FormulaRequest
	p, err := r.bindFormula(c, &req)
	if err != nil {
		return err
	}

	start := time.Now()
	res, err := p.Check(req.Formula)
	r.record(c.Request().Context(), req.Formula, start, res, nil, err)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, dto.FromResult(res))
}

// evaluate godoc
// @Summary Evaluate a formula
// @Description Checks a formula, lowers it under env and runs it on the VM.
// @Tags formulas
// @Accept json
// @Produce json
// @Param request body dto.EvaluateRequest true "Formula and assignment"
// @Success 200 {object} dto.EvaluateResponse
// @Failure 400 {object} map[string]string
// @Failure 422 {object} apperr.PipelineErrorResponse
// @Router /v1/formulas/evaluate [post]
func (r *Router) evaluate(c echo.Context) error {
	var req dto.EvaluateRequest
	p, err := r.bindFormula(c, &req)
	if err != nil {
		return err
	}

	start := time.Now()
	ev, err := p.Evaluate(req.Formula, req.Env)
	if err != nil {
		r.record(c.Request().Context(), req.Formula, start, nil, nil, err)
		return err
	}
	r.record(c.Request().Context(), req.Formula, start, ev.Result, []bool{ev.Value}, nil)
	return c.JSON(http.StatusOK, dto.FromEvaluation(ev))
}

// truthTable godoc
// @Summary Truth table
// @Tags formulas
// @Accept json
// @Produce json
// @Param request body dto.FormulaRequest true "Formula"
// @Success 200 {object} dto.TruthTableResponse
// @Failure 400 {object} map[string]string
// @Failure 422 {object} apperr.PipelineErrorResponse
// @Router /v1/formulas/truth-table [post]
func (r *Router) truthTable(c echo.Context) error {
	var req dto.FormulaRequest
	p, err := r.bindFormula(c, &req)
	if err != nil {
		return err
	}

	tbl, err := p.TruthTable(req.Formula)
	if errors.Is(err, pipeline.ErrTooManyAtoms) {
		return apperr.NewValidationWrap("formula has too many atoms for a truth table", err)
	}
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, dto.FromTable(tbl))
}

// analyze godoc
// @Summary Satisfiability and validity
// @Tags formulas
// @Accept json
// @Produce json
// @Param request body dto.FormulaRequest true "Formula"
// @Success 200 {object} dto.AnalyzeResponse
// @Failure 400 {object} map[string]string
// @Failure 422 {object} apperr.PipelineErrorResponse
// @Router /v1/formulas/analyze [post]
func (r *Router) analyze(c echo.Context) error {
	var req dto.FormulaRequest
	p, err := r.bindFormula(c, &req)
	if err != nil {
		return err
	}

	a, err := p.Analyze(req.Formula)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, dto.FromAnalysis(a))
}

// runProgram godoc
// @Summary Run a VM program
// @Tags programs
// @Accept json
// @Produce json
// @Param request body dto.ProgramRequest true "Assembly text"
// @Success 200 {object} dto.ProgramResponse
// @Failure 400 {object} map[string]string
// @Failure 422 {object} apperr.PipelineErrorResponse
// @Router /v1/programs/run [post]
func (r *Router) runProgram(c echo.Context) error {
	var req dto.ProgramRequest
	if err := c.Bind(&req); err != nil {
		return apperr.NewValidationWrap("invalid request body", err)
	}

	instrs, err := vm.Assemble(req.Code)
	if err != nil {
		return apperr.NewValidationWrap("invalid program", err)
	}
	if len(instrs) == 0 {
		return apperr.NewValidation("program is empty")
	}

	start := time.Now()
	run, err := r.pipeline.RunProgram(instrs)

	rec := verdict.New(verdict.KindProgram, req.Code)
	rec.LatencyNs = time.Since(start).Nanoseconds()
	if err != nil {
		rec.Reject(pipeline.Stage(err), err)
		r.save(c.Request().Context(), rec)
		return err
	}
	rec.Accept("", run.Results)
	r.save(c.Request().Context(), rec)

	return c.JSON(http.StatusOK, dto.ProgramResponse{
		Results: run.Results,
		Output:  lines(run.Output),
	})
}

// listVerdicts godoc
// @Summary List stored verdicts
// @Tags verdicts
// @Produce json
// @Param page query int false "Page, starting at 1"
// @Param size query int false "Page size"
// @Success 200 {object} dto.VerdictPage
// @Failure 404 {object} map[string]string
// @Router /v1/verdicts [get]
func (r *Router) listVerdicts(c echo.Context) error {
	if r.store == nil {
		return echo.NewHTTPError(http.StatusNotFound, "verdict storage is not configured")
	}

	req := pagination.ParseOffsetRequest(c.QueryParam("page"), c.QueryParam("size"))
	items, total, err := r.store.List(c.Request().Context(), req.Offset(), req.Size)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, pagination.NewOffsetResult(items, total, req))
}

func (r *Router) bindFormula(c echo.Context, req any) (*pipeline.Pipeline, error) {
	if err := c.Bind(req); err != nil {
		return nil, apperr.NewValidationWrap("invalid request body", err)
	}

	var fr *dto.FormulaRequest
	switch v := req.(type) {
	case *dto.FormulaRequest:
		fr = v
	case *dto.EvaluateRequest:
		fr = &v.FormulaRequest
	}

	if strings.TrimSpace(fr.Formula) == "" {
		return nil, apperr.NewValidation("formula is required")
	}
	if len(fr.Atoms) == 0 {
		return r.pipeline, nil
	}

	p, err := r.pipeline.WithProps(fr.Atoms)
	if err != nil {
		return nil, apperr.NewValidationWrap("invalid atoms", err)
	}
	return p, nil
}

func (r *Router) record(ctx context.Context, formula string, start time.Time, res *pipeline.Result, results []bool, err error) {
	if r.store == nil {
		return
	}

	rec := verdict.New(verdict.KindFormula, formula)
	rec.LatencyNs = time.Since(start).Nanoseconds()
	if err != nil {
		rec.Reject(pipeline.Stage(err), err)
	} else {
		rec.Accept(res.Printed, results)
	}
	r.save(ctx, rec)
}

func (r *Router) save(ctx context.Context, rec verdict.Record) {
	if r.store == nil {
		return
	}
	if _, err := r.store.Save(ctx, rec); err != nil {
		slog.Error("Failed to save verdict", "kind", rec.Kind, "error", err)
	}
}

func lines(s string) []string {
	out := []string{}
	for _, l := range strings.Split(s, "\n") {
		if l != "" {
			out = append(out, l)
		}
	}
	return out
}
