package router

import (
	"fmt"
	"net/http"

	"github.com/DjordjeVuckovic/letter-rdp/internal/apperr"
	"github.com/DjordjeVuckovic/letter-rdp/internal/ast"
	"github.com/DjordjeVuckovic/letter-rdp/internal/parser"
	"github.com/DjordjeVuckovic/letter-rdp/internal/token"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

type SourceRequest struct {
	Source string `json:"source" example:"let x = 2 + 3 * 4;"`
}

type ParseResponse struct {
	ID    string       `json:"id"`
	AST   *ast.Program `json:"ast" swaggertype:"object"`
	Sexpr string       `json:"sexpr" example:"(program (let (x (+ 2 (* 3 4)))))"`
}

type TokenDTO struct {
	Type   string `json:"type" example:"NUMBER"`
	Value  string `json:"value" example:"42"`
	Offset int    `json:"offset"`
	Line   int    `json:"line"`
	Column int    `json:"column"`
}

type TokenizeResponse struct {
	ID     string     `json:"id"`
	Tokens []TokenDTO `json:"tokens"`
}

type ParseRouter struct {
	e              *echo.Echo
	maxSourceBytes int
}

func NewParseRouter(e *echo.Echo, maxSourceBytes int) *ParseRouter {
	return &ParseRouter{
		e:              e,
		maxSourceBytes: maxSourceBytes,
	}
}

func (r *ParseRouter) Bind() {
	g := r.e.Group("/api/v1")
	g.POST("/parse", r.parseHandler)
	g.POST("/tokenize", r.tokenizeHandler)
}

// parseHandler godoc
// @Summary Parse source into an AST
// @Description Parses a program and returns its syntax tree as JSON and as an s-expression
// @Tags parser
// @Accept json
// @Produce json
// @Param request body SourceRequest true "Program source"
// @Success 200 {object} ParseResponse
// @Failure 400 {object} map[string]string
// @Failure 422 {object} map[string]any
// @Router /api/v1/parse [post]
func (r *ParseRouter) parseHandler(c echo.Context) error {
	source, err := r.bindSource(c)
	if err != nil {
		return err
	}

	// a Parser carries per-parse state, so every request gets its own
	program, err := parser.New().Parse(source)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, ParseResponse{
		ID:    requestID(c),
		AST:   program,
		Sexpr: program.String(),
	})
}

// tokenizeHandler godoc
// @Summary Tokenize source
// @Description Returns the token stream of a program, terminated by an EOF token
// @Tags parser
// @Accept json
// @Produce json
// @Param request body SourceRequest true "Program source"
// @Success 200 {object} TokenizeResponse
// @Failure 400 {object} map[string]string
// @Failure 422 {object} map[string]any
// @Router /api/v1/tokenize [post]
func (r *ParseRouter) tokenizeHandler(c echo.Context) error {
	source, err := r.bindSource(c)
	if err != nil {
		return err
	}

	tokens, err := token.NewRuleTokenizer().Tokenize(source)
	if err != nil {
		return err
	}

	dtos := make([]TokenDTO, len(tokens))
	for i, tok := range tokens {
		dtos[i] = TokenDTO{
			Type:   tok.Type.String(),
			Value:  tok.Value,
			Offset: tok.Pos.Offset,
			Line:   tok.Pos.Line,
			Column: tok.Pos.Column,
		}
	}

	return c.JSON(http.StatusOK, TokenizeResponse{
		ID:     requestID(c),
		Tokens: dtos,
	})
}

func (r *ParseRouter) bindSource(c echo.Context) (string, error) {
	var req SourceRequest
	if err := c.Bind(&req); err != nil {
		return "", apperr.NewValidationWrap("invalid request body", err)
	}
	if req.Source == "" {
		return "", apperr.NewValidation("source is required")
	}
	if len(req.Source) > r.maxSourceBytes {
		return "", apperr.NewValidation(fmt.Sprintf("source exceeds %d bytes", r.maxSourceBytes))
	}
	return req.Source, nil
}

func requestID(c echo.Context) string {
	if id := c.Response().Header().Get(echo.HeaderXRequestID); id != "" {
		return id
	}
	return uuid.NewString()
}
