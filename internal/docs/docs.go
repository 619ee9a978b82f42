// Package docs registers the OpenAPI document served under /swagger.
// Regenerate with: swag init -g cmd/prop_api/main.go -o internal/docs
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "contact": {},
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/v1/formulas/analyze": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["formulas"],
                "summary": "Satisfiability and validity",
                "parameters": [
                    {"description": "Formula", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/dto.FormulaRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.AnalyzeResponse"}},
                    "400": {"description": "Bad Request", "schema": {"type": "object", "additionalProperties": {"type": "string"}}},
                    "422": {"description": "Unprocessable Entity", "schema": {"$ref": "#/definitions/apperr.PipelineErrorResponse"}}
                }
            }
        },
        "/v1/formulas/check": {
            "post": {
                "description": "Lexes, parses and validates a formula.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["formulas"],
                "summary": "Check a formula",
                "parameters": [
                    {"description": "Formula", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/dto.FormulaRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.CheckResponse"}},
                    "400": {"description": "Bad Request", "schema": {"type": "object", "additionalProperties": {"type": "string"}}},
                    "422": {"description": "Unprocessable Entity", "schema": {"$ref": "#/definitions/apperr.PipelineErrorResponse"}}
                }
            }
        },
        "/v1/formulas/evaluate": {
            "post": {
                "description": "Checks a formula, lowers it under env and runs it on the VM.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["formulas"],
                "summary": "Evaluate a formula",
                "parameters": [
                    {"description": "Formula and assignment", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/dto.EvaluateRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.EvaluateResponse"}},
                    "400": {"description": "Bad Request", "schema": {"type": "object", "additionalProperties": {"type": "string"}}},
                    "422": {"description": "Unprocessable Entity", "schema": {"$ref": "#/definitions/apperr.PipelineErrorResponse"}}
                }
            }
        },
        "/v1/formulas/truth-table": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["formulas"],
                "summary": "Truth table",
                "parameters": [
                    {"description": "Formula", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/dto.FormulaRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.TruthTableResponse"}},
                    "400": {"description": "Bad Request", "schema": {"type": "object", "additionalProperties": {"type": "string"}}},
                    "422": {"description": "Unprocessable Entity", "schema": {"$ref": "#/definitions/apperr.PipelineErrorResponse"}}
                }
            }
        },
        "/v1/programs/run": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["programs"],
                "summary": "Run a VM program",
                "parameters": [
                    {"description": "Assembly text", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/dto.ProgramRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.ProgramResponse"}},
                    "400": {"description": "Bad Request", "schema": {"type": "object", "additionalProperties": {"type": "string"}}},
                    "422": {"description": "Unprocessable Entity", "schema": {"$ref": "#/definitions/apperr.PipelineErrorResponse"}}
                }
            }
        },
        "/v1/verdicts": {
            "get": {
                "produces": ["application/json"],
                "tags": ["verdicts"],
                "summary": "List stored verdicts",
                "parameters": [
                    {"type": "integer", "description": "Page, starting at 1", "name": "page", "in": "query"},
                    {"type": "integer", "description": "Page size", "name": "size", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.VerdictPage"}},
                    "404": {"description": "Not Found", "schema": {"type": "object", "additionalProperties": {"type": "string"}}}
                }
            }
        }
    },
    "definitions": {
        "apperr.PipelineErrorResponse": {
            "type": "object",
            "properties": {
                "error": {"type": "string"},
                "position": {"type": "integer"},
                "stage": {"type": "string"}
            }
        },
        "dto.FormulaRequest": {
            "type": "object",
            "properties": {
                "atoms": {"type": "array", "items": {"type": "string"}},
                "formula": {"type": "string", "example": "(p1⇒p2)→((¬p1)∨p2)"}
            }
        },
        "dto.EvaluateRequest": {
            "type": "object",
            "properties": {
                "atoms": {"type": "array", "items": {"type": "string"}},
                "env": {"type": "object", "additionalProperties": {"type": "boolean"}},
                "formula": {"type": "string"}
            }
        },
        "dto.Token": {
            "type": "object",
            "properties": {
                "pos": {"type": "integer"},
                "type": {"type": "string"},
                "value": {"type": "string"}
            }
        },
        "dto.CheckResponse": {
            "type": "object",
            "properties": {
                "canonical": {"type": "string"},
                "formula": {"type": "string"},
                "tokens": {"type": "array", "items": {"$ref": "#/definitions/dto.Token"}},
                "tree": {"type": "string"},
                "truncated": {"type": "boolean"}
            }
        },
        "dto.EvaluateResponse": {
            "type": "object",
            "properties": {
                "canonical": {"type": "string"},
                "env": {"type": "object", "additionalProperties": {"type": "boolean"}},
                "formula": {"type": "string"},
                "output": {"type": "string"},
                "program": {"type": "array", "items": {"type": "string"}},
                "tokens": {"type": "array", "items": {"$ref": "#/definitions/dto.Token"}},
                "tree": {"type": "string"},
                "truncated": {"type": "boolean"},
                "value": {"type": "boolean"}
            }
        },
        "dto.TruthTableRow": {
            "type": "object",
            "properties": {
                "result": {"type": "boolean"},
                "values": {"type": "array", "items": {"type": "boolean"}}
            }
        },
        "dto.TruthTableResponse": {
            "type": "object",
            "properties": {
                "atoms": {"type": "array", "items": {"type": "string"}},
                "canonical": {"type": "string"},
                "formula": {"type": "string"},
                "rows": {"type": "array", "items": {"$ref": "#/definitions/dto.TruthTableRow"}},
                "tokens": {"type": "array", "items": {"$ref": "#/definitions/dto.Token"}},
                "tree": {"type": "string"},
                "truncated": {"type": "boolean"}
            }
        },
        "dto.AnalyzeResponse": {
            "type": "object",
            "properties": {
                "canonical": {"type": "string"},
                "counterExample": {"type": "object", "additionalProperties": {"type": "boolean"}},
                "formula": {"type": "string"},
                "model": {"type": "object", "additionalProperties": {"type": "boolean"}},
                "satisfiable": {"type": "boolean"},
                "tautology": {"type": "boolean"},
                "tokens": {"type": "array", "items": {"$ref": "#/definitions/dto.Token"}},
                "tree": {"type": "string"},
                "truncated": {"type": "boolean"}
            }
        },
        "dto.ProgramRequest": {
            "type": "object",
            "properties": {
                "code": {"type": "string", "example": "PUSH 1\nPUSH 0\nAND\nPRINT"}
            }
        },
        "dto.ProgramResponse": {
            "type": "object",
            "properties": {
                "output": {"type": "array", "items": {"type": "string"}},
                "results": {"type": "array", "items": {"type": "boolean"}}
            }
        },
        "verdict.Record": {
            "type": "object",
            "properties": {
                "accepted": {"type": "boolean"},
                "caseId": {"type": "string"},
                "createdAt": {"type": "string"},
                "error": {"type": "string"},
                "formula": {"type": "string"},
                "id": {"type": "string"},
                "kind": {"type": "string"},
                "latencyNs": {"type": "integer"},
                "results": {"type": "array", "items": {"type": "boolean"}},
                "stage": {"type": "string"},
                "suite": {"type": "string"},
                "tree": {"type": "string"}
            }
        },
        "dto.VerdictPage": {
            "type": "object",
            "properties": {
                "hasMore": {"type": "boolean"},
                "items": {"type": "array", "items": {"$ref": "#/definitions/verdict.Record"}},
                "page": {"type": "integer"},
                "size": {"type": "integer"},
                "total": {"type": "integer"}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "Proplogic API",
	Description:      "Checks, evaluates and analyzes propositional formulas and runs boolean VM programs",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
