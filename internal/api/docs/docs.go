// Package docs registers the OpenAPI description of the parse service with swag.
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "contact": {},
        "license": {
            "name": "Apache 2.0",
            "url": "https://opensource.org/licenses/Apache-2.0"
        },
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/api/v1/parse": {
            "post": {
                "description": "Parses a program and returns its syntax tree as JSON and as an s-expression",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["parser"],
                "summary": "Parse source into an AST",
                "parameters": [
                    {
                        "description": "Program source",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {"$ref": "#/definitions/router.SourceRequest"}
                    }
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/router.ParseResponse"}},
                    "400": {"description": "Bad Request", "schema": {"type": "object", "additionalProperties": {"type": "string"}}},
                    "422": {"description": "Unprocessable Entity", "schema": {"type": "object", "additionalProperties": {}}}
                }
            }
        },
        "/api/v1/tokenize": {
            "post": {
                "description": "Returns the token stream of a program, terminated by an EOF token",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["parser"],
                "summary": "Tokenize source",
                "parameters": [
                    {
                        "description": "Program source",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {"$ref": "#/definitions/router.SourceRequest"}
                    }
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/router.TokenizeResponse"}},
                    "400": {"description": "Bad Request", "schema": {"type": "object", "additionalProperties": {"type": "string"}}},
                    "422": {"description": "Unprocessable Entity", "schema": {"type": "object", "additionalProperties": {}}}
                }
            }
        }
    },
    "definitions": {
        "router.SourceRequest": {
            "type": "object",
            "properties": {
                "source": {"type": "string", "example": "let x = 2 + 3 * 4;"}
            }
        },
        "router.ParseResponse": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "ast": {"type": "object"},
                "sexpr": {"type": "string", "example": "(program (let (x (+ 2 (* 3 4)))))"}
            }
        },
        "router.TokenDTO": {
            "type": "object",
            "properties": {
                "type": {"type": "string", "example": "NUMBER"},
                "value": {"type": "string", "example": "42"},
                "offset": {"type": "integer"},
                "line": {"type": "integer"},
                "column": {"type": "integer"}
            }
        },
        "router.TokenizeResponse": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "tokens": {"type": "array", "items": {"$ref": "#/definitions/router.TokenDTO"}}
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
	Title:            "letter-rdp API",
	Description:      "Tokenizes and parses programs of a small expression/statement language",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
