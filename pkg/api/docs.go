package api

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "securityDefinitions": {
        "ApiKeyAuth": {
            "type": "apiKey",
            "name": "X-API-Key",
            "in": "header"
        }
    },
    "paths": {
        "/health": {
            "get": {
                "security": [{"ApiKeyAuth": []}],
                "tags": ["health"],
                "summary": "Health check",
                "produces": ["application/json"],
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/encode": {
            "post": {
                "security": [{"ApiKeyAuth": []}],
                "tags": ["codec"],
                "summary": "Embed text in an image",
                "consumes": ["multipart/form-data"],
                "produces": ["image/png"],
                "parameters": [
                    {"name": "image", "in": "formData", "type": "file", "required": true, "description": "Carrier image"},
                    {"name": "text", "in": "formData", "type": "string", "required": true, "description": "Text to embed"}
                ],
                "responses": {
                    "200": {"description": "Encoded PNG"},
                    "400": {"description": "Bad request"},
                    "413": {"description": "Payload exceeds image capacity"}
                }
            }
        },
        "/decode": {
            "post": {
                "security": [{"ApiKeyAuth": []}],
                "tags": ["codec"],
                "summary": "Recover text from an image",
                "consumes": ["multipart/form-data"],
                "produces": ["application/json"],
                "parameters": [
                    {"name": "image", "in": "formData", "type": "file", "required": true, "description": "Encoded image"}
                ],
                "responses": {
                    "200": {"description": "Recovered text"},
                    "422": {"description": "Corrupt header or malformed payload"}
                }
            }
        },
        "/capacity": {
            "post": {
                "security": [{"ApiKeyAuth": []}],
                "tags": ["codec"],
                "summary": "Report image capacity",
                "consumes": ["multipart/form-data"],
                "produces": ["application/json"],
                "parameters": [
                    {"name": "image", "in": "formData", "type": "file", "required": true, "description": "Carrier image"}
                ],
                "responses": {"200": {"description": "Capacity report"}}
            }
        },
        "/journal": {
            "get": {
                "security": [{"ApiKeyAuth": []}],
                "tags": ["journal"],
                "summary": "List recorded operations",
                "produces": ["application/json"],
                "parameters": [
                    {"name": "limit", "in": "query", "type": "integer", "required": false}
                ],
                "responses": {
                    "200": {"description": "Journal entries"},
                    "404": {"description": "Journal disabled"}
                }
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0.0",
	Host:             "localhost:8080",
	BasePath:         "/api/v1",
	Schemes:          []string{"http"},
	Title:            "gosteg REST API",
	Description:      "REST surface for the gosteg LSB steganography codec.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
