// Package docs holds the OpenAPI document served under /swagger/. It follows
// the swag annotations on the handlers; money amounts are decimal strings.
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
        "/admin/settings": {
            "get": {
                "description": "Returns stored overrides and the defaults they produce",
                "produces": ["application/json"],
                "tags": ["settings"],
                "summary": "List settings",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handlers.SettingsStatus"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/handlers.Response"}}
                }
            },
            "put": {
                "description": "Validates every value before storing any of them",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["settings"],
                "summary": "Update several settings",
                "parameters": [
                    {"description": "Key to value map", "name": "settings", "in": "body", "required": true, "schema": {"type": "object", "additionalProperties": {"type": "string"}}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handlers.Response"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/handlers.Response"}}
                }
            }
        },
        "/admin/settings/{key}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["settings"],
                "summary": "Get one setting",
                "parameters": [
                    {"type": "string", "description": "Setting key", "name": "key", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/models.Setting"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/handlers.Response"}}
                }
            },
            "put": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["settings"],
                "summary": "Update one setting",
                "parameters": [
                    {"type": "string", "description": "Setting key", "name": "key", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/models.Setting"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/handlers.Response"}}
                }
            },
            "delete": {
                "produces": ["application/json"],
                "tags": ["settings"],
                "summary": "Remove a setting",
                "parameters": [
                    {"type": "string", "description": "Setting key", "name": "key", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handlers.Response"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/handlers.Response"}}
                }
            }
        },
        "/api/valuation": {
            "get": {
                "description": "GET reads the dashboard form parameters (percentages); POST reads a JSON body (fractions).",
                "produces": ["application/json"],
                "tags": ["valuation"],
                "summary": "Value the IP portfolio",
                "parameters": [
                    {"description": "Valuation inputs", "name": "request", "in": "body", "schema": {"$ref": "#/definitions/models.ValuationRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/models.ValuationResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/handlers.Response"}}
                }
            },
            "post": {
                "description": "GET reads the dashboard form parameters (percentages); POST reads a JSON body (fractions).",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["valuation"],
                "summary": "Value the IP portfolio",
                "parameters": [
                    {"description": "Valuation inputs", "name": "request", "in": "body", "schema": {"$ref": "#/definitions/models.ValuationRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/models.ValuationResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/handlers.Response"}}
                }
            }
        },
        "/health": {
            "get": {
                "description": "Returns the health status of the application",
                "produces": ["application/json"],
                "tags": ["system"],
                "summary": "Health check",
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "object", "additionalProperties": {"type": "string"}}}
                }
            }
        }
    },
    "definitions": {
        "handlers.Response": {
            "type": "object",
            "properties": {
                "count": {"type": "integer"},
                "elapsed": {"type": "string"},
                "message": {"type": "string"},
                "success": {"type": "boolean"}
            }
        },
        "handlers.SettingsStatus": {
            "type": "object",
            "properties": {
                "effective": {"type": "object"},
                "keys": {"type": "array", "items": {"type": "string"}},
                "settings": {"type": "array", "items": {"$ref": "#/definitions/models.Setting"}}
            }
        },
        "models.Setting": {
            "type": "object",
            "properties": {
                "created_at": {"type": "string"},
                "key": {"type": "string"},
                "updated_at": {"type": "string"},
                "value": {"type": "string"}
            }
        },
        "models.AssetValue": {
            "type": "object",
            "properties": {
                "cash_flows": {"type": "array", "items": {"type": "string"}},
                "display": {"type": "string"},
                "kind": {"type": "string"},
                "name": {"type": "string"},
                "npv": {"type": "string"}
            }
        },
        "models.ValuationRequest": {
            "type": "object",
            "properties": {
                "allocation": {"type": "number"},
                "app_revenue": {"type": "array", "items": {"type": "number"}},
                "discount_rate": {"type": "number"},
                "licensed_cash_flows": {"type": "array", "items": {"type": "number"}},
                "sale_value": {"type": "number"},
                "years": {"type": "integer"},
                "years_until_sale": {"type": "integer"}
            }
        },
        "models.ValuationInputs": {
            "type": "object",
            "properties": {
                "allocation": {"type": "string"},
                "app_revenue": {"type": "array", "items": {"type": "string"}},
                "discount_rate": {"type": "string"},
                "licensed_cash_flows": {"type": "array", "items": {"type": "string"}},
                "sale_value": {"type": "string"},
                "years": {"type": "integer"},
                "years_until_sale": {"type": "integer"}
            }
        },
        "models.ValuationResponse": {
            "type": "object",
            "properties": {
                "assets": {"type": "array", "items": {"$ref": "#/definitions/models.AssetValue"}},
                "inputs": {"$ref": "#/definitions/models.ValuationInputs"},
                "run_id": {"type": "string"},
                "total": {"type": "string"},
                "total_display": {"type": "string"}
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
	Title:            "IP Portfolio Valuation API",
	Description:      "Net present value of licensed, internal and subscription IP assets.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
