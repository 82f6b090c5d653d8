// Package docs holds the Swagger document served under /swagger.
// It follows the swag output layout and mirrors the annotations in
// cmd/accounts_movements/main.go and internal/handlers; regenerate with go generate ./cmd/accounts_movements.
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
		"/reports": {
			"get": {
				"security": [
					{
						"BearerAuth": []
					}
				],
				"description": "Returns one nested statement per account with movements between startDate and endDate. totalElements counts matching accounts and may exceed the number of returned items when a customer cannot be resolved.",
				"produces": [
					"application/json"
				],
				"tags": [
					"reports"
				],
				"summary": "Generate account statement report",
				"parameters": [
					{
						"type": "string",
						"description": "Start date (YYYY-MM-DD)",
						"name": "startDate",
						"in": "query",
						"required": true
					},
					{
						"type": "string",
						"description": "End date (YYYY-MM-DD)",
						"name": "endDate",
						"in": "query",
						"required": true
					},
					{
						"type": "integer",
						"description": "Restrict the report to one customer",
						"name": "customerId",
						"in": "query"
					},
					{
						"type": "integer",
						"default": 0,
						"description": "Zero-based page number",
						"name": "page",
						"in": "query"
					},
					{
						"type": "integer",
						"default": 20,
						"description": "Page size",
						"name": "size",
						"in": "query"
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/dto.PageResponse-domain_AccountStatementReport"
						}
					},
					"400": {
						"description": "Invalid input or date range",
						"schema": {
							"type": "object",
							"additionalProperties": {
								"type": "string"
							}
						}
					},
					"401": {
						"description": "Unauthorized",
						"schema": {
							"type": "object",
							"additionalProperties": {
								"type": "string"
							}
						}
					},
					"404": {
						"description": "Customer not found",
						"schema": {
							"type": "object",
							"additionalProperties": {
								"type": "string"
							}
						}
					},
					"500": {
						"description": "Failed to generate report",
						"schema": {
							"type": "object",
							"additionalProperties": {
								"type": "string"
							}
						}
					},
					"503": {
						"description": "Customer directory unavailable",
						"schema": {
							"type": "object",
							"additionalProperties": {
								"type": "string"
							}
						}
					}
				}
			}
		},
		"/reports/plain": {
			"get": {
				"security": [
					{
						"BearerAuth": []
					}
				],
				"description": "Returns one flat summary row per account with movements between startDate and endDate.",
				"produces": [
					"application/json"
				],
				"tags": [
					"reports"
				],
				"summary": "Generate plain movement report",
				"parameters": [
					{
						"type": "string",
						"description": "Start date (YYYY-MM-DD)",
						"name": "startDate",
						"in": "query",
						"required": true
					},
					{
						"type": "string",
						"description": "End date (YYYY-MM-DD)",
						"name": "endDate",
						"in": "query",
						"required": true
					},
					{
						"type": "integer",
						"description": "Restrict the report to one customer",
						"name": "customerId",
						"in": "query"
					},
					{
						"type": "integer",
						"default": 0,
						"description": "Zero-based page number",
						"name": "page",
						"in": "query"
					},
					{
						"type": "integer",
						"default": 20,
						"description": "Page size",
						"name": "size",
						"in": "query"
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/dto.PageResponse-domain_PlainMovementReport"
						}
					},
					"400": {
						"description": "Invalid input or date range",
						"schema": {
							"type": "object",
							"additionalProperties": {
								"type": "string"
							}
						}
					},
					"401": {
						"description": "Unauthorized",
						"schema": {
							"type": "object",
							"additionalProperties": {
								"type": "string"
							}
						}
					},
					"404": {
						"description": "Customer not found",
						"schema": {
							"type": "object",
							"additionalProperties": {
								"type": "string"
							}
						}
					},
					"500": {
						"description": "Failed to generate report",
						"schema": {
							"type": "object",
							"additionalProperties": {
								"type": "string"
							}
						}
					},
					"503": {
						"description": "Customer directory unavailable",
						"schema": {
							"type": "object",
							"additionalProperties": {
								"type": "string"
							}
						}
					}
				}
			}
		}
	},
	"definitions": {
		"domain.AccountStatementReport": {
			"type": "object",
			"properties": {
				"customer": {
					"$ref": "#/definitions/domain.CustomerReport"
				}
			}
		},
		"domain.AccountType": {
			"type": "string",
			"enum": [
				"SAVINGS",
				"CHECKING"
			],
			"x-enum-varnames": [
				"Savings",
				"Checking"
			]
		},
		"domain.CustomerAccountStatementReport": {
			"type": "object",
			"properties": {
				"actualBalance": {
					"type": "number"
				},
				"initialBalance": {
					"type": "number"
				},
				"number": {
					"type": "string"
				},
				"movements": {
					"type": "array",
					"items": {
						"$ref": "#/definitions/domain.MovementAccountStatementReport"
					}
				},
				"type": {
					"$ref": "#/definitions/domain.AccountType"
				}
			}
		},
		"domain.CustomerReport": {
			"type": "object",
			"properties": {
				"accounts": {
					"type": "array",
					"items": {
						"$ref": "#/definitions/domain.CustomerAccountStatementReport"
					}
				},
				"name": {
					"type": "string"
				}
			}
		},
		"domain.MovementAccountStatementReport": {
			"type": "object",
			"properties": {
				"amount": {
					"type": "number"
				},
				"balance": {
					"type": "number",
					"x-nullable": true
				},
				"date": {
					"type": "string",
					"format": "date-time"
				},
				"movementType": {
					"$ref": "#/definitions/domain.MovementType"
				}
			}
		},
		"domain.MovementType": {
			"type": "string",
			"enum": [
				"DEPOSIT",
				"WITHDRAWAL"
			],
			"x-enum-varnames": [
				"Deposit",
				"Withdrawal"
			]
		},
		"domain.PlainMovementReport": {
			"type": "object",
			"properties": {
				"cliente": {
					"type": "string"
				},
				"estado": {
					"type": "boolean"
				},
				"fecha": {
					"type": "string"
				},
				"movimiento": {
					"type": "number"
				},
				"numeroCuenta": {
					"type": "string"
				},
				"saldoDisponible": {
					"type": "number"
				},
				"saldoInicial": {
					"type": "number"
				},
				"tipo": {
					"type": "string"
				}
			}
		},
		"dto.PageResponse-domain_AccountStatementReport": {
			"type": "object",
			"properties": {
				"content": {
					"type": "array",
					"items": {
						"$ref": "#/definitions/domain.AccountStatementReport"
					}
				},
				"empty": {
					"type": "boolean"
				},
				"first": {
					"type": "boolean"
				},
				"last": {
					"type": "boolean"
				},
				"number": {
					"type": "integer"
				},
				"numberOfElements": {
					"type": "integer"
				},
				"size": {
					"type": "integer"
				},
				"totalElements": {
					"type": "integer"
				},
				"totalPages": {
					"type": "integer"
				}
			}
		},
		"dto.PageResponse-domain_PlainMovementReport": {
			"type": "object",
			"properties": {
				"content": {
					"type": "array",
					"items": {
						"$ref": "#/definitions/domain.PlainMovementReport"
					}
				},
				"empty": {
					"type": "boolean"
				},
				"first": {
					"type": "boolean"
				},
				"last": {
					"type": "boolean"
				},
				"number": {
					"type": "integer"
				},
				"numberOfElements": {
					"type": "integer"
				},
				"size": {
					"type": "integer"
				},
				"totalElements": {
					"type": "integer"
				},
				"totalPages": {
					"type": "integer"
				}
			}
		}
	},
	"securityDefinitions": {
		"BearerAuth": {
			"description": "Type \"Bearer\" followed by a space and JWT token.",
			"type": "apiKey",
			"name": "Authorization",
			"in": "header"
		}
	}
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:8080",
	BasePath:         "/api/v1",
	Schemes:          []string{},
	Title:            "Accounts & Movements Reporting API",
	Description:      "Read-only account statement reports over accounts and their movements.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
