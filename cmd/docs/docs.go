// Package docs holds the swagger description served at /swagger.
// Regenerate with: swag init -g cmd/entries_backend/main.go -o cmd/docs
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
        "/companies/{company_id}/entries": {
            "get": {
                "security": [{"BearerAuth": []}],
                "description": "Lists one page of a company's journal entries, with lines, filtered and sorted.",
                "produces": ["application/json"],
                "tags": ["entries"],
                "summary": "List journal entries",
                "parameters": [
                    {"type": "string", "description": "Company ID", "name": "company_id", "in": "path", "required": true},
                    {"enum": ["entry_date", "journal_id", "description", "reference_number"], "type": "string", "default": "entry_date", "description": "Sort column", "name": "sort_by", "in": "query"},
                    {"enum": ["asc", "desc"], "type": "string", "default": "desc", "description": "Sort direction", "name": "sort_order", "in": "query"},
                    {"type": "integer", "default": 1, "description": "1-based page number", "name": "page", "in": "query"},
                    {"type": "integer", "default": 20, "description": "Page size (max 100)", "name": "limit", "in": "query"},
                    {"type": "string", "description": "Inclusive lower bound (YYYY-MM-DD)", "name": "date_from", "in": "query"},
                    {"type": "string", "description": "Inclusive upper bound (YYYY-MM-DD)", "name": "date_to", "in": "query"},
                    {"type": "string", "description": "Journal ID", "name": "journal_id", "in": "query"},
                    {"type": "string", "description": "Entries with at least one line on this account", "name": "account_id", "in": "query"},
                    {"type": "string", "description": "Case-insensitive substring of the reference number", "name": "reference", "in": "query"},
                    {"type": "string", "description": "Case-insensitive substring of the description", "name": "description", "in": "query"},
                    {"enum": ["draft", "posted", "cancelled"], "type": "string", "description": "Entry status", "name": "status", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.ListEntriesResponse"}},
                    "400": {"description": "Invalid query parameters", "schema": {"type": "object", "additionalProperties": {"type": "string"}}},
                    "401": {"description": "Unauthorized", "schema": {"type": "object", "additionalProperties": {"type": "string"}}},
                    "403": {"description": "Not a member of the company", "schema": {"type": "object", "additionalProperties": {"type": "string"}}},
                    "500": {"description": "Failed to list entries", "schema": {"type": "object", "additionalProperties": {"type": "string"}}}
                }
            }
        },
        "/companies/{company_id}/entries/{entry_id}": {
            "get": {
                "security": [{"BearerAuth": []}],
                "description": "Retrieves one entry with its lines and totals.",
                "produces": ["application/json"],
                "tags": ["entries"],
                "summary": "Get a journal entry",
                "parameters": [
                    {"type": "string", "description": "Company ID", "name": "company_id", "in": "path", "required": true},
                    {"type": "string", "description": "Entry ID", "name": "entry_id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.EntryResponse"}},
                    "404": {"description": "Entry not found", "schema": {"type": "object", "additionalProperties": {"type": "string"}}}
                }
            },
            "delete": {
                "security": [{"BearerAuth": []}],
                "description": "Deletes an entry together with its lines.",
                "tags": ["entries"],
                "summary": "Delete a journal entry",
                "parameters": [
                    {"type": "string", "description": "Company ID", "name": "company_id", "in": "path", "required": true},
                    {"type": "string", "description": "Entry ID", "name": "entry_id", "in": "path", "required": true}
                ],
                "responses": {
                    "204": {"description": "Entry deleted"},
                    "403": {"description": "Read-only member or not a member", "schema": {"type": "object", "additionalProperties": {"type": "string"}}},
                    "404": {"description": "Entry not found", "schema": {"type": "object", "additionalProperties": {"type": "string"}}}
                }
            }
        },
        "/companies/{company_id}/entries/{entry_id}/status": {
            "patch": {
                "security": [{"BearerAuth": []}],
                "consumes": ["application/json"],
                "tags": ["entries"],
                "summary": "Update the status of a journal entry",
                "parameters": [
                    {"type": "string", "description": "Company ID", "name": "company_id", "in": "path", "required": true},
                    {"type": "string", "description": "Entry ID", "name": "entry_id", "in": "path", "required": true},
                    {"description": "New status", "name": "status", "in": "body", "required": true, "schema": {"$ref": "#/definitions/dto.UpdateEntryStatusRequest"}}
                ],
                "responses": {
                    "204": {"description": "Status updated"},
                    "400": {"description": "Invalid status", "schema": {"type": "object", "additionalProperties": {"type": "string"}}}
                }
            }
        },
        "/companies/{company_id}/entry-stats": {
            "get": {
                "security": [{"BearerAuth": []}],
                "description": "Counts entries per status and sums debit and credit amounts.",
                "produces": ["application/json"],
                "tags": ["entries"],
                "summary": "Journal entry statistics",
                "parameters": [
                    {"type": "string", "description": "Company ID", "name": "company_id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.EntryStatsResponse"}}
                }
            }
        },
        "/companies/{company_id}/accounts": {
            "get": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["lookups"],
                "summary": "List active accounts",
                "parameters": [
                    {"type": "string", "description": "Company ID", "name": "company_id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.ListAccountsResponse"}}
                }
            }
        },
        "/companies/{company_id}/journals": {
            "get": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["lookups"],
                "summary": "List active journals",
                "parameters": [
                    {"type": "string", "description": "Company ID", "name": "company_id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.ListJournalsResponse"}}
                }
            }
        }
    },
    "definitions": {
        "dto.LineItemResponse": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "account_id": {"type": "string"},
                "description": {"type": "string"},
                "debit_amount": {"type": "number"},
                "credit_amount": {"type": "number"}
            }
        },
        "dto.EntryResponse": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "entry_number": {"type": "string"},
                "entry_date": {"type": "string"},
                "journal_id": {"type": "string"},
                "description": {"type": "string"},
                "reference_number": {"type": "string"},
                "status": {"type": "string", "enum": ["draft", "posted", "cancelled"]},
                "lineItems": {"type": "array", "items": {"$ref": "#/definitions/dto.LineItemResponse"}},
                "totalDebit": {"type": "number"},
                "totalCredit": {"type": "number"},
                "createdAt": {"type": "string"},
                "createdBy": {"type": "string"}
            }
        },
        "dto.ListEntriesResponse": {
            "type": "object",
            "properties": {
                "data": {"type": "array", "items": {"$ref": "#/definitions/dto.EntryResponse"}},
                "count": {"type": "integer"}
            }
        },
        "dto.UpdateEntryStatusRequest": {
            "type": "object",
            "required": ["status"],
            "properties": {
                "status": {"type": "string", "enum": ["draft", "posted", "cancelled"]}
            }
        },
        "dto.EntryStatsResponse": {
            "type": "object",
            "properties": {
                "totalEntries": {"type": "integer"},
                "draftEntries": {"type": "integer"},
                "postedEntries": {"type": "integer"},
                "cancelledEntries": {"type": "integer"},
                "totalDebit": {"type": "number"},
                "totalCredit": {"type": "number"}
            }
        },
        "dto.AccountResponse": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "account_number": {"type": "string"},
                "name": {"type": "string"},
                "type": {"type": "string"},
                "class": {"type": "integer"}
            }
        },
        "dto.ListAccountsResponse": {
            "type": "object",
            "properties": {
                "accounts": {"type": "array", "items": {"$ref": "#/definitions/dto.AccountResponse"}}
            }
        },
        "dto.JournalResponse": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "code": {"type": "string"},
                "name": {"type": "string"},
                "type": {"type": "string"}
            }
        },
        "dto.ListJournalsResponse": {
            "type": "object",
            "properties": {
                "journals": {"type": "array", "items": {"$ref": "#/definitions/dto.JournalResponse"}}
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
	Title:            "Journal Entries API",
	Description:      "Lists, filters and manages the journal entries of a company.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
