// Package docs registers the OpenAPI document served at /swagger. The
// template is maintained by hand alongside the handler annotations; keep
// both in sync when endpoints change.
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
        "/auth/login": {
            "post": {
                "description": "Verifies an email/password pair and returns a signed token.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Auth"],
                "summary": "Sign in",
                "operationId": "login",
                "parameters": [
                    {
                        "description": "Sign-in payload",
                        "name": "body",
                        "in": "body",
                        "required": true,
                        "schema": {"$ref": "#/definitions/handlers.LoginRequest"}
                    }
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handlers.AuthResponse"}},
                    "400": {"description": "Bad request", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}},
                    "401": {"description": "Invalid credentials", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}}
                }
            }
        },
        "/auth/me": {
            "get": {
                "description": "Returns the account resolved from the bearer token.",
                "produces": ["application/json"],
                "tags": ["Auth"],
                "summary": "Current identity",
                "operationId": "me",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handlers.MeResponse"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}}
                }
            }
        },
        "/auth/signup": {
            "post": {
                "description": "Creates an agent account and returns a signed token.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Auth"],
                "summary": "Register a new account",
                "operationId": "signup",
                "parameters": [
                    {
                        "description": "Registration payload",
                        "name": "body",
                        "in": "body",
                        "required": true,
                        "schema": {"$ref": "#/definitions/handlers.SignupRequest"}
                    }
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/handlers.AuthResponse"}},
                    "400": {"description": "Bad request", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}},
                    "409": {"description": "Email already in use", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}}
                }
            }
        },
        "/coaching-logs": {
            "get": {
                "description": "Returns coaching logs most-recently-added first.",
                "produces": ["application/json"],
                "tags": ["Coaching"],
                "summary": "List coaching logs",
                "operationId": "listCoachingLogs",
                "parameters": [
                    {"type": "string", "name": "member", "in": "query"},
                    {"type": "string", "name": "coach", "in": "query"},
                    {"type": "string", "name": "from", "in": "query"},
                    {"type": "string", "name": "to", "in": "query"},
                    {"type": "string", "name": "q", "in": "query"},
                    {"type": "integer", "name": "limit", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/domain.CoachingLog"}}},
                    "304": {"description": "Not Modified"}
                }
            },
            "post": {
                "description": "Stores a coaching session for a team member.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Coaching"],
                "summary": "Log a coaching session",
                "operationId": "createCoachingLog",
                "parameters": [
                    {"type": "string", "name": "Idempotency-Key", "in": "header"},
                    {
                        "description": "Coaching session payload",
                        "name": "body",
                        "in": "body",
                        "required": true,
                        "schema": {"$ref": "#/definitions/handlers.CreateCoachingLogRequest"}
                    }
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/domain.CoachingLog"}},
                    "400": {"description": "Bad request", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}}
                }
            }
        },
        "/coaching-logs/{id}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Coaching"],
                "summary": "Fetch one coaching log",
                "operationId": "getCoachingLog",
                "parameters": [
                    {"type": "string", "format": "uuid", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/domain.CoachingLog"}},
                    "404": {"description": "Coaching log not found", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}}
                }
            }
        },
        "/coaching-logs/{id}/acknowledgement": {
            "put": {
                "description": "Records the agent's acknowledgement text and date. Agent role only.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Coaching"],
                "summary": "Acknowledge a coaching session",
                "operationId": "acknowledgeCoachingLog",
                "parameters": [
                    {"type": "string", "format": "uuid", "name": "id", "in": "path", "required": true},
                    {
                        "description": "Acknowledgement payload",
                        "name": "body",
                        "in": "body",
                        "required": true,
                        "schema": {"$ref": "#/definitions/handlers.AcknowledgeRequest"}
                    }
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/domain.CoachingLog"}},
                    "403": {"description": "Forbidden", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}},
                    "404": {"description": "Coaching log not found", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}}
                }
            }
        },
        "/criteria": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Criteria"],
                "summary": "List evaluation criteria",
                "operationId": "listCriteria",
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/domain.Criterion"}}}
                }
            },
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Criteria"],
                "summary": "Append a criterion",
                "operationId": "appendCriterion",
                "parameters": [
                    {
                        "description": "Criterion payload",
                        "name": "body",
                        "in": "body",
                        "required": true,
                        "schema": {"$ref": "#/definitions/handlers.AppendCriterionRequest"}
                    }
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/domain.Criterion"}},
                    "409": {"description": "Duplicate name", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}}
                }
            }
        },
        "/criteria/{id}": {
            "delete": {
                "tags": ["Criteria"],
                "summary": "Remove a criterion",
                "operationId": "deleteCriterion",
                "parameters": [
                    {"type": "string", "format": "uuid", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "204": {"description": "No Content"},
                    "404": {"description": "Criterion not found", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}}
                }
            }
        },
        "/dashboard": {
            "get": {
                "description": "Returns the headline metrics for one month.",
                "produces": ["application/json"],
                "tags": ["Reports"],
                "summary": "Dashboard metrics",
                "operationId": "dashboard",
                "parameters": [
                    {"type": "string", "name": "month", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/services.DashboardMetrics"}},
                    "400": {"description": "Bad request", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}}
                }
            }
        },
        "/evaluations": {
            "get": {
                "description": "Returns evaluations most-recently-added first.",
                "produces": ["application/json"],
                "tags": ["Evaluations"],
                "summary": "List evaluations",
                "operationId": "listEvaluations",
                "parameters": [
                    {"type": "string", "name": "member", "in": "query"},
                    {"type": "string", "name": "evaluator", "in": "query"},
                    {"type": "string", "name": "month", "in": "query"},
                    {"type": "string", "name": "score", "in": "query"},
                    {"type": "string", "name": "q", "in": "query"},
                    {"type": "integer", "name": "limit", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/domain.Evaluation"}}},
                    "304": {"description": "Not Modified"}
                }
            },
            "post": {
                "description": "Validates scores against the current criteria and stores the record immutably.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Evaluations"],
                "summary": "Record an evaluation",
                "operationId": "createEvaluation",
                "parameters": [
                    {"type": "string", "name": "Idempotency-Key", "in": "header"},
                    {
                        "description": "Evaluation payload",
                        "name": "body",
                        "in": "body",
                        "required": true,
                        "schema": {"$ref": "#/definitions/handlers.CreateEvaluationRequest"}
                    }
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/domain.Evaluation"}},
                    "400": {"description": "Bad request", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}}
                }
            }
        },
        "/evaluations/{id}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Evaluations"],
                "summary": "Fetch one evaluation",
                "operationId": "getEvaluation",
                "parameters": [
                    {"type": "string", "format": "uuid", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/domain.Evaluation"}},
                    "404": {"description": "Evaluation not found", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}}
                }
            }
        },
        "/export/csv": {
            "get": {
                "produces": ["text/csv"],
                "tags": ["Export"],
                "summary": "Download all data as CSV",
                "operationId": "exportCSV",
                "responses": {
                    "200": {"description": "CSV payload", "schema": {"type": "string"}}
                }
            }
        },
        "/export/pdf": {
            "get": {
                "produces": ["application/pdf"],
                "tags": ["Export"],
                "summary": "Download a performance report as PDF",
                "operationId": "exportPDF",
                "responses": {
                    "200": {"description": "PDF payload", "schema": {"type": "string"}}
                }
            }
        },
        "/members": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Members"],
                "summary": "List team members",
                "operationId": "listMembers",
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/domain.Member"}}}
                }
            },
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Members"],
                "summary": "Add a team member",
                "operationId": "createMember",
                "parameters": [
                    {
                        "description": "Member payload",
                        "name": "body",
                        "in": "body",
                        "required": true,
                        "schema": {"$ref": "#/definitions/handlers.CreateMemberRequest"}
                    }
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/domain.Member"}},
                    "403": {"description": "Forbidden", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}},
                    "409": {"description": "Duplicate name", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}}
                }
            }
        },
        "/members/{id}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Members"],
                "summary": "Fetch a team member",
                "operationId": "getMember",
                "parameters": [
                    {"type": "string", "format": "uuid", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/domain.Member"}},
                    "400": {"description": "Bad request", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}},
                    "404": {"description": "Member not found", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}}
                }
            },
            "delete": {
                "tags": ["Members"],
                "summary": "Remove a team member",
                "operationId": "deleteMember",
                "parameters": [
                    {"type": "string", "format": "uuid", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "204": {"description": "No Content"},
                    "404": {"description": "Member not found", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}}
                }
            }
        },
        "/reports/coaching": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Reports"],
                "summary": "Coaching sessions per member",
                "operationId": "coachingCounts",
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "object", "additionalProperties": {"type": "integer"}}}
                }
            }
        },
        "/reports/skills": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Reports"],
                "summary": "Average score per skill",
                "operationId": "skillAverages",
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "object", "additionalProperties": {"type": "number"}}}
                }
            }
        },
        "/users": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Users"],
                "summary": "List user accounts",
                "operationId": "listUsers",
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/domain.UserAccount"}}}
                }
            },
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Users"],
                "summary": "Create a user account",
                "operationId": "createUser",
                "parameters": [
                    {
                        "description": "Account payload",
                        "name": "body",
                        "in": "body",
                        "required": true,
                        "schema": {"$ref": "#/definitions/handlers.CreateUserRequest"}
                    }
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/domain.UserAccount"}},
                    "403": {"description": "Forbidden", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}}
                }
            }
        },
        "/users/{id}": {
            "delete": {
                "tags": ["Users"],
                "summary": "Delete a user account",
                "operationId": "deleteUser",
                "parameters": [
                    {"type": "string", "format": "uuid", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "204": {"description": "No Content"},
                    "404": {"description": "User not found", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}}
                }
            }
        }
    },
    "definitions": {
        "domain.CoachingLog": {
            "type": "object",
            "properties": {
                "acknowledgement": {"type": "string"},
                "acknowledgement_date": {"type": "string"},
                "actions": {"type": "string"},
                "coach": {"type": "string"},
                "created_at": {"type": "string"},
                "date": {"type": "string"},
                "followup": {"type": "string"},
                "id": {"type": "string"},
                "member": {"type": "string"},
                "topics": {"type": "string"},
                "updated_at": {"type": "string"}
            }
        },
        "domain.Criterion": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "name": {"type": "string"},
                "position": {"type": "integer"}
            }
        },
        "domain.Evaluation": {
            "type": "object",
            "properties": {
                "comments": {"type": "string"},
                "created_at": {"type": "string"},
                "date": {"type": "string"},
                "evaluator": {"type": "string"},
                "id": {"type": "string"},
                "member": {"type": "string"},
                "scores": {"type": "object", "additionalProperties": {"type": "integer"}},
                "total": {"type": "number"}
            }
        },
        "domain.Member": {
            "type": "object",
            "properties": {
                "created_at": {"type": "string"},
                "id": {"type": "string"},
                "name": {"type": "string"}
            }
        },
        "domain.UserAccount": {
            "type": "object",
            "properties": {
                "created_at": {"type": "string"},
                "display_name": {"type": "string"},
                "email": {"type": "string"},
                "id": {"type": "string"},
                "role": {"type": "string"}
            }
        },
        "handlers.AcknowledgeRequest": {
            "type": "object",
            "required": ["acknowledgement"],
            "properties": {
                "acknowledgement": {"type": "string", "example": "Reviewed and agreed"},
                "date": {"type": "string", "example": "2026-08-16"}
            }
        },
        "handlers.AppendCriterionRequest": {
            "type": "object",
            "required": ["name"],
            "properties": {
                "name": {"type": "string", "example": "Escalation Handling"}
            }
        },
        "handlers.AuthResponse": {
            "type": "object",
            "properties": {
                "token": {"type": "string"},
                "user": {"$ref": "#/definitions/domain.UserAccount"}
            }
        },
        "handlers.CreateCoachingLogRequest": {
            "type": "object",
            "required": ["date", "member", "topics"],
            "properties": {
                "acknowledgement": {"type": "string", "example": "Reviewed and agreed"},
                "acknowledgement_date": {"type": "string", "example": "2026-08-16"},
                "actions": {"type": "string", "example": "Shadow two calls next week"},
                "coach": {"type": "string", "example": "Eva Luator"},
                "date": {"type": "string", "example": "2026-08-15"},
                "followup": {"type": "string", "example": "2026-08-29"},
                "member": {"type": "string", "example": "Jane Doe"},
                "topics": {"type": "string", "example": "Call control, empathy statements"}
            }
        },
        "handlers.CreateEvaluationRequest": {
            "type": "object",
            "required": ["date", "member", "scores"],
            "properties": {
                "comments": {"type": "string", "example": "Great call control"},
                "date": {"type": "string", "example": "2026-08-15"},
                "evaluator": {"type": "string", "example": "Eva Luator"},
                "member": {"type": "string", "example": "Jane Doe"},
                "scores": {"type": "object", "additionalProperties": {"type": "integer"}}
            }
        },
        "handlers.CreateMemberRequest": {
            "type": "object",
            "required": ["name"],
            "properties": {
                "name": {"type": "string", "maxLength": 255, "minLength": 1, "example": "Jane Doe"}
            }
        },
        "handlers.CreateUserRequest": {
            "type": "object",
            "required": ["display_name", "email", "password", "role"],
            "properties": {
                "display_name": {"type": "string", "example": "Eva Luator"},
                "email": {"type": "string", "example": "eva@example.com"},
                "password": {"type": "string", "example": "hunter2hunter2"},
                "role": {"type": "string", "example": "evaluator"}
            }
        },
        "handlers.ErrorResponse": {
            "type": "object",
            "properties": {
                "code": {"type": "string", "example": "not_found"},
                "message": {"type": "string", "example": "member not found"},
                "request_id": {"type": "string", "example": "123e4567-e89b-12d3-a456-426614174000"}
            }
        },
        "handlers.LoginRequest": {
            "type": "object",
            "required": ["email", "password"],
            "properties": {
                "email": {"type": "string", "example": "sam@example.com"},
                "password": {"type": "string", "example": "hunter2hunter2"}
            }
        },
        "handlers.MeResponse": {
            "type": "object",
            "properties": {
                "display_name": {"type": "string"},
                "email": {"type": "string"},
                "id": {"type": "string"},
                "role": {"type": "string"}
            }
        },
        "handlers.SignupRequest": {
            "type": "object",
            "required": ["display_name", "email", "password"],
            "properties": {
                "display_name": {"type": "string", "example": "Sam Agent"},
                "email": {"type": "string", "example": "sam@example.com"},
                "password": {"type": "string", "example": "hunter2hunter2"}
            }
        },
        "services.DashboardMetrics": {
            "type": "object",
            "properties": {
                "average_score": {"type": "number"},
                "coaching_total": {"type": "integer"},
                "has_month_data": {"type": "boolean"},
                "members_evaluated": {"type": "integer"},
                "month": {"type": "string"},
                "monthly_series": {"type": "array", "items": {"$ref": "#/definitions/report.MonthlyAverage"}},
                "top_skill": {"type": "string"}
            }
        },
        "report.MonthlyAverage": {
            "type": "object",
            "properties": {
                "average": {"type": "number"},
                "month": {"type": "string"}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/api/v1",
	Schemes:          []string{},
	Title:            "Coaching Backend API",
	Description:      "Performance evaluation and coaching tracker for call-center teams.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
