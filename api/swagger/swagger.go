package swagger

import "github.com/swaggo/swag"

const docTemplate = `{
    "swagger": "2.0",
    "info": {
        "title": "Guardianes del Agua API",
        "description": "Mission tracker for the water-conservation classroom project",
        "version": "1.0.0"
    },
    "basePath": "/api/v1",
    "schemes": [
        "http"
    ],
    "tags": [
        {"name": "Roster", "description": "Group and team login"},
        {"name": "Progress", "description": "Team mission journey"},
        {"name": "Uploads", "description": "Evidence file storage"},
        {"name": "Feedback", "description": "Mentor feedback proxy"},
        {"name": "Review", "description": "Teacher review dashboard"}
    ],
    "paths": {
        "/roster/groups": {
            "get": {
                "tags": ["Roster"],
                "summary": "List roster groups",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/roster/login": {
            "post": {
                "tags": ["Roster"],
                "summary": "Resolve a student to their team",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/LoginRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "404": {"description": "Team not found"}
                }
            }
        },
        "/teams/{teamId}/progress": {
            "get": {
                "tags": ["Progress"],
                "summary": "Get progress with module statuses",
                "parameters": [
                    {"name": "teamId", "in": "path", "required": true, "type": "string"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/teams/{teamId}/modules/{moduleId}/draft": {
            "put": {
                "tags": ["Progress"],
                "summary": "Save draft answers for one module",
                "parameters": [
                    {"name": "teamId", "in": "path", "required": true, "type": "string"},
                    {"name": "moduleId", "in": "path", "required": true, "type": "integer"},
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/ModuleDataRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "409": {"description": "Record frozen"}
                }
            }
        },
        "/teams/{teamId}/modules/{moduleId}/complete": {
            "post": {
                "tags": ["Progress"],
                "summary": "Complete one module",
                "parameters": [
                    {"name": "teamId", "in": "path", "required": true, "type": "string"},
                    {"name": "moduleId", "in": "path", "required": true, "type": "integer"},
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/ModuleDataRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "409": {"description": "Record frozen"}
                }
            }
        },
        "/teams/{teamId}/submit": {
            "post": {
                "tags": ["Progress"],
                "summary": "Submit the plan for review",
                "parameters": [
                    {"name": "teamId", "in": "path", "required": true, "type": "string"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "412": {"description": "Missions incomplete"}
                }
            }
        },
        "/teams/{teamId}/project": {
            "post": {
                "tags": ["Progress"],
                "summary": "Select or change the project track",
                "parameters": [
                    {"name": "teamId", "in": "path", "required": true, "type": "string"},
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/SelectProjectRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "403": {"description": "Project locked"}
                }
            }
        },
        "/teams/{teamId}/session/finish": {
            "post": {
                "tags": ["Progress"],
                "summary": "Log an end-of-session snapshot",
                "parameters": [
                    {"name": "teamId", "in": "path", "required": true, "type": "string"}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/uploads": {
            "post": {
                "tags": ["Uploads"],
                "summary": "Store an evidence file",
                "consumes": ["multipart/form-data"],
                "parameters": [
                    {"name": "file", "in": "formData", "required": true, "type": "file"}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "413": {"description": "File too large"},
                    "415": {"description": "Unsupported file type"}
                }
            }
        },
        "/feedback": {
            "post": {
                "tags": ["Feedback"],
                "summary": "Ask the mentor to evaluate an answer",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/FeedbackRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "502": {"description": "Mentor unavailable"}
                }
            }
        },
        "/review/verify": {
            "post": {
                "tags": ["Review"],
                "summary": "Verify the teacher access code",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/VerifyCodeRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK"},
                    "401": {"description": "Invalid access code"}
                }
            }
        },
        "/review/teams": {
            "get": {
                "tags": ["Review"],
                "summary": "Teams partitioned by approval status",
                "parameters": [
                    {"name": "X-Access-Code", "in": "header", "required": true, "type": "string"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/review/teams/{teamId}": {
            "get": {
                "tags": ["Review"],
                "summary": "Full answers of one team",
                "parameters": [
                    {"name": "X-Access-Code", "in": "header", "required": true, "type": "string"},
                    {"name": "teamId", "in": "path", "required": true, "type": "string"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/review/teams/{teamId}/approve": {
            "post": {
                "tags": ["Review"],
                "summary": "Approve a pending plan",
                "parameters": [
                    {"name": "X-Access-Code", "in": "header", "required": true, "type": "string"},
                    {"name": "teamId", "in": "path", "required": true, "type": "string"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/review/teams/{teamId}/reject": {
            "post": {
                "tags": ["Review"],
                "summary": "Reject a plan with feedback",
                "parameters": [
                    {"name": "X-Access-Code", "in": "header", "required": true, "type": "string"},
                    {"name": "teamId", "in": "path", "required": true, "type": "string"},
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/RejectRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/review/sessions": {
            "get": {
                "tags": ["Review"],
                "summary": "Session history, newest first",
                "parameters": [
                    {"name": "X-Access-Code", "in": "header", "required": true, "type": "string"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/review/sessions/export": {
            "get": {
                "tags": ["Review"],
                "summary": "Download session history as CSV or PDF",
                "parameters": [
                    {"name": "X-Access-Code", "in": "header", "required": true, "type": "string"},
                    {"name": "format", "in": "query", "type": "string", "enum": ["csv", "pdf"]}
                ],
                "responses": {
                    "200": {"description": "File download"}
                }
            }
        }
    },
    "definitions": {
        "LoginRequest": {
            "type": "object",
            "properties": {
                "groupId": {"type": "string"},
                "memberName": {"type": "string"},
                "teamName": {"type": "string"}
            },
            "required": ["groupId", "memberName"]
        },
        "ModuleDataRequest": {
            "type": "object",
            "properties": {
                "data": {"type": "object"}
            },
            "required": ["data"]
        },
        "SelectProjectRequest": {
            "type": "object",
            "properties": {
                "projectId": {"type": "string"},
                "overrideCode": {"type": "string"}
            },
            "required": ["projectId"]
        },
        "VerifyCodeRequest": {
            "type": "object",
            "properties": {
                "code": {"type": "string"}
            },
            "required": ["code"]
        },
        "RejectRequest": {
            "type": "object",
            "properties": {
                "feedback": {"type": "string"}
            },
            "required": ["feedback"]
        },
        "FeedbackRequest": {
            "type": "object",
            "properties": {
                "fieldLabel": {"type": "string"},
                "studentText": {"type": "string"},
                "task": {"type": "string"},
                "prompt": {"type": "string"},
                "moduleTitle": {"type": "string"}
            },
            "required": ["fieldLabel", "studentText"]
        },
        "StoredFile": {
            "type": "object",
            "properties": {
                "name": {"type": "string"},
                "url": {"type": "string"},
                "mimeType": {"type": "string"},
                "size": {"type": "integer"},
                "status": {"type": "string", "enum": ["uploaded", "pending"]}
            }
        },
        "APIError": {
            "type": "object",
            "properties": {
                "code": {"type": "string"},
                "message": {"type": "string"},
                "status": {"type": "integer"}
            }
        },
        "ResponseEnvelope": {
            "type": "object",
            "properties": {
                "data": {"type": "object"},
                "error": {"$ref": "#/definitions/APIError"},
                "meta": {"type": "object"}
            }
        }
    }
}`

type swaggerDoc struct{}

// ReadDoc returns the Swagger document.
func (s *swaggerDoc) ReadDoc() string {
	return docTemplate
}

func init() {
	swag.Register(swag.Name, &swaggerDoc{})
}
