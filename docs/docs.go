// Package docs is the swagger document served at /docs.
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
        "/auth/email": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["auth"],
                "summary": "Send a verification email",
                "parameters": [
                    {"in": "body", "name": "request", "required": true, "schema": {"$ref": "#/definitions/dtos.EmailAuthDTO"}}
                ],
                "responses": {
                    "200": {"description": "Verification email sent"},
                    "400": {"description": "Invalid request payload"},
                    "429": {"description": "too many requests"},
                    "500": {"description": "Failed to send verification email"}
                }
            }
        },
        "/auth/verify": {
            "get": {
                "produces": ["application/json"],
                "tags": ["auth"],
                "summary": "Verify an email with a token",
                "parameters": [
                    {"type": "string", "in": "query", "name": "token", "required": true}
                ],
                "responses": {
                    "200": {"description": "Email verified successfully"},
                    "400": {"description": "Invalid or expired token"},
                    "500": {"description": "Failed to verify email"}
                }
            }
        },
        "/auth/me": {
            "get": {
                "produces": ["application/json"],
                "tags": ["auth"],
                "summary": "Current user",
                "security": [{"BearerAuth": []}],
                "responses": {
                    "200": {"description": "OK"},
                    "401": {"description": "unauthorized access"}
                }
            }
        },
        "/mentors/match": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["mentors"],
                "summary": "Rank available mentors for a mentee",
                "parameters": [
                    {"in": "body", "name": "request", "required": true, "schema": {"$ref": "#/definitions/dtos.MatchRequestDTO"}}
                ],
                "responses": {
                    "200": {"description": "Mentors ordered by matchScore, highest first"},
                    "400": {"description": "Invalid request payload"},
                    "500": {"description": "Failed to find mentors"}
                }
            }
        },
        "/mentors": {
            "post": {
                "consumes": ["application/json"],
                "tags": ["mentors"],
                "summary": "Register a mentor profile",
                "responses": {"201": {"description": "Created"}, "404": {"description": "User not found"}}
            }
        },
        "/mentors/{id}/availability": {
            "patch": {
                "consumes": ["application/json"],
                "tags": ["mentors"],
                "summary": "Toggle mentor availability",
                "parameters": [{"type": "integer", "in": "path", "name": "id", "required": true}],
                "responses": {"200": {"description": "OK"}, "404": {"description": "Mentor not found"}}
            }
        },
        "/users": {
            "post": {
                "consumes": ["application/json"],
                "tags": ["users"],
                "summary": "Create a wallet user",
                "responses": {"201": {"description": "Created"}}
            }
        },
        "/reputation/{address}": {
            "get": {
                "tags": ["users"],
                "summary": "Reputation score of an address",
                "parameters": [{"type": "string", "in": "path", "name": "address", "required": true}],
                "responses": {"200": {"description": "OK"}}
            },
            "put": {
                "consumes": ["application/json"],
                "tags": ["users"],
                "summary": "Update the reputation score of an address",
                "parameters": [{"type": "string", "in": "path", "name": "address", "required": true}],
                "responses": {"200": {"description": "OK"}, "401": {"description": "unauthorized access"}, "404": {"description": "User not found"}}
            }
        },
        "/stories": {
            "get": {
                "tags": ["stories"],
                "summary": "Published stories",
                "parameters": [{"type": "integer", "in": "query", "name": "page"}],
                "responses": {"200": {"description": "OK"}}
            },
            "post": {
                "consumes": ["application/json"],
                "tags": ["stories"],
                "summary": "Create a story",
                "responses": {"201": {"description": "Created"}}
            }
        },
        "/journals": {
            "post": {
                "consumes": ["application/json"],
                "tags": ["journals"],
                "summary": "Create a journal entry",
                "responses": {"201": {"description": "Created"}}
            }
        },
        "/journals/{userId}": {
            "get": {
                "tags": ["journals"],
                "summary": "Journal entries of a user",
                "parameters": [{"type": "integer", "in": "path", "name": "userId", "required": true}],
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/generate-image": {
            "post": {
                "consumes": ["application/json"],
                "tags": ["media"],
                "summary": "Generate an image from a prompt",
                "responses": {"200": {"description": "OK"}, "500": {"description": "Failed to generate image"}}
            }
        },
        "/generate-video": {
            "post": {
                "consumes": ["application/json"],
                "tags": ["media"],
                "summary": "Generate a video from a prompt",
                "responses": {"200": {"description": "OK"}, "500": {"description": "Failed to generate video"}}
            }
        }
    },
    "definitions": {
        "dtos.EmailAuthDTO": {
            "type": "object",
            "required": ["email"],
            "properties": {"email": {"type": "string"}}
        },
        "dtos.MatchPreferences": {
            "type": "object",
            "required": ["expertise"],
            "properties": {"expertise": {"type": "string"}}
        },
        "dtos.MatchRequestDTO": {
            "type": "object",
            "properties": {
                "menteeAddress": {"type": "string"},
                "preferences": {"$ref": "#/definitions/dtos.MatchPreferences"}
            }
        }
    },
    "securityDefinitions": {
        "BearerAuth": {"type": "apiKey", "name": "Authorization", "in": "header"}
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:8000",
	BasePath:         "/api",
	Schemes:          []string{},
	Title:            "Pathfinder API",
	Description:      "Mentorship and storytelling backend: mentor matching, email verification, stories, journals and media generation.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
