// Package docs holds the OpenAPI document served at /swagger.
// Regenerate with: swag init -g cmd/api/main.go
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
		"/auth/register": {
			"post": {
				"tags": [
					"auth"
				],
				"summary": "Register a student",
				"produces": [
					"application/json"
				],
				"responses": {
					"201": {
						"description": "Account created",
						"schema": {
							"$ref": "#/definitions/dto.APIResponse"
						}
					},
					"400": {
						"description": "Validation error",
						"schema": {
							"$ref": "#/definitions/dto.ErrorResponse"
						}
					},
					"409": {
						"description": "Email or roll number already registered",
						"schema": {
							"$ref": "#/definitions/dto.ErrorResponse"
						}
					},
					"429": {
						"description": "Too many requests",
						"schema": {
							"$ref": "#/definitions/dto.ErrorResponse"
						}
					}
				},
				"consumes": [
					"application/json"
				],
				"parameters": [
					{
						"description": "Student registration information",
						"name": "request",
						"in": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/dto.RegisterRequest"
						}
					}
				]
			}
		},
		"/auth/register-admin": {
			"post": {
				"tags": [
					"auth"
				],
				"summary": "Register an admin",
				"produces": [
					"application/json"
				],
				"responses": {
					"201": {
						"description": "Account created",
						"schema": {
							"$ref": "#/definitions/dto.APIResponse"
						}
					},
					"400": {
						"description": "Validation error",
						"schema": {
							"$ref": "#/definitions/dto.ErrorResponse"
						}
					},
					"403": {
						"description": "Invalid secret code",
						"schema": {
							"$ref": "#/definitions/dto.ErrorResponse"
						}
					},
					"409": {
						"description": "Email or roll number already registered",
						"schema": {
							"$ref": "#/definitions/dto.ErrorResponse"
						}
					}
				},
				"consumes": [
					"application/json"
				],
				"parameters": [
					{
						"description": "Admin registration information",
						"name": "request",
						"in": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/dto.RegisterAdminRequest"
						}
					}
				]
			}
		},
		"/auth/register-superadmin": {
			"post": {
				"tags": [
					"auth"
				],
				"summary": "Register a superadmin",
				"produces": [
					"application/json"
				],
				"responses": {
					"201": {
						"description": "Account created",
						"schema": {
							"$ref": "#/definitions/dto.APIResponse"
						}
					},
					"400": {
						"description": "Validation error",
						"schema": {
							"$ref": "#/definitions/dto.ErrorResponse"
						}
					},
					"403": {
						"description": "Invalid secret code",
						"schema": {
							"$ref": "#/definitions/dto.ErrorResponse"
						}
					},
					"409": {
						"description": "Email or roll number already registered",
						"schema": {
							"$ref": "#/definitions/dto.ErrorResponse"
						}
					}
				},
				"consumes": [
					"application/json"
				],
				"parameters": [
					{
						"description": "Superadmin registration information",
						"name": "request",
						"in": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/dto.RegisterSuperAdminRequest"
						}
					}
				]
			}
		},
		"/auth/login": {
			"post": {
				"tags": [
					"auth"
				],
				"summary": "User login",
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "Login successful",
						"schema": {
							"$ref": "#/definitions/dto.APIResponse"
						}
					},
					"400": {
						"description": "Validation error",
						"schema": {
							"$ref": "#/definitions/dto.ErrorResponse"
						}
					},
					"401": {
						"description": "Invalid credentials",
						"schema": {
							"$ref": "#/definitions/dto.ErrorResponse"
						}
					},
					"403": {
						"description": "Account is blocked",
						"schema": {
							"$ref": "#/definitions/dto.ErrorResponse"
						}
					},
					"429": {
						"description": "Too many requests",
						"schema": {
							"$ref": "#/definitions/dto.ErrorResponse"
						}
					}
				},
				"description": "Authenticates an account and returns a session token valid for 7 days",
				"consumes": [
					"application/json"
				],
				"parameters": [
					{
						"description": "Login credentials",
						"name": "request",
						"in": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/dto.LoginRequest"
						}
					}
				]
			}
		},
		"/auth/me": {
			"get": {
				"tags": [
					"auth"
				],
				"summary": "Current account",
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "Current account",
						"schema": {
							"$ref": "#/definitions/dto.APIResponse"
						}
					},
					"401": {
						"description": "Unauthorized",
						"schema": {
							"$ref": "#/definitions/dto.ErrorResponse"
						}
					},
					"403": {
						"description": "Account is blocked",
						"schema": {
							"$ref": "#/definitions/dto.ErrorResponse"
						}
					},
					"404": {
						"description": "Account not found",
						"schema": {
							"$ref": "#/definitions/dto.ErrorResponse"
						}
					}
				},
				"security": [
					{
						"BearerAuth": []
					}
				]
			}
		},
		"/placements": {
			"get": {
				"tags": [
					"placements"
				],
				"summary": "Approved placements",
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "Approved placements",
						"schema": {
							"$ref": "#/definitions/dto.APIResponse"
						}
					}
				},
				"description": "Lists approved placements, newest first. Anonymous records hide the student's identity."
			}
		},
		"/placements/submit": {
			"post": {
				"tags": [
					"placements"
				],
				"summary": "Submit a placement",
				"produces": [
					"application/json"
				],
				"responses": {
					"201": {
						"description": "Placement submitted",
						"schema": {
							"$ref": "#/definitions/dto.APIResponse"
						}
					},
					"400": {
						"description": "Invalid form or missing documents",
						"schema": {
							"$ref": "#/definitions/dto.ErrorResponse"
						}
					},
					"401": {
						"description": "Unauthorized",
						"schema": {
							"$ref": "#/definitions/dto.ErrorResponse"
						}
					}
				},
				"consumes": [
					"multipart/form-data"
				],
				"parameters": [
					{
						"type": "string",
						"description": "Student name",
						"name": "studentName",
						"in": "formData",
						"required": true
					},
					{
						"type": "string",
						"description": "Company name",
						"name": "company",
						"in": "formData",
						"required": true
					},
					{
						"type": "number",
						"description": "Package in LPA",
						"name": "package",
						"in": "formData",
						"required": true
					},
					{
						"type": "string",
						"description": "Graduation batch",
						"name": "batch",
						"in": "formData",
						"required": true
					},
					{
						"type": "string",
						"description": "Interview experience",
						"name": "interviewExperience",
						"in": "formData"
					},
					{
						"type": "boolean",
						"description": "Hide the student's identity in public listings",
						"name": "isAnonymous",
						"in": "formData"
					},
					{
						"type": "file",
						"description": "Offer letter",
						"name": "offerLetter",
						"in": "formData",
						"required": true
					},
					{
						"type": "file",
						"description": "College ID card",
						"name": "idCard",
						"in": "formData",
						"required": true
					}
				],
				"security": [
					{
						"BearerAuth": []
					}
				]
			}
		},
		"/placements/my": {
			"get": {
				"tags": [
					"placements"
				],
				"summary": "My placements",
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "Own placements",
						"schema": {
							"$ref": "#/definitions/dto.APIResponse"
						}
					},
					"401": {
						"description": "Unauthorized",
						"schema": {
							"$ref": "#/definitions/dto.ErrorResponse"
						}
					}
				},
				"security": [
					{
						"BearerAuth": []
					}
				]
			}
		},
		"/placements/{id}": {
			"get": {
				"tags": [
					"placements"
				],
				"summary": "Approved placement",
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "Placement",
						"schema": {
							"$ref": "#/definitions/dto.APIResponse"
						}
					},
					"400": {
						"description": "Invalid placement ID",
						"schema": {
							"$ref": "#/definitions/dto.ErrorResponse"
						}
					},
					"404": {
						"description": "Placement not found",
						"schema": {
							"$ref": "#/definitions/dto.ErrorResponse"
						}
					}
				},
				"parameters": [
					{
						"type": "integer",
						"description": "Placement ID",
						"name": "id",
						"in": "path",
						"required": true
					}
				]
			}
		},
		"/admin/placements/pending": {
			"get": {
				"tags": [
					"admin"
				],
				"summary": "Pending placements",
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "Pending placements",
						"schema": {
							"$ref": "#/definitions/dto.APIResponse"
						}
					},
					"401": {
						"description": "Unauthorized",
						"schema": {
							"$ref": "#/definitions/dto.ErrorResponse"
						}
					},
					"403": {
						"description": "Forbidden",
						"schema": {
							"$ref": "#/definitions/dto.ErrorResponse"
						}
					}
				},
				"security": [
					{
						"BearerAuth": []
					}
				]
			}
		},
		"/admin/placements": {
			"get": {
				"tags": [
					"admin"
				],
				"summary": "All placements",
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "All placements",
						"schema": {
							"$ref": "#/definitions/dto.APIResponse"
						}
					},
					"401": {
						"description": "Unauthorized",
						"schema": {
							"$ref": "#/definitions/dto.ErrorResponse"
						}
					},
					"403": {
						"description": "Forbidden",
						"schema": {
							"$ref": "#/definitions/dto.ErrorResponse"
						}
					}
				},
				"security": [
					{
						"BearerAuth": []
					}
				]
			}
		},
		"/admin/placements/{id}/approve": {
			"put": {
				"tags": [
					"admin"
				],
				"summary": "Approve placement",
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "Placement approved",
						"schema": {
							"$ref": "#/definitions/dto.APIResponse"
						}
					},
					"400": {
						"description": "Invalid placement ID",
						"schema": {
							"$ref": "#/definitions/dto.ErrorResponse"
						}
					},
					"403": {
						"description": "Forbidden",
						"schema": {
							"$ref": "#/definitions/dto.ErrorResponse"
						}
					},
					"404": {
						"description": "Placement not found",
						"schema": {
							"$ref": "#/definitions/dto.ErrorResponse"
						}
					}
				},
				"parameters": [
					{
						"type": "integer",
						"description": "Placement ID",
						"name": "id",
						"in": "path",
						"required": true
					}
				],
				"security": [
					{
						"BearerAuth": []
					}
				]
			}
		},
		"/admin/placements/{id}/reject": {
			"put": {
				"tags": [
					"admin"
				],
				"summary": "Reject placement",
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "Placement rejected",
						"schema": {
							"$ref": "#/definitions/dto.APIResponse"
						}
					},
					"400": {
						"description": "Invalid placement ID",
						"schema": {
							"$ref": "#/definitions/dto.ErrorResponse"
						}
					},
					"403": {
						"description": "Forbidden",
						"schema": {
							"$ref": "#/definitions/dto.ErrorResponse"
						}
					},
					"404": {
						"description": "Placement not found",
						"schema": {
							"$ref": "#/definitions/dto.ErrorResponse"
						}
					}
				},
				"parameters": [
					{
						"type": "integer",
						"description": "Placement ID",
						"name": "id",
						"in": "path",
						"required": true
					}
				],
				"security": [
					{
						"BearerAuth": []
					}
				]
			}
		},
		"/company-visits": {
			"get": {
				"tags": [
					"company-visits"
				],
				"summary": "Active company visits",
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "Active company visits",
						"schema": {
							"$ref": "#/definitions/dto.APIResponse"
						}
					}
				}
			},
			"post": {
				"tags": [
					"company-visits"
				],
				"summary": "Create company visit",
				"produces": [
					"application/json"
				],
				"responses": {
					"201": {
						"description": "Company visit created",
						"schema": {
							"$ref": "#/definitions/dto.APIResponse"
						}
					},
					"400": {
						"description": "Validation error",
						"schema": {
							"$ref": "#/definitions/dto.ErrorResponse"
						}
					},
					"403": {
						"description": "Forbidden",
						"schema": {
							"$ref": "#/definitions/dto.ErrorResponse"
						}
					}
				},
				"consumes": [
					"application/json"
				],
				"parameters": [
					{
						"description": "Company visit",
						"name": "request",
						"in": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/dto.CreateCompanyVisitRequest"
						}
					}
				],
				"security": [
					{
						"BearerAuth": []
					}
				]
			}
		},
		"/company-visits/{id}": {
			"get": {
				"tags": [
					"company-visits"
				],
				"summary": "Company visit",
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "Company visit",
						"schema": {
							"$ref": "#/definitions/dto.APIResponse"
						}
					},
					"400": {
						"description": "Invalid company visit ID",
						"schema": {
							"$ref": "#/definitions/dto.ErrorResponse"
						}
					},
					"404": {
						"description": "Company visit not found",
						"schema": {
							"$ref": "#/definitions/dto.ErrorResponse"
						}
					}
				},
				"parameters": [
					{
						"type": "integer",
						"description": "Company visit ID",
						"name": "id",
						"in": "path",
						"required": true
					}
				]
			},
			"put": {
				"tags": [
					"company-visits"
				],
				"summary": "Update company visit",
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "Company visit updated",
						"schema": {
							"$ref": "#/definitions/dto.APIResponse"
						}
					},
					"400": {
						"description": "Validation error or empty update",
						"schema": {
							"$ref": "#/definitions/dto.ErrorResponse"
						}
					},
					"403": {
						"description": "Forbidden",
						"schema": {
							"$ref": "#/definitions/dto.ErrorResponse"
						}
					},
					"404": {
						"description": "Company visit not found",
						"schema": {
							"$ref": "#/definitions/dto.ErrorResponse"
						}
					}
				},
				"consumes": [
					"application/json"
				],
				"parameters": [
					{
						"type": "integer",
						"description": "Company visit ID",
						"name": "id",
						"in": "path",
						"required": true
					},
					{
						"description": "Fields to change",
						"name": "request",
						"in": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/dto.UpdateCompanyVisitRequest"
						}
					}
				],
				"security": [
					{
						"BearerAuth": []
					}
				]
			},
			"delete": {
				"tags": [
					"company-visits"
				],
				"summary": "Delete company visit",
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "Company visit deleted",
						"schema": {
							"$ref": "#/definitions/dto.APIResponse"
						}
					},
					"400": {
						"description": "Invalid company visit ID",
						"schema": {
							"$ref": "#/definitions/dto.ErrorResponse"
						}
					},
					"403": {
						"description": "Forbidden",
						"schema": {
							"$ref": "#/definitions/dto.ErrorResponse"
						}
					},
					"404": {
						"description": "Company visit not found",
						"schema": {
							"$ref": "#/definitions/dto.ErrorResponse"
						}
					}
				},
				"parameters": [
					{
						"type": "integer",
						"description": "Company visit ID",
						"name": "id",
						"in": "path",
						"required": true
					}
				],
				"security": [
					{
						"BearerAuth": []
					}
				]
			}
		},
		"/company-visits/{id}/archive": {
			"put": {
				"tags": [
					"company-visits"
				],
				"summary": "Archive company visit",
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "Company visit archived",
						"schema": {
							"$ref": "#/definitions/dto.APIResponse"
						}
					},
					"400": {
						"description": "Invalid company visit ID",
						"schema": {
							"$ref": "#/definitions/dto.ErrorResponse"
						}
					},
					"403": {
						"description": "Forbidden",
						"schema": {
							"$ref": "#/definitions/dto.ErrorResponse"
						}
					},
					"404": {
						"description": "Company visit not found",
						"schema": {
							"$ref": "#/definitions/dto.ErrorResponse"
						}
					}
				},
				"parameters": [
					{
						"type": "integer",
						"description": "Company visit ID",
						"name": "id",
						"in": "path",
						"required": true
					}
				],
				"security": [
					{
						"BearerAuth": []
					}
				]
			}
		},
		"/superadmin/users": {
			"get": {
				"tags": [
					"superadmin"
				],
				"summary": "All accounts",
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "Accounts",
						"schema": {
							"$ref": "#/definitions/dto.APIResponse"
						}
					},
					"401": {
						"description": "Unauthorized",
						"schema": {
							"$ref": "#/definitions/dto.ErrorResponse"
						}
					},
					"403": {
						"description": "Forbidden",
						"schema": {
							"$ref": "#/definitions/dto.ErrorResponse"
						}
					}
				},
				"security": [
					{
						"BearerAuth": []
					}
				]
			}
		},
		"/superadmin/stats": {
			"get": {
				"tags": [
					"superadmin"
				],
				"summary": "Account statistics",
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "Statistics",
						"schema": {
							"$ref": "#/definitions/dto.APIResponse"
						}
					},
					"401": {
						"description": "Unauthorized",
						"schema": {
							"$ref": "#/definitions/dto.ErrorResponse"
						}
					},
					"403": {
						"description": "Forbidden",
						"schema": {
							"$ref": "#/definitions/dto.ErrorResponse"
						}
					}
				},
				"security": [
					{
						"BearerAuth": []
					}
				]
			}
		},
		"/superadmin/users/{userId}": {
			"get": {
				"tags": [
					"superadmin"
				],
				"summary": "Account details",
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "Account details",
						"schema": {
							"$ref": "#/definitions/dto.APIResponse"
						}
					},
					"400": {
						"description": "Invalid user ID",
						"schema": {
							"$ref": "#/definitions/dto.ErrorResponse"
						}
					},
					"403": {
						"description": "Forbidden",
						"schema": {
							"$ref": "#/definitions/dto.ErrorResponse"
						}
					},
					"404": {
						"description": "User not found",
						"schema": {
							"$ref": "#/definitions/dto.ErrorResponse"
						}
					}
				},
				"parameters": [
					{
						"type": "integer",
						"description": "User ID",
						"name": "userId",
						"in": "path",
						"required": true
					}
				],
				"security": [
					{
						"BearerAuth": []
					}
				]
			},
			"delete": {
				"tags": [
					"superadmin"
				],
				"summary": "Delete account",
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "Account deleted",
						"schema": {
							"$ref": "#/definitions/dto.APIResponse"
						}
					},
					"400": {
						"description": "Invalid user ID or superadmin target",
						"schema": {
							"$ref": "#/definitions/dto.ErrorResponse"
						}
					},
					"403": {
						"description": "Forbidden",
						"schema": {
							"$ref": "#/definitions/dto.ErrorResponse"
						}
					},
					"404": {
						"description": "User not found",
						"schema": {
							"$ref": "#/definitions/dto.ErrorResponse"
						}
					}
				},
				"parameters": [
					{
						"type": "integer",
						"description": "User ID",
						"name": "userId",
						"in": "path",
						"required": true
					}
				],
				"security": [
					{
						"BearerAuth": []
					}
				]
			}
		},
		"/superadmin/users/{userId}/block": {
			"put": {
				"tags": [
					"superadmin"
				],
				"summary": "Block account",
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "Account blocked",
						"schema": {
							"$ref": "#/definitions/dto.APIResponse"
						}
					},
					"400": {
						"description": "Invalid user ID or superadmin target",
						"schema": {
							"$ref": "#/definitions/dto.ErrorResponse"
						}
					},
					"403": {
						"description": "Forbidden",
						"schema": {
							"$ref": "#/definitions/dto.ErrorResponse"
						}
					},
					"404": {
						"description": "User not found",
						"schema": {
							"$ref": "#/definitions/dto.ErrorResponse"
						}
					}
				},
				"parameters": [
					{
						"type": "integer",
						"description": "User ID",
						"name": "userId",
						"in": "path",
						"required": true
					}
				],
				"security": [
					{
						"BearerAuth": []
					}
				]
			}
		},
		"/superadmin/users/{userId}/unblock": {
			"put": {
				"tags": [
					"superadmin"
				],
				"summary": "Unblock account",
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "Account unblocked",
						"schema": {
							"$ref": "#/definitions/dto.APIResponse"
						}
					},
					"400": {
						"description": "Invalid user ID or superadmin target",
						"schema": {
							"$ref": "#/definitions/dto.ErrorResponse"
						}
					},
					"403": {
						"description": "Forbidden",
						"schema": {
							"$ref": "#/definitions/dto.ErrorResponse"
						}
					},
					"404": {
						"description": "User not found",
						"schema": {
							"$ref": "#/definitions/dto.ErrorResponse"
						}
					}
				},
				"parameters": [
					{
						"type": "integer",
						"description": "User ID",
						"name": "userId",
						"in": "path",
						"required": true
					}
				],
				"security": [
					{
						"BearerAuth": []
					}
				]
			}
		}
	},
	"definitions": {
		"dto.APIResponse": {
			"type": "object",
			"properties": {
				"success": {
					"type": "boolean"
				},
				"message": {
					"type": "string"
				},
				"data": {
					"type": "object"
				},
				"error": {
					"$ref": "#/definitions/dto.ErrorDetail"
				},
				"timestamp": {
					"type": "string"
				}
			}
		},
		"dto.ErrorDetail": {
			"type": "object",
			"properties": {
				"code": {
					"type": "string"
				},
				"message": {
					"type": "string"
				},
				"field": {
					"type": "string"
				},
				"severity": {
					"type": "string"
				},
				"details": {
					"type": "object"
				}
			}
		},
		"dto.ErrorResponse": {
			"type": "object",
			"properties": {
				"success": {
					"type": "boolean"
				},
				"error": {
					"$ref": "#/definitions/dto.ErrorDetail"
				},
				"timestamp": {
					"type": "string"
				}
			}
		},
		"dto.RegisterRequest": {
			"type": "object",
			"properties": {
				"name": {
					"type": "string"
				},
				"email": {
					"type": "string"
				},
				"password": {
					"type": "string"
				},
				"rollNumber": {
					"type": "string"
				},
				"batch": {
					"type": "string"
				}
			},
			"required": [
				"name",
				"email",
				"password",
				"rollNumber",
				"batch"
			]
		},
		"dto.RegisterAdminRequest": {
			"type": "object",
			"properties": {
				"name": {
					"type": "string"
				},
				"email": {
					"type": "string"
				},
				"password": {
					"type": "string"
				},
				"rollNumber": {
					"type": "string"
				},
				"batch": {
					"type": "string"
				},
				"adminSecret": {
					"type": "string"
				}
			},
			"required": [
				"name",
				"email",
				"password",
				"rollNumber",
				"batch",
				"adminSecret"
			]
		},
		"dto.RegisterSuperAdminRequest": {
			"type": "object",
			"properties": {
				"name": {
					"type": "string"
				},
				"email": {
					"type": "string"
				},
				"password": {
					"type": "string"
				},
				"rollNumber": {
					"type": "string"
				},
				"batch": {
					"type": "string"
				},
				"superSecretCode": {
					"type": "string"
				}
			},
			"required": [
				"name",
				"email",
				"password",
				"rollNumber",
				"batch",
				"superSecretCode"
			]
		},
		"dto.LoginRequest": {
			"type": "object",
			"properties": {
				"email": {
					"type": "string"
				},
				"password": {
					"type": "string"
				}
			},
			"required": [
				"email",
				"password"
			]
		},
		"dto.PackageRangeRequest": {
			"type": "object",
			"properties": {
				"min": {
					"type": "number"
				},
				"max": {
					"type": "number"
				}
			}
		},
		"dto.CreateCompanyVisitRequest": {
			"type": "object",
			"properties": {
				"companyName": {
					"type": "string"
				},
				"location": {
					"type": "string"
				},
				"rolesOffered": {
					"type": "array",
					"items": {
						"type": "string"
					}
				},
				"packageRange": {
					"$ref": "#/definitions/dto.PackageRangeRequest"
				},
				"eligibilityCriteria": {
					"type": "string"
				},
				"jobDescription": {
					"type": "string"
				},
				"batch": {
					"type": "string"
				}
			},
			"required": [
				"companyName",
				"location",
				"rolesOffered",
				"batch"
			]
		},
		"dto.UpdateCompanyVisitRequest": {
			"type": "object",
			"properties": {
				"companyName": {
					"type": "string"
				},
				"location": {
					"type": "string"
				},
				"rolesOffered": {
					"type": "array",
					"items": {
						"type": "string"
					}
				},
				"packageRange": {
					"$ref": "#/definitions/dto.PackageRangeRequest"
				},
				"eligibilityCriteria": {
					"type": "string"
				},
				"jobDescription": {
					"type": "string"
				},
				"batch": {
					"type": "string"
				},
				"status": {
					"type": "string",
					"enum": [
						"active",
						"archived"
					]
				}
			}
		}
	},
	"securityDefinitions": {
		"BearerAuth": {
			"description": "Type \"Bearer\" followed by a space and the JWT token.",
			"type": "apiKey",
			"name": "Authorization",
			"in": "header"
		}
	}
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:5000",
	BasePath:         "/api",
	Schemes:          []string{"http", "https"},
	Title:            "Placement Portal API",
	Description:      "College placement portal: placement records, company visits and account administration.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
