package swagger

import "github.com/swaggo/swag"

const docTemplate = `{
    "swagger": "2.0",
    "info": {
        "title": "KLand Web API",
        "description": "Institutional website: courses, admissions, news, teachers and the admin back-office.",
        "version": "1.0.0"
    },
    "basePath": "/",
    "schemes": [
        "http"
    ],
    "tags": [
        {
            "name": "Pages",
            "description": "Public informational pages"
        },
        {
            "name": "News",
            "description": "Public news feed"
        },
        {
            "name": "Auth",
            "description": "Registration and sessions"
        },
        {
            "name": "Courses",
            "description": "Course applications"
        },
        {
            "name": "Contact",
            "description": "Contact requests"
        },
        {
            "name": "Admin",
            "description": "Back-office, admin role only"
        },
        {
            "name": "Operations",
            "description": "Health and metrics"
        }
    ],
    "paths": {
        "/health": {
            "get": {
                "tags": [
                    "Operations"
                ],
                "summary": "Liveness check",
                "responses": {
                    "200": {
                        "description": "OK"
                    }
                }
            }
        },
        "/ready": {
            "get": {
                "tags": [
                    "Operations"
                ],
                "summary": "Readiness check (PostgreSQL and Redis)",
                "responses": {
                    "200": {
                        "description": "Ready"
                    },
                    "503": {
                        "description": "Degraded"
                    }
                }
            }
        },
        "/metrics": {
            "get": {
                "tags": [
                    "Operations"
                ],
                "summary": "Prometheus metrics",
                "produces": [
                    "text/plain"
                ],
                "responses": {
                    "200": {
                        "description": "OK"
                    }
                }
            }
        },
        "/": {
            "get": {
                "tags": [
                    "Pages"
                ],
                "summary": "Latest published news and active admission periods",
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    }
                }
            }
        },
        "/about": {
            "get": {
                "tags": [
                    "Pages"
                ],
                "summary": "Partner universities and active teachers",
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    }
                }
            }
        },
        "/courses": {
            "get": {
                "tags": [
                    "Pages"
                ],
                "summary": "Offered course types",
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    }
                }
            }
        },
        "/corey": {
            "get": {
                "tags": [
                    "Pages"
                ],
                "summary": "Korean admission information with active periods",
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    }
                }
            }
        },
        "/admission-korea": {
            "get": {
                "tags": [
                    "Pages"
                ],
                "summary": "Legacy alias",
                "responses": {
                    "302": {
                        "description": "Redirect to /corey"
                    }
                }
            }
        },
        "/news": {
            "get": {
                "tags": [
                    "News"
                ],
                "summary": "Published news, newest first",
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    }
                }
            }
        },
        "/news/{id}": {
            "get": {
                "tags": [
                    "News"
                ],
                "summary": "News entry",
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    },
                    "404": {
                        "description": "Not found",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    }
                },
                "parameters": [
                    {
                        "name": "id",
                        "in": "path",
                        "type": "integer",
                        "required": true
                    }
                ]
            }
        },
        "/sign-up": {
            "get": {
                "tags": [
                    "Auth"
                ],
                "summary": "Registration form",
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    }
                }
            },
            "post": {
                "tags": [
                    "Auth"
                ],
                "summary": "Register a student account",
                "consumes": [
                    "application/x-www-form-urlencoded"
                ],
                "parameters": [
                    {
                        "name": "name",
                        "in": "formData",
                        "type": "string",
                        "required": true
                    },
                    {
                        "name": "email",
                        "in": "formData",
                        "type": "string",
                        "required": true
                    },
                    {
                        "name": "password",
                        "in": "formData",
                        "type": "string",
                        "required": true,
                        "description": "min 6"
                    },
                    {
                        "name": "confirm",
                        "in": "formData",
                        "type": "string",
                        "required": true
                    }
                ],
                "responses": {
                    "303": {
                        "description": "Redirect to /login or /sign-up"
                    },
                    "429": {
                        "description": "Too many attempts",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    }
                }
            }
        },
        "/login": {
            "get": {
                "tags": [
                    "Auth"
                ],
                "summary": "Login form",
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    }
                }
            },
            "post": {
                "tags": [
                    "Auth"
                ],
                "summary": "Sign in",
                "consumes": [
                    "application/x-www-form-urlencoded"
                ],
                "parameters": [
                    {
                        "name": "email",
                        "in": "formData",
                        "type": "string",
                        "required": true
                    },
                    {
                        "name": "password",
                        "in": "formData",
                        "type": "string",
                        "required": true
                    },
                    {
                        "name": "next",
                        "in": "query",
                        "type": "string",
                        "required": false
                    }
                ],
                "responses": {
                    "303": {
                        "description": "Redirect to next, / or /login"
                    },
                    "429": {
                        "description": "Too many attempts",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    }
                }
            }
        },
        "/logout": {
            "get": {
                "tags": [
                    "Auth"
                ],
                "summary": "Sign out",
                "responses": {
                    "303": {
                        "description": "Redirect to /login"
                    },
                    "302": {
                        "description": "Not signed in"
                    }
                }
            }
        },
        "/apply-course": {
            "post": {
                "tags": [
                    "Courses"
                ],
                "summary": "Apply for a course",
                "consumes": [
                    "application/x-www-form-urlencoded"
                ],
                "parameters": [
                    {
                        "name": "course_type",
                        "in": "formData",
                        "type": "string",
                        "required": true,
                        "description": "korean or english"
                    },
                    {
                        "name": "name",
                        "in": "formData",
                        "type": "string",
                        "required": true
                    },
                    {
                        "name": "phone",
                        "in": "formData",
                        "type": "string",
                        "required": true
                    }
                ],
                "responses": {
                    "303": {
                        "description": "Redirect to /courses"
                    }
                }
            }
        },
        "/contackt": {
            "get": {
                "tags": [
                    "Contact"
                ],
                "summary": "Contact form",
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    }
                }
            },
            "post": {
                "tags": [
                    "Contact"
                ],
                "summary": "Send a contact request",
                "consumes": [
                    "application/x-www-form-urlencoded"
                ],
                "parameters": [
                    {
                        "name": "name",
                        "in": "formData",
                        "type": "string",
                        "required": true
                    },
                    {
                        "name": "phone",
                        "in": "formData",
                        "type": "string",
                        "required": true
                    },
                    {
                        "name": "message",
                        "in": "formData",
                        "type": "string",
                        "required": true,
                        "description": "max 800"
                    }
                ],
                "responses": {
                    "303": {
                        "description": "Redirect to /contackt"
                    }
                }
            }
        },
        "/admin": {
            "get": {
                "tags": [
                    "Admin"
                ],
                "summary": "Admin panel data",
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    },
                    "403": {
                        "description": "Not an admin",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    }
                }
            }
        },
        "/admin/news": {
            "get": {
                "tags": [
                    "Admin"
                ],
                "summary": "News are managed from the panel",
                "responses": {
                    "303": {
                        "description": "Redirect to /admin"
                    },
                    "403": {
                        "description": "Not an admin",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    }
                }
            }
        },
        "/admin/news/add": {
            "post": {
                "tags": [
                    "Admin"
                ],
                "summary": "Add news",
                "consumes": [
                    "application/x-www-form-urlencoded"
                ],
                "parameters": [
                    {
                        "name": "title",
                        "in": "formData",
                        "type": "string",
                        "required": true
                    },
                    {
                        "name": "content",
                        "in": "formData",
                        "type": "string",
                        "required": true
                    },
                    {
                        "name": "image_url",
                        "in": "formData",
                        "type": "string",
                        "required": false
                    },
                    {
                        "name": "is_published",
                        "in": "formData",
                        "type": "string",
                        "required": false,
                        "description": "present means published"
                    }
                ],
                "responses": {
                    "303": {
                        "description": "Redirect to /admin"
                    },
                    "403": {
                        "description": "Not an admin",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    }
                }
            }
        },
        "/admin/news/edit/{id}": {
            "post": {
                "tags": [
                    "Admin"
                ],
                "summary": "Edit news",
                "consumes": [
                    "application/x-www-form-urlencoded"
                ],
                "parameters": [
                    {
                        "name": "id",
                        "in": "path",
                        "type": "integer",
                        "required": true
                    },
                    {
                        "name": "title",
                        "in": "formData",
                        "type": "string",
                        "required": true
                    },
                    {
                        "name": "content",
                        "in": "formData",
                        "type": "string",
                        "required": true
                    },
                    {
                        "name": "image_url",
                        "in": "formData",
                        "type": "string",
                        "required": false
                    },
                    {
                        "name": "is_published",
                        "in": "formData",
                        "type": "string",
                        "required": false
                    }
                ],
                "responses": {
                    "303": {
                        "description": "Redirect to /admin"
                    },
                    "403": {
                        "description": "Not an admin",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    },
                    "404": {
                        "description": "Not found",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    }
                }
            }
        },
        "/admin/news/delete/{id}": {
            "get": {
                "tags": [
                    "Admin"
                ],
                "summary": "Delete news",
                "parameters": [
                    {
                        "name": "id",
                        "in": "path",
                        "type": "integer",
                        "required": true
                    }
                ],
                "responses": {
                    "303": {
                        "description": "Redirect to /admin"
                    },
                    "403": {
                        "description": "Not an admin",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    },
                    "404": {
                        "description": "Not found",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    }
                }
            }
        },
        "/admin/admission-periods": {
            "get": {
                "tags": [
                    "Admin"
                ],
                "summary": "Admin panel on the admission tab",
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    },
                    "403": {
                        "description": "Not an admin",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    }
                }
            }
        },
        "/admin/admission-periods/add": {
            "post": {
                "tags": [
                    "Admin"
                ],
                "summary": "Add admission period",
                "consumes": [
                    "application/x-www-form-urlencoded"
                ],
                "parameters": [
                    {
                        "name": "name",
                        "in": "formData",
                        "type": "string",
                        "required": true
                    },
                    {
                        "name": "application_start",
                        "in": "formData",
                        "type": "string",
                        "required": true
                    },
                    {
                        "name": "application_end",
                        "in": "formData",
                        "type": "string",
                        "required": true
                    },
                    {
                        "name": "studies_start",
                        "in": "formData",
                        "type": "string",
                        "required": true
                    },
                    {
                        "name": "is_active",
                        "in": "formData",
                        "type": "string",
                        "required": false
                    }
                ],
                "responses": {
                    "303": {
                        "description": "Redirect to /admin/admission-periods"
                    },
                    "403": {
                        "description": "Not an admin",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    }
                }
            }
        },
        "/admin/admission-periods/edit/{id}": {
            "post": {
                "tags": [
                    "Admin"
                ],
                "summary": "Edit admission period",
                "consumes": [
                    "application/x-www-form-urlencoded"
                ],
                "parameters": [
                    {
                        "name": "id",
                        "in": "path",
                        "type": "integer",
                        "required": true
                    },
                    {
                        "name": "name",
                        "in": "formData",
                        "type": "string",
                        "required": true
                    },
                    {
                        "name": "application_start",
                        "in": "formData",
                        "type": "string",
                        "required": true
                    },
                    {
                        "name": "application_end",
                        "in": "formData",
                        "type": "string",
                        "required": true
                    },
                    {
                        "name": "studies_start",
                        "in": "formData",
                        "type": "string",
                        "required": true
                    },
                    {
                        "name": "is_active",
                        "in": "formData",
                        "type": "string",
                        "required": false
                    }
                ],
                "responses": {
                    "303": {
                        "description": "Redirect to /admin/admission-periods"
                    },
                    "403": {
                        "description": "Not an admin",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    },
                    "404": {
                        "description": "Not found",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    }
                }
            }
        },
        "/admin/admission-periods/delete/{id}": {
            "post": {
                "tags": [
                    "Admin"
                ],
                "summary": "Delete admission period",
                "consumes": [
                    "application/x-www-form-urlencoded"
                ],
                "parameters": [
                    {
                        "name": "id",
                        "in": "path",
                        "type": "integer",
                        "required": true
                    }
                ],
                "responses": {
                    "303": {
                        "description": "Redirect to /admin/admission-periods"
                    },
                    "403": {
                        "description": "Not an admin",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    },
                    "404": {
                        "description": "Not found",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    }
                }
            }
        },
        "/debug-periods": {
            "get": {
                "tags": [
                    "Admin"
                ],
                "summary": "All admission periods",
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    },
                    "403": {
                        "description": "Not an admin",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    }
                }
            }
        },
        "/admin/teachers": {
            "get": {
                "tags": [
                    "Admin"
                ],
                "summary": "Admin panel on the teachers tab",
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    },
                    "403": {
                        "description": "Not an admin",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    }
                }
            },
            "post": {
                "tags": [
                    "Admin"
                ],
                "summary": "Add or edit a teacher",
                "consumes": [
                    "multipart/form-data"
                ],
                "parameters": [
                    {
                        "name": "add_teacher",
                        "in": "formData",
                        "type": "string",
                        "required": false
                    },
                    {
                        "name": "edit_teacher",
                        "in": "formData",
                        "type": "string",
                        "required": false
                    },
                    {
                        "name": "teacher_id",
                        "in": "formData",
                        "type": "integer",
                        "required": false
                    },
                    {
                        "name": "name",
                        "in": "formData",
                        "type": "string",
                        "required": false
                    },
                    {
                        "name": "role",
                        "in": "formData",
                        "type": "string",
                        "required": false
                    },
                    {
                        "name": "tags",
                        "in": "formData",
                        "type": "string",
                        "required": false
                    },
                    {
                        "name": "is_founder",
                        "in": "formData",
                        "type": "string",
                        "required": false
                    },
                    {
                        "name": "order",
                        "in": "formData",
                        "type": "integer",
                        "required": false
                    },
                    {
                        "name": "photo",
                        "in": "formData",
                        "type": "file",
                        "required": false
                    },
                    {
                        "name": "edit_photo",
                        "in": "formData",
                        "type": "file",
                        "required": false
                    }
                ],
                "responses": {
                    "303": {
                        "description": "Redirect to /admin/teachers"
                    },
                    "403": {
                        "description": "Not an admin",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    },
                    "404": {
                        "description": "Not found",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    },
                    "413": {
                        "description": "Upload too large",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    }
                }
            }
        },
        "/admin/teachers/delete/{id}": {
            "get": {
                "tags": [
                    "Admin"
                ],
                "summary": "Delete a teacher",
                "parameters": [
                    {
                        "name": "id",
                        "in": "path",
                        "type": "integer",
                        "required": true
                    }
                ],
                "responses": {
                    "303": {
                        "description": "Redirect to /admin/teachers"
                    },
                    "403": {
                        "description": "Not an admin",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    },
                    "404": {
                        "description": "Not found",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    }
                }
            }
        },
        "/update-status": {
            "post": {
                "tags": [
                    "Admin"
                ],
                "summary": "Change a course application status",
                "consumes": [
                    "application/x-www-form-urlencoded"
                ],
                "parameters": [
                    {
                        "name": "application_id",
                        "in": "formData",
                        "type": "integer",
                        "required": true
                    },
                    {
                        "name": "status",
                        "in": "formData",
                        "type": "string",
                        "required": true,
                        "description": "new, contacted or approved"
                    }
                ],
                "responses": {
                    "303": {
                        "description": "Redirect to /admin"
                    },
                    "403": {
                        "description": "Not an admin",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    }
                }
            }
        },
        "/delete_message/{id}": {
            "post": {
                "tags": [
                    "Admin"
                ],
                "summary": "Delete a contact message",
                "consumes": [
                    "application/x-www-form-urlencoded"
                ],
                "parameters": [
                    {
                        "name": "id",
                        "in": "path",
                        "type": "integer",
                        "required": true
                    }
                ],
                "responses": {
                    "303": {
                        "description": "Redirect to /admin"
                    },
                    "403": {
                        "description": "Not an admin",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    },
                    "404": {
                        "description": "Not found",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    }
                }
            }
        },
        "/admin/applications/export": {
            "get": {
                "tags": [
                    "Admin"
                ],
                "summary": "Download every course application",
                "produces": [
                    "text/csv",
                    "application/pdf"
                ],
                "parameters": [
                    {
                        "name": "format",
                        "in": "query",
                        "type": "string",
                        "enum": [
                            "csv",
                            "pdf"
                        ],
                        "required": false
                    }
                ],
                "responses": {
                    "200": {
                        "description": "File"
                    },
                    "400": {
                        "description": "Unsupported format",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    },
                    "403": {
                        "description": "Not an admin",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    }
                }
            }
        }
    },
    "definitions": {
        "APIError": {
            "type": "object",
            "properties": {
                "code": {
                    "type": "string"
                },
                "message": {
                    "type": "string"
                },
                "status": {
                    "type": "integer"
                }
            }
        },
        "Notice": {
            "type": "object",
            "properties": {
                "severity": {
                    "type": "string",
                    "enum": [
                        "success",
                        "error",
                        "info"
                    ]
                },
                "message": {
                    "type": "string"
                }
            }
        },
        "ResponseEnvelope": {
            "type": "object",
            "properties": {
                "data": {
                    "type": "object"
                },
                "error": {
                    "$ref": "#/definitions/APIError"
                },
                "meta": {
                    "type": "object",
                    "properties": {
                        "notices": {
                            "type": "array",
                            "items": {
                                "$ref": "#/definitions/Notice"
                            }
                        }
                    }
                }
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
