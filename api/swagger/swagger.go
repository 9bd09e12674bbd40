package swagger

import "github.com/swaggo/swag"

const docTemplate = `{
    "swagger": "2.0",
    "info": {
        "title": "Tinta Academy API",
        "description": "Read model for the tinta Academy course marketplace: catalog, educator and student panels, and intent events.",
        "version": "0.1.0"
    },
    "basePath": "/",
    "schemes": [
        "http"
    ],
    "tags": [
        {
            "name": "Catalog",
            "description": "Public landing page"
        },
        {
            "name": "Educator",
            "description": "Educator panel views"
        },
        {
            "name": "Student",
            "description": "Student panel views"
        },
        {
            "name": "Shell",
            "description": "Navigation chrome"
        },
        {
            "name": "Intents",
            "description": "User actions handed to external processors"
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
                "summary": "Readiness check",
                "responses": {
                    "200": {
                        "description": "Ready"
                    },
                    "503": {
                        "description": "A dependency is unavailable"
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
        "/metrics/summary": {
            "get": {
                "tags": [
                    "Operations"
                ],
                "summary": "Process counters",
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
        "/api/v1/catalog": {
            "get": {
                "tags": [
                    "Catalog"
                ],
                "summary": "Course catalog",
                "description": "Landing content with upcoming and past courses narrowed by modality, type and tags.",
                "parameters": [
                    {
                        "name": "modality",
                        "in": "query",
                        "type": "string",
                        "description": "Course modality",
                        "enum": [
                            "presencial",
                            "online"
                        ]
                    },
                    {
                        "name": "type",
                        "in": "query",
                        "type": "string",
                        "description": "Course type",
                        "enum": [
                            "wset",
                            "taller",
                            "cata",
                            "curso"
                        ]
                    },
                    {
                        "name": "tagIds",
                        "in": "query",
                        "type": "string",
                        "description": "Comma separated tag ids; a course must carry all of them"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    },
                    "400": {
                        "description": "Invalid filter",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    }
                }
            }
        },
        "/api/v1/educators/{educatorId}/dashboard": {
            "get": {
                "tags": [
                    "Educator"
                ],
                "summary": "Educator dashboard",
                "parameters": [
                    {
                        "name": "educatorId",
                        "in": "path",
                        "required": true,
                        "type": "string",
                        "description": "Educator ID"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    },
                    "404": {
                        "description": "Unknown educator",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    }
                }
            }
        },
        "/api/v1/educators/{educatorId}/courses": {
            "get": {
                "tags": [
                    "Educator"
                ],
                "summary": "Educator courses",
                "parameters": [
                    {
                        "name": "educatorId",
                        "in": "path",
                        "required": true,
                        "type": "string",
                        "description": "Educator ID"
                    },
                    {
                        "name": "search",
                        "in": "query",
                        "type": "string",
                        "description": "Case-insensitive title search"
                    },
                    {
                        "name": "modality",
                        "in": "query",
                        "type": "string",
                        "description": "Modality filter",
                        "enum": [
                            "all",
                            "online",
                            "presencial"
                        ]
                    },
                    {
                        "name": "status",
                        "in": "query",
                        "type": "string",
                        "description": "Status filter",
                        "enum": [
                            "all",
                            "draft",
                            "published",
                            "finished"
                        ]
                    },
                    {
                        "name": "view",
                        "in": "query",
                        "type": "string",
                        "description": "Display mode",
                        "enum": [
                            "grid",
                            "list"
                        ]
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    },
                    "400": {
                        "description": "Invalid filter",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    }
                }
            }
        },
        "/api/v1/educators/{educatorId}/courses/{courseId}/outline": {
            "get": {
                "tags": [
                    "Educator"
                ],
                "summary": "Course editor outline",
                "parameters": [
                    {
                        "name": "educatorId",
                        "in": "path",
                        "required": true,
                        "type": "string",
                        "description": "Educator ID"
                    },
                    {
                        "name": "courseId",
                        "in": "path",
                        "required": true,
                        "type": "string",
                        "description": "Course ID"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    },
                    "404": {
                        "description": "Unknown course",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    }
                }
            }
        },
        "/api/v1/educators/{educatorId}/courses/{courseId}/students": {
            "get": {
                "tags": [
                    "Educator"
                ],
                "summary": "Course students",
                "parameters": [
                    {
                        "name": "educatorId",
                        "in": "path",
                        "required": true,
                        "type": "string",
                        "description": "Educator ID"
                    },
                    {
                        "name": "courseId",
                        "in": "path",
                        "required": true,
                        "type": "string",
                        "description": "Course ID"
                    },
                    {
                        "name": "search",
                        "in": "query",
                        "type": "string",
                        "description": "Matches name or email"
                    },
                    {
                        "name": "sort",
                        "in": "query",
                        "type": "string",
                        "description": "Sort field",
                        "enum": [
                            "name",
                            "progress",
                            "enrolledAt",
                            "lastAccessAt"
                        ]
                    },
                    {
                        "name": "order",
                        "in": "query",
                        "type": "string",
                        "description": "Sort direction",
                        "enum": [
                            "asc",
                            "desc"
                        ]
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    },
                    "400": {
                        "description": "Invalid sort",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    },
                    "404": {
                        "description": "Unknown course",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    }
                }
            }
        },
        "/api/v1/educators/{educatorId}/courses/{courseId}/students/export": {
            "get": {
                "tags": [
                    "Educator"
                ],
                "summary": "Export course students",
                "produces": [
                    "text/csv",
                    "application/pdf"
                ],
                "parameters": [
                    {
                        "name": "educatorId",
                        "in": "path",
                        "required": true,
                        "type": "string",
                        "description": "Educator ID"
                    },
                    {
                        "name": "courseId",
                        "in": "path",
                        "required": true,
                        "type": "string",
                        "description": "Course ID"
                    },
                    {
                        "name": "format",
                        "in": "query",
                        "type": "string",
                        "description": "Export format, csv by default",
                        "enum": [
                            "csv",
                            "pdf"
                        ]
                    },
                    {
                        "name": "search",
                        "in": "query",
                        "type": "string",
                        "description": "Matches name or email"
                    },
                    {
                        "name": "sort",
                        "in": "query",
                        "type": "string",
                        "description": "Sort field",
                        "enum": [
                            "name",
                            "progress",
                            "enrolledAt",
                            "lastAccessAt"
                        ]
                    },
                    {
                        "name": "order",
                        "in": "query",
                        "type": "string",
                        "description": "Sort direction",
                        "enum": [
                            "asc",
                            "desc"
                        ]
                    }
                ],
                "responses": {
                    "200": {
                        "description": "Attachment",
                        "schema": {
                            "type": "file"
                        }
                    },
                    "400": {
                        "description": "Unsupported format",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    }
                }
            }
        },
        "/api/v1/educators/{educatorId}/campaigns": {
            "get": {
                "tags": [
                    "Educator"
                ],
                "summary": "Email campaign history",
                "parameters": [
                    {
                        "name": "educatorId",
                        "in": "path",
                        "required": true,
                        "type": "string",
                        "description": "Educator ID"
                    },
                    {
                        "name": "search",
                        "in": "query",
                        "type": "string",
                        "description": "Matches subject or course title"
                    },
                    {
                        "name": "status",
                        "in": "query",
                        "type": "string",
                        "description": "Status filter",
                        "enum": [
                            "all",
                            "draft",
                            "scheduled",
                            "sent"
                        ]
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    },
                    "400": {
                        "description": "Invalid filter",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    }
                }
            }
        },
        "/api/v1/educators/{educatorId}/templates": {
            "get": {
                "tags": [
                    "Educator"
                ],
                "summary": "Email templates",
                "parameters": [
                    {
                        "name": "educatorId",
                        "in": "path",
                        "required": true,
                        "type": "string",
                        "description": "Educator ID"
                    },
                    {
                        "name": "search",
                        "in": "query",
                        "type": "string",
                        "description": "Matches name or subject"
                    }
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
        "/api/v1/educators/{educatorId}/templates/{templateId}/preview": {
            "post": {
                "tags": [
                    "Educator"
                ],
                "summary": "Preview an email template",
                "parameters": [
                    {
                        "name": "educatorId",
                        "in": "path",
                        "required": true,
                        "type": "string",
                        "description": "Educator ID"
                    },
                    {
                        "name": "templateId",
                        "in": "path",
                        "required": true,
                        "type": "string",
                        "description": "Template ID"
                    },
                    {
                        "name": "payload",
                        "in": "body",
                        "schema": {
                            "$ref": "#/definitions/PreviewRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    },
                    "404": {
                        "description": "Unknown template or course",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    }
                }
            }
        },
        "/api/v1/educators/{educatorId}/send-email": {
            "get": {
                "tags": [
                    "Educator"
                ],
                "summary": "Send email form options",
                "parameters": [
                    {
                        "name": "educatorId",
                        "in": "path",
                        "required": true,
                        "type": "string",
                        "description": "Educator ID"
                    }
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
                    "Educator"
                ],
                "summary": "Send a campaign",
                "description": "Validates the request and emits a campaign.send intent.",
                "parameters": [
                    {
                        "name": "educatorId",
                        "in": "path",
                        "required": true,
                        "type": "string",
                        "description": "Educator ID"
                    },
                    {
                        "name": "payload",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/SendEmailRequest"
                        }
                    }
                ],
                "responses": {
                    "202": {
                        "description": "Accepted",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    },
                    "400": {
                        "description": "Invalid payload",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    },
                    "404": {
                        "description": "Unknown course or template",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    },
                    "422": {
                        "description": "Course not published",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    },
                    "503": {
                        "description": "Dispatch unavailable",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    }
                }
            }
        },
        "/api/v1/students/{studentId}/profile": {
            "get": {
                "tags": [
                    "Student"
                ],
                "summary": "Student profile",
                "parameters": [
                    {
                        "name": "studentId",
                        "in": "path",
                        "required": true,
                        "type": "string",
                        "description": "Student ID"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    },
                    "404": {
                        "description": "Unknown student",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    }
                }
            }
        },
        "/api/v1/students/{studentId}/courses": {
            "get": {
                "tags": [
                    "Student"
                ],
                "summary": "Student courses",
                "parameters": [
                    {
                        "name": "studentId",
                        "in": "path",
                        "required": true,
                        "type": "string",
                        "description": "Student ID"
                    },
                    {
                        "name": "status",
                        "in": "query",
                        "type": "string",
                        "description": "Status filter",
                        "enum": [
                            "all",
                            "in_progress",
                            "completed",
                            "upcoming"
                        ]
                    },
                    {
                        "name": "type",
                        "in": "query",
                        "type": "string",
                        "description": "Type filter",
                        "enum": [
                            "all",
                            "online",
                            "in_person"
                        ]
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    },
                    "400": {
                        "description": "Invalid filter",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    }
                }
            }
        },
        "/api/v1/students/{studentId}/orders": {
            "get": {
                "tags": [
                    "Student"
                ],
                "summary": "Order history",
                "parameters": [
                    {
                        "name": "studentId",
                        "in": "path",
                        "required": true,
                        "type": "string",
                        "description": "Student ID"
                    }
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
        "/api/v1/students/{studentId}/orders/export": {
            "get": {
                "tags": [
                    "Student"
                ],
                "summary": "Export order history",
                "produces": [
                    "text/csv",
                    "application/pdf"
                ],
                "parameters": [
                    {
                        "name": "studentId",
                        "in": "path",
                        "required": true,
                        "type": "string",
                        "description": "Student ID"
                    },
                    {
                        "name": "format",
                        "in": "query",
                        "type": "string",
                        "description": "Export format, csv by default",
                        "enum": [
                            "csv",
                            "pdf"
                        ]
                    }
                ],
                "responses": {
                    "200": {
                        "description": "Attachment",
                        "schema": {
                            "type": "file"
                        }
                    },
                    "400": {
                        "description": "Unsupported format",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    }
                }
            }
        },
        "/api/v1/shell": {
            "get": {
                "tags": [
                    "Shell"
                ],
                "summary": "Application shell",
                "parameters": [
                    {
                        "name": "variant",
                        "in": "query",
                        "type": "string",
                        "description": "Shell variant, defaults to the session role",
                        "enum": [
                            "public",
                            "student",
                            "educator",
                            "admin"
                        ]
                    },
                    {
                        "name": "path",
                        "in": "query",
                        "type": "string",
                        "description": "Current front end path"
                    }
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
        "/api/v1/intents": {
            "post": {
                "tags": [
                    "Intents"
                ],
                "summary": "Emit an intent",
                "parameters": [
                    {
                        "name": "payload",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/IntentRequest"
                        }
                    }
                ],
                "responses": {
                    "202": {
                        "description": "Accepted",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    },
                    "400": {
                        "description": "Unknown kind or invalid payload",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    },
                    "503": {
                        "description": "Dispatch unavailable",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    }
                }
            }
        },
        "/api/v1/intents/kinds": {
            "get": {
                "tags": [
                    "Intents"
                ],
                "summary": "Known intent kinds",
                "responses": {
                    "200": {
                        "description": "OK",
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
                },
                "details": {
                    "type": "object",
                    "additionalProperties": {
                        "type": "string"
                    }
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
                        "cache_hit": {
                            "type": "boolean"
                        },
                        "processing_time_ms": {
                            "type": "integer"
                        }
                    }
                }
            }
        },
        "PreviewRequest": {
            "type": "object",
            "properties": {
                "courseId": {
                    "type": "string"
                }
            }
        },
        "SendEmailRequest": {
            "type": "object",
            "required": [
                "courseId",
                "templateId"
            ],
            "properties": {
                "courseId": {
                    "type": "string"
                },
                "templateId": {
                    "type": "string"
                },
                "scheduleType": {
                    "type": "string",
                    "enum": [
                        "now",
                        "scheduled"
                    ]
                },
                "scheduledDate": {
                    "type": "string",
                    "example": "2025-02-01"
                },
                "scheduledTime": {
                    "type": "string",
                    "example": "09:00"
                }
            }
        },
        "IntentRequest": {
            "type": "object",
            "required": [
                "kind"
            ],
            "properties": {
                "kind": {
                    "type": "string",
                    "example": "course.view_slug"
                },
                "payload": {
                    "type": "object"
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
