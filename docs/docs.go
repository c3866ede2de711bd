// Package docs provides Swagger documentation for the home insurance API.
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "swagger": "2.0",
    "info": {
        "title": "{{.Title}}",
        "description": "{{escape .Description}}",
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "schemes": {{ marshal .Schemes }},
    "consumes": [
        "application/json"
    ],
    "produces": [
        "application/json"
    ],
    "paths": {
        "/partners/{partner_code}": {
            "get": {
                "tags": [
                    "Partners"
                ],
                "summary": "Get a partner's offer and questionnaire",
                "operationId": "getPartner",
                "parameters": [
                    {
                        "name": "partner_code",
                        "in": "path",
                        "required": true,
                        "type": "string"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "Successful response",
                        "schema": {
                            "$ref": "#/definitions/Partner"
                        }
                    },
                    "404": {
                        "description": "Not found",
                        "schema": {
                            "$ref": "#/definitions/ProblemDetails"
                        }
                    },
                    "500": {
                        "description": "Internal server error",
                        "schema": {
                            "$ref": "#/definitions/ProblemDetails"
                        }
                    }
                }
            }
        },
        "/quotes": {
            "post": {
                "tags": [
                    "Quotes"
                ],
                "summary": "Create a quote",
                "operationId": "createQuote",
                "parameters": [
                    {
                        "name": "body",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/QuoteInput"
                        }
                    }
                ],
                "responses": {
                    "201": {
                        "description": "Successful response",
                        "schema": {
                            "$ref": "#/definitions/Quote"
                        }
                    },
                    "400": {
                        "description": "Validation error",
                        "schema": {
                            "$ref": "#/definitions/ProblemDetails"
                        }
                    },
                    "404": {
                        "description": "Not found",
                        "schema": {
                            "$ref": "#/definitions/ProblemDetails"
                        }
                    },
                    "500": {
                        "description": "Internal server error",
                        "schema": {
                            "$ref": "#/definitions/ProblemDetails"
                        }
                    }
                }
            }
        },
        "/quotes/{quote_id}": {
            "get": {
                "tags": [
                    "Quotes"
                ],
                "summary": "Get a quote",
                "operationId": "getQuote",
                "parameters": [
                    {
                        "name": "quote_id",
                        "in": "path",
                        "required": true,
                        "type": "string"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "Successful response",
                        "schema": {
                            "$ref": "#/definitions/Quote"
                        }
                    },
                    "404": {
                        "description": "Not found",
                        "schema": {
                            "$ref": "#/definitions/ProblemDetails"
                        }
                    },
                    "500": {
                        "description": "Internal server error",
                        "schema": {
                            "$ref": "#/definitions/ProblemDetails"
                        }
                    }
                }
            },
            "put": {
                "tags": [
                    "Quotes"
                ],
                "summary": "Re-price a quote",
                "operationId": "updateQuote",
                "parameters": [
                    {
                        "name": "quote_id",
                        "in": "path",
                        "required": true,
                        "type": "string"
                    },
                    {
                        "name": "body",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/QuoteInput"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "Successful response",
                        "schema": {
                            "$ref": "#/definitions/Quote"
                        }
                    },
                    "400": {
                        "description": "Validation error",
                        "schema": {
                            "$ref": "#/definitions/ProblemDetails"
                        }
                    },
                    "404": {
                        "description": "Not found",
                        "schema": {
                            "$ref": "#/definitions/ProblemDetails"
                        }
                    },
                    "500": {
                        "description": "Internal server error",
                        "schema": {
                            "$ref": "#/definitions/ProblemDetails"
                        }
                    }
                }
            }
        },
        "/quotes/{quote_id}/email-validation": {
            "post": {
                "tags": [
                    "Quotes"
                ],
                "summary": "Mark the policy holder email as verified",
                "operationId": "validateQuoteEmail",
                "parameters": [
                    {
                        "name": "quote_id",
                        "in": "path",
                        "required": true,
                        "type": "string"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "Successful response",
                        "schema": {
                            "$ref": "#/definitions/Quote"
                        }
                    },
                    "400": {
                        "description": "Validation error",
                        "schema": {
                            "$ref": "#/definitions/ProblemDetails"
                        }
                    },
                    "404": {
                        "description": "Not found",
                        "schema": {
                            "$ref": "#/definitions/ProblemDetails"
                        }
                    },
                    "500": {
                        "description": "Internal server error",
                        "schema": {
                            "$ref": "#/definitions/ProblemDetails"
                        }
                    }
                }
            }
        },
        "/policies": {
            "post": {
                "tags": [
                    "Policies"
                ],
                "summary": "Create a policy from a quote",
                "operationId": "createPolicy",
                "parameters": [
                    {
                        "name": "body",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/PolicyInput"
                        }
                    }
                ],
                "responses": {
                    "201": {
                        "description": "Successful response",
                        "schema": {
                            "$ref": "#/definitions/Policy"
                        }
                    },
                    "400": {
                        "description": "Validation error",
                        "schema": {
                            "$ref": "#/definitions/ProblemDetails"
                        }
                    },
                    "404": {
                        "description": "Not found",
                        "schema": {
                            "$ref": "#/definitions/ProblemDetails"
                        }
                    },
                    "409": {
                        "description": "Invalid state",
                        "schema": {
                            "$ref": "#/definitions/ProblemDetails"
                        }
                    },
                    "500": {
                        "description": "Internal server error",
                        "schema": {
                            "$ref": "#/definitions/ProblemDetails"
                        }
                    }
                }
            }
        },
        "/policies/{policy_id}": {
            "get": {
                "tags": [
                    "Policies"
                ],
                "summary": "Get a policy",
                "operationId": "getPolicy",
                "parameters": [
                    {
                        "name": "policy_id",
                        "in": "path",
                        "required": true,
                        "type": "string"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "Successful response",
                        "schema": {
                            "$ref": "#/definitions/Policy"
                        }
                    },
                    "404": {
                        "description": "Not found",
                        "schema": {
                            "$ref": "#/definitions/ProblemDetails"
                        }
                    },
                    "500": {
                        "description": "Internal server error",
                        "schema": {
                            "$ref": "#/definitions/ProblemDetails"
                        }
                    }
                }
            }
        },
        "/policies/{policy_id}/special-operation-code": {
            "put": {
                "tags": [
                    "Policies"
                ],
                "summary": "Apply a special operation code",
                "operationId": "applySpecialOperationCode",
                "parameters": [
                    {
                        "name": "policy_id",
                        "in": "path",
                        "required": true,
                        "type": "string"
                    },
                    {
                        "name": "body",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/OperationCodeInput"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "Successful response",
                        "schema": {
                            "$ref": "#/definitions/Policy"
                        }
                    },
                    "400": {
                        "description": "Validation error",
                        "schema": {
                            "$ref": "#/definitions/ProblemDetails"
                        }
                    },
                    "404": {
                        "description": "Not found",
                        "schema": {
                            "$ref": "#/definitions/ProblemDetails"
                        }
                    },
                    "409": {
                        "description": "Invalid state",
                        "schema": {
                            "$ref": "#/definitions/ProblemDetails"
                        }
                    },
                    "500": {
                        "description": "Internal server error",
                        "schema": {
                            "$ref": "#/definitions/ProblemDetails"
                        }
                    }
                }
            }
        },
        "/policies/{policy_id}/start-date": {
            "put": {
                "tags": [
                    "Policies"
                ],
                "summary": "Change the start date",
                "operationId": "changeStartDate",
                "parameters": [
                    {
                        "name": "policy_id",
                        "in": "path",
                        "required": true,
                        "type": "string"
                    },
                    {
                        "name": "body",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/StartDateInput"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "Successful response",
                        "schema": {
                            "$ref": "#/definitions/Policy"
                        }
                    },
                    "400": {
                        "description": "Validation error",
                        "schema": {
                            "$ref": "#/definitions/ProblemDetails"
                        }
                    },
                    "404": {
                        "description": "Not found",
                        "schema": {
                            "$ref": "#/definitions/ProblemDetails"
                        }
                    },
                    "409": {
                        "description": "Invalid state",
                        "schema": {
                            "$ref": "#/definitions/ProblemDetails"
                        }
                    },
                    "500": {
                        "description": "Internal server error",
                        "schema": {
                            "$ref": "#/definitions/ProblemDetails"
                        }
                    }
                }
            }
        },
        "/policies/{policy_id}/signature-request": {
            "post": {
                "tags": [
                    "Policies"
                ],
                "summary": "Request the e-signature",
                "operationId": "createSignatureRequest",
                "parameters": [
                    {
                        "name": "policy_id",
                        "in": "path",
                        "required": true,
                        "type": "string"
                    }
                ],
                "responses": {
                    "202": {
                        "description": "Successful response",
                        "schema": {
                            "$ref": "#/definitions/SignatureRequest"
                        }
                    },
                    "404": {
                        "description": "Not found",
                        "schema": {
                            "$ref": "#/definitions/ProblemDetails"
                        }
                    },
                    "409": {
                        "description": "Invalid state",
                        "schema": {
                            "$ref": "#/definitions/ProblemDetails"
                        }
                    },
                    "500": {
                        "description": "Internal server error",
                        "schema": {
                            "$ref": "#/definitions/ProblemDetails"
                        }
                    }
                }
            }
        },
        "/policies/{policy_id}/signature": {
            "post": {
                "tags": [
                    "Policies"
                ],
                "summary": "Record a successful signature",
                "operationId": "recordSignature",
                "parameters": [
                    {
                        "name": "policy_id",
                        "in": "path",
                        "required": true,
                        "type": "string"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "Successful response",
                        "schema": {
                            "$ref": "#/definitions/Policy"
                        }
                    },
                    "404": {
                        "description": "Not found",
                        "schema": {
                            "$ref": "#/definitions/ProblemDetails"
                        }
                    },
                    "409": {
                        "description": "Invalid state",
                        "schema": {
                            "$ref": "#/definitions/ProblemDetails"
                        }
                    },
                    "500": {
                        "description": "Internal server error",
                        "schema": {
                            "$ref": "#/definitions/ProblemDetails"
                        }
                    }
                }
            }
        },
        "/policies/{policy_id}/payment": {
            "post": {
                "tags": [
                    "Policies"
                ],
                "summary": "Record a successful payment",
                "operationId": "recordPayment",
                "parameters": [
                    {
                        "name": "policy_id",
                        "in": "path",
                        "required": true,
                        "type": "string"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "Successful response",
                        "schema": {
                            "$ref": "#/definitions/Policy"
                        }
                    },
                    "404": {
                        "description": "Not found",
                        "schema": {
                            "$ref": "#/definitions/ProblemDetails"
                        }
                    },
                    "409": {
                        "description": "Invalid state",
                        "schema": {
                            "$ref": "#/definitions/ProblemDetails"
                        }
                    },
                    "500": {
                        "description": "Internal server error",
                        "schema": {
                            "$ref": "#/definitions/ProblemDetails"
                        }
                    }
                }
            }
        },
        "/policies/{policy_id}/certificate": {
            "get": {
                "tags": [
                    "Policies"
                ],
                "summary": "Get the certificate data",
                "operationId": "generateCertificate",
                "parameters": [
                    {
                        "name": "policy_id",
                        "in": "path",
                        "required": true,
                        "type": "string"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "Successful response",
                        "schema": {
                            "$ref": "#/definitions/Certificate"
                        }
                    },
                    "403": {
                        "description": "Forbidden",
                        "schema": {
                            "$ref": "#/definitions/ProblemDetails"
                        }
                    },
                    "404": {
                        "description": "Not found",
                        "schema": {
                            "$ref": "#/definitions/ProblemDetails"
                        }
                    },
                    "409": {
                        "description": "Invalid state",
                        "schema": {
                            "$ref": "#/definitions/ProblemDetails"
                        }
                    },
                    "500": {
                        "description": "Internal server error",
                        "schema": {
                            "$ref": "#/definitions/ProblemDetails"
                        }
                    }
                }
            }
        },
        "/policies/{policy_id}/cancellation": {
            "post": {
                "tags": [
                    "Policies"
                ],
                "summary": "Cancel a policy",
                "operationId": "cancelPolicy",
                "parameters": [
                    {
                        "name": "policy_id",
                        "in": "path",
                        "required": true,
                        "type": "string"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "Successful response",
                        "schema": {
                            "$ref": "#/definitions/Policy"
                        }
                    },
                    "404": {
                        "description": "Not found",
                        "schema": {
                            "$ref": "#/definitions/ProblemDetails"
                        }
                    },
                    "409": {
                        "description": "Invalid state",
                        "schema": {
                            "$ref": "#/definitions/ProblemDetails"
                        }
                    },
                    "500": {
                        "description": "Internal server error",
                        "schema": {
                            "$ref": "#/definitions/ProblemDetails"
                        }
                    }
                }
            }
        }
    },
    "definitions": {
        "Address": {
            "type": "object",
            "properties": {
                "street": {
                    "type": "string"
                },
                "postal_code": {
                    "type": "string"
                },
                "city": {
                    "type": "string"
                },
                "country": {
                    "type": "string"
                }
            }
        },
        "Person": {
            "type": "object",
            "properties": {
                "first_name": {
                    "type": "string"
                },
                "last_name": {
                    "type": "string"
                }
            }
        },
        "Property": {
            "type": "object",
            "required": [
                "room_count",
                "type",
                "occupancy"
            ],
            "properties": {
                "room_count": {
                    "type": "integer",
                    "example": 2
                },
                "type": {
                    "type": "string",
                    "enum": [
                        "FLAT",
                        "HOUSE"
                    ]
                },
                "occupancy": {
                    "type": "string",
                    "enum": [
                        "TENANT",
                        "LANDLORD"
                    ]
                },
                "address": {
                    "$ref": "#/definitions/Address"
                }
            }
        },
        "Risk": {
            "type": "object",
            "properties": {
                "property": {
                    "$ref": "#/definitions/Property"
                },
                "person": {
                    "$ref": "#/definitions/Person"
                },
                "other_people": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/Person"
                    }
                }
            }
        },
        "PolicyHolder": {
            "type": "object",
            "required": [
                "first_name",
                "last_name",
                "email"
            ],
            "properties": {
                "first_name": {
                    "type": "string"
                },
                "last_name": {
                    "type": "string"
                },
                "email": {
                    "type": "string",
                    "format": "email"
                },
                "phone_number": {
                    "type": "string"
                },
                "email_validated_at": {
                    "type": "string",
                    "format": "date-time"
                }
            }
        },
        "Insurance": {
            "type": "object",
            "properties": {
                "estimate": {
                    "type": "object",
                    "properties": {
                        "monthly_price": {
                            "type": "number",
                            "format": "decimal",
                            "example": 5.82
                        },
                        "default_deductible": {
                            "type": "number",
                            "format": "decimal",
                            "example": 5.82
                        },
                        "default_ceiling": {
                            "type": "number",
                            "format": "decimal",
                            "example": 5.82
                        },
                        "currency": {
                            "type": "string",
                            "example": "EUR"
                        }
                    }
                },
                "simplified_covers": {
                    "type": "array",
                    "items": {
                        "type": "string"
                    }
                },
                "product_code": {
                    "type": "string"
                },
                "product_version": {
                    "type": "string"
                },
                "contractual_terms": {
                    "type": "string"
                },
                "ipid": {
                    "type": "string"
                }
            }
        },
        "QuoteInput": {
            "type": "object",
            "required": [
                "partner_code",
                "risk"
            ],
            "properties": {
                "partner_code": {
                    "type": "string",
                    "example": "demo"
                },
                "risk": {
                    "$ref": "#/definitions/Risk"
                },
                "policy_holder": {
                    "$ref": "#/definitions/PolicyHolder"
                },
                "special_operation_code": {
                    "type": "string",
                    "example": "full year"
                },
                "start_date": {
                    "type": "string",
                    "format": "date-time"
                }
            }
        },
        "PolicyInput": {
            "type": "object",
            "required": [
                "quote_id"
            ],
            "properties": {
                "quote_id": {
                    "type": "string",
                    "example": "K7XH2PM"
                }
            }
        },
        "OperationCodeInput": {
            "type": "object",
            "properties": {
                "special_operation_code": {
                    "type": "string",
                    "example": "SEMESTER1"
                }
            }
        },
        "StartDateInput": {
            "type": "object",
            "properties": {
                "start_date": {
                    "type": "string",
                    "format": "date-time"
                }
            }
        },
        "Quote": {
            "type": "object",
            "properties": {
                "id": {
                    "type": "string",
                    "example": "K7XH2PM"
                },
                "partner_code": {
                    "type": "string"
                },
                "risk": {
                    "$ref": "#/definitions/Risk"
                },
                "policy_holder": {
                    "$ref": "#/definitions/PolicyHolder"
                },
                "created_at": {
                    "type": "string",
                    "format": "date-time"
                },
                "updated_at": {
                    "type": "string",
                    "format": "date-time"
                },
                "insurance": {
                    "$ref": "#/definitions/Insurance"
                },
                "premium": {
                    "type": "number",
                    "format": "decimal",
                    "example": 5.82
                },
                "nb_months_due": {
                    "type": "integer",
                    "example": 12
                },
                "start_date": {
                    "type": "string",
                    "format": "date-time"
                },
                "term_start_date": {
                    "type": "string",
                    "format": "date-time"
                },
                "term_end_date": {
                    "type": "string",
                    "format": "date-time"
                },
                "special_operation_code": {
                    "type": "string",
                    "enum": [
                        "SEMESTER1",
                        "SEMESTER2",
                        "FULLYEAR"
                    ]
                },
                "special_operation_code_applied_at": {
                    "type": "string",
                    "format": "date-time"
                }
            }
        },
        "Policy": {
            "type": "object",
            "properties": {
                "id": {
                    "type": "string",
                    "example": "DEMH01000123"
                },
                "partner_code": {
                    "type": "string"
                },
                "quote_id": {
                    "type": "string"
                },
                "risk": {
                    "$ref": "#/definitions/Risk"
                },
                "policy_holder": {
                    "$ref": "#/definitions/PolicyHolder"
                },
                "status": {
                    "type": "string",
                    "enum": [
                        "INITIATED",
                        "SIGNED",
                        "APPLICABLE",
                        "CANCELLED"
                    ]
                },
                "email_validated_at": {
                    "type": "string",
                    "format": "date-time"
                },
                "signed_at": {
                    "type": "string",
                    "format": "date-time"
                },
                "paid_at": {
                    "type": "string",
                    "format": "date-time"
                },
                "subscribed_at": {
                    "type": "string",
                    "format": "date-time"
                },
                "cancelled_at": {
                    "type": "string",
                    "format": "date-time"
                },
                "created_at": {
                    "type": "string",
                    "format": "date-time"
                },
                "updated_at": {
                    "type": "string",
                    "format": "date-time"
                },
                "insurance": {
                    "$ref": "#/definitions/Insurance"
                },
                "premium": {
                    "type": "number",
                    "format": "decimal",
                    "example": 5.82
                },
                "nb_months_due": {
                    "type": "integer",
                    "example": 12
                },
                "start_date": {
                    "type": "string",
                    "format": "date-time"
                },
                "term_start_date": {
                    "type": "string",
                    "format": "date-time"
                },
                "term_end_date": {
                    "type": "string",
                    "format": "date-time"
                },
                "special_operation_code": {
                    "type": "string",
                    "enum": [
                        "SEMESTER1",
                        "SEMESTER2",
                        "FULLYEAR"
                    ]
                },
                "special_operation_code_applied_at": {
                    "type": "string",
                    "format": "date-time"
                }
            }
        },
        "SignatureRequest": {
            "type": "object",
            "properties": {
                "policy_id": {
                    "type": "string"
                },
                "signer_name": {
                    "type": "string"
                },
                "signer_email": {
                    "type": "string"
                },
                "contractual_terms": {
                    "type": "string"
                },
                "ipid": {
                    "type": "string"
                },
                "requested_at": {
                    "type": "string",
                    "format": "date-time"
                }
            }
        },
        "Certificate": {
            "type": "object",
            "properties": {
                "policy_id": {
                    "type": "string"
                },
                "partner_code": {
                    "type": "string"
                },
                "holder_name": {
                    "type": "string"
                },
                "address": {
                    "$ref": "#/definitions/Address"
                },
                "product_code": {
                    "type": "string"
                },
                "product_version": {
                    "type": "string"
                },
                "covers": {
                    "type": "array",
                    "items": {
                        "type": "string"
                    }
                },
                "start_date": {
                    "type": "string",
                    "format": "date-time"
                },
                "term_end_date": {
                    "type": "string",
                    "format": "date-time"
                },
                "premium": {
                    "type": "number",
                    "format": "decimal",
                    "example": 5.82
                },
                "currency": {
                    "type": "string"
                },
                "issued_at": {
                    "type": "string",
                    "format": "date-time"
                }
            }
        },
        "Partner": {
            "type": "object",
            "properties": {
                "code": {
                    "type": "string"
                },
                "trigram": {
                    "type": "string",
                    "example": "DEM"
                },
                "currency": {
                    "type": "string",
                    "example": "EUR"
                },
                "offer": {
                    "type": "object"
                },
                "questions": {
                    "type": "object"
                }
            }
        },
        "ProblemDetails": {
            "type": "object",
            "description": "RFC 7807 Problem Details",
            "properties": {
                "type": {
                    "type": "string",
                    "example": "about:blank"
                },
                "title": {
                    "type": "string",
                    "example": "Validation Error"
                },
                "status": {
                    "type": "integer",
                    "example": 400
                },
                "detail": {
                    "type": "string"
                },
                "code": {
                    "type": "string",
                    "example": "ROOMMATE_COUNT_EXCEEDED"
                }
            }
        }
    },
    "tags": [
        {
            "name": "Partners",
            "description": "Partner offers and questionnaires"
        },
        {
            "name": "Quotes",
            "description": "Price and update quotes"
        },
        {
            "name": "Policies",
            "description": "Policy lifecycle: signature, payment, certificate"
        }
    ]
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0.0",
	Host:             "localhost:8080",
	BasePath:         "/api/v1",
	Schemes:          []string{"http", "https"},
	Title:            "Home Insurance API",
	Description:      "Quotes and policies for home insurance distribution partners",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
