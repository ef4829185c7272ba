// Package docs holds the OpenAPI document served by gin-swagger. It is
// maintained by hand alongside the controller annotations.
package docs

import "github.com/swaggo/swag"

const docTemplate = `
{
	"schemes": {{ marshal .Schemes }},
	"swagger": "2.0",
	"info": {
		"description": "{{escape .Description}}",
		"title": "{{.Title}}",
		"contact": {},
		"license": {
			"name": "MIT",
			"url": "https://opensource.org/licenses/MIT"
		},
		"version": "{{.Version}}"
	},
	"host": "{{.Host}}",
	"basePath": "{{.BasePath}}",
	"paths": {
		"/api/caries-by-province/": {
			"get": {
				"produces": [
					"application/json"
				],
				"tags": [
					"charts"
				],
				"summary": "Caries by province",
				"description": "Average prevalence and DMFT per province, highest prevalence first",
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/dto.ChartResponse"
						}
					},
					"500": {
						"description": "Internal server error",
						"schema": {
							"$ref": "#/definitions/dto.ErrorResponse"
						}
					}
				}
			}
		},
		"/api/caries-by-age/": {
			"get": {
				"produces": [
					"application/json"
				],
				"tags": [
					"charts"
				],
				"summary": "Caries by age category",
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/dto.ChartResponse"
						}
					},
					"500": {
						"description": "Internal server error",
						"schema": {
							"$ref": "#/definitions/dto.ErrorResponse"
						}
					}
				}
			}
		},
		"/api/temporal-trends/": {
			"get": {
				"produces": [
					"application/json"
				],
				"tags": [
					"charts"
				],
				"summary": "Caries by decade of data collection",
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/dto.ChartResponse"
						}
					},
					"500": {
						"description": "Internal server error",
						"schema": {
							"$ref": "#/definitions/dto.ErrorResponse"
						}
					}
				}
			}
		},
		"/api/v1/health": {
			"get": {
				"produces": [
					"application/json"
				],
				"tags": [
					"health"
				],
				"summary": "Health check",
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"allOf": [
								{
									"$ref": "#/definitions/dto.APIResponse"
								},
								{
									"type": "object",
									"properties": {
										"data": {
											"$ref": "#/definitions/dto.HealthResponse"
										}
									}
								}
							]
						}
					},
					"503": {
						"description": "Database unreachable",
						"schema": {
							"allOf": [
								{
									"$ref": "#/definitions/dto.APIResponse"
								},
								{
									"type": "object",
									"properties": {
										"data": {
											"$ref": "#/definitions/dto.HealthResponse"
										}
									}
								}
							]
						}
					}
				}
			}
		},
		"/api/v1/studies": {
			"get": {
				"produces": [
					"application/json"
				],
				"tags": [
					"studies"
				],
				"summary": "List studies",
				"parameters": [
					{
						"type": "string",
						"description": "Province code",
						"name": "province",
						"in": "query"
					},
					{
						"type": "string",
						"description": "Age group",
						"name": "age_group",
						"in": "query"
					},
					{
						"type": "string",
						"description": "Caries index",
						"name": "caries_index",
						"in": "query"
					},
					{
						"type": "integer",
						"description": "Earliest publication year (inclusive)",
						"name": "year_from",
						"in": "query"
					},
					{
						"type": "integer",
						"description": "Latest publication year (inclusive)",
						"name": "year_to",
						"in": "query"
					},
					{
						"type": "string",
						"description": "Sort field, prefixed with - for descending",
						"name": "sort",
						"in": "query",
						"default": "-publication_year"
					},
					{
						"type": "integer",
						"description": "Page number",
						"name": "page",
						"in": "query",
						"default": 1
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"allOf": [
								{
									"$ref": "#/definitions/dto.APIResponse"
								},
								{
									"type": "object",
									"properties": {
										"data": {
											"$ref": "#/definitions/dto.StudyListResponse"
										}
									}
								}
							]
						}
					},
					"400": {
						"description": "Invalid filter or sort",
						"schema": {
							"$ref": "#/definitions/dto.ErrorResponse"
						}
					},
					"500": {
						"description": "Internal server error",
						"schema": {
							"$ref": "#/definitions/dto.ErrorResponse"
						}
					}
				}
			}
		},
		"/api/v1/studies/search": {
			"get": {
				"produces": [
					"application/json"
				],
				"tags": [
					"studies"
				],
				"summary": "Search studies",
				"parameters": [
					{
						"type": "string",
						"description": "Search text",
						"name": "q",
						"in": "query"
					},
					{
						"type": "integer",
						"description": "Page number",
						"name": "page",
						"in": "query",
						"default": 1
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"allOf": [
								{
									"$ref": "#/definitions/dto.APIResponse"
								},
								{
									"type": "object",
									"properties": {
										"data": {
											"$ref": "#/definitions/dto.StudyListResponse"
										}
									}
								}
							]
						}
					},
					"500": {
						"description": "Internal server error",
						"schema": {
							"$ref": "#/definitions/dto.ErrorResponse"
						}
					}
				}
			}
		},
		"/api/v1/studies/filters": {
			"get": {
				"produces": [
					"application/json"
				],
				"tags": [
					"studies"
				],
				"summary": "Listing filter choices",
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"allOf": [
								{
									"$ref": "#/definitions/dto.APIResponse"
								},
								{
									"type": "object",
									"properties": {
										"data": {
											"$ref": "#/definitions/models.FilterOptions"
										}
									}
								}
							]
						}
					},
					"500": {
						"description": "Internal server error",
						"schema": {
							"$ref": "#/definitions/dto.ErrorResponse"
						}
					}
				}
			}
		},
		"/api/v1/studies/{studyId}": {
			"get": {
				"produces": [
					"application/json"
				],
				"tags": [
					"studies"
				],
				"summary": "Get study detail",
				"parameters": [
					{
						"type": "string",
						"description": "Study identifier",
						"name": "studyId",
						"in": "path",
						"required": true
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"allOf": [
								{
									"$ref": "#/definitions/dto.APIResponse"
								},
								{
									"type": "object",
									"properties": {
										"data": {
											"$ref": "#/definitions/dto.StudyDetailResponse"
										}
									}
								}
							]
						}
					},
					"404": {
						"description": "Study not found",
						"schema": {
							"$ref": "#/definitions/dto.ErrorResponse"
						}
					}
				}
			}
		},
		"/api/v1/stats/overview": {
			"get": {
				"produces": [
					"application/json"
				],
				"tags": [
					"stats"
				],
				"summary": "Home page summary",
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"allOf": [
								{
									"$ref": "#/definitions/dto.APIResponse"
								},
								{
									"type": "object",
									"properties": {
										"data": {
											"$ref": "#/definitions/models.HomeSummary"
										}
									}
								}
							]
						}
					}
				}
			}
		},
		"/api/v1/stats/dashboard": {
			"get": {
				"produces": [
					"application/json"
				],
				"tags": [
					"stats"
				],
				"summary": "Dashboard aggregates",
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"allOf": [
								{
									"$ref": "#/definitions/dto.APIResponse"
								},
								{
									"type": "object",
									"properties": {
										"data": {
											"$ref": "#/definitions/models.Dashboard"
										}
									}
								}
							]
						}
					}
				}
			}
		},
		"/api/v1/stats/trends": {
			"get": {
				"produces": [
					"application/json"
				],
				"tags": [
					"stats"
				],
				"summary": "Trend series",
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"allOf": [
								{
									"$ref": "#/definitions/dto.APIResponse"
								},
								{
									"type": "object",
									"properties": {
										"data": {
											"$ref": "#/definitions/controllers.TrendsResponse"
										}
									}
								}
							]
						}
					}
				}
			}
		},
		"/api/v1/project": {
			"get": {
				"produces": [
					"application/json"
				],
				"tags": [
					"project"
				],
				"summary": "Project metadata",
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"allOf": [
								{
									"$ref": "#/definitions/dto.APIResponse"
								},
								{
									"type": "object",
									"properties": {
										"data": {
											"$ref": "#/definitions/dto.ProjectMetadataResponse"
										}
									}
								}
							]
						}
					},
					"404": {
						"description": "No project metadata recorded",
						"schema": {
							"$ref": "#/definitions/dto.ErrorResponse"
						}
					}
				}
			}
		},
		"/api/v1/auth/login": {
			"post": {
				"produces": [
					"application/json"
				],
				"tags": [
					"auth"
				],
				"summary": "Editor login",
				"consumes": [
					"application/json"
				],
				"parameters": [
					{
						"description": "Editor credentials",
						"name": "request",
						"in": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/dto.LoginRequest"
						}
					}
				],
				"responses": {
					"200": {
						"description": "Login successful",
						"schema": {
							"allOf": [
								{
									"$ref": "#/definitions/dto.APIResponse"
								},
								{
									"type": "object",
									"properties": {
										"data": {
											"$ref": "#/definitions/dto.TokenResponse"
										}
									}
								}
							]
						}
					},
					"400": {
						"description": "Invalid request format",
						"schema": {
							"$ref": "#/definitions/dto.ErrorResponse"
						}
					},
					"401": {
						"description": "Invalid credentials",
						"schema": {
							"$ref": "#/definitions/dto.ErrorResponse"
						}
					}
				}
			}
		},
		"/api/v1/admin/me": {
			"get": {
				"produces": [
					"application/json"
				],
				"tags": [
					"auth"
				],
				"summary": "Current editor",
				"security": [
					{
						"BearerAuth": []
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"allOf": [
								{
									"$ref": "#/definitions/dto.APIResponse"
								},
								{
									"type": "object",
									"properties": {
										"data": {
											"$ref": "#/definitions/dto.EditorResponse"
										}
									}
								}
							]
						}
					},
					"401": {
						"description": "Unauthorized - Invalid or missing token",
						"schema": {
							"$ref": "#/definitions/dto.ErrorResponse"
						}
					}
				}
			}
		},
		"/api/v1/admin/studies": {
			"get": {
				"produces": [
					"application/json"
				],
				"tags": [
					"admin-studies"
				],
				"summary": "List studies for editing",
				"security": [
					{
						"BearerAuth": []
					}
				],
				"parameters": [
					{
						"type": "string",
						"description": "Province code",
						"name": "province",
						"in": "query"
					},
					{
						"type": "string",
						"description": "Age group",
						"name": "age_group",
						"in": "query"
					},
					{
						"type": "string",
						"description": "Caries index",
						"name": "caries_index",
						"in": "query"
					},
					{
						"type": "integer",
						"description": "Earliest publication year (inclusive)",
						"name": "year_from",
						"in": "query"
					},
					{
						"type": "integer",
						"description": "Latest publication year (inclusive)",
						"name": "year_to",
						"in": "query"
					},
					{
						"type": "string",
						"description": "Sort field, prefixed with - for descending",
						"name": "sort",
						"in": "query",
						"default": "-publication_year"
					},
					{
						"type": "integer",
						"description": "Page number",
						"name": "page",
						"in": "query",
						"default": 1
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"allOf": [
								{
									"$ref": "#/definitions/dto.APIResponse"
								},
								{
									"type": "object",
									"properties": {
										"data": {
											"$ref": "#/definitions/dto.StudyListResponse"
										}
									}
								}
							]
						}
					},
					"400": {
						"description": "Invalid filter or sort",
						"schema": {
							"$ref": "#/definitions/dto.ErrorResponse"
						}
					},
					"401": {
						"description": "Unauthorized - Invalid or missing token",
						"schema": {
							"$ref": "#/definitions/dto.ErrorResponse"
						}
					}
				}
			},
			"post": {
				"produces": [
					"application/json"
				],
				"tags": [
					"admin-studies"
				],
				"summary": "Create a study",
				"consumes": [
					"application/json"
				],
				"security": [
					{
						"BearerAuth": []
					}
				],
				"parameters": [
					{
						"description": "Study",
						"name": "request",
						"in": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/dto.StudyRequest"
						}
					}
				],
				"responses": {
					"201": {
						"description": "Study created successfully",
						"schema": {
							"allOf": [
								{
									"$ref": "#/definitions/dto.APIResponse"
								},
								{
									"type": "object",
									"properties": {
										"data": {
											"$ref": "#/definitions/dto.StudyResponse"
										}
									}
								}
							]
						}
					},
					"400": {
						"description": "Validation failed; field names the offending field",
						"schema": {
							"$ref": "#/definitions/dto.ErrorResponse"
						}
					},
					"401": {
						"description": "Unauthorized - Invalid or missing token",
						"schema": {
							"$ref": "#/definitions/dto.ErrorResponse"
						}
					}
				}
			}
		},
		"/api/v1/admin/studies/{studyId}": {
			"get": {
				"produces": [
					"application/json"
				],
				"tags": [
					"admin-studies"
				],
				"summary": "Get a study",
				"security": [
					{
						"BearerAuth": []
					}
				],
				"parameters": [
					{
						"type": "string",
						"description": "Study identifier",
						"name": "studyId",
						"in": "path",
						"required": true
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"allOf": [
								{
									"$ref": "#/definitions/dto.APIResponse"
								},
								{
									"type": "object",
									"properties": {
										"data": {
											"$ref": "#/definitions/dto.StudyResponse"
										}
									}
								}
							]
						}
					},
					"401": {
						"description": "Unauthorized - Invalid or missing token",
						"schema": {
							"$ref": "#/definitions/dto.ErrorResponse"
						}
					},
					"404": {
						"description": "Study not found",
						"schema": {
							"$ref": "#/definitions/dto.ErrorResponse"
						}
					}
				}
			},
			"put": {
				"produces": [
					"application/json"
				],
				"tags": [
					"admin-studies"
				],
				"summary": "Update a study",
				"consumes": [
					"application/json"
				],
				"security": [
					{
						"BearerAuth": []
					}
				],
				"parameters": [
					{
						"type": "string",
						"description": "Study identifier",
						"name": "studyId",
						"in": "path",
						"required": true
					},
					{
						"description": "Study",
						"name": "request",
						"in": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/dto.StudyRequest"
						}
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"allOf": [
								{
									"$ref": "#/definitions/dto.APIResponse"
								},
								{
									"type": "object",
									"properties": {
										"data": {
											"$ref": "#/definitions/dto.StudyResponse"
										}
									}
								}
							]
						}
					},
					"400": {
						"description": "Validation failed",
						"schema": {
							"$ref": "#/definitions/dto.ErrorResponse"
						}
					},
					"401": {
						"description": "Unauthorized - Invalid or missing token",
						"schema": {
							"$ref": "#/definitions/dto.ErrorResponse"
						}
					},
					"404": {
						"description": "Study not found",
						"schema": {
							"$ref": "#/definitions/dto.ErrorResponse"
						}
					}
				}
			},
			"delete": {
				"produces": [
					"application/json"
				],
				"tags": [
					"admin-studies"
				],
				"summary": "Delete a study",
				"security": [
					{
						"BearerAuth": []
					}
				],
				"parameters": [
					{
						"type": "string",
						"description": "Study identifier",
						"name": "studyId",
						"in": "path",
						"required": true
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"allOf": [
								{
									"$ref": "#/definitions/dto.APIResponse"
								},
								{
									"type": "object",
									"properties": {
										"data": {
											"$ref": "#/definitions/dto.MessageResponse"
										}
									}
								}
							]
						}
					},
					"401": {
						"description": "Unauthorized - Invalid or missing token",
						"schema": {
							"$ref": "#/definitions/dto.ErrorResponse"
						}
					},
					"404": {
						"description": "Study not found",
						"schema": {
							"$ref": "#/definitions/dto.ErrorResponse"
						}
					}
				}
			}
		},
		"/api/v1/admin/studies/{studyId}/verify": {
			"post": {
				"produces": [
					"application/json"
				],
				"tags": [
					"admin-studies"
				],
				"summary": "Verify a study",
				"security": [
					{
						"BearerAuth": []
					}
				],
				"parameters": [
					{
						"type": "string",
						"description": "Study identifier",
						"name": "studyId",
						"in": "path",
						"required": true
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"allOf": [
								{
									"$ref": "#/definitions/dto.APIResponse"
								},
								{
									"type": "object",
									"properties": {
										"data": {
											"$ref": "#/definitions/dto.StudyResponse"
										}
									}
								}
							]
						}
					},
					"401": {
						"description": "Unauthorized - Invalid or missing token",
						"schema": {
							"$ref": "#/definitions/dto.ErrorResponse"
						}
					},
					"403": {
						"description": "Forbidden - Editor is not a verifier",
						"schema": {
							"$ref": "#/definitions/dto.ErrorResponse"
						}
					},
					"404": {
						"description": "Study not found",
						"schema": {
							"$ref": "#/definitions/dto.ErrorResponse"
						}
					}
				}
			}
		},
		"/api/v1/admin/studies/{studyId}/caries-data": {
			"get": {
				"produces": [
					"application/json"
				],
				"tags": [
					"admin-caries-data"
				],
				"summary": "List a study's caries data",
				"security": [
					{
						"BearerAuth": []
					}
				],
				"parameters": [
					{
						"type": "string",
						"description": "Study identifier",
						"name": "studyId",
						"in": "path",
						"required": true
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"allOf": [
								{
									"$ref": "#/definitions/dto.APIResponse"
								},
								{
									"type": "object",
									"properties": {
										"data": {
											"type": "array",
											"items": {
												"$ref": "#/definitions/models.CariesDataPoint"
											}
										}
									}
								}
							]
						}
					},
					"401": {
						"description": "Unauthorized - Invalid or missing token",
						"schema": {
							"$ref": "#/definitions/dto.ErrorResponse"
						}
					},
					"404": {
						"description": "Study not found",
						"schema": {
							"$ref": "#/definitions/dto.ErrorResponse"
						}
					}
				}
			},
			"post": {
				"produces": [
					"application/json"
				],
				"tags": [
					"admin-caries-data"
				],
				"summary": "Add caries data to a study",
				"consumes": [
					"application/json"
				],
				"security": [
					{
						"BearerAuth": []
					}
				],
				"parameters": [
					{
						"type": "string",
						"description": "Study identifier",
						"name": "studyId",
						"in": "path",
						"required": true
					},
					{
						"description": "Data point",
						"name": "request",
						"in": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/dto.CariesDataRequest"
						}
					}
				],
				"responses": {
					"201": {
						"description": "OK",
						"schema": {
							"allOf": [
								{
									"$ref": "#/definitions/dto.APIResponse"
								},
								{
									"type": "object",
									"properties": {
										"data": {
											"$ref": "#/definitions/models.CariesDataPoint"
										}
									}
								}
							]
						}
					},
					"400": {
						"description": "Validation failed or duplicate stratum",
						"schema": {
							"$ref": "#/definitions/dto.ErrorResponse"
						}
					},
					"401": {
						"description": "Unauthorized - Invalid or missing token",
						"schema": {
							"$ref": "#/definitions/dto.ErrorResponse"
						}
					},
					"404": {
						"description": "Study not found",
						"schema": {
							"$ref": "#/definitions/dto.ErrorResponse"
						}
					}
				}
			}
		},
		"/api/v1/admin/caries-data/{id}": {
			"get": {
				"produces": [
					"application/json"
				],
				"tags": [
					"admin-caries-data"
				],
				"summary": "Get a caries data point",
				"security": [
					{
						"BearerAuth": []
					}
				],
				"parameters": [
					{
						"type": "integer",
						"description": "Data point ID",
						"name": "id",
						"in": "path",
						"required": true
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"allOf": [
								{
									"$ref": "#/definitions/dto.APIResponse"
								},
								{
									"type": "object",
									"properties": {
										"data": {
											"$ref": "#/definitions/models.CariesDataPoint"
										}
									}
								}
							]
						}
					},
					"404": {
						"description": "Data point not found",
						"schema": {
							"$ref": "#/definitions/dto.ErrorResponse"
						}
					}
				}
			},
			"put": {
				"produces": [
					"application/json"
				],
				"tags": [
					"admin-caries-data"
				],
				"summary": "Update a caries data point",
				"consumes": [
					"application/json"
				],
				"security": [
					{
						"BearerAuth": []
					}
				],
				"parameters": [
					{
						"type": "integer",
						"description": "Data point ID",
						"name": "id",
						"in": "path",
						"required": true
					},
					{
						"description": "Data point",
						"name": "request",
						"in": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/dto.CariesDataRequest"
						}
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"allOf": [
								{
									"$ref": "#/definitions/dto.APIResponse"
								},
								{
									"type": "object",
									"properties": {
										"data": {
											"$ref": "#/definitions/models.CariesDataPoint"
										}
									}
								}
							]
						}
					},
					"400": {
						"description": "Validation failed",
						"schema": {
							"$ref": "#/definitions/dto.ErrorResponse"
						}
					},
					"404": {
						"description": "Data point not found",
						"schema": {
							"$ref": "#/definitions/dto.ErrorResponse"
						}
					}
				}
			},
			"delete": {
				"produces": [
					"application/json"
				],
				"tags": [
					"admin-caries-data"
				],
				"summary": "Delete a caries data point",
				"security": [
					{
						"BearerAuth": []
					}
				],
				"parameters": [
					{
						"type": "integer",
						"description": "Data point ID",
						"name": "id",
						"in": "path",
						"required": true
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"allOf": [
								{
									"$ref": "#/definitions/dto.APIResponse"
								},
								{
									"type": "object",
									"properties": {
										"data": {
											"$ref": "#/definitions/dto.MessageResponse"
										}
									}
								}
							]
						}
					},
					"404": {
						"description": "Data point not found",
						"schema": {
							"$ref": "#/definitions/dto.ErrorResponse"
						}
					}
				}
			}
		},
		"/api/v1/admin/studies/{studyId}/notes": {
			"get": {
				"produces": [
					"application/json"
				],
				"tags": [
					"admin-notes"
				],
				"summary": "List a study's extraction notes",
				"security": [
					{
						"BearerAuth": []
					}
				],
				"parameters": [
					{
						"type": "string",
						"description": "Study identifier",
						"name": "studyId",
						"in": "path",
						"required": true
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"allOf": [
								{
									"$ref": "#/definitions/dto.APIResponse"
								},
								{
									"type": "object",
									"properties": {
										"data": {
											"type": "array",
											"items": {
												"$ref": "#/definitions/models.ExtractionNote"
											}
										}
									}
								}
							]
						}
					},
					"404": {
						"description": "Study not found",
						"schema": {
							"$ref": "#/definitions/dto.ErrorResponse"
						}
					}
				}
			},
			"post": {
				"produces": [
					"application/json"
				],
				"tags": [
					"admin-notes"
				],
				"summary": "Add an extraction note",
				"consumes": [
					"application/json"
				],
				"security": [
					{
						"BearerAuth": []
					}
				],
				"parameters": [
					{
						"type": "string",
						"description": "Study identifier",
						"name": "studyId",
						"in": "path",
						"required": true
					},
					{
						"description": "Note",
						"name": "request",
						"in": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/dto.ExtractionNoteRequest"
						}
					}
				],
				"responses": {
					"201": {
						"description": "OK",
						"schema": {
							"allOf": [
								{
									"$ref": "#/definitions/dto.APIResponse"
								},
								{
									"type": "object",
									"properties": {
										"data": {
											"$ref": "#/definitions/models.ExtractionNote"
										}
									}
								}
							]
						}
					},
					"400": {
						"description": "Validation failed",
						"schema": {
							"$ref": "#/definitions/dto.ErrorResponse"
						}
					},
					"404": {
						"description": "Study not found",
						"schema": {
							"$ref": "#/definitions/dto.ErrorResponse"
						}
					}
				}
			}
		},
		"/api/v1/admin/notes/{id}": {
			"get": {
				"produces": [
					"application/json"
				],
				"tags": [
					"admin-notes"
				],
				"summary": "Get an extraction note",
				"security": [
					{
						"BearerAuth": []
					}
				],
				"parameters": [
					{
						"type": "integer",
						"description": "Note ID",
						"name": "id",
						"in": "path",
						"required": true
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"allOf": [
								{
									"$ref": "#/definitions/dto.APIResponse"
								},
								{
									"type": "object",
									"properties": {
										"data": {
											"$ref": "#/definitions/models.ExtractionNote"
										}
									}
								}
							]
						}
					},
					"404": {
						"description": "Note not found",
						"schema": {
							"$ref": "#/definitions/dto.ErrorResponse"
						}
					}
				}
			},
			"delete": {
				"produces": [
					"application/json"
				],
				"tags": [
					"admin-notes"
				],
				"summary": "Delete an extraction note",
				"security": [
					{
						"BearerAuth": []
					}
				],
				"parameters": [
					{
						"type": "integer",
						"description": "Note ID",
						"name": "id",
						"in": "path",
						"required": true
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"allOf": [
								{
									"$ref": "#/definitions/dto.APIResponse"
								},
								{
									"type": "object",
									"properties": {
										"data": {
											"$ref": "#/definitions/dto.MessageResponse"
										}
									}
								}
							]
						}
					},
					"404": {
						"description": "Note not found",
						"schema": {
							"$ref": "#/definitions/dto.ErrorResponse"
						}
					}
				}
			}
		},
		"/api/v1/admin/project-metadata": {
			"get": {
				"produces": [
					"application/json"
				],
				"tags": [
					"admin-project"
				],
				"summary": "List project metadata",
				"security": [
					{
						"BearerAuth": []
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"allOf": [
								{
									"$ref": "#/definitions/dto.APIResponse"
								},
								{
									"type": "object",
									"properties": {
										"data": {
											"type": "array",
											"items": {
												"$ref": "#/definitions/dto.ProjectMetadataResponse"
											}
										}
									}
								}
							]
						}
					}
				}
			},
			"post": {
				"produces": [
					"application/json"
				],
				"tags": [
					"admin-project"
				],
				"summary": "Create project metadata",
				"consumes": [
					"application/json"
				],
				"security": [
					{
						"BearerAuth": []
					}
				],
				"parameters": [
					{
						"description": "Project metadata",
						"name": "request",
						"in": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/dto.ProjectMetadataRequest"
						}
					}
				],
				"responses": {
					"201": {
						"description": "OK",
						"schema": {
							"allOf": [
								{
									"$ref": "#/definitions/dto.APIResponse"
								},
								{
									"type": "object",
									"properties": {
										"data": {
											"$ref": "#/definitions/dto.ProjectMetadataResponse"
										}
									}
								}
							]
						}
					},
					"400": {
						"description": "Validation failed",
						"schema": {
							"$ref": "#/definitions/dto.ErrorResponse"
						}
					}
				}
			}
		},
		"/api/v1/admin/project-metadata/{id}": {
			"get": {
				"produces": [
					"application/json"
				],
				"tags": [
					"admin-project"
				],
				"summary": "Get project metadata",
				"security": [
					{
						"BearerAuth": []
					}
				],
				"parameters": [
					{
						"type": "integer",
						"description": "Record ID",
						"name": "id",
						"in": "path",
						"required": true
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"allOf": [
								{
									"$ref": "#/definitions/dto.APIResponse"
								},
								{
									"type": "object",
									"properties": {
										"data": {
											"$ref": "#/definitions/dto.ProjectMetadataResponse"
										}
									}
								}
							]
						}
					},
					"404": {
						"description": "Record not found",
						"schema": {
							"$ref": "#/definitions/dto.ErrorResponse"
						}
					}
				}
			},
			"put": {
				"produces": [
					"application/json"
				],
				"tags": [
					"admin-project"
				],
				"summary": "Update project metadata",
				"consumes": [
					"application/json"
				],
				"security": [
					{
						"BearerAuth": []
					}
				],
				"parameters": [
					{
						"type": "integer",
						"description": "Record ID",
						"name": "id",
						"in": "path",
						"required": true
					},
					{
						"description": "Project metadata",
						"name": "request",
						"in": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/dto.ProjectMetadataRequest"
						}
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"allOf": [
								{
									"$ref": "#/definitions/dto.APIResponse"
								},
								{
									"type": "object",
									"properties": {
										"data": {
											"$ref": "#/definitions/dto.ProjectMetadataResponse"
										}
									}
								}
							]
						}
					},
					"400": {
						"description": "Validation failed",
						"schema": {
							"$ref": "#/definitions/dto.ErrorResponse"
						}
					},
					"404": {
						"description": "Record not found",
						"schema": {
							"$ref": "#/definitions/dto.ErrorResponse"
						}
					}
				}
			},
			"delete": {
				"produces": [
					"application/json"
				],
				"tags": [
					"admin-project"
				],
				"summary": "Delete project metadata",
				"security": [
					{
						"BearerAuth": []
					}
				],
				"parameters": [
					{
						"type": "integer",
						"description": "Record ID",
						"name": "id",
						"in": "path",
						"required": true
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"allOf": [
								{
									"$ref": "#/definitions/dto.APIResponse"
								},
								{
									"type": "object",
									"properties": {
										"data": {
											"$ref": "#/definitions/dto.MessageResponse"
										}
									}
								}
							]
						}
					},
					"404": {
						"description": "Record not found",
						"schema": {
							"$ref": "#/definitions/dto.ErrorResponse"
						}
					}
				}
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
				"data": {},
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
				"details": {}
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
		"dto.ChartResponse": {
			"type": "object",
			"properties": {
				"data": {}
			}
		},
		"dto.MessageResponse": {
			"type": "object",
			"properties": {
				"message": {
					"type": "string"
				}
			}
		},
		"dto.HealthResponse": {
			"type": "object",
			"properties": {
				"status": {
					"type": "string"
				},
				"database": {
					"type": "string"
				}
			}
		},
		"dto.PaginationInfo": {
			"type": "object",
			"properties": {
				"current_page": {
					"type": "integer"
				},
				"total_pages": {
					"type": "integer"
				},
				"page_size": {
					"type": "integer"
				},
				"total_items": {
					"type": "integer"
				},
				"has_next": {
					"type": "boolean"
				},
				"has_previous": {
					"type": "boolean"
				}
			}
		},
		"dto.LoginRequest": {
			"type": "object",
			"properties": {
				"username": {
					"type": "string"
				},
				"password": {
					"type": "string"
				}
			},
			"required": [
				"username",
				"password"
			]
		},
		"dto.EditorResponse": {
			"type": "object",
			"properties": {
				"username": {
					"type": "string"
				},
				"name": {
					"type": "string"
				},
				"role": {
					"type": "string",
					"enum": [
						"extractor",
						"verifier"
					]
				}
			}
		},
		"dto.TokenResponse": {
			"type": "object",
			"properties": {
				"access_token": {
					"type": "string"
				},
				"token_type": {
					"type": "string"
				},
				"expires_in": {
					"type": "integer"
				},
				"editor": {
					"$ref": "#/definitions/dto.EditorResponse"
				}
			}
		},
		"dto.StudyRequest": {
			"type": "object",
			"properties": {
				"study_id": {
					"type": "string"
				},
				"title": {
					"type": "string"
				},
				"authors": {
					"type": "string"
				},
				"journal": {
					"type": "string"
				},
				"doi": {
					"type": "string"
				},
				"pubmed_id": {
					"type": "string"
				},
				"study_design": {
					"type": "string"
				},
				"study_setting": {
					"type": "string"
				},
				"province": {
					"type": "string"
				},
				"city_region": {
					"type": "string"
				},
				"age_group": {
					"type": "string"
				},
				"data_collection_start": {
					"type": "string"
				},
				"data_collection_end": {
					"type": "string"
				},
				"caries_index_used": {
					"type": "string"
				},
				"examination_criteria": {
					"type": "string"
				},
				"risk_of_bias": {
					"type": "string"
				},
				"extracted_by": {
					"type": "string"
				},
				"notes": {
					"type": "string"
				},
				"publication_year": {
					"type": "integer"
				},
				"sample_size": {
					"type": "integer"
				},
				"age_min": {
					"type": "number"
				},
				"age_max": {
					"type": "number"
				},
				"quality_score": {
					"type": "integer"
				},
				"caries_data": {
					"type": "array",
					"items": {
						"$ref": "#/definitions/dto.CariesDataRequest"
					}
				},
				"extraction_notes": {
					"type": "array",
					"items": {
						"$ref": "#/definitions/dto.ExtractionNoteRequest"
					}
				}
			},
			"required": [
				"study_id",
				"title",
				"authors",
				"publication_year",
				"study_design",
				"study_setting",
				"province",
				"sample_size",
				"age_group",
				"age_min",
				"age_max",
				"data_collection_start",
				"data_collection_end",
				"caries_index_used",
				"examination_criteria"
			]
		},
		"dto.StudyResponse": {
			"type": "object",
			"properties": {
				"study_id": {
					"type": "string"
				},
				"title": {
					"type": "string"
				},
				"authors": {
					"type": "string"
				},
				"journal": {
					"type": "string"
				},
				"doi": {
					"type": "string"
				},
				"pubmed_id": {
					"type": "string"
				},
				"study_design": {
					"type": "string"
				},
				"study_setting": {
					"type": "string"
				},
				"province": {
					"type": "string"
				},
				"city_region": {
					"type": "string"
				},
				"age_group": {
					"type": "string"
				},
				"data_collection_start": {
					"type": "string"
				},
				"data_collection_end": {
					"type": "string"
				},
				"caries_index_used": {
					"type": "string"
				},
				"examination_criteria": {
					"type": "string"
				},
				"risk_of_bias": {
					"type": "string"
				},
				"extracted_by": {
					"type": "string"
				},
				"notes": {
					"type": "string"
				},
				"publication_year": {
					"type": "integer"
				},
				"sample_size": {
					"type": "integer"
				},
				"age_min": {
					"type": "number"
				},
				"age_max": {
					"type": "number"
				},
				"quality_score": {
					"type": "integer"
				},
				"id": {
					"type": "integer"
				},
				"doi_url": {
					"type": "string"
				},
				"pubmed_url": {
					"type": "string"
				},
				"extraction_date": {
					"type": "string"
				},
				"verified_by": {
					"type": "string"
				},
				"verification_date": {
					"type": "string"
				},
				"created_at": {
					"type": "string"
				},
				"updated_at": {
					"type": "string"
				}
			}
		},
		"dto.StudyListResponse": {
			"type": "object",
			"properties": {
				"studies": {
					"type": "array",
					"items": {
						"$ref": "#/definitions/dto.StudyResponse"
					}
				},
				"pagination": {
					"$ref": "#/definitions/dto.PaginationInfo"
				}
			}
		},
		"dto.StudyDetailResponse": {
			"type": "object",
			"properties": {
				"study": {
					"$ref": "#/definitions/dto.StudyResponse"
				},
				"caries_data": {
					"type": "array",
					"items": {
						"$ref": "#/definitions/models.CariesDataPoint"
					}
				},
				"extraction_notes": {
					"type": "array",
					"items": {
						"$ref": "#/definitions/models.ExtractionNote"
					}
				},
				"related_studies": {
					"type": "array",
					"items": {
						"$ref": "#/definitions/dto.StudyResponse"
					}
				}
			}
		},
		"dto.CariesDataRequest": {
			"type": "object",
			"properties": {
				"sex": {
					"type": "string",
					"enum": [
						"male",
						"female",
						"mixed"
					]
				},
				"age_category": {
					"type": "string"
				},
				"socioeconomic_status": {
					"type": "string",
					"enum": [
						"low",
						"middle",
						"high",
						"mixed",
						"not_specified"
					]
				},
				"sample_size_group": {
					"type": "integer"
				},
				"caries_prevalence": {
					"type": "number"
				},
				"caries_prevalence_ci_lower": {
					"type": "number"
				},
				"caries_prevalence_ci_upper": {
					"type": "number"
				},
				"mean_dmft": {
					"type": "number"
				},
				"mean_dmft_sd": {
					"type": "number"
				},
				"mean_decayed": {
					"type": "number"
				},
				"mean_missing": {
					"type": "number"
				},
				"mean_filled": {
					"type": "number"
				},
				"care_index": {
					"type": "number"
				}
			},
			"required": [
				"sex",
				"age_category",
				"sample_size_group",
				"caries_prevalence",
				"mean_dmft"
			]
		},
		"dto.ExtractionNoteRequest": {
			"type": "object",
			"properties": {
				"note_type": {
					"type": "string",
					"enum": [
						"extraction",
						"quality",
						"clarification",
						"exclusion",
						"other"
					]
				},
				"note_text": {
					"type": "string"
				},
				"created_by": {
					"type": "string"
				}
			},
			"required": [
				"note_type",
				"note_text"
			]
		},
		"dto.ProjectMetadataRequest": {
			"type": "object",
			"properties": {
				"project_name": {
					"type": "string"
				},
				"protocol_version": {
					"type": "string"
				},
				"search_start_date": {
					"type": "string"
				},
				"search_end_date": {
					"type": "string"
				},
				"databases_searched": {
					"type": "array",
					"items": {
						"type": "string"
					}
				},
				"inclusion_criteria": {
					"type": "string"
				},
				"exclusion_criteria": {
					"type": "string"
				},
				"analysis_software": {
					"type": "string"
				},
				"bayesian_model_version": {
					"type": "string"
				}
			},
			"required": [
				"search_start_date",
				"search_end_date",
				"databases_searched",
				"inclusion_criteria",
				"exclusion_criteria"
			]
		},
		"dto.ProjectMetadataResponse": {
			"type": "object",
			"properties": {
				"id": {
					"type": "integer"
				},
				"last_updated": {
					"type": "string"
				},
				"project_name": {
					"type": "string"
				},
				"protocol_version": {
					"type": "string"
				},
				"search_start_date": {
					"type": "string"
				},
				"search_end_date": {
					"type": "string"
				},
				"databases_searched": {
					"type": "array",
					"items": {
						"type": "string"
					}
				},
				"inclusion_criteria": {
					"type": "string"
				},
				"exclusion_criteria": {
					"type": "string"
				},
				"analysis_software": {
					"type": "string"
				},
				"bayesian_model_version": {
					"type": "string"
				}
			}
		},
		"models.CariesDataPoint": {
			"type": "object",
			"properties": {
				"id": {
					"type": "integer"
				},
				"study": {
					"type": "integer"
				},
				"sex": {
					"type": "string",
					"enum": [
						"male",
						"female",
						"mixed"
					]
				},
				"age_category": {
					"type": "string"
				},
				"socioeconomic_status": {
					"type": "string",
					"enum": [
						"low",
						"middle",
						"high",
						"mixed",
						"not_specified"
					]
				},
				"sample_size_group": {
					"type": "integer"
				},
				"caries_prevalence": {
					"type": "number"
				},
				"caries_prevalence_ci_lower": {
					"type": "number"
				},
				"caries_prevalence_ci_upper": {
					"type": "number"
				},
				"mean_dmft": {
					"type": "number"
				},
				"mean_dmft_sd": {
					"type": "number"
				},
				"mean_decayed": {
					"type": "number"
				},
				"mean_missing": {
					"type": "number"
				},
				"mean_filled": {
					"type": "number"
				},
				"care_index": {
					"type": "number"
				},
				"created_at": {
					"type": "string"
				},
				"updated_at": {
					"type": "string"
				}
			}
		},
		"models.ExtractionNote": {
			"type": "object",
			"properties": {
				"id": {
					"type": "integer"
				},
				"study": {
					"type": "integer"
				},
				"note_type": {
					"type": "string",
					"enum": [
						"extraction",
						"quality",
						"clarification",
						"exclusion",
						"other"
					]
				},
				"note_text": {
					"type": "string"
				},
				"created_by": {
					"type": "string"
				},
				"created_at": {
					"type": "string"
				}
			}
		},
		"models.FilterOptions": {
			"type": "object",
			"properties": {
				"provinces": {
					"type": "array",
					"items": {
						"type": "string"
					}
				},
				"age_groups": {
					"type": "array",
					"items": {
						"type": "string"
					}
				},
				"caries_indices": {
					"type": "array",
					"items": {
						"type": "string"
					}
				},
				"min_year": {
					"type": "integer"
				},
				"max_year": {
					"type": "integer"
				}
			}
		},
		"models.HomeSummary": {
			"type": "object"
		},
		"models.Dashboard": {
			"type": "object"
		},
		"models.YearTrend": {
			"type": "object",
			"properties": {
				"publication_year": {
					"type": "integer"
				},
				"study_count": {
					"type": "integer"
				},
				"avg_sample_size": {
					"type": "number"
				},
				"avg_caries": {
					"type": "number"
				}
			}
		},
		"models.DecadeTrend": {
			"type": "object",
			"properties": {
				"decade": {
					"type": "integer"
				},
				"avg_prevalence": {
					"type": "number"
				},
				"avg_dmft": {
					"type": "number"
				},
				"study_count": {
					"type": "integer"
				}
			}
		},
		"controllers.TrendsResponse": {
			"type": "object",
			"properties": {
				"publication_years": {
					"type": "array",
					"items": {
						"$ref": "#/definitions/models.YearTrend"
					}
				},
				"decades": {
					"type": "array",
					"items": {
						"$ref": "#/definitions/models.DecadeTrend"
					}
				}
			}
		}
	},
	"securityDefinitions": {
		"BearerAuth": {
			"description": "JWT token for authorization",
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
	BasePath:         "/",
	Schemes:          []string{"http", "https"},
	Title:            "Canadian Dental Caries Review API",
	Description:      "Catalog, statistics and editing API for the systematic review of dental caries studies in Canada",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
