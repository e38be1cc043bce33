// Package docs registra la documentación Swagger 2.0 servida en /swagger.
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
        "/breeds": {
            "get": {
                "description": "Trae el listado de la API externa y aplica búsqueda por nombre y filtro por grupo. Devuelve además las estadísticas del subconjunto filtrado.",
                "produces": ["application/json"],
                "tags": ["breeds"],
                "summary": "Buscar razas",
                "parameters": [
                    {"type": "string", "description": "Substring del nombre (sin distinguir mayúsculas)", "name": "search", "in": "query"},
                    {"type": "string", "description": "Grupo exacto; All = sin filtro", "name": "group", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/breeds.searchResponse"}},
                    "502": {"description": "breed api unavailable", "schema": {"type": "string"}}
                }
            }
        },
        "/breeds/{breedID}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["breeds"],
                "summary": "Detalle de una raza",
                "parameters": [
                    {"type": "string", "description": "ID de la raza", "name": "breedID", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/breeds.DetailResponse"}},
                    "404": {"description": "breed not found", "schema": {"type": "string"}},
                    "502": {"description": "breed api unavailable", "schema": {"type": "string"}}
                }
            }
        },
        "/views": {
            "post": {
                "description": "Crea una vista y trae el listado de razas una vez. Si la API externa falla la vista queda con status=error y el texto del error.",
                "produces": ["application/json"],
                "tags": ["views"],
                "summary": "Abrir una vista del dashboard",
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/dashboard.boardResponse"}}
                }
            }
        },
        "/views/{viewID}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["views"],
                "summary": "Dashboard de una vista",
                "parameters": [
                    {"type": "string", "description": "ID de la vista", "name": "viewID", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dashboard.boardResponse"}},
                    "404": {"description": "view not found", "schema": {"type": "string"}}
                }
            },
            "delete": {
                "tags": ["views"],
                "summary": "Cerrar una vista",
                "parameters": [
                    {"type": "string", "description": "ID de la vista", "name": "viewID", "in": "path", "required": true}
                ],
                "responses": {
                    "204": {"description": "No Content"},
                    "404": {"description": "view not found", "schema": {"type": "string"}}
                }
            }
        },
        "/views/{viewID}/filter": {
            "patch": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["views"],
                "summary": "Cambiar búsqueda / grupo",
                "parameters": [
                    {"type": "string", "description": "ID de la vista", "name": "viewID", "in": "path", "required": true},
                    {"description": "Filtro", "name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/dashboard.setFilterRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dashboard.boardResponse"}},
                    "400": {"description": "invalid json", "schema": {"type": "string"}},
                    "404": {"description": "view not found", "schema": {"type": "string"}}
                }
            }
        },
        "/views/{viewID}/reload": {
            "post": {
                "produces": ["application/json"],
                "tags": ["views"],
                "summary": "Volver a traer el listado",
                "parameters": [
                    {"type": "string", "description": "ID de la vista", "name": "viewID", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dashboard.boardResponse"}},
                    "404": {"description": "view not found", "schema": {"type": "string"}},
                    "409": {"description": "fetch superseded by a newer one", "schema": {"type": "string"}}
                }
            }
        },
        "/views/{viewID}/charts/groups.png": {
            "get": {
                "produces": ["image/png"],
                "tags": ["views"],
                "summary": "Gráfico de razas por grupo (top 10)",
                "parameters": [
                    {"type": "string", "description": "ID de la vista", "name": "viewID", "in": "path", "required": true},
                    {"type": "integer", "description": "Ancho en px", "name": "width", "in": "query"},
                    {"type": "integer", "description": "Alto en px", "name": "height", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "file"}},
                    "404": {"description": "view not found / not enough data", "schema": {"type": "string"}}
                }
            }
        },
        "/views/{viewID}/charts/height-weight.png": {
            "get": {
                "produces": ["image/png"],
                "tags": ["views"],
                "summary": "Scatter altura vs peso",
                "parameters": [
                    {"type": "string", "description": "ID de la vista", "name": "viewID", "in": "path", "required": true},
                    {"type": "integer", "description": "Ancho en px", "name": "width", "in": "query"},
                    {"type": "integer", "description": "Alto en px", "name": "height", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "file"}},
                    "404": {"description": "view not found / not enough data", "schema": {"type": "string"}}
                }
            }
        }
    },
    "definitions": {
        "breeds.GroupCount": {
            "type": "object",
            "properties": {
                "count": {"type": "integer"},
                "group": {"type": "string"}
            }
        },
        "breeds.HeightWeight": {
            "type": "object",
            "properties": {
                "height": {"type": "number"},
                "name": {"type": "string"},
                "weight": {"type": "number"}
            }
        },
        "breeds.Response": {
            "type": "object",
            "properties": {
                "breed_group": {"type": "string"},
                "bred_for": {"type": "string"},
                "id": {"type": "string"},
                "image_url": {"type": "string"},
                "life_span": {"type": "string"},
                "name": {"type": "string"},
                "origin": {"type": "string"},
                "temperament": {"type": "string"}
            }
        },
        "breeds.Span": {
            "type": "object",
            "properties": {
                "max": {"type": "number"},
                "min": {"type": "number"}
            }
        },
        "breeds.Summary": {
            "type": "object",
            "properties": {
                "average_lifespan": {"type": "number"},
                "lifespan_range": {"$ref": "#/definitions/breeds.Span"},
                "most_common_group": {"type": "string"},
                "total_breeds": {"type": "integer"}
            }
        },
        "breeds.DetailResponse": {
            "type": "object",
            "properties": {
                "breed_group": {"type": "string"},
                "bred_for": {"type": "string"},
                "height_imperial": {"type": "string"},
                "height_metric": {"type": "string"},
                "id": {"type": "string"},
                "image_url": {"type": "string"},
                "life_span": {"type": "string"},
                "name": {"type": "string"},
                "origin": {"type": "string"},
                "temperament": {"type": "string"},
                "weight_imperial": {"type": "string"},
                "weight_metric": {"type": "string"}
            }
        },
        "breeds.searchResponse": {
            "type": "object",
            "properties": {
                "breeds": {"type": "array", "items": {"$ref": "#/definitions/breeds.Response"}},
                "group": {"type": "string"},
                "groups": {"type": "array", "items": {"type": "string"}},
                "search": {"type": "string"},
                "summary": {"$ref": "#/definitions/breeds.Summary"}
            }
        },
        "dashboard.boardResponse": {
            "type": "object",
            "properties": {
                "breeds": {"type": "array", "items": {"$ref": "#/definitions/breeds.Response"}},
                "created_at": {"type": "string"},
                "error": {"type": "string"},
                "generation": {"type": "integer"},
                "group": {"type": "string"},
                "group_counts": {"type": "array", "items": {"$ref": "#/definitions/breeds.GroupCount"}},
                "groups": {"type": "array", "items": {"type": "string"}},
                "height_weight": {"type": "array", "items": {"$ref": "#/definitions/breeds.HeightWeight"}},
                "id": {"type": "string"},
                "loaded_at": {"type": "string"},
                "search": {"type": "string"},
                "status": {"type": "string", "enum": ["loading", "ready", "error"]},
                "summary": {"$ref": "#/definitions/breeds.Summary"},
                "total_records": {"type": "integer"},
                "updated_at": {"type": "string"}
            }
        },
        "dashboard.setFilterRequest": {
            "type": "object",
            "properties": {
                "group": {"type": "string"},
                "search": {"type": "string"}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "Dog Breeds Dashboard API",
	Description:      "Listado, filtro, estadísticas y gráficos sobre las razas de The Dog API.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
