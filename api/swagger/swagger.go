package swagger

import "github.com/swaggo/swag"

const docTemplate = `{
    "swagger": "2.0",
    "info": {
        "title": "Pañol API",
        "description": "Gestión de pañol escolar: cajas de herramientas, inventario y préstamos anuales",
        "version": "1.0.0"
    },
    "basePath": "/api",
    "schemes": [
        "http"
    ],
    "tags": [
        {"name": "Auth", "description": "Autenticación de docentes por RUT"},
        {"name": "Dashboard", "description": "Resumen operativo del pañol"},
        {"name": "Talleres", "description": "Talleres y su composición estándar"},
        {"name": "Cursos", "description": "Cursos por taller y año"},
        {"name": "Alumnos", "description": "Registro de alumnos"},
        {"name": "Grupos", "description": "Grupos de trabajo por curso"},
        {"name": "Cajas", "description": "Cajas de herramientas"},
        {"name": "Inventario", "description": "Catálogo y unidades físicas"},
        {"name": "Prestamos", "description": "Préstamos anuales y devoluciones"},
        {"name": "Reportes", "description": "Reportes y exportación CSV/PDF"}
    ],
    "securityDefinitions": {
        "BearerAuth": {
            "type": "apiKey",
            "name": "Authorization",
            "in": "header",
            "description": "Formato: Bearer {token}"
        }
    },
    "paths": {
        "/login": {
            "post": {
                "tags": ["Auth"],
                "summary": "Authenticate a teacher by RUT",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/LoginRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "401": {"description": "Invalid credentials", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/dashboard": {
            "get": {
                "tags": ["Dashboard"],
                "summary": "Full dashboard payload",
                "security": [{"BearerAuth": []}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/dashboard/metricas": {
            "get": {
                "tags": ["Dashboard"],
                "summary": "Headline counters",
                "security": [{"BearerAuth": []}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/dashboard/resumen-talleres": {
            "get": {
                "tags": ["Dashboard"],
                "summary": "Per-workshop counters",
                "security": [{"BearerAuth": []}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/dashboard/prestamos-recientes": {
            "get": {
                "tags": ["Dashboard"],
                "summary": "Latest loan activity",
                "security": [{"BearerAuth": []}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/dashboard/estadisticas": {
            "get": {
                "tags": ["Dashboard"],
                "summary": "Per-workshop statistics",
                "security": [{"BearerAuth": []}],
                "parameters": [
                    {"name": "taller", "in": "query", "type": "string"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/dashboard/alertas": {
            "get": {
                "tags": ["Dashboard"],
                "summary": "Attention block",
                "security": [{"BearerAuth": []}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/talleres": {
            "get": {
                "tags": ["Talleres"],
                "summary": "List workshops",
                "security": [{"BearerAuth": []}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            },
            "post": {
                "tags": ["Talleres"],
                "summary": "Register a workshop",
                "security": [{"BearerAuth": []}],
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/CreateWorkshopRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/talleres/estadisticas": {
            "get": {
                "tags": ["Talleres"],
                "summary": "Per-workshop statistics",
                "security": [{"BearerAuth": []}],
                "parameters": [
                    {"name": "taller", "in": "query", "type": "string"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/talleres/{codigo}": {
            "get": {
                "tags": ["Talleres"],
                "summary": "Get workshop detail",
                "security": [{"BearerAuth": []}],
                "parameters": [
                    {"name": "codigo", "in": "path", "required": true, "type": "string"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            },
            "put": {
                "tags": ["Talleres"],
                "summary": "Edit a workshop",
                "security": [{"BearerAuth": []}],
                "parameters": [
                    {"name": "codigo", "in": "path", "required": true, "type": "string"},
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/UpdateWorkshopRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/talleres/{codigo}/composicion": {
            "get": {
                "tags": ["Talleres"],
                "summary": "Standard toolbox composition of a workshop",
                "security": [{"BearerAuth": []}],
                "parameters": [
                    {"name": "codigo", "in": "path", "required": true, "type": "string"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/cursos": {
            "get": {
                "tags": ["Cursos"],
                "summary": "List courses",
                "security": [{"BearerAuth": []}],
                "parameters": [
                    {"name": "taller", "in": "query", "type": "string"},
                    {"name": "anio", "in": "query", "type": "integer"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            },
            "post": {
                "tags": ["Cursos"],
                "summary": "Register a course section",
                "security": [{"BearerAuth": []}],
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/CreateCourseRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/cursos/{codigo}": {
            "get": {
                "tags": ["Cursos"],
                "summary": "Get course detail",
                "security": [{"BearerAuth": []}],
                "parameters": [
                    {"name": "codigo", "in": "path", "required": true, "type": "string"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/alumnos": {
            "get": {
                "tags": ["Alumnos"],
                "summary": "List students",
                "security": [{"BearerAuth": []}],
                "parameters": [
                    {"name": "estado", "in": "query", "type": "string"},
                    {"name": "curso", "in": "query", "type": "string"},
                    {"name": "search", "in": "query", "type": "string"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            },
            "post": {
                "tags": ["Alumnos"],
                "summary": "Register a student",
                "security": [{"BearerAuth": []}],
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/CreateStudentRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/alumnos/{rut}": {
            "get": {
                "tags": ["Alumnos"],
                "summary": "Get student detail",
                "security": [{"BearerAuth": []}],
                "parameters": [
                    {"name": "rut", "in": "path", "required": true, "type": "string"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            },
            "put": {
                "tags": ["Alumnos"],
                "summary": "Edit a student",
                "security": [{"BearerAuth": []}],
                "parameters": [
                    {"name": "rut", "in": "path", "required": true, "type": "string"},
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/UpdateStudentRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/alumnos/{rut}/grupos": {
            "get": {
                "tags": ["Alumnos"],
                "summary": "Groups a student belongs to",
                "security": [{"BearerAuth": []}],
                "parameters": [
                    {"name": "rut", "in": "path", "required": true, "type": "string"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/alumnos/{rut}/historial": {
            "get": {
                "tags": ["Alumnos"],
                "summary": "Loan history of a student",
                "security": [{"BearerAuth": []}],
                "parameters": [
                    {"name": "rut", "in": "path", "required": true, "type": "string"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/alumnos/{rut}/estado": {
            "patch": {
                "tags": ["Alumnos"],
                "summary": "Update student status",
                "security": [{"BearerAuth": []}],
                "parameters": [
                    {"name": "rut", "in": "path", "required": true, "type": "string"},
                    {"name": "payload", "in": "body", "required": true, "schema": {"type": "object", "properties": {"estado": {"type": "string"}}}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/grupos": {
            "get": {
                "tags": ["Grupos"],
                "summary": "List groups",
                "security": [{"BearerAuth": []}],
                "parameters": [
                    {"name": "curso", "in": "query", "type": "string"},
                    {"name": "anio", "in": "query", "type": "integer"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            },
            "post": {
                "tags": ["Grupos"],
                "summary": "Create a group with initial members",
                "security": [{"BearerAuth": []}],
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/CreateGroupRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/grupos/sin-prestamo": {
            "get": {
                "tags": ["Grupos"],
                "summary": "Groups still waiting for a toolbox this year",
                "security": [{"BearerAuth": []}],
                "parameters": [
                    {"name": "anio", "in": "query", "type": "integer"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/grupos/{id}": {
            "get": {
                "tags": ["Grupos"],
                "summary": "Get group detail",
                "security": [{"BearerAuth": []}],
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "string"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/grupos/{id}/estado": {
            "put": {
                "tags": ["Grupos"],
                "summary": "Update group status",
                "security": [{"BearerAuth": []}],
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "string"},
                    {"name": "payload", "in": "body", "required": true, "schema": {"type": "object", "properties": {"estado": {"type": "string", "enum": ["ACTIVO", "INACTIVO"]}}}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/grupos/{id}/tiene-prestamo": {
            "get": {
                "tags": ["Grupos"],
                "summary": "Whether the group holds a loan for the year",
                "security": [{"BearerAuth": []}],
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "string"},
                    {"name": "anio", "in": "query", "type": "integer"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/grupos/{id}/integrantes": {
            "get": {
                "tags": ["Grupos"],
                "summary": "List group members",
                "security": [{"BearerAuth": []}],
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "string"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            },
            "post": {
                "tags": ["Grupos"],
                "summary": "Add a student to a group",
                "security": [{"BearerAuth": []}],
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "string"},
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/AddMemberRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "409": {"description": "Group full or responsible already set", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/grupos/{id}/integrantes/{rut}": {
            "delete": {
                "tags": ["Grupos"],
                "summary": "Remove a student from a group",
                "security": [{"BearerAuth": []}],
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "string"},
                    {"name": "rut", "in": "path", "required": true, "type": "string"}
                ],
                "responses": {
                    "204": {"description": "No Content"}
                }
            }
        },
        "/cajas": {
            "get": {
                "tags": ["Cajas"],
                "summary": "List toolboxes",
                "security": [{"BearerAuth": []}],
                "parameters": [
                    {"name": "taller", "in": "query", "type": "string"},
                    {"name": "estado", "in": "query", "type": "string"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            },
            "post": {
                "tags": ["Cajas"],
                "summary": "Register a toolbox",
                "security": [{"BearerAuth": []}],
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/CreateToolboxRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/cajas/disponibles": {
            "get": {
                "tags": ["Cajas"],
                "summary": "Toolboxes ready to be assigned",
                "security": [{"BearerAuth": []}],
                "parameters": [
                    {"name": "taller", "in": "query", "type": "string"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/cajas/{codigo}": {
            "get": {
                "tags": ["Cajas"],
                "summary": "Get toolbox detail with completeness",
                "security": [{"BearerAuth": []}],
                "parameters": [
                    {"name": "codigo", "in": "path", "required": true, "type": "string"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/cajas/{codigo}/disponible": {
            "get": {
                "tags": ["Cajas"],
                "summary": "Whether the toolbox can be assigned",
                "security": [{"BearerAuth": []}],
                "parameters": [
                    {"name": "codigo", "in": "path", "required": true, "type": "string"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/cajas/{codigo}/contenido": {
            "get": {
                "tags": ["Cajas"],
                "summary": "Units inside a toolbox",
                "security": [{"BearerAuth": []}],
                "parameters": [
                    {"name": "codigo", "in": "path", "required": true, "type": "string"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/cajas/{codigo}/historial": {
            "get": {
                "tags": ["Cajas"],
                "summary": "Movement trail of a toolbox",
                "security": [{"BearerAuth": []}],
                "parameters": [
                    {"name": "codigo", "in": "path", "required": true, "type": "string"},
                    {"name": "limit", "in": "query", "type": "integer"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/cajas/{codigo}/estado": {
            "patch": {
                "tags": ["Cajas"],
                "summary": "Update toolbox status",
                "security": [{"BearerAuth": []}],
                "parameters": [
                    {"name": "codigo", "in": "path", "required": true, "type": "string"},
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/UpdateToolboxStatusRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "409": {"description": "Box is on loan", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/inventario": {
            "get": {
                "tags": ["Inventario"],
                "summary": "Item catalog with stock aggregates",
                "security": [{"BearerAuth": []}],
                "parameters": [
                    {"name": "taller", "in": "query", "type": "string"},
                    {"name": "categoria", "in": "query", "type": "string"},
                    {"name": "search", "in": "query", "type": "string"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            },
            "post": {
                "tags": ["Inventario"],
                "summary": "Create an item with initial units",
                "security": [{"BearerAuth": []}],
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/CreateItemRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/inventario/faltantes": {
            "post": {
                "tags": ["Inventario"],
                "summary": "Report a missing unit",
                "security": [{"BearerAuth": []}],
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/ReportMissingRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/inventario/unidades/{inv_id}/estado": {
            "patch": {
                "tags": ["Inventario"],
                "summary": "Update a physical unit",
                "security": [{"BearerAuth": []}],
                "parameters": [
                    {"name": "inv_id", "in": "path", "required": true, "type": "string"},
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/UpdateUnitStatusRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/inventario/{codigo}": {
            "get": {
                "tags": ["Inventario"],
                "summary": "Get item detail",
                "security": [{"BearerAuth": []}],
                "parameters": [
                    {"name": "codigo", "in": "path", "required": true, "type": "string"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/inventario/{codigo}/unidades": {
            "get": {
                "tags": ["Inventario"],
                "summary": "Physical units of an item",
                "security": [{"BearerAuth": []}],
                "parameters": [
                    {"name": "codigo", "in": "path", "required": true, "type": "string"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/inventario/{codigo}/disponibles": {
            "get": {
                "tags": ["Inventario"],
                "summary": "Count of available units of an item",
                "security": [{"BearerAuth": []}],
                "parameters": [
                    {"name": "codigo", "in": "path", "required": true, "type": "string"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/prestamos": {
            "get": {
                "tags": ["Prestamos"],
                "summary": "List loans",
                "security": [{"BearerAuth": []}],
                "parameters": [
                    {"name": "anio", "in": "query", "type": "integer"},
                    {"name": "estado", "in": "query", "type": "string"},
                    {"name": "taller", "in": "query", "type": "string"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/prestamos/asignar": {
            "post": {
                "tags": ["Prestamos"],
                "summary": "Assign a toolbox to a group for the school year",
                "security": [{"BearerAuth": []}],
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/AssignLoanRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "409": {"description": "Box unavailable or group already has a loan", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/prestamos/{id}": {
            "get": {
                "tags": ["Prestamos"],
                "summary": "Get loan detail",
                "security": [{"BearerAuth": []}],
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "string"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/prestamos/{id}/devolver": {
            "post": {
                "tags": ["Prestamos"],
                "summary": "Process the end-of-year return review",
                "security": [{"BearerAuth": []}],
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "string"},
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/ReturnLoanRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "409": {"description": "Loan already closed", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/revision/{prestamo_id}": {
            "get": {
                "tags": ["Prestamos"],
                "summary": "Review checklist for a loan return",
                "security": [{"BearerAuth": []}],
                "parameters": [
                    {"name": "prestamo_id", "in": "path", "required": true, "type": "string"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/reportes/prestamos": {
            "get": {
                "tags": ["Reportes"],
                "summary": "Loan report",
                "security": [{"BearerAuth": []}],
                "parameters": [
                    {"name": "taller", "in": "query", "type": "string"},
                    {"name": "anio", "in": "query", "type": "integer"},
                    {"name": "estado", "in": "query", "type": "string"},
                    {"name": "fecha_inicio", "in": "query", "type": "string"},
                    {"name": "fecha_fin", "in": "query", "type": "string"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/reportes/prestamos/exportar": {
            "get": {
                "tags": ["Reportes"],
                "summary": "Download the loan report as CSV or PDF",
                "security": [{"BearerAuth": []}],
                "parameters": [
                    {"name": "formato", "in": "query", "type": "string", "enum": ["csv", "pdf"]}
                ],
                "responses": {
                    "200": {"description": "File"}
                }
            }
        },
        "/reportes/items-problematicos": {
            "get": {
                "tags": ["Reportes"],
                "summary": "Missing and damaged items report",
                "security": [{"BearerAuth": []}],
                "parameters": [
                    {"name": "taller", "in": "query", "type": "string"},
                    {"name": "estado", "in": "query", "type": "string"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/reportes/historial": {
            "get": {
                "tags": ["Reportes"],
                "summary": "Movement trail report",
                "security": [{"BearerAuth": []}],
                "parameters": [
                    {"name": "tipo", "in": "query", "type": "string"},
                    {"name": "caja", "in": "query", "type": "string"},
                    {"name": "fecha_inicio", "in": "query", "type": "string"},
                    {"name": "fecha_fin", "in": "query", "type": "string"},
                    {"name": "limit", "in": "query", "type": "integer"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/reportes/inventario": {
            "get": {
                "tags": ["Reportes"],
                "summary": "Stock report",
                "security": [{"BearerAuth": []}],
                "parameters": [
                    {"name": "taller", "in": "query", "type": "string"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/reportes/inventario/exportar": {
            "get": {
                "tags": ["Reportes"],
                "summary": "Download the stock report as CSV or PDF",
                "security": [{"BearerAuth": []}],
                "parameters": [
                    {"name": "formato", "in": "query", "type": "string", "enum": ["csv", "pdf"]}
                ],
                "responses": {
                    "200": {"description": "File"}
                }
            }
        },
        "/reportes/estadisticas": {
            "get": {
                "tags": ["Reportes"],
                "summary": "Per-workshop statistics",
                "security": [{"BearerAuth": []}],
                "parameters": [
                    {"name": "taller", "in": "query", "type": "string"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        }
    },
    "definitions": {
        "LoginRequest": {
            "type": "object",
            "properties": {
                "rut": {"type": "string", "example": "12.345.678-5"},
                "password": {"type": "string"}
            },
            "required": ["rut"]
        },
        "CreateStudentRequest": {
            "type": "object",
            "properties": {
                "alu_rut": {"type": "string"},
                "alu_nombres": {"type": "string"},
                "alu_apellidos": {"type": "string"},
                "alu_email": {"type": "string"},
                "alu_telefono": {"type": "string"},
                "alu_anio_ingreso": {"type": "integer"},
                "cur_codigo": {"type": "string"}
            },
            "required": ["alu_rut", "alu_nombres", "alu_apellidos"]
        },
        "UpdateStudentRequest": {
            "type": "object",
            "properties": {
                "alu_nombres": {"type": "string"},
                "alu_apellidos": {"type": "string"},
                "alu_email": {"type": "string"},
                "alu_telefono": {"type": "string"},
                "alu_anio_ingreso": {"type": "integer"},
                "cur_codigo": {"type": "string"}
            },
            "required": ["alu_nombres", "alu_apellidos", "alu_anio_ingreso"]
        },
        "CreateWorkshopRequest": {
            "type": "object",
            "properties": {
                "tal_codigo": {"type": "string"},
                "tal_nombre": {"type": "string"},
                "tal_descripcion": {"type": "string"},
                "tal_ubicacion": {"type": "string"},
                "doc_rut": {"type": "string"}
            },
            "required": ["tal_codigo", "tal_nombre"]
        },
        "UpdateWorkshopRequest": {
            "type": "object",
            "properties": {
                "tal_nombre": {"type": "string"},
                "tal_descripcion": {"type": "string"},
                "tal_ubicacion": {"type": "string"},
                "doc_rut": {"type": "string"}
            },
            "required": ["tal_nombre"]
        },
        "CreateCourseRequest": {
            "type": "object",
            "properties": {
                "cur_codigo": {"type": "string"},
                "cur_nombre": {"type": "string"},
                "cur_nivel": {"type": "string"},
                "cur_letra": {"type": "string"},
                "cur_anio": {"type": "integer"},
                "cur_cupos": {"type": "integer"},
                "tal_codigo": {"type": "string"}
            },
            "required": ["cur_codigo", "cur_nombre", "cur_anio"]
        },
        "CreateGroupRequest": {
            "type": "object",
            "properties": {
                "gru_numero": {"type": "integer"},
                "gru_nombre": {"type": "string"},
                "cur_codigo": {"type": "string"},
                "gru_anio": {"type": "integer"},
                "integrantes": {"type": "array", "items": {"type": "string"}, "maxItems": 3}
            },
            "required": ["gru_numero", "cur_codigo", "gru_anio"]
        },
        "AddMemberRequest": {
            "type": "object",
            "properties": {
                "alu_rut": {"type": "string"},
                "rol": {"type": "string", "enum": ["INTEGRANTE", "RESPONSABLE"]}
            },
            "required": ["alu_rut"]
        },
        "CreateToolboxRequest": {
            "type": "object",
            "properties": {
                "caj_codigo": {"type": "string"},
                "caj_numero": {"type": "integer"},
                "tal_codigo": {"type": "string"},
                "caj_candado": {"type": "string"},
                "caj_observaciones": {"type": "string"}
            },
            "required": ["caj_codigo", "caj_numero", "tal_codigo"]
        },
        "UpdateToolboxStatusRequest": {
            "type": "object",
            "properties": {
                "estado": {"type": "string", "enum": ["DISPONIBLE", "MANTENIMIENTO", "EXTRAVIADA"]},
                "observaciones": {"type": "string"}
            },
            "required": ["estado"]
        },
        "CreateItemRequest": {
            "type": "object",
            "properties": {
                "item_codigo": {"type": "string"},
                "item_nombre": {"type": "string"},
                "item_categoria": {"type": "string"},
                "tal_codigo": {"type": "string"},
                "unidades": {"type": "integer", "maximum": 500}
            },
            "required": ["item_codigo", "item_nombre", "tal_codigo"]
        },
        "UpdateUnitStatusRequest": {
            "type": "object",
            "properties": {
                "estado": {"type": "string", "enum": ["DISPONIBLE", "EXTRAVIADO", "MANTENIMIENTO", "DADO_DE_BAJA"]},
                "condicion": {"type": "string", "enum": ["BUENA", "REGULAR", "MALA"]},
                "observaciones": {"type": "string"}
            },
            "required": ["estado"]
        },
        "ReportMissingRequest": {
            "type": "object",
            "properties": {
                "inv_id": {"type": "string"},
                "descripcion": {"type": "string"},
                "pre_id": {"type": "string"}
            },
            "required": ["inv_id"]
        },
        "AssignLoanRequest": {
            "type": "object",
            "properties": {
                "caj_codigo": {"type": "string"},
                "gru_id": {"type": "string"},
                "anio": {"type": "integer"},
                "observaciones": {"type": "string"}
            },
            "required": ["caj_codigo", "gru_id", "anio"]
        },
        "ReturnLoanRequest": {
            "type": "object",
            "properties": {
                "revision": {
                    "type": "array",
                    "items": {"$ref": "#/definitions/ReviewEntry"},
                    "minItems": 1
                },
                "observaciones": {"type": "string"}
            },
            "required": ["revision"]
        },
        "ReviewEntry": {
            "type": "object",
            "properties": {
                "inv_id": {"type": "string"},
                "presente": {"type": "boolean"},
                "condicion": {"type": "string", "enum": ["BUENA", "REGULAR", "MALA"]},
                "observaciones": {"type": "string"}
            },
            "required": ["inv_id"]
        },
        "Pagination": {
            "type": "object",
            "properties": {
                "page": {"type": "integer"},
                "page_size": {"type": "integer"},
                "total_count": {"type": "integer"}
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
                "pagination": {"$ref": "#/definitions/Pagination"},
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
