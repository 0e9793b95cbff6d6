// Package docs содержит описание API для Swagger UI
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
        "/transfers": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["transfers"],
                "summary": "Выполнить перевод",
                "description": "Переводит средства между счетами с комиссией по классу перевода (CLASSIC 1%, INSTANT 2%, PERMANENT без комиссии). Переводы свыше 5000 получают статус PENDING.",
                "parameters": [
                    {"type": "integer", "name": "X-User-ID", "in": "header", "required": true, "description": "ID действующего пользователя"},
                    {"name": "transfer", "in": "body", "required": true, "description": "Данные перевода", "schema": {"type": "object"}}
                ],
                "responses": {
                    "201": {"description": "Перевод выполнен"},
                    "400": {"description": "Bad Request"},
                    "403": {"description": "Forbidden"},
                    "404": {"description": "Not Found"},
                    "422": {"description": "Insufficient Funds"}
                }
            }
        },
        "/scheduled-transfers": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["scheduled-transfers"],
                "summary": "Создать постоянное поручение",
                "parameters": [
                    {"type": "integer", "name": "X-User-ID", "in": "header", "required": true, "description": "ID действующего пользователя"},
                    {"name": "schedule", "in": "body", "required": true, "description": "Данные поручения", "schema": {"type": "object"}}
                ],
                "responses": {
                    "201": {"description": "Поручение создано"},
                    "400": {"description": "Bad Request"},
                    "403": {"description": "Forbidden"}
                }
            },
            "get": {
                "produces": ["application/json"],
                "tags": ["scheduled-transfers"],
                "summary": "Получить постоянные поручения счета",
                "parameters": [
                    {"type": "integer", "name": "account_id", "in": "query", "required": true, "description": "ID счета"}
                ],
                "responses": {
                    "200": {"description": "Список поручений"}
                }
            }
        },
        "/scheduled-transfers/{id}": {
            "delete": {
                "produces": ["application/json"],
                "tags": ["scheduled-transfers"],
                "summary": "Отменить постоянное поручение",
                "parameters": [
                    {"type": "integer", "name": "id", "in": "path", "required": true, "description": "ID поручения"}
                ],
                "responses": {
                    "200": {"description": "Поручение отменено"}
                }
            }
        },
        "/scheduled-transfers/run": {
            "post": {
                "produces": ["application/json"],
                "tags": ["scheduled-transfers"],
                "summary": "Запустить исполнение поручений",
                "responses": {
                    "200": {"description": "Итог прохода"}
                }
            }
        },
        "/accounts": {
            "post": {
                "produces": ["application/json"],
                "tags": ["accounts"],
                "summary": "Открыть счет",
                "parameters": [
                    {"type": "integer", "name": "X-User-ID", "in": "header", "required": true, "description": "ID действующего пользователя"}
                ],
                "responses": {
                    "201": {"description": "Счет открыт"},
                    "401": {"description": "Unauthorized"}
                }
            },
            "get": {
                "produces": ["application/json"],
                "tags": ["accounts"],
                "summary": "Получить счета пользователя",
                "parameters": [
                    {"type": "integer", "name": "X-User-ID", "in": "header", "required": true, "description": "ID действующего пользователя"}
                ],
                "responses": {
                    "200": {"description": "Список счетов"}
                }
            }
        },
        "/accounts/{id}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["accounts"],
                "summary": "Получить счет",
                "parameters": [
                    {"type": "integer", "name": "id", "in": "path", "required": true, "description": "ID счета"}
                ],
                "responses": {
                    "200": {"description": "Счет"},
                    "404": {"description": "Not Found"}
                }
            }
        },
        "/accounts/{id}/deposit": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["accounts"],
                "summary": "Пополнить счет",
                "parameters": [
                    {"type": "integer", "name": "X-User-ID", "in": "header", "required": true, "description": "ID действующего пользователя"},
                    {"type": "integer", "name": "id", "in": "path", "required": true, "description": "ID счета"},
                    {"name": "amount", "in": "body", "required": true, "description": "Сумма", "schema": {"type": "object"}}
                ],
                "responses": {
                    "200": {"description": "Счет после пополнения"},
                    "403": {"description": "Forbidden"}
                }
            }
        },
        "/accounts/{id}/withdraw": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["accounts"],
                "summary": "Снять средства",
                "parameters": [
                    {"type": "integer", "name": "X-User-ID", "in": "header", "required": true, "description": "ID действующего пользователя"},
                    {"type": "integer", "name": "id", "in": "path", "required": true, "description": "ID счета"},
                    {"name": "amount", "in": "body", "required": true, "description": "Сумма", "schema": {"type": "object"}}
                ],
                "responses": {
                    "200": {"description": "Счет после снятия"},
                    "422": {"description": "Insufficient Funds"}
                }
            }
        },
        "/accounts/{id}/status": {
            "put": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["accounts"],
                "summary": "Изменить статус счета",
                "parameters": [
                    {"type": "integer", "name": "id", "in": "path", "required": true, "description": "ID счета"},
                    {"name": "status", "in": "body", "required": true, "description": "Новый статус", "schema": {"type": "object"}}
                ],
                "responses": {
                    "200": {"description": "Статус изменен"},
                    "400": {"description": "Bad Request"}
                }
            }
        },
        "/accounts/{id}/transactions": {
            "get": {
                "produces": ["application/json"],
                "tags": ["accounts"],
                "summary": "Получить операции счета",
                "parameters": [
                    {"type": "integer", "name": "id", "in": "path", "required": true, "description": "ID счета"}
                ],
                "responses": {
                    "200": {"description": "Записи журнала"}
                }
            }
        },
        "/history": {
            "get": {
                "produces": ["application/json"],
                "tags": ["history"],
                "summary": "Получить историю пользователя",
                "parameters": [
                    {"type": "integer", "name": "X-User-ID", "in": "header", "required": true, "description": "ID действующего пользователя"}
                ],
                "responses": {
                    "200": {"description": "История операций"}
                }
            }
        },
        "/demo/seed": {
            "post": {
                "produces": ["application/json"],
                "tags": ["demo"],
                "summary": "Создать демонстрационные счета",
                "description": "Открывает по счету для нескольких пользователей и пополняет каждый случайной суммой.",
                "responses": {
                    "200": {"description": "Созданные счета"},
                    "500": {"description": "Internal Server Error"}
                }
            }
        },
        "/dashboard": {
            "get": {
                "produces": ["application/json"],
                "tags": ["dashboard"],
                "summary": "Получить сводку",
                "responses": {
                    "200": {"description": "Сводка"}
                }
            }
        },
        "/entries/{id}/status": {
            "put": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["entries"],
                "summary": "Изменить статус записи журнала",
                "description": "Хук для воркфлоу одобрения: применим только к записям в статусе PENDING.",
                "parameters": [
                    {"type": "integer", "name": "id", "in": "path", "required": true, "description": "ID записи журнала"},
                    {"name": "status", "in": "body", "required": true, "description": "Новый статус", "schema": {"type": "object"}}
                ],
                "responses": {
                    "200": {"description": "Запись после изменения"},
                    "400": {"description": "Bad Request"},
                    "404": {"description": "Not Found"}
                }
            }
        },
        "/entries/search": {
            "get": {
                "produces": ["application/json"],
                "tags": ["entries"],
                "summary": "Поиск по записям журнала",
                "description": "Ищет записи в Redis-индексе. Индекс наполняется асинхронно.",
                "parameters": [
                    {"type": "integer", "name": "account_id", "in": "query", "description": "ID счета"},
                    {"type": "string", "name": "amount", "in": "query", "description": "Точная сумма"},
                    {"type": "string", "name": "type", "in": "query", "description": "Тип записи"},
                    {"type": "string", "name": "status", "in": "query", "description": "Статус записи"},
                    {"type": "string", "name": "start_date", "in": "query", "description": "Начало периода (RFC3339)"},
                    {"type": "string", "name": "end_date", "in": "query", "description": "Конец периода (RFC3339)"}
                ],
                "responses": {
                    "200": {"description": "Найденные записи"},
                    "503": {"description": "Index Unavailable"}
                }
            }
        }
    }
}`

// SwaggerInfo содержит параметры документации API
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:8080",
	BasePath:         "/api/v1",
	Schemes:          []string{},
	Title:            "Bank Ledger System API",
	Description:      "Журнал транзакций и движок переводов между счетами",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
