// Package docs отдаёт OpenAPI-описание API для swagger UI.
package docs

import _ "embed"

//go:embed openapi.json
var OpenAPI []byte
