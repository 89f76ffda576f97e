// Package docs registers the persona API document with swag. The template is
// maintained by hand next to the handlers it describes
package docs

import (
	_ "embed"

	"github.com/swaggo/swag/v2"
)

// InstanceName is the swag registry key of the API document
const InstanceName = "personalab"

//go:embed openapi.json
var template string

// SwaggerInfo holds the exported document info so main can stamp the version
var SwaggerInfo = &swag.Spec{
	Version:          "dev",
	BasePath:         "/api/v1",
	Title:            "PersonaLab API",
	Description:      "Persona records, forks and document exports.",
	InfoInstanceName: InstanceName,
	SwaggerTemplate:  template,
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
