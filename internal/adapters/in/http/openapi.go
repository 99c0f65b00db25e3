package http

import (
	_ "embed"
	"fmt"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/getkin/kin-openapi/routers"
	"github.com/getkin/kin-openapi/routers/legacy"
	"github.com/swaggo/swag"
)

//go:embed openapi.yaml
var openAPIDocument []byte

// LoadOpenAPI parses and validates the embedded document.
func LoadOpenAPI() (*openapi3.T, error) {
	loader := openapi3.NewLoader()
	doc, err := loader.LoadFromData(openAPIDocument)
	if err != nil {
		return nil, fmt.Errorf("load openapi document: %w", err)
	}
	if err = doc.Validate(loader.Context); err != nil {
		return nil, fmt.Errorf("validate openapi document: %w", err)
	}
	return doc, nil
}

// NewOpenAPIRouter builds the route matcher used by OpenAPIValidator. The
// document declares no servers, so requests match on path alone.
func NewOpenAPIRouter(doc *openapi3.T) (routers.Router, error) {
	return legacy.NewRouter(doc)
}

// swaggerDoc serves the document as JSON to echo-swagger.
type swaggerDoc struct {
	json string
}

func (d swaggerDoc) ReadDoc() string {
	return d.json
}

// RegisterSwagger publishes doc under swag's default instance name. Only the
// first registration in a process takes effect.
func RegisterSwagger(doc *openapi3.T) error {
	if swag.GetSwagger(swag.Name) != nil {
		return nil
	}
	data, err := doc.MarshalJSON()
	if err != nil {
		return fmt.Errorf("marshal openapi document: %w", err)
	}
	swag.Register(swag.Name, swaggerDoc{json: string(data)})
	return nil
}
