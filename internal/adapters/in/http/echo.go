// Package http is the REST adapter. Routes follow the embedded openapi.yaml;
// request bodies are checked against the document and again by struct tags.
package http

import (
	"fmt"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"
	echoSwagger "github.com/swaggo/echo-swagger"
)

// NewEcho wires si, request validation, logging and Swagger UI into an echo
// instance. A nil doc disables document validation and Swagger UI.
func NewEcho(si ServerInterface, logger logrus.FieldLogger, doc *openapi3.T) (*echo.Echo, error) {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Validator = NewRequestValidator()
	e.HTTPErrorHandler = ErrorHandler(logger)

	e.Use(RequestLogger(logger))

	if doc != nil {
		router, err := NewOpenAPIRouter(doc)
		if err != nil {
			return nil, fmt.Errorf("build openapi router: %w", err)
		}
		if err = RegisterSwagger(doc); err != nil {
			return nil, err
		}
		e.Use(OpenAPIValidator(router))
		e.GET("/swagger/*", echoSwagger.WrapHandler)
	}

	RegisterHandlers(e, si)
	return e, nil
}
