package http

import (
	"github.com/getkin/kin-openapi/openapi3"
	"github.com/swaggo/swag"
)

// RegisterSwaggerDoc publishes doc as the document served by the Swagger UI.
// Later calls keep the first registration.
func RegisterSwaggerDoc(doc *openapi3.T) error {
	if swag.GetSwagger(swag.Name) != nil {
		return nil
	}

	raw, err := doc.MarshalJSON()
	if err != nil {
		return err
	}

	swag.Register(swag.Name, &swag.Spec{
		Title:            doc.Info.Title,
		Description:      doc.Info.Description,
		Version:          doc.Info.Version,
		InfoInstanceName: swag.Name,
		SwaggerTemplate:  string(raw),
		LeftDelim:        "{{",
		RightDelim:       "}}",
	})
	return nil
}
