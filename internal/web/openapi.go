package web

import (
	"github.com/getkin/kin-openapi/openapi3"
)

// LoadOpenapiDocument reads and validates the served contract. A broken
// document means a broken deploy, so the router logs it loudly at startup.
func LoadOpenapiDocument(location string) (*openapi3.T, error) {
	loader := openapi3.NewLoader()

	doc, err := loader.LoadFromFile(location)
	if err != nil {
		return nil, err
	}

	if err := doc.Validate(loader.Context); err != nil {
		return nil, err
	}

	return doc, nil
}
