package loader

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pb33f/libopenapi"
	validator "github.com/pb33f/libopenapi-validator"
	"github.com/pb33f/libopenapi/datamodel"
	v3 "github.com/pb33f/libopenapi/datamodel/high/v3"

	"github.com/kolah/resourcery/resource"
)

type Result struct {
	Document *libopenapi.DocumentModel[v3.Document]
	Spec     *resource.YAMLDocument
	Version  string
	Warnings []string
	RawData  []byte
}

func LoadFile(path string, validate bool) (*Result, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading spec file: %w", err)
	}

	absPath, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("resolving absolute path: %w", err)
	}

	config := &datamodel.DocumentConfiguration{
		BasePath:            filepath.Dir(absPath),
		AllowFileReferences: true,
	}

	return loadWithConfig(data, config, validate)
}

func LoadBytes(data []byte, validate bool) (*Result, error) {
	return loadWithConfig(data, nil, validate)
}

func loadWithConfig(data []byte, config *datamodel.DocumentConfiguration, validate bool) (*Result, error) {
	var doc libopenapi.Document
	var err error

	if config != nil {
		doc, err = libopenapi.NewDocumentWithConfiguration(data, config)
	} else {
		doc, err = libopenapi.NewDocument(data)
	}
	if err != nil {
		return nil, fmt.Errorf("parsing OpenAPI document: %w", err)
	}

	version := doc.GetVersion()
	if !strings.HasPrefix(version, "3.") {
		return nil, fmt.Errorf("unsupported OpenAPI version: %s (only 3.x supported)", version)
	}

	if validate {
		if err := validateDocument(doc); err != nil {
			return nil, err
		}
	}

	model, err := doc.BuildV3Model()
	if err != nil {
		return nil, fmt.Errorf("building OpenAPI model: %w", err)
	}

	spec, err := resource.ParseYAML(data)
	if err != nil {
		return nil, err
	}

	result := &Result{
		Document: model,
		Spec:     spec,
		Version:  version,
		RawData:  data,
	}

	if strings.HasPrefix(version, "3.0") {
		result.Warnings = append(result.Warnings, "OpenAPI 3.0.x detected; some 3.1/3.2 features unavailable")
	}

	return result, nil
}

func validateDocument(doc libopenapi.Document) error {
	v, errs := validator.NewValidator(doc)
	if len(errs) > 0 {
		return fmt.Errorf("creating validator: %w", errs[0])
	}

	valid, validationErrs := v.ValidateDocument()
	if valid {
		return nil
	}

	msgs := make([]string, 0, len(validationErrs))
	for _, e := range validationErrs {
		msgs = append(msgs, e.Message)
	}
	return fmt.Errorf("document validation failed: %s", strings.Join(msgs, "; "))
}
