package quiz

import (
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

// documentSchema describes the outer shape a question file must have:
// a JSON object whose "questions" key holds an array of objects.
// Per-question field rules are checked separately so that errors can
// name the offending qid.
var documentSchema = map[string]any{
	"type": "object",
	"properties": map[string]any{
		"questions": map[string]any{
			"type":  "array",
			"items": map[string]any{"type": "object"},
		},
	},
	"required": []any{"questions"},
}

var compileDocumentSchema = sync.OnceValues(func() (*jsonschema.Schema, error) {
	c := jsonschema.NewCompiler()
	const url = "schema://question-file.json"
	if err := c.AddResource(url, documentSchema); err != nil {
		return nil, fmt.Errorf("add resource: %w", err)
	}
	compiled, err := c.Compile(url)
	if err != nil {
		return nil, fmt.Errorf("compile: %w", err)
	}
	return compiled, nil
})

// validateDocument checks a decoded question file against documentSchema.
func validateDocument(doc any) error {
	compiled, err := compileDocumentSchema()
	if err != nil {
		return fmt.Errorf("compile question file schema: %w", err)
	}
	if err := compiled.Validate(doc); err != nil {
		return fmt.Errorf("missing or malformed 'questions' list: %w", err)
	}
	return nil
}
