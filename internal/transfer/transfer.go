// Package transfer exports and imports task collections.
package transfer

import (
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"sync"

	jsonschema "github.com/santhosh-tekuri/jsonschema/v5"
	"gopkg.in/yaml.v3"

	"github.com/nibzard/tasks-go/internal/task"
)

// SchemaVersion is the document version written by Export.
const SchemaVersion = 1

//go:embed schema.json
var schemaJSON string

const schemaURL = "tasks.schema.json"

// Format selects the export encoding.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// ParseFormat validates a format name.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case FormatJSON, FormatYAML:
		return f, nil
	case "yml":
		return FormatYAML, nil
	case "":
		return FormatJSON, nil
	}
	return "", &task.ValidationError{
		Field: "format",
		Err:   fmt.Errorf("unknown format %q, must be one of: json, yaml", s),
	}
}

// Document is the export/import file layout.
type Document struct {
	SchemaVersion int         `json:"schema_version" yaml:"schema_version"`
	Tasks         []task.Task `json:"tasks" yaml:"tasks"`
}

// Drafts converts the document's tasks into insert inputs. Ids in the file
// are ignored; the store assigns new ones.
func (d *Document) Drafts() []task.Draft {
	drafts := make([]task.Draft, 0, len(d.Tasks))
	for _, t := range d.Tasks {
		drafts = append(drafts, task.Draft{
			Description: t.Description,
			Deadline:    t.Deadline,
			Status:      t.Status,
			Priority:    t.Priority,
		})
	}
	return drafts
}

// Export writes tasks to w in the given format.
func Export(w io.Writer, tasks []task.Task, format Format) error {
	if tasks == nil {
		tasks = []task.Task{}
	}
	doc := Document{SchemaVersion: SchemaVersion, Tasks: tasks}

	switch format {
	case FormatJSON, "":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(doc); err != nil {
			return fmt.Errorf("encode json: %w", err)
		}
		return nil
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(doc); err != nil {
			return fmt.Errorf("encode yaml: %w", err)
		}
		if err := enc.Close(); err != nil {
			return fmt.Errorf("encode yaml: %w", err)
		}
		return nil
	}
	_, err := ParseFormat(string(format))
	return err
}

// Decode reads a JSON document and validates it against the embedded schema.
// Schema violations are returned as *task.ValidationError.
func Decode(r io.Reader) (*Document, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read document: %w", err)
	}

	var raw interface{}
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, &task.ValidationError{Field: "document", Err: fmt.Errorf("invalid JSON: %w", err)}
	}

	schema, err := compiledSchema()
	if err != nil {
		return nil, err
	}
	if err := schema.Validate(raw); err != nil {
		return nil, schemaError(err)
	}

	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse document: %w", err)
	}
	return &doc, nil
}

var (
	schemaOnce     sync.Once
	schemaCompiled *jsonschema.Schema
	schemaErr      error
)

func compiledSchema() (*jsonschema.Schema, error) {
	schemaOnce.Do(func() {
		compiler := jsonschema.NewCompiler()
		if err := compiler.AddResource(schemaURL, strings.NewReader(schemaJSON)); err != nil {
			schemaErr = fmt.Errorf("load schema: %w", err)
			return
		}
		schemaCompiled, schemaErr = compiler.Compile(schemaURL)
		if schemaErr != nil {
			schemaErr = fmt.Errorf("compile schema: %w", schemaErr)
		}
	})
	return schemaCompiled, schemaErr
}

// schemaError flattens a schema validation failure into one
// *task.ValidationError whose Err joins every leaf cause.
func schemaError(err error) error {
	var ve *jsonschema.ValidationError
	if !errors.As(err, &ve) {
		return &task.ValidationError{Field: "document", Err: err}
	}

	var causes []error
	collectSchemaErrors(&causes, ve)
	if len(causes) == 0 {
		causes = append(causes, errors.New(ve.Message))
	}
	return &task.ValidationError{Field: "document", Err: errors.Join(causes...)}
}

func collectSchemaErrors(out *[]error, err *jsonschema.ValidationError) {
	if err == nil {
		return
	}
	if len(err.Causes) == 0 {
		*out = append(*out, &task.ValidationError{
			Field: jsonPointerToPath(err.InstanceLocation),
			Err:   errors.New(err.Message),
		})
		return
	}
	for _, cause := range err.Causes {
		collectSchemaErrors(out, cause)
	}
}

// jsonPointerToPath turns "/tasks/0/description" into "tasks[0].description".
func jsonPointerToPath(ptr string) string {
	ptr = strings.TrimPrefix(ptr, "#")
	ptr = strings.TrimPrefix(ptr, "/")
	if ptr == "" {
		return ""
	}

	var b strings.Builder
	for _, part := range strings.Split(ptr, "/") {
		part = strings.ReplaceAll(part, "~1", "/")
		part = strings.ReplaceAll(part, "~0", "~")
		if part == "" {
			continue
		}
		if idx, err := strconv.Atoi(part); err == nil {
			fmt.Fprintf(&b, "[%d]", idx)
			continue
		}
		if b.Len() > 0 {
			b.WriteByte('.')
		}
		b.WriteString(part)
	}
	return b.String()
}
