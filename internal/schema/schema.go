package schema

import (
	"embed"
	"fmt"
	"strings"
	"sync"

	"github.com/Lumos-Labs-HQ/airgen/internal/entity"
	"github.com/xeipuuv/gojsonschema"
)

//go:embed schemas/*.json
var files embed.FS

var (
	mu       sync.Mutex
	compiled = make(map[entity.Kind]*gojsonschema.Schema)
)

// ValidationError lists every way a record breaks its kind's schema.
type ValidationError struct {
	Kind   entity.Kind
	Index  int
	Issues []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s record %d does not match schema: %s", e.Kind, e.Index, strings.Join(e.Issues, "; "))
}

func load(kind entity.Kind) (*gojsonschema.Schema, error) {
	mu.Lock()
	defer mu.Unlock()

	if s, ok := compiled[kind]; ok {
		return s, nil
	}

	data, err := files.ReadFile("schemas/" + kind.String() + ".json")
	if err != nil {
		return nil, &entity.UnsupportedKindError{Kind: kind, Op: "schema"}
	}

	s, err := gojsonschema.NewSchema(gojsonschema.NewBytesLoader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to compile %s schema: %w", kind, err)
	}
	compiled[kind] = s
	return s, nil
}

// Validate checks a single record against the schema for kind.
func Validate(kind entity.Kind, rec entity.Record) error {
	return validateAt(kind, 0, rec)
}

// ValidateBatch stops at the first record that fails.
func ValidateBatch(kind entity.Kind, batch []entity.Record) error {
	for i, rec := range batch {
		if err := validateAt(kind, i, rec); err != nil {
			return err
		}
	}
	return nil
}

func validateAt(kind entity.Kind, index int, rec entity.Record) error {
	s, err := load(kind)
	if err != nil {
		return err
	}

	result, err := s.Validate(gojsonschema.NewGoLoader(rec))
	if err != nil {
		return fmt.Errorf("failed to validate %s record: %w", kind, err)
	}
	if result.Valid() {
		return nil
	}

	verr := &ValidationError{Kind: kind, Index: index}
	for _, issue := range result.Errors() {
		verr.Issues = append(verr.Issues, issue.String())
	}
	return verr
}
