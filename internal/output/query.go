package output

import (
	"encoding/json"
	"fmt"

	"github.com/itchyny/gojq"

	clierrors "github.com/hollowpine/table-cli/internal/errors"
)

// runQuery normalizes data to plain map/slice form, runs a gojq query,
// and writes each result as JSON. When prettyPrint is true, output is
// indented.
func (p *Printer) runQuery(query string, data interface{}, prettyPrint bool) error {
	normalized, err := normalizeToInterface(data)
	if err != nil {
		return fmt.Errorf("query error: %w", err)
	}

	parsed, err := gojq.Parse(query)
	if err != nil {
		return invalidQueryErr(err)
	}
	code, err := gojq.Compile(parsed)
	if err != nil {
		return invalidQueryErr(err)
	}

	enc := json.NewEncoder(p.w)
	enc.SetEscapeHTML(false)
	if prettyPrint {
		enc.SetIndent("", "  ")
	}

	iter := code.Run(normalized)
	for {
		v, ok := iter.Next()
		if !ok {
			break
		}
		if qerr, isErr := v.(error); isErr {
			return fmt.Errorf("query error: %w", qerr)
		}
		if err := enc.Encode(v); err != nil {
			return err
		}
	}
	return nil
}

func invalidQueryErr(err error) error {
	return clierrors.WrapUserError(err, "invalid --query expression", "Check the jq syntax, e.g. --query '.rows[0]'")
}

// normalizeToInterface converts structs to plain map/slice form via a
// JSON round trip so gojq and jsonpath can traverse them.
func normalizeToInterface(data interface{}) (interface{}, error) {
	b, err := json.Marshal(data)
	if err != nil {
		return nil, err
	}
	var out interface{}
	if err := json.Unmarshal(b, &out); err != nil {
		return nil, err
	}
	return out, nil
}
