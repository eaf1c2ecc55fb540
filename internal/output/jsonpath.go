package output

import (
	"github.com/PaesslerAG/jsonpath"

	clierrors "github.com/hollowpine/table-cli/internal/errors"
)

// applyJSONPath extracts a value from data using a JSONPath expression.
func applyJSONPath(data interface{}, path string) (interface{}, error) {
	normalized, err := normalizeToInterface(data)
	if err != nil {
		return nil, err
	}
	result, err := jsonpath.Get(path, normalized)
	if err != nil {
		return nil, clierrors.WrapUserError(err, "invalid --jsonpath expression", `Example: --jsonpath "$.rows[0][1]"`)
	}
	return result, nil
}
