package terraform

import (
	"context"
	"encoding/json"
	"fmt"
)

// output is the wrapper terraform emits per output in -json mode.
type output struct {
	Value     any  `json:"value"`
	Type      any  `json:"type"`
	Sensitive bool `json:"sensitive,omitempty"`
}

// Outputs runs terraform output -json and flattens each wrapper down
// to its scalar value.
func (r *Runner) Outputs(ctx context.Context) (map[string]any, error) {
	raw, err := r.runCaptured(ctx, "output", "-json")
	if err != nil {
		return nil, err
	}
	return parseOutputs([]byte(raw))
}

// parseOutputs decodes the -json output document into a flat map.
func parseOutputs(data []byte) (map[string]any, error) {
	var wrapped map[string]output
	if err := json.Unmarshal(data, &wrapped); err != nil {
		return nil, fmt.Errorf("unparseable terraform output: %w", err)
	}

	flat := make(map[string]any, len(wrapped))
	for name, out := range wrapped {
		flat[name] = out.Value
	}
	return flat, nil
}

// StringOutput returns a named output as a string, or "" when absent
// or not a string.
func StringOutput(outputs map[string]any, name string) string {
	if s, ok := outputs[name].(string); ok {
		return s
	}
	return ""
}
