package service

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/diceprojects/auth-system/internal/core/domain"
	"github.com/diceprojects/auth-system/internal/core/ports"
)

const activeStatusKey = "status1"

// StatusResolver reads the EntityStatus parameter from the configuration
// service and extracts the label that marks an entity as active. The value is
// fetched on every call so label changes take effect without a restart; the
// cost is one extra round-trip on creation and activation paths.
type StatusResolver struct {
	params ports.ParameterClient
}

func NewStatusResolver(params ports.ParameterClient) *StatusResolver {
	return &StatusResolver{params: params}
}

// ActiveStatus returns the configured active-status label. A missing
// parameter, malformed payload, or absent key is an internal error: the whole
// creation path depends on this value.
func (r *StatusResolver) ActiveStatus(ctx context.Context) (string, error) {
	param, err := r.params.GetByName(ctx, domain.ParamEntityStatus)
	if err != nil {
		return "", fmt.Errorf("resolve active status: %w", err)
	}

	statuses := map[string]string{}
	if err := json.Unmarshal([]byte(param.Value), &statuses); err != nil {
		return "", fmt.Errorf("resolve active status: parse %q: %w", param.Name, err)
	}

	status, ok := statuses[activeStatusKey]
	if !ok || status == "" {
		return "", fmt.Errorf("resolve active status: key %q missing in %q", activeStatusKey, param.Name)
	}
	return status, nil
}
