package task

import (
	"context"
	"fmt"
	"strings"
)

// RegisterTask tracks the registration of a UDF module across the cluster.
type RegisterTask struct {
	client InfoClient
	module string
}

// NewRegisterTask returns a task for the UDF module with the given file
// name.
func NewRegisterTask(client InfoClient, module string) *RegisterTask {
	return &RegisterTask{client: client, module: module}
}

// QueryStatus checks whether the module shows up in the node's UDF list. A
// node that answers without a udf-list entry does not know the module at
// all.
func (t *RegisterTask) QueryStatus(ctx context.Context) (Status, error) {
	responses, err := t.client.RequestInfo(ctx, "udf-list")
	if err != nil {
		return StatusNotFound, fmt.Errorf("task: udf list: %w", err)
	}
	response, ok := responses["udf-list"]
	if !ok {
		return StatusNotFound, nil
	}
	if strings.Contains(response, "filename="+t.module) {
		return StatusComplete, nil
	}
	return StatusInProgress, nil
}
