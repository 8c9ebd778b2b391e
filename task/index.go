package task

import (
	"context"
	"fmt"
	"strconv"
	"strings"
)

// IndexTask tracks a secondary index build.
type IndexTask struct {
	client    InfoClient
	namespace string
	index     string
}

// NewIndexTask returns a task for the named index in namespace.
func NewIndexTask(client InfoClient, namespace, index string) *IndexTask {
	return &IndexTask{client: client, namespace: namespace, index: index}
}

func (t *IndexTask) command() string {
	return "sindex/" + t.namespace + "/" + t.index
}

// QueryStatus asks one node how far the index build has progressed.
func (t *IndexTask) QueryStatus(ctx context.Context) (Status, error) {
	command := t.command()
	responses, err := t.client.RequestInfo(ctx, command)
	if err != nil {
		return StatusNotFound, fmt.Errorf("task: index status: %w", err)
	}
	response, ok := responses[command]
	if !ok {
		return StatusNotFound, fmt.Errorf("task: no response for %q", command)
	}
	return parseIndexResponse(response)
}

// parseIndexResponse reads the load_pct field out of a sindex info line.
// The server answers FAIL:201 for an unknown index and FAIL:203 once a
// dropped index is gone.
func parseIndexResponse(response string) (Status, error) {
	const marker = "load_pct="
	i := strings.Index(response, marker)
	if i < 0 {
		if strings.HasPrefix(response, "FAIL:201") || strings.HasPrefix(response, "FAIL:203") {
			return StatusNotFound, nil
		}
		return StatusNotFound, fmt.Errorf("task: unexpected sindex response %q", response)
	}

	rest := response[i+len(marker):]
	if j := strings.IndexAny(rest, ";:"); j >= 0 {
		rest = rest[:j]
	}
	pct, err := strconv.Atoi(rest)
	if err != nil {
		return StatusNotFound, fmt.Errorf("task: parse load_pct: %w", err)
	}
	if pct >= 100 {
		return StatusComplete, nil
	}
	return StatusInProgress, nil
}
