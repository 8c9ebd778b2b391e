package policy

import (
	"errors"
	"fmt"
	"time"

	"github.com/tesseradb/tessera-client-go/query"
)

// ErrInvalidPolicy is returned by Validate when a policy field is outside
// its legal range.
var ErrInvalidPolicy = errors.New("policy: invalid policy value")

// ScanPolicy configures full-namespace scans.
type ScanPolicy struct {
	BasePolicy

	// ScanPercent is the sampled fraction of records, 1 to 100.
	ScanPercent int

	// MaxConcurrentNodes caps how many nodes are scanned in parallel.
	// Zero scans all nodes at once.
	MaxConcurrentNodes int

	// RecordQueueSize is the per-node buffer of records awaiting the
	// consumer.
	RecordQueueSize int

	// FailOnClusterChange aborts the scan when the cluster membership
	// changes mid-flight.
	FailOnClusterChange bool

	// SocketTimeout bounds each individual socket read during the scan.
	SocketTimeout time.Duration

	// PredExp filters records server-side before they are returned.
	PredExp []query.PredExp
}

// NewScanPolicy returns a ScanPolicy with server-matching defaults: full
// coverage, unlimited node parallelism, and cluster-change protection on.
func NewScanPolicy() ScanPolicy {
	return ScanPolicy{
		BasePolicy:          NewBasePolicy(),
		ScanPercent:         100,
		MaxConcurrentNodes:  0,
		RecordQueueSize:     1024,
		FailOnClusterChange: true,
		SocketTimeout:       10 * time.Second,
	}
}

// AddPredicate appends filter expression nodes to the scan. Nodes are
// postfix-ordered; see the query package.
func (p *ScanPolicy) AddPredicate(exps ...query.PredExp) {
	p.PredExp = append(p.PredExp, exps...)
}

// Validate reports whether the policy can be sent as is.
func (p *ScanPolicy) Validate() error {
	if p.ScanPercent < 1 || p.ScanPercent > 100 {
		return fmt.Errorf("policy: scan percent %d outside 1..100: %w", p.ScanPercent, ErrInvalidPolicy)
	}
	return nil
}
