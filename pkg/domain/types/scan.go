package types

import "github.com/google/uuid"

type (
	RunID       string
	ScanOutcome string
)

const (
	// ScanOutcomeClean means the scan ran and found nothing. The report is discarded.
	ScanOutcomeClean ScanOutcome = "clean"
	// ScanOutcomeLeakFound means at least one finding was reported. The report is retained.
	ScanOutcomeLeakFound       ScanOutcome = "leak-found"
	ScanOutcomeCloneFailed     ScanOutcome = "clone-failed"
	ScanOutcomeScanFailed      ScanOutcome = "scan-failed"
	ScanOutcomeUnexpectedError ScanOutcome = "unexpected-error"
)

// ScanOutcomes lists every terminal state in display order.
var ScanOutcomes = []ScanOutcome{
	ScanOutcomeClean,
	ScanOutcomeLeakFound,
	ScanOutcomeCloneFailed,
	ScanOutcomeScanFailed,
	ScanOutcomeUnexpectedError,
}

func (x ScanOutcome) String() string {
	return string(x)
}

// Scanned reports whether the scanner actually ran to completion for the project.
func (x ScanOutcome) Scanned() bool {
	return x == ScanOutcomeClean || x == ScanOutcomeLeakFound
}

func NewRunID() RunID {
	return RunID(uuid.New().String())
}

func (x RunID) String() string {
	return string(x)
}
