package interfaces

//go:generate moq -out ../mock/usecase.go -pkg mock . Prompter

// Prompter asks the operator questions in attended mode.
type Prompter interface {
	// ConfirmRestart asks whether to discard the checkpoint and restart from 0.
	ConfirmRestart(start, total int) bool
	// ContinueNextBatch asks whether to proceed after a batch. false stops the run.
	ContinueNextBatch(nextBatchID int) bool
}
