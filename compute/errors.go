package compute

// SubmissionIDError indicates submit tool output that did not contain a
// job id where one was expected. Output holds the tool's combined stdout
// and stderr, unmodified.
type SubmissionIDError struct {
	Output string
}

func (e *SubmissionIDError) Error() string {
	return "Not a submitted job: " + e.Output
}
