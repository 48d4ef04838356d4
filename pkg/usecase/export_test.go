package usecase

// Export unexported functions for testing
var (
	InspectReportForTest               = inspectReport
	DecodeFindingsForTest              = decodeFindings
	CreateOrUpdateBigQueryTableForTest = createOrUpdateBigQueryTable
	NewBigQueryRecorderForTest         = newBigQueryRecorder
)
