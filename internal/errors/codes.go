package errors

type Code string

const (
	CodeUnknown          Code = "UNKNOWN"
	CodeInternal         Code = "INTERNAL_ERROR"
	CodeConfigValidation Code = "CONFIG_VALIDATION_ERROR"
	CodeConfigReadError  Code = "CONFIG_READ_ERROR"
	CodeConfigParseError Code = "CONFIG_PARSE_ERROR"

	// Logging pipeline
	CodeInvalidSeverity  Code = "INVALID_SEVERITY"
	CodeInvalidFieldKind Code = "INVALID_FIELD_KIND"
	CodePatternParse     Code = "PATTERN_PARSE_ERROR"
	CodeReportError      Code = "REPORT_ERROR"

	// Demo flows
	CodeScenarioNotFound     Code = "SCENARIO_NOT_FOUND"
	CodeSimulatedFailure     Code = "SIMULATED_FAILURE"
	CodeOperationInterrupted Code = "OPERATION_INTERRUPTED"
)

func (c Code) String() string {
	return string(c)
}
