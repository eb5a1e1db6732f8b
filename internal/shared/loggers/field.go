package loggers

const (
	FieldApp       = "app"
	FieldComponent = "component"
	FieldRunID     = "run_id"

	FieldInputPath  = "input_path"
	FieldOutputPath = "output_path"
	FieldLineNumber = "line_number"
	FieldLine       = "line"
	FieldStatusCode = "status_code"

	FieldDuration   = "duration"
	FieldErrorStack = "error_stack"
	FieldErrorCode  = "error_code"

	FieldPartitionId = "partition_id"
)
