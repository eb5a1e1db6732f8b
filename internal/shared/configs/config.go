package configs

// Config holds all configuration for the application.
type Config struct {
	Log      LogConfig      `mapstructure:"log" validate:"required"`
	Input    InputConfig    `mapstructure:"input" validate:"required"`
	Output   OutputConfig   `mapstructure:"output" validate:"required"`
	Analysis AnalysisConfig `mapstructure:"analysis" validate:"required"`
	Report   ReportConfig   `mapstructure:"report" validate:"required"`
	Metrics  MetricsConfig  `mapstructure:"metrics"`
}

// LogConfig holds logging configuration.
type LogConfig struct {
	Level string `mapstructure:"level" validate:"required,loglevel"`
}

// InputConfig describes the access log to analyze.
type InputConfig struct {
	Path string `mapstructure:"path" validate:"required"` // plain text, or gzip when it ends in .gz
}

// OutputConfig describes where the report is written.
type OutputConfig struct {
	Path string `mapstructure:"path" validate:"required"`
}

// AnalysisConfig holds line processing configuration.
type AnalysisConfig struct {
	Workers int `mapstructure:"workers" validate:"required,min=1,max=64"`
}

// ReportConfig holds report rendering configuration.
type ReportConfig struct {
	Locale string `mapstructure:"locale" validate:"required,oneof=en ko"`
}

// MetricsConfig holds optional metrics export configuration.
type MetricsConfig struct {
	TextfilePath string `mapstructure:"textfile_path"` // empty disables the export
}
