package models

// AppConfig is the top-level configuration container for the application.
// It is populated by merging values from the Docker secrets directory,
// environment variables, a dotenv file, a YAML file, and the declared
// defaults, in that precedence order.
//
// Struct tags:
//   - conf     — key name of the field inside every configuration source;
//     nested groups contribute path segments joined by the nesting delimiter
//     for flat sources (e.g. DB__HOST) and nested mappings for YAML.
//   - default  — raw default value, coerced like any sourced value.
//   - required — the field must be present after the merge when it carries
//     no default.
//   - validate — comma-separated list of named value validators.
type AppConfig struct {
	// ServiceName identifies the running service in logs and exports.
	ServiceName string `conf:"SERVICE_NAME" default:"my_service_name"`

	// DB holds the relational database connection settings.
	DB DBConfig `conf:"DB"`

	// AWS holds AWS credentials and service settings.
	AWS AWSConfig `conf:"AWS_CONFIG"`

	// LLM holds language-model provider settings.
	LLM LLMConfig `conf:"LLM"`

	// LookupData holds paths to required auxiliary data files.
	LookupData LookupDataConfig `conf:"LOOKUP_DATA"`

	// Logging holds the log output settings applied at startup.
	Logging LoggingConfig `conf:"LOGGING"`
}

// DBConfig holds database connection and authentication settings.
// Username and Password are secrets and never appear in dumps.
type DBConfig struct {
	DBName      string       `conf:"DB_NAME" default:"DBNAME"`
	SchemaNames string       `conf:"SCHEMA_NAMES" default:"SCHEMA"`
	Username    Secret       `conf:"USERNAME" default:"DB_USERNAME"`
	Password    Secret       `conf:"PASSWORD" default:"DB_PASS"`
	Host        string       `conf:"HOST" default:"127.0.0.1" validate:"nonempty"`
	Port        int          `conf:"PORT" default:"5432" validate:"port"`
	Perf        DBPerfConfig `conf:"PERF"`
}

// DBPerfConfig holds connection-pool sizing for the database backend.
type DBPerfConfig struct {
	// PoolSize is the total number of connections in the pool.
	PoolSize int `conf:"POOL_SIZE" default:"20"`

	// WebConcurrency is the number of web workers sharing the pool.
	WebConcurrency int `conf:"WEB_CONCURRENCY" default:"5"`
}

// AWSConfig holds AWS authentication and service access settings.
// Authentication uses either a named CLI profile or an access key pair;
// providing exactly one half of the key pair fails validation.
type AWSConfig struct {
	Profile         string        `conf:"AWS_PROFILE"`
	AccessKeyID     Secret        `conf:"AWS_ACCESS_KEY_ID"`
	SecretAccessKey Secret        `conf:"AWS_SECRET_ACCESS_KEY"`
	DefaultRegion   string        `conf:"AWS_DEFAULT_REGION" default:"us-east-1" validate:"nonempty"`
	S3BucketNames   S3BucketNames `conf:"S3_BUCKET_NAMES"`
}

// Validate enforces the cross-field authentication rule after all AWS fields
// have been coerced.
func (c AWSConfig) Validate() error {
	if c.AccessKeyID.IsZero() != c.SecretAccessKey.IsZero() {
		return ErrPartialAWSKeyPair
	}
	return nil
}

// UseProfileAuth reports whether profile-based authentication applies.
func (c AWSConfig) UseProfileAuth() bool {
	return c.Profile != ""
}

// UseKeyAuth reports whether access-key authentication applies.
func (c AWSConfig) UseKeyAuth() bool {
	return !c.AccessKeyID.IsZero() && !c.SecretAccessKey.IsZero()
}

// S3BucketNames holds the named S3 buckets used by the application.
type S3BucketNames struct {
	BucketA string `conf:"BUCKET_A"`
	BucketB string `conf:"BUCKET_B"`
}

// LLMConfig holds language-model provider settings.
type LLMConfig struct {
	OpenAI OpenAIModelConfig `conf:"OPENAI_MODEL_CONFIG"`
}

// OpenAIModelConfig holds OpenAI API access and sampling parameters.
type OpenAIModelConfig struct {
	APIKey      Secret  `conf:"OPENAI_API_KEY"`
	Model       string  `conf:"MODEL" default:"gpt-4o-mini"`
	Temperature float64 `conf:"TEMPERATURE" default:"0.2"`
	MaxTokens   int     `conf:"MAX_TOKENS" default:"1024"`
}

// LookupDataConfig holds paths to auxiliary data files the application needs
// at startup. DataFile1 must point at an existing file; relative paths are
// resolved against the configured base directory before validation.
type LookupDataConfig struct {
	DataFile1   string   `conf:"DATA_FILE_1" default:"go.mod" validate:"file_exists"`
	SearchPaths []string `conf:"SEARCH_PATHS"`
}

// LoggingConfig holds the log output settings applied at startup.
type LoggingConfig struct {
	// LogLevel is the minimum emitted level, one of zerolog's level names.
	LogLevel string `conf:"LOG_LEVEL" default:"info" validate:"log_level"`

	// LogFormat selects the output encoder.
	LogFormat string `conf:"LOG_FORMAT" default:"json" validate:"oneof=json console"`

	// LogCaller toggles the caller field on every entry.
	LogCaller bool `conf:"LOG_CALLER" default:"true"`
}
