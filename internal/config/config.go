package config

// Config holds all application configuration. It is an explicit structure
// handed to constructors at wiring time; core logic never reads ambient
// global state.
type Config struct {
	Server   ServerConfig   `mapstructure:"server" validate:"required"`
	Mongo    MongoConfig    `mapstructure:"mongo" validate:"required"`
	RabbitMQ RabbitMQConfig `mapstructure:"rabbitmq"`
	GraphQL  GraphQLConfig  `mapstructure:"graphql"`
	API      APIConfig      `mapstructure:"api"`
	Limits   LimitsConfig   `mapstructure:"limits"`
}

// ServerConfig contains all server-related configuration settings.
type ServerConfig struct {
	Host           string `mapstructure:"host"`
	Port           int    `mapstructure:"port" validate:"required,gt=0,lt=65536"`
	LogLevel       string `mapstructure:"log_level" validate:"required,oneof=debug info warn error"`
	RequestTimeout int    `mapstructure:"request_timeout" validate:"gte=0"` // seconds
}

// MongoConfig contains the document-store connection settings.
type MongoConfig struct {
	URI      string `mapstructure:"uri" validate:"required"`
	Database string `mapstructure:"database" validate:"required"`
}

// RabbitMQConfig contains the event-channel settings. An empty URL means
// no broker: events are dispatched in-process instead.
type RabbitMQConfig struct {
	URL        string `mapstructure:"url"`
	Exchange   string `mapstructure:"exchange"`
	Queue      string `mapstructure:"queue"`
	RoutingKey string `mapstructure:"routing_key"`
}

// GraphQLConfig contains the GraphQL surface settings.
type GraphQLConfig struct {
	Path       string `mapstructure:"path" validate:"required,startswith=/"`
	Playground bool   `mapstructure:"playground"`
}

// APIConfig contains the REST surface settings.
type APIConfig struct {
	Prefix string `mapstructure:"prefix" validate:"required,startswith=/"`
}

// LimitsConfig bounds the free-text task fields.
type LimitsConfig struct {
	TitleMax       int `mapstructure:"title_max" validate:"gt=0"`
	DescriptionMax int `mapstructure:"description_max" validate:"gt=0"`
}
