package models

// Config holds the full application configuration
type Config struct {
	App       AppConfig       `json:"app" mapstructure:"app"`
	Server    ServerConfig    `json:"server" mapstructure:"server"`
	Database  DatabaseConfig  `json:"database" mapstructure:"database"`
	Redis     RedisConfig     `json:"redis" mapstructure:"redis"`
	NSQ       NSQConfig       `json:"nsq" mapstructure:"nsq"`
	JWT       JWTConfig       `json:"jwt" mapstructure:"jwt"`
	Logger    LoggerConfig    `json:"logger" mapstructure:"logger"`
	Emergency EmergencyConfig `json:"emergency" mapstructure:"emergency"`
	Shops     ShopsConfig     `json:"shops" mapstructure:"shops"`
}

// AppConfig holds application metadata
type AppConfig struct {
	Name        string `json:"name" mapstructure:"name"`
	Environment string `json:"environment" mapstructure:"environment"`
	Debug       bool   `json:"debug" mapstructure:"debug"`
	Version     string `json:"version" mapstructure:"version"`
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	Host            string `json:"host" mapstructure:"host"`
	Port            int    `json:"port" mapstructure:"port"`
	ReadTimeout     int    `json:"read_timeout" mapstructure:"read_timeout"`
	WriteTimeout    int    `json:"write_timeout" mapstructure:"write_timeout"`
	ShutdownTimeout int    `json:"shutdown_timeout" mapstructure:"shutdown_timeout"`
}

// DatabaseConfig holds PostgreSQL configuration
type DatabaseConfig struct {
	Host      string `json:"host" mapstructure:"host"`
	Port      int    `json:"port" mapstructure:"port"`
	Username  string `json:"username" mapstructure:"username"`
	Password  string `json:"password" mapstructure:"password"`
	Database  string `json:"database" mapstructure:"database"`
	SSLMode   string `json:"ssl_mode" mapstructure:"ssl_mode"`
	MaxConns  int    `json:"max_conns" mapstructure:"max_conns"`
	IdleConns int    `json:"idle_conns" mapstructure:"idle_conns"`
}

// RedisConfig holds Redis configuration
type RedisConfig struct {
	Host     string `json:"host" mapstructure:"host"`
	Port     int    `json:"port" mapstructure:"port"`
	Password string `json:"password" mapstructure:"password"`
	DB       int    `json:"db" mapstructure:"db"`
	PoolSize int    `json:"pool_size" mapstructure:"pool_size"`
}

// NSQConfig holds NSQ producer configuration
type NSQConfig struct {
	Address string `json:"address" mapstructure:"address"`
}

// JWTConfig holds JWT token configuration
type JWTConfig struct {
	Secret     string `json:"secret" mapstructure:"secret"`
	Expiration int    `json:"expiration" mapstructure:"expiration"` // minutes
	Issuer     string `json:"issuer" mapstructure:"issuer"`
}

// LoggerConfig holds logger configuration
type LoggerConfig struct {
	Level    string `json:"level" mapstructure:"level"`
	FilePath string `json:"file_path" mapstructure:"file_path"`
}

// EmergencyConfig holds emergency dispatch configuration
type EmergencyConfig struct {
	DispatchRadiusKm float64 `json:"dispatch_radius_km" mapstructure:"dispatch_radius_km"`
}

// ShopsConfig holds shop search configuration
type ShopsConfig struct {
	DefaultSearchRadiusKm float64 `json:"default_search_radius_km" mapstructure:"default_search_radius_km"`
}
