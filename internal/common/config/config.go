package config

import (
	"encoding/json"
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
)

// Config 应用配置
type Config struct {
	Server   ServerConfig   `json:"server"`
	Database DatabaseConfig `json:"database"`
	Consul   ConsulConfig   `json:"consul"`
	Jaeger   JaegerConfig   `json:"jaeger"`
	Kinesis  KinesisConfig  `json:"kinesis"`
	Payment  PaymentConfig  `json:"payment"`
	Auth     AuthConfig     `json:"auth"`
	Log      LogConfig      `json:"log"`
}

// ServerConfig 服务配置
type ServerConfig struct {
	Name     string `json:"name"`      // 服务名称
	Host     string `json:"host"`      // 服务地址
	GRPCPort int    `json:"grpc_port"` // gRPC端口
	HTTPPort int    `json:"http_port"` // HTTP端口（api-gateway）
}

// DatabaseConfig 数据库配置
type DatabaseConfig struct {
	Host     string `json:"host"`     // 数据库地址
	Port     int    `json:"port"`     // 数据库端口
	User     string `json:"user"`     // 用户名
	Password string `json:"password"` // 密码
	Database string `json:"database"` // 数据库名
	MaxIdle  int    `json:"max_idle"` // 最大空闲连接
	MaxOpen  int    `json:"max_open"` // 最大打开连接
}

// ConsulConfig Consul配置
type ConsulConfig struct {
	Host string `json:"host"`
	Port int    `json:"port"`
}

// JaegerConfig Jaeger配置
type JaegerConfig struct {
	Endpoint string  `json:"endpoint"`
	Sampler  float64 `json:"sampler"` // 采样率 0.0-1.0
}

// KinesisConfig 作业事件流配置（可选；stream_name 为空则不发送事件）。
type KinesisConfig struct {
	Region     string `json:"region"`
	StreamName string `json:"stream_name"`
}

// PaymentConfig 支付授权配置。
// AuthorizeTimeoutMS 是单次 authorize 调用的上限，超时后作业保持 towing，允许重试。
type PaymentConfig struct {
	Gateway            string `json:"gateway"`              // demo / 后续接入真实网关
	AuthorizeTimeoutMS int    `json:"authorize_timeout_ms"` // authorize 超时（毫秒）
	MaxFailures        int    `json:"max_failures"`         // 熔断阈值
	ResetTimeoutMS     int    `json:"reset_timeout_ms"`     // 熔断恢复窗口（毫秒）
}

// AuthorizeTimeout 返回 authorize 超时时间（默认 5s）。
func (p PaymentConfig) AuthorizeTimeout() time.Duration {
	if p.AuthorizeTimeoutMS <= 0 {
		return 5 * time.Second
	}
	return time.Duration(p.AuthorizeTimeoutMS) * time.Millisecond
}

// ResetTimeout 返回熔断恢复窗口（默认 30s）。
func (p PaymentConfig) ResetTimeout() time.Duration {
	if p.ResetTimeoutMS <= 0 {
		return 30 * time.Second
	}
	return time.Duration(p.ResetTimeoutMS) * time.Millisecond
}

// AuthConfig 鉴权配置（JWT/HS256）。
// 每个作业归属于唯一的 tower（拖车运营者），所有状态流转都必须带上操作者身份：
// token 的 subject 即 tower_id，由拦截器写入 ctx，业务侧不允许使用全局默认身份。
type AuthConfig struct {
	Enabled       bool                `json:"enabled"`
	JWTSecret     string              `json:"jwt_secret"`
	Issuer        string              `json:"issuer"`
	Audience      string              `json:"audience"`
	PublicMethods []string            `json:"public_methods"` // 免鉴权的 gRPC full method
	RBAC          map[string][]string `json:"rbac"`           // method -> 要求的角色
}

// LogConfig 日志配置
type LogConfig struct {
	Level  string `json:"level"`  // debug, info, warn, error
	Format string `json:"format"` // json, text
	Output string `json:"output"` // stdout, file
	Path   string `json:"path"`   // 日志文件路径
}

var (
	globalConfig *Config
	configOnce   sync.Once
)

// LoadConfig 加载配置
func LoadConfig(configPath string) (*Config, error) {
	var err error
	configOnce.Do(func() {
		globalConfig = &Config{}
		// 如果配置文件不存在，使用默认配置
		if _, err = os.Stat(configPath); os.IsNotExist(err) {
			logrus.Warnf("Config file not found: %s, using default config", configPath)
			globalConfig = defaultConfig()
			err = nil
			return
		}

		data, readErr := os.ReadFile(configPath)
		if readErr != nil {
			err = fmt.Errorf("failed to read config file: %w", readErr)
			return
		}

		if unmarshalErr := json.Unmarshal(data, globalConfig); unmarshalErr != nil {
			err = fmt.Errorf("failed to parse config file: %w", unmarshalErr)
			return
		}
	})

	if err != nil {
		return nil, err
	}

	return globalConfig, nil
}

// GetConfig 获取全局配置
func GetConfig() *Config {
	if globalConfig == nil {
		return defaultConfig()
	}
	return globalConfig
}

// defaultConfig 默认配置（开发环境）
func defaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Name:     "job-service",
			Host:     "0.0.0.0",
			GRPCPort: 50051,
			HTTPPort: 8080,
		},
		Database: DatabaseConfig{
			Host:     "localhost",
			Port:     3306,
			User:     "root",
			Password: "root",
			Database: "towlinkdrive",
			MaxIdle:  10,
			MaxOpen:  100,
		},
		Consul: ConsulConfig{
			Host: "localhost",
			Port: 8500,
		},
		Jaeger: JaegerConfig{
			Endpoint: "localhost:6831",
			Sampler:  1.0,
		},
		Kinesis: KinesisConfig{
			Region:     "us-west-2",
			StreamName: "", // 默认关闭事件流
		},
		Payment: PaymentConfig{
			Gateway:            "demo",
			AuthorizeTimeoutMS: 5000,
			MaxFailures:        5,
			ResetTimeoutMS:     30000,
		},
		Auth: AuthConfig{
			Enabled:   false,
			JWTSecret: "",
			Issuer:    "towlinkdrive",
			Audience:  "towlinkdrive",
		},
		Log: LogConfig{
			Level:  "debug",
			Format: "text",
			Output: "stdout",
			Path:   "logs/app.log",
		},
	}
}
