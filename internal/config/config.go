package config

import (
	"errors"

	"github.com/spf13/viper"
)

type Config struct {
	Storage StorageConfig `mapstructure:"storage"`
	Log     LogConfig     `mapstructure:"log"`
	Limits  LimitsConfig  `mapstructure:"limits"`
}

type StorageConfig struct {
	DataFile string `mapstructure:"data_file"`
}

type LogConfig struct {
	Mode       string `mapstructure:"mode"` // debug 模式下日志同时输出到控制台
	File       string `mapstructure:"file"`
	MaxSize    int    `mapstructure:"max_size"` // MB
	MaxBackups int    `mapstructure:"max_backups"`
	MaxAge     int    `mapstructure:"max_age"` // 天
}

// LimitsConfig 交互输入的边界，录入时在输入边界强制执行
type LimitsConfig struct {
	MaxCourses int     `mapstructure:"max_courses"`
	GradeMin   float64 `mapstructure:"grade_min"`
	GradeMax   float64 `mapstructure:"grade_max"`
	CreditMin  float64 `mapstructure:"credit_min"`
	CreditMax  float64 `mapstructure:"credit_max"`
}

// LoadConfig 从指定目录读取 config.yaml，文件不存在时使用默认值
func LoadConfig(path string) (*Config, error) {
	v := viper.New()
	v.AddConfigPath(path)
	v.SetConfigName("config")
	v.SetConfigType("yaml")

	v.SetDefault("storage.data_file", "cgpa_data.txt")
	v.SetDefault("log.mode", "release")
	v.SetDefault("log.file", "logs/app.log")
	v.SetDefault("log.max_size", 10)
	v.SetDefault("log.max_backups", 3)
	v.SetDefault("log.max_age", 30)
	v.SetDefault("limits.max_courses", 100)
	v.SetDefault("limits.grade_min", 0)
	v.SetDefault("limits.grade_max", 10)
	v.SetDefault("limits.credit_min", 0.01)
	v.SetDefault("limits.credit_max", 100)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, err
		}
		// 没有配置文件时直接走默认值
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
