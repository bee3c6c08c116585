package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config 配置信息
type Config struct {
	App     *App     `json:"app" yaml:"app"`
	Redis   *Redis   `json:"redis" yaml:"redis"`
	MySQL   *MySQL   `json:"mysql" yaml:"mysql"`
	Jwt     *Jwt     `json:"jwt" yaml:"jwt"`
	Server  *Server  `json:"server" yaml:"server"`
	Rewards *Rewards `json:"rewards" yaml:"rewards"`
}

type Server struct {
	Http int `json:"http" yaml:"http"`
}

func New(filename string) *Config {

	content, err := os.ReadFile(filename)
	if err != nil {
		panic(err)
	}

	conf, err := Parse(content)
	if err != nil {
		panic(err)
	}

	return conf
}

// Parse 解析 yaml 内容并补齐默认值
func Parse(content []byte) (*Config, error) {
	var conf Config
	if err := yaml.Unmarshal(content, &conf); err != nil {
		return nil, fmt.Errorf("解析 config.yaml 读取错误: %w", err)
	}

	if conf.App == nil {
		conf.App = &App{Env: "dev"}
	}
	if conf.Server == nil {
		conf.Server = &Server{}
	}
	if conf.Server.Http == 0 {
		conf.Server.Http = 8080
	}
	if conf.Jwt == nil {
		conf.Jwt = &Jwt{}
	}
	if conf.Rewards == nil {
		conf.Rewards = &Rewards{}
	}
	conf.Rewards.applyDefaults()

	return &conf, nil
}

// Debug 调试模式
func (c *Config) Debug() bool {
	return c.App.Debug
}
