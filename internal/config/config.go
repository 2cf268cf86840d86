package config

import (
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Config 客户端配置
type Config struct {
	Rules  RulesConfig  `yaml:"rules"`
	Client ClientConfig `yaml:"client"`
}

// RulesConfig holds the overridable rule knobs of the engine.
type RulesConfig struct {
	// TargetMin/TargetMax bound the declarable picture-card target.
	// The engine itself accepts the whole historical 1..20 range; the
	// bundled client narrows the offered choices to 13..16.
	TargetMin int `yaml:"target_min"`
	TargetMax int `yaml:"target_max"`
	// TwoRuleMinTurn is the first trick on which the rank-reversal rule
	// may fire. 1 enables it from the opening trick; 2 reproduces the
	// variant that keeps it off on trick 1.
	TwoRuleMinTurn int `yaml:"two_rule_min_turn"`
}

// ClientConfig 终端界面配置
type ClientConfig struct {
	CPUDelayMs int `yaml:"cpu_delay_ms"` // CPU 出牌间隔（毫秒）
}

// CPUDelay 返回 CPU 行动间隔
func (c *ClientConfig) CPUDelay() time.Duration {
	return time.Duration(c.CPUDelayMs) * time.Millisecond
}

// Load 加载配置文件
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}

	// 设置默认值
	if cfg.Rules.TargetMin == 0 {
		cfg.Rules.TargetMin = 1
	}
	if cfg.Rules.TargetMax == 0 {
		cfg.Rules.TargetMax = 20
	}
	if cfg.Rules.TwoRuleMinTurn == 0 {
		cfg.Rules.TwoRuleMinTurn = 1
	}
	if cfg.Client.CPUDelayMs == 0 {
		cfg.Client.CPUDelayMs = 600
	}

	return &cfg, nil
}

// Default 返回默认配置
func Default() *Config {
	return &Config{
		Rules: RulesConfig{
			TargetMin:      1,
			TargetMax:      20,
			TwoRuleMinTurn: 1,
		},
		Client: ClientConfig{
			CPUDelayMs: 600,
		},
	}
}
