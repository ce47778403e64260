package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// Env holds process-level settings read from the environment. Command-line
// flags take precedence when they are set explicitly.
type Env struct {
	FPS         int           `env:"RUNNER_FPS" envDefault:"60"`
	Seed        int64         `env:"RUNNER_SEED"`
	ConfigPath  string        `env:"RUNNER_CONFIG"`
	Difficulty  string        `env:"RUNNER_DIFFICULTY"`
	LogFile     string        `env:"RUNNER_LOG_FILE"`
	Mute        bool          `env:"RUNNER_MUTE"`
	SSHAddr     string        `env:"RUNNER_SSH_ADDR" envDefault:":23234"`
	HostKeyPath string        `env:"RUNNER_HOST_KEY"`
	IdleTimeout time.Duration `env:"RUNNER_IDLE_TIMEOUT" envDefault:"30m"`
}

// LoadEnv parses Env from the process environment.
func LoadEnv() (Env, error) {
	var e Env
	if err := env.Parse(&e); err != nil {
		return e, fmt.Errorf("parse env: %w", err)
	}
	return e, nil
}
