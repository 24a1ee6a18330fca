package config

// RunnerConfig defines configuration for the single-pass run orchestrator
type RunnerConfig struct {
	RunTimeoutSecs int `json:"run_timeout_secs,omitempty" yaml:"run_timeout_secs,omitempty" validate:"omitempty,min=1"`
	WorkerCount    int `json:"worker_count,omitempty" yaml:"worker_count,omitempty" validate:"omitempty,min=1"`
}

// NewDefaultRunnerConfig creates default runner configuration
func NewDefaultRunnerConfig() RunnerConfig {
	return RunnerConfig{
		RunTimeoutSecs: DefaultRunnerRunTimeoutSecs,
		WorkerCount:    DefaultRunnerWorkerCount,
	}
}
