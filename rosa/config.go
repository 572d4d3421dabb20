package rosa

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// 実行設定
// YAMLファイルから読み込み、コマンドライン引数で上書きします。
type Config struct {
	Columns  []string `yaml:"columns"`   // 風向の列名 (vector の場合は東西風, 南北風の順に6列)
	Mode     string   `yaml:"mode"`      // degree or vector
	Format   string   `yaml:"format"`    // CSV or ROSE
	LogLevel string   `yaml:"log_level"` // DEBUG, INFO, WARN, ERROR, CRITICAL
	Workers  int      `yaml:"workers"`   // 0 = GOMAXPROCS
}

func DefaultConfig() Config {
	return Config{
		Columns:  append([]string{}, DefaultColumns...),
		Mode:     ModeDegree,
		Format:   "CSV",
		LogLevel: "ERROR",
	}
}

// 設定ファイル path を読み込みます。記載のない項目は既定値のままです。
// コマンドライン引数で補完できるよう、ここでは検証しません (Validate を参照)。
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()

	b, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(b, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}

	return cfg, nil
}

// コマンドライン引数で上書きした設定を返します。
// 空文字列、空のリスト、0以下の workers は指定なしとして扱います。
func (cfg Config) Override(columns []string, mode string, format string, logLevel string, workers int) Config {
	if len(columns) > 0 {
		cfg.Columns = append([]string{}, columns...)
	}
	if mode != "" {
		cfg.Mode = mode
	}
	if format != "" {
		cfg.Format = format
	}
	if logLevel != "" {
		cfg.LogLevel = logLevel
	}
	if workers > 0 {
		cfg.Workers = workers
	}
	return cfg
}

func (cfg Config) Validate() error {
	switch cfg.Mode {
	case ModeDegree:
		if len(cfg.Columns) != 3 {
			return fmt.Errorf("mode %s needs 3 columns, got %d", cfg.Mode, len(cfg.Columns))
		}
	case ModeVector:
		if len(cfg.Columns) != 6 {
			return fmt.Errorf("mode %s needs 6 columns, got %d", cfg.Mode, len(cfg.Columns))
		}
	default:
		return fmt.Errorf("unknown mode %q", cfg.Mode)
	}

	switch strings.ToUpper(cfg.Format) {
	case "CSV", "ROSE":
	default:
		return fmt.Errorf("unknown format %q", cfg.Format)
	}

	if cfg.Workers < 0 {
		return fmt.Errorf("workers must not be negative")
	}
	return nil
}
