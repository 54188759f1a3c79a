package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/qiniu/wsmanager/internal/workspace"
	"github.com/qiniu/wsmanager/pkg/models"
	"github.com/qiniu/x/log"
	"gopkg.in/yaml.v3"
)

// Environment variables read by Load
const (
	EnvDefaultWorkspace = "WORKSPACE_DEFAULT"
	EnvWorkspaceName    = "WORKSPACE_NAME"
	EnvWorkspacePath    = "WORKSPACE_PATH"
)

var ErrNoWorkspaces = errors.New("no workspaces configured")

type Config struct {
	DefaultWorkspace string             `yaml:"default_workspace"`
	Workspaces       []models.Workspace `yaml:"workspaces"`
}

func Load(configPath string) (*Config, error) {
	// 首先尝试从文件加载
	if _, err := os.Stat(configPath); err == nil {
		data, err := os.ReadFile(configPath)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}

		var config Config
		if err := yaml.Unmarshal(data, &config); err != nil {
			return nil, fmt.Errorf("failed to parse config file: %w", err)
		}

		// 环境变量覆盖
		config.loadFromEnv()

		return &config, nil
	}

	// 如果文件不存在，从环境变量创建配置
	config := &Config{}
	config.loadFromEnv()
	return config, nil
}

// LoadDotEnv loads variables from the given .env files into the process
// environment without overriding variables that are already set. Files
// that do not exist are skipped.
func LoadDotEnv(files ...string) error {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, f := range files {
		if _, err := os.Stat(f); err != nil {
			continue
		}
		if err := godotenv.Load(f); err != nil {
			return fmt.Errorf("failed to load %s: %w", f, err)
		}
		log.Debugf("Loaded environment from %s", f)
	}
	return nil
}

func (c *Config) loadFromEnv() {
	if def := os.Getenv(EnvDefaultWorkspace); def != "" {
		c.DefaultWorkspace = def
	}
	if name := os.Getenv(EnvWorkspaceName); name != "" {
		c.Workspaces = append(c.Workspaces, models.Workspace{
			Name: name,
			Path: os.Getenv(EnvWorkspacePath),
		})
	}
}

// Validate checks that at least one workspace is configured and every
// workspace has a name. The default workspace is checked by Build.
func (c *Config) Validate() error {
	if len(c.Workspaces) == 0 {
		return ErrNoWorkspaces
	}
	for i, ws := range c.Workspaces {
		if ws.Name == "" {
			return fmt.Errorf("workspace #%d has no name", i+1)
		}
	}
	return nil
}

// Build creates a workspace manager from the configuration. A single
// workspace without an explicit default becomes the current one.
func (c *Config) Build() (*workspace.Manager, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	if len(c.Workspaces) == 1 && c.DefaultWorkspace == "" {
		return workspace.FromSingleWorkspace(c.Workspaces[0]), nil
	}
	m, err := workspace.NewManager(c.Workspaces, c.DefaultWorkspace)
	if err != nil {
		return nil, fmt.Errorf("invalid default_workspace: %w", err)
	}
	return m, nil
}
