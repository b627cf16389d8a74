package platform

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/aretw0/flatcms/pkg/auth"
)

// FileConfig mirrors flatcms.yaml.
type FileConfig struct {
	Addr        string      `yaml:"addr"`
	DataDir     string      `yaml:"data_dir"`
	TestDataDir string      `yaml:"test_data_dir"`
	TestMode    *bool       `yaml:"test_mode"`
	MustExist   bool        `yaml:"must_exist"`
	Watch       bool        `yaml:"watch"`
	Ignore      []string    `yaml:"ignore"`
	SessionKey  string      `yaml:"session_key"`
	Admin       AdminConfig `yaml:"admin"`
}

// AdminConfig replaces the built-in account when both fields are set.
type AdminConfig struct {
	Username     string `yaml:"username"`
	PasswordHash string `yaml:"password_hash"` // bcrypt, see `flatcms hash-password`
}

// LoadConfig reads and decodes a configuration file. Unknown keys are rejected.
func LoadConfig(path string) (*FileConfig, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open config: %w", err)
	}
	defer f.Close()

	var cfg FileConfig
	dec := yaml.NewDecoder(f)
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	return &cfg, nil
}

// Options converts the file settings into functional options.
// Options given after these on the command line take precedence.
func (c *FileConfig) Options() []Option {
	var opts []Option
	if c.DataDir != "" {
		opts = append(opts, WithDataDir(c.DataDir))
	}
	if c.TestDataDir != "" {
		opts = append(opts, WithTestDataDir(c.TestDataDir))
	}
	if c.TestMode != nil {
		opts = append(opts, WithTestMode(*c.TestMode))
	}
	if c.MustExist {
		opts = append(opts, WithMustExist(true))
	}
	if len(c.Ignore) > 0 {
		opts = append(opts, WithIgnore(c.Ignore...))
	}
	if c.SessionKey != "" {
		opts = append(opts, WithSessionKey([]byte(c.SessionKey)))
	}
	if c.Admin.Username != "" && c.Admin.PasswordHash != "" {
		opts = append(opts, WithCredentials(&auth.StaticCredentials{
			Username:     c.Admin.Username,
			PasswordHash: []byte(c.Admin.PasswordHash),
		}))
	}
	return opts
}
