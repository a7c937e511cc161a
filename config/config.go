package config

import (
	"io"
	"os"
	"path/filepath"

	"github.com/pkg/errors"
	yaml "gopkg.in/yaml.v3"
)

// Config is a structured representation of a permsctl config file.
type Config struct {
	// Base template for web editor session URLs. The session key is
	// appended after a '#' fragment separator.
	EditorURL string `yaml:"editor_url"`

	// Address of the paste service editor payloads are uploaded to.
	BytebinAddress string `yaml:"bytebin_address"`

	// Path of the YAML file holding users, groups and tracks.
	DataFile string `yaml:"data_file"`

	// Identity commands run as. Empty means the console, which passes
	// every permission check.
	Actor string `yaml:"actor"`
}

const (
	addressKey         = "PERMSCTL_BYTEBIN_ADDR"
	configPathKey      = "PERMSCTL_CONFIG_FILE"
	defaultAddress     = "https://bytebin.lucko.me"
	defaultEditorURL   = "https://luckperms.net/editor"
	permsctlConfigFile = "config.yml"
)

var permsctlConfigDir = filepath.Join(os.Getenv("HOME"), ".permsctl")

// New reads environment and configuration files and returns the resulting
// permsctl configuration.
func New() (*Config, error) {
	// Set up default config before doing anything.
	config := Config{
		BytebinAddress: defaultAddress,
		EditorURL:      defaultEditorURL,
		DataFile:       filepath.Join(permsctlConfigDir, "data.yml"),
	}
	if addr, ok := os.LookupEnv(addressKey); ok {
		config.BytebinAddress = addr
	}

	r, err := findConfig()
	if err != nil {
		return nil, err
	}
	if r != nil {
		defer r.Close()

		d := yaml.NewDecoder(r)
		if err := d.Decode(&config); err != nil {
			return nil, errors.Wrap(err, "failed to read config")
		}
	}
	return &config, nil
}

func GetFilePath() string {
	if override, ok := os.LookupEnv(configPathKey); ok {
		return override
	}
	return filepath.Join(permsctlConfigDir, permsctlConfigFile)
}

func ReadConfigFromFile(path string) (*Config, error) {
	r, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer r.Close()

	config := Config{}
	d := yaml.NewDecoder(r)
	if err := d.Decode(&config); err != nil {
		return nil, errors.Wrap(err, "failed to read config")
	}

	return &config, nil
}

func WriteConfig(config *Config, filePath string) error {
	bytes, err := yaml.Marshal(config)
	if err != nil {
		return err
	}

	dirPath, _ := filepath.Split(filePath)
	if err := os.MkdirAll(dirPath, os.ModePerm); err != nil {
		return errors.WithStack(err)
	}

	return os.WriteFile(filePath, bytes, 0644)
}

func findConfig() (io.ReadCloser, error) {
	// Check the override first.
	if override, ok := os.LookupEnv(configPathKey); ok {
		return os.Open(override)
	}

	configPaths := []string{
		permsctlConfigDir,
		"/etc/permsctl",
	}

	for _, p := range configPaths {
		r, err := os.Open(filepath.Join(p, permsctlConfigFile))
		if os.IsNotExist(err) {
			continue
		}
		return r, errors.WithStack(err)
	}

	// No config file found; we'll just use defaults.
	return nil, nil
}
