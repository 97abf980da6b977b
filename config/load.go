package config

import (
	"flag"
	"fmt"
	"io/ioutil"
	"path"
	"time"

	"github.com/fernandosanchezjr/gosampling/utils"
	"github.com/fsnotify/fsnotify"
	log "github.com/sirupsen/logrus"
	"gopkg.in/yaml.v2"
)

const FileName = "config.yaml"

var configPath string

func init() {
	flag.StringVar(&configPath, "config", "", "specify config file (default ~/.gosampling/config.yaml)")
}

// DefaultPath returns the config file inside the home folder.
func DefaultPath() (string, error) {
	folder, err := utils.GetHomeFolder()
	if err != nil {
		return "", err
	}
	return path.Join(folder, FileName), nil
}

// LoadConfig loads the file named by the -config flag, or the default path.
func LoadConfig() (*Config, error) {
	var target = configPath
	if target == "" {
		var err error
		if target, err = DefaultPath(); err != nil {
			return nil, err
		}
	}
	return Load(target)
}

func Load(configPath string) (*Config, error) {
	var data []byte
	var err error
	log.WithField("path", configPath).Debug("Loading config")
	if data, err = ioutil.ReadFile(configPath); err != nil {
		return nil, fmt.Errorf("reading config %s: %w", configPath, err)
	}
	return Parse(data)
}

func Parse(data []byte) (*Config, error) {
	c := &Config{}
	if err := yaml.UnmarshalStrict(data, c); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	c.applyDefaults()
	return c, nil
}

// Watch reloads configPath on every write and hands the new config to f.
// Reloads that fail to parse are logged and skipped.
func Watch(configPath string, debounce time.Duration, f func(*Config)) (*fsnotify.Watcher, error) {
	return utils.NewFileWatcher(configPath, debounce, func() {
		cfg, err := Load(configPath)
		if err != nil {
			log.WithFields(log.Fields{
				"path":  configPath,
				"error": err,
			}).Warnln("Config reload failed")
			return
		}
		log.WithField("path", configPath).Info("Config reloaded")
		f(cfg)
	})
}
