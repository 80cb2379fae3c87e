package config

import (
	"fmt"
	"os"
	"path"
	"sort"
	"sync"

	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

var Path = "hotel-repo.yaml"

var instance *MainRepoConfig
var instanceLock = &sync.RWMutex{}
var singletonLock = &sync.Once{}

func reloadConfig() (*MainRepoConfig, error) {
	c := NewDefaultMainConfig()

	// Write a default config if the one given doesn't exist
	_, err := os.Stat(Path)
	if os.IsNotExist(err) {
		fmt.Println("Generating new configuration...")
		configBytes, err := yaml.Marshal(c)
		if err != nil {
			return nil, err
		}
		if err = os.WriteFile(Path, configBytes, 0644); err != nil {
			return nil, err
		}
	}

	info, err := os.Stat(Path)
	if err != nil {
		return nil, err
	}

	pathsOrdered := make([]string, 0)
	if info.IsDir() {
		logrus.Info("Config is a directory - loading all files over top of each other")

		files, err := os.ReadDir(Path)
		if err != nil {
			return nil, err
		}
		for _, f := range files {
			if f.IsDir() {
				continue
			}
			pathsOrdered = append(pathsOrdered, path.Join(Path, f.Name()))
		}
		sort.Strings(pathsOrdered)
	} else {
		pathsOrdered = append(pathsOrdered, Path)
	}

	for _, p := range pathsOrdered {
		logrus.Info("Loading config file: ", p)
		buffer, err := os.ReadFile(p)
		if err != nil {
			return nil, err
		}
		if err = yaml.Unmarshal(buffer, &c); err != nil {
			return nil, fmt.Errorf("%s: %w", p, err)
		}
	}

	return &c, nil
}

func Get() *MainRepoConfig {
	singletonLock.Do(func() {
		c, err := reloadConfig()
		if err != nil {
			logrus.Fatal(err)
		}
		instanceLock.Lock()
		instance = c
		instanceLock.Unlock()
	})

	instanceLock.RLock()
	defer instanceLock.RUnlock()
	return instance
}

func set(c *MainRepoConfig) {
	instanceLock.Lock()
	instance = c
	instanceLock.Unlock()
}
