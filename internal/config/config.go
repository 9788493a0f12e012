package config

import (
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"
	log "github.com/sirupsen/logrus"
)

type Application struct {
	Listen  string  `koanf:"listen"`
	Backend Backend `koanf:"backend"`
	Refresh Refresh `koanf:"refresh"`
	Grid    Grid    `koanf:"grid"`
}

type Backend struct {
	// URL is the base URL of the dashboard backend exposing /api/calendar.
	URL            string `koanf:"url"`
	TimeoutSeconds int    `koanf:"timeoutseconds"`
}

type Refresh struct {
	// Schedule is a cron spec (robfig/cron syntax, "@hourly" by default).
	Schedule string `koanf:"schedule"`
}

type Grid struct {
	WindowDays int `koanf:"windowdays"`
}

func Load(path string) (Application, error) {
	var k = koanf.New(".")

	err := k.Load(structs.Provider(Application{
		Listen: ":8090",
		Backend: Backend{
			URL:            "http://localhost:5000",
			TimeoutSeconds: 15,
		},
		Refresh: Refresh{
			Schedule: "@hourly",
		},
		Grid: Grid{
			WindowDays: 3,
		},
	}, "koanf"), nil)
	if err != nil {
		log.Errorf("error loading config from structs: %v", err)
		return Application{}, err
	}

	if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
		if os.IsNotExist(err) {
			log.Infof("Config file not found at %s, using defaults and environment variables", path)
		} else {
			log.Errorf("error loading config from YAML: %v", err)
			return Application{}, err
		}
	} else {
		log.Infof("Loaded configuration from file: %s", path)
	}

	err = k.Load(env.Provider(".", env.Opt{
		Prefix: "HALLVIEW_",
		TransformFunc: func(k, v string) (string, any) {
			k = strings.ReplaceAll(strings.ToLower(strings.TrimPrefix(k, "HALLVIEW_")), "_", ".")
			return k, v
		},
	}), nil)
	if err != nil {
		log.Errorf("error loading config from envs: %v", err)
		return Application{}, err
	}

	var app Application
	if err := k.Unmarshal("", &app); err != nil {
		return Application{}, err
	}

	return app, nil
}
