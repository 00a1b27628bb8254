package config

import (
	"fmt"
	"github.com/ilyakaznacheev/cleanenv"
	"log"
	"sync"
)

type Config struct {
	Env   string `yaml:"env" env:"ENV" env-default:"local"`
	Mongo struct {
		Enabled  bool   `yaml:"enabled" env:"MONGO_ENABLED" env-default:"true"`
		Host     string `yaml:"host" env:"MONGO_HOST" env-default:"127.0.0.1"`
		Port     string `yaml:"port" env:"MONGO_PORT" env-default:"27017"`
		User     string `yaml:"user" env:"MONGO_USER" env-default:""`
		Password string `yaml:"password" env:"MONGO_PASSWORD" env-default:""`
		Database string `yaml:"database" env:"MONGO_DATABASE" env-default:"skycherry"`
	} `yaml:"mongo"`
	Listen struct {
		BindIP  string `yaml:"bind_ip" env:"LISTEN_BIND_IP" env-default:"127.0.0.1"`
		Port    string `yaml:"port" env:"LISTEN_PORT" env-default:"9100"`
		ApiKey  string `yaml:"key" env:"LISTEN_KEY" env-default:""`
		Timeout int    `yaml:"timeout" env:"LISTEN_TIMEOUT" env-default:"5"`
	} `yaml:"listen"`
}

var instance *Config
var once sync.Once

// Load reads the yaml file at path and applies environment overrides.
func Load(path string) (*Config, error) {
	conf := &Config{}
	if err := cleanenv.ReadConfig(path, conf); err != nil {
		desc, _ := cleanenv.GetDescription(conf, nil)
		return nil, fmt.Errorf("%s; %s", err, desc)
	}
	return conf, nil
}

func MustLoad(path string) *Config {
	once.Do(func() {
		var err error
		instance, err = Load(path)
		if err != nil {
			log.Fatal(err)
		}
	})
	return instance
}

func (c *Config) MongoURI() string {
	return fmt.Sprintf("mongodb://%s:%s", c.Mongo.Host, c.Mongo.Port)
}

func (c *Config) ListenAddress() string {
	return fmt.Sprintf("%s:%s", c.Listen.BindIP, c.Listen.Port)
}
