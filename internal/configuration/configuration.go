package configuration

import (
	"fmt"
	"os"

	yaml "gopkg.in/yaml.v3"

	"github.com/kelseyhightower/envconfig"
)

type Settings struct {
	Converter ConverterSettings `yaml:"converter"`
}

type ConverterSettings struct {
	InputPath  string `yaml:"input_path" envconfig:"WORSHIPPER_INPUT"`
	OutputPath string `yaml:"output_path" envconfig:"WORSHIPPER_OUTPUT"`
	Pretty     bool   `yaml:"pretty" envconfig:"WORSHIPPER_PRETTY"`
}

// ReadConfiguration loads base.yml and the ${ENVIRONMENT} overlay from dir,
// then applies environment variable overrides.
func ReadConfiguration(dir string) Settings {
	var settings Settings

	readFile(dir, &settings, "base")

	environment := os.Getenv("ENVIRONMENT")
	if environment == "" {
		environment = "local"
	}
	readFile(dir, &settings, environment)

	err := envconfig.Process("", &settings)
	if err != nil {
		panic(err)
	}

	return settings
}

func readFile(dir string, settings *Settings, name string) {
	f, err := os.Open(fmt.Sprintf("%s/%s.yml", dir, name))
	if err != nil {
		panic(err)
	}
	defer f.Close()

	decoder := yaml.NewDecoder(f)
	err = decoder.Decode(settings)
	if err != nil {
		panic(err)
	}
}
