// Command taggo trains and evaluates linear-chain sequence taggers with the
// averaged perceptron.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"taggo"
	"taggo/chain"
	"taggo/corpus"
)

type runConfig struct {
	Train     bool   `yaml:"train"`
	ModelPath string `yaml:"model_path"`
	StatsPath string `yaml:"stats_path"`
	TrainFile string `yaml:"train_file"`
	DevFile   string `yaml:"dev_file"`
	TestFile  string `yaml:"test_file"`

	Tagger taggo.Config `yaml:"tagger"`
}

func loadConfig(path string) (runConfig, error) {
	rc := runConfig{
		ModelPath: "model.bin",
		Tagger:    taggo.DefaultConfig(),
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return rc, errors.WithStack(err)
	}
	if err := yaml.Unmarshal(data, &rc); err != nil {
		return rc, errors.WithMessagef(err, "unmarshaling %s", path)
	}
	return rc, nil
}

func train(rc runConfig, lg *log.Logger) error {
	ds, err := corpus.Load(rc.TrainFile)
	if err != nil {
		return err
	}

	tg := taggo.New(rc.Tagger)
	if err := tg.Train(ds, lg); err != nil {
		return err
	}
	if err := tg.Model.Save(rc.ModelPath); err != nil {
		return err
	}

	stats := taggo.MakeStatistics()
	acc, err := tg.Evaluate(ds)
	if err != nil {
		return err
	}
	stats.Record("train", acc)
	fmt.Printf("train accuracy: %.4f\n", acc)

	if rc.DevFile != "" {
		dev, err := corpus.Load(rc.DevFile)
		if err != nil {
			return err
		}
		if acc, err = tg.Evaluate(dev); err != nil {
			return err
		}
		stats.Record("dev", acc)
		fmt.Printf("dev accuracy: %.4f\n", acc)
	}

	if rc.StatsPath != "" {
		return stats.Dump(rc.StatsPath)
	}
	return nil
}

func test(rc runConfig) error {
	ds, err := corpus.Load(rc.TestFile)
	if err != nil {
		return err
	}
	model, err := chain.Load(rc.ModelPath)
	if err != nil {
		return err
	}

	tg := taggo.New(rc.Tagger)
	tg.Model = model
	acc, err := tg.Evaluate(ds)
	if err != nil {
		return err
	}
	fmt.Printf("test accuracy: %.4f\n", acc)
	return nil
}

func main() {
	configFile := flag.String("c", "config.yaml", "path to the config file")
	flag.Parse()

	rc, err := loadConfig(*configFile)
	if err != nil {
		log.Fatalf("%+v", err)
	}

	lg := log.New(os.Stderr, "", log.Ltime)
	if rc.Train {
		err = train(rc, lg)
	} else {
		err = test(rc)
	}
	if err != nil {
		log.Fatalf("%+v", err)
	}
}
