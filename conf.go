package structs

import (
	"os"

	jsoniter "github.com/json-iterator/go"
	"gopkg.in/yaml.v2"
)

func Yaml(filePath string, out interface{}) (err error) {
	conf, err := os.ReadFile(filePath)
	if err != nil {
		return err
	}

	return yaml.Unmarshal(conf, out)
}

func Json(filePath string, out interface{}) (err error) {
	conf, err := os.ReadFile(filePath)
	if err != nil {
		return err
	}

	return jsoniter.Unmarshal(conf, out)
}
