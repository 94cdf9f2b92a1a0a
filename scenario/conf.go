package scenario

import (
	"errors"
	"path/filepath"
	"strings"

	jsoniter "github.com/json-iterator/go"

	"github.com/grpc-boot/structs"
)

const (
	StructureBst        = "bst"
	StructureList       = "list"
	StructureDoubleList = "dlist"
	StructureStack      = "stack"
	StructureQueue      = "queue"
)

var (
	ErrFormat    = errors.New("unsupported scenario file format")
	ErrStructure = errors.New("unknown structure")
)

type Position struct {
	Pos   int `yaml:"pos" json:"pos"`
	Value int `yaml:"value" json:"value"`
}

type Conf struct {
	Structure string `yaml:"structure" json:"structure"`
	Values    []int  `yaml:"values" json:"values"`
	//仅bst
	Search []int  `yaml:"search" json:"search"`
	Order  string `yaml:"order" json:"order"`
	//仅list、dlist
	Insert  []Position `yaml:"insert" json:"insert"`
	Remove  []int      `yaml:"remove" json:"remove"`
	Reverse bool       `yaml:"reverse" json:"reverse"`
	//list、dlist从头部弹出，stack、queue按各自顺序弹出
	Pop int `yaml:"pop" json:"pop"`
}

// Load 根据扩展名选择yaml或json
func Load(filePath string) (conf *Conf, err error) {
	conf = &Conf{}

	switch strings.ToLower(filepath.Ext(filePath)) {
	case ".yml", ".yaml":
		err = structs.Yaml(filePath, conf)
	case ".json":
		err = structs.Json(filePath, conf)
	default:
		return nil, ErrFormat
	}

	if err != nil {
		return nil, err
	}
	return conf, nil
}

func Dump(conf *Conf) (data []byte, err error) {
	return jsoniter.MarshalIndent(conf, "", "  ")
}
