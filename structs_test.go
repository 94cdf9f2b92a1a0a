package structs

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
)

type celsius float64

type option struct {
	Name   string `yaml:"name" json:"name"`
	Values []int  `yaml:"values" json:"values"`
}

func TestJoin(t *testing.T) {
	if got := Join([]int{1, 3, 4, 5, 8}, DefaultSeparator); got != "1 3 4 5 8" {
		t.Fatalf("want %q, got %q", "1 3 4 5 8", got)
	}

	if got := Join([]string{"a", "b"}, ","); got != "a,b" {
		t.Fatalf("want %q, got %q", "a,b", got)
	}

	if got := Join([]int{}, DefaultSeparator); got != "" {
		t.Fatalf("want empty, got %q", got)
	}
}

func TestRender(t *testing.T) {
	var buf bytes.Buffer
	if err := Render(&buf, []float64{1.5, 2}); err != nil {
		t.Fatal(err.Error())
	}

	if buf.String() != "1.5 2\n" {
		t.Fatalf("want %q, got %q", "1.5 2\n", buf.String())
	}

	buf.Reset()
	if err := Render[int](&buf, nil); err != nil {
		t.Fatal(err.Error())
	}

	if buf.String() != "\n" {
		t.Fatalf("want %q, got %q", "\n", buf.String())
	}
}

func TestFormatValue(t *testing.T) {
	caseList := map[string]interface{}{
		"12":   int64(12),
		"-3":   int8(-3),
		"true": true,
		"abc":  []byte("abc"),
		"36.6": celsius(36.6),
	}

	for want, value := range caseList {
		if got := FormatValue(value); got != want {
			t.Fatalf("want %s, got %s", want, got)
		}
	}
}

func TestYamlJson(t *testing.T) {
	dir := t.TempDir()

	yamlFile := filepath.Join(dir, "app.yml")
	if err := os.WriteFile(yamlFile, []byte("name: bst\nvalues: [5, 3, 8]\n"), 0644); err != nil {
		t.Fatal(err.Error())
	}

	jsonFile := filepath.Join(dir, "app.json")
	if err := os.WriteFile(jsonFile, []byte(`{"name":"queue","values":[1,2]}`), 0644); err != nil {
		t.Fatal(err.Error())
	}

	var yo option
	if err := Yaml(yamlFile, &yo); err != nil {
		t.Fatal(err.Error())
	}

	if yo.Name != "bst" || len(yo.Values) != 3 {
		t.Fatalf("want bst with 3 values, got %+v", yo)
	}

	var jo option
	if err := Json(jsonFile, &jo); err != nil {
		t.Fatal(err.Error())
	}

	if jo.Name != "queue" || len(jo.Values) != 2 {
		t.Fatalf("want queue with 2 values, got %+v", jo)
	}

	if err := Yaml(filepath.Join(dir, "missing.yml"), &yo); err == nil {
		t.Fatal("want error, got nil")
	}
}

func TestNodes(t *testing.T) {
	tail := NewSingleNode(2, nil)
	head := NewSingleNode(1, tail)
	if head.Next.Value != 2 || tail.Next != nil {
		t.Fatal("want linked single nodes")
	}

	first := NewDoubleNode("a", nil, nil)
	second := NewDoubleNode("b", first, nil)
	first.Next = second
	if first.Next.Prev != first {
		t.Fatal("want linked double nodes")
	}
}

// go test -bench=. -benchmem -v
func BenchmarkJoin(b *testing.B) {
	values := make([]int, 128)
	for index := range values {
		values[index] = index
	}

	b.ResetTimer()
	for index := 0; index < b.N; index++ {
		Join(values, DefaultSeparator)
	}
}
