package holydiver_test

import (
	"fmt"
	"strings"

	holydiver "github.com/ndgigliotti/holy-diver"
)

// Example demonstrates wrapping nested data and reading values with
// dotted deep keys.
func Example() {
	cfg, err := holydiver.New(map[string]any{
		"server": map[string]any{
			"host":  "example.com",
			"ports": []any{8080, 9090},
		},
		"debug": true,
	})
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	host, _ := cfg.DeepGet("server.host")
	fmt.Println(host)

	// Sequence elements are addressed by index, bare or underscored.
	port, _ := cfg.DeepGet("server.ports._1")
	fmt.Println(port)

	// Output:
	// example.com
	// 9090
}

// ExampleConfig_DeepKeys shows the full dotted-key inventory of a tree.
// Mappings built from Go maps keep their keys sorted.
func ExampleConfig_DeepKeys() {
	cfg, err := holydiver.New(map[string]any{
		"a": 1,
		"d": map[string]any{
			"e": 3,
			"h": []any{8, map[string]any{"i": 5}},
		},
	})
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Println(strings.Join(cfg.DeepKeys(), "\n"))
	fmt.Println("depth:", cfg.Depth())

	// Output:
	// a
	// d
	// d.e
	// d.h
	// d.h._0
	// d.h._1
	// d.h._1.i
	// depth: 3
}

// ExampleConfig_CheckRequiredKeys demonstrates enforcing that certain
// deep keys are present.
func ExampleConfig_CheckRequiredKeys() {
	cfg, err := holydiver.New(map[string]any{
		"server": map[string]any{"host": "example.com"},
	})
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	missing, err := cfg.CheckRequiredKeys([]string{"server.host", "server.port"}, holydiver.IfMissingReturn)
	fmt.Println(missing, err)

	_, err = cfg.CheckRequiredKeys([]string{"server.port"}, holydiver.IfMissingRaise)
	fmt.Println(err)

	// Output:
	// [server.port] <nil>
	// missing required keys: server.port
}

// ExampleConfig_Search finds every deep key whose final segment matches.
func ExampleConfig_Search() {
	cfg, err := holydiver.New(map[string]any{
		"primary": map[string]any{"host": "one.example.com"},
		"replica": map[string]any{"host": "two.example.com"},
	})
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	items, _ := cfg.Search("host")
	for _, item := range items {
		fmt.Printf("%s = %v\n", item.Key, item.Value)
	}

	// Output:
	// primary.host = one.example.com
	// replica.host = two.example.com
}

// ExampleNew_defaults layers document values over a defaults tree.
func ExampleNew_defaults() {
	cfg, err := holydiver.New(
		map[string]any{"timeout": 60},
		holydiver.WithDefaults(map[string]any{"timeout": 30, "retries": 3}),
	)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	timeout, _ := cfg.Get("timeout")
	retries, _ := cfg.Get("retries")
	fmt.Println(timeout, retries)

	// Output:
	// 60 3
}

// ExampleNewList wraps a sequence root.
func ExampleNewList() {
	list, err := holydiver.NewList([]any{
		map[string]any{"name": "first"},
		map[string]any{"name": "second"},
	})
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	name, _ := list.Get("_1.name")
	fmt.Println(name)
	fmt.Println(strings.Join(list.Keys(), " "))

	// Output:
	// second
	// _0 _1
}
