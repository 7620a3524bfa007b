package holydiver

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
)

func writeTempFile(t *testing.T, name, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("writing %s: %v", name, err)
	}

	return path
}

const mappingYAML = `server:
  host: example.com
  ports:
    - 8080
    - 9090
debug: true
`

func TestFromYAML(t *testing.T) {
	t.Parallel()

	path := writeTempFile(t, "config.yaml", mappingYAML)

	cfg, err := FromYAML(path)
	if err != nil {
		t.Fatalf("FromYAML: %v", err)
	}

	if v, err := cfg.DeepGet("server.host"); err != nil || v != "example.com" {
		t.Errorf("server.host = %v (%v), want example.com", v, err)
	}
	if v, err := cfg.DeepGet("server.ports._0"); err != nil || fmt.Sprint(v) != "8080" {
		t.Errorf("server.ports._0 = %v (%v), want 8080", v, err)
	}
	if v, err := cfg.Get("debug"); err != nil || v != true {
		t.Errorf("debug = %v (%v), want true", v, err)
	}

	// Document order survives YAML loading.
	if got := cfg.Keys(); !reflect.DeepEqual(got, []string{"server", "debug"}) {
		t.Errorf("Keys = %v, want [server debug]", got)
	}
}

func TestFromYAML_SequenceRootMismatch(t *testing.T) {
	t.Parallel()

	path := writeTempFile(t, "list.yaml", "- one\n- two\n")

	if _, err := FromYAML(path); !errors.Is(err, ErrFormatMismatch) {
		t.Fatalf("FromYAML: got %v, want ErrFormatMismatch", err)
	}

	l, err := ListFromYAML(path)
	if err != nil {
		t.Fatalf("ListFromYAML: %v", err)
	}
	if v, err := l.At(0); err != nil || v != "one" {
		t.Fatalf("At(0) = %v (%v), want one", v, err)
	}
}

func TestListFromYAML_MappingRootMismatch(t *testing.T) {
	t.Parallel()

	path := writeTempFile(t, "map.yaml", "a: 1\n")

	if _, err := ListFromYAML(path); !errors.Is(err, ErrFormatMismatch) {
		t.Fatalf("got %v, want ErrFormatMismatch", err)
	}
}

func TestFromYAML_SafeRejectsDuplicateKeys(t *testing.T) {
	t.Parallel()

	path := writeTempFile(t, "dup.yaml", "a: 1\na: 2\n")

	if _, err := FromYAML(path, WithSafe(true)); err == nil {
		t.Fatal("safe loading should reject duplicate keys")
	}
}

func TestFromYAML_Defaults(t *testing.T) {
	t.Parallel()

	path := writeTempFile(t, "config.yaml", "a: 5\nd:\n  f: 9\n")

	cfg, err := FromYAML(path, WithDefaults(map[string]any{
		"a": 1,
		"d": map[string]any{"e": 3},
	}))
	if err != nil {
		t.Fatalf("FromYAML: %v", err)
	}

	if v, _ := cfg.Get("a"); fmt.Sprint(v) != "5" {
		t.Errorf("a = %v, want 5", v)
	}
	if v, _ := cfg.DeepGet("d.e"); fmt.Sprint(v) != "3" {
		t.Errorf("d.e = %v, want 3", v)
	}
	if v, _ := cfg.DeepGet("d.f"); fmt.Sprint(v) != "9" {
		t.Errorf("d.f = %v, want 9", v)
	}
}

func TestFromYAML_RequiredKeys(t *testing.T) {
	t.Parallel()

	path := writeTempFile(t, "config.yaml", mappingYAML)

	_, err := FromYAML(path, WithRequiredKeys("server.host", "server.tls"))
	if !errors.Is(err, ErrMissingKeys) {
		t.Fatalf("got %v, want ErrMissingKeys", err)
	}
}

func TestFromJSON(t *testing.T) {
	t.Parallel()

	path := writeTempFile(t, "config.json", `{"name": "deep", "nested": {"flag": true}}`)

	cfg, err := FromJSON(path)
	if err != nil {
		t.Fatalf("FromJSON: %v", err)
	}
	if v, err := cfg.DeepGet("nested.flag"); err != nil || v != true {
		t.Fatalf("nested.flag = %v (%v), want true", v, err)
	}
}

func TestFromJSON_ArrayRootMismatch(t *testing.T) {
	t.Parallel()

	path := writeTempFile(t, "list.json", `["one", "two"]`)

	if _, err := FromJSON(path); !errors.Is(err, ErrFormatMismatch) {
		t.Fatalf("FromJSON: got %v, want ErrFormatMismatch", err)
	}

	l, err := ListFromJSON(path)
	if err != nil {
		t.Fatalf("ListFromJSON: %v", err)
	}
	if v, err := l.At(1); err != nil || v != "two" {
		t.Fatalf("At(1) = %v (%v), want two", v, err)
	}
}

func TestFromTOML(t *testing.T) {
	t.Parallel()

	path := writeTempFile(t, "config.toml", "title = \"example\"\n\n[owner]\nname = \"diver\"\n")

	cfg, err := FromTOML(path)
	if err != nil {
		t.Fatalf("FromTOML: %v", err)
	}
	if v, err := cfg.Get("title"); err != nil || v != "example" {
		t.Errorf("title = %v (%v), want example", v, err)
	}
	if v, err := cfg.DeepGet("owner.name"); err != nil || v != "diver" {
		t.Errorf("owner.name = %v (%v), want diver", v, err)
	}
}

func TestFromFile_Dispatch(t *testing.T) {
	t.Parallel()

	yamlPath := writeTempFile(t, "a.yml", "a: 1\n")
	jsonPath := writeTempFile(t, "a.json", `{"a": 1}`)
	tomlPath := writeTempFile(t, "a.toml", "a = 1\n")

	for _, path := range []string{yamlPath, jsonPath, tomlPath} {
		cfg, err := FromFile(path)
		if err != nil {
			t.Errorf("FromFile(%s): %v", filepath.Ext(path), err)

			continue
		}
		if v, err := cfg.Get("a"); err != nil || fmt.Sprint(v) != "1" {
			t.Errorf("FromFile(%s): a = %v (%v), want 1", filepath.Ext(path), v, err)
		}
	}

	if _, err := FromFile("config.ini"); !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("FromFile(.ini): got %v, want ErrInvalidArgument", err)
	}
}

func TestFromFile_MissingFile(t *testing.T) {
	t.Parallel()

	if _, err := FromFile(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Fatal("expected an error for a missing file")
	}
}

func TestWriteYAML_RoundTrip(t *testing.T) {
	t.Parallel()

	cfg := mustNew(t, map[string]any{
		"server": map[string]any{"host": "example.com"},
		"debug":  true,
	})

	path := filepath.Join(t.TempDir(), "out.yaml")
	written, err := cfg.WriteYAML(path)
	if err != nil {
		t.Fatalf("WriteYAML: %v", err)
	}
	if !written {
		t.Fatal("WriteYAML reported the file as absent")
	}

	loaded, err := FromYAML(path)
	if err != nil {
		t.Fatalf("FromYAML: %v", err)
	}
	if !reflect.DeepEqual(loaded.DeepKeys(), cfg.DeepKeys()) {
		t.Fatalf("round trip changed keys: %v vs %v", loaded.DeepKeys(), cfg.DeepKeys())
	}
	if v, err := loaded.DeepGet("server.host"); err != nil || v != "example.com" {
		t.Fatalf("server.host = %v (%v), want example.com", v, err)
	}
}

func TestToYAML_PreservesOrder(t *testing.T) {
	t.Parallel()

	path := writeTempFile(t, "ordered.yaml", "zebra: 1\nalpha: 2\n")

	cfg, err := FromYAML(path)
	if err != nil {
		t.Fatalf("FromYAML: %v", err)
	}

	s, err := cfg.ToYAML()
	if err != nil {
		t.Fatalf("ToYAML: %v", err)
	}
	if strings.Index(s, "zebra") > strings.Index(s, "alpha") {
		t.Fatalf("serialization lost document order:\n%s", s)
	}
}

func TestToJSON(t *testing.T) {
	t.Parallel()

	cfg := mustNew(t, map[string]any{"name": "deep"})

	s, err := cfg.ToJSON()
	if err != nil {
		t.Fatalf("ToJSON: %v", err)
	}
	if !strings.Contains(s, `"name":"deep"`) {
		t.Fatalf("ToJSON = %q", s)
	}
}

func TestWriteTOML(t *testing.T) {
	t.Parallel()

	cfg := mustNew(t, map[string]any{"owner": map[string]any{"name": "diver"}})

	path := filepath.Join(t.TempDir(), "out.toml")
	written, err := cfg.WriteTOML(path)
	if err != nil {
		t.Fatalf("WriteTOML: %v", err)
	}
	if !written {
		t.Fatal("WriteTOML reported the file as absent")
	}

	loaded, err := FromTOML(path)
	if err != nil {
		t.Fatalf("FromTOML: %v", err)
	}
	if v, err := loaded.DeepGet("owner.name"); err != nil || v != "diver" {
		t.Fatalf("owner.name = %v (%v), want diver", v, err)
	}
}

func TestConfigList_WriteJSON(t *testing.T) {
	t.Parallel()

	l := mustNewList(t, []any{"a", "b"})

	path := filepath.Join(t.TempDir(), "list.json")
	written, err := l.WriteJSON(path)
	if err != nil {
		t.Fatalf("WriteJSON: %v", err)
	}
	if !written {
		t.Fatal("WriteJSON reported the file as absent")
	}

	loaded, err := ListFromJSON(path)
	if err != nil {
		t.Fatalf("ListFromJSON: %v", err)
	}
	if loaded.Len() != 2 {
		t.Fatalf("Len = %d, want 2", loaded.Len())
	}
}
