package holydiver

import (
	"errors"
	"testing"
)

func TestCheckKeys_Strict(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name    string
		key     string
		wantErr bool
	}{
		{"plain identifier", "level_1", false},
		{"single letter", "a", false},
		{"uppercase", "Server", false},
		{"digit prefix", "8a", true},
		{"embedded dot", "a.b", true},
		{"empty", "", true},
		{"dunder", "__dunder__", true},
		{"private", "_private", true},
		{"underscore digit", "_3", true},
		{"reserved convert", "convert", true},
		{"reserved deep_keys", "deep_keys", true},
		{"reserved keys", "keys", true},
		{"hyphen", "a-b", true},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			err := CheckKeys([]string{tc.key}, DialectStrict)
			if tc.wantErr {
				if !errors.Is(err, ErrInvalidKey) {
					t.Fatalf("expected ErrInvalidKey for %q, got %v", tc.key, err)
				}

				return
			}
			if err != nil {
				t.Fatalf("unexpected error for %q: %v", tc.key, err)
			}
		})
	}
}

func TestCheckKeys_Lenient(t *testing.T) {
	t.Parallel()

	if err := CheckKeys([]string{"_private"}, DialectLenient); err != nil {
		t.Fatalf("lenient dialect should allow leading underscore: %v", err)
	}
	if err := CheckKeys([]string{"__dunder__"}, DialectLenient); !errors.Is(err, ErrInvalidKey) {
		t.Fatalf("lenient dialect should still reject dunder keys, got %v", err)
	}
	if err := CheckKeys([]string{"update"}, DialectLenient); !errors.Is(err, ErrInvalidKey) {
		t.Fatalf("lenient dialect should still reject reserved names, got %v", err)
	}
}

func TestCheckKeys_FailFast(t *testing.T) {
	t.Parallel()

	err := CheckKeys([]string{"good", "8bad", "convert"}, DialectStrict)
	if !errors.Is(err, ErrInvalidKey) {
		t.Fatalf("expected ErrInvalidKey, got %v", err)
	}
}

func TestIsProtected(t *testing.T) {
	t.Parallel()

	for _, key := range []string{"__init__", "_hidden", "convert", "deep_keys", "to_yaml"} {
		if !IsProtected(key) {
			t.Errorf("expected %q to be protected", key)
		}
	}
	for _, key := range []string{"level_1", "host", "Server"} {
		if IsProtected(key) {
			t.Errorf("expected %q not to be protected", key)
		}
	}
}

func TestReservedKeys_Sorted(t *testing.T) {
	t.Parallel()

	keys := ReservedKeys()
	if len(keys) == 0 {
		t.Fatal("reserved key set should not be empty")
	}
	for i := 1; i < len(keys); i++ {
		if keys[i-1] >= keys[i] {
			t.Fatalf("reserved keys not sorted: %q before %q", keys[i-1], keys[i])
		}
	}
}
