package config

import (
	"reflect"
	"testing"
)

func TestBoolEnvOrDefault(t *testing.T) {
	t.Setenv("BOOL_TEST", "")
	if got := boolEnvOrDefault("BOOL_TEST", true); !got {
		t.Fatalf("expected default true when unset")
	}

	cases := []struct {
		val      string
		expected bool
	}{
		{"true", true},
		{"TRUE", true},
		{"1", true},
		{"yes", true},
		{"false", false},
		{"FALSE", false},
		{"0", false},
		{"no", false},
		{"maybe", true}, // falls back to default on unknown
	}

	for _, tc := range cases {
		t.Setenv("BOOL_TEST", tc.val)
		if got := boolEnvOrDefault("BOOL_TEST", true); got != tc.expected {
			t.Fatalf("expected %v for %s, got %v", tc.expected, tc.val, got)
		}
	}
}

func TestIntEnvOrDefault(t *testing.T) {
	t.Setenv("INT_TEST", "12")
	if got := intEnvOrDefault("INT_TEST", 3); got != 12 {
		t.Fatalf("expected 12, got %d", got)
	}
	t.Setenv("INT_TEST", "-4")
	if got := intEnvOrDefault("INT_TEST", 3); got != 3 {
		t.Fatalf("expected default on negative, got %d", got)
	}
	t.Setenv("INT_TEST", "abc")
	if got := intEnvOrDefault("INT_TEST", 3); got != 3 {
		t.Fatalf("expected default on junk, got %d", got)
	}
}

func TestListEnvOrDefault(t *testing.T) {
	t.Setenv("LIST_TEST", " a ,, b,")
	if got := listEnvOrDefault("LIST_TEST", "x"); !reflect.DeepEqual(got, []string{"a", "b"}) {
		t.Fatalf("unexpected list %v", got)
	}
	t.Setenv("LIST_TEST", "")
	if got := listEnvOrDefault("LIST_TEST", "x,y"); !reflect.DeepEqual(got, []string{"x", "y"}) {
		t.Fatalf("unexpected default list %v", got)
	}
}
