package content

import (
	"reflect"
	"testing"
	"time"
)

func TestNormalizeNestedYAMLMaps(t *testing.T) {
	raw := map[string]interface{}{
		"links": map[interface{}]interface{}{"github": "https://github.com/x"},
		"items": []interface{}{
			map[interface{}]interface{}{"title": "a", 1: "one"},
		},
		"tables": []map[string]interface{}{{"title": "b"}},
	}
	f := normalize(raw).(fields)

	if got := f.object("links").str("github"); got != "https://github.com/x" {
		t.Errorf("links.github = %q", got)
	}
	items, ok := f.objects("items")
	if !ok || len(items) != 1 || items[0].str("title") != "a" || items[0].str("1") != "one" {
		t.Errorf("items = %v", items)
	}
	tables, ok := f.objects("tables")
	if !ok || len(tables) != 1 || tables[0].str("title") != "b" {
		t.Errorf("tables = %v", tables)
	}
}

func TestScalarFields(t *testing.T) {
	f := fields{
		"s":     "  padded  ",
		"i":     2024,
		"i64":   int64(7),
		"fl":    2.5,
		"b":     true,
		"day":   time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
		"list":  []interface{}{"x"},
		"blank": "",
	}
	tests := map[string]string{
		"s":       "padded",
		"i":       "2024",
		"i64":     "7",
		"fl":      "2.5",
		"b":       "true",
		"day":     "2024-03-01",
		"list":    "",
		"missing": "",
	}
	for key, want := range tests {
		if got := f.str(key); got != want {
			t.Errorf("str(%q) = %q, want %q", key, got, want)
		}
	}
	if got := f.strOr("blank", "def"); got != "def" {
		t.Errorf("strOr(blank) = %q", got)
	}
	if got := f.first("missing", "i"); got != "2024" {
		t.Errorf("first = %q", got)
	}
}

func TestStrList(t *testing.T) {
	f := fields{
		"mixed":  []interface{}{"a", 2, fields{"x": 1}, "", []interface{}{"nested"}},
		"scalar": "a",
	}
	if got, ok := f.strList("mixed"); !ok || !reflect.DeepEqual(got, []string{"a", "2"}) {
		t.Errorf("strList(mixed) = %v, %v", got, ok)
	}
	if got, ok := f.strList("scalar"); ok || got == nil || len(got) != 0 {
		t.Errorf("strList(scalar) = %#v, %v", got, ok)
	}
	if got := f.strListOr("missing", []string{"d"}); !reflect.DeepEqual(got, []string{"d"}) {
		t.Errorf("strListOr = %v", got)
	}
}

func TestOptInt(t *testing.T) {
	f := fields{
		"int":      42,
		"float":    3.0,
		"fraction": 3.5,
		"string":   " 1,234 ",
		"negative": -1,
		"word":     "lots",
		"list":     []interface{}{1},
	}
	want := map[string]*int{
		"int":      intp(42),
		"float":    intp(3),
		"fraction": nil,
		"string":   intp(1234),
		"negative": nil,
		"word":     nil,
		"list":     nil,
		"missing":  nil,
	}
	for key, w := range want {
		got := f.optInt(key)
		if (got == nil) != (w == nil) || (got != nil && *got != *w) {
			t.Errorf("optInt(%q) = %v, want %v", key, got, w)
		}
	}
}

func TestSlug(t *testing.T) {
	tests := map[string]string{
		"XAI Toolkit":         "xai-toolkit",
		"  Graph -- Nets!! ":  "graph-nets",
		"Öffentliche Daten":   "öffentliche-daten",
		"!!!":                 "",
		"v2.0 release":        "v2-0-release",
	}
	for in, want := range tests {
		if got := slug(in); got != want {
			t.Errorf("slug(%q) = %q, want %q", in, got, want)
		}
	}
}

func intp(n int) *int { return &n }
