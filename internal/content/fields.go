package content

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
	"unicode"

	"github.com/LyuPeng-star/lyupeng-star.github.io/internal/model"
)

// fields is a decoded front-matter mapping. Nested mappings are fields too,
// and lists are []interface{}, whatever the source format produced.
//
// Every accessor is a validator: it returns the typed value when the raw
// value has the right shape, and the documented default otherwise.
type fields map[string]interface{}

// normalize converts decoder-specific containers into fields and []interface{}.
// YAML yields map[interface{}]interface{} for nested mappings; TOML yields
// []map[string]interface{} for arrays of tables.
func normalize(v interface{}) interface{} {
	switch x := v.(type) {
	case map[string]interface{}:
		out := make(fields, len(x))
		for k, e := range x {
			out[k] = normalize(e)
		}
		return out
	case fields:
		return x
	case map[interface{}]interface{}:
		out := make(fields, len(x))
		for k, e := range x {
			out[fmt.Sprint(k)] = normalize(e)
		}
		return out
	case []interface{}:
		out := make([]interface{}, len(x))
		for i, e := range x {
			out[i] = normalize(e)
		}
		return out
	case []map[string]interface{}:
		out := make([]interface{}, len(x))
		for i, e := range x {
			out[i] = normalize(e)
		}
		return out
	case []string:
		out := make([]interface{}, len(x))
		for i, e := range x {
			out[i] = e
		}
		return out
	}
	return v
}

// scalar renders a string, number, bool or timestamp as a trimmed string.
func scalar(v interface{}) (string, bool) {
	switch x := v.(type) {
	case string:
		return strings.TrimSpace(x), true
	case int:
		return strconv.Itoa(x), true
	case int64:
		return strconv.FormatInt(x, 10), true
	case uint64:
		return strconv.FormatUint(x, 10), true
	case float64:
		return strconv.FormatFloat(x, 'f', -1, 64), true
	case bool:
		return strconv.FormatBool(x), true
	case time.Time:
		if x.Hour() == 0 && x.Minute() == 0 && x.Second() == 0 && x.Nanosecond() == 0 {
			return x.Format("2006-01-02"), true
		}
		return x.Format(time.RFC3339), true
	}
	return "", false
}

// str returns the scalar at key, or "" when absent or not a scalar.
func (f fields) str(key string) string {
	s, _ := scalar(f[key])
	return s
}

// strOr returns the scalar at key, or def when that is empty.
func (f fields) strOr(key, def string) string {
	if s := f.str(key); s != "" {
		return s
	}
	return def
}

// first returns the scalar of the first key present, for fields with aliases.
func (f fields) first(keys ...string) string {
	for _, k := range keys {
		if s := f.str(k); s != "" {
			return s
		}
	}
	return ""
}

// strList returns the list at key with scalar elements kept and others dropped.
// ok is false when the key is absent or not a list; the slice is never nil.
func (f fields) strList(key string) (list []string, ok bool) {
	raw, isList := f[key].([]interface{})
	if !isList {
		return []string{}, false
	}
	list = make([]string, 0, len(raw))
	for _, e := range raw {
		if s, isScalar := scalar(e); isScalar && s != "" {
			list = append(list, s)
		}
	}
	return list, true
}

// strListOr is strList with def substituted when the field is absent or wrong-typed.
func (f fields) strListOr(key string, def []string) []string {
	if list, ok := f.strList(key); ok {
		return list
	}
	return append([]string{}, def...)
}

// names accepts a list or a comma-separated string, as author lists are written both ways.
func (f fields) names(key string) []string {
	if list, ok := f.strList(key); ok {
		return list
	}
	s, ok := f[key].(string)
	if !ok {
		return []string{}
	}
	out := []string{}
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

// optInt returns the non-negative integer at key, or nil when absent or not an integer.
// Numeric strings are accepted.
func (f fields) optInt(key string) *int {
	var n int
	switch x := f[key].(type) {
	case int:
		n = x
	case int64:
		if x > math.MaxInt32 {
			return nil
		}
		n = int(x)
	case uint64:
		if x > math.MaxInt32 {
			return nil
		}
		n = int(x)
	case float64:
		if x != math.Trunc(x) || x > math.MaxInt32 {
			return nil
		}
		n = int(x)
	case string:
		v, err := strconv.Atoi(strings.ReplaceAll(strings.TrimSpace(x), ",", ""))
		if err != nil {
			return nil
		}
		n = v
	default:
		return nil
	}
	if n < 0 {
		return nil
	}
	return &n
}

// object returns the mapping at key, or an empty one.
func (f fields) object(key string) fields {
	if m, ok := f[key].(fields); ok {
		return m
	}
	return fields{}
}

// objects returns the mappings in the list at key, skipping non-mapping elements.
// ok is false when the key is absent or not a list.
func (f fields) objects(key string) (list []fields, ok bool) {
	raw, isList := f[key].([]interface{})
	if !isList {
		return []fields{}, false
	}
	list = make([]fields, 0, len(raw))
	for _, e := range raw {
		if m, isMap := e.(fields); isMap {
			list = append(list, m)
		}
	}
	return list, true
}

// enum returns the value at key when it is exactly one of the allowed literals.
// Otherwise it returns the zero value and the raw literal for reporting.
func enum[T ~string](f fields, key string, valid func(T) bool) (value T, raw string, ok bool) {
	raw = f.str(key)
	if v := T(raw); valid(v) {
		return v, raw, true
	}
	return "", raw, false
}

func enumIssue[T ~string](domain Domain, field string, index int, raw string, allowed []T) model.Issue {
	names := make([]string, len(allowed))
	for i, a := range allowed {
		names[i] = strconv.Quote(string(a))
	}
	msg := fmt.Sprintf("%s is missing; expected one of %s", field, strings.Join(names, ", "))
	if raw != "" {
		msg = fmt.Sprintf("%s %q is not one of %s", field, raw, strings.Join(names, ", "))
	}
	return model.Issue{
		Domain:  string(domain),
		Field:   field,
		Index:   index,
		Value:   raw,
		Message: msg,
	}
}

// slug lowercases s and joins its letters and digits with single hyphens.
func slug(s string) string {
	var b strings.Builder
	dash := false
	for _, r := range strings.ToLower(s) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			if dash && b.Len() > 0 {
				b.WriteByte('-')
			}
			b.WriteRune(r)
			dash = false
			continue
		}
		dash = true
	}
	return b.String()
}
