package adapter

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"
)

// fieldErrorKeys are serializer field names whose messages are surfaced
// when the body carries no general message.
var fieldErrorKeys = []string{"email", "password", "non_field_errors"}

// ExtractMessage turns an error response body into a single human-readable
// message. The body may be a bare JSON string, an object carrying the text
// under one of several keys, or not JSON at all. Keys are tried in order:
// error, detail, message, errors, then field errors. Unrecognised bodies are
// returned verbatim; an empty body yields fallback.
func ExtractMessage(body []byte, fallback string) string {
	raw := strings.TrimSpace(string(body))
	if raw == "" {
		return fallback
	}

	var payload any
	if err := json.Unmarshal(body, &payload); err != nil {
		return raw
	}

	switch v := payload.(type) {
	case string:
		if v == "" {
			return fallback
		}
		return v
	case map[string]any:
		if msg := messageFromObject(v); msg != "" {
			return msg
		}
	}

	return raw
}

func messageFromObject(obj map[string]any) string {
	if v, ok := obj["error"]; ok && truthy(v) {
		if list, isList := v.([]any); isList {
			return joinValues(list, ", ")
		}
		return stringify(v)
	}

	for _, key := range []string{"detail", "message"} {
		if v, ok := obj[key]; ok && truthy(v) {
			return stringify(v)
		}
	}

	if v, ok := obj["errors"]; ok && truthy(v) {
		switch errs := v.(type) {
		case []any:
			return joinValues(errs, ", ")
		case map[string]any:
			if msg := fieldMessages(errs); msg != "" {
				return msg
			}
		}
	}

	var fieldMsgs []string
	for _, key := range fieldErrorKeys {
		v, ok := obj[key]
		if !ok || !truthy(v) {
			continue
		}
		if list, isList := v.([]any); isList {
			for _, item := range list {
				fieldMsgs = append(fieldMsgs, stringify(item))
			}
			continue
		}
		fieldMsgs = append(fieldMsgs, stringify(v))
	}

	return strings.Join(fieldMsgs, " | ")
}

// fieldMessages renders {"field": ["msg", ...]} as "field: msg | ...",
// ordered by field name.
func fieldMessages(errs map[string]any) string {
	keys := make([]string, 0, len(errs))
	for k := range errs {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var msgs []string
	for _, k := range keys {
		if list, ok := errs[k].([]any); ok {
			for _, m := range list {
				msgs = append(msgs, k+": "+stringify(m))
			}
			continue
		}
		msgs = append(msgs, k+": "+stringify(errs[k]))
	}

	return strings.Join(msgs, " | ")
}

func joinValues(list []any, sep string) string {
	parts := make([]string, 0, len(list))
	for _, item := range list {
		parts = append(parts, stringify(item))
	}
	return strings.Join(parts, sep)
}

func stringify(v any) string {
	switch t := v.(type) {
	case string:
		return t
	case nil:
		return ""
	case float64, bool:
		return fmt.Sprint(t)
	default:
		b, err := json.Marshal(t)
		if err != nil {
			return fmt.Sprint(t)
		}
		return string(b)
	}
}

func truthy(v any) bool {
	switch t := v.(type) {
	case nil:
		return false
	case string:
		return t != ""
	case bool:
		return t
	case float64:
		return t != 0
	default:
		return true
	}
}
