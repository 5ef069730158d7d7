// Package urlx edits query parameters of URLs.
package urlx

import (
	"errors"
	"fmt"
	"net/url"
	"sort"
	"strings"
)

var ErrUnknownParam = errors.New("unknown query parameter")

type param struct {
	key, value string
}

// ChangeParams sets the query parameters in replace on rawURL, keeping
// the order of the existing ones. Repeated parameters keep only their
// first occurrence. In strict mode setting a parameter the URL does not
// have fails with ErrUnknownParam; otherwise it is appended.
func ChangeParams(rawURL string, replace map[string]string, strict bool) (string, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return "", fmt.Errorf("failed to parse url: %w", err)
	}

	var params []param
	index := make(map[string]int)
	for _, part := range strings.Split(u.RawQuery, "&") {
		if part == "" {
			continue
		}
		k, v, _ := strings.Cut(part, "=")
		key, err := url.QueryUnescape(k)
		if err != nil {
			key = k
		}
		if _, seen := index[key]; seen {
			continue
		}
		index[key] = len(params)
		params = append(params, param{key: k, value: v})
	}

	keys := make([]string, 0, len(replace))
	for k := range replace {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, key := range keys {
		value := url.QueryEscape(replace[key])
		if i, ok := index[key]; ok {
			params[i].value = value
			continue
		}
		if strict {
			return "", fmt.Errorf("%w: %s", ErrUnknownParam, key)
		}
		params = append(params, param{key: url.QueryEscape(key), value: value})
	}

	parts := make([]string, len(params))
	for i, p := range params {
		parts[i] = p.key + "=" + p.value
	}
	u.RawQuery = strings.Join(parts, "&")
	u.ForceQuery = false

	return u.String(), nil
}
