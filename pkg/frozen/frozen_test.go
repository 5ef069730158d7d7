package frozen

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleYAML = `
bot:
  name: blaster
  admins: [1, 2]
  texts:
    start: "Hello!"
    help: "Commands:"
  limits:
    - name: daily
      value: 10
`

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestValue_Path(t *testing.T) {
	v, err := Parse([]byte(sampleYAML), "")
	require.NoError(t, err)

	name, err := v.Path("bot.name")
	require.NoError(t, err)
	assert.Equal(t, "blaster", name.Interface())

	limit, err := v.Path("bot.limits.0.value")
	require.NoError(t, err)
	assert.Equal(t, 10, limit.Interface())

	_, err = v.Path("bot.missing")
	assert.ErrorIs(t, err, ErrNoKey)

	_, err = v.Path("bot.admins.5")
	assert.ErrorIs(t, err, ErrBadIndex)

	_, err = v.Path("bot.name.first")
	assert.ErrorIs(t, err, ErrNotMap)
}

func TestValue_String(t *testing.T) {
	v, err := Parse([]byte(sampleYAML), "bot")
	require.NoError(t, err)

	assert.Equal(t, "Hello!", v.Text("texts.start", "default"))
	assert.Equal(t, "default", v.Text("texts.nope", "default"))
	assert.Equal(t, "default", v.Text("texts", "default"))
	assert.Equal(t, "1", v.Text("admins.0", ""))
}

func TestValue_KeysAndList(t *testing.T) {
	v, err := Parse([]byte(sampleYAML), "bot")
	require.NoError(t, err)

	assert.Equal(t, []string{"admins", "limits", "name", "texts"}, v.Keys())

	admins, err := v.Get("admins")
	require.NoError(t, err)
	require.Len(t, admins.List(), 2)
	assert.Equal(t, 2, admins.List()[1].Interface())
	assert.Nil(t, admins.Keys())
}

func TestNew_IsReadOnly(t *testing.T) {
	src := map[string]any{"nested": map[string]any{"k": "v"}}
	v := New(src)

	src["nested"].(map[string]any)["k"] = "changed"
	assert.Equal(t, "v", v.Text("nested.k", ""))

	cp := v.Interface().(map[string]any)
	cp["nested"] = "gone"
	assert.Equal(t, "v", v.Text("nested.k", ""))
}

func TestLoader_OpenYAMLTopKey(t *testing.T) {
	path := writeFile(t, "config.yml", sampleYAML)
	l := NewLoader()

	v, err := l.OpenYAML(path, "bot")
	require.NoError(t, err)
	assert.Equal(t, "blaster", v.Text("name", ""))

	_, err = l.OpenYAML(path, "absent")
	assert.ErrorIs(t, err, ErrNoKey)
}

func TestLoader_OpenJSON(t *testing.T) {
	path := writeFile(t, "config.json", `{"db": {"host": "localhost", "port": 5432}}`)

	v, err := NewLoader().Open(path, "db")
	require.NoError(t, err)
	assert.Equal(t, "localhost", v.Text("host", ""))
	assert.Equal(t, "5432", v.Text("port", ""))
}

func TestLoader_Caches(t *testing.T) {
	path := writeFile(t, "texts.yaml", "start: first\n")
	l := NewLoader()

	v, err := l.Open(path, "")
	require.NoError(t, err)
	assert.Equal(t, "first", v.Text("start", ""))

	require.NoError(t, os.WriteFile(path, []byte("start: second\n"), 0644))
	v, err = l.Open(path, "")
	require.NoError(t, err)
	assert.Equal(t, "first", v.Text("start", ""))
}

func TestLoader_Errors(t *testing.T) {
	l := NewLoader()

	_, err := l.Open(filepath.Join(t.TempDir(), "missing.yml"), "")
	assert.ErrorIs(t, err, os.ErrNotExist)

	_, err = l.Open("settings.toml", "")
	assert.Error(t, err)

	bad := writeFile(t, "bad.json", "{not json")
	_, err = l.OpenJSON(bad, "")
	assert.Error(t, err)
}
