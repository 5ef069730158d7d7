package env

import (
	"testing"
	"time"

	"github.com/joho/godotenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sample struct {
	Token    string        `env:"TOKEN,required,notEmpty"`
	OwnerID  int64         `env:"OWNER_ID"`
	Debug    bool          `env:"DEBUG"`
	Timeout  time.Duration `env:"TIMEOUT"`
	Greeting string        `env:"GREETING"`
	Skipped  string
	hidden   string `env:"HIDDEN"`
}

func TestMarshalEnv(t *testing.T) {
	out, err := MarshalEnv(&sample{
		Token:   "123:abc",
		OwnerID: 42,
		Timeout: 10 * time.Second,
		Skipped: "x",
		hidden:  "y",
	})
	require.NoError(t, err)
	assert.Equal(t, "OWNER_ID=42\nTIMEOUT=\"10s\"\nTOKEN=\"123:abc\"\n", out)
}

func TestMarshalEnv_Empty(t *testing.T) {
	out, err := MarshalEnv(sample{})
	require.NoError(t, err)
	assert.Empty(t, out)
}

func TestMarshalEnv_RoundTripsThroughGodotenv(t *testing.T) {
	// godotenv trims every quote ending a quoted value, so the greeting
	// does not end with one
	in := sample{Token: "t", OwnerID: -100500, Greeting: `say "hi" # to C:\tmp $HOME!`}
	out, err := MarshalEnv(in)
	require.NoError(t, err)

	parsed, err := godotenv.Unmarshal(out)
	require.NoError(t, err)
	assert.Equal(t, "t", parsed["TOKEN"])
	assert.Equal(t, "-100500", parsed["OWNER_ID"])
	assert.Equal(t, in.Greeting, parsed["GREETING"])
}

func TestMarshalEnv_Invalid(t *testing.T) {
	_, err := MarshalEnv(42)
	assert.Error(t, err)

	var nilPtr *sample
	_, err = MarshalEnv(nilPtr)
	assert.Error(t, err)
}
