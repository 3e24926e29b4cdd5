package cmd

import (
	"bytes"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/multierr"
)

func TestVersionCommand(t *testing.T) {
	version = "v1.2.3"
	t.Cleanup(func() { version = "" })

	out := &bytes.Buffer{}
	cmd := NewVersionCommand()
	cmd.SetOut(out)
	cmd.SetArgs([]string{})
	require.NoError(t, cmd.Execute())
	assert.Regexp(t, `^portfolio v1\.2\.3 \(.+\)\n$`, out.String())
}

func TestBuildVersionFallback(t *testing.T) {
	v, goVersion := buildVersion()
	assert.NotEmpty(t, v)
	assert.NotEmpty(t, goVersion)
}

func TestValidateServeFlags(t *testing.T) {
	parse := func(args ...string) error {
		v := newViper()
		flags := pflag.NewFlagSet("serve", pflag.ContinueOnError)
		addAPIBaseURLFlag(flags, v)
		addAssetsFlag(flags, v)
		addGzipLevelFlag(flags, v)
		require.NoError(t, flags.Parse(args))
		return validateServeFlags(v)
	}

	assert.NoError(t, parse())
	assert.NoError(t, parse("--api-base-url=https://api.example.com", "--assets=gs://bucket", "--gzip-level=6"))
	assert.NoError(t, parse("--assets=./public"))

	err := parse("--api-base-url=ftp://nope", "--assets=gs://", "--gzip-level=12")
	require.Error(t, err)
	assert.Len(t, multierr.Errors(err), 3)
}
