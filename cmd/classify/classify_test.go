package classify_test

import (
	"bytes"
	"testing"

	"fjacquet/fintrack/cmd/classify"
	"fjacquet/fintrack/cmd/root"
	"fjacquet/fintrack/internal/container/containertest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const rulesFile = `rules:
  ifood: Alimentação
  ifood mercado: Mercado
`

func setup(t *testing.T) {
	t.Helper()
	c, _ := containertest.New(t, containertest.Options{Rules: rulesFile})
	root.SetContainer(c)
	t.Cleanup(func() { root.SetContainer(nil) })
}

func run(args ...string) (string, error) {
	cmd := classify.NewCommand()
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestClassifyCommand_Metadata(t *testing.T) {
	assert.Equal(t, "classify [description]", classify.Cmd.Use)
	assert.NotNil(t, classify.Cmd.RunE)

	desc := classify.Cmd.Flags().Lookup("description")
	require.NotNil(t, desc)
	assert.Equal(t, "d", desc.Shorthand)

	exact := classify.Cmd.Flags().Lookup("exact")
	require.NotNil(t, exact)
	assert.Equal(t, "e", exact.Shorthand)
	assert.Equal(t, "false", exact.DefValue)
}

func TestClassifyCommand_Run(t *testing.T) {
	setup(t)

	tests := []struct {
		name    string
		args    []string
		want    string
		wantErr bool
	}{
		{"longest keyword wins", []string{"-d", "IFOOD Mercado Extra"}, "Mercado\n", false},
		{"positional description", []string{"Ifood lanche"}, "Alimentação\n", false},
		{"no match uses fallback", []string{"-d", "Padaria"}, "Outros (no rule matched)\n", false},
		{"exact match", []string{"-d", "  IFOOD ", "--exact"}, "Alimentação\n", false},
		{"exact rejects substring", []string{"-d", "IFOOD lanche", "-e"}, "Outros (no rule matched)\n", false},
		{"missing description", []string{}, "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := run(tt.args...)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, out)
		})
	}
}
