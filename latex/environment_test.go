package latex_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"doclistbuilder/latex"
	"doclistbuilder/options"
)

func environmentFrame(t *testing.T, env *latex.Environment) (prolog, epilog string) {
	t.Helper()

	prolog, err := options.Get[string](env.Settings(), latex.OptProlog)
	require.NoError(t, err)

	epilog, err = options.Get[string](env.Settings(), latex.OptEpilog)
	require.NoError(t, err)

	return prolog, epilog
}

func TestNewEnvironment_Document(t *testing.T) {
	t.Parallel()

	env, err := latex.NewEnvironment(nil, "document", nil)
	require.NoError(t, err)

	prolog, epilog := environmentFrame(t, env)
	assert.Equal(t, "\\begin{document}%\n", prolog)
	assert.Equal(t, "\n\\end{document}%", epilog)
}

func TestNewEnvironment_OpsAndArgs(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name    string
		envName string
		opts    options.Values
		want    string
	}{
		{
			name:    "ops only",
			envName: "spacing",
			opts:    options.Values{latex.OptOps: "1.5"},
			want:    "\\begin{spacing}[1.5]%\n",
		},
		{
			name:    "args only",
			envName: "tabular",
			opts:    options.Values{latex.OptArgs: "l|r"},
			want:    "\\begin{tabular}{l|r}%\n",
		},
		{
			name:    "ops and args",
			envName: "tabular",
			opts:    options.Values{latex.OptOps: "t", latex.OptArgs: "cc"},
			want:    "\\begin{tabular}[t]{cc}%\n",
		},
		{
			name:    "empty strings are omitted",
			envName: "itemize",
			opts:    options.Values{latex.OptOps: "", latex.OptArgs: ""},
			want:    "\\begin{itemize}%\n",
		},
		{
			name:    "digits allowed in environment names",
			envName: "enum2",
			want:    "\\begin{enum2}%\n",
		},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			env, err := latex.NewEnvironment(nil, tc.envName, tc.opts)
			require.NoError(t, err)

			prolog, epilog := environmentFrame(t, env)
			assert.Equal(t, tc.want, prolog)
			assert.Equal(t, "\n\\end{"+tc.envName+"}%", epilog)
		})
	}
}

func TestNewEnvironment_InvalidName(t *testing.T) {
	t.Parallel()

	for _, name := range []string{"", "1bad", "bad name", "bad:name", "bad_name"} {
		env, err := latex.NewEnvironment(nil, name, nil)
		assert.ErrorIs(t, err, latex.ErrInvalidName, "name=%q", name)
		assert.Nil(t, env, "no partially constructed part may escape")
	}
}

func TestValidateNames(t *testing.T) {
	t.Parallel()

	t.Run("control word accepts colon, rejects digits", func(t *testing.T) {
		t.Parallel()

		assert.NoError(t, latex.ValidateControlWord("pgfmath:eval"))
		assert.ErrorIs(t, latex.ValidateControlWord("enum2"), latex.ErrInvalidName)
	})

	t.Run("environment name accepts digits, rejects colon", func(t *testing.T) {
		t.Parallel()

		assert.NoError(t, latex.ValidateEnvironmentName("enum2"))
		assert.ErrorIs(t, latex.ValidateEnvironmentName("pgfmath:eval"), latex.ErrInvalidName)
	})
}
