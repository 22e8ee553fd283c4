// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package osutil

import (
	"encoding/json"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExpandableStringJson(t *testing.T) {
	var e ExpandableString

	err := json.Unmarshal([]byte(`"${foo}"`), &e)
	assert.NoError(t, err)

	assert.Equal(t, "${foo}", e.template)

	marshalled, err := json.Marshal(e)
	assert.NoError(t, err)

	assert.Equal(t, `"${foo}"`, string(marshalled))
}

func TestExpandableStringNonString(t *testing.T) {
	var e ExpandableString

	require.NoError(t, json.Unmarshal([]byte(`42`), &e))
	assert.True(t, e.Empty())
}

func TestExpandableString_Envsubst(t *testing.T) {
	e := NewExpandableString("${HOME}/src/${MISSING:-work}")
	env := map[string]string{"HOME": "/home/dev"}

	v, err := e.Envsubst(func(name string) string { return env[name] })
	require.NoError(t, err)
	assert.Equal(t, "/home/dev/src/work", v)

	t.Setenv("PADO_TEST_ROOT", "/srv")
	v, err = NewExpandableString("${PADO_TEST_ROOT}/code").ExpandEnv()
	require.NoError(t, err)
	assert.Equal(t, "/srv/code", v)

	_, err = NewExpandableString("${unterminated").ExpandEnv()
	assert.Error(t, err)
	assert.Panics(t, func() { NewExpandableString("${unterminated").MustEnvsubst(os.Getenv) })
}

func TestExpandableString_Empty(t *testing.T) {
	t.Run("Empty", func(t *testing.T) {
		e := NewExpandableString("")
		assert.True(t, e.Empty())
	})

	t.Run("NonEmpty", func(t *testing.T) {
		e := NewExpandableString("${ENV_VAR}")
		assert.False(t, e.Empty())
	})
}
