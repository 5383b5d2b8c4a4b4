package patch

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tbxark/worldgen/types"
)

type location struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Exits       []string `json:"exits,omitempty"`
}

func TestApply(t *testing.T) {
	cur := location{Name: "Eldulia", Description: "A forest"}
	out, err := Apply(cur, []Operation{
		{Op: OperationReplace, Path: "/name", Value: "The Forest of Eldulia"},
		{Op: OperationReplace, Path: "/exits", Value: []string{"north"}},
	})
	require.NoError(t, err)
	assert.Equal(t, "The Forest of Eldulia", out.Name)
	assert.Equal(t, []string{"north"}, out.Exits)
	assert.Equal(t, "Eldulia", cur.Name)
}

func TestApplyNoOps(t *testing.T) {
	cur := location{Name: "Eldulia"}
	out, err := Apply(cur, nil)
	require.NoError(t, err)
	assert.Equal(t, cur, out)
}

func TestApplyTypeMismatch(t *testing.T) {
	_, err := Apply(location{Name: "x"}, []Operation{{Op: OperationReplace, Path: "/name", Value: 3}})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "type mismatch")
}

func TestFixOperation(t *testing.T) {
	doc := []byte(`{"name":"a","tags":["x"]}`)
	ops := FixOperation(doc, []Operation{
		{Op: OperationReplace, Path: "/name", Value: "b"},
		{Op: OperationReplace, Path: "/race", Value: "elf"},
		{Op: OperationRemove, Path: "/missing"},
		{Op: OperationRemove, Path: "/tags/0"},
	})
	require.Len(t, ops, 3)
	assert.Equal(t, OperationReplace, ops[0].Op)
	assert.Equal(t, OperationAdd, ops[1].Op)
	assert.Equal(t, "/tags/0", ops[2].Path)
}

func TestAllowedPathsAndValidate(t *testing.T) {
	allowed := AllowedPaths([]types.FieldSpec{
		{Name: "name", Required: true},
		{Name: "characters"},
	})
	assert.True(t, allowed["/name"])
	assert.True(t, allowed["/characters/*"])

	require.NoError(t, Validate([]Operation{
		{Op: OperationReplace, Path: "/name"},
		{Op: OperationAdd, Path: "/characters/-"},
		{Op: OperationRemove, Path: "/characters/2"},
	}, allowed))

	err := Validate([]Operation{{Op: OperationReplace, Path: "/gold"}}, allowed)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrPathNotAllowed))

	err = Validate([]Operation{{Op: "move", Path: "/name"}}, allowed)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported op")
}

func TestValidateEmptyAllowedPermitsAll(t *testing.T) {
	assert.NoError(t, Validate([]Operation{{Op: OperationAdd, Path: "/anything/at/all"}}, nil))
}

func TestBuildPrompt(t *testing.T) {
	p := BuildPrompt("location", `{"name":"Eldulia"}`, map[string]bool{"/name": true, "/description": true}, "  rename it  ")
	assert.Contains(t, p, "# Current location JSON:\n{\"name\":\"Eldulia\"}")
	assert.Contains(t, p, "- /description\n- /name")
	assert.True(t, strings.Contains(p, "# Instruction:\nrename it"))
}
