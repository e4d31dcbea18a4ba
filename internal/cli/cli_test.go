package cli

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, cmd *cobra.Command, args ...string) (string, string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), errOut.String(), err
}

func TestListText(t *testing.T) {
	out, errOut, err := execute(t, ListCommand(), "--spec", "testdata/petstore.yaml")
	require.NoError(t, err)

	require.Contains(t, errOut, "Loaded OpenAPI 3.1.0: Petstore v1.0.0")
	require.Contains(t, out, "pet: Everything about pets (2 operations)")
	require.Contains(t, out, "addPet")
	require.Contains(t, out, "findPetsByStatus")
	require.Contains(t, out, "getInventory")
}

func TestListJSON(t *testing.T) {
	out, _, err := execute(t, ListCommand(), "--spec", "testdata/petstore.yaml", "--format", "json")
	require.NoError(t, err)

	var views []struct {
		Name       string `json:"name"`
		Operations []struct {
			ID     string `json:"id"`
			Method string `json:"method"`
		} `json:"operations"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &views))
	require.Len(t, views, 2)
	require.Equal(t, "pet", views[0].Name)
	require.Equal(t, "store", views[1].Name)
}

func TestListExcludeTags(t *testing.T) {
	out, _, err := execute(t, ListCommand(), "--spec", "testdata/petstore.yaml", "--exclude-tags", "store")
	require.NoError(t, err)

	require.Contains(t, out, "pet")
	require.NotContains(t, out, "getInventory")
}

func TestListIncludeTags(t *testing.T) {
	out, _, err := execute(t, ListCommand(), "--spec", "testdata/petstore.yaml", "--include-tags", "store")
	require.NoError(t, err)

	require.Contains(t, out, "getInventory")
	require.NotContains(t, out, "addPet")
}

func TestListMissingSpec(t *testing.T) {
	cmd := ListCommand()
	cmd.SilenceErrors = true
	cmd.SilenceUsage = true
	_, _, err := execute(t, cmd)
	require.Error(t, err)
	require.Contains(t, err.Error(), "spec file is required")
}

func TestShowResource(t *testing.T) {
	out, _, err := execute(t, ShowCommand(), "store", "--spec", "testdata/petstore.yaml")
	require.NoError(t, err)

	require.Contains(t, out, "store")
	require.Contains(t, out, "getInventory")
	require.NotContains(t, out, "addPet")
}

func TestShowUnknownResource(t *testing.T) {
	cmd := ShowCommand()
	cmd.SilenceErrors = true
	cmd.SilenceUsage = true
	_, _, err := execute(t, cmd, "nothing", "--spec", "testdata/petstore.yaml")
	require.Error(t, err)
	require.Contains(t, err.Error(), `unknown resource "nothing"`)
	require.Contains(t, err.Error(), "pet")
}

func TestShowOperation(t *testing.T) {
	out, _, err := execute(t, ShowCommand(), "pet", "--operation", "addPet", "--spec", "testdata/petstore.yaml", "--format", "yaml")
	require.NoError(t, err)

	require.Contains(t, out, "id: addPet")
	require.Contains(t, out, "method: POST")
	require.Contains(t, out, "path: /pet")
}

func TestShowMissingOperation(t *testing.T) {
	cmd := ShowCommand()
	cmd.SilenceErrors = true
	cmd.SilenceUsage = true
	_, _, err := execute(t, cmd, "pet", "--operation", "flyPet", "--spec", "testdata/petstore.yaml")
	require.Error(t, err)
	require.Contains(t, err.Error(), `resource "pet" has no operation "flyPet"`)
}
