package resource

import (
	"testing"

	"github.com/stretchr/testify/require"
	"go.yaml.in/yaml/v4"
)

func mustParse(t *testing.T, src string) *YAMLDocument {
	t.Helper()
	doc, err := ParseYAML([]byte(src))
	require.NoError(t, err)
	return doc
}

func TestDocumentResolveFollowsReferences(t *testing.T) {
	doc := mustParse(t, `
a:
  $ref: "#/b"
b:
  $ref: "#/c/0"
c:
  - value: done
`)

	node, err := doc.Lookup(doc.Root(), "a")
	require.NoError(t, err)
	require.NotNil(t, node)
	require.Equal(t, yaml.MappingNode, node.Kind)

	value, err := doc.Lookup(node, "value")
	require.NoError(t, err)
	require.Equal(t, "done", value.Value)
}

func TestDocumentResolveCycle(t *testing.T) {
	doc := mustParse(t, `
a:
  $ref: "#/b"
b:
  $ref: "#/a"
`)

	_, err := doc.Lookup(doc.Root(), "a")
	require.Error(t, err)
	require.Contains(t, err.Error(), "reference cycle")
}

func TestDocumentResolveUnknownTarget(t *testing.T) {
	doc := mustParse(t, `
a:
  $ref: "#/missing/key"
`)

	_, err := doc.Lookup(doc.Root(), "a")
	require.Error(t, err)
	require.Contains(t, err.Error(), "unresolvable reference")
}

func TestDocumentResolveRemoteReference(t *testing.T) {
	doc := mustParse(t, `
a:
  $ref: "other.yaml#/b"
`)

	_, err := doc.Lookup(doc.Root(), "a")
	require.Error(t, err)
	require.Contains(t, err.Error(), "only local references")
}

func TestDocumentLookupAbsentKey(t *testing.T) {
	doc := mustParse(t, `a: 1`)

	node, err := doc.Lookup(doc.Root(), "missing")
	require.NoError(t, err)
	require.Nil(t, node)
}

func TestDocumentLookupNonMapping(t *testing.T) {
	doc := mustParse(t, `[1, 2, 3]`)

	_, err := doc.Lookup(doc.Root(), "a")
	require.Error(t, err)
	require.Contains(t, err.Error(), "expected mapping")
}

func TestDocumentEntriesPreserveOrder(t *testing.T) {
	doc := mustParse(t, `
zebra: 1
apple: 2
mango:
  $ref: "#/zebra"
`)

	entries, err := doc.Entries(doc.Root())
	require.NoError(t, err)
	require.Len(t, entries, 3)
	require.Equal(t, "zebra", entries[0].Key)
	require.Equal(t, "apple", entries[1].Key)
	require.Equal(t, "mango", entries[2].Key)
	require.Equal(t, "1", entries[2].Value.Value)
}

func TestDocumentEntriesNilNode(t *testing.T) {
	doc := mustParse(t, `a: 1`)

	entries, err := doc.Entries(nil)
	require.NoError(t, err)
	require.Empty(t, entries)
}

func TestDocumentStringList(t *testing.T) {
	doc := mustParse(t, `
tags:
  - pet
  - $ref: "#/shared"
shared: store
`)

	node, err := doc.Lookup(doc.Root(), "tags")
	require.NoError(t, err)

	items, err := doc.StringList(node)
	require.NoError(t, err)
	require.Equal(t, []string{"pet", "store"}, items)
}

func TestDocumentPointerEscapes(t *testing.T) {
	doc := mustParse(t, `
a:
  $ref: "#/paths/~1pet~1findByStatus"
paths:
  /pet/findByStatus: found
`)

	node, err := doc.Lookup(doc.Root(), "a")
	require.NoError(t, err)
	require.Equal(t, "found", node.Value)
}
