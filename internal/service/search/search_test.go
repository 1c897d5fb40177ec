package search

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestQueryShape(t *testing.T) {
	body := Query("shawarma", 20, 10)

	require.Equal(t, 20, body["from"])
	require.Equal(t, 10, body["size"])

	mm := body["query"].(map[string]interface{})["multi_match"].(map[string]interface{})
	require.Equal(t, "shawarma", mm["query"])
	require.Contains(t, mm["fields"], "name_ar^2")
	require.Contains(t, mm["fields"], "description_en")
}
