// Copyright (c) 2026 MpackOps and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package document

import (
	"errors"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/require"
)

func TestFromJSON(t *testing.T) {
	t.Run("decodes a payload", func(t *testing.T) {
		doc, err := FromJSON(strings.NewReader(`{
			"serviceName": "ZOOKEEPER",
			"clusterHostInfo": {"all_hosts": ["h1"]}
		}`))
		require.NoError(t, err)

		require.Equal(t, "ZOOKEEPER", doc.Lookup("serviceName").StringOr(""))
		require.Equal(t, []string{"h1"}, doc.Lookup("clusterHostInfo/all_hosts").StringsOr(nil))
	})

	t.Run("reports invalid json", func(t *testing.T) {
		_, err := FromJSON(strings.NewReader(`{"serviceName":`))
		require.Error(t, err)

		var jerr InvalidJSONError
		require.True(t, errors.As(err, &jerr))
	})

	t.Run("reads a payload file", func(t *testing.T) {
		fsys := fstest.MapFS{
			"command.json": &fstest.MapFile{
				Data: []byte(`{"clusterName": "c1"}`),
			},
		}

		doc, err := FromJSON(NewFileReader(fsys, "command.json"))
		require.NoError(t, err)
		require.Equal(t, "c1", doc.Lookup("clusterName").StringOr(""))
	})

	t.Run("reports a missing payload file", func(t *testing.T) {
		_, err := FromJSON(NewFileReader(fstest.MapFS{}, "command.json"))
		require.Error(t, err)
	})
}
