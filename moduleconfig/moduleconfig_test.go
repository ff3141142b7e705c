// Copyright (c) 2026 MpackOps and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package moduleconfig

import (
	"testing"

	"github.com/mpackops/execcommand/document"

	"github.com/stretchr/testify/require"
)

func TestModuleConfigs(t *testing.T) {
	configs := document.Document{
		"zookeeper-env": map[string]any{
			"zk_user":    "zookeeper",
			"zk_log_dir": "/var/log/zookeeper",
		},
		"cluster-env": map[string]any{
			"security_enabled": "false",
		},
	}
	attrs := document.Document{
		"zookeeper-env": map[string]any{
			"final": map[string]any{
				"zk_user": "true",
			},
		},
	}
	view := New(configs, attrs)

	t.Run("HasConfig", func(t *testing.T) {
		require.True(t, view.HasConfig("zookeeper-env"))
		require.False(t, view.HasConfig("hdfs-site"))
	})

	t.Run("ConfigTypes are sorted", func(t *testing.T) {
		require.Equal(t, []string{"cluster-env", "zookeeper-env"}, view.ConfigTypes())
	})

	t.Run("Properties", func(t *testing.T) {
		props := view.Properties("zookeeper-env")
		require.Equal(t, "zookeeper", props.Lookup("zk_user").StringOr(""))

		require.Nil(t, view.Properties("hdfs-site"))
	})

	t.Run("PropertyValue", func(t *testing.T) {
		testCases := []struct {
			name        string
			configType  string
			property    string
			def         any
			expectedVal any
		}{
			{
				name:        "present property",
				configType:  "zookeeper-env",
				property:    "zk_log_dir",
				expectedVal: "/var/log/zookeeper",
			},
			{
				name:        "missing property yields default",
				configType:  "zookeeper-env",
				property:    "zk_data_dir",
				def:         "/hadoop/zookeeper",
				expectedVal: "/hadoop/zookeeper",
			},
			{
				name:        "missing config type yields default",
				configType:  "hdfs-site",
				property:    "dfs.replication",
				def:         3,
				expectedVal: 3,
			},
		}

		for _, tc := range testCases {
			t.Run(tc.name, func(t *testing.T) {
				require.Equal(t, tc.expectedVal, view.PropertyValue(tc.configType, tc.property, tc.def))
			})
		}
	})

	t.Run("PropertyAttributes", func(t *testing.T) {
		final := view.PropertyAttributes("zookeeper-env", "final")
		require.Equal(t, "true", final.Lookup("zk_user").StringOr(""))

		require.Nil(t, view.PropertyAttributes("zookeeper-env", "hidden"))
		require.Nil(t, view.PropertyAttributes("cluster-env", "final"))
	})
}

func TestModuleConfigs_emptyView(t *testing.T) {
	view := New(nil, nil)

	require.False(t, view.HasConfig("zookeeper-env"))
	require.Empty(t, view.ConfigTypes())
	require.Nil(t, view.Properties("zookeeper-env"))
	require.Equal(t, "def", view.PropertyValue("zookeeper-env", "zk_user", "def"))
	require.Nil(t, view.PropertyAttributes("zookeeper-env", "final"))
}
