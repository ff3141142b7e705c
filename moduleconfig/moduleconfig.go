// Copyright (c) 2026 MpackOps and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

// Package moduleconfig exposes the service configuration blocks of a
// command payload: the per-config-type property values and the
// metadata attributes attached to them.
package moduleconfig

import (
	"sort"

	"github.com/mpackops/execcommand/document"
)

// ModuleConfigs is a read-only view over the "configurations" and
// "configurationAttributes" subtrees of a command payload. It is the
// only supported way for deployment scripts to read configuration
// values; they should never reach into the payload directly.
type ModuleConfigs struct {
	configs document.Document
	attrs   document.Document
}

// New builds a view from the two configuration subtrees. Either may be
// nil when the payload carries no such block; the view then answers
// every query with the caller's default.
func New(configurations, attributes document.Document) *ModuleConfigs {
	return &ModuleConfigs{
		configs: configurations,
		attrs:   attributes,
	}
}

// HasConfig reports whether the payload carries properties for the
// given config type, i.e. "zookeeper-env".
func (m *ModuleConfigs) HasConfig(configType string) bool {
	return m.configs.Lookup(configType).Found()
}

// ConfigTypes returns the config types present in the payload, sorted.
func (m *ModuleConfigs) ConfigTypes() []string {
	types := make([]string, 0, len(m.configs))
	for t := range m.configs {
		types = append(types, t)
	}
	sort.Strings(types)
	return types
}

// Properties returns every property of a config type, or nil when the
// config type is absent.
func (m *ModuleConfigs) Properties(configType string) document.Document {
	return m.configs.Lookup(configType).MapOr(nil)
}

// PropertyValue returns one property value, or def when the config
// type or the property is absent.
func (m *ModuleConfigs) PropertyValue(configType, name string, def any) any {
	return m.configs.Lookup(configType + "/" + name).Or(def)
}

// PropertyAttributes returns the per-property metadata of one
// attribute type (i.e. "final" or "hidden") for a config type, or nil
// when absent.
func (m *ModuleConfigs) PropertyAttributes(configType, attributeType string) document.Document {
	return m.attrs.Lookup(configType + "/" + attributeType).MapOr(nil)
}
