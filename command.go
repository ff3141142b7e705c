// Copyright (c) 2026 MpackOps and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package execcommand

import (
	"io"

	"github.com/mpackops/execcommand/document"
	"github.com/mpackops/execcommand/moduleconfig"
)

// ExecutionCommand wraps one command payload and resolves every field
// deployment scripts read from it. Construction also carves out the
// configuration blocks into a [moduleconfig.ModuleConfigs] view, so
// callers never touch the payload tree themselves.
type ExecutionCommand struct {
	doc           document.Document
	moduleConfigs *moduleconfig.ModuleConfigs
}

// New wraps an already decoded payload. The document is held by
// reference and must not be mutated for the accessor's lifetime.
func New(doc document.Document) *ExecutionCommand {
	return &ExecutionCommand{
		doc: doc,
		moduleConfigs: moduleconfig.New(
			doc.Lookup("configurations").MapOr(nil),
			doc.Lookup("configurationAttributes").MapOr(nil),
		),
	}
}

// FromJSON decodes a JSON payload and wraps it.
func FromJSON(r io.Reader) (*ExecutionCommand, error) {
	doc, err := document.FromJSON(r)
	if err != nil {
		return nil, err
	}
	return New(doc), nil
}

// FromYAML decodes a YAML payload and wraps it.
func FromYAML(r io.Reader) (*ExecutionCommand, error) {
	doc, err := document.FromYAML(r)
	if err != nil {
		return nil, err
	}
	return New(doc), nil
}

// Get retrieves any payload field by its slash-delimited path,
// returning def when absent. It is the escape hatch for fields without
// a named getter.
func (e *ExecutionCommand) Get(path string, def any) any {
	return e.doc.Lookup(path).Or(def)
}

// Lookup retrieves any payload field by its slash-delimited path.
func (e *ExecutionCommand) Lookup(path string) document.Result {
	return e.doc.Lookup(path)
}

// ModuleConfigs returns the configuration view built at construction.
func (e *ExecutionCommand) ModuleConfigs() *moduleconfig.ModuleConfigs {
	return e.moduleConfigs
}

// ModuleName returns the service this command targets, i.e "ZOOKEEPER".
func (e *ExecutionCommand) ModuleName() string {
	return e.doc.Lookup("serviceName").StringOr("")
}

// ComponentType returns the host role, i.e "ZOOKEEPER_SERVER".
func (e *ExecutionCommand) ComponentType() string {
	return e.doc.Lookup("role").StringOr("")
}

// ComponentInstanceName returns the component instance this command
// addresses. Only single-instance deployments are supported, so this
// is the literal "default" and does not consult the payload.
func (e *ExecutionCommand) ComponentInstanceName() string {
	return "default"
}

// ServiceGroupName returns the service group, which maps 1:1 to an
// mpack at this time.
func (e *ExecutionCommand) ServiceGroupName() string {
	return e.doc.Lookup("serviceGroupName").StringOr("")
}

// ClusterName returns the name of the cluster being managed.
func (e *ExecutionCommand) ClusterName() string {
	return e.doc.Lookup("clusterName").StringOr("")
}

// RepositoryFile returns the repository descriptor for the mpack, or
// nil when the command carries none.
func (e *ExecutionCommand) RepositoryFile() document.Document {
	return e.doc.Lookup("repositoryFile").MapOr(nil)
}

// LocalComponents returns the components installed on this host,
// i.e ["ZOOKEEPER_CLIENT"].
func (e *ExecutionCommand) LocalComponents() []string {
	return e.doc.Lookup("localComponents").StringsOr(nil)
}

// Server-level parameters.

// JDKLocation returns the URL the JDK can be downloaded from,
// i.e "http://c7302.ambari.apache.org:8080/resources/".
func (e *ExecutionCommand) JDKLocation() string {
	return e.doc.Lookup("ambariLevelParams/jdk_location").StringOr("")
}

// JDKName returns the JDK archive name, i.e "jdk-8u112-linux-x64.tar.gz".
func (e *ExecutionCommand) JDKName() string {
	return e.doc.Lookup("ambariLevelParams/jdk_name").StringOr("")
}

// JavaHome returns the java home path, i.e "/usr/jdk64/jdk1.8.0_112".
func (e *ExecutionCommand) JavaHome() string {
	return e.doc.Lookup("ambariLevelParams/java_home").StringOr("")
}

// JavaVersion returns the major java version. The payload carries it
// as a string ("8"); a value that does not parse as an integer is
// reported as a [document.TypeCoercionError], and an absent value is
// zero.
func (e *ExecutionCommand) JavaVersion() (int, error) {
	return e.doc.Lookup("ambariLevelParams/java_version").Int()
}

// JCEName returns the JCE policy archive name, i.e "jce_policy-8.zip".
func (e *ExecutionCommand) JCEName() string {
	return e.doc.Lookup("ambariLevelParams/jce_name").StringOr("")
}

// DBDriverFileName returns the server database driver file name,
// i.e "mysql-connector-java.jar".
func (e *ExecutionCommand) DBDriverFileName() string {
	return e.doc.Lookup("ambariLevelParams/db_driver_filename").StringOr("")
}

// DBName returns the server database name.
func (e *ExecutionCommand) DBName() string {
	return e.doc.Lookup("ambariLevelParams/db_name").StringOr("")
}

// OracleJDBCURL returns the URL of the oracle jdbc driver.
func (e *ExecutionCommand) OracleJDBCURL() string {
	return e.doc.Lookup("ambariLevelParams/oracle_jdbc_url").StringOr("")
}

// MySQLJDBCURL returns the URL of the mysql jdbc driver.
func (e *ExecutionCommand) MySQLJDBCURL() string {
	return e.doc.Lookup("ambariLevelParams/mysql_jdbc_url").StringOr("")
}

// AgentStackRetryCount returns how many times stack deployment is
// retried on the agent. Defaults to 5.
func (e *ExecutionCommand) AgentStackRetryCount() int {
	return e.doc.Lookup("ambariLevelParams/agent_stack_retry_count").IntOr(5)
}

// AgentStackWantRetryOnUnavailability reports whether stack deployment
// should be retried when the repository is unreachable.
func (e *ExecutionCommand) AgentStackWantRetryOnUnavailability() bool {
	return e.doc.Lookup("ambariLevelParams/agent_stack_retry_on_unavailability").BoolOr(false)
}

// AmbariServerHost returns the orchestrator server host,
// i.e "c7302.ambari.apache.org".
func (e *ExecutionCommand) AmbariServerHost() string {
	return e.doc.Lookup("ambariLevelParams/ambari_server_host").StringOr("")
}

// AmbariServerPort returns the orchestrator server port, i.e "8080".
func (e *ExecutionCommand) AmbariServerPort() string {
	return e.doc.Lookup("ambariLevelParams/ambari_server_port").StringOr("")
}

// IsAmbariServerUseSSL reports whether connections to the orchestrator
// server require SSL.
func (e *ExecutionCommand) IsAmbariServerUseSSL() bool {
	return e.doc.Lookup("ambariLevelParams/ambari_server_use_ssl").BoolOr(false)
}

// IsHostSystemPrepared reports the global sysprep flag; prepared hosts
// skip parts of provisioning.
func (e *ExecutionCommand) IsHostSystemPrepared() bool {
	return e.doc.Lookup("ambariLevelParams/host_sys_prepped").BoolOr(false)
}

// IsGPLLicenseAccepted reports whether the server accepted the GPL
// license, gating GPL-licensed packages.
func (e *ExecutionCommand) IsGPLLicenseAccepted() bool {
	return e.doc.Lookup("ambariLevelParams/gpl_license_accepted").BoolOr(false)
}

// Stack settings.

// MpackName returns the mpack name, i.e "HDPCORE".
func (e *ExecutionCommand) MpackName() string {
	return e.doc.Lookup("stackSettings/stack_name").StringOr("")
}

// MpackVersion returns the mpack version, i.e "1.0.0-b224".
func (e *ExecutionCommand) MpackVersion() string {
	return e.doc.Lookup("stackSettings/stack_version").StringOr("")
}

// UserGroups returns the user-to-groups mapping as the JSON-encoded
// string the server ships it as, i.e `{"zookeeper":["hadoop"]}`.
func (e *ExecutionCommand) UserGroups() string {
	return e.doc.Lookup("stackSettings/user_groups").StringOr("")
}

// GroupList returns the group list as a JSON-encoded string,
// i.e `["hadoop"]`.
func (e *ExecutionCommand) GroupList() string {
	return e.doc.Lookup("stackSettings/group_list").StringOr("")
}

// UserList returns the user list as a JSON-encoded string,
// i.e `["zookeeper","ambari-qa"]`.
func (e *ExecutionCommand) UserList() string {
	return e.doc.Lookup("stackSettings/user_list").StringOr("")
}

// Agent-level parameters.

// HostName returns the host the agent executing this command runs on.
func (e *ExecutionCommand) HostName() string {
	return e.doc.Lookup("agentLevelParams/hostname").StringOr("")
}

// AgentCacheDir returns the root directory the agent keeps its cache
// under, i.e "/var/lib/ambari-agent/cache".
func (e *ExecutionCommand) AgentCacheDir() string {
	return e.doc.Lookup("agentLevelParams/agentCacheDir").StringOr("")
}

// AgentConfigExecuteInParallel reports whether the agent may execute
// commands in parallel. Defaults to 0.
func (e *ExecutionCommand) AgentConfigExecuteInParallel() int {
	return e.doc.Lookup("agentConfigParams/agent/parallel_execution").IntOr(0)
}

// Host-level parameters.

// RepoInfo returns the host's repository info.
func (e *ExecutionCommand) RepoInfo() string {
	return e.doc.Lookup("hostLevelParams/repoInfo").StringOr("")
}

// ServiceRepoInfo returns the service-specific repository info.
func (e *ExecutionCommand) ServiceRepoInfo() string {
	return e.doc.Lookup("hostLevelParams/service_repo_info").StringOr("")
}

// Component-level parameters.

// UnlimitedKeyJCERequired reports whether the component requires the
// unlimited-strength JCE policy.
func (e *ExecutionCommand) UnlimitedKeyJCERequired() bool {
	return e.doc.Lookup("componentLevelParams/unlimited_key_jce_required").BoolOr(false)
}

// Command parameters.

// NewMpackVersionForUpgrade returns the cluster stack version set
// during the RESTART phase of a rolling upgrade.
func (e *ExecutionCommand) NewMpackVersionForUpgrade() string {
	return e.doc.Lookup("commandParams/version").StringOr("")
}

// CommandRetryEnabled reports whether a failed command should be
// retried.
func (e *ExecutionCommand) CommandRetryEnabled() bool {
	return e.doc.Lookup("commandParams/command_retry_enabled").BoolOr(false)
}

// UpgradeDirection returns "upgrade" or "downgrade" during an upgrade,
// empty otherwise.
func (e *ExecutionCommand) UpgradeDirection() string {
	return e.doc.Lookup("commandParams/upgrade_direction").StringOr("")
}

// UpgradeType returns the kind of upgrade in progress, i.e
// "rolling_upgrade", or empty when not upgrading.
func (e *ExecutionCommand) UpgradeType() string {
	return e.doc.Lookup("commandParams/upgrade_type").StringOr("")
}

// IsRollingRestartInUpgrade reports whether the upgrade restarts
// components in a rolling fashion.
func (e *ExecutionCommand) IsRollingRestartInUpgrade() bool {
	return e.doc.Lookup("commandParams/rolling_restart").BoolOr(false)
}

// UpdateFilesOnly reports whether only configuration files should be
// updated, skipping restarts.
func (e *ExecutionCommand) UpdateFilesOnly() bool {
	return e.doc.Lookup("commandParams/update_files_only").BoolOr(false)
}

// DeployPhase returns the deployment phase, i.e "INITIAL_INSTALL".
func (e *ExecutionCommand) DeployPhase() string {
	return e.doc.Lookup("commandParams/phase").StringOr("")
}

// DFSType returns the distributed filesystem type, i.e "HDFS".
func (e *ExecutionCommand) DFSType() string {
	return e.doc.Lookup("commandParams/dfs_type").StringOr("")
}

// ModulePackageFolder returns the path of the service's package folder
// inside the agent cache.
func (e *ExecutionCommand) ModulePackageFolder() string {
	return e.doc.Lookup("commandParams/service_package_folder").StringOr("")
}

// AmbariJavaHome returns the java home the orchestrator server itself
// runs under.
func (e *ExecutionCommand) AmbariJavaHome() string {
	return e.doc.Lookup("commandParams/ambari_java_home").StringOr("")
}

// AmbariJavaName returns the server's java archive name.
func (e *ExecutionCommand) AmbariJavaName() string {
	return e.doc.Lookup("commandParams/ambari_java_name").StringOr("")
}

// AmbariJCEName returns the server's JCE policy archive name.
func (e *ExecutionCommand) AmbariJCEName() string {
	return e.doc.Lookup("commandParams/ambari_jce_name").StringOr("")
}

// AmbariJDKName returns the server's JDK archive name.
func (e *ExecutionCommand) AmbariJDKName() string {
	return e.doc.Lookup("commandParams/ambari_jdk_name").StringOr("")
}

// NeedRefreshTopology reports whether the cluster topology must be
// refreshed before executing.
func (e *ExecutionCommand) NeedRefreshTopology() bool {
	return e.doc.Lookup("commandParams/refresh_topology").BoolOr(false)
}

// DesiredNamenodeRole returns which role this namenode should take
// during a non-rolling HA upgrade. The server decides which of the two
// namenodes becomes "active" and which "standby", since they are
// started with different commands; outside that window the field is
// absent.
func (e *ExecutionCommand) DesiredNamenodeRole() string {
	return e.doc.Lookup("commandParams/desired_namenode_role").StringOr("")
}

// Node returns the namenode host recorded for the given role kind:
// Node("active") reads commandParams/activenode, Node("standby") reads
// commandParams/standbynode.
func (e *ExecutionCommand) Node(kind string) string {
	return e.doc.Lookup("commandParams/" + kind + "node").StringOr("")
}

// Role parameters.

// UpgradeSuspended reports whether the upgrade is currently suspended.
func (e *ExecutionCommand) UpgradeSuspended() bool {
	return e.doc.Lookup("roleParams/upgrade_suspended").BoolOr(false)
}

// Cluster host info.

// ComponentHosts returns the hosts a component runs on. Components are
// keyed under clusterHostInfo as "<component>_hosts", except
// oozie_server which the server publishes under its bare name; that
// asymmetry is load-bearing and mirrored here.
func (e *ExecutionCommand) ComponentHosts(componentName string) []string {
	key := "clusterHostInfo/" + componentName + "_hosts"
	if componentName == "oozie_server" {
		key = "clusterHostInfo/" + componentName
	}
	return e.doc.Lookup(key).StringsOr(nil)
}

// ComponentHost returns the host list recorded under the singular
// "<component>_host" key some components use.
func (e *ExecutionCommand) ComponentHost(componentName string) []string {
	return e.doc.Lookup("clusterHostInfo/" + componentName + "_host").StringsOr(nil)
}

// AllHosts returns every host in the cluster.
func (e *ExecutionCommand) AllHosts() []string {
	return e.doc.Lookup("clusterHostInfo/all_hosts").StringsOr(nil)
}

// AllRacks returns the rack of every host, index-aligned with
// [ExecutionCommand.AllHosts].
func (e *ExecutionCommand) AllRacks() []string {
	return e.doc.Lookup("clusterHostInfo/all_racks").StringsOr(nil)
}

// AllIPv4IPs returns the IPv4 address of every host, index-aligned
// with [ExecutionCommand.AllHosts].
func (e *ExecutionCommand) AllIPv4IPs() []string {
	return e.doc.Lookup("clusterHostInfo/all_ipv4_ips").StringsOr(nil)
}
