// Copyright (c) 2026 MpackOps and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

// Package execcommand provides a read-only accessor over the command
// payload an orchestrator distributes to its agents, describing one
// unit of deployment work: which service and component to act on,
// where the repositories live, how an upgrade is parameterized and
// which hosts make up the cluster.
//
// The payload is a plain decoded JSON tree. Deployment scripts should
// never index into it directly; instead they wrap it once:
//
//	cmd, err := execcommand.FromJSON(r)
//	if err != nil {
//	    return err
//	}
//	if cmd.IsHostSystemPrepared() {
//	    // skip provisioning
//	}
//	for _, host := range cmd.ComponentHosts("zookeeper_server") {
//	    // ...
//	}
//
// Every getter names one field, hard-codes its location in the payload
// and applies that field's default when it is missing. Absent fields
// are never errors. The only error any getter can return is a
// [document.TypeCoercionError] from an integer field that is present
// but does not parse.
//
// An [ExecutionCommand] is a stateless view: it never writes into the
// payload, and concurrent readers are safe as long as no collaborator
// mutates the underlying document. That last part is the caller's
// obligation; nothing here enforces it.
package execcommand
