// Package history persists device state changes to SQLite for
// post-run auditing.
//
// Every actuation a device reports (status flips, brightness and
// target changes) becomes one row in the state_changes table, stamped
// with the run identifier. The simulator only writes during a run;
// state is never restored from the log.
package history
