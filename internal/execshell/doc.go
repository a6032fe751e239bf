// Package execshell provides structured helpers for invoking external tools.
//
// ShellExecutor wraps a CommandRunner with zap logging and typed failures,
// and OSCommandRunner runs processes through os/exec. Site tooling such as
// drush is always invoked through these types so callers can be tested with
// recording runners.
package execshell
