// Package flags provides pflag helpers for choice usage strings and yes/no toggles.
package flags
