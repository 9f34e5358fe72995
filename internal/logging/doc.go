// Package logging wraps zerolog with the conventions used across rowpick:
// per-component child loggers, trace IDs carried on the context, and a
// file-or-console output choice that never writes into a terminal owned by
// the interactive list.
package logging
