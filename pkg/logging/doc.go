// Package logging configures the process-wide slog logger for bmi and bmid.
//
// Both binaries log JSON to stderr, tagged with a module name and version,
// so results written to stdout stay machine readable. Debug level adds the
// source location of each record.
//
// The API server reads its level from LOG_LEVEL:
//
//	logging.SetDefaultStructuredLogger("bmid", version)
//
// The CLI resolves --log-level (falling back to LOG_LEVEL) before any
// command runs:
//
//	logging.SetDefaultStructuredLoggerWithLevel("bmi", version, level)
//
// Level names are case-insensitive: debug, info, warn (or warning) and
// error. Anything else means info.
//
// A request to bmid at debug level produces records like:
//
//	{"time":"...","level":"DEBUG","source":{...},"msg":"bmi calculated",
//	 "module":"bmid","version":"v1.0.0","height":170,"heightUnit":"cm",
//	 "weight":70,"weightUnit":"kg","bmi":24.2,"category":"Normal"}
//
// NewLogLogger adapts the default handler for APIs that only accept a
// *log.Logger, such as http.Server.ErrorLog.
package logging
