// Package config builds the pieces of an asynclog pipeline from a YAML
// file or the environment: the writer, the formatter and the initial
// level filter.
//
//	cfg, err := config.Load("logging.yaml")
//	...
//	b, err := cfg.NewBackend(rt)
//	log := logger.NewBuilder(b).WithCaller(cfg.Caller).Build()
//
// A file looks like:
//
//	level: debug
//	format: json
//	outputs:
//	  - kind: console
//	    color: auto
//	  - kind: rotating
//	    rotation:
//	      filename: /var/log/app.log
//	      max_size_mb: 50
//
// ASYNCLOG_LEVEL, ASYNCLOG_FORMAT and ASYNCLOG_FILE override the file.
package config
