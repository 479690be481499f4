// Package config provides configuration for the teamfight command.
//
// Configuration is read from teamfight.json in a directory (teamfight -C), then
// overridden by environment variables, then by command-line flags (applied
// by the caller). A missing file is not an error: defaults apply.
//
// # Configuration File Structure
//
//	{
//	  "server": {
//	    "addr": "localhost:3000",
//	    "metrics": true
//	  },
//	  "data": {
//	    "file": "teamfight-data.json"
//	  },
//	  "log": {
//	    "level": "info",
//	    "format": "text"
//	  }
//	}
//
// # Environment
//
//	TEAMFIGHT_ADDR       server.addr
//	TEAMFIGHT_DATA       data.file
//	TEAMFIGHT_LOG_LEVEL  log.level
//
// # Usage
//
//	cfg, err := config.Load(".")
//	if err != nil {
//	    return err
//	}
//	cfg.ApplyEnv(os.Getenv)
//	if err := cfg.Validate(); err != nil {
//	    return err
//	}
package config
