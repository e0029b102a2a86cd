// Package config loads the project configuration file.
//
// The server reads chatapp.json (or chatapp.yaml) from the working
// directory at startup. A minimal file only names the project; everything
// else has a default:
//
//	{
//	  "name": "chatapp",
//	  "site": { "addr": "127.0.0.1:3000", "root": "target/site", "env": "dev" },
//	  "database": { "url": ":memory:" },
//	  "cors": { "allowedOrigins": ["tauri://localhost"] }
//	}
//
// No environment variables are consulted. Command-line flags may override
// individual values after loading.
package config
