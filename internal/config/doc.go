// Package config provides centralized configuration management for Boxarr.
// It resolves a single validated Settings instance from three layered
// sources and exposes it through an explicit, mutex-guarded Holder.
//
// # Configuration Sources
//
// Settings are resolved in the following order (later sources overwrite
// earlier ones for keys they carry):
//
//	1. Built-in defaults
//	2. Environment variables (flat field names, e.g. RADARR_URL, BOXARR_PORT)
//	3. The first existing YAML file from the search path
//
// # File Search Path
//
// The configuration directory comes from BOXARR_DATA_DIRECTORY and
// defaults to "config". Exactly one file is loaded, the first that
// exists in this order:
//
//	<dir>/local.yaml
//	<dir>/config.yaml
//	config/local.yaml
//	config/default.yaml
//	/config/local.yaml   (Docker volume)
//	/config/config.yaml
//
// There is no cross-file merging.
//
// # Interpolation
//
// YAML scalars may embed ${VAR} or ${VAR:default} tokens, resolved
// against the live process environment at load time.
//
// # Usage
//
// Load configuration at application startup:
//
//	holder := config.NewHolder()
//	settings, err := holder.Get()
//	if err != nil {
//	    log.Fatal(err)
//	}
//
// A missing or malformed file is not an error; defaults stand. A
// validation failure (port collision, out-of-range field) is fatal.
package config
