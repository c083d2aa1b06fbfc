// Package config manages user-level settings stored at
// ~/.templatesmanager/config.yaml, overridable with TM_* environment
// variables. Resolve turns them into a Settings value that callers pass
// explicitly to the registries and platform services; the file can be
// checked against an embedded JSON Schema with Validate.
package config
