// Package manifest handles parsing and validation of plugin manifest.json
// files. Manifests are checked against an embedded JSON Schema and their
// version field must be a strict semantic version.
package manifest
