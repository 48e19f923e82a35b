// Package bundler runs the project's rollup binary for a single plugin and
// resolves the Hermes engine directory the rollup config compiles with.
// Runs are synchronous and report a Result instead of failing the caller.
package bundler
