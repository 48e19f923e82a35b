// Package build decides which plugins a build command targets and runs the
// bundler for each of them in turn, continuing past individual failures.
package build
