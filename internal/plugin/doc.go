// Package plugin discovers plugin projects under the plugins directory and
// classifies each as available or unavailable for building. Discovery reads
// plugin directories concurrently and returns records in a stable, locale
// collated order.
package plugin
