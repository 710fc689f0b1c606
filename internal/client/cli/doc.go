// Package cli implements the melodia command-line client: one command per
// invocation, interactive prompts for credentials, results printed as JSON.
package cli
