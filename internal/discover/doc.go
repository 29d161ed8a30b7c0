// Package discover turns external class descriptions into class
// specifications. Two sources are supported: YAML schema files, and Go
// packages whose struct types carry the immutagen:immutable directive.
package discover
