// Package admi holds the administration message definitions.
package admi
