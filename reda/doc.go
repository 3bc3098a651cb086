// Package reda holds the reference data message definitions.
package reda
