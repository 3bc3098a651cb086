// Package auth holds the authorities message definitions used for
// regulatory reporting.
package auth
