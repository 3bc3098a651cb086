// Package camt holds the cash management message definitions.
package camt
