// Package acmt holds the account management message definitions.
package acmt
