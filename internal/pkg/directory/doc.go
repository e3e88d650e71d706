// Package directory verifies login credentials against a user directory.
//
// The production implementation binds against LDAP; a bypass implementation
// exists for environments without a directory server.
package directory
