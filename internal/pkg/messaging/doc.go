// Package messaging provides publish/consume primitives over NATS.
//
// Activity events flow through here: modules publish facts about what a user
// did, and the audit consumer persists them. Use cases depend only on the
// Messaging interface so they can be tested with an in-memory fake.
package messaging
