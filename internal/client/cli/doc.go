// Package cli implements the timecli command-line client for timeboard.
//
// It wires configuration, the HTTP API client, and a local drafts store into
// a set of one-shot commands. Typical flow: register and log in once, then
// describe a day in free text with "fill", review the proposed entries, and
// confirm to save them.
//
// Command groups:
//   - register / login / logout / profile / elevate (account)
//   - fill / month / drafts (personal timesheet)
//   - completion / summary / billing / export (manager views)
//
// Commands are built with cobra; Execute runs the root command and is the
// entry point called from main.
package cli
